package service

import (
	"errors"
	"log"
	"regexp"
	"strings"

	"github.com/buttonicons/internal/buttonicon"
	"github.com/buttonicons/internal/db"
	"github.com/buttonicons/internal/view"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBlockNotFound       = errors.New("block not found")
	ErrUnknownIcon         = errors.New("icon is not in the catalog")
	ErrUnknownAction       = errors.New("unknown panel action")
	ErrInvalidIconSource   = errors.New("icon source must be library or custom")
	ErrUnsupportedBlock    = errors.New("block type does not support icons")
	ErrEmptyAttributePatch = errors.New("attribute patch is empty")
	ErrCustomIconMismatch  = errors.New("custom icon must match customIconSvg")
	ErrInvalidStyle        = errors.New("invalid inline style declaration")
)

var styleKeyPattern = regexp.MustCompile(`^(--)?[a-zA-Z][a-zA-Z0-9-]*$`)

// Panel actions accepted by ApplyAction.
const (
	ActionSelectLibrary      = "select-library"
	ActionSelectCustom       = "select-custom"
	ActionChangeCustomSVG    = "change-custom-svg"
	ActionRemoveCustomIcon   = "remove-custom-icon"
	ActionPickIcon           = "pick-icon"
	ActionTogglePositionLeft = "toggle-position-left"
	ActionToggleJustify      = "toggle-justify-space-between"
)

const (
	defaultBlockPerPage = 20
	maxBlockPerPage     = 100
)

// BlockService 负责按钮区块及其属性的持久化。
type BlockService struct {
	db *gorm.DB
}

// BlockInput describes a new button block.
type BlockInput struct {
	Name       string
	Text       string
	URL        string
	ClassName  string
	Style      map[string]string
	Attributes buttonicon.AttributeBag
}

// BlockFilter describes pagination for listing blocks.
type BlockFilter struct {
	Page    int
	PerPage int
}

// BlockListResult aggregates paginated list data.
type BlockListResult struct {
	Blocks     []db.ButtonBlock
	Total      int64
	TotalPages int
	Page       int
	PerPage    int
}

// PanelAction is one user interaction with the icon panel.
type PanelAction struct {
	Action string `json:"action"`
	Value  string `json:"value"`
}

// ActionResult carries the updated block and the partial update that was applied.
type ActionResult struct {
	Block   *db.ButtonBlock
	Patch   buttonicon.Patch
	Changed bool
}

// NewBlockService creates a BlockService instance.
func NewBlockService(gdb *gorm.DB) *BlockService {
	return &BlockService{db: gdb}
}

// Create 新建区块，属性缺省值来自注册的属性声明。
func (s *BlockService) Create(input BlockInput) (*db.ButtonBlock, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = buttonicon.ButtonBlockName
	}
	if name != buttonicon.ButtonBlockName {
		return nil, ErrUnsupportedBlock
	}

	attrs := buttonicon.ResolveDefaults(input.Attributes)
	if err := validateSelection(attrs); err != nil {
		return nil, err
	}
	style, err := copyStyle(input.Style)
	if err != nil {
		return nil, err
	}

	block := &db.ButtonBlock{
		ClientID:  uuid.NewString(),
		Name:      name,
		Text:      strings.TrimSpace(input.Text),
		URL:       strings.TrimSpace(input.URL),
		ClassName: buttonicon.JoinClassNames(input.ClassName),
		Style:     style,
	}
	block.SetAttributeBag(input.Attributes)

	if err := s.db.Create(block).Error; err != nil {
		return nil, err
	}
	log.Printf("[blocks] created %s (id=%d icon=%q source=%s)", block.ClientID, block.ID, derefString(block.Icon), block.IconSource)
	return block, nil
}

// Get loads a block by id.
func (s *BlockService) Get(id uint) (*db.ButtonBlock, error) {
	var block db.ButtonBlock
	if err := s.db.First(&block, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlockNotFound
		}
		return nil, err
	}
	return &block, nil
}

// List returns blocks ordered by creation time, newest first.
func (s *BlockService) List(filter BlockFilter) (*BlockListResult, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage <= 0 {
		perPage = defaultBlockPerPage
	}
	if perPage > maxBlockPerPage {
		perPage = maxBlockPerPage
	}

	var total int64
	if err := s.db.Model(&db.ButtonBlock{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var blocks []db.ButtonBlock
	if err := s.db.Order("created_at desc, id desc").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return &BlockListResult{
		Blocks:     blocks,
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

// Delete removes a block. Its attributes go with it.
func (s *BlockService) Delete(id uint) error {
	result := s.db.Delete(&db.ButtonBlock{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBlockNotFound
	}
	return nil
}

// SetAttributes merges patch into the stored attributes, the way the editor's
// setAttributes does. No normalization is applied: the stored state may be
// inconsistent if the caller sends an inconsistent patch.
func (s *BlockService) SetAttributes(id uint, patch buttonicon.Patch) (*db.ButtonBlock, error) {
	if patch.IsEmpty() {
		return nil, ErrEmptyAttributePatch
	}

	block, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	block.SetAttributeBag(buttonicon.Merge(block.AttributeBag(), patch))
	if err := s.db.Save(block).Error; err != nil {
		return nil, err
	}
	return block, nil
}

// ApplyAction runs a panel action against the stored attributes and persists the
// resulting partial update.
func (s *BlockService) ApplyAction(id uint, action PanelAction) (*ActionResult, error) {
	block, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	patch, changed, err := panelPatch(block.Attributes(), action)
	if err != nil {
		return nil, err
	}
	if !changed {
		return &ActionResult{Block: block, Patch: patch, Changed: false}, nil
	}

	block.SetAttributeBag(buttonicon.Merge(block.AttributeBag(), patch))
	if err := s.db.Save(block).Error; err != nil {
		return nil, err
	}
	log.Printf("[blocks] %s on block %d", action.Action, block.ID)
	return &ActionResult{Block: block, Patch: patch, Changed: true}, nil
}

// Presentation resolves the class names and CSS variable for a stored block.
func (s *BlockService) Presentation(id uint) (buttonicon.Presentation, error) {
	block, err := s.Get(id)
	if err != nil {
		return buttonicon.Presentation{}, err
	}
	return buttonicon.Resolve(block.Attributes()), nil
}

func panelPatch(attrs buttonicon.Attributes, action PanelAction) (buttonicon.Patch, bool, error) {
	switch strings.TrimSpace(action.Action) {
	case ActionSelectLibrary:
		patch, changed := buttonicon.SelectLibrarySource(attrs)
		return patch, changed, nil
	case ActionSelectCustom:
		patch, changed := buttonicon.SelectCustomSource(attrs)
		return patch, changed, nil
	case ActionChangeCustomSVG:
		return buttonicon.ChangeCustomSVG(action.Value), true, nil
	case ActionRemoveCustomIcon:
		return buttonicon.RemoveCustomIcon(), true, nil
	case ActionPickIcon:
		if !view.IsButtonIcon(action.Value) {
			return buttonicon.Patch{}, false, ErrUnknownIcon
		}
		return buttonicon.PickLibraryIcon(attrs, action.Value), true, nil
	case ActionTogglePositionLeft:
		return buttonicon.TogglePositionLeft(attrs), true, nil
	case ActionToggleJustify:
		return buttonicon.ToggleJustifySpaceBetween(attrs), true, nil
	default:
		return buttonicon.Patch{}, false, ErrUnknownAction
	}
}

// validateSelection 在选择时校验图标：库模式只接受目录中的图标，
// 自定义模式下 icon 必须与 customIconSvg 一致。
func validateSelection(attrs buttonicon.Attributes) error {
	switch attrs.IconSource {
	case buttonicon.SourceLibrary:
		if attrs.Icon != "" && !view.IsButtonIcon(attrs.Icon) {
			return ErrUnknownIcon
		}
	case buttonicon.SourceCustom:
		if attrs.Icon != buttonicon.CustomIconFor(attrs.CustomIconSVG) {
			return ErrCustomIconMismatch
		}
	default:
		return ErrInvalidIconSource
	}
	return nil
}

func copyStyle(style map[string]string) (map[string]string, error) {
	if len(style) == 0 {
		return nil, nil
	}
	copied := make(map[string]string, len(style))
	for key, value := range style {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		value = strings.TrimSpace(value)
		if !validStyleDeclaration(key, value) {
			return nil, ErrInvalidStyle
		}
		copied[key] = value
	}
	return copied, nil
}

// validStyleDeclaration 只接受单条声明：属性名合法，值中不能出现 ; { }。
func validStyleDeclaration(key, value string) bool {
	return styleKeyPattern.MatchString(key) && !strings.ContainsAny(value, ";{}")
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
