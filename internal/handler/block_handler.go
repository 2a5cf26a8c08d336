package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/buttonicons/internal/buttonicon"
	"github.com/buttonicons/internal/db"
	"github.com/buttonicons/internal/locale"
	"github.com/buttonicons/internal/service"
	"github.com/gin-gonic/gin"
)

type blockPayload struct {
	Name       string                  `json:"name"`
	Text       string                  `json:"text"`
	URL        string                  `json:"url"`
	ClassName  string                  `json:"className"`
	Style      map[string]string       `json:"style"`
	Attributes buttonicon.AttributeBag `json:"attributes"`
}

type blockResponse struct {
	ID           uint                    `json:"id"`
	ClientID     string                  `json:"clientId"`
	Name         string                  `json:"name"`
	Text         string                  `json:"text"`
	URL          string                  `json:"url,omitempty"`
	ClassName    string                  `json:"className,omitempty"`
	Style        map[string]string       `json:"style,omitempty"`
	Attributes   buttonicon.AttributeBag `json:"attributes"`
	Presentation buttonicon.Presentation `json:"presentation"`
	UpdatedAt    string                  `json:"updatedAt"`
}

func newBlockResponse(block *db.ButtonBlock) blockResponse {
	return blockResponse{
		ID:           block.ID,
		ClientID:     block.ClientID,
		Name:         block.Name,
		Text:         block.Text,
		URL:          block.URL,
		ClassName:    block.ClassName,
		Style:        block.Style,
		Attributes:   block.AttributeBag(),
		Presentation: buttonicon.Resolve(block.Attributes()),
		UpdatedAt:    block.UpdatedAt.In(time.Local).Format("2006-01-02 15:04"),
	}
}

// ListBlocks returns a page of button blocks.
func (a *API) ListBlocks(c *gin.Context) {
	result, err := a.blocks.List(service.BlockFilter{
		Page:    parsePositiveIntQuery(c, "page", 1),
		PerPage: parsePositiveIntQuery(c, "per_page", 0),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, locale.Pick(a.requestLanguage(c), "Failed to load blocks", "加载区块失败"))
		return
	}

	blocks := make([]blockResponse, 0, len(result.Blocks))
	for i := range result.Blocks {
		blocks = append(blocks, newBlockResponse(&result.Blocks[i]))
	}
	c.JSON(http.StatusOK, gin.H{
		"blocks":     blocks,
		"total":      result.Total,
		"page":       result.Page,
		"perPage":    result.PerPage,
		"totalPages": result.TotalPages,
	})
}

// CreateBlock inserts a new button block.
func (a *API) CreateBlock(c *gin.Context) {
	language := a.requestLanguage(c)

	var payload blockPayload
	if !bindJSON(c, &payload, locale.Pick(language, "Invalid block payload", "区块内容格式不正确")) {
		return
	}

	block, err := a.blocks.Create(service.BlockInput{
		Name:       payload.Name,
		Text:       payload.Text,
		URL:        payload.URL,
		ClassName:  payload.ClassName,
		Style:      payload.Style,
		Attributes: payload.Attributes,
	})
	if err != nil {
		a.respondBlockError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"block": newBlockResponse(block)})
}

// GetBlock returns one block with its resolved presentation.
func (a *API) GetBlock(c *gin.Context) {
	block, ok := a.loadBlock(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"block": newBlockResponse(block)})
}

// DeleteBlock removes a block.
func (a *API) DeleteBlock(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, locale.Pick(a.requestLanguage(c), "Invalid block id", "区块 ID 不正确"))
		return
	}
	if err := a.blocks.Delete(id); err != nil {
		a.respondBlockError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateBlockAttributes merges a partial attribute update, like setAttributes.
func (a *API) UpdateBlockAttributes(c *gin.Context) {
	language := a.requestLanguage(c)
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, locale.Pick(language, "Invalid block id", "区块 ID 不正确"))
		return
	}

	var patch buttonicon.Patch
	if !bindJSON(c, &patch, locale.Pick(language, "Invalid attribute payload", "属性格式不正确")) {
		return
	}

	block, err := a.blocks.SetAttributes(id, patch)
	if err != nil {
		a.respondBlockError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"block": newBlockResponse(block)})
}

// ApplyBlockAction runs one icon panel action.
func (a *API) ApplyBlockAction(c *gin.Context) {
	language := a.requestLanguage(c)
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, locale.Pick(language, "Invalid block id", "区块 ID 不正确"))
		return
	}

	var action service.PanelAction
	if !bindJSON(c, &action, locale.Pick(language, "Invalid action payload", "操作格式不正确")) {
		return
	}

	result, err := a.blocks.ApplyAction(id, action)
	if err != nil {
		a.respondBlockError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"block":   newBlockResponse(result.Block),
		"patch":   result.Patch,
		"changed": result.Changed,
	})
}

// GetBlockPresentation returns the resolver output for a block.
func (a *API) GetBlockPresentation(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, locale.Pick(a.requestLanguage(c), "Invalid block id", "区块 ID 不正确"))
		return
	}
	presentation, err := a.blocks.Presentation(id)
	if err != nil {
		a.respondBlockError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"presentation": presentation,
		"property":     buttonicon.CustomIconProperty,
	})
}

// RenderBlock serves the rendered block as a standalone page.
func (a *API) RenderBlock(c *gin.Context) {
	block, ok := a.loadBlock(c)
	if !ok {
		return
	}

	page, err := a.renderer.RenderPage(block, a.requestLanguage(c))
	if err != nil {
		log.Printf("[blocks] render %d failed: %v", block.ID, err)
		respondError(c, http.StatusInternalServerError, locale.Pick(a.requestLanguage(c), "Failed to render block", "区块渲染失败"))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

func (a *API) loadBlock(c *gin.Context) (*db.ButtonBlock, bool) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, locale.Pick(a.requestLanguage(c), "Invalid block id", "区块 ID 不正确"))
		return nil, false
	}
	block, err := a.blocks.Get(id)
	if err != nil {
		a.respondBlockError(c, err)
		return nil, false
	}
	return block, true
}

func (a *API) respondBlockError(c *gin.Context, err error) {
	language := a.requestLanguage(c)
	switch {
	case errors.Is(err, service.ErrBlockNotFound):
		respondError(c, http.StatusNotFound, locale.Pick(language, "Block not found", "区块不存在"))
	case errors.Is(err, service.ErrUnknownIcon):
		respondError(c, http.StatusBadRequest, locale.Pick(language, "Icon is not in the library", "图标不在图标库中"))
	case errors.Is(err, service.ErrUnknownAction):
		respondError(c, http.StatusBadRequest, locale.Pick(language, "Unknown panel action", "未知的面板操作"))
	case errors.Is(err, service.ErrInvalidIconSource):
		respondError(c, http.StatusBadRequest, locale.Pick(language, "Icon source must be library or custom", "图标来源只能是 library 或 custom"))
	case errors.Is(err, service.ErrUnsupportedBlock):
		respondError(c, http.StatusBadRequest, locale.Pick(language, "Only button blocks are supported", "仅支持按钮区块"))
	case errors.Is(err, service.ErrCustomIconMismatch):
		respondError(c, http.StatusBadRequest, locale.Pick(language, "Custom icon does not match the SVG markup", "自定义图标与 SVG 内容不一致"))
	case errors.Is(err, service.ErrInvalidStyle):
		respondError(c, http.StatusBadRequest, locale.Pick(language, "Invalid inline style", "内联样式不合法"))
	case errors.Is(err, service.ErrEmptyAttributePatch):
		respondError(c, http.StatusBadRequest, locale.Pick(language, "No attributes to update", "没有需要更新的属性"))
	default:
		log.Printf("[blocks] request failed: %v", err)
		respondError(c, http.StatusInternalServerError, locale.Pick(language, "Operation failed, please retry", "操作失败，请稍后重试"))
	}
}
