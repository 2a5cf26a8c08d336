package handler

import (
	"net/http"
	"strings"

	"github.com/buttonicons/internal/buttonicon"
	"github.com/buttonicons/internal/locale"
	"github.com/buttonicons/internal/view"
	"github.com/gin-gonic/gin"
)

type encodeSVGPayload struct {
	SVG string `json:"svg"`
}

// coreBlockTypes 为宿主编辑器注册的区块类型及其原始属性。
var coreBlockTypes = map[string]buttonicon.BlockType{
	"core/button": {
		Name:  "core/button",
		Title: "Button",
		Attributes: map[string]buttonicon.AttributeSpec{
			"text":      {Type: "string"},
			"url":       {Type: "string"},
			"className": {Type: "string"},
			"style":     {Type: "object"},
		},
	},
	"core/paragraph": {
		Name:  "core/paragraph",
		Title: "Paragraph",
		Attributes: map[string]buttonicon.AttributeSpec{
			"content":   {Type: "string"},
			"className": {Type: "string"},
		},
	},
}

// ListIcons returns the icon picker grid in presentation order.
func (a *API) ListIcons(c *gin.Context) {
	language := a.requestLanguage(c)
	c.JSON(http.StatusOK, gin.H{
		"icons": view.ButtonIconOptions(language),
	})
}

// GetIcon returns one catalog icon.
func (a *API) GetIcon(c *gin.Context) {
	language := a.requestLanguage(c)
	icon, ok := view.FindButtonIcon(c.Param("value"))
	if !ok {
		respondError(c, http.StatusNotFound, locale.Pick(language, "Icon not found", "图标不存在"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"icon": view.ButtonIconOption{
		Value: icon.Value,
		Label: icon.LocalizedLabel(language),
		SVG:   icon.SVG,
	}})
}

// GetBlockType returns the block settings after the attribute registration hook ran.
func (a *API) GetBlockType(c *gin.Context) {
	name := strings.Trim(c.Param("namespace"), "/") + "/" + strings.Trim(c.Param("name"), "/")
	settings, ok := coreBlockTypes[name]
	if !ok {
		respondError(c, http.StatusNotFound, locale.Pick(a.requestLanguage(c), "Block type not found", "区块类型不存在"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"blockType": buttonicon.RegisterAttributes(settings)})
}

// EncodeSVG 供自定义 SVG 输入框实时预览使用。
func (a *API) EncodeSVG(c *gin.Context) {
	var payload encodeSVGPayload
	if !bindJSON(c, &payload, locale.Pick(a.requestLanguage(c), "Invalid SVG payload", "SVG 内容格式不正确")) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"value": buttonicon.EncodeSVGForCSS(payload.SVG)})
}
