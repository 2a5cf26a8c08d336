package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/buttonicons/internal/buttonicon"
	"github.com/buttonicons/internal/service"
	"github.com/gin-gonic/gin"
)

func TestCreateBlockRejectsUnknownIcon(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	c, w := newJSONContext(t, http.MethodPost, "/admin/api/blocks", map[string]any{
		"text":       "Go",
		"attributes": map[string]any{"icon": "rocket"},
	})
	api.CreateBlock(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestUpdateBlockAttributesClearsIcon(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	icon := "next"
	block, err := api.blocks.Create(service.BlockInput{Text: "Next", Attributes: buttonicon.AttributeBag{Icon: &icon}})
	if err != nil {
		t.Fatalf("failed to seed block: %v", err)
	}
	id := strconv.FormatUint(uint64(block.ID), 10)

	c, w := newJSONContext(t, http.MethodPatch, "/admin/api/blocks/"+id+"/attributes", map[string]any{"icon": nil})
	c.Params = gin.Params{{Key: "id", Value: id}}
	api.UpdateBlockAttributes(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Block struct {
			Attributes   buttonicon.AttributeBag `json:"attributes"`
			Presentation buttonicon.Presentation `json:"presentation"`
		} `json:"block"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Block.Attributes.Icon != nil {
		t.Fatalf("expected icon to be cleared, got %q", *resp.Block.Attributes.Icon)
	}
	if len(resp.Block.Presentation.ClassNames) != 0 {
		t.Fatalf("expected no classes, got %v", resp.Block.Presentation.ClassNames)
	}
}

func TestApplyBlockActionReturnsPatch(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	block, err := api.blocks.Create(service.BlockInput{Text: "Custom"})
	if err != nil {
		t.Fatalf("failed to seed block: %v", err)
	}
	id := strconv.FormatUint(uint64(block.ID), 10)

	c, w := newJSONContext(t, http.MethodPost, "/admin/api/blocks/"+id+"/actions", map[string]string{
		"action": service.ActionRemoveCustomIcon,
	})
	c.Params = gin.Params{{Key: "id", Value: id}}
	api.ApplyBlockAction(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Patch   map[string]any `json:"patch"`
		Changed bool           `json:"changed"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Changed {
		t.Fatal("expected action to report a change")
	}
	if value, ok := resp.Patch["icon"]; !ok || value != nil {
		t.Fatalf("expected icon null in patch, got %v", resp.Patch)
	}
	if resp.Patch["iconSource"] != "custom" {
		t.Fatalf("expected iconSource custom, got %v", resp.Patch["iconSource"])
	}
}

func TestGetBlockPresentationNotFound(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	c, w := newJSONContext(t, http.MethodGet, "/admin/api/blocks/42/presentation", nil)
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	api.GetBlockPresentation(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestRenderBlockInvalidID(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	c, w := newJSONContext(t, http.MethodGet, "/blocks/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	api.RenderBlock(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}
