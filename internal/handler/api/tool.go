package api

import (
	"errors"
	"net/http"

	resdto "toolrental-service/internal/handler/dto/response"
	"toolrental-service/internal/handler/httperr"
	"toolrental-service/internal/pkg/errs"
	"toolrental-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ToolHandler struct {
	toolQueries queries.ToolQueries
}

func NewToolHandler(toolQueries queries.ToolQueries) *ToolHandler {
	return &ToolHandler{
		toolQueries: toolQueries,
	}
}

// @Summary List tools
// @Description List all rentable tools
// @Tags tools
// @Produce json
// @Success 200 {array} resdto.ToolResponse
// @Router /api/tools [get]
func (h *ToolHandler) ListTools(c *gin.Context) {
	views := h.toolQueries.ListTools(c.Request.Context())

	tools := make([]*resdto.ToolResponse, len(views))
	for i := range views {
		tools[i] = resdto.FromToolView(&views[i])
	}
	c.JSON(http.StatusOK, tools)
}

// @Summary List tool types
// @Description List all tool types with rates and charge policies
// @Tags tools
// @Produce json
// @Success 200 {array} resdto.ToolTypeResponse
// @Router /api/tool-types [get]
func (h *ToolHandler) ListToolTypes(c *gin.Context) {
	views := h.toolQueries.ListToolTypes(c.Request.Context())

	types := make([]*resdto.ToolTypeResponse, len(views))
	for i := range views {
		types[i] = resdto.FromToolTypeView(&views[i])
	}
	c.JSON(http.StatusOK, types)
}

// @Summary Get tool
// @Description Get a tool by its code
// @Tags tools
// @Produce json
// @Param code path string true "Tool code"
// @Success 200 {object} resdto.ToolResponse
// @Failure 404 {object} map[string]string
// @Router /api/tools/{code} [get]
func (h *ToolHandler) GetTool(c *gin.Context) {
	code := c.Param("code")

	view, err := h.toolQueries.GetTool(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, errs.ErrToolNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		} else {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromToolView(view))
}
