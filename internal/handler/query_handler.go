package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omerga/whereabouts-backend-go/internal/models"
	"github.com/omerga/whereabouts-backend-go/internal/service"
	"github.com/omerga/whereabouts-backend-go/internal/session"
	"github.com/omerga/whereabouts-backend-go/pkg/response"
)

// QueryHandler handles HTTP requests for natural language queries and the
// derived map scene
type QueryHandler struct {
	service *service.QueryService
}

// NewQueryHandler creates a new query handler
func NewQueryHandler(service *service.QueryService) *QueryHandler {
	return &QueryHandler{service: service}
}

// Query handles POST /api/v1/query
func (h *QueryHandler) Query(c *gin.Context) {
	var req models.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid query request", err)
		return
	}

	result, scene, err := h.service.Query(c.Request.Context(), req.Query)
	if err != nil {
		if errors.Is(err, session.ErrStaleResult) {
			// A newer query won; the prior map state stays displayed.
			response.Error(c, http.StatusConflict, "Query superseded by a newer one", err)
			return
		}
		response.Error(c, http.StatusBadGateway, "Query service failed", err)
		return
	}

	response.Success(c, gin.H{
		"result": result,
		"scene":  scene,
	})
}

// GetScene handles GET /api/v1/scene
func (h *QueryHandler) GetScene(c *gin.Context) {
	response.Success(c, h.service.Scene())
}

// ToggleVisibility handles POST /api/v1/scene/visibility
func (h *QueryHandler) ToggleVisibility(c *gin.Context) {
	var req struct {
		Person string `json:"person" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid visibility request", err)
		return
	}

	response.Success(c, h.service.ToggleVisibility(req.Person))
}

// SetMode handles POST /api/v1/scene/mode
func (h *QueryHandler) SetMode(c *gin.Context) {
	var req struct {
		Mode    string `json:"mode" binding:"required"`
		Enabled *bool  `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid mode request", err)
		return
	}

	scene, ok := h.service.SetMode(req.Mode, *req.Enabled)
	if !ok {
		response.BadRequest(c, "Unknown display mode: "+req.Mode, nil)
		return
	}

	response.Success(c, scene)
}
