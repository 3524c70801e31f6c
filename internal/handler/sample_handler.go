package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omerga/whereabouts-backend-go/internal/models"
	"github.com/omerga/whereabouts-backend-go/internal/repository"
	"github.com/omerga/whereabouts-backend-go/internal/service"
	"github.com/omerga/whereabouts-backend-go/pkg/response"
)

// SampleHandler handles HTTP requests for the location sample store
type SampleHandler struct {
	service *service.SampleService
}

// NewSampleHandler creates a new sample handler
func NewSampleHandler(service *service.SampleService) *SampleHandler {
	return &SampleHandler{service: service}
}

// GetSamples handles GET /api/v1/samples
func (h *SampleHandler) GetSamples(c *gin.Context) {
	var filter repository.SampleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	samples, err := h.service.GetSamples(filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get samples", err)
		return
	}

	response.Success(c, gin.H{
		"data":  samples,
		"count": len(samples),
	})
}

// IngestSamples handles POST /api/v1/samples
func (h *SampleHandler) IngestSamples(c *gin.Context) {
	var samples []models.LocationSample
	if err := c.ShouldBindJSON(&samples); err != nil {
		response.BadRequest(c, "Invalid sample payload", err)
		return
	}

	result, err := h.service.Ingest(samples)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to ingest samples", err)
		return
	}

	response.Success(c, result)
}
