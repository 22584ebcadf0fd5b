package handlers

import (
	"net/http"

	"glowdesk/middleware"
	"glowdesk/models"
	"glowdesk/services/catalog"
	"glowdesk/utils"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	Svc catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Svc: svc}
}

func catalogStatusFor(err error) int {
	switch catalog.CodeOf(err) {
	case "validationError":
		return http.StatusBadRequest
	case "notFound":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// CreateService adds an offering to the business's catalog.
// POST /api/business/services
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var input models.Service
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Svc.CreateService(middleware.BusinessID(c), input)
	if err != nil {
		utils.JSONError(c, catalogStatusFor(err), "failed to create service", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListServices returns the business's catalog.
// GET /api/business/services
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Svc.ListServices(middleware.BusinessID(c))
	if err != nil {
		utils.JSONError(c, catalogStatusFor(err), "failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// UpdateService edits an offering.
// PUT /api/business/services/:id
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var input models.Service
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	input.ID = c.Param("id")

	updated, err := h.Svc.UpdateService(middleware.BusinessID(c), input)
	if err != nil {
		utils.JSONError(c, catalogStatusFor(err), "failed to update service", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetServiceActive toggles whether an offering can be booked.
// PUT /api/business/services/:id/active
func (h *CatalogHandler) SetServiceActive(c *gin.Context) {
	var input struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Svc.SetActive(middleware.BusinessID(c), c.Param("id"), *input.Active); err != nil {
		utils.JSONError(c, catalogStatusFor(err), "failed to update service", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
