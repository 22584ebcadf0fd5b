package handlers

import (
	"net/http"

	"glowdesk/middleware"
	"glowdesk/models"
	"glowdesk/services/staff"
	"glowdesk/utils"

	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	Svc staff.StaffService
}

func NewStaffHandler(svc staff.StaffService) *StaffHandler {
	return &StaffHandler{Svc: svc}
}

func staffStatusFor(err error) int {
	switch staff.CodeOf(err) {
	case "validationError":
		return http.StatusBadRequest
	case "duplicateWindow":
		return http.StatusConflict
	case "notFound":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// CreateStaff adds a staff member to the signed-in business.
// POST /api/business/staff
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	member, err := h.Svc.CreateStaff(middleware.BusinessID(c), input.Name, input.Role)
	if err != nil {
		utils.JSONError(c, staffStatusFor(err), "failed to create staff", err.Error())
		return
	}
	c.JSON(http.StatusCreated, member)
}

// ListStaff returns the business's staff roster.
// GET /api/business/staff
func (h *StaffHandler) ListStaff(c *gin.Context) {
	members, err := h.Svc.ListStaff(middleware.BusinessID(c))
	if err != nil {
		utils.JSONError(c, staffStatusFor(err), "failed to list staff", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": members})
}

// SetActive enables or disables a staff member for booking.
// PUT /api/business/staff/:id/active
func (h *StaffHandler) SetActive(c *gin.Context) {
	var input struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Svc.SetActive(middleware.BusinessID(c), c.Param("id"), *input.Active); err != nil {
		utils.JSONError(c, staffStatusFor(err), "failed to update staff", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// SetWindow creates a weekly availability window for a staff member.
// POST /api/business/staff/:id/windows
func (h *StaffHandler) SetWindow(c *gin.Context) {
	var input models.AvailabilityWindow
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	input.StaffID = c.Param("id")

	win, err := h.Svc.SetWindow(middleware.BusinessID(c), input)
	if err != nil {
		utils.JSONError(c, staffStatusFor(err), "failed to set window", err.Error())
		return
	}
	c.JSON(http.StatusCreated, win)
}

// UpdateWindow edits an existing availability window.
// PUT /api/business/staff/:id/windows/:windowID
func (h *StaffHandler) UpdateWindow(c *gin.Context) {
	var input models.AvailabilityWindow
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	input.StaffID = c.Param("id")
	input.ID = c.Param("windowID")

	if err := h.Svc.UpdateWindow(middleware.BusinessID(c), input); err != nil {
		utils.JSONError(c, staffStatusFor(err), "failed to update window", err.Error())
		return
	}
	c.JSON(http.StatusOK, input)
}

// DeleteWindow removes an availability window.
// DELETE /api/business/staff/:id/windows/:windowID
func (h *StaffHandler) DeleteWindow(c *gin.Context) {
	if err := h.Svc.DeleteWindow(middleware.BusinessID(c), c.Param("id"), c.Param("windowID")); err != nil {
		utils.JSONError(c, staffStatusFor(err), "failed to delete window", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ListWindows returns a staff member's weekly availability.
// GET /api/business/staff/:id/windows
func (h *StaffHandler) ListWindows(c *gin.Context) {
	wins, err := h.Svc.Windows(middleware.BusinessID(c), c.Param("id"))
	if err != nil {
		utils.JSONError(c, staffStatusFor(err), "failed to list windows", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"windows": wins})
}
