package handlers

import (
	"errors"
	"net/http"

	"glowdesk/middleware"
	"glowdesk/services/business"
	"glowdesk/utils"

	"github.com/gin-gonic/gin"
)

type BusinessHandler struct {
	Svc business.BusinessService
}

func NewBusinessHandler(svc business.BusinessService) *BusinessHandler {
	return &BusinessHandler{Svc: svc}
}

// Register creates a business account and signs its owner in.
// POST /api/auth/register
func (h *BusinessHandler) Register(c *gin.Context) {
	var req business.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	biz, token, err := h.Svc.Register(req)
	if err != nil {
		if errors.Is(err, business.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, "registration failed", err.Error())
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"business": biz, "token": token})
}

// SignIn authenticates a business owner.
// POST /api/auth/signin
func (h *BusinessHandler) SignIn(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	biz, token, err := h.Svc.SignIn(req.Email, req.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "sign in failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"business": biz, "token": token})
}

// GetBySlug resolves a booking-page slug to its business.
// GET /api/portal/resolve/:slug
func (h *BusinessHandler) GetBySlug(c *gin.Context) {
	biz, err := h.Svc.GetBySlug(c.Param("slug"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "business not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, biz)
}

// UpsertCustomer finds or creates a customer record for the portal.
// POST /api/portal/:businessID/customers
func (h *BusinessHandler) UpsertCustomer(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	customer, err := h.Svc.UpsertCustomer(c.Param("businessID"), req.Name, req.Email, req.Phone)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to save customer", err.Error())
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Me returns the signed-in business's own record.
// GET /api/business/me
func (h *BusinessHandler) Me(c *gin.Context) {
	biz, err := h.Svc.GetByID(middleware.BusinessID(c))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "business not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, biz)
}
