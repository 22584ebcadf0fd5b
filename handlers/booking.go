package handlers

import (
	"net/http"
	"strconv"
	"time"

	"glowdesk/middleware"
	"glowdesk/services/booking"
	"glowdesk/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the scheduling surface over HTTP.
type BookingHandler struct {
	Svc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// statusFor maps booking error codes to HTTP statuses.
func statusFor(err error) int {
	switch booking.CodeOf(err) {
	case "validationError":
		return http.StatusBadRequest
	case "notFound":
		return http.StatusNotFound
	case "slotTaken":
		return http.StatusConflict
	case "staffBusy":
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// GetAvailableDays returns the dates in a range on which a staff member
// has any availability.
// GET /api/portal/:businessID/days?staffId=&from=2006-01-02&to=2006-01-02
func (h *BookingHandler) GetAvailableDays(c *gin.Context) {
	businessID := c.Param("businessID")
	staffID := c.Query("staffId")
	from, err1 := time.Parse("2006-01-02", c.Query("from"))
	to, err2 := time.Parse("2006-01-02", c.Query("to"))
	if staffID == "" || err1 != nil || err2 != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid query", "staffId, from and to (YYYY-MM-DD) are required")
		return
	}

	days, err := h.Svc.AvailableDays(businessID, staffID, from, to)
	if err != nil {
		utils.JSONError(c, statusFor(err), "failed to compute available days", err.Error())
		return
	}

	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, d.Format("2006-01-02"))
	}
	c.JSON(http.StatusOK, gin.H{"days": out})
}

// GetAvailableSlots returns the bookable start times for a date.
// GET /api/portal/:businessID/slots?staffId=&serviceId=&date=2006-01-02
func (h *BookingHandler) GetAvailableSlots(c *gin.Context) {
	businessID := c.Param("businessID")
	staffID := c.Query("staffId")
	serviceID := c.Query("serviceId")
	date := c.Query("date")
	if staffID == "" || serviceID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid query", "staffId, serviceId and date are required")
		return
	}

	slots, err := h.Svc.AvailableSlots(businessID, staffID, serviceID, date)
	if err != nil {
		utils.JSONError(c, statusFor(err), "failed to compute available slots", err.Error())
		return
	}
	if slots == nil {
		slots = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// CreateBooking books an appointment.
// POST /api/portal/:businessID/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req booking.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	req.BusinessID = c.Param("businessID")

	appt, err := h.Svc.Book(req)
	if err != nil {
		utils.JSONError(c, statusFor(err), "booking failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// RescheduleBooking moves an appointment to a new date/time.
// PUT /api/business/bookings/:id/reschedule
func (h *BookingHandler) RescheduleBooking(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Svc.Reschedule(middleware.BusinessID(c), c.Param("id"), input.Date, input.Time)
	if err != nil {
		utils.JSONError(c, statusFor(err), "reschedule failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CancelBooking cancels an appointment, freeing its slot.
// PUT /api/business/bookings/:id/cancel
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	if err := h.Svc.Cancel(middleware.BusinessID(c), c.Param("id")); err != nil {
		utils.JSONError(c, statusFor(err), "cancel failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// CompleteBooking marks an appointment completed.
// PUT /api/business/bookings/:id/complete
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	if err := h.Svc.Complete(middleware.BusinessID(c), c.Param("id")); err != nil {
		utils.JSONError(c, statusFor(err), "complete failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "completed"})
}

// GetCustomerAppointments lists a customer's booking history, most
// recent first.
// GET /api/business/customers/:id/appointments?limit=50
func (h *BookingHandler) GetCustomerAppointments(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	if err != nil || limit < 1 {
		utils.JSONError(c, http.StatusBadRequest, "invalid query", "limit must be a positive integer")
		return
	}
	appts, err := h.Svc.CustomerAppointments(c.Param("id"), limit)
	if err != nil {
		utils.JSONError(c, statusFor(err), "failed to load appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// GetDayCalendar returns every appointment for the business on a date.
// GET /api/business/calendar?date=2006-01-02
func (h *BookingHandler) GetDayCalendar(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid query", "date is required")
		return
	}
	appts, err := h.Svc.DayCalendar(middleware.BusinessID(c), date)
	if err != nil {
		utils.JSONError(c, statusFor(err), "failed to load calendar", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
