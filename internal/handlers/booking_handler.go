package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/clippercuts/booking-api/internal/domain/booking"
	"github.com/clippercuts/booking-api/internal/httperr"
	"github.com/clippercuts/booking-api/internal/httpresp"
	ucBooking "github.com/clippercuts/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	list         *ucBooking.ListBookings
	updateStatus *ucBooking.UpdateBookingStatus
}

func NewBookingHandler(
	list *ucBooking.ListBookings,
	updateStatus *ucBooking.UpdateBookingStatus,
) *BookingHandler {
	return &BookingHandler{
		list:         list,
		updateStatus: updateStatus,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	var barberID uint
	if s := c.Query("barber_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Invalid barber.")
			return
		}
		barberID = uint(id)
	}

	status := c.Query("status")

	bookings, err := h.list.ByDate(c.Request.Context(), dateStr, barberID, status)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeValidationFailed) {
			httperr.BadRequest(c, "invalid_query", "Invalid date or status filter.")
			return
		}
		httperr.Internal(c, "failed_to_list_bookings", "Could not load bookings.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	bookings, err := h.list.ByMonth(c.Request.Context(), year, month)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeValidationFailed) {
			httperr.BadRequest(c, "invalid_query", "Invalid year or month.")
			return
		}
		httperr.Internal(c, "failed_to_list_bookings", "Could not load bookings.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":     year,
		"month":    month,
		"bookings": bookings,
	})
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	b, err := h.updateStatus.Execute(
		c.Request.Context(),
		uint(id),
		domain.Status(req.Status),
	)
	if err != nil {
		switch httperr.BusinessCode(err) {
		case httperr.CodeBookingNotFound:
			httperr.NotFound(c, httperr.CodeBookingNotFound, "Booking not found.")
		case httperr.CodeInvalidState:
			httperr.BadRequest(c, httperr.CodeInvalidState, "That status change is not allowed.")
		default:
			httperr.Internal(c, "failed_to_update_booking", "Could not update booking.")
		}
		return
	}

	c.JSON(http.StatusOK, b)
}
