package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/clippercuts/booking-api/internal/domain/booking"
	"github.com/clippercuts/booking-api/internal/httperr"
	"github.com/clippercuts/booking-api/internal/httpresp"
	"github.com/clippercuts/booking-api/internal/metrics"
	"github.com/clippercuts/booking-api/internal/models"
	"github.com/clippercuts/booking-api/internal/timezone"
	ucBooking "github.com/clippercuts/booking-api/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db           *gorm.DB
	availability *ucBooking.GetAvailability
	create       *ucBooking.CreateBooking
	shopTimezone string
}

func NewPublicHandler(
	db *gorm.DB,
	availability *ucBooking.GetAvailability,
	create *ucBooking.CreateBooking,
	shopTimezone string,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		availability: availability,
		create:       create,
		shopTimezone: shopTimezone,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	BarberID      uint   `json:"barber_id" binding:"required"`
	ServiceID     uint   `json:"service_id" binding:"required"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string `json:"time" binding:"required"` // HH:mm
	Notes         string `json:"notes"`
}

type PublicCreateTestimonialRequest struct {
	Name   string `json:"name" binding:"required"`
	Text   string `json:"text" binding:"required"`
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
}

////////////////////////////////////////////////////////
// BARBERS / SERVICES / TESTIMONIALS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	metrics.IncHTTP("public_barbers")

	var barbers []models.Barber
	if err := h.db.
		Where("active = true").
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not load barbers.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	metrics.IncHTTP("public_services")

	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Where("active = true")

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("price ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) ListTestimonials(c *gin.Context) {
	metrics.IncHTTP("public_testimonials")

	var testimonials []models.Testimonial
	if err := h.db.
		Where("approved = true").
		Order("created_at DESC").
		Find(&testimonials).Error; err != nil {
		httperr.Internal(c, "failed_to_list_testimonials", "Could not load testimonials.")
		return
	}

	httpresp.List(c, testimonials)
}

// CreateTestimonial stores the submission unapproved; staff review it before
// it shows on the site.
func (h *PublicHandler) CreateTestimonial(c *gin.Context) {
	metrics.IncHTTP("public_testimonial_create")

	var req PublicCreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid testimonial data.")
		return
	}

	t := models.Testimonial{
		Name:     strings.TrimSpace(req.Name),
		Text:     strings.TrimSpace(req.Text),
		Rating:   req.Rating,
		Approved: false,
	}

	if err := h.db.Create(&t).Error; err != nil {
		httperr.Internal(c, "failed_to_create_testimonial", "Could not save testimonial.")
		return
	}

	c.JSON(http.StatusCreated, t)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	metrics.IncHTTP("public_availability")

	dateStr := c.Query("date")
	barberIDStr := c.Query("barber_id")

	if dateStr == "" || barberIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Date and barber are required.")
		return
	}

	barberID, err := strconv.ParseUint(barberIDStr, 10, 64)
	if err != nil || barberID == 0 {
		httperr.BadRequest(c, "invalid_barber_id", "Invalid barber.")
		return
	}

	date, err := time.ParseInLocation(
		domain.DateLayout,
		dateStr,
		timezone.Location(h.shopTimezone),
	)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	av, err := h.availability.Execute(c.Request.Context(), uint(barberID), date)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Could not compute availability.")
		return
	}

	httpresp.OK(c, av)
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	metrics.IncHTTP("public_booking_create")

	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	b, err := h.create.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			BarberID:      req.BarberID,
			ServiceID:     req.ServiceID,
			Date:          req.Date,
			Time:          req.Time,
			Notes:         req.Notes,
		},
	)

	if err != nil {
		mapCreateBookingError(c, err)
		return
	}

	metrics.IncBookingCreated()
	c.JSON(http.StatusCreated, b)
}

// mapCreateBookingError turns usecase errors into user-facing responses.
// Storage detail never leaks; the customer gets an actionable message.
func mapCreateBookingError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case httperr.CodeSlotTaken:
		metrics.IncSlotConflict()
		httperr.Conflict(c, httperr.CodeSlotTaken, "That time was just booked. Please pick another slot.")
	case httperr.CodeValidationFailed:
		httperr.BadRequest(c, httperr.CodeValidationFailed, "Please fill in all required fields correctly.")
	case httperr.CodeInvalidSlot:
		httperr.BadRequest(c, httperr.CodeInvalidSlot, "Please pick a valid time slot.")
	case httperr.CodeDateInPast:
		httperr.BadRequest(c, httperr.CodeDateInPast, "That date has already passed.")
	case httperr.CodeTooSoon:
		httperr.BadRequest(c, httperr.CodeTooSoon, "That slot starts too soon. Please pick a later time.")
	case httperr.CodeTooFarAhead:
		httperr.BadRequest(c, httperr.CodeTooFarAhead, "That date is beyond the booking window.")
	case httperr.CodeBarberNotFound:
		httperr.BadRequest(c, httperr.CodeBarberNotFound, "Please pick a valid barber.")
	case httperr.CodeServiceNotFound:
		httperr.BadRequest(c, httperr.CodeServiceNotFound, "Please pick a valid service.")
	case httperr.CodeBarberNotWorking:
		httperr.BadRequest(c, httperr.CodeBarberNotWorking, "That barber does not work on the selected day.")
	case httperr.CodeShopClosed:
		httperr.BadRequest(c, httperr.CodeShopClosed, "The shop is closed on the selected date.")
	default:
		httperr.Internal(c, httperr.CodePersistenceFailed, "Could not save your booking. Please try again later.")
	}
}
