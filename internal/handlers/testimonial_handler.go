package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clippercuts/booking-api/internal/models"
)

type TestimonialHandler struct {
	db *gorm.DB
}

func NewTestimonialHandler(db *gorm.DB) *TestimonialHandler {
	return &TestimonialHandler{db: db}
}

type UpdateTestimonialRequest struct {
	Name     *string `json:"name,omitempty"`
	Text     *string `json:"text,omitempty"`
	Rating   *int    `json:"rating,omitempty"`
	Approved *bool   `json:"approved,omitempty"`
}

func (h *TestimonialHandler) List(c *gin.Context) {
	approvedStr := strings.TrimSpace(c.Query("approved"))

	q := h.db.Session(&gorm.Session{})

	if approvedStr == "true" {
		q = q.Where("approved = ?", true)
	} else if approvedStr == "false" {
		q = q.Where("approved = ?", false)
	}

	var testimonials []models.Testimonial
	if err := q.Order("created_at DESC").Find(&testimonials).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_testimonials"})
		return
	}

	c.JSON(http.StatusOK, testimonials)
}

func (h *TestimonialHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var t models.Testimonial
	if err := h.db.First(&t, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "testimonial_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_testimonial"})
		return
	}

	var req UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Text != nil {
		t.Text = *req.Text
	}
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_rating"})
			return
		}
		t.Rating = *req.Rating
	}
	if req.Approved != nil {
		t.Approved = *req.Approved
	}

	if err := h.db.Save(&t).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_testimonial"})
		return
	}

	c.JSON(http.StatusOK, t)
}

func (h *TestimonialHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.Testimonial{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_testimonial"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "testimonial_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
