package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/clippercuts/booking-api/internal/domain/booking"
	"github.com/clippercuts/booking-api/internal/models"
)

type SpecialDateHandler struct {
	db *gorm.DB
}

func NewSpecialDateHandler(db *gorm.DB) *SpecialDateHandler {
	return &SpecialDateHandler{db: db}
}

type CreateSpecialDateRequest struct {
	Date     string `json:"date" binding:"required"` // YYYY-MM-DD
	IsClosed *bool  `json:"is_closed,omitempty"`
	Reason   string `json:"reason"`
}

func (h *SpecialDateHandler) List(c *gin.Context) {
	var dates []models.SpecialDate
	if err := h.db.Order("date ASC").Find(&dates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_special_dates"})
		return
	}

	c.JSON(http.StatusOK, dates)
}

func (h *SpecialDateHandler) Create(c *gin.Context) {
	var req CreateSpecialDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if _, err := time.Parse(domain.DateLayout, req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
		return
	}

	closed := true
	if req.IsClosed != nil {
		closed = *req.IsClosed
	}

	sd := models.SpecialDate{
		Date:     req.Date,
		IsClosed: closed,
		Reason:   req.Reason,
	}

	if err := h.db.Create(&sd).Error; err != nil {
		if err == gorm.ErrDuplicatedKey {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date_already_exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_special_date"})
		return
	}

	c.JSON(http.StatusCreated, sd)
}

func (h *SpecialDateHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.SpecialDate{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_special_date"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "special_date_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
