// Package httpresp holds the success-response helpers shared by the JSON
// handlers. List payloads always carry a total so clients never count rows
// themselves.
package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// List writes a collection inside the ListResponse envelope. A nil slice
// still serializes with a zero total.
func List[T any](c *gin.Context, data []T) {
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
