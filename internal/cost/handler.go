package cost

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"profranchising/internal/apperr"
	"profranchising/internal/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GET /costs?name=
func (h *Handler) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// POST /costs/:productId
func (h *Handler) Compute(c *gin.Context) {
	id := c.Param("productId")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, apperr.Validation("Product Id is not valid"))
		return
	}

	rec, err := h.service.Compute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}
