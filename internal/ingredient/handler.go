package ingredient

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"profranchising/internal/apperr"
	"profranchising/internal/response"
	"profranchising/internal/validation"
)

var inputSchema = validation.Schema{
	{Name: "name", Kind: validation.String},
	{Name: "unity", Kind: validation.String},
	{Name: "price", Kind: validation.Number},
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /ingredients
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var in Input
	if err := validation.DecodeReader(c.Request.Body, inputSchema, &in); err != nil {
		response.Error(c, err)
		return
	}

	ing, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, ing)
}

// --------------------------------------------------
// GET /ingredients
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// --------------------------------------------------
// GET /ingredients/:id
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	ing, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, ing)
}

// --------------------------------------------------
// PUT /ingredients/:id
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var in Input
	if err := validation.DecodeReader(c.Request.Body, inputSchema, &in); err != nil {
		response.Error(c, err)
		return
	}

	msg, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusAccepted, msg)
}

// --------------------------------------------------
// DELETE /ingredients/:id
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	msg, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusAccepted, msg)
}

func pathID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", apperr.Validation("Ingredient Id is not valid")
	}
	return id, nil
}
