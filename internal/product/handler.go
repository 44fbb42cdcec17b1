package product

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
	{Name: "price", Kind: validation.Number},
	{Name: "quantity", Kind: validation.Integer},
	{Name: "ingredients", Kind: validation.Array, Items: validation.Schema{
		{Name: "name", Kind: validation.String},
		{Name: "quantity", Kind: validation.Number},
	}},
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /products
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var in Input
	if err := validation.DecodeReader(c.Request.Body, inputSchema, &in); err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

// --------------------------------------------------
// GET /products
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	products, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// --------------------------------------------------
// GET /products/:id
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// --------------------------------------------------
// PUT /products/:id
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
// DELETE /products/:id
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

// --------------------------------------------------
// PUT /products/:id/image
// --------------------------------------------------
func (h *Handler) UploadImage(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		response.Error(c, apperr.Validation(`"image" is required`))
		return
	}

	file, err := header.Open()
	if err != nil {
		response.Error(c, apperr.Validation(`"image" could not be read`))
		return
	}
	defer file.Close()

	p, err := h.service.AttachImage(c.Request.Context(), id, file, header.Header.Get("Content-Type"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusAccepted, p)
}

func pathID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", apperr.Validation("Product Id is not valid")
	}
	return id, nil
}
