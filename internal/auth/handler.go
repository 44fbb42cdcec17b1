package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"profranchising/internal/response"
	"profranchising/internal/validation"
)

var registerSchema = validation.Schema{
	{Name: "name", Kind: validation.String},
	{Name: "username", Kind: validation.String},
	{Name: "password", Kind: validation.String},
	{Name: "role", Kind: validation.String},
}

var loginSchema = validation.Schema{
	{Name: "username", Kind: validation.String},
	{Name: "password", Kind: validation.String},
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// POST /users
func (h *Handler) Register(c *gin.Context) {
	var req RegisterInput
	if err := validation.DecodeReader(c.Request.Body, registerSchema, &req); err != nil {
		response.Error(c, err)
		return
	}

	reg, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, reg)
}

// GET /users
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// POST /login
func (h *Handler) Login(c *gin.Context) {
	var req LoginInput
	if err := validation.DecodeReader(c.Request.Body, loginSchema, &req); err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token})
}
