package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FieldError is one failing field in a validation response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorBody is the shape of every non-2xx response.
type ErrorBody struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// OK writes the entity (or list) as the top-level JSON body.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes the stored record with a 201.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NotFound writes a 404 with a {message} body.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorBody{Message: message})
}

// BadRequest writes a 400 with a {message} body.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Message: message})
}

// ValidationError writes a 400 enumerating every failing field.
func ValidationError(c *gin.Context, message string, fields []FieldError) {
	c.JSON(http.StatusBadRequest, ErrorBody{Message: message, Errors: fields})
}

// ServerError writes a generic 500. Detail stays in the server log.
func ServerError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorBody{Message: message})
}

// Unauthorized writes a 401.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrorBody{Message: "Authentication required"})
}
