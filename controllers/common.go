package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "github.com/pratapadwait/pratapliving/errors"
	"github.com/pratapadwait/pratapliving/response"
	"github.com/pratapadwait/pratapliving/validator"
)

func fieldErrors(verrs validator.ValidationErrors) []response.FieldError {
	out := make([]response.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, response.FieldError{Field: fe.Field, Message: fe.Message})
	}
	return out
}

// respondError maps service errors onto the HTTP taxonomy: validation
// failures become 400 with every failing field, absent records become
// 404, everything else is a generic 500 with detail kept server-side.
func respondError(c *gin.Context, err error, notFoundMsg, serverMsg string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		response.ValidationError(c, "Validation failed", fieldErrors(verrs))
		return
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		response.NotFound(c, notFoundMsg)
		return
	}
	if appErr := apperrors.GetAppError(err); appErr != nil {
		response.BadRequest(c, appErr.Message)
		return
	}
	response.ServerError(c, serverMsg)
}
