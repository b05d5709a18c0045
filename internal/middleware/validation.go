package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/campushub/backend/internal/app/models/dto"
)

// HandleValidationError maps a request binding failure onto a 400 response.
// Validator errors carry the failing field; anything else is reported as a
// malformed request body.
func HandleValidationError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		first := validationErrors[0]
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, describeFieldError(first)).
			WithField(first.Field())
		if len(validationErrors) > 1 {
			all := make([]string, len(validationErrors))
			for i, fe := range validationErrors {
				all[i] = describeFieldError(fe)
			}
			detail.WithDetails(all)
		}
		c.JSON(http.StatusBadRequest, dto.APIResponse{Error: detail})
		return
	}

	c.JSON(http.StatusBadRequest, dto.APIResponse{
		Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Malformed request"),
	})
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed validation on %s", fe.Field(), fe.Tag())
	}
}
