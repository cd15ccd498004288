package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ErrorBody struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// Error writes a plain {"message": ...} body with the given status.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Message: message})
}

// ValidationError writes a 400 with a per-field error list when err comes
// from binding validation, or just the message otherwise.
func ValidationError(c *gin.Context, message string, err error) {
	body := ErrorBody{Message: message}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			body.Errors = append(body.Errors, fmt.Sprintf("%s: failed on %q", fe.Field(), fe.Tag()))
		}
	} else if err != nil {
		body.Errors = append(body.Errors, err.Error())
	}

	c.JSON(http.StatusBadRequest, body)
}
