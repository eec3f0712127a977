package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"barbershop/internal/pkg/apperror"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// Abort writes the error envelope and stops the handler chain.
func Abort(c *gin.Context, statusCode int, code string, message string) {
	Error(c, statusCode, code, message)
	c.Abort()
}

// FromError answers with the status matching the error kind. Internal details are
// attached to the gin context for the error logger and never written to the body.
func FromError(c *gin.Context, err error) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) && appErr.Kind == apperror.KindValidation {
		Error(c, http.StatusBadRequest, "VALIDATION_ERROR", appErr.Message)
		return
	}

	_ = c.Error(err)
	Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
}
