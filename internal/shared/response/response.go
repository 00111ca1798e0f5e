package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

// Envelope is the JSON body every handler returns. internalStatus carries the
// business outcome: expected business failures (duplicate period, etc.) are
// HTTP 200 with internalStatus "fail", while 4xx/5xx stay reserved for auth,
// validation and unexpected errors.
type Envelope struct {
	Message        string `json:"message"`
	Data           any    `json:"data"`
	InternalStatus string `json:"internalStatus"`
	Error          any    `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Message:        message,
		Data:           data,
		InternalStatus: StatusSuccess,
	})
}

// Fail reports an expected business conflict as HTTP 200 + internalStatus "fail".
func Fail(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{
		Message:        message,
		Data:           data,
		InternalStatus: StatusFail,
	})
}

func Error(c *gin.Context, status int, message string, details any) {
	c.JSON(status, Envelope{
		Message:        message,
		Data:           nil,
		InternalStatus: StatusFail,
		Error:          details,
	})
}
