package httperr

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Response is the error body every desk endpoint answers with.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail    any    `json:"detail,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func NewResponse(c *gin.Context, status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Code = StatusCode(status)
	resp.Error.Message = msg
	if c != nil {
		resp.RequestID = c.GetString("request_id")
	}
	return resp
}

// StatusCode turns an HTTP status into an upper snake case code,
// e.g. 404 -> NOT_FOUND.
func StatusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "UNKNOWN"
	}
	text = strings.NewReplacer(" ", "_", "-", "_", "'", "").Replace(text)
	return strings.ToUpper(text)
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(c, status, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
