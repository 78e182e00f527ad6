package httperr

import (
	"coloring-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail      any  `json:"detail,omitempty"`
	NeedsTokens bool `json:"needsTokens,omitempty"`
	RetryAfter  int  `json:"retryAfter,omitempty"`
}

func New(status int, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	return resp
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	resp := New(status, msg)
	resp.Detail = detail
	Abort(c, err, resp)
}

func Abort(c *gin.Context, err error, resp Response) {
	if err == nil {
		err = errs.New(resp.Error.Message)
	}
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
