package response

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the error body every endpoint renders, matching the
// `{"detail": "..."}` shape clients already consume.
type Err struct {
	statusCode int
	cause      error

	Detail string `json:"detail"`
}

func (e *Err) Error() string {
	return e.Detail
}

func (e *Err) Unwrap() error {
	return e.cause
}

// ErrNotFound renders `{"detail": "<entity> not found"}` with a 404.
func ErrNotFound(entity string) *Err {
	return &Err{
		statusCode: http.StatusNotFound,
		Detail:     entity + " not found",
	}
}

func ErrBadRequest(err error) *Err {
	return &Err{
		statusCode: http.StatusBadRequest,
		Detail:     err.Error(),
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		statusCode: http.StatusConflict,
		Detail:     err.Error(),
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		statusCode: http.StatusUnauthorized,
		Detail:     err.Error(),
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		statusCode: http.StatusUnauthorized,
		cause:      err,
		Detail:     "wrong credentials",
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		statusCode: http.StatusInternalServerError,
		cause:      err,
		Detail:     "internal server error",
	}
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.statusCode >= http.StatusInternalServerError {
		zap.L().Error("server error",
			zap.Int("status", err.statusCode),
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("path", ctx.Request.URL.Path),
			zap.Error(err.cause),
		)
	}

	ctx.AbortWithStatusJSON(err.statusCode, err)
}
