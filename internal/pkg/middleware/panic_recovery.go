package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/paceline/paceline/internal/pkg/logger"
	nrpkg "github.com/paceline/paceline/internal/pkg/newrelic"
	"github.com/paceline/paceline/internal/utils"
)

// PanicRecoveryMiddleware creates a middleware that recovers from panics,
// logs them with stack traces and reports them to New Relic
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}

	zapLogger.Error("Panic recovered in HTTP handler",
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("user_id", UserIDFromContext(c)),
		logger.Err(err),
		logger.String("stack", string(debug.Stack())))

	nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)

	if !c.Response().Committed {
		_ = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
	}
}
