package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"insureai/business/premium"
	"insureai/pkg/logger"
	jsonres "insureai/pkg/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceID reuses the caller's X-Request-ID or mints one, and stores it on
// the request context for the business layer.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}

			req := c.Request()
			c.SetRequest(req.WithContext(premium.WithTraceID(req.Context(), id)))
			c.Response().Header().Set(echo.HeaderXRequestID, id)
			c.Set("trace_id", id)

			return next(c)
		}
	}
}

// RequestLogger logs method, path, status and latency of every request.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.With("trace_id", c.Get("trace_id")).Info("request",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return nil
		}
	}
}

// ErrorHandler renders every unhandled error as a JSON error body.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	} else {
		logger.Error("Unhandled error", "trace_id", c.Get("trace_id"), "error", err)
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(code)
	} else {
		werr = c.JSON(code, jsonres.Error(errorCode(code), msg, nil))
	}
	if werr != nil {
		logger.Error("Failed to write error response", "error", werr)
	}
}

// errorCode turns a status into an upper snake code, 404 -> NOT_FOUND.
func errorCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "ERROR"
	}
	text = strings.ReplaceAll(text, "'", "")
	text = strings.ReplaceAll(text, "-", "_")
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
