package weblog

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDHeaderName = "X-Request-Id"

// RequestContext is the slice of the request/response cycle that message
// formatters may observe.
type RequestContext interface {
	Method() string
	OriginalURL() string
	StatusCode() int
	IP() string
}

// MessageFormatter builds the body of a request log line.
type MessageFormatter func(ctx RequestContext, elapsed time.Duration) string

func defaultMessageFormat(ctx RequestContext, elapsed time.Duration) string {
	return fmt.Sprintf("%s %s - %d - %dms - %s",
		ctx.Method(), ctx.OriginalURL(), ctx.StatusCode(), elapsed.Milliseconds(), ctx.IP())
}

// fiberRequestContext adapts *fiber.Ctx to RequestContext. The handler
// error is consulted first for the status code, since fiber resolves
// *fiber.Error into the response only after the middleware chain returns.
type fiberRequestContext struct {
	c          *fiber.Ctx
	handlerErr error
}

func (frc *fiberRequestContext) Method() string {
	return frc.c.Method()
}

func (frc *fiberRequestContext) OriginalURL() string {
	return frc.c.OriginalURL()
}

func (frc *fiberRequestContext) IP() string {
	return frc.c.IP()
}

func (frc *fiberRequestContext) StatusCode() int {
	if fiberErr, ok := frc.handlerErr.(*fiber.Error); frc.handlerErr != nil && ok {
		return fiberErr.Code
	}
	return frc.c.Response().StatusCode()
}

// RequestLogger returns a fiber middleware that logs every request once it
// completes. 5xx responses log at ERROR, everything else at INFO; the body
// color follows the status class. The service is attached to the request's
// user context and the request id is echoed on the response.
func RequestLogger(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqCtx := &fiberRequestContext{c: c}

		c.Set(requestIDHeaderName, requestID(c))
		c.SetUserContext(WithContext(c.UserContext(), svc))

		start := svc.now()
		err := c.Next()
		reqCtx.handlerErr = err
		elapsed := svc.now().Sub(start)

		format := svc.cfg.MessageFormat
		if format == nil {
			format = defaultMessageFormat
		}

		level, colorize := classifyStatus(reqCtx.StatusCode())
		svc.Log(level, colorize, format(reqCtx, elapsed))

		return err
	}
}

// requestID reuses the inbound X-Request-Id header when present and
// generates a fresh uuid otherwise.
func requestID(c *fiber.Ctx) string {
	if id := c.Get(requestIDHeaderName); id != emptyString {
		return id
	}
	return uuid.New().String()
}
