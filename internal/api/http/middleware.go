package http

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-service/internal/config"
	"github.com/spec-kit/employee-service/internal/observability"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(errorHandlingMiddleware(logger, metrics))
	app.Use(observability.RequestLogger(logger, metrics))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				domainErr := apperrors.ToDomainError(err)
				if metrics != nil {
					metrics.RecordError(c.Path(), c.Method(), domainErr.Code)
				}
				response := fiber.Map{"error": fiber.Map{
					"code":    domainErr.Code,
					"message": domainErr.Message,
				}}
				if len(domainErr.Details) > 0 {
					response["error"].(fiber.Map)["details"] = domainErr.Details
				}
				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed",
						zap.String("request_id", observability.RequestIDFromContext(c)),
						zap.Error(domainErr))
				}
				c.Status(domainErr.HTTPStatus)
				_ = c.JSON(response)
				err = nil
			}
		}()
		return c.Next()
	}
}

// LoginRateLimiter bounds login attempts per client IP using a fixed
// window counter in Redis. Fails open when Redis is unreachable so an
// outage there cannot lock everyone out.
func LoginRateLimiter(client *redis.Client, cfg config.RateLimitConfig, logger *zap.Logger) fiber.Handler {
	limit := cfg.LoginAttempts
	if limit <= 0 {
		limit = 20
	}
	window := cfg.LoginWindow()

	return func(c *fiber.Ctx) error {
		if client == nil {
			return c.Next()
		}

		key := fmt.Sprintf("ratelimit:login:%s", c.IP())
		count, err := client.Incr(c.UserContext(), key).Result()
		if err != nil {
			logger.Warn("login rate limiter unavailable", zap.Error(err))
			return c.Next()
		}
		if count == 1 {
			client.Expire(c.UserContext(), key, window)
		}
		if count > int64(limit) {
			return apperrors.NewDomainError("RATE_LIMITED", "too many login attempts, try again later",
				http.StatusTooManyRequests, nil)
		}
		return c.Next()
	}
}
