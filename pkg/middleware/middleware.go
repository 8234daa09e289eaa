package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"

	"github.com/Astemirdum/book-swap-service/pkg/auth"
)

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(cfg auth.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authorization := c.Request().Header.Get(auth.AuthorizationHeader)
			if authorization == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "no authorization header")
			}
			token, ok := auth.BearerToken(authorization)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}
			userID, err := auth.ParseUserID(cfg, token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}
			setUser(c, userID)
			return next(c)
		}
	}
}

// OptionalAuth resolves the user when a token is present and lets anonymous requests through.
// A malformed or invalid token is still rejected.
func OptionalAuth(cfg auth.Config) echo.MiddlewareFunc {
	required := RequireAuth(cfg)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		withUser := required(next)
		return func(c echo.Context) error {
			if c.Request().Header.Get(auth.AuthorizationHeader) == "" {
				return next(c)
			}
			return withUser(c)
		}
	}
}

func setUser(c echo.Context, userID string) {
	req := c.Request()
	c.SetRequest(req.WithContext(auth.SetUserID(req.Context(), userID)))
}

func NewRateLimiter(rps rate.Limit) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rps))
}

func RequestLoggerConfig(log *zap.Logger) middleware.RequestLoggerConfig {
	log = log.Named("echo")
	return middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		HandleError:  true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			if v.Error != nil {
				level = zapcore.ErrorLevel
				if v.Status < http.StatusInternalServerError {
					level = zapcore.WarnLevel
				}
			}
			log.Log(level, "request",
				zap.String("URI", v.URI),
				zap.String("Method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}
}
