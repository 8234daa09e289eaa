package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-swap-service/pkg/auth"
	md "github.com/Astemirdum/book-swap-service/pkg/middleware"
	"github.com/Astemirdum/book-swap-service/pkg/validate"
	"github.com/Astemirdum/book-swap-service/swap/internal/errs"
	_ "github.com/Astemirdum/book-swap-service/swagger"
)

type Handler struct {
	catalogSvc   CatalogService
	lifecycleSvc LifecycleService
	inboxSvc     InboxService
	reviewSvc    ReviewService
	authCfg      auth.Config
	log          *zap.Logger
}

type Services struct {
	Catalog   CatalogService
	Lifecycle LifecycleService
	Inbox     InboxService
	Review    ReviewService
}

func New(svc Services, authCfg auth.Config, log *zap.Logger) *Handler {
	return &Handler{
		catalogSvc:   svc.Catalog,
		lifecycleSvc: svc.Lifecycle,
		inboxSvc:     svc.Inbox,
		reviewSvc:    svc.Review,
		authCfg:      authCfg,
		log:          log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HideBanner = true
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	api.GET("/books", h.ListAvailableBooks, md.OptionalAuth(h.authCfg))
	api.GET("/books/:bookId/state", h.GetBookState, md.OptionalAuth(h.authCfg))
	api.GET("/books/:bookId/reviews", h.ListReviews)

	api = api.Group("", md.RequireAuth(h.authCfg))
	api.POST("/books", h.CreateBook)
	api.GET("/books/mine", h.ListMyBooks)
	api.PATCH("/books/:bookId", h.UpdateDescription)
	api.PUT("/books/:bookId/availability", h.SetAvailability)
	api.PUT("/books/:bookId/reviews", h.SubmitReview)

	api.POST("/swaps", h.CreateSwapRequest)
	api.GET("/swaps", h.ListSwaps)
	api.GET("/swaps/history", h.ListHistory)
	api.GET("/swaps/:swapId", h.GetSwap)
	api.POST("/swaps/:swapId/approve", h.ApproveSwap)
	api.POST("/swaps/:swapId/deny", h.DenySwap)
	api.POST("/swaps/:swapId/cancel", h.CancelSwap)
	api.POST("/swaps/:swapId/complete", h.CompleteSwap)

	api.GET("/notifications", h.ListNotifications)
	api.GET("/notifications/unread-count", h.UnreadCount)
	api.POST("/notifications/:notificationId/read", h.MarkRead)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// fail turns a service error into an HTTP error. Unknown errors are logged and hidden.
func (h *Handler) fail(op string, err error) error {
	code := errs.HTTPStatus(err)
	switch code {
	case http.StatusInternalServerError:
		h.log.Error(op, zap.Error(err))
		return echo.NewHTTPError(code, "internal error")
	case http.StatusServiceUnavailable:
		h.log.Warn(op, zap.Error(err))
		return echo.NewHTTPError(code, "service temporarily unavailable, try again")
	default:
		return echo.NewHTTPError(code, err.Error())
	}
}

// userID returns the authenticated caller; routes behind RequireAuth always have one.
func userID(c echo.Context) (string, error) {
	id, err := auth.GetUserID(c.Request().Context())
	if err != nil {
		return "", echo.NewHTTPError(http.StatusUnauthorized, errs.ErrAuthRequired.Error())
	}
	return id, nil
}

// viewerID is empty for anonymous callers.
func viewerID(c echo.Context) string {
	id, _ := auth.GetUserID(c.Request().Context())
	return id
}

func bindValid(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
