package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/errs"
	"github.com/AlexeyVin20/LibraryAPI-sub000/pkg/validate"
)

type Handler struct {
	allocSvc AllocationService
	rsvSvc   ReservationService
	fineSvc  FineService
	statsSvc StatsService
	log      *zap.Logger
}

func New(allocSvc AllocationService, rsvSvc ReservationService, fineSvc FineService, statsSvc StatsService, log *zap.Logger) *Handler {
	return &Handler{
		allocSvc: allocSvc,
		rsvSvc:   rsvSvc,
		fineSvc:  fineSvc,
		statsSvc: statsSvc,
		log:      log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig(h.log)),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
	)

	api.POST("/titles", h.CreateTitle)
	api.GET("/titles/:titleId", h.GetTitle)
	api.POST("/titles/:titleId/recalculate", h.Recalculate)
	api.GET("/titles/:titleId/stats", h.TitleStats)
	api.POST("/titles/:titleId/copies", h.BulkCreateCopies)
	api.GET("/titles/:titleId/copies/best", h.FindBestAvailable)
	api.POST("/titles/:titleId/copies/allocate", h.AllocateBestAvailable)

	api.POST("/copies/:copyId/release", h.ReleaseCopy)
	api.POST("/copies/:copyId/reserve", h.ReserveCopy)
	api.PUT("/copies/:copyId/status", h.SetCopyStatus)
	api.DELETE("/copies/:copyId", h.RemoveCopy)
	api.GET("/copies/summary", h.CopySummary)

	api.POST("/reservations", h.CreateReservation, AuthenticateMW)
	api.GET("/reservations", h.GetReservations, AuthenticateMW)
	api.GET("/reservations/:reservationUid", h.GetReservation)
	api.GET("/reservations/:reservationUid/copy", h.GetAllocatedCopy)
	api.POST("/reservations/:reservationUid/approve", h.ApproveReservation)
	api.POST("/reservations/:reservationUid/issue", h.IssueReservation)
	api.POST("/reservations/:reservationUid/return", h.ReturnReservation)
	api.POST("/reservations/:reservationUid/cancel", h.CancelReservation)

	api.GET("/users/:userName/fines", h.ListFines)
	api.GET("/users/:userName/balance", h.GetBalance)
	api.POST("/users/:userName/fines/reconcile", h.ReconcileBalance)
	api.POST("/fines/:fineId/pay", h.PayFine)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func httpErr(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrOutOfStock):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrPrecondition):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
