package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/model"
	"github.com/AlexeyVin20/LibraryAPI-sub000/pkg/auth"
)

func (h *Handler) CreateReservation(c echo.Context) error {
	var req model.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	userName, ok := auth.UserName(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no username in request")
	}
	req.UserName = userName
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rsv, err := h.rsvSvc.Create(c.Request().Context(), req)
	if err != nil {
		return httpErr(err)
	}
	return c.JSON(http.StatusCreated, rsv)
}

func (h *Handler) GetReservations(c echo.Context) error {
	userName, ok := auth.UserName(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no username in request")
	}
	items, err := h.rsvSvc.GetByUser(c.Request().Context(), userName)
	if err != nil {
		return httpErr(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetReservation(c echo.Context) error {
	uid := c.Param("reservationUid")
	if uid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reservationUid is empty")
	}
	rsv, err := h.rsvSvc.Get(c.Request().Context(), uid)
	if err != nil {
		return httpErr(err)
	}
	return c.JSON(http.StatusOK, rsv)
}

func (h *Handler) GetAllocatedCopy(c echo.Context) error {
	uid := c.Param("reservationUid")
	if uid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reservationUid is empty")
	}
	cp, err := h.allocSvc.GetAllocatedCopy(c.Request().Context(), uid)
	if err != nil {
		return httpErr(err)
	}
	if cp == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, cp)
}

func (h *Handler) ApproveReservation(c echo.Context) error {
	return h.transition(c, h.rsvSvc.Approve)
}

func (h *Handler) IssueReservation(c echo.Context) error {
	return h.transition(c, h.rsvSvc.Issue)
}

func (h *Handler) ReturnReservation(c echo.Context) error {
	return h.transition(c, h.rsvSvc.Return)
}

func (h *Handler) CancelReservation(c echo.Context) error {
	uid := c.Param("reservationUid")
	if uid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reservationUid is empty")
	}
	var req model.CancelReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rsv, err := h.rsvSvc.Cancel(c.Request().Context(), uid, req.ByStaff)
	if err != nil {
		return httpErr(err)
	}
	return c.JSON(http.StatusOK, rsv)
}

func (h *Handler) transition(c echo.Context, fn func(ctx context.Context, uid string) (model.Reservation, error)) error {
	uid := c.Param("reservationUid")
	if uid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reservationUid is empty")
	}
	rsv, err := fn(c.Request().Context(), uid)
	if err != nil {
		return httpErr(err)
	}
	return c.JSON(http.StatusOK, rsv)
}
