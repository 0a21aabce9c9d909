package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func (h *Handler) ListFines(c echo.Context) error {
	userName := c.Param("userName")
	if userName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "userName is empty")
	}
	items, err := h.fineSvc.ListFines(c.Request().Context(), userName)
	if err != nil {
		return httpErr(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetBalance(c echo.Context) error {
	userName := c.Param("userName")
	if userName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "userName is empty")
	}
	user, err := h.fineSvc.GetUser(c.Request().Context(), userName)
	if err != nil {
		return httpErr(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) ReconcileBalance(c echo.Context) error {
	userName := c.Param("userName")
	if userName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "userName is empty")
	}
	balance, err := h.fineSvc.ReconcileBalance(c.Request().Context(), userName)
	if err != nil {
		return httpErr(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"fineAmountCents": balance})
}

func (h *Handler) PayFine(c echo.Context) error {
	fineID, err := strconv.ParseInt(c.Param("fineId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid fineId")
	}
	rec, err := h.fineSvc.PayFine(c.Request().Context(), fineID)
	if err != nil {
		return httpErr(err)
	}
	return c.JSON(http.StatusOK, rec)
}
