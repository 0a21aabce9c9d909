package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) TitleStats(c echo.Context) error {
	titleID, err := pathInt(c, "titleId")
	if err != nil {
		return err
	}
	stats, err := h.statsSvc.TitleStats(c.Request().Context(), titleID)
	if err != nil {
		return httpErr(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) CopySummary(c echo.Context) error {
	summary, err := h.statsSvc.CopySummary(c.Request().Context())
	if err != nil {
		return httpErr(err)
	}
	return c.JSON(http.StatusOK, summary)
}
