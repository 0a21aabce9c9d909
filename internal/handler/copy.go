package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/model"
)

func (h *Handler) CreateTitle(c echo.Context) error {
	var req model.CreateTitleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	title, err := h.allocSvc.CreateTitle(c.Request().Context(), req)
	if err != nil {
		return httpErr(err)
	}
	return c.JSON(http.StatusCreated, title)
}

func (h *Handler) GetTitle(c echo.Context) error {
	titleID, err := pathInt(c, "titleId")
	if err != nil {
		return err
	}
	title, err := h.allocSvc.GetTitle(c.Request().Context(), titleID)
	if err != nil {
		return httpErr(err)
	}
	return c.JSON(http.StatusOK, title)
}

func (h *Handler) Recalculate(c echo.Context) error {
	titleID, err := pathInt(c, "titleId")
	if err != nil {
		return err
	}
	count, err := h.allocSvc.Recalculate(c.Request().Context(), titleID)
	if err != nil {
		return httpErr(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"availableCopies": count})
}

func (h *Handler) BulkCreateCopies(c echo.Context) error {
	titleID, err := pathInt(c, "titleId")
	if err != nil {
		return err
	}
	var req model.BulkCreateCopiesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	copies, err := h.allocSvc.BulkCreateCopies(c.Request().Context(), titleID, req.Count, req.Condition)
	if err != nil {
		return httpErr(err)
	}
	return c.JSON(http.StatusCreated, copies)
}

func (h *Handler) FindBestAvailable(c echo.Context) error {
	titleID, err := pathInt(c, "titleId")
	if err != nil {
		return err
	}
	cp, err := h.allocSvc.FindBestAvailable(c.Request().Context(), titleID)
	if err != nil {
		return httpErr(err)
	}
	if cp == nil {
		// out of stock is a regular answer, not an error
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, cp)
}

func (h *Handler) AllocateBestAvailable(c echo.Context) error {
	titleID, err := pathInt(c, "titleId")
	if err != nil {
		return err
	}
	cp, err := h.allocSvc.AllocateBestAvailable(c.Request().Context(), titleID)
	if err != nil {
		return httpErr(err)
	}
	if cp == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, cp)
}

func (h *Handler) ReleaseCopy(c echo.Context) error {
	copyID, err := pathInt(c, "copyId")
	if err != nil {
		return err
	}
	cp, err := h.allocSvc.Release(c.Request().Context(), copyID)
	if err != nil {
		return httpErr(err)
	}
	return c.JSON(http.StatusOK, cp)
}

func (h *Handler) ReserveCopy(c echo.Context) error {
	copyID, err := pathInt(c, "copyId")
	if err != nil {
		return err
	}
	cp, err := h.allocSvc.Reserve(c.Request().Context(), copyID)
	if err != nil {
		return httpErr(err)
	}
	return c.JSON(http.StatusOK, cp)
}

func (h *Handler) SetCopyStatus(c echo.Context) error {
	copyID, err := pathInt(c, "copyId")
	if err != nil {
		return err
	}
	var req model.SetCopyStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	cp, err := h.allocSvc.SetStatus(c.Request().Context(), copyID, req.Status)
	if err != nil {
		return httpErr(err)
	}
	return c.JSON(http.StatusOK, cp)
}

func (h *Handler) RemoveCopy(c echo.Context) error {
	copyID, err := pathInt(c, "copyId")
	if err != nil {
		return err
	}
	if err := h.allocSvc.RemoveCopy(c.Request().Context(), copyID); err != nil {
		return httpErr(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func pathInt(c echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return v, nil
}
