package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) ListNotifications(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	var unread bool
	if err := echo.QueryParamsBinder(c).Bool("unread", &unread).BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	items, err := h.inboxSvc.ListNotifications(c.Request().Context(), uid, unread)
	if err != nil {
		return h.fail("ListNotifications", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UnreadCount(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	count, err := h.inboxSvc.UnreadCount(c.Request().Context(), uid)
	if err != nil {
		return h.fail("UnreadCount", err)
	}
	return c.JSON(http.StatusOK, count)
}

func (h *Handler) MarkRead(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	if err := h.inboxSvc.MarkRead(c.Request().Context(), uid, c.Param("notificationId")); err != nil {
		return h.fail("MarkRead", err)
	}
	return c.NoContent(http.StatusNoContent)
}
