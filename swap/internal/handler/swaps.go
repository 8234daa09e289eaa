package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/book-swap-service/swap/internal/model"
)

func (h *Handler) CreateSwapRequest(c echo.Context) error {
	requesterID, err := userID(c)
	if err != nil {
		return err
	}
	var req model.CreateSwapRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	swap, err := h.lifecycleSvc.CreateSwapRequest(c.Request().Context(), requesterID, req.BookRequestedID, req.BookOfferedID)
	if err != nil {
		return h.fail("CreateSwapRequest", err)
	}
	return c.JSON(http.StatusCreated, swap)
}

func (h *Handler) ApproveSwap(c echo.Context) error {
	return h.handleSwap(c, model.ActionApprove)
}

func (h *Handler) DenySwap(c echo.Context) error {
	return h.handleSwap(c, model.ActionDeny)
}

func (h *Handler) handleSwap(c echo.Context, action model.Action) error {
	reviewerID, err := userID(c)
	if err != nil {
		return err
	}
	swap, err := h.lifecycleSvc.HandleSwapRequest(c.Request().Context(), c.Param("swapId"), reviewerID, action)
	if err != nil {
		return h.fail("HandleSwapRequest", err)
	}
	return c.JSON(http.StatusOK, swap)
}

func (h *Handler) CancelSwap(c echo.Context) error {
	requesterID, err := userID(c)
	if err != nil {
		return err
	}
	var req model.CancelSwapRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	swap, err := h.lifecycleSvc.CancelSwapRequest(c.Request().Context(), c.Param("swapId"), requesterID, req.Reason)
	if err != nil {
		return h.fail("CancelSwapRequest", err)
	}
	return c.JSON(http.StatusOK, swap)
}

func (h *Handler) CompleteSwap(c echo.Context) error {
	actorID, err := userID(c)
	if err != nil {
		return err
	}
	swap, err := h.lifecycleSvc.CompleteSwap(c.Request().Context(), c.Param("swapId"), actorID)
	if err != nil {
		return h.fail("CompleteSwap", err)
	}
	return c.JSON(http.StatusOK, swap)
}

func (h *Handler) GetSwap(c echo.Context) error {
	actorID, err := userID(c)
	if err != nil {
		return err
	}
	swap, err := h.lifecycleSvc.GetSwap(c.Request().Context(), c.Param("swapId"), actorID)
	if err != nil {
		return h.fail("GetSwap", err)
	}
	return c.JSON(http.StatusOK, swap)
}

func (h *Handler) ListSwaps(c echo.Context) error {
	actorID, err := userID(c)
	if err != nil {
		return err
	}
	direction := model.Direction(c.QueryParam("direction"))
	status := model.Status(c.QueryParam("status"))
	swaps, err := h.lifecycleSvc.ListSwaps(c.Request().Context(), actorID, direction, status)
	if err != nil {
		return h.fail("ListSwaps", err)
	}
	return c.JSON(http.StatusOK, swaps)
}

func (h *Handler) ListHistory(c echo.Context) error {
	actorID, err := userID(c)
	if err != nil {
		return err
	}
	hist, err := h.lifecycleSvc.ListHistory(c.Request().Context(), actorID)
	if err != nil {
		return h.fail("ListHistory", err)
	}
	return c.JSON(http.StatusOK, hist)
}
