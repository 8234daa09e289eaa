package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/book-swap-service/swap/internal/model"
)

func (h *Handler) ListAvailableBooks(c echo.Context) error {
	items, err := h.catalogSvc.ListAvailableBooks(c.Request().Context(), viewerID(c))
	if err != nil {
		return h.fail("ListAvailableBooks", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetBookState(c echo.Context) error {
	info, err := h.catalogSvc.GetBookState(c.Request().Context(), c.Param("bookId"), viewerID(c))
	if err != nil {
		return h.fail("GetBookState", err)
	}
	return c.JSON(http.StatusOK, info)
}

func (h *Handler) CreateBook(c echo.Context) error {
	ownerID, err := userID(c)
	if err != nil {
		return err
	}
	var req model.CreateBookRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	book, err := h.catalogSvc.CreateBook(c.Request().Context(), ownerID, req)
	if err != nil {
		return h.fail("CreateBook", err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) ListMyBooks(c echo.Context) error {
	ownerID, err := userID(c)
	if err != nil {
		return err
	}
	books, err := h.catalogSvc.ListMyBooks(c.Request().Context(), ownerID)
	if err != nil {
		return h.fail("ListMyBooks", err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) UpdateDescription(c echo.Context) error {
	ownerID, err := userID(c)
	if err != nil {
		return err
	}
	var req model.UpdateDescriptionRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	book, err := h.catalogSvc.UpdateDescription(c.Request().Context(), ownerID, c.Param("bookId"), req.Description)
	if err != nil {
		return h.fail("UpdateDescription", err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) SetAvailability(c echo.Context) error {
	ownerID, err := userID(c)
	if err != nil {
		return err
	}
	var req model.SetAvailabilityRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	book, err := h.catalogSvc.SetAvailability(c.Request().Context(), ownerID, c.Param("bookId"), *req.Available)
	if err != nil {
		return h.fail("SetAvailability", err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) ListReviews(c echo.Context) error {
	reviews, err := h.reviewSvc.ListReviews(c.Request().Context(), c.Param("bookId"))
	if err != nil {
		return h.fail("ListReviews", err)
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *Handler) SubmitReview(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	var req model.SubmitReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rv, err := h.reviewSvc.SubmitReview(c.Request().Context(), c.Param("bookId"), uid, req)
	if err != nil {
		return h.fail("SubmitReview", err)
	}
	return c.JSON(http.StatusOK, rv)
}
