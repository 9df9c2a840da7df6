package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Levezze/e-commerce-rest-api/internal/core/domain"
	"github.com/Levezze/e-commerce-rest-api/internal/core/ports"
)

// ItemHandler serves the public catalog and its management routes.
type ItemHandler struct {
	itemService ports.ItemService
}

func NewItemHandler(itemService ports.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

func itemID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}
	return id, nil
}

func (r *itemRequest) toInput() ports.ItemInput {
	return ports.ItemInput{
		Name:        r.Name,
		Description: r.Description,
		PriceCents:  r.PriceCents,
		Category:    domain.ItemCategory(r.Category),
		InStock:     r.InStock,
		IsFeatured:  r.IsFeatured,
		IsHidden:    r.IsHidden,
	}
}

// ListPublic returns the storefront catalog, hidden items excluded.
//
// @Summary      Browse the catalog
// @Tags         items
// @Produce      json
// @Success      200   {array}   domain.Item
// @Router       /items [get]
func (h *ItemHandler) ListPublic(c echo.Context) error {
	items, err := h.itemService.ListPublic(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// ListAll returns every item, hidden ones included. Admin or manager only.
//
// @Summary      List all items including hidden
// @Tags         items
// @Security     BearerAuth
// @Produce      json
// @Success      200   {array}   domain.Item
// @Failure      403   {object}  errorResponse
// @Router       /items/all [get]
func (h *ItemHandler) ListAll(c echo.Context) error {
	items, err := h.itemService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// GetPublic returns a single catalog entry.
//
// @Summary      Get a catalog item
// @Tags         items
// @Produce      json
// @Param        id    path      int  true  "Item id"
// @Success      200   {object}  domain.Item
// @Failure      404   {object}  errorResponse
// @Router       /items/{id} [get]
func (h *ItemHandler) GetPublic(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}

	item, err := h.itemService.GetPublic(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create adds a catalog item. Admin or manager only.
//
// @Summary      Create an item
// @Tags         items
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      itemRequest  true  "Item fields"
// @Success      201   {object}  domain.Item
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.itemService.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Update replaces a catalog item's writable fields. Admin or manager only.
//
// @Summary      Update an item
// @Tags         items
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "Item id"
// @Param        body  body      itemRequest  true  "Item fields"
// @Success      200   {object}  domain.Item
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /items/{id} [put]
func (h *ItemHandler) Update(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}

	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.itemService.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Delete removes a catalog item. Admin or manager only.
//
// @Summary      Delete an item
// @Tags         items
// @Security     BearerAuth
// @Param        id    path      int  true  "Item id"
// @Success      204
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /items/{id} [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}

	if err := h.itemService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
