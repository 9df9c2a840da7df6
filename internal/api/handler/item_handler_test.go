package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Levezze/e-commerce-rest-api/internal/core/domain"
	"github.com/Levezze/e-commerce-rest-api/internal/core/ports"
)

type stubItemService struct {
	getPublicFn  func(ctx context.Context, id int64) (*domain.Item, error)
	listPublicFn func(ctx context.Context) ([]domain.Item, error)
	listAllFn    func(ctx context.Context) ([]domain.Item, error)
	createFn     func(ctx context.Context, input ports.ItemInput) (*domain.Item, error)
	updateFn     func(ctx context.Context, id int64, input ports.ItemInput) (*domain.Item, error)
	deleteFn     func(ctx context.Context, id int64) error
}

func (s *stubItemService) GetPublic(ctx context.Context, id int64) (*domain.Item, error) {
	return s.getPublicFn(ctx, id)
}

func (s *stubItemService) ListPublic(ctx context.Context) ([]domain.Item, error) {
	return s.listPublicFn(ctx)
}

func (s *stubItemService) ListAll(ctx context.Context) ([]domain.Item, error) {
	return s.listAllFn(ctx)
}

func (s *stubItemService) Create(ctx context.Context, input ports.ItemInput) (*domain.Item, error) {
	return s.createFn(ctx, input)
}

func (s *stubItemService) Update(ctx context.Context, id int64, input ports.ItemInput) (*domain.Item, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubItemService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func TestItemHandler_ListPublic(t *testing.T) {
	items := &stubItemService{
		listPublicFn: func(ctx context.Context) ([]domain.Item, error) {
			return []domain.Item{
				{ID: 1, Name: "Silver ring", Category: domain.CategoryGeneric, PriceCents: 4500},
			}, nil
		},
	}
	h := NewItemHandler(items)

	c, rec := newTestContext(t, http.MethodGet, "/items", "")
	if err := h.ListPublic(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []domain.Item
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Silver ring" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestItemHandler_ListAll_IncludesHidden(t *testing.T) {
	items := &stubItemService{
		listAllFn: func(ctx context.Context) ([]domain.Item, error) {
			return []domain.Item{
				{ID: 1, Name: "Silver ring"},
				{ID: 2, Name: "Prototype clasp", IsHidden: true},
			}, nil
		},
	}
	h := NewItemHandler(items)

	c, rec := newTestContext(t, http.MethodGet, "/items/all", "")
	if err := h.ListAll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var got []domain.Item
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 2 || !got[1].IsHidden {
		t.Fatalf("expected hidden item in managed listing, got %+v", got)
	}
}

func TestItemHandler_GetPublic_NotFound(t *testing.T) {
	items := &stubItemService{
		getPublicFn: func(ctx context.Context, id int64) (*domain.Item, error) {
			return nil, domain.ErrItemNotFound
		},
	}
	h := NewItemHandler(items)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/items/5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.GetPublic(c); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound to propagate, got %v", err)
	}
}

func TestItemHandler_Create(t *testing.T) {
	items := &stubItemService{
		createFn: func(ctx context.Context, input ports.ItemInput) (*domain.Item, error) {
			if input.Name != "Gold pendant" || input.Category != domain.CategoryAccessory {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Item{ID: 3, Name: input.Name, Category: input.Category, PriceCents: input.PriceCents}, nil
		},
	}
	h := NewItemHandler(items)

	c, rec := newTestContext(t, http.MethodPost, "/items",
		`{"name":"Gold pendant","price_cents":12000,"category":"accessory","in_stock":true}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestItemHandler_Create_UnknownCategory(t *testing.T) {
	items := &stubItemService{
		createFn: func(ctx context.Context, input ports.ItemInput) (*domain.Item, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewItemHandler(items)

	c, _ := newTestContext(t, http.MethodPost, "/items",
		`{"name":"Gold pendant","price_cents":12000,"category":"gadget"}`)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestItemHandler_Create_NegativePrice(t *testing.T) {
	items := &stubItemService{
		createFn: func(ctx context.Context, input ports.ItemInput) (*domain.Item, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewItemHandler(items)

	c, _ := newTestContext(t, http.MethodPost, "/items",
		`{"name":"Gold pendant","price_cents":-5,"category":"generic"}`)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestItemHandler_Update(t *testing.T) {
	items := &stubItemService{
		updateFn: func(ctx context.Context, id int64, input ports.ItemInput) (*domain.Item, error) {
			if id != 3 || !input.IsHidden {
				t.Fatalf("unexpected call: id=%d input=%+v", id, input)
			}
			return &domain.Item{ID: 3, Name: input.Name, IsHidden: true}, nil
		},
	}
	h := NewItemHandler(items)

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPut, "/items/3",
		strings.NewReader(`{"name":"Gold pendant","price_cents":12000,"category":"accessory","is_hidden":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestItemHandler_Delete(t *testing.T) {
	deleted := int64(0)
	items := &stubItemService{
		deleteFn: func(ctx context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	h := NewItemHandler(items)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/items/8", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("8")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != 8 {
		t.Fatalf("expected delete of id 8, got %d", deleted)
	}
}
