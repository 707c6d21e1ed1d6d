package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"campo_direto/internal/adapter/http/handlers/mocks"
	"campo_direto/internal/domain/entities"
	"campo_direto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func decodeErrorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		ErrorCode string `json:"error_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	return body.ErrorCode
}

func cartRouter(h *CartHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/carts", h.CreateCart)
	r.GET("/v1/carts/:order_id", h.GetCart)
	r.POST("/v1/carts/:order_id/items", h.AddItem)
	r.DELETE("/v1/carts/:order_id/items/:item_id", h.RemoveItem)
	r.PUT("/v1/carts/:order_id/items/:item_id/quantity", h.UpdateQuantity)
	r.PUT("/v1/carts/:order_id/deadline", h.ExtendDeadline)
	return r
}

func TestCartHandler_CreateCart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		r := cartRouter(NewCartHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/carts", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := decodeErrorCode(t, w); code != "VALIDATION_ERROR" {
			t.Fatalf("expected VALIDATION_ERROR, got %s", code)
		}
	})

	t.Run("open cart already held", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		r := cartRouter(NewCartHandler(uc))

		uc.EXPECT().CreateCart(gomock.Any(), "prd-1", "sup-1", "dp-1").
			Return(entities.Order{}, usecase.ErrOpenCartExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/carts",
			bytes.NewBufferString(`{"producer_id":"prd-1","supplier_id":"sup-1","distribution_point_id":"dp-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if code := decodeErrorCode(t, w); code != "INVALID_OPERATION" {
			t.Fatalf("expected INVALID_OPERATION, got %s", code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		r := cartRouter(NewCartHandler(uc))

		uc.EXPECT().CreateCart(gomock.Any(), "prd-1", "sup-1", "").
			Return(entities.Order{ID: "ord-1", CartStatus: entities.CartStatusAberto}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/carts",
			bytes.NewBufferString(`{"producer_id":"prd-1","supplier_id":"sup-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			ID         string `json:"id"`
			CartStatus string `json:"cart_status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.ID != "ord-1" || body.CartStatus != "aberto" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestCartHandler_AddItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	payload := `{"product_id":"prod-1","catalog_id":"cat-1","quantity":10,"producer":{"producer_id":"prd-1","hectares":80,"municipio_id":"123"}}`

	t.Run("expired cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		r := cartRouter(NewCartHandler(uc))

		uc.EXPECT().AddItem(gomock.Any(), "ord-1", "prod-1", "cat-1", 10, gomock.Any()).
			Return(entities.Order{}, usecase.ErrCartExpired)

		req := httptest.NewRequest(http.MethodPost, "/v1/carts/ord-1/items", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if code := decodeErrorCode(t, w); code != "EXPIRED" {
			t.Fatalf("expected EXPIRED, got %s", code)
		}
	})

	t.Run("no applicable price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		r := cartRouter(NewCartHandler(uc))

		uc.EXPECT().AddItem(gomock.Any(), "ord-1", "prod-1", "cat-1", 10, gomock.Any()).
			Return(entities.Order{}, usecase.ErrPriceNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/carts/ord-1/items", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if code := decodeErrorCode(t, w); code != "PRICE_NOT_FOUND" {
			t.Fatalf("expected PRICE_NOT_FOUND, got %s", code)
		}
	})

	t.Run("concurrent modification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		r := cartRouter(NewCartHandler(uc))

		uc.EXPECT().AddItem(gomock.Any(), "ord-1", "prod-1", "cat-1", 10, gomock.Any()).
			Return(entities.Order{}, usecase.ErrConcurrencyConflict)

		req := httptest.NewRequest(http.MethodPost, "/v1/carts/ord-1/items", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if code := decodeErrorCode(t, w); code != "CONCURRENCY_CONFLICT" {
			t.Fatalf("expected CONCURRENCY_CONFLICT, got %s", code)
		}
	})

	t.Run("added", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		r := cartRouter(NewCartHandler(uc))

		uc.EXPECT().AddItem(gomock.Any(), "ord-1", "prod-1", "cat-1", 10,
			entities.ProducerContext{ProducerID: "prd-1", Hectares: 80, MunicipioID: "123"}).
			Return(entities.Order{ID: "ord-1", Total: 900, ItemCount: 1}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/carts/ord-1/items", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCartHandler_GetCart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICartUseCase(ctrl)
	r := cartRouter(NewCartHandler(uc))

	uc.EXPECT().GetCart(gomock.Any(), "ord-x").Return(entities.Order{}, usecase.ErrOrderNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/carts/ord-x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if code := decodeErrorCode(t, w); code != "ENTITY_NOT_FOUND" {
		t.Fatalf("expected ENTITY_NOT_FOUND, got %s", code)
	}
}

func TestCartHandler_ExtendDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICartUseCase(ctrl)
	r := cartRouter(NewCartHandler(uc))

	uc.EXPECT().ExtendDeadline(gomock.Any(), "ord-1", -3).
		Return(entities.Order{}, usecase.ErrInvalidDeadlineDays)

	req := httptest.NewRequest(http.MethodPut, "/v1/carts/ord-1/deadline", bytes.NewBufferString(`{"days":-3}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if code := decodeErrorCode(t, w); code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %s", code)
	}
}
