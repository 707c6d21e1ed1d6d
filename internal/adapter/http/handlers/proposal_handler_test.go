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

func proposalRouter(h *ProposalHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/orders/:order_id/proposals", h.SubmitProposal)
	r.POST("/v1/orders/:order_id/proposals/list", h.ListProposals)
	r.GET("/v1/orders/:order_id/proposals/latest", h.GetLatestProposal)
	return r
}

func TestProposalHandler_SubmitProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		r := proposalRouter(NewProposalHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/proposals", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not negotiable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		r := proposalRouter(NewProposalHandler(uc))

		uc.EXPECT().SubmitProposal(gomock.Any(), "ord-1",
			entities.ProposalSideProdutor, "usr-1", entities.ProposalActionAceitar, "").
			Return(entities.Proposal{}, usecase.ErrOrderNotNegotiable)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/proposals",
			bytes.NewBufferString(`{"side":"produtor","author_user_id":"usr-1","action":"aceitar"}`))
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

	t.Run("deadline passed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		r := proposalRouter(NewProposalHandler(uc))

		uc.EXPECT().SubmitProposal(gomock.Any(), "ord-1",
			entities.ProposalSideFornecedor, "usr-2", entities.ProposalActionContraproposta, "mais prazo").
			Return(entities.Proposal{}, usecase.ErrCartExpired)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/proposals",
			bytes.NewBufferString(`{"side":"fornecedor","author_user_id":"usr-2","action":"contraproposta","note":"mais prazo"}`))
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

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		r := proposalRouter(NewProposalHandler(uc))

		uc.EXPECT().SubmitProposal(gomock.Any(), "ord-1",
			entities.ProposalSideProdutor, "usr-1", entities.ProposalActionAceitar, "").
			Return(entities.Proposal{ID: "p-1", OrderID: "ord-1", Seq: 4, Action: entities.ProposalActionAceitar}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/proposals",
			bytes.NewBufferString(`{"side":"Produtor","author_user_id":"usr-1","action":"ACEITAR"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			Seq    int64  `json:"seq"`
			Action string `json:"action"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Seq != 4 || body.Action != "aceitar" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestProposalHandler_ListProposals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProposalUseCase(ctrl)
	r := proposalRouter(NewProposalHandler(uc))

	uc.EXPECT().ListProposals(gomock.Any(), "ord-1", true, 2, 0).
		Return([]entities.Proposal{{ID: "p-2", Seq: 2}, {ID: "p-1", Seq: 1}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/proposals/list",
		bytes.NewBufferString(`{"newest_first":true,"limit":2}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []struct {
		Seq int64 `json:"seq"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body) != 2 || body[0].Seq != 2 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestProposalHandler_GetLatestProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("none yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		r := proposalRouter(NewProposalHandler(uc))

		uc.EXPECT().GetLatestProposal(gomock.Any(), "ord-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/proposals/latest", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if code := decodeErrorCode(t, w); code != "ENTITY_NOT_FOUND" {
			t.Fatalf("expected ENTITY_NOT_FOUND, got %s", code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		r := proposalRouter(NewProposalHandler(uc))

		p := entities.Proposal{ID: "p-3", OrderID: "ord-1", Seq: 3}
		uc.EXPECT().GetLatestProposal(gomock.Any(), "ord-1").Return(&p, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/proposals/latest", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
