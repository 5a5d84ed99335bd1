package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"commerce_engine/internal/adapter/http/handlers/mocks"
	"commerce_engine/internal/domain/entities"
	"commerce_engine/internal/usecase"
	"commerce_engine/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeHTTPError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, w.Body.String())
	}
	return body
}

func newProposalRouter(uc *mocks.MockIProposalUseCase) *gin.Engine {
	h := NewProposalHandler(uc)
	r := gin.New()
	r.POST("/v1/proposals", h.CreateProposal)
	r.GET("/v1/proposals", h.ListProposals)
	r.GET("/v1/proposals/:id", h.GetProposal)
	r.PUT("/v1/proposals/:id", h.UpdateProposal)
	r.DELETE("/v1/proposals/:id", h.DeleteProposal)
	r.POST("/v1/proposals/:id/validate", h.ValidateProposal)
	r.POST("/v1/proposals/:id/send", h.SendProposal)
	r.POST("/v1/proposals/:id/accept", h.AcceptProposal)
	r.POST("/v1/proposals/:id/reject", h.RejectProposal)
	return r
}

func TestProposalHandler_CreateProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newProposalRouter(mocks.NewMockIProposalUseCase(ctrl))

		w := serve(r, http.MethodPost, "/v1/proposals", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing lead id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newProposalRouter(mocks.NewMockIProposalUseCase(ctrl))

		w := serve(r, http.MethodPost, "/v1/proposals", `{"lead_id":"  ","line_items":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation failure carries details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		r := newProposalRouter(uc)

		uc.EXPECT().CreateProposal(gomock.Any(), gomock.Any()).Return(entities.Proposal{}, &usecase.ProposalValidationError{
			Reason:   usecase.ErrMissingLineItems,
			Problems: []string{"at least one line item is required"},
		})

		w := serve(r, http.MethodPost, "/v1/proposals", `{"lead_id":"lead-1","line_items":[]}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		body := decodeHTTPError(t, w)
		if body.Code != "MISSING_LINE_ITEMS" || len(body.Details) != 1 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		r := newProposalRouter(uc)

		now := time.Now().UTC()
		uc.EXPECT().CreateProposal(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.ProposalInput) (entities.Proposal, error) {
			if in.LeadID != "lead-1" || len(in.LineItems) != 2 || in.TotalAmount != 3000 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.Proposal{ID: "prop-1", LeadID: in.LeadID, Status: entities.ProposalStatusDraft, LineItems: in.LineItems, TotalAmount: 3000, CreatedAt: now, UpdatedAt: now}, nil
		})

		w := serve(r, http.MethodPost, "/v1/proposals", `{"lead_id":"lead-1","total_amount":3000,"line_items":[
			{"description":"Website","quantity":1,"unit_price":2500,"total":2500},
			{"description":"Logo","quantity":1,"unit_price":500,"total":500}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "prop-1" || body["status"] != "draft" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestProposalHandler_ReadEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		r := newProposalRouter(uc)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Proposal{}, usecase.ErrProposalNotFound)

		w := serve(r, http.MethodGet, "/v1/proposals/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list requires lead id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newProposalRouter(mocks.NewMockIProposalUseCase(ctrl))

		w := serve(r, http.MethodGet, "/v1/proposals", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("list by lead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		r := newProposalRouter(uc)

		uc.EXPECT().ListByLeadID(gomock.Any(), "lead-1").Return([]entities.Proposal{{ID: "a"}, {ID: "b"}}, nil)

		w := serve(r, http.MethodGet, "/v1/proposals?lead_id=lead-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("expected 2 proposals, got %d", len(body))
		}
	})

	t.Run("validate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		r := newProposalRouter(uc)

		uc.EXPECT().Validate(gomock.Any(), "prop-1").Return(entities.ProposalValidation{
			Valid:  false,
			Errors: []string{"total does not match sum of line items"},
		}, nil)

		w := serve(r, http.MethodPost, "/v1/proposals/prop-1/validate", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["valid"] != false {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestProposalHandler_Lifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("update of a sent proposal conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		r := newProposalRouter(uc)

		uc.EXPECT().UpdateProposal(gomock.Any(), "prop-1", gomock.Any()).Return(entities.Proposal{}, usecase.ErrInvalidStatusTransition)

		w := serve(r, http.MethodPut, "/v1/proposals/prop-1", `{"notes":"x"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		r := newProposalRouter(uc)

		uc.EXPECT().DeleteProposal(gomock.Any(), "prop-1").Return(nil)

		w := serve(r, http.MethodDelete, "/v1/proposals/prop-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("send without lead email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		r := newProposalRouter(uc)

		uc.EXPECT().SendProposal(gomock.Any(), "prop-1").Return(entities.Proposal{}, usecase.ErrMissingEmail)

		w := serve(r, http.MethodPost, "/v1/proposals/prop-1/send", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if body := decodeHTTPError(t, w); body.Code != "MISSING_EMAIL" {
			t.Fatalf("unexpected code %s", body.Code)
		}
	})

	t.Run("send", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		r := newProposalRouter(uc)

		uc.EXPECT().SendProposal(gomock.Any(), "prop-1").Return(entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusSent}, nil)

		w := serve(r, http.MethodPost, "/v1/proposals/prop-1/send", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("accept returns proposal and order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		r := newProposalRouter(uc)

		uc.EXPECT().AcceptProposal(gomock.Any(), "prop-1").Return(
			entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusAccepted, OrderID: "ord-1"},
			entities.Order{ID: "ord-1", ProposalID: "prop-1", Total: 3000, PaymentStatus: entities.PaymentStatusPending},
			nil,
		)

		w := serve(r, http.MethodPost, "/v1/proposals/prop-1/accept", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Proposal map[string]any `json:"proposal"`
			Order    map[string]any `json:"order"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Proposal["order_id"] != "ord-1" || body.Order["id"] != "ord-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("accept with failed order creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		r := newProposalRouter(uc)

		uc.EXPECT().AcceptProposal(gomock.Any(), "prop-1").Return(entities.Proposal{}, entities.Order{}, fmt.Errorf("%w: %v", usecase.ErrOrderCreationFailed, errors.New("boom")))

		w := serve(r, http.MethodPost, "/v1/proposals/prop-1/accept", "")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("reject twice conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		r := newProposalRouter(uc)

		uc.EXPECT().RejectProposal(gomock.Any(), "prop-1").Return(entities.Proposal{}, usecase.ErrInvalidStatusTransition)

		w := serve(r, http.MethodPost, "/v1/proposals/prop-1/reject", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMapProposalError(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{usecase.ErrInvalidProposalID, "INVALID_REQUEST", http.StatusBadRequest},
		{usecase.ErrProposalNotFound, "PROPOSAL_NOT_FOUND", http.StatusNotFound},
		{&usecase.ProposalValidationError{Reason: usecase.ErrInvalidTotal}, "INVALID_TOTAL", http.StatusUnprocessableEntity},
		{&usecase.ProposalValidationError{Reason: usecase.ErrInvalidProposal, Problems: []string{"a", "b"}}, "INVALID_PROPOSAL", http.StatusUnprocessableEntity},
		{errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			appErr := mapProposalError(tc.err)
			if appErr.Code != tc.code || appErr.HTTPStatus != tc.status {
				t.Fatalf("expected %s/%d, got %s/%d", tc.code, tc.status, appErr.Code, appErr.HTTPStatus)
			}
		})
	}
}
