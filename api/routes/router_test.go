package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/unitedformulas/storefront-api/internal/dispatch"
	"github.com/unitedformulas/storefront-api/internal/draft"
	"github.com/unitedformulas/storefront-api/internal/requisition"
	"github.com/unitedformulas/storefront-api/pkg/config"
	"github.com/unitedformulas/storefront-api/pkg/redis"
)

type stubDraftService struct{}

func (stubDraftService) Get(ctx context.Context, profileID string) ([]draft.LineItem, error) {
	return nil, nil
}

func (stubDraftService) Add(ctx context.Context, profileID string, item draft.LineItem) ([]draft.LineItem, bool, error) {
	return []draft.LineItem{item}, true, nil
}

func (stubDraftService) Remove(ctx context.Context, profileID, sku string) ([]draft.LineItem, error) {
	return nil, nil
}

func (stubDraftService) UpdateQuantity(ctx context.Context, profileID, sku string, quantity int) ([]draft.LineItem, error) {
	return nil, nil
}

func (stubDraftService) Clear(ctx context.Context, profileID string) error {
	return nil
}

type stubRequisitionService struct{}

func (stubRequisitionService) Submit(ctx context.Context, profileID string, input requisition.SubmitInput) (*requisition.Result, error) {
	return &requisition.Result{Message: "ok", GrandTotal: "$0.00"}, nil
}

type stubDispatchService struct{}

func (stubDispatchService) SendPurchaseOrder(ctx context.Context, payload dispatch.PurchaseOrderPayload) (*dispatch.Result, error) {
	return &dispatch.Result{MessageID: "msg_1"}, nil
}

func (stubDispatchService) SendInquiry(ctx context.Context, payload dispatch.InquiryPayload) (*dispatch.Result, error) {
	return &dispatch.Result{Simulated: true, Message: "Dev Mode: Inquiry logged to console instead of email."}, nil
}

func (stubDispatchService) SendCreditApplication(ctx context.Context, payload dispatch.CreditApplicationPayload) (*dispatch.Result, error) {
	return &dispatch.Result{MessageID: "msg_2"}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Env:  "test",
			Port: "8080",
		},
		Draft: config.DraftConfig{TTL: time.Hour},
	}
}

func newTestRouter() http.Handler {
	return NewRouter(
		testConfig(),
		nil,
		&redis.Client{},
		stubDraftService{},
		stubRequisitionService{},
		stubDispatchService{},
		nil,
	)
}

func TestRouterHealthLive(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if env := resp.Header().Get("X-UF-Env"); env != "test" {
		t.Fatalf("unexpected env header: %q", env)
	}
}

func TestRouterHealthReadyFailsWithoutRedis(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}

func TestRouterDraftIssuesToken(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/draft", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Header().Get("X-Draft-Token") == "" {
		t.Fatal("expected a draft token on the response")
	}
}

func TestRouterDispatchInquiryContract(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dispatch/inquiry", strings.NewReader(`{"company":"Osei Labs"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var payload map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["success"] != true || payload["simulated"] != true {
		t.Fatalf("unexpected body: %v", payload)
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
