package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/unitedformulas/storefront-api/internal/requisition"
	pkgerrors "github.com/unitedformulas/storefront-api/pkg/errors"
)

type stubRequisitionService struct {
	result    *requisition.Result
	err       error
	lastInput requisition.SubmitInput
	lastPID   string
}

func (s *stubRequisitionService) Submit(ctx context.Context, profileID string, input requisition.SubmitInput) (*requisition.Result, error) {
	s.lastPID = profileID
	s.lastInput = input
	return s.result, s.err
}

func TestRequisitionSubmitSuccess(t *testing.T) {
	svc := &stubRequisitionService{result: &requisition.Result{
		Message:         "Order Received. Dispatched to Great Falls Queue. We will email your official Invoice and confirm your delivery window by Wednesday, September 2. No payment required today.",
		GrandTotal:      "$39.00",
		NextBusinessDay: "Wednesday, September 2",
		Items: []requisition.Line{
			{ProductName: "Citric Acid", SKU: "CA-5", Quantity: 3, Price: "$5.00", Total: "$15.00"},
		},
	}}
	handler := RequisitionSubmit(svc, nil)

	body := `{"fullName":"Dana Whitfield","phoneNumber":"406-555-0188","email":"dana@buyer.example","businessName":"Big Sky Brewing","deliveryWindow":"07:00–11:00"}`
	req := withProfile(httptest.NewRequest(http.MethodPost, "/api/v1/requisitions", strings.NewReader(body)))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastPID != "profile-1" {
		t.Fatalf("profile not forwarded: %q", svc.lastPID)
	}
	if svc.lastInput.DeliveryWindow != requisition.DeliveryWindowMorning {
		t.Fatalf("delivery window not decoded: %q", svc.lastInput.DeliveryWindow)
	}
	var envelope struct {
		Data requisition.Result `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.GrandTotal != "$39.00" || len(envelope.Data.Items) != 1 {
		t.Fatalf("unexpected result: %+v", envelope.Data)
	}
}

func TestRequisitionSubmitValidation(t *testing.T) {
	handler := RequisitionSubmit(&stubRequisitionService{}, nil)

	req := withProfile(httptest.NewRequest(http.MethodPost, "/api/v1/requisitions", strings.NewReader(`{"fullName":"Dana Whitfield"}`)))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestRequisitionSubmitEmptyDraft(t *testing.T) {
	svc := &stubRequisitionService{err: pkgerrors.New(pkgerrors.CodeValidation, "draft is empty")}
	handler := RequisitionSubmit(svc, nil)

	body := `{"fullName":"Dana Whitfield","phoneNumber":"406-555-0188","email":"dana@buyer.example","businessName":"Big Sky Brewing"}`
	req := withProfile(httptest.NewRequest(http.MethodPost, "/api/v1/requisitions", strings.NewReader(body)))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Message != "draft is empty" {
		t.Fatalf("unexpected message: %q", envelope.Error.Message)
	}
}

func TestRequisitionReceiptRendersHTML(t *testing.T) {
	handler := RequisitionReceipt(nil)

	body := `{"businessName":"Big Sky Brewing","fullName":"Dana Whitfield","grandTotal":"$15.00","items":[{"productName":"Citric Acid","sku":"CA-5","quantity":3,"price":"$5.00","total":"$15.00"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/requisitions/receipt", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type: %q", ct)
	}
	html := resp.Body.String()
	for _, want := range []string{"Big Sky Brewing", "Citric Acid", "Grand Total: $15.00"} {
		if !strings.Contains(html, want) {
			t.Fatalf("receipt missing %q", want)
		}
	}
}
