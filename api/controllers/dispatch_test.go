package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dispatchsvc "github.com/unitedformulas/storefront-api/internal/dispatch"
	pkgerrors "github.com/unitedformulas/storefront-api/pkg/errors"
)

type stubDispatchService struct {
	result *dispatchsvc.Result
	err    error
	lastPO dispatchsvc.PurchaseOrderPayload
}

func (s *stubDispatchService) SendPurchaseOrder(ctx context.Context, payload dispatchsvc.PurchaseOrderPayload) (*dispatchsvc.Result, error) {
	s.lastPO = payload
	return s.result, s.err
}

func (s *stubDispatchService) SendInquiry(ctx context.Context, payload dispatchsvc.InquiryPayload) (*dispatchsvc.Result, error) {
	return s.result, s.err
}

func (s *stubDispatchService) SendCreditApplication(ctx context.Context, payload dispatchsvc.CreditApplicationPayload) (*dispatchsvc.Result, error) {
	return s.result, s.err
}

func TestDispatchPurchaseOrderSuccessContract(t *testing.T) {
	svc := &stubDispatchService{result: &dispatchsvc.Result{MessageID: "msg_7"}}
	handler := DispatchPurchaseOrder(svc, nil)

	body := `{"businessName":"Big Sky Brewing","email":"dana@buyer.example","items":[{"productName":"Citric Acid","quantity":2}],"grandTotal":"$168.00","surprise":"field"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/dispatch/purchase-order", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var payload struct {
		Success bool `json:"success"`
		Data    struct {
			ID string `json:"id"`
		} `json:"data"`
		Simulated bool `json:"simulated"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !payload.Success || payload.Data.ID != "msg_7" || payload.Simulated {
		t.Fatalf("unexpected contract body: %+v", payload)
	}
	if svc.lastPO.BusinessName != "Big Sky Brewing" {
		t.Fatalf("payload not decoded: %+v", svc.lastPO)
	}
}

func TestDispatchPurchaseOrderSimulatedContract(t *testing.T) {
	svc := &stubDispatchService{result: &dispatchsvc.Result{
		Simulated: true,
		Message:   "Dev Mode: PO logged to console instead of email.",
	}}
	handler := DispatchPurchaseOrder(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dispatch/purchase-order", strings.NewReader(`{}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["success"] != true || payload["simulated"] != true {
		t.Fatalf("unexpected contract body: %v", payload)
	}
	if payload["message"] != "Dev Mode: PO logged to console instead of email." {
		t.Fatalf("unexpected message: %v", payload["message"])
	}
	if _, ok := payload["data"]; ok {
		t.Fatal("simulated response must not carry data")
	}
}

func TestDispatchInquiryConfigErrorContract(t *testing.T) {
	svc := &stubDispatchService{err: pkgerrors.New(pkgerrors.CodeConfig, "warehouse recipient not configured")}
	handler := DispatchInquiry(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dispatch/inquiry", strings.NewReader(`{"company":"Osei Labs"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["error"] != "Configuration Error: Recipient variable missing." {
		t.Fatalf("unexpected error body: %v", payload)
	}
	if _, ok := payload["success"]; ok {
		t.Fatal("error response must not carry success")
	}
}

func TestDispatchInquiryTransportErrorContract(t *testing.T) {
	svc := &stubDispatchService{err: pkgerrors.New(pkgerrors.CodeDispatch, "sending dispatch email").WithDetails("resend: 422 invalid to address")}
	handler := DispatchInquiry(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dispatch/inquiry", strings.NewReader(`{"company":"Osei Labs"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["error"] != "Email dispatch failed." {
		t.Fatalf("unexpected error body: %v", payload)
	}
	if payload["details"] != "resend: 422 invalid to address" {
		t.Fatalf("expected provider details, got %v", payload["details"])
	}
}

func TestDispatchCreditApplicationMalformedBody(t *testing.T) {
	handler := DispatchCreditApplication(&stubDispatchService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dispatch/credit-application", strings.NewReader(`{"companyName":`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["error"] != "Invalid request body." {
		t.Fatalf("unexpected error body: %v", payload)
	}
}
