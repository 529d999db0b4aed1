package controllers

import (
	"context"
	"net/http"

	"github.com/unitedformulas/storefront-api/api/responses"
	"github.com/unitedformulas/storefront-api/api/validators"
	dispatchsvc "github.com/unitedformulas/storefront-api/internal/dispatch"
	pkgerrors "github.com/unitedformulas/storefront-api/pkg/errors"
	"github.com/unitedformulas/storefront-api/pkg/logger"
)

// The dispatch endpoints keep the storefront's original response contract:
// {"success":true,"data":...} on delivery,
// {"success":true,"simulated":true,"message":...} in degraded mode, and a
// bare {"error":...,"details":...} object on failure. They do not use the
// envelope the rest of the API speaks.

func writeDispatchResult(w http.ResponseWriter, result *dispatchsvc.Result) {
	if result.Simulated {
		responses.WriteJSON(w, http.StatusOK, map[string]any{
			"success":   true,
			"simulated": true,
			"message":   result.Message,
		})
		return
	}
	responses.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    map[string]string{"id": result.MessageID},
	})
}

func writeDispatchError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	if logg != nil {
		logg.Error(ctx, "dispatch.request_failed", err)
	}

	var message string
	switch typed.Code() {
	case pkgerrors.CodeConfig:
		message = "Configuration Error: Recipient variable missing."
	case pkgerrors.CodeDispatch:
		message = "Email dispatch failed."
	case pkgerrors.CodeValidation:
		message = "Invalid request body."
	case pkgerrors.CodeRateLimit:
		message = "Too many requests."
	default:
		message = "Internal Server Error"
	}

	body := map[string]any{"error": message}
	if details := typed.Details(); details != nil {
		body["details"] = details
	}
	responses.WriteJSON(w, pkgerrors.MetadataFor(typed.Code()).HTTPStatus, body)
}

// DispatchPurchaseOrder accepts a raw purchase order payload and hands it to
// the warehouse queue.
func DispatchPurchaseOrder(svc dispatchsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload dispatchsvc.PurchaseOrderPayload
		if err := validators.DecodeLenientJSONBody(r, &payload); err != nil {
			writeDispatchError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.SendPurchaseOrder(r.Context(), payload)
		if err != nil {
			writeDispatchError(r.Context(), logg, w, err)
			return
		}
		writeDispatchResult(w, result)
	}
}

// DispatchInquiry accepts a stock and price inquiry.
func DispatchInquiry(svc dispatchsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload dispatchsvc.InquiryPayload
		if err := validators.DecodeLenientJSONBody(r, &payload); err != nil {
			writeDispatchError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.SendInquiry(r.Context(), payload)
		if err != nil {
			writeDispatchError(r.Context(), logg, w, err)
			return
		}
		writeDispatchResult(w, result)
	}
}

// DispatchCreditApplication accepts a full credit application form.
func DispatchCreditApplication(svc dispatchsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload dispatchsvc.CreditApplicationPayload
		if err := validators.DecodeLenientJSONBody(r, &payload); err != nil {
			writeDispatchError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.SendCreditApplication(r.Context(), payload)
		if err != nil {
			writeDispatchError(r.Context(), logg, w, err)
			return
		}
		writeDispatchResult(w, result)
	}
}
