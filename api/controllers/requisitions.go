package controllers

import (
	"net/http"
	"time"

	"github.com/unitedformulas/storefront-api/api/responses"
	"github.com/unitedformulas/storefront-api/api/validators"
	"github.com/unitedformulas/storefront-api/internal/requisition"
	"github.com/unitedformulas/storefront-api/pkg/logger"
)

// RequisitionSubmit turns the visitor's draft into a dispatched purchase
// order and returns the confirmation plus the priced snapshot.
func RequisitionSubmit(svc requisition.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, err := profileIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload requisition.SubmitInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Submit(r.Context(), profileID, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// RequisitionReceipt renders a submitted snapshot as a printable HTML
// summary. No mail or storage is involved.
func RequisitionReceipt(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload requisition.ReceiptInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		html, err := requisition.RenderReceipt(payload, time.Now())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(html))
	}
}
