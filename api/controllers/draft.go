package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unitedformulas/storefront-api/api/middleware"
	"github.com/unitedformulas/storefront-api/api/responses"
	"github.com/unitedformulas/storefront-api/api/validators"
	draftsvc "github.com/unitedformulas/storefront-api/internal/draft"
	"github.com/unitedformulas/storefront-api/internal/options"
	pkgerrors "github.com/unitedformulas/storefront-api/pkg/errors"
	"github.com/unitedformulas/storefront-api/pkg/logger"
)

type draftView struct {
	Items []draftsvc.LineItem `json:"items"`
	Count int                 `json:"count"`
}

type addItemRequest struct {
	ProductName string `json:"productName" validate:"required"`
	VariantName string `json:"variantName"`
	Price       string `json:"price" validate:"required"`
	SKU         string `json:"sku" validate:"required"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

type resolveOptionsRequest struct {
	ProductName string            `json:"productName" validate:"required"`
	Variants    []options.Variant `json:"variants" validate:"required,min=1"`
}

func newDraftView(items []draftsvc.LineItem) draftView {
	if items == nil {
		items = []draftsvc.LineItem{}
	}
	return draftView{Items: items, Count: len(items)}
}

func profileIDFromContext(r *http.Request) (string, error) {
	profileID := middleware.ProfileIDFromContext(r.Context())
	if profileID == "" {
		return "", pkgerrors.New(pkgerrors.CodeInternal, "draft profile missing from request context")
	}
	return profileID, nil
}

// DraftFetch returns the visitor's current draft.
func DraftFetch(svc draftsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, err := profileIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := svc.Get(r.Context(), profileID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newDraftView(items))
	}
}

// DraftAddItem adds a selected variant line to the draft. A SKU already in
// the draft is reported without being duplicated.
func DraftAddItem(svc draftsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, err := profileIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, added, err := svc.Add(r.Context(), profileID, draftsvc.LineItem{
			ProductName: payload.ProductName,
			VariantName: payload.VariantName,
			Price:       payload.Price,
			SKU:         payload.SKU,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view := struct {
			draftView
			Added bool `json:"added"`
		}{newDraftView(items), added}

		if added {
			responses.WriteSuccessStatus(w, http.StatusCreated, view)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// DraftUpdateItem sets the quantity of one line. A quantity of zero or less
// removes the line.
func DraftUpdateItem(svc draftsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, err := profileIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sku := chi.URLParam(r, "sku")
		if sku == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "sku is required"))
			return
		}

		var payload updateItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := svc.UpdateQuantity(r.Context(), profileID, sku, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newDraftView(items))
	}
}

// DraftRemoveItem deletes one line. Removing an absent SKU is a no-op.
func DraftRemoveItem(svc draftsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, err := profileIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sku := chi.URLParam(r, "sku")
		if sku == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "sku is required"))
			return
		}

		items, err := svc.Remove(r.Context(), profileID, sku)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newDraftView(items))
	}
}

// DraftClear erases the whole draft.
func DraftClear(svc draftsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, err := profileIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Clear(r.Context(), profileID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newDraftView(nil))
	}
}

// DraftOptions resolves a product's variants into selectable rows with
// draft membership marked.
func DraftOptions(svc draftsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, err := profileIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload resolveOptionsRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := svc.Get(r.Context(), profileID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows := options.Resolve(payload.ProductName, payload.Variants, items)
		responses.WriteSuccess(w, map[string]any{"options": rows})
	}
}
