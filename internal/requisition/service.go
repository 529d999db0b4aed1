// Package requisition turns a visitor's draft into a submitted purchase
// order: it snapshots the draft, prices it, hands it to dispatch, and clears
// the draft once the warehouse queue has it.
package requisition

import (
	"context"
	"time"

	"github.com/unitedformulas/storefront-api/internal/dispatch"
	"github.com/unitedformulas/storefront-api/internal/draft"
	pkgerrors "github.com/unitedformulas/storefront-api/pkg/errors"
	"github.com/unitedformulas/storefront-api/pkg/logger"
	"github.com/unitedformulas/storefront-api/pkg/money"
)

// Delivery windows offered by the warehouse dock.
const (
	DeliveryWindowMorning   = "07:00–11:00"
	DeliveryWindowAfternoon = "13:00–16:00"
)

// SubmitInput is the buyer and logistics block of the requisition form. The
// line items come from the server-side draft, never from the request body.
type SubmitInput struct {
	FullName       string `json:"fullName" validate:"required"`
	PhoneNumber    string `json:"phoneNumber" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	BusinessName   string `json:"businessName" validate:"required"`
	PONumber       string `json:"poNumber"`
	DeliveryWindow string `json:"deliveryWindow" validate:"omitempty,oneof=07:00–11:00 13:00–16:00"`
	DockNotes      string `json:"dockNotes"`
}

// Line is one priced line of a submitted requisition.
type Line struct {
	ProductName string `json:"productName"`
	VariantName string `json:"variantName"`
	SKU         string `json:"sku"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
	Total       string `json:"total"`
}

// Result carries success data only: the priced snapshot taken before the
// draft was cleared, plus the customer-facing confirmation.
type Result struct {
	Message         string `json:"message"`
	Simulated       bool   `json:"simulated,omitempty"`
	MessageID       string `json:"messageId,omitempty"`
	Items           []Line `json:"items"`
	GrandTotal      string `json:"grandTotal"`
	NextBusinessDay string `json:"nextBusinessDay"`
}

type Service interface {
	Submit(ctx context.Context, profileID string, input SubmitInput) (*Result, error)
}

type service struct {
	drafts     draft.Service
	dispatcher dispatch.Service
	logg       *logger.Logger
	now        func() time.Time
}

func NewService(drafts draft.Service, dispatcher dispatch.Service, logg *logger.Logger) (Service, error) {
	if drafts == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "requisition service requires a draft service")
	}
	if dispatcher == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "requisition service requires a dispatch service")
	}
	return &service{drafts: drafts, dispatcher: dispatcher, logg: logg, now: time.Now}, nil
}

func (s *service) Submit(ctx context.Context, profileID string, input SubmitInput) (*Result, error) {
	items, err := s.drafts.Get(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "draft is empty")
	}

	lines, orderItems, grandTotal := priceDraft(items)

	payload := dispatch.PurchaseOrderPayload{
		FullName:       input.FullName,
		PhoneNumber:    input.PhoneNumber,
		Email:          input.Email,
		BusinessName:   input.BusinessName,
		PONumber:       input.PONumber,
		DeliveryWindow: input.DeliveryWindow,
		DockNotes:      input.DockNotes,
		Items:          orderItems,
		GrandTotal:     grandTotal.String(),
	}
	sent, err := s.dispatcher.SendPurchaseOrder(ctx, payload)
	if err != nil {
		return nil, err
	}

	// The order is already in the queue; a failed clear must not fail the
	// submission. The stale draft expires with its TTL.
	if err := s.drafts.Clear(ctx, profileID); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithProfileID(ctx, profileID), "requisition.draft_clear_failed")
	}

	nextDay := FormatBusinessDay(NextBusinessDay(s.now()))
	return &Result{
		Message:         confirmationMessage(nextDay),
		Simulated:       sent.Simulated,
		MessageID:       sent.MessageID,
		Items:           lines,
		GrandTotal:      grandTotal.String(),
		NextBusinessDay: nextDay,
	}, nil
}

// priceDraft computes per-line totals and the grand total from the stored
// line items. Stored prices still carry their display decoration.
func priceDraft(items []draft.LineItem) ([]Line, []dispatch.OrderItem, money.Amount) {
	lines := make([]Line, 0, len(items))
	orderItems := make([]dispatch.OrderItem, 0, len(items))
	var grand money.Amount
	for _, item := range items {
		unit := money.Parse(item.Price)
		total := unit.Mul(item.Quantity)
		grand = grand.Add(total)
		lines = append(lines, Line{
			ProductName: item.ProductName,
			VariantName: item.VariantName,
			SKU:         item.SKU,
			Quantity:    item.Quantity,
			Price:       unit.String(),
			Total:       total.String(),
		})
		orderItems = append(orderItems, dispatch.OrderItem{
			ProductName: item.ProductName,
			VariantName: item.VariantName,
			SKU:         item.SKU,
			Quantity:    item.Quantity,
			Price:       unit.String(),
			Total:       total.String(),
		})
	}
	return lines, orderItems, grand
}

func confirmationMessage(nextBusinessDay string) string {
	return "Order Received. Dispatched to Great Falls Queue. We will email your official Invoice and confirm your delivery window by " +
		nextBusinessDay + ". No payment required today."
}

// NextBusinessDay walks forward from the given day, skipping weekends. The
// bound keeps a malformed clock from looping.
func NextBusinessDay(from time.Time) time.Time {
	day := from.AddDate(0, 0, 1)
	for i := 0; i < 10; i++ {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			break
		}
		day = day.AddDate(0, 0, 1)
	}
	return day
}

// FormatBusinessDay renders a date the way the confirmation copy expects,
// e.g. "Tuesday, September 1".
func FormatBusinessDay(t time.Time) string {
	return t.Format("Monday, January 2")
}
