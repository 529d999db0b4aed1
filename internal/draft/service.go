package draft

import (
	"context"
	"encoding/json"
	"strings"

	pkgerrors "github.com/unitedformulas/storefront-api/pkg/errors"
	"github.com/unitedformulas/storefront-api/pkg/logger"
)

// Service is the single source of truth for what a visitor intends to
// requisition. Every mutation re-serializes the whole draft to storage.
type Service interface {
	Get(ctx context.Context, profileID string) ([]LineItem, error)
	// Add inserts the item with quantity forced to 1. Adding a SKU already
	// present is a silent no-op; the returned bool reports whether the draft
	// changed (and was written).
	Add(ctx context.Context, profileID string, item LineItem) ([]LineItem, bool, error)
	Remove(ctx context.Context, profileID, sku string) ([]LineItem, error)
	// UpdateQuantity replaces the quantity of the matching entry. A quantity
	// of zero or less removes the line item.
	UpdateQuantity(ctx context.Context, profileID, sku string, quantity int) ([]LineItem, error)
	Clear(ctx context.Context, profileID string) error
}

type service struct {
	storage Storage
	logg    *logger.Logger
}

// NewService wires draft dependencies.
func NewService(storage Storage, logg *logger.Logger) (Service, error) {
	if storage == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "draft storage required")
	}
	return &service{storage: storage, logg: logg}, nil
}

func (s *service) Get(ctx context.Context, profileID string) ([]LineItem, error) {
	if err := validateProfileID(profileID); err != nil {
		return nil, err
	}
	return s.load(ctx, profileID)
}

func (s *service) Add(ctx context.Context, profileID string, item LineItem) ([]LineItem, bool, error) {
	if err := validateProfileID(profileID); err != nil {
		return nil, false, err
	}
	if strings.TrimSpace(item.SKU) == "" {
		return nil, false, pkgerrors.New(pkgerrors.CodeValidation, "line item sku is required")
	}

	items, err := s.load(ctx, profileID)
	if err != nil {
		return nil, false, err
	}

	for _, existing := range items {
		if existing.SKU == item.SKU {
			return items, false, nil
		}
	}

	item.Quantity = 1
	items = append(items, item)
	if err := s.persist(ctx, profileID, items); err != nil {
		return nil, false, err
	}
	return items, true, nil
}

func (s *service) Remove(ctx context.Context, profileID, sku string) ([]LineItem, error) {
	if err := validateProfileID(profileID); err != nil {
		return nil, err
	}

	items, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	kept := items[:0]
	for _, item := range items {
		if item.SKU != sku {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return items, nil
	}
	if err := s.persist(ctx, profileID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (s *service) UpdateQuantity(ctx context.Context, profileID, sku string, quantity int) ([]LineItem, error) {
	if err := validateProfileID(profileID); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return s.Remove(ctx, profileID, sku)
	}

	items, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].SKU == sku {
			items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "line item not in draft")
	}
	if err := s.persist(ctx, profileID, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *service) Clear(ctx context.Context, profileID string) error {
	if err := validateProfileID(profileID); err != nil {
		return err
	}
	if err := s.storage.DeleteDraft(ctx, profileID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear draft")
	}
	return nil
}

// load rehydrates the draft. A corrupt serialization is logged and treated
// as an empty draft; the visitor never sees a storage error.
func (s *service) load(ctx context.Context, profileID string) ([]LineItem, error) {
	raw, err := s.storage.GetDraft(ctx, profileID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load draft")
	}
	if raw == "" {
		return []LineItem{}, nil
	}

	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithProfileID(ctx, profileID), "draft.deserialize_failed")
		}
		return []LineItem{}, nil
	}
	return items, nil
}

func (s *service) persist(ctx context.Context, profileID string, items []LineItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "serialize draft")
	}
	if err := s.storage.SetDraft(ctx, profileID, string(payload)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist draft")
	}
	return nil
}

func validateProfileID(profileID string) error {
	if strings.TrimSpace(profileID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "draft profile id is required")
	}
	return nil
}
