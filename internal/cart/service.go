package cart

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"bella-boutique/internal/catalog"
	"bella-boutique/internal/logger"
	"bella-boutique/internal/store"
)

// Options carries the business constants the cart depends on.
type Options struct {
	SlotKey               string
	FreeShippingThreshold int
	ShippingFlatFee       int
}

// Service owns the cart state for one storefront session: it applies the
// pure aggregation ops, mirrors every change to the slot store and notifies
// subscribers. All mutations run synchronously on the caller's goroutine;
// the service is not safe for concurrent use, matching the single-threaded
// event model of the host UI.
type Service interface {
	AddItem(ctx context.Context, p catalog.Product, quantity int) error
	SetQuantity(ctx context.Context, productID string, quantity int) error
	RemoveItem(ctx context.Context, productID string) error
	Clear(ctx context.Context) error
	Lines() []Line
	Totals() Totals
	Subscribe(fn Listener) string
	Unsubscribe(token string)
}

// service implements the Service interface
type service struct {
	opts     Options
	slot     store.Slot
	notifier *notifier
	lines    []Line
}

// NewService restores the persisted cart from the slot and returns the state
// owner. An absent slot starts an empty cart. An unreadable or malformed
// slot also starts an empty cart and additionally reports ErrCartRestore:
// the error is a recovered signal, the returned service is fully usable.
func NewService(ctx context.Context, slot store.Slot, opts Options) (Service, error) {
	s := &service{opts: opts, slot: slot, notifier: newNotifier()}

	data, err := slot.Load(ctx, opts.SlotKey)
	if errors.Is(err, store.ErrSlotEmpty) {
		return s, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Warn("failed to read persisted cart, starting empty",
			zap.String("slot", opts.SlotKey), zap.Error(err))
		return s, fmt.Errorf("%w: %v", ErrCartRestore, err)
	}

	lines, err := decodeLines(data)
	if err != nil {
		logger.FromCtx(ctx).Warn("persisted cart is malformed, starting empty",
			zap.String("slot", opts.SlotKey), zap.Error(err))
		return s, fmt.Errorf("%w: %v", ErrCartRestore, err)
	}

	s.lines = lines
	return s, nil
}

// AddItem adds quantity units of a product. Repeated adds for the same
// product merge into one line, they never duplicate it.
func (s *service) AddItem(ctx context.Context, p catalog.Product, quantity int) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddItem"),
	)

	next, err := add(s.lines, p, quantity)
	if err != nil {
		log.Debug("add rejected",
			zap.String("product_id", p.ID), zap.Int("quantity", quantity), zap.Error(err))
		return err
	}

	log.Debug("item added", zap.String("product_id", p.ID), zap.Int("quantity", quantity))
	return s.commit(ctx, next)
}

// SetQuantity sets a line's quantity exactly. A quantity of zero or less
// removes the line. An absent product id is a no-op, so re-invocations
// (a double-clicked button) stay idempotent.
func (s *service) SetQuantity(ctx context.Context, productID string, quantity int) error {
	next, err := setQuantity(s.lines, productID, quantity)
	if errors.Is(err, ErrLineNotFound) {
		logger.FromCtx(ctx).Debug("set quantity on absent line",
			zap.String("product_id", productID))
		return nil
	}

	return s.commit(ctx, next)
}

// RemoveItem deletes the line for productID if present; no-op otherwise.
func (s *service) RemoveItem(ctx context.Context, productID string) error {
	next, err := remove(s.lines, productID)
	if errors.Is(err, ErrLineNotFound) {
		logger.FromCtx(ctx).Debug("remove on absent line",
			zap.String("product_id", productID))
		return nil
	}

	return s.commit(ctx, next)
}

// Clear empties the cart.
func (s *service) Clear(ctx context.Context) error {
	return s.commit(ctx, nil)
}

// Lines returns a copy of the line sequence in first-add order.
func (s *service) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Totals derives the item count, subtotal, shipping and total from the
// current lines.
func (s *service) Totals() Totals {
	return computeTotals(s.lines, s.opts.FreeShippingThreshold, s.opts.ShippingFlatFee)
}

// Subscribe registers a listener for cart snapshots and returns the token
// used to unsubscribe it.
func (s *service) Subscribe(fn Listener) string {
	return s.notifier.subscribe(fn)
}

func (s *service) Unsubscribe(token string) {
	s.notifier.unsubscribe(token)
}

// commit applies a new line sequence, rewrites the whole slot value and
// notifies subscribers. A failed write keeps the in-memory state applied:
// the session stays correct, only persistence across restarts is lost.
func (s *service) commit(ctx context.Context, next []Line) error {
	s.lines = next
	snap := Snapshot{Lines: s.Lines(), Totals: s.Totals()}

	data, err := encodeLines(next)
	if err == nil {
		err = s.slot.Save(ctx, s.opts.SlotKey, data)
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to persist cart",
			zap.String("slot", s.opts.SlotKey), zap.Error(err))
		s.notifier.notify(snap)
		return fmt.Errorf("%w: %v", ErrPersistCart, err)
	}

	s.notifier.notify(snap)
	return nil
}
