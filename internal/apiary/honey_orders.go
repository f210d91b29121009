package apiary

import (
	"context"
	"maps"
	"slices"

	"github.com/osse101/Apiary_Go/internal/domain"
	"github.com/osse101/Apiary_Go/internal/event"
	"github.com/osse101/Apiary_Go/internal/honey"
	"github.com/osse101/Apiary_Go/internal/logger"
	"github.com/osse101/Apiary_Go/internal/order"
	"github.com/osse101/Apiary_Go/internal/storage"
)

// HoneyOrders returns today's honey board, drawing a new one on the first call of the day
func (s *service) HoneyOrders(ctx context.Context) (domain.HoneyOrderBoard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	s.refreshHoneyOrders(ctx)
	return copyBoard(s.state.honeyOrders), nil
}

// FulfillHoneyOrder delivers a honey order from the bottled honey stock
func (s *service) FulfillHoneyOrder(ctx context.Context, orderID string) (domain.HoneyFulfillResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	s.refreshHoneyOrders(ctx)

	board, inv, result, err := s.honeyBoard.Fulfill(s.state.honeyOrders, orderID, s.state.inventory)
	if err != nil {
		return domain.HoneyFulfillResult{}, err
	}
	s.state.honeyOrders = board
	s.state.inventory = inv
	s.persist(ctx, map[string]any{
		storage.KeyHoneyOrders: s.state.honeyOrders,
		storage.KeyInventory:   s.state.inventory,
	})
	s.publish(ctx, event.NewHoneyOrderFulfilledEvent(result, s.clock.Now()))
	logger.FromContext(ctx).Info(LogMsgHoneyOrderFulfilled,
		"order_id", orderID, "type", result.Order.HoneyType, "coins", result.CoinsEarned, "reduced", result.Reduced)
	return result, nil
}

// refreshHoneyOrders draws a new board once the local day rolls over.
// Callers must hold s.mu.
func (s *service) refreshHoneyOrders(ctx context.Context) {
	board, fresh := s.honeyBoard.Refresh(s.state.honeyOrders, s.likelyHoney())
	if !fresh {
		return
	}
	s.state.honeyOrders = board
	s.persist(ctx, map[string]any{storage.KeyHoneyOrders: s.state.honeyOrders})
	logger.FromContext(ctx).Info(LogMsgHoneyOrdersDrawn, "date", board.Date, "count", len(board.Orders))
}

// likelyHoney is the honey the player holds or could make from crops they
// have already grown, in display order
func (s *service) likelyHoney() []domain.HoneyType {
	seen := make(map[domain.HoneyType]bool)
	for t, n := range s.state.inventory.Honey {
		if n > 0 {
			seen[t] = true
		}
	}
	for _, id := range s.state.experience.UniqueCrops {
		def, err := s.crops.Get(id)
		if err != nil {
			continue
		}
		if t, ok := honey.GradeForCrop(def); ok {
			seen[t] = true
		}
	}
	out := make([]domain.HoneyType, 0, len(seen))
	for _, t := range domain.HoneyTypes {
		if seen[t] {
			out = append(out, t)
		}
	}
	return out
}

func copyBoard(b *domain.HoneyOrderBoard) domain.HoneyOrderBoard {
	if b == nil {
		return domain.HoneyOrderBoard{Orders: []domain.HoneyOrder{}, Fulfilled: map[domain.HoneyType]int{}}
	}
	return domain.HoneyOrderBoard{
		Date:      b.Date,
		Orders:    slices.Clone(b.Orders),
		Fulfilled: maps.Clone(b.Fulfilled),
	}
}

// openHoneyOrders lists undelivered orders without drawing a new day
func (s *service) openHoneyOrders() []domain.HoneyOrder {
	if s.state.honeyOrders == nil || s.state.honeyOrders.Date != s.honeyBoard.Today() {
		return []domain.HoneyOrder{}
	}
	return order.OpenHoneyOrders(s.state.honeyOrders)
}
