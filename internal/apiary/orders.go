package apiary

import (
	"context"

	"github.com/osse101/Apiary_Go/internal/domain"
	"github.com/osse101/Apiary_Go/internal/event"
	"github.com/osse101/Apiary_Go/internal/experience"
	"github.com/osse101/Apiary_Go/internal/logger"
	"github.com/osse101/Apiary_Go/internal/storage"
)

// CheckAndGenerateOrders fills free order slots at most once per clock hour
func (s *service) CheckAndGenerateOrders(ctx context.Context) (domain.OrderGenerationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	log := logger.FromContext(ctx)

	level := experience.Level(s.state.experience)
	result, last := s.economy.CheckAndGenerate(s.state.orders, s.state.lastOrderGen, s.state.affinity, level)

	changed := map[string]any{}
	if len(result.Active) != len(s.state.orders) || len(result.Generated) > 0 {
		if expired := len(s.state.orders) + len(result.Generated) - len(result.Active); expired > 0 {
			log.Info(LogMsgOrdersExpired, "count", expired)
		}
		s.state.orders = result.Active
		changed[storage.KeyActiveOrders] = s.state.orders
	}
	if last != s.state.lastOrderGen {
		s.state.lastOrderGen = last
		changed[storage.KeyLastOrderGeneration] = s.state.lastOrderGen
	}
	s.persist(ctx, changed)

	if len(result.Generated) > 0 {
		now := s.clock.Now()
		events := make([]event.Event, 0, len(result.Generated))
		for _, o := range result.Generated {
			events = append(events, event.NewOrderGeneratedEvent(o, now))
		}
		s.publish(ctx, events...)
		log.Info(LogMsgOrdersGenerated, "count", len(result.Generated), "active", len(result.Active), "level", level)
	}
	return result, nil
}

// ActiveOrders lists unexpired orders, dropping expired ones from the stored list
func (s *service) ActiveOrders(ctx context.Context) ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	active, dropped := s.economy.Active(s.state.orders)
	if dropped > 0 {
		s.state.orders = active
		s.persist(ctx, map[string]any{storage.KeyActiveOrders: s.state.orders})
		logger.FromContext(ctx).Info(LogMsgOrdersExpired, "count", dropped)
	}
	out := make([]domain.Order, len(active))
	copy(out, active)
	return out, nil
}

// FulfillOrder pays out orderID if the inventory covers it. Expired orders are removed either way.
func (s *service) FulfillOrder(ctx context.Context, orderID string) (domain.FulfillResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	log := logger.FromContext(ctx)

	outcome, err := s.economy.Fulfill(s.state.orders, orderID, s.state.inventory, s.state.affinity)
	if err != nil {
		if outcome.Dropped > 0 {
			s.state.orders = outcome.Orders
			s.persist(ctx, map[string]any{storage.KeyActiveOrders: s.state.orders})
			log.Info(LogMsgOrdersExpired, "count", outcome.Dropped)
		}
		return domain.FulfillResult{}, err
	}

	s.state.orders = outcome.Orders
	s.state.inventory = outcome.Inventory
	s.state.affinity = outcome.Affinity
	s.persist(ctx, map[string]any{
		storage.KeyActiveOrders:     s.state.orders,
		storage.KeyInventory:        s.state.inventory,
		storage.KeyMerchantAffinity: s.state.affinity,
	})
	s.publish(ctx, event.NewOrderFulfilledEvent(outcome.Result, s.clock.Now()))
	log.Info(LogMsgOrderFulfilled, "order_id", orderID, "merchant", outcome.Result.Order.MerchantID,
		"coins", outcome.Result.CoinsEarned, "affinity", outcome.Result.NewAffinity)
	return outcome.Result, nil
}
