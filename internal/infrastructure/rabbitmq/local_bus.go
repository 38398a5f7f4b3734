package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
)

// LocalBus is an in-process implementation of domain.MessageBus used when no
// broker is configured. Events are dispatched asynchronously to subscribed
// handlers, with no persistence or retry.
type LocalBus struct {
	mu       sync.RWMutex
	handlers map[string][]func([]byte) error
	logger   *zap.SugaredLogger
}

func NewLocalBus(logger *zap.SugaredLogger) *LocalBus {
	logger.Info("using in-process message bus")
	return &LocalBus{
		handlers: make(map[string][]func([]byte) error),
		logger:   logger,
	}
}

func (b *LocalBus) Publish(ctx context.Context, routingKey string, event *domain.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	b.mu.RLock()
	handlers := b.handlers[routingKey]
	b.mu.RUnlock()

	for _, handler := range handlers {
		h := handler
		go func() {
			if err := h(body); err != nil {
				b.logger.Errorw("failed to handle event", "routing_key", routingKey, "error", err)
			}
		}()
	}

	b.logger.Debugw("event dispatched", "routing_key", routingKey, "event_type", event.Type, "handlers", len(handlers))

	return nil
}

func (b *LocalBus) Subscribe(ctx context.Context, queueName string, routingKeys []string, handler func([]byte) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, key := range routingKeys {
		b.handlers[key] = append(b.handlers[key], handler)
	}

	b.logger.Infow("subscribed to local bus", "queue", queueName, "routing_keys", routingKeys)

	return nil
}

func (b *LocalBus) Close() error {
	return nil
}
