package workers

import (
	"context"
	"encoding/json"

	"github.com/zerotrustlabs/compliance-backend/internal/application"
	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
)

const QueueAttestationRefresh = "q_attestation_refresh"

// AttestationWorker re-runs the comprehensive check whenever a refresh is
// requested, superseding the account's current attestation.
type AttestationWorker struct {
	checkUseCase *application.ComprehensiveCheckUseCase
	messageBus   domain.MessageBus
	logger       *zap.SugaredLogger
	ctx          context.Context
	cancel       context.CancelFunc
}

func NewAttestationWorker(
	checkUseCase *application.ComprehensiveCheckUseCase,
	messageBus domain.MessageBus,
	logger *zap.SugaredLogger,
) *AttestationWorker {
	ctx, cancel := context.WithCancel(context.Background())
	return &AttestationWorker{
		checkUseCase: checkUseCase,
		messageBus:   messageBus,
		logger:       logger,
		ctx:          ctx,
		cancel:       cancel,
	}
}

func (w *AttestationWorker) Start() error {
	w.logger.Info("starting attestation worker")

	routingKeys := []string{domain.EventAttestationRefreshRequested}

	return w.messageBus.Subscribe(w.ctx, QueueAttestationRefresh, routingKeys, w.handleMessage)
}

func (w *AttestationWorker) Stop() {
	w.logger.Info("stopping attestation worker")
	w.cancel()
}

func (w *AttestationWorker) handleMessage(body []byte) error {
	var event domain.Event
	if err := json.Unmarshal(body, &event); err != nil {
		w.logger.Errorw("failed to unmarshal event", "error", err)
		return err
	}

	w.logger.Infow("processing event", "event_type", event.Type, "event_id", event.ID)

	switch event.Type {
	case domain.EventAttestationRefreshRequested:
		return w.handleRefreshRequested(&event)
	default:
		w.logger.Warnw("unknown event type", "event_type", event.Type)
		return nil
	}
}

func (w *AttestationWorker) handleRefreshRequested(event *domain.Event) error {
	payloadBytes, err := json.Marshal(event.Payload)
	if err != nil {
		w.logger.Errorw("failed to marshal payload", "error", err)
		return err
	}

	var payload domain.AttestationRefreshRequestedPayload
	if err := json.Unmarshal(payloadBytes, &payload); err != nil {
		w.logger.Errorw("failed to unmarshal payload", "error", err)
		return err
	}

	ctx := context.Background()
	_, err = w.checkUseCase.Execute(ctx, payload.AccountID)
	return err
}
