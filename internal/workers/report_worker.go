package workers

import (
	"context"
	"encoding/json"

	"github.com/zerotrustlabs/compliance-backend/internal/application"
	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
)

const QueueReportJobs = "q_report_jobs"

// ReportWorker renders a PDF report for every issued attestation and
// records failed check runs for operator triage.
type ReportWorker struct {
	generateReportUseCase *application.GenerateReportUseCase
	messageBus            domain.MessageBus
	logger                *zap.SugaredLogger
	ctx                   context.Context
	cancel                context.CancelFunc
}

func NewReportWorker(
	generateReportUseCase *application.GenerateReportUseCase,
	messageBus domain.MessageBus,
	logger *zap.SugaredLogger,
) *ReportWorker {
	ctx, cancel := context.WithCancel(context.Background())
	return &ReportWorker{
		generateReportUseCase: generateReportUseCase,
		messageBus:            messageBus,
		logger:                logger,
		ctx:                   ctx,
		cancel:                cancel,
	}
}

func (w *ReportWorker) Start() error {
	w.logger.Info("starting report worker")

	routingKeys := []string{domain.EventAttestationIssued, domain.EventAttestationFailed}

	return w.messageBus.Subscribe(w.ctx, QueueReportJobs, routingKeys, w.handleMessage)
}

func (w *ReportWorker) Stop() {
	w.logger.Info("stopping report worker")
	w.cancel()
}

func (w *ReportWorker) handleMessage(body []byte) error {
	var event domain.Event
	if err := json.Unmarshal(body, &event); err != nil {
		w.logger.Errorw("failed to unmarshal event", "error", err)
		return err
	}

	w.logger.Infow("processing event", "event_type", event.Type, "event_id", event.ID)

	switch event.Type {
	case domain.EventAttestationIssued:
		return w.handleAttestationIssued(&event)
	case domain.EventAttestationFailed:
		return w.handleAttestationFailed(&event)
	default:
		w.logger.Warnw("unknown event type", "event_type", event.Type)
		return nil
	}
}

func (w *ReportWorker) handleAttestationIssued(event *domain.Event) error {
	payloadBytes, err := json.Marshal(event.Payload)
	if err != nil {
		w.logger.Errorw("failed to marshal payload", "error", err)
		return err
	}

	var payload domain.AttestationIssuedPayload
	if err := json.Unmarshal(payloadBytes, &payload); err != nil {
		w.logger.Errorw("failed to unmarshal payload", "error", err)
		return err
	}

	ctx := context.Background()
	return w.generateReportUseCase.Execute(ctx, payload.AccountID, payload.AttestationID)
}

func (w *ReportWorker) handleAttestationFailed(event *domain.Event) error {
	payloadBytes, err := json.Marshal(event.Payload)
	if err != nil {
		w.logger.Errorw("failed to marshal payload", "error", err)
		return err
	}

	var payload domain.AttestationFailedPayload
	if err := json.Unmarshal(payloadBytes, &payload); err != nil {
		w.logger.Errorw("failed to unmarshal payload", "error", err)
		return err
	}

	// no report to render, keep the failure visible for operators
	w.logger.Warnw("attestation failed",
		"account_id", payload.AccountID,
		"error_message", payload.ErrorMessage,
	)
	return nil
}
