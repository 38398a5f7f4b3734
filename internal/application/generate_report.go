package application

import (
	"context"
	"fmt"
	"time"

	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
)

type GenerateReportUseCase struct {
	store         domain.AttestationStore
	reportStorage domain.ReportStorage
	messageBus    domain.MessageBus
	billingHook   domain.BillingHook
	reportTTL     time.Duration
	logger        *zap.SugaredLogger
}

func NewGenerateReportUseCase(
	store domain.AttestationStore,
	reportStorage domain.ReportStorage,
	messageBus domain.MessageBus,
	billingHook domain.BillingHook,
	reportTTL time.Duration,
	logger *zap.SugaredLogger,
) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		store:         store,
		reportStorage: reportStorage,
		messageBus:    messageBus,
		billingHook:   billingHook,
		reportTTL:     reportTTL,
		logger:        logger,
	}
}

// executes the generate report use case
func (u *GenerateReportUseCase) Execute(ctx context.Context, accountID, attestationID string) error {
	u.logger.Infow("generating attestation report", "account_id", accountID, "attestation_id", attestationID)

	att, err := u.store.Get(ctx, accountID)
	if err != nil {
		u.logger.Errorw("failed to get attestation", "account_id", accountID, "error", err)
		return fmt.Errorf("failed to get attestation: %w", err)
	}

	if att == nil {
		return &domain.NotFoundError{AccountID: accountID}
	}

	// the report always reflects the current attestation; a superseded
	// attestation id is only worth a log line
	if att.ID != attestationID {
		u.logger.Debugw("attestation superseded since event", "account_id", accountID, "event_attestation_id", attestationID, "current_attestation_id", att.ID)
	}

	pdfData, err := GenerateAttestationPDF(att)
	if err != nil {
		u.logger.Errorw("failed to generate pdf", "account_id", accountID, "error", err)
		return fmt.Errorf("failed to generate pdf: %w", err)
	}

	if len(pdfData) < 1024 || string(pdfData[:4]) != "%PDF" {
		u.logger.Errorw("invalid pdf generated", "account_id", accountID, "size", len(pdfData))
		return fmt.Errorf("invalid pdf generated")
	}

	// a report never outlives the attestation it documents
	reportExpiry := time.Now().UTC().Add(u.reportTTL)
	if att.ExpiresAt.Before(reportExpiry) {
		reportExpiry = att.ExpiresAt
	}

	reportKey := fmt.Sprintf("%s.pdf", att.ID)
	meta := domain.ReportMetadata{
		AccountID:     accountID,
		AttestationID: att.ID,
		ExpiresAt:     reportExpiry,
	}
	if err := u.reportStorage.Put(ctx, reportKey, pdfData, meta); err != nil {
		u.logger.Errorw("failed to store report", "account_id", accountID, "error", err)
		return fmt.Errorf("failed to store report: %w", err)
	}

	event := domain.NewEvent(domain.EventReportReady, &domain.ReportReadyPayload{
		AttestationID: att.ID,
		AccountID:     accountID,
		ReportKey:     reportKey,
	})
	if err := u.messageBus.Publish(ctx, domain.EventReportReady, event); err != nil {
		u.logger.Errorw("failed to publish report ready event", "account_id", accountID, "error", err)
	}

	// billing hook (non-blocking)
	if err := u.billingHook.OnAttestationIssued(ctx, att); err != nil {
		u.logger.Warnw("billing hook failed", "account_id", accountID, "error", err)
	}

	u.logger.Infow("report generated", "account_id", accountID, "report_key", reportKey, "pdf_size", len(pdfData))

	return nil
}
