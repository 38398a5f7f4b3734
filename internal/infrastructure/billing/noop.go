package billing

import (
	"context"

	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
)

// NoopBillingHook logs issued attestations without charging anyone.
// Swap in a real implementation when metered billing lands.
type NoopBillingHook struct {
	logger *zap.SugaredLogger
}

func NewNoopBillingHook(logger *zap.SugaredLogger) *NoopBillingHook {
	return &NoopBillingHook{
		logger: logger,
	}
}

func (h *NoopBillingHook) OnAttestationIssued(ctx context.Context, att *domain.ComplianceAttestation) error {
	h.logger.Debugw("billing hook (noop)", "attestation_id", att.ID, "account_id", att.AccountID)
	return nil
}
