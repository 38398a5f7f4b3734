package application

import (
	"context"
	"fmt"
	"time"

	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ComprehensiveCheckUseCase struct {
	repository domain.ComplianceRepository
	store      domain.AttestationStore
	messageBus domain.MessageBus
	validity   time.Duration
	logger     *zap.SugaredLogger
}

func NewComprehensiveCheckUseCase(
	repository domain.ComplianceRepository,
	store domain.AttestationStore,
	messageBus domain.MessageBus,
	validity time.Duration,
	logger *zap.SugaredLogger,
) *ComprehensiveCheckUseCase {
	return &ComprehensiveCheckUseCase{
		repository: repository,
		store:      store,
		messageBus: messageBus,
		validity:   validity,
		logger:     logger,
	}
}

// executes the comprehensive compliance check: the three domain snapshots
// are fetched concurrently with shared cancellation; the first failure
// aborts the whole check and nothing is persisted. On success a fresh
// attestation supersedes the previous one for the account.
func (u *ComprehensiveCheckUseCase) Execute(ctx context.Context, accountID string) (*domain.ComplianceAttestation, error) {
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)

	var (
		kyc       *domain.KycRecord
		aml       *domain.AmlRecord
		sanctions *domain.SanctionsRecord
	)

	g.Go(func() error {
		var err error
		kyc, err = u.repository.GetKyc(gctx, accountID)
		return err
	})

	g.Go(func() error {
		var err error
		aml, err = u.repository.GetAml(gctx, accountID)
		return err
	})

	g.Go(func() error {
		var err error
		sanctions, err = u.repository.GetSanctions(gctx, accountID)
		return err
	})

	if err := g.Wait(); err != nil {
		u.logger.Errorw("compliance check aborted", "account_id", accountID, "error", err)
		u.publishFailedEvent(ctx, accountID, err.Error())
		return nil, err
	}

	now := time.Now().UTC()
	att := domain.NewComplianceAttestation(
		accountID,
		kyc.EffectiveStatus(now),
		kyc.ExpiresAt,
		aml.RiskLevel,
		sanctions.Status == domain.SanctionsClear,
		u.validity,
	)

	if err := u.store.Put(ctx, att); err != nil {
		u.logger.Errorw("failed to store attestation", "account_id", accountID, "error", err)
		return nil, fmt.Errorf("failed to store attestation: %w", err)
	}

	event := domain.NewEvent(domain.EventAttestationIssued, &domain.AttestationIssuedPayload{
		AttestationID:    att.ID,
		AccountID:        accountID,
		KycStatus:        att.KycStatus,
		AmlRiskLevel:     att.AmlRiskLevel,
		SanctionsCleared: att.SanctionsCleared,
		ExpiresAt:        att.ExpiresAt,
	})
	if err := u.messageBus.Publish(ctx, domain.EventAttestationIssued, event); err != nil {
		u.logger.Warnw("failed to publish attestation issued event", "account_id", accountID, "error", err)
	}

	u.logger.Infow("attestation issued",
		"account_id", accountID,
		"attestation_id", att.ID,
		"kyc_status", att.KycStatus,
		"aml_risk_level", att.AmlRiskLevel,
		"sanctions_cleared", att.SanctionsCleared,
		"latency_ms", time.Since(start).Milliseconds())

	return att, nil
}

func (u *ComprehensiveCheckUseCase) publishFailedEvent(ctx context.Context, accountID, errorMessage string) {
	event := domain.NewEvent(domain.EventAttestationFailed, &domain.AttestationFailedPayload{
		AccountID:    accountID,
		ErrorMessage: errorMessage,
	})

	if err := u.messageBus.Publish(ctx, domain.EventAttestationFailed, event); err != nil {
		u.logger.Warnw("failed to publish attestation failed event", "account_id", accountID, "error", err)
	}
}
