package application

import (
	"context"
	"fmt"

	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
)

type GetComplianceStatusUseCase struct {
	store  domain.AttestationStore
	logger *zap.SugaredLogger
}

func NewGetComplianceStatusUseCase(
	store domain.AttestationStore,
	logger *zap.SugaredLogger,
) *GetComplianceStatusUseCase {
	return &GetComplianceStatusUseCase{
		store:  store,
		logger: logger,
	}
}

// executes the get compliance status use case; returns nil when no
// attestation is on file.
func (u *GetComplianceStatusUseCase) Execute(ctx context.Context, accountID string) (*domain.ComplianceAttestation, error) {
	att, err := u.store.Get(ctx, accountID)
	if err != nil {
		u.logger.Errorw("failed to get attestation", "account_id", accountID, "error", err)
		return nil, fmt.Errorf("failed to get attestation: %w", err)
	}

	return att, nil
}

type CheckComplianceLevelUseCase struct {
	getStatus *GetComplianceStatusUseCase
	logger    *zap.SugaredLogger
}

func NewCheckComplianceLevelUseCase(
	getStatus *GetComplianceStatusUseCase,
	logger *zap.SugaredLogger,
) *CheckComplianceLevelUseCase {
	return &CheckComplianceLevelUseCase{
		getStatus: getStatus,
		logger:    logger,
	}
}

// executes the check compliance level use case. An account with no
// attestation on file is simply non-compliant, not an error.
func (u *CheckComplianceLevelUseCase) Execute(ctx context.Context, accountID string, required domain.ComplianceLevel) (bool, error) {
	att, err := u.getStatus.Execute(ctx, accountID)
	if err != nil {
		return false, err
	}

	if att == nil {
		return false, nil
	}

	meets := domain.MeetsComplianceLevel(att, required)

	u.logger.Debugw("compliance level checked", "account_id", accountID, "required", required, "meets", meets)

	return meets, nil
}
