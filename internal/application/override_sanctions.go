package application

import (
	"context"
	"fmt"

	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
)

type OverrideSanctionsUseCase struct {
	repository domain.ComplianceRepository
	logger     *zap.SugaredLogger
}

func NewOverrideSanctionsUseCase(
	repository domain.ComplianceRepository,
	logger *zap.SugaredLogger,
) *OverrideSanctionsUseCase {
	return &OverrideSanctionsUseCase{
		repository: repository,
		logger:     logger,
	}
}

// executes the manual sanctions override use case
func (u *OverrideSanctionsUseCase) Execute(ctx context.Context, accountID string, status domain.SanctionsStatus, authorizationHash string) error {
	record, err := u.repository.GetSanctions(ctx, accountID)
	if err != nil {
		return err
	}

	if err := record.Override(status, authorizationHash); err != nil {
		u.logger.Warnw("sanctions override denied", "account_id", accountID, "error", err)
		return err
	}

	if err := u.repository.SaveSanctions(ctx, record); err != nil {
		u.logger.Errorw("failed to save sanctions record", "account_id", accountID, "error", err)
		return fmt.Errorf("failed to save sanctions record: %w", err)
	}

	u.logger.Infow("sanctions status overridden", "account_id", accountID, "status", status)

	return nil
}

type UpdateSanctionsStatusUseCase struct {
	repository domain.ComplianceRepository
	logger     *zap.SugaredLogger
}

func NewUpdateSanctionsStatusUseCase(
	repository domain.ComplianceRepository,
	logger *zap.SugaredLogger,
) *UpdateSanctionsStatusUseCase {
	return &UpdateSanctionsStatusUseCase{
		repository: repository,
		logger:     logger,
	}
}

// Execute applies a reviewed status change. Unlike Override it carries a
// human-readable reason instead of an authorization hash, but it still marks
// the record as manually adjusted.
func (u *UpdateSanctionsStatusUseCase) Execute(ctx context.Context, accountID string, status domain.SanctionsStatus, reason string) (*domain.SanctionsRecord, error) {
	record, err := u.repository.GetSanctions(ctx, accountID)
	if err != nil {
		return nil, err
	}

	record.UpdateStatus(status, reason)

	if err := u.repository.SaveSanctions(ctx, record); err != nil {
		u.logger.Errorw("failed to save sanctions record", "account_id", accountID, "error", err)
		return nil, fmt.Errorf("failed to save sanctions record: %w", err)
	}

	u.logger.Infow("sanctions status updated", "account_id", accountID, "status", status, "reason", reason)

	return record, nil
}

type MarkSanctionsFalsePositiveUseCase struct {
	repository domain.ComplianceRepository
	logger     *zap.SugaredLogger
}

func NewMarkSanctionsFalsePositiveUseCase(
	repository domain.ComplianceRepository,
	logger *zap.SugaredLogger,
) *MarkSanctionsFalsePositiveUseCase {
	return &MarkSanctionsFalsePositiveUseCase{
		repository: repository,
		logger:     logger,
	}
}

// Execute records the outcome of a manual review that found the match
// spurious. The status itself stays untouched until a rescreen or an
// explicit override clears it.
func (u *MarkSanctionsFalsePositiveUseCase) Execute(ctx context.Context, accountID string) (*domain.SanctionsRecord, error) {
	record, err := u.repository.GetSanctions(ctx, accountID)
	if err != nil {
		return nil, err
	}

	record.MarkFalsePositive()

	if err := u.repository.SaveSanctions(ctx, record); err != nil {
		u.logger.Errorw("failed to save sanctions record", "account_id", accountID, "error", err)
		return nil, fmt.Errorf("failed to save sanctions record: %w", err)
	}

	u.logger.Infow("sanctions match marked false positive", "account_id", accountID, "status", record.Status)

	return record, nil
}
