package application

import (
	"context"
	"fmt"

	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
)

type UpdateKycStatusUseCase struct {
	repository domain.ComplianceRepository
	logger     *zap.SugaredLogger
}

func NewUpdateKycStatusUseCase(
	repository domain.ComplianceRepository,
	logger *zap.SugaredLogger,
) *UpdateKycStatusUseCase {
	return &UpdateKycStatusUseCase{
		repository: repository,
		logger:     logger,
	}
}

// executes the update KYC status use case. An authorization failure is
// surfaced to the caller and nothing is persisted.
func (u *UpdateKycStatusUseCase) Execute(ctx context.Context, accountID string, newStatus domain.KycStatus, verifier domain.VerifierIdentity) error {
	record, err := u.repository.GetKyc(ctx, accountID)
	if err != nil {
		return err
	}

	if err := record.UpdateStatus(newStatus, verifier); err != nil {
		u.logger.Warnw("kyc status update denied", "account_id", accountID, "error", err)
		return err
	}

	if err := u.repository.SaveKyc(ctx, record); err != nil {
		u.logger.Errorw("failed to save kyc record", "account_id", accountID, "error", err)
		return fmt.Errorf("failed to save kyc record: %w", err)
	}

	u.logger.Infow("kyc status updated", "account_id", accountID, "status", newStatus)

	return nil
}

type UpdateKycLevelUseCase struct {
	repository domain.ComplianceRepository
	logger     *zap.SugaredLogger
}

func NewUpdateKycLevelUseCase(
	repository domain.ComplianceRepository,
	logger *zap.SugaredLogger,
) *UpdateKycLevelUseCase {
	return &UpdateKycLevelUseCase{
		repository: repository,
		logger:     logger,
	}
}

func (u *UpdateKycLevelUseCase) Execute(ctx context.Context, accountID string, newLevel domain.ComplianceLevel, verifier domain.VerifierIdentity) error {
	record, err := u.repository.GetKyc(ctx, accountID)
	if err != nil {
		return err
	}

	if err := record.UpdateLevel(newLevel, verifier); err != nil {
		u.logger.Warnw("kyc level update denied", "account_id", accountID, "error", err)
		return err
	}

	if err := u.repository.SaveKyc(ctx, record); err != nil {
		u.logger.Errorw("failed to save kyc record", "account_id", accountID, "error", err)
		return fmt.Errorf("failed to save kyc record: %w", err)
	}

	u.logger.Infow("kyc level updated", "account_id", accountID, "level", newLevel)

	return nil
}
