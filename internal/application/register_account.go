package application

import (
	"context"
	"fmt"

	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
)

type RegisterAccountUseCase struct {
	repository domain.ComplianceRepository
	logger     *zap.SugaredLogger
}

func NewRegisterAccountUseCase(
	repository domain.ComplianceRepository,
	logger *zap.SugaredLogger,
) *RegisterAccountUseCase {
	return &RegisterAccountUseCase{
		repository: repository,
		logger:     logger,
	}
}

// executes the register account use case: seeds the three per-domain records
// for a new account. Registering an existing account is a no-op.
func (u *RegisterAccountUseCase) Execute(ctx context.Context, accountID, kycDataHash string) error {
	if _, err := u.repository.GetKyc(ctx, accountID); err == nil {
		u.logger.Debugw("account already registered", "account_id", accountID)
		return nil
	}

	if err := u.repository.SaveKyc(ctx, domain.NewKycRecord(accountID, kycDataHash)); err != nil {
		u.logger.Errorw("failed to create kyc record", "account_id", accountID, "error", err)
		return fmt.Errorf("failed to create kyc record: %w", err)
	}

	if err := u.repository.SaveAml(ctx, domain.NewAmlRecord(accountID)); err != nil {
		u.logger.Errorw("failed to create aml record", "account_id", accountID, "error", err)
		return fmt.Errorf("failed to create aml record: %w", err)
	}

	if err := u.repository.SaveSanctions(ctx, domain.NewSanctionsRecord(accountID)); err != nil {
		u.logger.Errorw("failed to create sanctions record", "account_id", accountID, "error", err)
		return fmt.Errorf("failed to create sanctions record: %w", err)
	}

	u.logger.Infow("account registered", "account_id", accountID)

	return nil
}
