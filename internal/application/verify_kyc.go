package application

import (
	"context"
	"fmt"

	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
)

type VerifyKycUseCase struct {
	repository domain.ComplianceRepository
	messageBus domain.MessageBus
	logger     *zap.SugaredLogger
}

func NewVerifyKycUseCase(
	repository domain.ComplianceRepository,
	messageBus domain.MessageBus,
	logger *zap.SugaredLogger,
) *VerifyKycUseCase {
	return &VerifyKycUseCase{
		repository: repository,
		messageBus: messageBus,
		logger:     logger,
	}
}

// executes the verify KYC use case
func (u *VerifyKycUseCase) Execute(ctx context.Context, accountID, providedHash string, verifier domain.VerifierIdentity, level domain.ComplianceLevel) error {
	record, err := u.repository.GetKyc(ctx, accountID)
	if err != nil {
		return err
	}

	if err := record.Verify(providedHash, verifier, level); err != nil {
		u.logger.Warnw("kyc verification rejected", "account_id", accountID, "error", err)
		return err
	}

	if err := u.repository.SaveKyc(ctx, record); err != nil {
		u.logger.Errorw("failed to save kyc record", "account_id", accountID, "error", err)
		return fmt.Errorf("failed to save kyc record: %w", err)
	}

	event := domain.NewEvent(domain.EventKycVerified, &domain.KycVerifiedPayload{
		AccountID: accountID,
		Level:     record.Level,
	})
	if err := u.messageBus.Publish(ctx, domain.EventKycVerified, event); err != nil {
		u.logger.Warnw("failed to publish kyc verified event", "account_id", accountID, "error", err)
	}

	u.logger.Infow("kyc verified", "account_id", accountID, "level", record.Level)

	return nil
}

// VerifyKycProofUseCase checks a KYC proof commitment against the stored
// data hash. The comparison is delegated to the proof engine; nothing here
// inspects the commitment itself.
type VerifyKycProofUseCase struct {
	repository  domain.ComplianceRepository
	proofEngine domain.ProofEngine
	logger      *zap.SugaredLogger
}

func NewVerifyKycProofUseCase(
	repository domain.ComplianceRepository,
	proofEngine domain.ProofEngine,
	logger *zap.SugaredLogger,
) *VerifyKycProofUseCase {
	return &VerifyKycProofUseCase{
		repository:  repository,
		proofEngine: proofEngine,
		logger:      logger,
	}
}

func (u *VerifyKycProofUseCase) Execute(ctx context.Context, accountID, commitment, challenge string) (bool, error) {
	record, err := u.repository.GetKyc(ctx, accountID)
	if err != nil {
		return false, err
	}

	valid, err := u.proofEngine.VerifyCommitment(ctx, commitment, challenge, record.DataHash)
	if err != nil {
		u.logger.Errorw("proof engine failed", "account_id", accountID, "provider", u.proofEngine.Name(), "error", err)
		return false, err
	}

	u.logger.Infow("kyc proof checked", "account_id", accountID, "valid", valid)

	return valid, nil
}
