package application

import (
	"context"
	"errors"
	"time"

	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
)

type CreateComplianceProofUseCase struct {
	check       *ComprehensiveCheckUseCase
	proofEngine domain.ProofEngine
	logger      *zap.SugaredLogger
}

func NewCreateComplianceProofUseCase(
	check *ComprehensiveCheckUseCase,
	proofEngine domain.ProofEngine,
	logger *zap.SugaredLogger,
) *CreateComplianceProofUseCase {
	return &CreateComplianceProofUseCase{
		check:       check,
		proofEngine: proofEngine,
		logger:      logger,
	}
}

// executes the create compliance proof use case: runs a full check and asks
// the proof engine to mint a proof bound to the resulting attestation.
func (u *CreateComplianceProofUseCase) Execute(ctx context.Context, accountID string) (string, *domain.ComplianceAttestation, error) {
	att, err := u.check.Execute(ctx, accountID)
	if err != nil {
		return "", nil, err
	}

	start := time.Now()
	proof, err := u.proofEngine.GenerateProof(ctx, att)
	if err != nil {
		u.logger.Errorw("proof generation failed",
			"account_id", accountID,
			"provider", u.proofEngine.Name(),
			"latency_ms", time.Since(start).Milliseconds(),
			"error", err)
		return "", nil, &domain.ProofError{
			Stage:     domain.ProofStageGeneration,
			Reason:    err.Error(),
			Retryable: errors.Is(err, context.DeadlineExceeded),
		}
	}

	u.logger.Infow("compliance proof minted",
		"account_id", accountID,
		"attestation_id", att.ID,
		"latency_ms", time.Since(start).Milliseconds())

	return proof, att, nil
}

type VerifyComplianceProofUseCase struct {
	proofEngine domain.ProofEngine
	logger      *zap.SugaredLogger
}

func NewVerifyComplianceProofUseCase(
	proofEngine domain.ProofEngine,
	logger *zap.SugaredLogger,
) *VerifyComplianceProofUseCase {
	return &VerifyComplianceProofUseCase{
		proofEngine: proofEngine,
		logger:      logger,
	}
}

// executes the verify compliance proof use case; no local state is mutated.
func (u *VerifyComplianceProofUseCase) Execute(ctx context.Context, proof, accountID string) (bool, error) {
	valid, err := u.proofEngine.VerifyProof(ctx, proof, accountID)
	if err != nil {
		u.logger.Errorw("proof verification failed", "account_id", accountID, "provider", u.proofEngine.Name(), "error", err)
		return false, &domain.ProofError{
			Stage:     domain.ProofStageVerification,
			Reason:    err.Error(),
			Retryable: errors.Is(err, context.DeadlineExceeded),
		}
	}

	u.logger.Infow("compliance proof verified", "account_id", accountID, "valid", valid)

	return valid, nil
}
