package application

import (
	"context"
	"fmt"
	"time"

	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
)

type ScreenSanctionsUseCase struct {
	repository  domain.ComplianceRepository
	proofEngine domain.ProofEngine
	logger      *zap.SugaredLogger
}

func NewScreenSanctionsUseCase(
	repository domain.ComplianceRepository,
	proofEngine domain.ProofEngine,
	logger *zap.SugaredLogger,
) *ScreenSanctionsUseCase {
	return &ScreenSanctionsUseCase{
		repository:  repository,
		proofEngine: proofEngine,
		logger:      logger,
	}
}

// executes the screen sanctions use case. The screening proof is judged by
// the proof engine; an unverifiable proof degrades to a flagged, low
// confidence result rather than failing the screening.
func (u *ScreenSanctionsUseCase) Execute(ctx context.Context, accountID, identityHash, listHash string, listVersion uint64, screeningProof string) (domain.SanctionsStatus, domain.Confidence, error) {
	record, err := u.repository.GetSanctions(ctx, accountID)
	if err != nil {
		return "", "", err
	}

	start := time.Now()
	verdict, err := u.proofEngine.VerifyScreeningProof(ctx, screeningProof, listHash)
	if err != nil {
		u.logger.Warnw("screening proof engine failed, treating proof as unverifiable",
			"account_id", accountID,
			"provider", u.proofEngine.Name(),
			"latency_ms", time.Since(start).Milliseconds(),
			"error", err)
		verdict = &domain.ScreeningVerdict{Valid: false}
	}

	confidence := record.ApplyScreening(listHash, listVersion, *verdict)

	if err := u.repository.SaveSanctions(ctx, record); err != nil {
		u.logger.Errorw("failed to save sanctions record", "account_id", accountID, "error", err)
		return "", "", fmt.Errorf("failed to save sanctions record: %w", err)
	}

	u.logger.Infow("sanctions screened",
		"account_id", accountID,
		"status", record.Status,
		"confidence", confidence,
		"list_version", listVersion)

	return record.Status, confidence, nil
}
