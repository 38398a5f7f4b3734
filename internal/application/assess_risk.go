package application

import (
	"context"
	"fmt"

	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
)

type AssessRiskUseCase struct {
	repository domain.ComplianceRepository
	logger     *zap.SugaredLogger
}

func NewAssessRiskUseCase(
	repository domain.ComplianceRepository,
	logger *zap.SugaredLogger,
) *AssessRiskUseCase {
	return &AssessRiskUseCase{
		repository: repository,
		logger:     logger,
	}
}

// executes the assess risk use case
func (u *AssessRiskUseCase) Execute(ctx context.Context, accountID string, amount uint64, transactionType string, counterpartyRisk int) (domain.RiskLevel, int, error) {
	record, err := u.repository.GetAml(ctx, accountID)
	if err != nil {
		return "", 0, err
	}

	level, score := record.Assess(amount, transactionType, counterpartyRisk)

	if err := u.repository.SaveAml(ctx, record); err != nil {
		u.logger.Errorw("failed to save aml record", "account_id", accountID, "error", err)
		return "", 0, fmt.Errorf("failed to save aml record: %w", err)
	}

	u.logger.Infow("risk assessed", "account_id", accountID, "risk_score", score, "risk_level", level)

	return level, score, nil
}

// OverrideRiskScoreUseCase applies a manual score/level override. The domain
// operation has no verifier gate; the caller is trusted and must be
// authenticated by the API layer.
type OverrideRiskScoreUseCase struct {
	repository domain.ComplianceRepository
	logger     *zap.SugaredLogger
}

func NewOverrideRiskScoreUseCase(
	repository domain.ComplianceRepository,
	logger *zap.SugaredLogger,
) *OverrideRiskScoreUseCase {
	return &OverrideRiskScoreUseCase{
		repository: repository,
		logger:     logger,
	}
}

func (u *OverrideRiskScoreUseCase) Execute(ctx context.Context, accountID string, newScore int, newLevel domain.RiskLevel) error {
	record, err := u.repository.GetAml(ctx, accountID)
	if err != nil {
		return err
	}

	record.UpdateRiskScore(newScore, newLevel)

	if err := u.repository.SaveAml(ctx, record); err != nil {
		u.logger.Errorw("failed to save aml record", "account_id", accountID, "error", err)
		return fmt.Errorf("failed to save aml record: %w", err)
	}

	u.logger.Infow("risk score overridden", "account_id", accountID, "risk_score", record.RiskScore, "risk_level", newLevel)

	return nil
}
