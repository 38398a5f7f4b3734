package application

import (
	"context"

	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
)

type GetKycStatusUseCase struct {
	repository domain.ComplianceRepository
	logger     *zap.SugaredLogger
}

func NewGetKycStatusUseCase(
	repository domain.ComplianceRepository,
	logger *zap.SugaredLogger,
) *GetKycStatusUseCase {
	return &GetKycStatusUseCase{
		repository: repository,
		logger:     logger,
	}
}

func (u *GetKycStatusUseCase) Execute(ctx context.Context, accountID string) (*domain.KycRecord, error) {
	record, err := u.repository.GetKyc(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return record, nil
}
