package repositories

import (
	"context"
	"sync"

	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
)

// MemoryComplianceRepository keeps the per-account domain records in memory.
// The execution substrate serializes mutations within one account, so the
// lock here only guards the maps themselves.
type MemoryComplianceRepository struct {
	kyc       map[string]*domain.KycRecord
	aml       map[string]*domain.AmlRecord
	sanctions map[string]*domain.SanctionsRecord
	mu        sync.RWMutex
	logger    *zap.SugaredLogger
}

func NewMemoryComplianceRepository(logger *zap.SugaredLogger) *MemoryComplianceRepository {
	return &MemoryComplianceRepository{
		kyc:       make(map[string]*domain.KycRecord),
		aml:       make(map[string]*domain.AmlRecord),
		sanctions: make(map[string]*domain.SanctionsRecord),
		logger:    logger,
	}
}

func (r *MemoryComplianceRepository) GetKyc(ctx context.Context, accountID string) (*domain.KycRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.kyc[accountID]
	if !exists {
		return nil, &domain.NotFoundError{AccountID: accountID}
	}

	return record, nil
}

func (r *MemoryComplianceRepository) SaveKyc(ctx context.Context, record *domain.KycRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.kyc[record.AccountID] = record
	r.logger.Debugw("kyc record saved", "account_id", record.AccountID, "status", record.Status)

	return nil
}

func (r *MemoryComplianceRepository) GetAml(ctx context.Context, accountID string) (*domain.AmlRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.aml[accountID]
	if !exists {
		return nil, &domain.NotFoundError{AccountID: accountID}
	}

	return record, nil
}

func (r *MemoryComplianceRepository) SaveAml(ctx context.Context, record *domain.AmlRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.aml[record.AccountID] = record
	r.logger.Debugw("aml record saved", "account_id", record.AccountID, "risk_score", record.RiskScore)

	return nil
}

func (r *MemoryComplianceRepository) GetSanctions(ctx context.Context, accountID string) (*domain.SanctionsRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.sanctions[accountID]
	if !exists {
		return nil, &domain.NotFoundError{AccountID: accountID}
	}

	return record, nil
}

func (r *MemoryComplianceRepository) SaveSanctions(ctx context.Context, record *domain.SanctionsRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sanctions[record.AccountID] = record
	r.logger.Debugw("sanctions record saved", "account_id", record.AccountID, "status", record.Status)

	return nil
}
