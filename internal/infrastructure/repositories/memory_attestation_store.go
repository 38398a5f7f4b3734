package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
)

// MemoryAttestationStore holds the current attestation per account.
// Put is last-write-wins: a new attestation supersedes the old one.
type MemoryAttestationStore struct {
	attestations map[string]*domain.ComplianceAttestation
	mu           sync.RWMutex
	logger       *zap.SugaredLogger
}

func NewMemoryAttestationStore(logger *zap.SugaredLogger) *MemoryAttestationStore {
	return &MemoryAttestationStore{
		attestations: make(map[string]*domain.ComplianceAttestation),
		logger:       logger,
	}
}

func (s *MemoryAttestationStore) Get(ctx context.Context, accountID string) (*domain.ComplianceAttestation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	att, exists := s.attestations[accountID]
	if !exists {
		return nil, nil
	}

	return att, nil
}

func (s *MemoryAttestationStore) Put(ctx context.Context, att *domain.ComplianceAttestation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attestations[att.AccountID] = att
	s.logger.Debugw("attestation stored", "account_id", att.AccountID, "attestation_id", att.ID)

	return nil
}

// removes attestations that have passed their expiry
func (s *MemoryAttestationStore) CleanupExpired(ctx context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for accountID, att := range s.attestations {
		if now.After(att.ExpiresAt) {
			delete(s.attestations, accountID)
			count++
		}
	}

	if count > 0 {
		s.logger.Infow("expired attestations cleaned", "count", count)
	}

	return count, nil
}

// starts a background cleanup loop
func (s *MemoryAttestationStore) StartCleanupLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("attestation cleanup loop stopped")
				return
			case <-ticker.C:
				_, err := s.CleanupExpired(ctx, time.Now().UTC())
				if err != nil {
					s.logger.Errorw("attestation cleanup failed", "error", err)
				}
			}
		}
	}()
}
