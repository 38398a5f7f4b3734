package proving

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
)

// MockProver is an in-process stand-in for the external proving system.
// Commitment checks are plain equality and proofs are salted hashes; none
// of this is cryptographically meaningful. It exists so the rest of the
// service can be exercised without a prover deployment.
type MockProver struct {
	minted sync.Map // proof -> account id
	logger *zap.SugaredLogger
}

func NewMockProver(logger *zap.SugaredLogger) *MockProver {
	return &MockProver{
		logger: logger,
	}
}

func (p *MockProver) GenerateProof(ctx context.Context, att *domain.ComplianceAttestation) (string, error) {
	sum := sha256.Sum256([]byte(fmt.Sprintf("zkp|%s|%s", att.AccountID, att.ProofHash)))
	proof := hex.EncodeToString(sum[:])

	p.minted.Store(proof, att.AccountID)
	p.logger.Infow("mock proof minted", "account_id", att.AccountID, "attestation_id", att.ID)

	return proof, nil
}

func (p *MockProver) VerifyProof(ctx context.Context, proof, accountID string) (bool, error) {
	owner, ok := p.minted.Load(proof)
	valid := ok && owner == accountID

	p.logger.Debugw("mock proof verified", "account_id", accountID, "valid", valid)

	return valid, nil
}

func (p *MockProver) VerifyCommitment(ctx context.Context, commitment, challenge, committedHash string) (bool, error) {
	return commitment == committedHash, nil
}

func (p *MockProver) VerifyScreeningProof(ctx context.Context, proof, screeningHash string) (*domain.ScreeningVerdict, error) {
	if proof != screeningHash {
		return &domain.ScreeningVerdict{Valid: false}, nil
	}

	return &domain.ScreeningVerdict{
		Valid:  true,
		Status: deriveScreeningStatus(proof),
	}, nil
}

// deriveScreeningStatus extracts a status from the proof payload. A real
// prover returns the status inside the verified payload; the mock derives
// one deterministically from the proof bytes.
func deriveScreeningStatus(proof string) domain.SanctionsStatus {
	sum := sha256.Sum256([]byte(proof))

	switch sum[0] % 3 {
	case 1:
		return domain.SanctionsFlagged
	case 2:
		return domain.SanctionsBlocked
	default:
		return domain.SanctionsClear
	}
}

func (p *MockProver) Name() string {
	return "MockProver"
}
