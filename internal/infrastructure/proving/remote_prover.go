package proving

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
)

// RemoteProver talks to a delegated proving service over HTTP. Calls are
// blocking I/O with non-deterministic latency; the caller supplies timeouts
// through the context and treats timeouts as retryable.
type RemoteProver struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

type generateProofRequest struct {
	AccountID        string `json:"account_id"`
	KycStatus        string `json:"kyc_status"`
	AmlRiskLevel     string `json:"aml_risk_level"`
	SanctionsCleared bool   `json:"sanctions_cleared"`
	ProofHash        string `json:"proof_hash"`
	ExpiresAt        int64  `json:"expires_at"`
}

type generateProofResponse struct {
	Proof string `json:"proof"`
}

type verifyProofRequest struct {
	Proof     string `json:"proof"`
	AccountID string `json:"account_id"`
}

type verifyCommitmentRequest struct {
	Commitment    string `json:"commitment"`
	Challenge     string `json:"challenge"`
	CommittedHash string `json:"committed_hash"`
}

type verifyScreeningRequest struct {
	Proof         string `json:"proof"`
	ScreeningHash string `json:"screening_hash"`
}

type verifyResponse struct {
	Valid  bool   `json:"valid"`
	Status string `json:"status,omitempty"`
}

func NewRemoteProver(baseURL, apiKey string, logger *zap.SugaredLogger) *RemoteProver {
	return &RemoteProver{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

func (p *RemoteProver) GenerateProof(ctx context.Context, att *domain.ComplianceAttestation) (string, error) {
	req := generateProofRequest{
		AccountID:        att.AccountID,
		KycStatus:        string(att.KycStatus),
		AmlRiskLevel:     string(att.AmlRiskLevel),
		SanctionsCleared: att.SanctionsCleared,
		ProofHash:        att.ProofHash,
		ExpiresAt:        att.ExpiresAt.Unix(),
	}

	var resp generateProofResponse
	if err := p.post(ctx, "/v1/prove", req, &resp); err != nil {
		return "", err
	}

	if resp.Proof == "" {
		return "", fmt.Errorf("prover returned empty proof")
	}

	return resp.Proof, nil
}

func (p *RemoteProver) VerifyProof(ctx context.Context, proof, accountID string) (bool, error) {
	var resp verifyResponse
	if err := p.post(ctx, "/v1/verify", verifyProofRequest{Proof: proof, AccountID: accountID}, &resp); err != nil {
		return false, err
	}

	return resp.Valid, nil
}

func (p *RemoteProver) VerifyCommitment(ctx context.Context, commitment, challenge, committedHash string) (bool, error) {
	req := verifyCommitmentRequest{
		Commitment:    commitment,
		Challenge:     challenge,
		CommittedHash: committedHash,
	}

	var resp verifyResponse
	if err := p.post(ctx, "/v1/commitments/verify", req, &resp); err != nil {
		return false, err
	}

	return resp.Valid, nil
}

func (p *RemoteProver) VerifyScreeningProof(ctx context.Context, proof, screeningHash string) (*domain.ScreeningVerdict, error) {
	req := verifyScreeningRequest{
		Proof:         proof,
		ScreeningHash: screeningHash,
	}

	var resp verifyResponse
	if err := p.post(ctx, "/v1/screenings/verify", req, &resp); err != nil {
		return nil, err
	}

	verdict := &domain.ScreeningVerdict{Valid: resp.Valid}
	if resp.Valid {
		switch domain.SanctionsStatus(resp.Status) {
		case domain.SanctionsClear, domain.SanctionsFlagged, domain.SanctionsBlocked:
			verdict.Status = domain.SanctionsStatus(resp.Status)
		default:
			// unknown status from a valid proof is treated as unverifiable
			verdict.Valid = false
		}
	}

	return verdict, nil
}

func (p *RemoteProver) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", p.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("prover returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func (p *RemoteProver) Name() string {
	return "RemoteProver"
}
