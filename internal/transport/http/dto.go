package http

import (
	"time"

	"github.com/zerotrustlabs/compliance-backend/internal/domain"
)

type RegisterAccountRequest struct {
	AccountID   string `json:"account_id" validate:"required"`
	KycDataHash string `json:"kyc_data_hash" validate:"required,hexadecimal,len=64"`
}

type VerifyKycRequest struct {
	DataHash string `json:"data_hash" validate:"required,hexadecimal,len=64"`
	Verifier string `json:"verifier" validate:"required"`
	Level    string `json:"level" validate:"required,oneof=basic standard enhanced institutional"`
}

type UpdateKycStatusRequest struct {
	Status   string `json:"status" validate:"required,oneof=pending verified rejected expired"`
	Verifier string `json:"verifier" validate:"required"`
}

type UpdateKycLevelRequest struct {
	Level    string `json:"level" validate:"required,oneof=basic standard enhanced institutional"`
	Verifier string `json:"verifier" validate:"required"`
}

type VerifyKycProofRequest struct {
	Commitment string `json:"commitment" validate:"required"`
	Challenge  string `json:"challenge" validate:"required"`
}

type RecordTransactionRequest struct {
	Amount           uint64 `json:"amount" validate:"required,gt=0"`
	TransactionType  string `json:"transaction_type" validate:"required,oneof=deposit withdrawal transfer"`
	CounterpartyHash string `json:"counterparty_hash" validate:"omitempty,hexadecimal,len=64"`
}

type AssessRiskRequest struct {
	Amount           uint64 `json:"amount" validate:"required,gt=0"`
	TransactionType  string `json:"transaction_type" validate:"required,oneof=deposit withdrawal transfer"`
	CounterpartyRisk int    `json:"counterparty_risk" validate:"gte=0,lte=100"`
}

type OverrideRiskRequest struct {
	Score int    `json:"score" validate:"gte=0,lte=1000"`
	Level string `json:"level" validate:"required,oneof=Low Medium High Critical"`
}

type ScreenSanctionsRequest struct {
	IdentityHash   string `json:"identity_hash" validate:"required,hexadecimal,len=64"`
	ListHash       string `json:"list_hash" validate:"required,hexadecimal,len=64"`
	ListVersion    uint64 `json:"list_version" validate:"required,gt=0"`
	ScreeningProof string `json:"screening_proof" validate:"required"`
}

type OverrideSanctionsRequest struct {
	Status            string `json:"status" validate:"required,oneof=clear flagged blocked"`
	AuthorizationHash string `json:"authorization_hash" validate:"required,hexadecimal,len=64"`
}

type UpdateSanctionsStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=clear flagged blocked"`
	Reason string `json:"reason" validate:"required"`
}

type CreateProofRequest struct {
	AccountID string `json:"account_id" validate:"required"`
}

type VerifyProofRequest struct {
	Proof     string `json:"proof" validate:"required"`
	AccountID string `json:"account_id" validate:"required"`
}

type KycStatusResponse struct {
	AccountID  string     `json:"account_id"`
	Status     string     `json:"status"`
	Level      string     `json:"level"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

type RiskAssessmentResponse struct {
	AccountID string `json:"account_id"`
	RiskLevel string `json:"risk_level"`
	RiskScore int    `json:"risk_score"`
}

type ScreeningResponse struct {
	AccountID  string `json:"account_id"`
	Status     string `json:"status"`
	Confidence string `json:"confidence"`
}

type SanctionsStatusResponse struct {
	AccountID      string `json:"account_id"`
	Status         string `json:"status"`
	ManualOverride bool   `json:"manual_override"`
	FalsePositive  bool   `json:"false_positive"`
}

type AttestationResponse struct {
	ID               string    `json:"id"`
	AccountID        string    `json:"account_id"`
	KycStatus        string    `json:"kyc_status"`
	AmlRiskLevel     string    `json:"aml_risk_level"`
	SanctionsCleared bool      `json:"sanctions_cleared"`
	ProofHash        string    `json:"proof_hash"`
	CreatedAt        time.Time `json:"created_at"`
	ExpiresAt        time.Time `json:"expires_at"`
	ReportURL        string    `json:"report_url,omitempty"`
}

type ComplianceLevelResponse struct {
	AccountID string `json:"account_id"`
	Level     string `json:"level"`
	Compliant bool   `json:"compliant"`
}

type ProofResponse struct {
	Proof       string              `json:"proof"`
	Attestation AttestationResponse `json:"attestation"`
}

type ProofVerificationResponse struct {
	Valid bool `json:"valid"`
}

type AcceptedResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToKycStatusResponse(record *domain.KycRecord, now time.Time) KycStatusResponse {
	resp := KycStatusResponse{
		AccountID: record.AccountID,
		Status:    string(record.EffectiveStatus(now)),
		Level:     string(record.Level),
	}
	if !record.VerifiedAt.IsZero() {
		verifiedAt := record.VerifiedAt
		expiresAt := record.ExpiresAt
		resp.VerifiedAt = &verifiedAt
		resp.ExpiresAt = &expiresAt
	}
	return resp
}

func ToAttestationResponse(att *domain.ComplianceAttestation) AttestationResponse {
	return AttestationResponse{
		ID:               att.ID,
		AccountID:        att.AccountID,
		KycStatus:        string(att.KycStatus),
		AmlRiskLevel:     string(att.AmlRiskLevel),
		SanctionsCleared: att.SanctionsCleared,
		ProofHash:        att.ProofHash,
		CreatedAt:        att.CreatedAt,
		ExpiresAt:        att.ExpiresAt,
	}
}
