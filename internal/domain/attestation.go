package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ComplianceAttestation is the aggregate compliance verdict for one account.
// A refresh supersedes the previous attestation; instances are never mutated.
type ComplianceAttestation struct {
	ID               string
	AccountID        string
	KycStatus        KycStatus
	AmlRiskLevel     RiskLevel
	SanctionsCleared bool
	CreatedAt        time.Time
	ExpiresAt        time.Time
	ProofHash        string
}

// NewComplianceAttestation builds a fresh attestation. Its expiry is the
// earlier of the KYC expiry and the configured validity window.
func NewComplianceAttestation(
	accountID string,
	kycStatus KycStatus,
	kycExpiresAt time.Time,
	amlRiskLevel RiskLevel,
	sanctionsCleared bool,
	validity time.Duration,
) *ComplianceAttestation {
	now := time.Now().UTC()

	expiresAt := now.Add(validity)
	if !kycExpiresAt.IsZero() && kycExpiresAt.Before(expiresAt) {
		expiresAt = kycExpiresAt
	}

	att := &ComplianceAttestation{
		ID:               uuid.New().String(),
		AccountID:        accountID,
		KycStatus:        kycStatus,
		AmlRiskLevel:     amlRiskLevel,
		SanctionsCleared: sanctionsCleared,
		CreatedAt:        now,
		ExpiresAt:        expiresAt,
	}
	att.ProofHash = att.commitment()

	return att
}

// commitment is a content hash over the attested fields. It binds a minted
// proof to this attestation instance.
func (a *ComplianceAttestation) commitment() string {
	payload := fmt.Sprintf("%s|%s|%s|%t|%d|%d",
		a.AccountID, a.KycStatus, a.AmlRiskLevel, a.SanctionsCleared,
		a.CreatedAt.Unix(), a.ExpiresAt.Unix())

	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

func (a *ComplianceAttestation) IsExpired() bool {
	return !time.Now().UTC().Before(a.ExpiresAt)
}

// MeetsComplianceLevel evaluates an attestation against a required tier.
// The tiers are strictly ordered: every attestation that satisfies a tier
// also satisfies all tiers below it.
func MeetsComplianceLevel(a *ComplianceAttestation, required ComplianceLevel) bool {
	basic := a.KycStatus == KycStatusVerified && a.SanctionsCleared

	switch required {
	case LevelBasic:
		return basic
	case LevelStandard:
		return basic && (a.AmlRiskLevel == RiskLevelLow || a.AmlRiskLevel == RiskLevelMedium)
	case LevelEnhanced:
		return basic && a.AmlRiskLevel == RiskLevelLow
	case LevelInstitutional:
		return basic && a.AmlRiskLevel == RiskLevelLow && !a.IsExpired()
	default:
		return false
	}
}

// ParseComplianceLevel validates a level supplied over the wire.
func ParseComplianceLevel(s string) (ComplianceLevel, error) {
	switch ComplianceLevel(s) {
	case LevelBasic, LevelStandard, LevelEnhanced, LevelInstitutional:
		return ComplianceLevel(s), nil
	default:
		return "", fmt.Errorf("unknown compliance level: %q", s)
	}
}
