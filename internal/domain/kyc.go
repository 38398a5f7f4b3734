package domain

import "time"

type KycStatus string

const (
	KycStatusPending  KycStatus = "pending"
	KycStatusVerified KycStatus = "verified"
	KycStatusRejected KycStatus = "rejected"
	KycStatusExpired  KycStatus = "expired"
)

type ComplianceLevel string

const (
	LevelBasic         ComplianceLevel = "basic"
	LevelStandard      ComplianceLevel = "standard"
	LevelEnhanced      ComplianceLevel = "enhanced"
	LevelInstitutional ComplianceLevel = "institutional"
)

// KycValidity is how long a successful verification remains valid.
const KycValidity = 365 * 24 * time.Hour

// KycRecord tracks the identity-verification state of one account.
// The stored status never becomes Expired on its own; expiry is derived
// at read time from ExpiresAt (see EffectiveStatus).
type KycRecord struct {
	AccountID  string
	Status     KycStatus
	DataHash   string
	VerifiedAt time.Time
	ExpiresAt  time.Time
	Verifier   VerifierIdentity
	Level      ComplianceLevel
}

func NewKycRecord(accountID, dataHash string) *KycRecord {
	return &KycRecord{
		AccountID: accountID,
		Status:    KycStatusPending,
		DataHash:  dataHash,
		Level:     LevelBasic,
	}
}

// EffectiveStatus derives the externally visible status. A stored Verified
// record whose expiry has passed reads as Expired without being rewritten.
func (r *KycRecord) EffectiveStatus(now time.Time) KycStatus {
	if r.Status == KycStatusVerified && !now.Before(r.ExpiresAt) {
		return KycStatusExpired
	}
	return r.Status
}

// Verify transitions the record to Verified when the provided hash matches
// the stored commitment. A record that is already effectively Verified
// returns success without re-checking anything; verifier, level and expiry
// are left untouched. An effectively Expired record goes through the hash
// gate again.
func (r *KycRecord) Verify(providedHash string, verifier VerifierIdentity, level ComplianceLevel) error {
	now := time.Now().UTC()

	if r.EffectiveStatus(now) == KycStatusVerified {
		return nil
	}

	if providedHash != r.DataHash {
		return &VerificationError{Domain: DomainKYC, Reason: "kyc data hash mismatch"}
	}

	r.Status = KycStatusVerified
	r.Verifier = verifier
	r.Level = level
	r.VerifiedAt = now
	r.ExpiresAt = now.Add(KycValidity)

	return nil
}

// UpdateStatus sets the stored status. Only the verifier that performed the
// verification may call it.
func (r *KycRecord) UpdateStatus(newStatus KycStatus, verifier VerifierIdentity) error {
	if !r.Verifier.Matches(verifier) {
		return &AuthorizationError{Domain: DomainKYC}
	}

	r.Status = newStatus

	return nil
}

// UpdateLevel sets the compliance level, gated by the same verifier check
// as UpdateStatus.
func (r *KycRecord) UpdateLevel(newLevel ComplianceLevel, verifier VerifierIdentity) error {
	if !r.Verifier.Matches(verifier) {
		return &AuthorizationError{Domain: DomainKYC}
	}

	r.Level = newLevel

	return nil
}
