package domain

import "time"

type SanctionsStatus string

const (
	SanctionsClear   SanctionsStatus = "clear"
	SanctionsFlagged SanctionsStatus = "flagged"
	SanctionsBlocked SanctionsStatus = "blocked"
)

type Confidence string

const (
	ConfidenceHigh Confidence = "high"
	ConfidenceLow  Confidence = "low"
)

// ScreeningVerdict is the proof engine's judgement of a screening proof.
// Status is only meaningful when Valid is true.
type ScreeningVerdict struct {
	Valid  bool
	Status SanctionsStatus
}

// SanctionsRecord tracks the sanctions-screening state of one account.
type SanctionsRecord struct {
	AccountID      string
	Status         SanctionsStatus
	LastScreenedAt time.Time
	ScreeningHash  string
	ListVersion    uint64
	FalsePositive  bool
	ManualOverride bool
}

func NewSanctionsRecord(accountID string) *SanctionsRecord {
	return &SanctionsRecord{
		AccountID: accountID,
		Status:    SanctionsClear,
	}
}

// ApplyScreening records the outcome of a screening run. The screening hash
// and timestamp are stored unconditionally. A valid verdict is trusted and
// reported with high confidence; an invalid one falls back to Flagged with
// low confidence so an unverifiable result is never silently cleared.
// Automated screening never touches the status of a record under manual
// override.
func (r *SanctionsRecord) ApplyScreening(listHash string, listVersion uint64, verdict ScreeningVerdict) Confidence {
	r.ScreeningHash = listHash
	r.ListVersion = listVersion
	r.LastScreenedAt = time.Now().UTC()

	if !verdict.Valid {
		if !r.ManualOverride {
			r.Status = SanctionsFlagged
		}
		return ConfidenceLow
	}

	if !r.ManualOverride {
		r.Status = verdict.Status
	}

	return ConfidenceHigh
}

// UpdateStatus sets the status unconditionally and marks the record as
// manually overridden.
func (r *SanctionsRecord) UpdateStatus(newStatus SanctionsStatus, reason string) {
	r.Status = newStatus
	r.ManualOverride = true
	r.LastScreenedAt = time.Now().UTC()
}

// Override applies a manual status override. The non-empty authorization
// hash is a placeholder gate; production deployments must verify a real
// credential before reaching this point.
func (r *SanctionsRecord) Override(status SanctionsStatus, authorizationHash string) error {
	if authorizationHash == "" {
		return &AuthorizationError{Domain: DomainSanctions}
	}

	r.Status = status
	r.ManualOverride = true
	r.LastScreenedAt = time.Now().UTC()

	return nil
}

// MarkFalsePositive records that a flagged match was reviewed and judged a
// false positive. The flag does not change the status by itself.
func (r *SanctionsRecord) MarkFalsePositive() {
	r.FalsePositive = true
}
