package domain

import "time"

type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "Low"
	RiskLevelMedium   RiskLevel = "Medium"
	RiskLevelHigh     RiskLevel = "High"
	RiskLevelCritical RiskLevel = "Critical"
)

// scoring model
const (
	MaxRiskScore = 1000

	largeTransactionThreshold = 10_000
	largeTransactionPenalty   = 100
	counterpartyRiskWeight    = 10

	// round amounts in these units are treated as potential structuring
	roundAmountUnit = 10_000

	// sliding-window velocity detection
	velocityWindow    = 10 * time.Minute
	velocityThreshold = 5
)

// DeriveRiskLevel maps a risk score onto a risk level. The mapping is a pure
// step function with no hysteresis. Critical is never derived from a score;
// it is reachable only through a manual override.
func DeriveRiskLevel(score int) RiskLevel {
	if score >= 300 {
		return RiskLevelHigh
	} else if score >= 150 {
		return RiskLevelMedium
	}
	return RiskLevelLow
}

type SuspiciousFlags uint64

const (
	FlagRoundAmount SuspiciousFlags = 1 << iota
	FlagHighVelocity
)

func (f SuspiciousFlags) Has(flag SuspiciousFlags) bool {
	return f&flag != 0
}

// AmlRecord tracks transaction-derived risk for one account.
// TransactionCount and TotalVolume only ever increase.
type AmlRecord struct {
	AccountID        string
	RiskLevel        RiskLevel
	RiskScore        int
	LastAssessedAt   time.Time
	TransactionCount uint64
	TotalVolume      uint64
	SuspiciousFlags  SuspiciousFlags

	// timestamps of recent transactions, pruned to the velocity window
	recentAt []time.Time
}

func NewAmlRecord(accountID string) *AmlRecord {
	return &AmlRecord{
		AccountID: accountID,
		RiskLevel: RiskLevelLow,
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > MaxRiskScore {
		return MaxRiskScore
	}
	return score
}

// Assess updates the risk score from a transaction and returns the new
// level and score. The formula is additive over the current score:
// +100 for amounts at or above the large-transaction threshold, plus
// ten times the counterparty risk.
func (r *AmlRecord) Assess(amount uint64, transactionType string, counterpartyRisk int) (RiskLevel, int) {
	score := r.RiskScore

	if amount >= largeTransactionThreshold {
		score += largeTransactionPenalty
	}

	score += counterpartyRisk * counterpartyRiskWeight
	score = clampScore(score)

	r.RiskScore = score
	r.RiskLevel = DeriveRiskLevel(score)
	r.LastAssessedAt = time.Now().UTC()

	return r.RiskLevel, r.RiskScore
}

// UpdateRiskScore is a manual override: it always succeeds and may assign
// Critical. There is deliberately no verifier gate here; callers are trusted
// and must be authenticated at a higher layer.
func (r *AmlRecord) UpdateRiskScore(newScore int, newLevel RiskLevel) {
	r.RiskScore = clampScore(newScore)
	r.RiskLevel = newLevel
	r.LastAssessedAt = time.Now().UTC()
}

// RecordTransaction registers a transaction for monitoring and runs
// suspicious-pattern detection. It never fails.
func (r *AmlRecord) RecordTransaction(amount uint64, transactionType, counterpartyHash string) {
	r.TransactionCount++
	r.TotalVolume += amount

	r.checkSuspiciousPatterns(amount, time.Now().UTC())
}

// checkSuspiciousPatterns flags round amounts (potential structuring) and
// bursts of transactions inside the velocity window.
func (r *AmlRecord) checkSuspiciousPatterns(amount uint64, now time.Time) {
	if amount%roundAmountUnit == 0 {
		r.SuspiciousFlags |= FlagRoundAmount
	}

	r.recentAt = append(r.recentAt, now)
	cutoff := now.Add(-velocityWindow)
	kept := r.recentAt[:0]
	for _, at := range r.recentAt {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}
	r.recentAt = kept

	if len(r.recentAt) > velocityThreshold {
		r.SuspiciousFlags |= FlagHighVelocity
	}
}

// Stats returns the monotonic transaction counters.
func (r *AmlRecord) Stats() (uint64, uint64) {
	return r.TransactionCount, r.TotalVolume
}
