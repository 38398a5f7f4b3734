package domain

import (
	"testing"
	"time"
)

func TestDeriveRiskLevel(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  RiskLevel
	}{
		{"zero", 0, RiskLevelLow},
		{"low", 149, RiskLevelLow},
		{"medium boundary", 150, RiskLevelMedium},
		{"medium", 299, RiskLevelMedium},
		{"high boundary", 300, RiskLevelHigh},
		{"high", 750, RiskLevelHigh},
		{"cap never yields critical", MaxRiskScore, RiskLevelHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveRiskLevel(tt.score)
			if got != tt.want {
				t.Errorf("DeriveRiskLevel(%d) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}

func TestAmlRecord_Assess(t *testing.T) {
	t.Run("large transaction with counterparty risk", func(t *testing.T) {
		rec := NewAmlRecord("acc-1")

		level, score := rec.Assess(15_000, "transfer", 5)

		if score != 150 {
			t.Errorf("Assess() score = %d, want 150", score)
		}
		if level != RiskLevelMedium {
			t.Errorf("Assess() level = %v, want %v", level, RiskLevelMedium)
		}
		if rec.LastAssessedAt.IsZero() {
			t.Error("LastAssessedAt not set")
		}
	})

	t.Run("small transaction only adds counterparty risk", func(t *testing.T) {
		rec := NewAmlRecord("acc-1")

		_, score := rec.Assess(9_999, "transfer", 3)

		if score != 30 {
			t.Errorf("Assess() score = %d, want 30", score)
		}
	})

	t.Run("score accumulates across assessments", func(t *testing.T) {
		rec := NewAmlRecord("acc-1")
		rec.Assess(15_000, "transfer", 5)

		level, score := rec.Assess(20_000, "transfer", 10)

		if score != 350 {
			t.Errorf("Assess() score = %d, want 350", score)
		}
		if level != RiskLevelHigh {
			t.Errorf("Assess() level = %v, want %v", level, RiskLevelHigh)
		}
	})

	t.Run("score is clamped to the cap", func(t *testing.T) {
		rec := NewAmlRecord("acc-1")
		rec.RiskScore = 980

		_, score := rec.Assess(50_000, "transfer", 9)

		if score != MaxRiskScore {
			t.Errorf("Assess() score = %d, want %d", score, MaxRiskScore)
		}
	})
}

func TestAmlRecord_UpdateRiskScore(t *testing.T) {
	rec := NewAmlRecord("acc-1")

	rec.UpdateRiskScore(900, RiskLevelCritical)

	if rec.RiskScore != 900 {
		t.Errorf("RiskScore = %d, want 900", rec.RiskScore)
	}
	if rec.RiskLevel != RiskLevelCritical {
		t.Errorf("RiskLevel = %v, want %v", rec.RiskLevel, RiskLevelCritical)
	}
	if rec.LastAssessedAt.IsZero() {
		t.Error("LastAssessedAt not set")
	}

	rec.UpdateRiskScore(5000, RiskLevelCritical)
	if rec.RiskScore != MaxRiskScore {
		t.Errorf("RiskScore = %d, want clamped to %d", rec.RiskScore, MaxRiskScore)
	}
}

func TestAmlRecord_RecordTransaction(t *testing.T) {
	t.Run("counters are monotonic", func(t *testing.T) {
		rec := NewAmlRecord("acc-1")

		rec.RecordTransaction(1_234, "transfer", "cp-1")
		rec.RecordTransaction(4_321, "transfer", "cp-2")

		count, volume := rec.Stats()
		if count != 2 {
			t.Errorf("Stats() count = %d, want 2", count)
		}
		if volume != 5_555 {
			t.Errorf("Stats() volume = %d, want 5555", volume)
		}
	})

	t.Run("round amount sets structuring flag", func(t *testing.T) {
		rec := NewAmlRecord("acc-1")

		rec.RecordTransaction(20_000, "transfer", "cp-1")

		if !rec.SuspiciousFlags.Has(FlagRoundAmount) {
			t.Error("round amount did not set FlagRoundAmount")
		}
	})

	t.Run("non-round amount sets no flag", func(t *testing.T) {
		rec := NewAmlRecord("acc-1")

		rec.RecordTransaction(12_345, "transfer", "cp-1")

		if rec.SuspiciousFlags != 0 {
			t.Errorf("SuspiciousFlags = %b, want 0", rec.SuspiciousFlags)
		}
	})
}

func TestAmlRecord_VelocityDetection(t *testing.T) {
	rec := NewAmlRecord("acc-1")
	now := time.Now().UTC()

	for i := 0; i <= velocityThreshold; i++ {
		rec.checkSuspiciousPatterns(12_345, now.Add(time.Duration(i)*time.Second))
	}

	if !rec.SuspiciousFlags.Has(FlagHighVelocity) {
		t.Error("burst inside the window did not set FlagHighVelocity")
	}

	spaced := NewAmlRecord("acc-2")
	for i := 0; i <= velocityThreshold; i++ {
		spaced.checkSuspiciousPatterns(12_345, now.Add(time.Duration(i)*velocityWindow))
	}

	if spaced.SuspiciousFlags.Has(FlagHighVelocity) {
		t.Error("spaced transactions should not set FlagHighVelocity")
	}
}

func TestSuspiciousFlags_Has(t *testing.T) {
	flags := FlagRoundAmount | FlagHighVelocity

	if !flags.Has(FlagRoundAmount) || !flags.Has(FlagHighVelocity) {
		t.Error("combined flags not detected")
	}

	if SuspiciousFlags(0).Has(FlagRoundAmount) {
		t.Error("zero flags reported a match")
	}
}
