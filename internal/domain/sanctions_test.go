package domain

import (
	"errors"
	"testing"
)

func TestSanctionsRecord_ApplyScreening(t *testing.T) {
	t.Run("invalid proof flags the account with low confidence", func(t *testing.T) {
		rec := NewSanctionsRecord("acc-1")

		conf := rec.ApplyScreening("list-v42", 42, ScreeningVerdict{Valid: false})

		if rec.Status != SanctionsFlagged {
			t.Errorf("Status = %v, want %v", rec.Status, SanctionsFlagged)
		}
		if conf != ConfidenceLow {
			t.Errorf("confidence = %v, want %v", conf, ConfidenceLow)
		}
		if rec.ScreeningHash != "list-v42" {
			t.Errorf("ScreeningHash = %v, want list-v42", rec.ScreeningHash)
		}
		if rec.ListVersion != 42 {
			t.Errorf("ListVersion = %d, want 42", rec.ListVersion)
		}
		if rec.LastScreenedAt.IsZero() {
			t.Error("LastScreenedAt not set")
		}
	})

	t.Run("valid proof applies the verdict with high confidence", func(t *testing.T) {
		rec := NewSanctionsRecord("acc-1")
		rec.Status = SanctionsFlagged

		conf := rec.ApplyScreening("list-v43", 43, ScreeningVerdict{Valid: true, Status: SanctionsClear})

		if rec.Status != SanctionsClear {
			t.Errorf("Status = %v, want %v", rec.Status, SanctionsClear)
		}
		if conf != ConfidenceHigh {
			t.Errorf("confidence = %v, want %v", conf, ConfidenceHigh)
		}
	})

	t.Run("manual override survives automated screening", func(t *testing.T) {
		rec := NewSanctionsRecord("acc-1")
		if err := rec.Override(SanctionsBlocked, "auth-hash"); err != nil {
			t.Fatalf("Override() error = %v", err)
		}

		rec.ApplyScreening("list-v44", 44, ScreeningVerdict{Valid: true, Status: SanctionsClear})

		if rec.Status != SanctionsBlocked {
			t.Errorf("Status = %v, want override %v preserved", rec.Status, SanctionsBlocked)
		}
		if !rec.ManualOverride {
			t.Error("ManualOverride was cleared by automated screening")
		}
		if rec.ScreeningHash != "list-v44" {
			t.Error("screening hash should still be recorded under override")
		}
	})
}

func TestSanctionsRecord_UpdateStatus(t *testing.T) {
	rec := NewSanctionsRecord("acc-1")

	rec.UpdateStatus(SanctionsBlocked, "ofac match confirmed")

	if rec.Status != SanctionsBlocked {
		t.Errorf("Status = %v, want %v", rec.Status, SanctionsBlocked)
	}
	if !rec.ManualOverride {
		t.Error("UpdateStatus did not set ManualOverride")
	}
	if rec.LastScreenedAt.IsZero() {
		t.Error("LastScreenedAt not refreshed")
	}
}

func TestSanctionsRecord_Override(t *testing.T) {
	t.Run("empty authorization is rejected", func(t *testing.T) {
		rec := NewSanctionsRecord("acc-1")

		err := rec.Override(SanctionsClear, "")

		var aerr *AuthorizationError
		if !errors.As(err, &aerr) {
			t.Fatalf("Override() error = %v, want AuthorizationError", err)
		}
		if rec.ManualOverride {
			t.Error("failed override mutated the record")
		}
	})

	t.Run("authorized override applies", func(t *testing.T) {
		rec := NewSanctionsRecord("acc-1")
		rec.Status = SanctionsFlagged

		if err := rec.Override(SanctionsClear, "auth-hash"); err != nil {
			t.Fatalf("Override() error = %v, want nil", err)
		}
		if rec.Status != SanctionsClear {
			t.Errorf("Status = %v, want %v", rec.Status, SanctionsClear)
		}
		if !rec.ManualOverride {
			t.Error("ManualOverride not set")
		}
	})
}

func TestSanctionsRecord_MarkFalsePositive(t *testing.T) {
	rec := NewSanctionsRecord("acc-1")
	rec.Status = SanctionsFlagged

	rec.MarkFalsePositive()

	if !rec.FalsePositive {
		t.Error("FalsePositive not set")
	}
	if rec.Status != SanctionsFlagged {
		t.Error("MarkFalsePositive should not change status")
	}
}
