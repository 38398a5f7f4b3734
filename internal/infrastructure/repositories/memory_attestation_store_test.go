package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
)

func TestMemoryAttestationStore(t *testing.T) {
	logger := zap.NewNop().Sugar()
	ctx := context.Background()

	t.Run("get without attestation returns nil", func(t *testing.T) {
		store := NewMemoryAttestationStore(logger)

		att, err := store.Get(ctx, "acc-1")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if att != nil {
			t.Errorf("Get() = %v, want nil", att)
		}
	})

	t.Run("put is last-write-wins", func(t *testing.T) {
		store := NewMemoryAttestationStore(logger)

		first := domain.NewComplianceAttestation("acc-1", domain.KycStatusVerified, time.Now().UTC().Add(time.Hour), domain.RiskLevelLow, true, 24*time.Hour)
		second := domain.NewComplianceAttestation("acc-1", domain.KycStatusVerified, time.Now().UTC().Add(time.Hour), domain.RiskLevelHigh, true, 24*time.Hour)

		if err := store.Put(ctx, first); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		if err := store.Put(ctx, second); err != nil {
			t.Fatalf("Put() error = %v", err)
		}

		got, err := store.Get(ctx, "acc-1")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got.ID != second.ID {
			t.Errorf("Get() ID = %v, want most recent %v", got.ID, second.ID)
		}
	})

	t.Run("cleanup removes only expired attestations", func(t *testing.T) {
		store := NewMemoryAttestationStore(logger)

		live := domain.NewComplianceAttestation("acc-live", domain.KycStatusVerified, time.Now().UTC().Add(48*time.Hour), domain.RiskLevelLow, true, 24*time.Hour)
		dead := domain.NewComplianceAttestation("acc-dead", domain.KycStatusVerified, time.Now().UTC().Add(48*time.Hour), domain.RiskLevelLow, true, 24*time.Hour)
		dead.ExpiresAt = time.Now().UTC().Add(-time.Minute)

		store.Put(ctx, live)
		store.Put(ctx, dead)

		count, err := store.CleanupExpired(ctx, time.Now().UTC())
		if err != nil {
			t.Fatalf("CleanupExpired() error = %v", err)
		}
		if count != 1 {
			t.Errorf("CleanupExpired() count = %d, want 1", count)
		}

		if att, _ := store.Get(ctx, "acc-dead"); att != nil {
			t.Error("expired attestation still present")
		}
		if att, _ := store.Get(ctx, "acc-live"); att == nil {
			t.Error("live attestation removed")
		}
	})
}

func TestMemoryComplianceRepository(t *testing.T) {
	logger := zap.NewNop().Sugar()
	ctx := context.Background()

	repo := NewMemoryComplianceRepository(logger)

	if _, err := repo.GetKyc(ctx, "acc-1"); err == nil {
		t.Error("GetKyc() on empty repo should fail")
	}

	kyc := domain.NewKycRecord("acc-1", "hash-a")
	if err := repo.SaveKyc(ctx, kyc); err != nil {
		t.Fatalf("SaveKyc() error = %v", err)
	}

	got, err := repo.GetKyc(ctx, "acc-1")
	if err != nil {
		t.Fatalf("GetKyc() error = %v", err)
	}
	if got.DataHash != "hash-a" {
		t.Errorf("GetKyc() DataHash = %v, want hash-a", got.DataHash)
	}

	aml := domain.NewAmlRecord("acc-1")
	if err := repo.SaveAml(ctx, aml); err != nil {
		t.Fatalf("SaveAml() error = %v", err)
	}
	if _, err := repo.GetAml(ctx, "acc-1"); err != nil {
		t.Errorf("GetAml() error = %v", err)
	}

	sanc := domain.NewSanctionsRecord("acc-1")
	if err := repo.SaveSanctions(ctx, sanc); err != nil {
		t.Fatalf("SaveSanctions() error = %v", err)
	}
	if _, err := repo.GetSanctions(ctx, "acc-1"); err != nil {
		t.Errorf("GetSanctions() error = %v", err)
	}
}
