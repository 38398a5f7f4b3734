package application

import (
	"context"
	"errors"
	"testing"

	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
)

func TestOverrideSanctionsUseCase_Execute(t *testing.T) {
	logger := zap.NewNop().Sugar()
	authHash := "a3f1b2c4d5e6f7a8b9c0d1e2f3a4b5c6d7e8f9a0b1c2d3e4f5a6b7c8d9e0f1a2"

	t.Run("valid authorization sets status", func(t *testing.T) {
		repo := newFakeRepository()
		repo.sanctions["acc-1"] = domain.NewSanctionsRecord("acc-1")

		uc := NewOverrideSanctionsUseCase(repo, logger)

		if err := uc.Execute(context.Background(), "acc-1", domain.SanctionsBlocked, authHash); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		rec := repo.sanctions["acc-1"]
		if rec.Status != domain.SanctionsBlocked {
			t.Errorf("Status = %v, want %v", rec.Status, domain.SanctionsBlocked)
		}
		if !rec.ManualOverride {
			t.Error("ManualOverride = false, want true")
		}
	})

	t.Run("empty authorization hash is rejected", func(t *testing.T) {
		repo := newFakeRepository()
		repo.sanctions["acc-1"] = domain.NewSanctionsRecord("acc-1")

		uc := NewOverrideSanctionsUseCase(repo, logger)

		err := uc.Execute(context.Background(), "acc-1", domain.SanctionsBlocked, "")
		var authErr *domain.AuthorizationError
		if !errors.As(err, &authErr) {
			t.Fatalf("Execute() error = %v, want AuthorizationError", err)
		}

		if repo.sanctions["acc-1"].Status != domain.SanctionsClear {
			t.Errorf("Status changed despite rejected override: %v", repo.sanctions["acc-1"].Status)
		}
	})
}

func TestUpdateSanctionsStatusUseCase_Execute(t *testing.T) {
	logger := zap.NewNop().Sugar()

	t.Run("applies reviewed status change", func(t *testing.T) {
		repo := newFakeRepository()
		repo.sanctions["acc-1"] = domain.NewSanctionsRecord("acc-1")

		uc := NewUpdateSanctionsStatusUseCase(repo, logger)

		rec, err := uc.Execute(context.Background(), "acc-1", domain.SanctionsFlagged, "partial name match under review")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if rec.Status != domain.SanctionsFlagged {
			t.Errorf("Status = %v, want %v", rec.Status, domain.SanctionsFlagged)
		}
		if !rec.ManualOverride {
			t.Error("ManualOverride = false, want true")
		}
		if repo.sanctions["acc-1"].Status != domain.SanctionsFlagged {
			t.Error("status change not persisted")
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		repo := newFakeRepository()

		uc := NewUpdateSanctionsStatusUseCase(repo, logger)

		_, err := uc.Execute(context.Background(), "ghost", domain.SanctionsClear, "cleanup")
		var notFound *domain.NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("Execute() error = %v, want NotFoundError", err)
		}
	})
}

func TestMarkSanctionsFalsePositiveUseCase_Execute(t *testing.T) {
	logger := zap.NewNop().Sugar()

	repo := newFakeRepository()
	rec := domain.NewSanctionsRecord("acc-1")
	rec.UpdateStatus(domain.SanctionsFlagged, "screening hit")
	repo.sanctions["acc-1"] = rec

	uc := NewMarkSanctionsFalsePositiveUseCase(repo, logger)

	got, err := uc.Execute(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !got.FalsePositive {
		t.Error("FalsePositive = false, want true")
	}
	// the review outcome is recorded; the status stays until a rescreen or
	// an explicit override
	if got.Status != domain.SanctionsFlagged {
		t.Errorf("Status = %v, want %v unchanged", got.Status, domain.SanctionsFlagged)
	}
}
