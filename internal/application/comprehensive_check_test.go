package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
)

type fakeRepository struct {
	kyc       map[string]*domain.KycRecord
	aml       map[string]*domain.AmlRecord
	sanctions map[string]*domain.SanctionsRecord

	kycErr       error
	amlErr       error
	sanctionsErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		kyc:       make(map[string]*domain.KycRecord),
		aml:       make(map[string]*domain.AmlRecord),
		sanctions: make(map[string]*domain.SanctionsRecord),
	}
}

func (r *fakeRepository) GetKyc(ctx context.Context, accountID string) (*domain.KycRecord, error) {
	if r.kycErr != nil {
		return nil, r.kycErr
	}
	rec, ok := r.kyc[accountID]
	if !ok {
		return nil, &domain.NotFoundError{AccountID: accountID}
	}
	return rec, nil
}

func (r *fakeRepository) SaveKyc(ctx context.Context, rec *domain.KycRecord) error {
	r.kyc[rec.AccountID] = rec
	return nil
}

func (r *fakeRepository) GetAml(ctx context.Context, accountID string) (*domain.AmlRecord, error) {
	if r.amlErr != nil {
		return nil, r.amlErr
	}
	rec, ok := r.aml[accountID]
	if !ok {
		return nil, &domain.NotFoundError{AccountID: accountID}
	}
	return rec, nil
}

func (r *fakeRepository) SaveAml(ctx context.Context, rec *domain.AmlRecord) error {
	r.aml[rec.AccountID] = rec
	return nil
}

func (r *fakeRepository) GetSanctions(ctx context.Context, accountID string) (*domain.SanctionsRecord, error) {
	if r.sanctionsErr != nil {
		return nil, r.sanctionsErr
	}
	rec, ok := r.sanctions[accountID]
	if !ok {
		return nil, &domain.NotFoundError{AccountID: accountID}
	}
	return rec, nil
}

func (r *fakeRepository) SaveSanctions(ctx context.Context, rec *domain.SanctionsRecord) error {
	r.sanctions[rec.AccountID] = rec
	return nil
}

type fakeStore struct {
	attestations map[string]*domain.ComplianceAttestation
	puts         int
}

func newFakeStore() *fakeStore {
	return &fakeStore{attestations: make(map[string]*domain.ComplianceAttestation)}
}

func (s *fakeStore) Get(ctx context.Context, accountID string) (*domain.ComplianceAttestation, error) {
	return s.attestations[accountID], nil
}

func (s *fakeStore) Put(ctx context.Context, att *domain.ComplianceAttestation) error {
	s.attestations[att.AccountID] = att
	s.puts++
	return nil
}

type fakeBus struct {
	published []*domain.Event
}

func (b *fakeBus) Publish(ctx context.Context, routingKey string, event *domain.Event) error {
	b.published = append(b.published, event)
	return nil
}

func (b *fakeBus) Subscribe(ctx context.Context, queueName string, routingKeys []string, handler func([]byte) error) error {
	return nil
}

func (b *fakeBus) Close() error { return nil }

func seedCompliantAccount(t *testing.T, repo *fakeRepository, accountID string) {
	t.Helper()

	kyc := domain.NewKycRecord(accountID, "hash-a")
	if err := kyc.Verify("hash-a", "verifier-1", domain.LevelStandard); err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	repo.kyc[accountID] = kyc
	repo.aml[accountID] = domain.NewAmlRecord(accountID)
	repo.sanctions[accountID] = domain.NewSanctionsRecord(accountID)
}

func TestComprehensiveCheckUseCase_Execute(t *testing.T) {
	logger := zap.NewNop().Sugar()

	t.Run("success builds and persists attestation", func(t *testing.T) {
		repo := newFakeRepository()
		store := newFakeStore()
		bus := &fakeBus{}
		seedCompliantAccount(t, repo, "acc-1")

		uc := NewComprehensiveCheckUseCase(repo, store, bus, 24*time.Hour, logger)

		att, err := uc.Execute(context.Background(), "acc-1")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if att.KycStatus != domain.KycStatusVerified {
			t.Errorf("KycStatus = %v, want %v", att.KycStatus, domain.KycStatusVerified)
		}
		if att.AmlRiskLevel != domain.RiskLevelLow {
			t.Errorf("AmlRiskLevel = %v, want %v", att.AmlRiskLevel, domain.RiskLevelLow)
		}
		if !att.SanctionsCleared {
			t.Error("SanctionsCleared = false, want true")
		}

		stored, _ := store.Get(context.Background(), "acc-1")
		if stored == nil || stored.ID != att.ID {
			t.Error("attestation not persisted")
		}

		if len(bus.published) != 1 || bus.published[0].Type != domain.EventAttestationIssued {
			t.Errorf("published events = %v, want one attestation issued event", bus.published)
		}
	})

	t.Run("sanctions failure aborts without persisting", func(t *testing.T) {
		repo := newFakeRepository()
		store := newFakeStore()
		bus := &fakeBus{}
		seedCompliantAccount(t, repo, "acc-1")
		repo.sanctionsErr = errors.New("sanctions backend unavailable")

		uc := NewComprehensiveCheckUseCase(repo, store, bus, 24*time.Hour, logger)

		_, err := uc.Execute(context.Background(), "acc-1")
		if err == nil {
			t.Fatal("Execute() error = nil, want failure")
		}

		if store.puts != 0 {
			t.Errorf("store.puts = %d, want 0 (no partial attestation)", store.puts)
		}

		if len(bus.published) != 1 || bus.published[0].Type != domain.EventAttestationFailed {
			t.Errorf("published events = %v, want one attestation failed event", bus.published)
		}
	})

	t.Run("unknown account surfaces not found", func(t *testing.T) {
		repo := newFakeRepository()
		store := newFakeStore()

		uc := NewComprehensiveCheckUseCase(repo, store, &fakeBus{}, 24*time.Hour, logger)

		_, err := uc.Execute(context.Background(), "missing")

		var nferr *domain.NotFoundError
		if !errors.As(err, &nferr) {
			t.Fatalf("Execute() error = %v, want NotFoundError", err)
		}
		if store.puts != 0 {
			t.Error("attestation stored for missing account")
		}
	})

	t.Run("refresh supersedes the previous attestation", func(t *testing.T) {
		repo := newFakeRepository()
		store := newFakeStore()
		seedCompliantAccount(t, repo, "acc-1")

		uc := NewComprehensiveCheckUseCase(repo, store, &fakeBus{}, 24*time.Hour, logger)

		first, err := uc.Execute(context.Background(), "acc-1")
		if err != nil {
			t.Fatalf("first Execute() error = %v", err)
		}

		repo.aml["acc-1"].UpdateRiskScore(500, domain.RiskLevelHigh)

		second, err := uc.Execute(context.Background(), "acc-1")
		if err != nil {
			t.Fatalf("second Execute() error = %v", err)
		}

		if second.ID == first.ID {
			t.Error("refresh reused the attestation id")
		}

		stored, _ := store.Get(context.Background(), "acc-1")
		if stored.ID != second.ID {
			t.Error("store does not hold the most recent attestation")
		}
		if stored.AmlRiskLevel != domain.RiskLevelHigh {
			t.Errorf("stored AmlRiskLevel = %v, want %v", stored.AmlRiskLevel, domain.RiskLevelHigh)
		}
	})
}

func TestCheckComplianceLevelUseCase_Execute(t *testing.T) {
	logger := zap.NewNop().Sugar()

	t.Run("no attestation on file means non-compliant, not an error", func(t *testing.T) {
		store := newFakeStore()
		uc := NewCheckComplianceLevelUseCase(NewGetComplianceStatusUseCase(store, logger), logger)

		meets, err := uc.Execute(context.Background(), "acc-1", domain.LevelBasic)
		if err != nil {
			t.Fatalf("Execute() error = %v, want nil", err)
		}
		if meets {
			t.Error("Execute() = true, want false with no attestation")
		}
	})

	t.Run("evaluates the stored attestation", func(t *testing.T) {
		repo := newFakeRepository()
		store := newFakeStore()
		seedCompliantAccount(t, repo, "acc-1")

		check := NewComprehensiveCheckUseCase(repo, store, &fakeBus{}, 24*time.Hour, logger)
		if _, err := check.Execute(context.Background(), "acc-1"); err != nil {
			t.Fatalf("check Execute() error = %v", err)
		}

		uc := NewCheckComplianceLevelUseCase(NewGetComplianceStatusUseCase(store, logger), logger)

		for _, level := range []domain.ComplianceLevel{domain.LevelBasic, domain.LevelStandard, domain.LevelEnhanced, domain.LevelInstitutional} {
			meets, err := uc.Execute(context.Background(), "acc-1", level)
			if err != nil {
				t.Fatalf("Execute(%v) error = %v", level, err)
			}
			if !meets {
				t.Errorf("Execute(%v) = false, want true", level)
			}
		}
	})
}
