package domain

import (
	"context"
	"time"
)

// ProofEngine is the boundary to the external proving system. Every
// commitment or proof check in the core is routed through it; the state
// machines never compare proofs themselves. Calls have non-deterministic
// latency, may fail transiently, and are not idempotent.
type ProofEngine interface {
	GenerateProof(ctx context.Context, att *ComplianceAttestation) (string, error)
	VerifyProof(ctx context.Context, proof, accountID string) (bool, error)
	VerifyCommitment(ctx context.Context, commitment, challenge, committedHash string) (bool, error)
	VerifyScreeningProof(ctx context.Context, proof, screeningHash string) (*ScreeningVerdict, error)
	Name() string
}

// AttestationStore keeps the current attestation per account. Put is
// last-write-wins; the most recently stored attestation is "current".
type AttestationStore interface {
	Get(ctx context.Context, accountID string) (*ComplianceAttestation, error)
	Put(ctx context.Context, att *ComplianceAttestation) error
}

// ComplianceRepository owns the per-account, per-domain records. Each record
// replaces one fixed six-slot storage layout of the execution substrate with
// a typed struct; field semantics are identical.
type ComplianceRepository interface {
	GetKyc(ctx context.Context, accountID string) (*KycRecord, error)
	SaveKyc(ctx context.Context, record *KycRecord) error

	GetAml(ctx context.Context, accountID string) (*AmlRecord, error)
	SaveAml(ctx context.Context, record *AmlRecord) error

	GetSanctions(ctx context.Context, accountID string) (*SanctionsRecord, error)
	SaveSanctions(ctx context.Context, record *SanctionsRecord) error
}

// ComponentCompiler compiles a component layout for the execution substrate.
// Compilation failures are fatal to deployment, not to a running check.
type ComponentCompiler interface {
	Compile(layout ComponentLayout) (*CompiledComponent, error)
}

type MessageBus interface {
	Publish(ctx context.Context, routingKey string, event *Event) error
	Subscribe(ctx context.Context, queueName string, routingKeys []string, handler func([]byte) error) error
	Close() error
}

// ReportMetadata travels with a stored report so the storage layer can
// enforce expiry and trace an object back to the attestation it documents.
type ReportMetadata struct {
	AccountID     string
	AttestationID string
	ExpiresAt     time.Time
}

type ReportStorage interface {
	Put(ctx context.Context, key string, data []byte, meta ReportMetadata) error
	Get(ctx context.Context, key string) ([]byte, error)
	PresignGet(ctx context.Context, key string, expires time.Duration) (string, error)
	CleanupExpired(ctx context.Context, now time.Time) (int, error)
}

type BillingHook interface {
	OnAttestationIssued(ctx context.Context, att *ComplianceAttestation) error
}
