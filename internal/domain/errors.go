package domain

import (
	"errors"
	"fmt"
)

// report storage sentinels; adapters return these so callers can branch
// without string matching
var (
	ErrReportNotFound = errors.New("report not found")
	ErrReportExpired  = errors.New("report expired")
)

// compliance domains used in error reporting
const (
	DomainKYC       = "kyc"
	DomainAML       = "aml"
	DomainSanctions = "sanctions"
)

// proof engine stages
const (
	ProofStageGeneration   = "generation"
	ProofStageVerification = "verification"
)

// VerificationError reports a hash or proof mismatch inside one compliance domain.
type VerificationError struct {
	Domain string
	Reason string
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("%s verification failed: %s", e.Domain, e.Reason)
}

// AuthorizationError reports a verifier or override identity mismatch.
// It is always surfaced to the caller, never retried silently.
type AuthorizationError struct {
	Domain string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("%s: caller is not the authorized verifier", e.Domain)
}

// CompilationError reports a component compilation failure. It is fatal to
// deployment and never retryable.
type CompilationError struct {
	Reason string
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("component compilation failed: %s", e.Reason)
}

// ProofError reports a proof engine failure. Retryable is set for transient
// failures such as prover timeouts.
type ProofError struct {
	Stage     string
	Reason    string
	Retryable bool
}

func (e *ProofError) Error() string {
	return fmt.Sprintf("proof %s failed: %s", e.Stage, e.Reason)
}

type NotFoundError struct {
	AccountID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("account not found: %s", e.AccountID)
}

type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Reason)
}
