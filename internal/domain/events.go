package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// event types
const (
	EventKycVerified                 = "compliance.kyc.verified"
	EventSuspiciousActivity          = "compliance.aml.suspicious"
	EventAttestationRefreshRequested = "compliance.attestation.refresh"
	EventAttestationIssued           = "compliance.attestation.issued"
	EventAttestationFailed           = "compliance.attestation.failed"
	EventReportReady                 = "compliance.report.ready"
)

type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

type KycVerifiedPayload struct {
	AccountID string          `json:"account_id"`
	Level     ComplianceLevel `json:"level"`
}

type SuspiciousActivityPayload struct {
	AccountID string          `json:"account_id"`
	Flags     SuspiciousFlags `json:"flags"`
}

type AttestationRefreshRequestedPayload struct {
	AccountID string `json:"account_id"`
}

type AttestationIssuedPayload struct {
	AttestationID    string    `json:"attestation_id"`
	AccountID        string    `json:"account_id"`
	KycStatus        KycStatus `json:"kyc_status"`
	AmlRiskLevel     RiskLevel `json:"aml_risk_level"`
	SanctionsCleared bool      `json:"sanctions_cleared"`
	ExpiresAt        time.Time `json:"expires_at"`
}

type AttestationFailedPayload struct {
	AccountID    string `json:"account_id"`
	ErrorMessage string `json:"error_message"`
}

type ReportReadyPayload struct {
	AttestationID string `json:"attestation_id"`
	AccountID     string `json:"account_id"`
	ReportKey     string `json:"report_key"`
}

func NewEvent(eventType string, payload any) *Event {
	return &Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

func (e *Event) MarshalPayload() ([]byte, error) {
	return json.Marshal(e.Payload)
}
