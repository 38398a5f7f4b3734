package proving

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
)

func testAttestation() *domain.ComplianceAttestation {
	return domain.NewComplianceAttestation(
		"acct-1",
		domain.KycStatusVerified,
		time.Now().UTC().Add(24*time.Hour),
		domain.RiskLevelLow,
		true,
		time.Hour,
	)
}

func TestRemoteProver_GenerateProof(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/prove" {
			t.Errorf("path = %s, want /v1/prove", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Authorization = %q, want bearer token", auth)
		}

		var req generateProofRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.AccountID != "acct-1" {
			t.Errorf("AccountID = %s, want acct-1", req.AccountID)
		}

		json.NewEncoder(w).Encode(generateProofResponse{Proof: "proof-blob"})
	}))
	defer server.Close()

	prover := NewRemoteProver(server.URL, "test-key", zap.NewNop().Sugar())

	proof, err := prover.GenerateProof(context.Background(), testAttestation())
	if err != nil {
		t.Fatalf("GenerateProof() error = %v", err)
	}
	if proof != "proof-blob" {
		t.Errorf("GenerateProof() = %q, want proof-blob", proof)
	}
}

func TestRemoteProver_GenerateProofErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "empty proof",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(generateProofResponse{Proof: ""})
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "prover overloaded", http.StatusInternalServerError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			prover := NewRemoteProver(server.URL, "test-key", zap.NewNop().Sugar())

			if _, err := prover.GenerateProof(context.Background(), testAttestation()); err == nil {
				t.Error("GenerateProof() expected error")
			}
		})
	}
}

func TestRemoteProver_VerifyScreeningProof(t *testing.T) {
	tests := []struct {
		name       string
		response   verifyResponse
		wantValid  bool
		wantStatus domain.SanctionsStatus
	}{
		{
			name:       "valid clear",
			response:   verifyResponse{Valid: true, Status: "clear"},
			wantValid:  true,
			wantStatus: domain.SanctionsClear,
		},
		{
			name:       "valid blocked",
			response:   verifyResponse{Valid: true, Status: "blocked"},
			wantValid:  true,
			wantStatus: domain.SanctionsBlocked,
		},
		{
			name:      "invalid proof",
			response:  verifyResponse{Valid: false},
			wantValid: false,
		},
		{
			name:      "valid but unknown status",
			response:  verifyResponse{Valid: true, Status: "quarantined"},
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/v1/screenings/verify" {
					t.Errorf("path = %s, want /v1/screenings/verify", r.URL.Path)
				}
				json.NewEncoder(w).Encode(tt.response)
			}))
			defer server.Close()

			prover := NewRemoteProver(server.URL, "test-key", zap.NewNop().Sugar())

			verdict, err := prover.VerifyScreeningProof(context.Background(), "proof", "hash")
			if err != nil {
				t.Fatalf("VerifyScreeningProof() error = %v", err)
			}
			if verdict.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", verdict.Valid, tt.wantValid)
			}
			if tt.wantValid && verdict.Status != tt.wantStatus {
				t.Errorf("Status = %s, want %s", verdict.Status, tt.wantStatus)
			}
		})
	}
}

func TestRemoteProver_VerifyCommitment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req verifyCommitmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(verifyResponse{Valid: req.Commitment == req.CommittedHash})
	}))
	defer server.Close()

	prover := NewRemoteProver(server.URL, "test-key", zap.NewNop().Sugar())

	valid, err := prover.VerifyCommitment(context.Background(), "abc", "challenge", "abc")
	if err != nil {
		t.Fatalf("VerifyCommitment() error = %v", err)
	}
	if !valid {
		t.Error("VerifyCommitment() = false, want true for matching commitment")
	}

	valid, err = prover.VerifyCommitment(context.Background(), "abc", "challenge", "def")
	if err != nil {
		t.Fatalf("VerifyCommitment() error = %v", err)
	}
	if valid {
		t.Error("VerifyCommitment() = true, want false for mismatched commitment")
	}
}
