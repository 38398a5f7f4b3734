package http

import (
	"encoding/json"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-playground/validator/v10"
	"github.com/zerotrustlabs/compliance-backend/internal/application"
	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"github.com/zerotrustlabs/compliance-backend/internal/infrastructure/token"
	"go.uber.org/zap"
)

var (
	attestationsIssued = expvar.NewInt("attestations_issued")
	attestationsFailed = expvar.NewInt("attestations_failed")
	screeningsTotal    = expvar.NewInt("screenings_total")
	proofsGenerated    = expvar.NewInt("proofs_generated")
	proofsVerified     = expvar.NewInt("proofs_verified")
)

type Handlers struct {
	registerAccount    *application.RegisterAccountUseCase
	verifyKyc          *application.VerifyKycUseCase
	verifyKycProof     *application.VerifyKycProofUseCase
	getKycStatus       *application.GetKycStatusUseCase
	updateKycStatus    *application.UpdateKycStatusUseCase
	updateKycLevel     *application.UpdateKycLevelUseCase
	recordTransaction  *application.RecordTransactionUseCase
	assessRisk         *application.AssessRiskUseCase
	overrideRisk       *application.OverrideRiskScoreUseCase
	screenSanctions    *application.ScreenSanctionsUseCase
	overrideSanctions  *application.OverrideSanctionsUseCase
	updateSanctions    *application.UpdateSanctionsStatusUseCase
	markFalsePositive  *application.MarkSanctionsFalsePositiveUseCase
	comprehensiveCheck *application.ComprehensiveCheckUseCase
	getStatus          *application.GetComplianceStatusUseCase
	checkLevel         *application.CheckComplianceLevelUseCase
	createProof        *application.CreateComplianceProofUseCase
	verifyProof        *application.VerifyComplianceProofUseCase
	reportStorage      domain.ReportStorage
	tokenProvider      *token.HMACToken
	messageBus         domain.MessageBus
	apiURL             string
	logger             *zap.SugaredLogger
	validator          *validator.Validate
}

type HandlersConfig struct {
	RegisterAccount    *application.RegisterAccountUseCase
	VerifyKyc          *application.VerifyKycUseCase
	VerifyKycProof     *application.VerifyKycProofUseCase
	GetKycStatus       *application.GetKycStatusUseCase
	UpdateKycStatus    *application.UpdateKycStatusUseCase
	UpdateKycLevel     *application.UpdateKycLevelUseCase
	RecordTransaction  *application.RecordTransactionUseCase
	AssessRisk         *application.AssessRiskUseCase
	OverrideRisk       *application.OverrideRiskScoreUseCase
	ScreenSanctions    *application.ScreenSanctionsUseCase
	OverrideSanctions  *application.OverrideSanctionsUseCase
	UpdateSanctions    *application.UpdateSanctionsStatusUseCase
	MarkFalsePositive  *application.MarkSanctionsFalsePositiveUseCase
	ComprehensiveCheck *application.ComprehensiveCheckUseCase
	GetStatus          *application.GetComplianceStatusUseCase
	CheckLevel         *application.CheckComplianceLevelUseCase
	CreateProof        *application.CreateComplianceProofUseCase
	VerifyProof        *application.VerifyComplianceProofUseCase
	ReportStorage      domain.ReportStorage
	TokenProvider      *token.HMACToken
	MessageBus         domain.MessageBus
	APIURL             string
	Logger             *zap.SugaredLogger
}

func NewHandlers(cfg HandlersConfig) *Handlers {
	return &Handlers{
		registerAccount:    cfg.RegisterAccount,
		verifyKyc:          cfg.VerifyKyc,
		verifyKycProof:     cfg.VerifyKycProof,
		getKycStatus:       cfg.GetKycStatus,
		updateKycStatus:    cfg.UpdateKycStatus,
		updateKycLevel:     cfg.UpdateKycLevel,
		recordTransaction:  cfg.RecordTransaction,
		assessRisk:         cfg.AssessRisk,
		overrideRisk:       cfg.OverrideRisk,
		screenSanctions:    cfg.ScreenSanctions,
		overrideSanctions:  cfg.OverrideSanctions,
		updateSanctions:    cfg.UpdateSanctions,
		markFalsePositive:  cfg.MarkFalsePositive,
		comprehensiveCheck: cfg.ComprehensiveCheck,
		getStatus:          cfg.GetStatus,
		checkLevel:         cfg.CheckLevel,
		createProof:        cfg.CreateProof,
		verifyProof:        cfg.VerifyProof,
		reportStorage:      cfg.ReportStorage,
		tokenProvider:      cfg.TokenProvider,
		messageBus:         cfg.MessageBus,
		apiURL:             cfg.APIURL,
		logger:             cfg.Logger,
		validator:          validator.New(),
	}
}

// RegisterAccount handles POST /v1/accounts
//
//	@Summary		Register account
//	@Description	Seeds empty KYC, AML and sanctions records for a new account
//	@Tags			accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterAccountRequest	true	"Registration request"
//	@Success		201		{object}	AcceptedResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/accounts [post]
func (h *Handlers) RegisterAccount(w http.ResponseWriter, r *http.Request) {
	var req RegisterAccountRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.registerAccount.Execute(r.Context(), req.AccountID, req.KycDataHash); err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, AcceptedResponse{
		Status:  "registered",
		Message: "account registered",
	})
}

// VerifyKyc handles POST /v1/accounts/{account_id}/kyc/verify
//
//	@Summary		Verify KYC
//	@Description	Marks the account's KYC as verified if the provided data hash matches
//	@Tags			kyc
//	@Accept			json
//	@Produce		json
//	@Param			account_id	path		string				true	"Account ID"
//	@Param			request		body		VerifyKycRequest	true	"Verification request"
//	@Success		200			{object}	KycStatusResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/accounts/{account_id}/kyc/verify [post]
func (h *Handlers) VerifyKyc(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "account_id")
	var req VerifyKycRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	level, err := domain.ParseComplianceLevel(req.Level)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.verifyKyc.Execute(r.Context(), accountID, req.DataHash, domain.VerifierIdentity(req.Verifier), level)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondKycStatus(w, r, accountID)
}

// GetKycStatus handles GET /v1/accounts/{account_id}/kyc
//
//	@Summary		Get KYC status
//	@Description	Returns the account's effective KYC status, with expiry applied
//	@Tags			kyc
//	@Produce		json
//	@Param			account_id	path		string	true	"Account ID"
//	@Success		200			{object}	KycStatusResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/accounts/{account_id}/kyc [get]
func (h *Handlers) GetKycStatus(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "account_id")
	h.respondKycStatus(w, r, accountID)
}

// UpdateKycStatus handles PATCH /v1/accounts/{account_id}/kyc/status
//
//	@Summary		Update KYC status
//	@Description	Updates the KYC status; only the original verifier is authorized
//	@Tags			kyc
//	@Accept			json
//	@Produce		json
//	@Param			account_id	path		string					true	"Account ID"
//	@Param			request		body		UpdateKycStatusRequest	true	"Status update"
//	@Success		200			{object}	KycStatusResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/accounts/{account_id}/kyc/status [patch]
func (h *Handlers) UpdateKycStatus(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "account_id")
	var req UpdateKycStatusRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	err := h.updateKycStatus.Execute(r.Context(), accountID, domain.KycStatus(req.Status), domain.VerifierIdentity(req.Verifier))
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondKycStatus(w, r, accountID)
}

// UpdateKycLevel handles PATCH /v1/accounts/{account_id}/kyc/level
//
//	@Summary		Update compliance level
//	@Description	Updates the account's compliance level; only the original verifier is authorized
//	@Tags			kyc
//	@Accept			json
//	@Produce		json
//	@Param			account_id	path		string					true	"Account ID"
//	@Param			request		body		UpdateKycLevelRequest	true	"Level update"
//	@Success		200			{object}	KycStatusResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/accounts/{account_id}/kyc/level [patch]
func (h *Handlers) UpdateKycLevel(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "account_id")
	var req UpdateKycLevelRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	level, err := domain.ParseComplianceLevel(req.Level)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.updateKycLevel.Execute(r.Context(), accountID, level, domain.VerifierIdentity(req.Verifier))
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondKycStatus(w, r, accountID)
}

// VerifyKycProof handles POST /v1/accounts/{account_id}/kyc/proof
//
//	@Summary		Verify KYC commitment proof
//	@Description	Checks a commitment against the stored KYC data hash without revealing it
//	@Tags			kyc
//	@Accept			json
//	@Produce		json
//	@Param			account_id	path		string					true	"Account ID"
//	@Param			request		body		VerifyKycProofRequest	true	"Proof request"
//	@Success		200			{object}	ProofVerificationResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		502			{object}	ErrorResponse
//	@Router			/accounts/{account_id}/kyc/proof [post]
func (h *Handlers) VerifyKycProof(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "account_id")
	var req VerifyKycProofRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	valid, err := h.verifyKycProof.Execute(r.Context(), accountID, req.Commitment, req.Challenge)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	proofsVerified.Add(1)
	h.respondJSON(w, http.StatusOK, ProofVerificationResponse{Valid: valid})
}

// RecordTransaction handles POST /v1/accounts/{account_id}/transactions
//
//	@Summary		Record transaction
//	@Description	Records a transaction against the account's AML history
//	@Tags			aml
//	@Accept			json
//	@Produce		json
//	@Param			account_id	path		string						true	"Account ID"
//	@Param			request		body		RecordTransactionRequest	true	"Transaction"
//	@Success		202			{object}	AcceptedResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/accounts/{account_id}/transactions [post]
func (h *Handlers) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "account_id")
	var req RecordTransactionRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	err := h.recordTransaction.Execute(r.Context(), accountID, req.Amount, req.TransactionType, req.CounterpartyHash)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusAccepted, AcceptedResponse{
		Status:  "recorded",
		Message: "transaction recorded",
	})
}

// AssessRisk handles POST /v1/accounts/{account_id}/risk/assess
//
//	@Summary		Assess transaction risk
//	@Description	Scores a prospective transaction and updates the account's risk level
//	@Tags			aml
//	@Accept			json
//	@Produce		json
//	@Param			account_id	path		string				true	"Account ID"
//	@Param			request		body		AssessRiskRequest	true	"Assessment request"
//	@Success		200			{object}	RiskAssessmentResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/accounts/{account_id}/risk/assess [post]
func (h *Handlers) AssessRisk(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "account_id")
	var req AssessRiskRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	level, score, err := h.assessRisk.Execute(r.Context(), accountID, req.Amount, req.TransactionType, req.CounterpartyRisk)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, RiskAssessmentResponse{
		AccountID: accountID,
		RiskLevel: string(level),
		RiskScore: score,
	})
}

// OverrideRisk handles PUT /v1/accounts/{account_id}/risk
//
//	@Summary		Override risk score
//	@Description	Sets the risk score and level directly; reserved for compliance officers
//	@Tags			aml
//	@Accept			json
//	@Produce		json
//	@Param			account_id	path		string				true	"Account ID"
//	@Param			request		body		OverrideRiskRequest	true	"Override request"
//	@Success		200			{object}	RiskAssessmentResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/accounts/{account_id}/risk [put]
func (h *Handlers) OverrideRisk(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "account_id")
	var req OverrideRiskRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	err := h.overrideRisk.Execute(r.Context(), accountID, req.Score, domain.RiskLevel(req.Level))
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, RiskAssessmentResponse{
		AccountID: accountID,
		RiskLevel: req.Level,
		RiskScore: req.Score,
	})
}

// ScreenSanctions handles POST /v1/accounts/{account_id}/sanctions/screen
//
//	@Summary		Screen against sanctions list
//	@Description	Applies a proof-backed screening result; invalid proofs flag the account
//	@Tags			sanctions
//	@Accept			json
//	@Produce		json
//	@Param			account_id	path		string					true	"Account ID"
//	@Param			request		body		ScreenSanctionsRequest	true	"Screening request"
//	@Success		200			{object}	ScreeningResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/accounts/{account_id}/sanctions/screen [post]
func (h *Handlers) ScreenSanctions(w http.ResponseWriter, r *http.Request) {
	screeningsTotal.Add(1)

	accountID := chi.URLParam(r, "account_id")
	var req ScreenSanctionsRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	status, confidence, err := h.screenSanctions.Execute(r.Context(), accountID, req.IdentityHash, req.ListHash, req.ListVersion, req.ScreeningProof)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, ScreeningResponse{
		AccountID:  accountID,
		Status:     string(status),
		Confidence: string(confidence),
	})
}

// OverrideSanctions handles PUT /v1/accounts/{account_id}/sanctions
//
//	@Summary		Override sanctions status
//	@Description	Manually sets the sanctions status; requires an authorization hash
//	@Tags			sanctions
//	@Accept			json
//	@Produce		json
//	@Param			account_id	path		string						true	"Account ID"
//	@Param			request		body		OverrideSanctionsRequest	true	"Override request"
//	@Success		200			{object}	ScreeningResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/accounts/{account_id}/sanctions [put]
func (h *Handlers) OverrideSanctions(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "account_id")
	var req OverrideSanctionsRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	err := h.overrideSanctions.Execute(r.Context(), accountID, domain.SanctionsStatus(req.Status), req.AuthorizationHash)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, ScreeningResponse{
		AccountID:  accountID,
		Status:     req.Status,
		Confidence: string(domain.ConfidenceHigh),
	})
}

// UpdateSanctionsStatus handles PATCH /v1/accounts/{account_id}/sanctions/status
//
//	@Summary		Update sanctions status
//	@Description	Applies a reviewed sanctions status change with an audit reason
//	@Tags			sanctions
//	@Accept			json
//	@Produce		json
//	@Param			account_id	path		string							true	"Account ID"
//	@Param			request		body		UpdateSanctionsStatusRequest	true	"Status update"
//	@Success		200			{object}	SanctionsStatusResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/accounts/{account_id}/sanctions/status [patch]
func (h *Handlers) UpdateSanctionsStatus(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "account_id")
	var req UpdateSanctionsStatusRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	record, err := h.updateSanctions.Execute(r.Context(), accountID, domain.SanctionsStatus(req.Status), req.Reason)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, SanctionsStatusResponse{
		AccountID:      record.AccountID,
		Status:         string(record.Status),
		ManualOverride: record.ManualOverride,
		FalsePositive:  record.FalsePositive,
	})
}

// MarkSanctionsFalsePositive handles POST /v1/accounts/{account_id}/sanctions/false-positive
//
//	@Summary		Mark sanctions match as false positive
//	@Description	Records that a manual review found the sanctions match spurious
//	@Tags			sanctions
//	@Produce		json
//	@Param			account_id	path		string	true	"Account ID"
//	@Success		200			{object}	SanctionsStatusResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/accounts/{account_id}/sanctions/false-positive [post]
func (h *Handlers) MarkSanctionsFalsePositive(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "account_id")

	record, err := h.markFalsePositive.Execute(r.Context(), accountID)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, SanctionsStatusResponse{
		AccountID:      record.AccountID,
		Status:         string(record.Status),
		ManualOverride: record.ManualOverride,
		FalsePositive:  record.FalsePositive,
	})
}

// CreateAttestation handles POST /v1/accounts/{account_id}/attestations
//
//	@Summary		Run comprehensive check
//	@Description	Runs KYC, AML and sanctions checks and issues a fresh attestation
//	@Tags			attestations
//	@Produce		json
//	@Param			account_id	path		string	true	"Account ID"
//	@Success		201			{object}	AttestationResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/accounts/{account_id}/attestations [post]
func (h *Handlers) CreateAttestation(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "account_id")

	att, err := h.comprehensiveCheck.Execute(r.Context(), accountID)
	if err != nil {
		attestationsFailed.Add(1)
		h.respondDomainError(w, err)
		return
	}

	attestationsIssued.Add(1)
	h.respondJSON(w, http.StatusCreated, h.toAttestationWithReportURL(att))
}

// GetLatestAttestation handles GET /v1/accounts/{account_id}/attestations/latest
//
//	@Summary		Get latest attestation
//	@Description	Returns the account's current attestation, if any
//	@Tags			attestations
//	@Produce		json
//	@Param			account_id	path		string	true	"Account ID"
//	@Success		200			{object}	AttestationResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/accounts/{account_id}/attestations/latest [get]
func (h *Handlers) GetLatestAttestation(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "account_id")

	att, err := h.getStatus.Execute(r.Context(), accountID)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}
	if att == nil {
		h.respondError(w, http.StatusNotFound, "no attestation on file")
		return
	}

	h.respondJSON(w, http.StatusOK, h.toAttestationWithReportURL(att))
}

// RequestAttestationRefresh handles POST /v1/accounts/{account_id}/attestations/refresh
//
//	@Summary		Request attestation refresh
//	@Description	Queues an asynchronous re-run of the comprehensive check
//	@Tags			attestations
//	@Produce		json
//	@Param			account_id	path		string	true	"Account ID"
//	@Success		202			{object}	AcceptedResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/accounts/{account_id}/attestations/refresh [post]
func (h *Handlers) RequestAttestationRefresh(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "account_id")

	event := domain.NewEvent(domain.EventAttestationRefreshRequested, domain.AttestationRefreshRequestedPayload{
		AccountID: accountID,
	})
	if err := h.messageBus.Publish(r.Context(), domain.EventAttestationRefreshRequested, event); err != nil {
		h.logger.Errorw("failed to publish refresh request", "account_id", accountID, "error", err)
		h.respondError(w, http.StatusInternalServerError, "failed to queue refresh")
		return
	}

	h.respondJSON(w, http.StatusAccepted, AcceptedResponse{
		Status:  "queued",
		Message: "attestation refresh queued",
	})
}

// CheckComplianceLevel handles GET /v1/accounts/{account_id}/compliance
//
//	@Summary		Check compliance level
//	@Description	Answers whether the account currently meets the requested level
//	@Tags			attestations
//	@Produce		json
//	@Param			account_id	path		string	true	"Account ID"
//	@Param			level		query		string	true	"Required level"	Enums(basic, standard, enhanced, institutional)
//	@Success		200			{object}	ComplianceLevelResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/accounts/{account_id}/compliance [get]
func (h *Handlers) CheckComplianceLevel(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "account_id")

	level, err := domain.ParseComplianceLevel(r.URL.Query().Get("level"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	compliant, err := h.checkLevel.Execute(r.Context(), accountID, level)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, ComplianceLevelResponse{
		AccountID: accountID,
		Level:     string(level),
		Compliant: compliant,
	})
}

// CreateProof handles POST /v1/proofs
//
//	@Summary		Create compliance proof
//	@Description	Runs a comprehensive check and mints a proof over the attestation
//	@Tags			proofs
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateProofRequest	true	"Proof request"
//	@Success		201		{object}	ProofResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/proofs [post]
func (h *Handlers) CreateProof(w http.ResponseWriter, r *http.Request) {
	var req CreateProofRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	proof, att, err := h.createProof.Execute(r.Context(), req.AccountID)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	proofsGenerated.Add(1)
	h.respondJSON(w, http.StatusCreated, ProofResponse{
		Proof:       proof,
		Attestation: ToAttestationResponse(att),
	})
}

// VerifyProof handles POST /v1/proofs/verify
//
//	@Summary		Verify compliance proof
//	@Description	Verifies a previously minted compliance proof
//	@Tags			proofs
//	@Accept			json
//	@Produce		json
//	@Param			request	body		VerifyProofRequest	true	"Verification request"
//	@Success		200		{object}	ProofVerificationResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/proofs/verify [post]
func (h *Handlers) VerifyProof(w http.ResponseWriter, r *http.Request) {
	var req VerifyProofRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	valid, err := h.verifyProof.Execute(r.Context(), req.Proof, req.AccountID)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	proofsVerified.Add(1)
	h.respondJSON(w, http.StatusOK, ProofVerificationResponse{Valid: valid})
}

// GetReport handles GET /v1/report/{token}.pdf
//
//	@Summary		Download attestation report
//	@Description	Downloads or redirects to the PDF report for an attestation
//	@Tags			attestations
//	@Produce		application/pdf
//	@Param			token	path		string	true	"Report token"
//	@Success		200		{file}		binary
//	@Success		302		{string}	string	"Redirect to presigned URL"
//	@Failure		404		{object}	ErrorResponse
//	@Failure		410		{object}	ErrorResponse
//	@Router			/report/{token}.pdf [get]
func (h *Handlers) GetReport(w http.ResponseWriter, r *http.Request) {
	tokenStr := chi.URLParam(r, "token")
	if tokenStr == "" {
		h.respondError(w, http.StatusBadRequest, "token is required")
		return
	}

	// verify token
	reportKey, err := h.tokenProvider.Verify(tokenStr)
	if err != nil {
		if errors.Is(err, token.ErrTokenExpired) {
			h.respondError(w, http.StatusGone, "report link expired")
			return
		}
		h.respondError(w, http.StatusBadRequest, "invalid token")
		return
	}

	// try to get presigned URL first
	presignedURL, err := h.reportStorage.PresignGet(r.Context(), reportKey, 5*time.Minute)
	if err == nil && presignedURL != "" {
		http.Redirect(w, r, presignedURL, http.StatusFound)
		return
	}

	// fallback: stream from storage
	data, err := h.reportStorage.Get(r.Context(), reportKey)
	if err != nil {
		if errors.Is(err, domain.ErrReportNotFound) {
			h.respondError(w, http.StatusNotFound, "report not found")
			return
		}
		if errors.Is(err, domain.ErrReportExpired) {
			h.respondError(w, http.StatusGone, "report expired")
			return
		}
		h.logger.Errorw("failed to get report", "report_key", reportKey, "error", err)
		h.respondError(w, http.StatusInternalServerError, "failed to get report")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%s", reportKey))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handlers) respondKycStatus(w http.ResponseWriter, r *http.Request, accountID string) {
	record, err := h.getKycStatus.Execute(r.Context(), accountID)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, ToKycStatusResponse(record, time.Now().UTC()))
}

func (h *Handlers) toAttestationWithReportURL(att *domain.ComplianceAttestation) AttestationResponse {
	resp := ToAttestationResponse(att)

	// signed download link for the PDF report
	reportToken := h.tokenProvider.Sign(att.ID+".pdf", 24*time.Hour)
	resp.ReportURL = fmt.Sprintf("%s/v1/report/%s", h.apiURL, reportToken)

	return resp
}

func (h *Handlers) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	if err := h.validator.Struct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err))
		return false
	}

	return true
}

// respondDomainError maps domain error types to HTTP status codes.
func (h *Handlers) respondDomainError(w http.ResponseWriter, err error) {
	var (
		notFound      *domain.NotFoundError
		authorization *domain.AuthorizationError
		verification  *domain.VerificationError
		proofErr      *domain.ProofError
		compilation   *domain.CompilationError
	)

	switch {
	case errors.As(err, &notFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &authorization):
		h.respondError(w, http.StatusUnauthorized, err.Error())
	case errors.As(err, &verification):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &proofErr):
		if proofErr.Retryable {
			h.respondError(w, http.StatusServiceUnavailable, err.Error())
		} else {
			h.respondError(w, http.StatusBadGateway, err.Error())
		}
	case errors.As(err, &compilation):
		h.logger.Errorw("component compilation error", "error", err)
		h.respondError(w, http.StatusInternalServerError, err.Error())
	default:
		h.logger.Errorw("internal error", "error", err)
		h.respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *Handlers) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handlers) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, ErrorResponse{Error: message})
}
