package application

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/zerotrustlabs/compliance-backend/internal/domain"
)

func GenerateAttestationPDF(att *domain.ComplianceAttestation) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 10, "Compliance Attestation Report")
	pdf.Ln(15)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s UTC", time.Now().UTC().Format("2006-01-02 15:04:05")))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, "Account")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(40, 6, "Account ID:")
	pdf.SetFont("Arial", "B", 11)
	pdf.MultiCell(0, 6, att.AccountID, "", "", false)
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(40, 6, "Attestation ID:")
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, att.ID)
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, "Compliance Verdict")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(40, 6, "KYC Status:")
	pdf.SetFont("Arial", "B", 11)
	if att.KycStatus == domain.KycStatusVerified {
		pdf.SetTextColor(0, 128, 0)
	} else {
		pdf.SetTextColor(255, 0, 0)
	}
	pdf.Cell(0, 6, string(att.KycStatus))
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(40, 6, "AML Risk Level:")
	pdf.SetFont("Arial", "B", 11)
	switch att.AmlRiskLevel {
	case domain.RiskLevelLow:
		pdf.SetTextColor(0, 128, 0)
	case domain.RiskLevelMedium:
		pdf.SetTextColor(255, 165, 0)
	default:
		pdf.SetTextColor(255, 0, 0)
	}
	pdf.Cell(0, 6, string(att.AmlRiskLevel))
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(40, 6, "Sanctions:")
	pdf.SetFont("Arial", "B", 11)
	if att.SanctionsCleared {
		pdf.SetTextColor(0, 128, 0)
		pdf.Cell(0, 6, "Cleared")
	} else {
		pdf.SetTextColor(255, 0, 0)
		pdf.Cell(0, 6, "Not cleared")
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, "Validity")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(40, 6, "Issued:")
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, att.CreatedAt.Format(time.RFC3339))
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(40, 6, "Expires:")
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, att.ExpiresAt.Format(time.RFC3339))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, fmt.Sprintf("Proof commitment: %s", att.ProofHash), "", "", false)
	pdf.MultiCell(0, 5, "This report summarizes a privacy-preserving compliance attestation. The underlying identity and risk evidence remains off-chain and unrevealed.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}

	return buf.Bytes(), nil
}
