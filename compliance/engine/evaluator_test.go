// api/compliance/engine/evaluator_test.go
package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oryxsign/etaverify/api/compliance/engine"
	compliance_model "github.com/oryxsign/etaverify/api/compliance/model"
	"github.com/oryxsign/etaverify/api/model"
)

const compliantContent = "These terms and conditions govern the agreement. " +
	"By applying an electronic signature you accept them. " +
	"You may withdraw consent at any time. " +
	"Personal data is handled according to our privacy policy."

func fullDocument() model.DocumentRecord {
	return model.DocumentRecord{
		ID:        "doc-1",
		Content:   compliantContent,
		Hash:      "sha256:4f2d8c11",
		Format:    "pdf",
		Size:      2048,
		CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func fullSignature() model.SignatureRecord {
	return model.SignatureRecord{
		SignerID:   "signer-1",
		DocumentID: "doc-1",
		Type:       model.SignatureTypeDigital,
		CreatedAt:  time.Date(2024, 3, 1, 10, 5, 0, 0, time.UTC),
		IPAddress:  "196.216.186.2",
		UserAgent:  "Mozilla/5.0",
		Certificate: &model.CertificateInfo{
			SerialNumber: "0A1B2C",
			Issuer:       "CN=OryxSign CA",
			ValidFrom:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			ValidUntil:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		Biometric: &model.BiometricInfo{
			Type:     "signature-pad",
			DataHash: "sha256:77aa",
			DeviceID: "pad-9",
		},
		SignatureData:    "c2lnbmF0dXJl",
		VerificationHash: "sha256:9e8d7c",
	}
}

func TestEvaluateFullyCompliantPair(t *testing.T) {
	evaluator := engine.NewComplianceEvaluator()
	report := evaluator.Evaluate(fullSignature(), fullDocument())

	assert.True(t, report.Compliant)
	assert.GreaterOrEqual(t, report.Score, 90)
	assert.Empty(t, report.Issues)
	assert.Empty(t, report.Recommendations)
	assert.Len(t, report.Sections, 5)
	for kind, section := range report.Sections {
		assert.True(t, section.Compliant, "section %s should be compliant", kind)
		assert.Equal(t, 100, section.Score, "section %s", kind)
	}
}

func TestEvaluateMissingVerificationAndOrigin(t *testing.T) {
	evaluator := engine.NewComplianceEvaluator()
	signature := fullSignature()
	signature.VerificationHash = ""
	signature.IPAddress = ""
	signature.UserAgent = ""

	report := evaluator.Evaluate(signature, fullDocument())

	// Sole-control and tamper-detection checks fail.
	s20 := report.Sections[compliance_model.SectionElectronicSignatures]
	assert.Equal(t, 50, s20.Score)
	assert.False(t, s20.Compliant)
	assert.NotEmpty(t, s20.Issues)

	// Admissibility, reliability and integrity checks fail.
	s25 := report.Sections[compliance_model.SectionAdmissibility]
	assert.Equal(t, 25, s25.Score)
	assert.False(t, s25.Compliant)

	assert.Equal(t, 75, report.Score)
}

func TestEvaluateEmptyDocumentContent(t *testing.T) {
	evaluator := engine.NewComplianceEvaluator()
	document := fullDocument()
	document.Content = ""

	report := evaluator.Evaluate(fullSignature(), document)

	s17 := report.Sections[compliance_model.SectionLegalRecognition]
	assert.Equal(t, 67, s17.Score)
	assert.False(t, s17.Compliant)

	s21 := report.Sections[compliance_model.SectionOriginalInformation]
	assert.Equal(t, 67, s21.Score)
	assert.False(t, s21.Compliant)

	// No text means no keyword matches either.
	ch4 := report.Sections[compliance_model.SectionConsumerProtection]
	assert.Equal(t, 0, ch4.Score)

	assert.Equal(t, 67, report.Score)
	assert.False(t, report.Compliant)
}

func TestEvaluateDocumentWithoutConsumerKeywords(t *testing.T) {
	evaluator := engine.NewComplianceEvaluator()
	document := fullDocument()
	document.Content = "lorem ipsum dolor sit amet"

	report := evaluator.Evaluate(fullSignature(), document)

	ch4 := report.Sections[compliance_model.SectionConsumerProtection]
	assert.Equal(t, 0, ch4.Score)
	assert.False(t, ch4.Compliant)

	// The low section still enters the unweighted mean.
	assert.Equal(t, 80, report.Score)
	assert.True(t, report.Compliant)
}

func TestEvaluateModifiedDocument(t *testing.T) {
	evaluator := engine.NewComplianceEvaluator()
	document := fullDocument()
	modified := document.CreatedAt.Add(2 * time.Hour)
	document.ModifiedAt = &modified

	report := evaluator.Evaluate(fullSignature(), document)

	s21 := report.Sections[compliance_model.SectionOriginalInformation]
	assert.Equal(t, 67, s21.Score)
	assert.False(t, s21.Compliant)
	assert.False(t, s21.Requirements[0].Met, "integrity requirement should fail")
	assert.True(t, s21.Requirements[1].Met)
	assert.True(t, s21.Requirements[2].Met)

	// A modification timestamp equal to creation is not a modification.
	document.ModifiedAt = &document.CreatedAt
	report = evaluator.Evaluate(fullSignature(), document)
	assert.True(t, report.Sections[compliance_model.SectionOriginalInformation].Requirements[0].Met)
}

func TestEvaluateEmptyInputsNeverPanics(t *testing.T) {
	evaluator := engine.NewComplianceEvaluator()
	report := evaluator.Evaluate(model.SignatureRecord{}, model.DocumentRecord{})

	assert.False(t, report.Compliant)
	assert.Equal(t, 0, report.Score)
	assert.Len(t, report.Sections, 5)
	for kind, section := range report.Sections {
		assert.False(t, section.Compliant, "section %s", kind)
		assert.Equal(t, 0, section.Score, "section %s", kind)
		assert.NotEmpty(t, section.Issues, "section %s", kind)
	}
	assert.NotEmpty(t, report.Issues)
	assert.NotEmpty(t, report.Recommendations)
}

func TestEvaluateInvariants(t *testing.T) {
	evaluator := engine.NewComplianceEvaluator()

	inputs := []struct {
		name      string
		signature model.SignatureRecord
		document  model.DocumentRecord
	}{
		{"full", fullSignature(), fullDocument()},
		{"empty", model.SignatureRecord{}, model.DocumentRecord{}},
		{"signature only", fullSignature(), model.DocumentRecord{}},
		{"document only", model.SignatureRecord{}, fullDocument()},
	}

	for _, tc := range inputs {
		t.Run(tc.name, func(t *testing.T) {
			report := evaluator.Evaluate(tc.signature, tc.document)

			assert.GreaterOrEqual(t, report.Score, 0)
			assert.LessOrEqual(t, report.Score, 100)
			assert.Equal(t, report.Score >= 70, report.Compliant)

			for kind, section := range report.Sections {
				assert.GreaterOrEqual(t, section.Score, 0)
				assert.LessOrEqual(t, section.Score, 100)
				assert.Equal(t, section.Score >= kind.Threshold(), section.Compliant, "section %s", kind)
			}

			assertNoDuplicates(t, report.Issues)
			assertNoDuplicates(t, report.Recommendations)
		})
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	evaluator := engine.NewComplianceEvaluator()
	signature, document := fullSignature(), fullDocument()
	signature.IPAddress = "" // force a partially failing report

	first := evaluator.Evaluate(signature, document)
	second := evaluator.Evaluate(signature, document)

	// Identical apart from the evaluation timestamp.
	first.Timestamp = time.Time{}
	second.Timestamp = time.Time{}
	assert.Equal(t, first, second)
}

func assertNoDuplicates(t *testing.T, values []string) {
	t.Helper()
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		_, dup := seen[v]
		assert.False(t, dup, "duplicate string %q", v)
		seen[v] = struct{}{}
	}
}
