// api/compliance/engine/sections_test.go
package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oryxsign/etaverify/api/compliance/engine"
	compliance_model "github.com/oryxsign/etaverify/api/compliance/model"
	"github.com/oryxsign/etaverify/api/model"
)

func requirementByID(t *testing.T, section compliance_model.ComplianceSection, id string) compliance_model.ComplianceRequirement {
	t.Helper()
	for _, r := range section.Requirements {
		if r.ID == id {
			return r
		}
	}
	t.Fatalf("requirement %s not found in section %s", id, section.Name)
	return compliance_model.ComplianceRequirement{}
}

func TestSignatoryIdentifiableThroughAnyChannel(t *testing.T) {
	evaluator := engine.NewComplianceEvaluator()

	cases := []struct {
		name   string
		mutate func(*model.SignatureRecord)
		met    bool
	}{
		{"signer id only", func(s *model.SignatureRecord) {
			s.Certificate = nil
			s.Biometric = nil
		}, true},
		{"certificate only", func(s *model.SignatureRecord) {
			s.SignerID = ""
			s.Biometric = nil
		}, true},
		{"biometric only", func(s *model.SignatureRecord) {
			s.SignerID = ""
			s.Certificate = nil
		}, true},
		{"no channel", func(s *model.SignatureRecord) {
			s.SignerID = ""
			s.Certificate = nil
			s.Biometric = nil
		}, false},
		{"empty certificate serial does not count", func(s *model.SignatureRecord) {
			s.SignerID = ""
			s.Certificate = &model.CertificateInfo{Issuer: "CN=OryxSign CA"}
			s.Biometric = nil
		}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			signature := fullSignature()
			tc.mutate(&signature)

			report := evaluator.Evaluate(signature, fullDocument())
			s20 := report.Sections[compliance_model.SectionElectronicSignatures]
			assert.Equal(t, tc.met, requirementByID(t, s20, "20-2").Met)
		})
	}
}

func TestSoleControlNeedsTimestampOriginAndClient(t *testing.T) {
	evaluator := engine.NewComplianceEvaluator()

	for _, tc := range []struct {
		name   string
		mutate func(*model.SignatureRecord)
	}{
		{"missing ip", func(s *model.SignatureRecord) { s.IPAddress = "" }},
		{"missing user agent", func(s *model.SignatureRecord) { s.UserAgent = "" }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			signature := fullSignature()
			tc.mutate(&signature)

			report := evaluator.Evaluate(signature, fullDocument())
			s20 := report.Sections[compliance_model.SectionElectronicSignatures]
			assert.False(t, requirementByID(t, s20, "20-3").Met)
		})
	}
}

func TestUnknownFormatFailsLegalRecognition(t *testing.T) {
	evaluator := engine.NewComplianceEvaluator()
	document := fullDocument()
	document.Format = "unknown"

	report := evaluator.Evaluate(fullSignature(), document)
	s17 := report.Sections[compliance_model.SectionLegalRecognition]
	assert.False(t, requirementByID(t, s17, "17-2").Met)

	// Section 21 only needs a format to be present, sentinel or not.
	s21 := report.Sections[compliance_model.SectionOriginalInformation]
	assert.True(t, requirementByID(t, s21, "21-3").Met)
}

func TestConsumerProtectionKeywordsAreCaseInsensitive(t *testing.T) {
	evaluator := engine.NewComplianceEvaluator()
	document := fullDocument()
	document.Content = "TERMS AND CONDITIONS. DIGITAL SIGNATURE required. You may CANCEL. GDPR applies."

	report := evaluator.Evaluate(fullSignature(), document)
	ch4 := report.Sections[compliance_model.SectionConsumerProtection]
	assert.Equal(t, 100, ch4.Score)
	assert.True(t, ch4.Compliant)
	for _, r := range ch4.Requirements {
		assert.True(t, r.Heuristic, "requirement %s should be marked heuristic", r.ID)
	}
}

func TestConsumerProtectionLenientThreshold(t *testing.T) {
	evaluator := engine.NewComplianceEvaluator()
	document := fullDocument()
	// Three of four keywords present: 75 passes the 60 threshold, which
	// would fail the structural sections' 80.
	document.Content = "terms of the agreement, electronic signature disclosure, privacy notice"

	report := evaluator.Evaluate(fullSignature(), document)
	ch4 := report.Sections[compliance_model.SectionConsumerProtection]
	assert.Equal(t, 75, ch4.Score)
	assert.True(t, ch4.Compliant)
	assert.Empty(t, ch4.Issues)
}

func TestCriticalFlagsDoNotWeightScoring(t *testing.T) {
	evaluator := engine.NewComplianceEvaluator()
	signature := fullSignature()
	signature.VerificationHash = "" // critical requirement

	report := evaluator.Evaluate(signature, fullDocument())
	s20 := report.Sections[compliance_model.SectionElectronicSignatures]

	// One failed requirement out of four costs exactly a quarter of the
	// score, critical or not.
	assert.Equal(t, 75, s20.Score)
	assert.True(t, requirementByID(t, s20, "20-4").Critical)
}
