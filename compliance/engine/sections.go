// api/compliance/engine/sections.go
package engine

import (
	"fmt"
	"strings"

	compliance_model "github.com/oryxsign/etaverify/api/compliance/model"
	"github.com/oryxsign/etaverify/api/model"
)

// Section 17: legal recognition of data messages. A document can only be
// recognised when it is identifiable, has a declared format and carries
// displayable content.
func (e *ComplianceEvaluator) evaluateLegalRecognition(signature model.SignatureRecord, document model.DocumentRecord) compliance_model.ComplianceSection {
	hasIdentity := document.ID != "" && signature.DocumentID != ""
	hasFormat := document.Format != "" && document.Format != "unknown"
	hasContent := document.Content != ""

	requirements := []compliance_model.ComplianceRequirement{
		{
			ID:          "17-1",
			Description: "Document and signature reference a valid document identifier",
			Met:         hasIdentity,
			Evidence:    fmt.Sprintf("document id %q, signature references %q", document.ID, signature.DocumentID),
			Critical:    true,
		},
		{
			ID:          "17-2",
			Description: "Document format is declared",
			Met:         hasFormat,
			Evidence:    evidenceValue("format", document.Format),
			Critical:    false,
		},
		{
			ID:          "17-3",
			Description: "Document content is available for display",
			Met:         hasContent,
			Evidence:    fmt.Sprintf("content length %d", len(document.Content)),
			Critical:    true,
		},
	}

	return buildSection(
		compliance_model.SectionLegalRecognition,
		"Section 17 - Legal Recognition",
		"Legal recognition of data messages and electronic documents",
		requirements,
		[]string{
			"Document does not meet the legal recognition requirements of Section 17",
		},
		[]string{
			"Ensure the document carries an identifier, a declared format and non-empty content",
		},
	)
}

// Section 20: requirements for a valid electronic signature: identifiable
// signatory, sole control at the time of signing and a tamper-detection
// linkage.
func (e *ComplianceEvaluator) evaluateElectronicSignatures(signature model.SignatureRecord, document model.DocumentRecord) compliance_model.ComplianceSection {
	hasSigner := signature.SignerID != ""
	identifiable := hasSigner ||
		(signature.Certificate != nil && signature.Certificate.SerialNumber != "") ||
		(signature.Biometric != nil && signature.Biometric.DataHash != "")
	soleControl := !signature.CreatedAt.IsZero() && signature.IPAddress != "" && signature.UserAgent != ""
	hasVerification := signature.VerificationHash != ""

	requirements := []compliance_model.ComplianceRequirement{
		{
			ID:          "20-1",
			Description: "Signer identifier is present",
			Met:         hasSigner,
			Evidence:    evidenceValue("signer id", signature.SignerID),
			Critical:    true,
		},
		{
			ID:          "20-2",
			Description: "Signatory is identifiable through at least one channel",
			Met:         identifiable,
			Evidence:    identityEvidence(signature),
			Critical:    true,
		},
		{
			ID:          "20-3",
			Description: "Signature was created under the sole control of the signatory",
			Met:         soleControl,
			Evidence:    fmt.Sprintf("timestamp %v, ip %q, client %q", !signature.CreatedAt.IsZero(), signature.IPAddress, signature.UserAgent),
			Critical:    false,
		},
		{
			ID:          "20-4",
			Description: "Verification hash links the signature to the signed content",
			Met:         hasVerification,
			Evidence:    evidenceValue("verification hash", signature.VerificationHash),
			Critical:    true,
		},
	}

	return buildSection(
		compliance_model.SectionElectronicSignatures,
		"Section 20 - Electronic Signatures",
		"Validity requirements for electronic and digital signatures",
		requirements,
		[]string{
			"Signature does not satisfy the electronic signature requirements of Section 20",
		},
		[]string{
			"Capture signer identity, origin address and client metadata at signing time",
			"Attach a verification hash to every signature for tamper detection",
		},
	)
}

// Section 21: integrity of original information. The document must be
// hashed, timestamped and unmodified since creation.
func (e *ComplianceEvaluator) evaluateOriginalInformation(signature model.SignatureRecord, document model.DocumentRecord) compliance_model.ComplianceSection {
	integrity := document.Hash != "" && !document.CreatedAt.IsZero() && !document.Modified()
	hasContent := document.Content != ""
	hasFormat := document.Format != ""

	requirements := []compliance_model.ComplianceRequirement{
		{
			ID:          "21-1",
			Description: "Information integrity has been maintained since creation",
			Met:         integrity,
			Evidence:    fmt.Sprintf("hash present %v, created %v, modified after creation %v", document.Hash != "", !document.CreatedAt.IsZero(), document.Modified()),
			Critical:    true,
		},
		{
			ID:          "21-2",
			Description: "Original content is accessible",
			Met:         hasContent,
			Evidence:    fmt.Sprintf("content length %d", len(document.Content)),
			Critical:    true,
		},
		{
			ID:          "21-3",
			Description: "Presentation format is identified",
			Met:         hasFormat,
			Evidence:    evidenceValue("format", document.Format),
			Critical:    false,
		},
	}

	return buildSection(
		compliance_model.SectionOriginalInformation,
		"Section 21 - Original Information",
		"Retention and integrity of information in its original form",
		requirements,
		[]string{
			"Document integrity cannot be demonstrated as required by Section 21",
		},
		[]string{
			"Record a content hash and creation timestamp, and keep signed documents immutable",
		},
	)
}

// Section 25: admissibility and evidential weight. The checks here are
// deliberately redundant with sections 20 and 21: each mirrors one factor a
// court weighs when admitting an electronic record.
func (e *ComplianceEvaluator) evaluateAdmissibility(signature model.SignatureRecord, document model.DocumentRecord) compliance_model.ComplianceSection {
	admissible := !signature.CreatedAt.IsZero() && signature.VerificationHash != "" &&
		document.Hash != "" && signature.SignerID != ""
	reliableGeneration := !signature.CreatedAt.IsZero() && !document.CreatedAt.IsZero() && signature.IPAddress != ""
	integrityVerifiable := signature.VerificationHash != "" && document.Hash != ""
	originatorIdentified := signature.SignerID != "" && !signature.CreatedAt.IsZero()

	requirements := []compliance_model.ComplianceRequirement{
		{
			ID:          "25-1",
			Description: "Record is admissible as evidence",
			Met:         admissible,
			Evidence:    fmt.Sprintf("signature timestamp %v, verification hash %v, document hash %v, signer id %v", !signature.CreatedAt.IsZero(), signature.VerificationHash != "", document.Hash != "", signature.SignerID != ""),
			Critical:    true,
		},
		{
			ID:          "25-2",
			Description: "Manner of generation is reliable",
			Met:         reliableGeneration,
			Evidence:    fmt.Sprintf("signature timestamp %v, document timestamp %v, origin ip %v", !signature.CreatedAt.IsZero(), !document.CreatedAt.IsZero(), signature.IPAddress != ""),
			Critical:    false,
		},
		{
			ID:          "25-3",
			Description: "Integrity of the record can be verified",
			Met:         integrityVerifiable,
			Evidence:    fmt.Sprintf("verification hash %v, document hash %v", signature.VerificationHash != "", document.Hash != ""),
			Critical:    true,
		},
		{
			ID:          "25-4",
			Description: "Originator of the record is identified",
			Met:         originatorIdentified,
			Evidence:    fmt.Sprintf("signer id %v, signature timestamp %v", signature.SignerID != "", !signature.CreatedAt.IsZero()),
			Critical:    false,
		},
	}

	return buildSection(
		compliance_model.SectionAdmissibility,
		"Section 25 - Admissibility and Evidential Weight",
		"Admissibility of electronic records as evidence",
		requirements,
		[]string{
			"Record may carry reduced evidential weight under Section 25",
		},
		[]string{
			"Preserve signature timestamps, hashes and origin metadata to support admissibility",
		},
	)
}

// Chapter 4: consumer protection. All checks are keyword-presence
// heuristics over the document text, never semantic analysis, and are marked
// as such on the requirements.
func (e *ComplianceEvaluator) evaluateConsumerProtection(signature model.SignatureRecord, document model.DocumentRecord) compliance_model.ComplianceSection {
	content := strings.ToLower(document.Content)

	hasTerms := containsAny(content, "terms", "conditions", "agreement")
	mentionsSignature := containsAny(content, "electronic signature", "digital signature")
	hasWithdrawal := containsAny(content, "withdraw", "cancel", "termination")
	hasPrivacy := containsAny(content, "privacy", "data protection", "gdpr")

	requirements := []compliance_model.ComplianceRequirement{
		{
			ID:          "ch4-1",
			Description: "Terms and conditions are disclosed",
			Met:         hasTerms,
			Evidence:    keywordEvidence(hasTerms, "terms/conditions/agreement"),
			Critical:    false,
			Heuristic:   true,
		},
		{
			ID:          "ch4-2",
			Description: "Use of an electronic signature is disclosed",
			Met:         mentionsSignature,
			Evidence:    keywordEvidence(mentionsSignature, "electronic/digital signature"),
			Critical:    false,
			Heuristic:   true,
		},
		{
			ID:          "ch4-3",
			Description: "Withdrawal or cancellation rights are described",
			Met:         hasWithdrawal,
			Evidence:    keywordEvidence(hasWithdrawal, "withdraw/cancel/termination"),
			Critical:    false,
			Heuristic:   true,
		},
		{
			ID:          "ch4-4",
			Description: "Privacy and data protection terms are present",
			Met:         hasPrivacy,
			Evidence:    keywordEvidence(hasPrivacy, "privacy/data protection/gdpr"),
			Critical:    true,
			Heuristic:   true,
		},
	}

	return buildSection(
		compliance_model.SectionConsumerProtection,
		"Chapter 4 - Consumer Protection",
		"Consumer protection disclosures in electronic transactions",
		requirements,
		[]string{
			"Document lacks the consumer protection disclosures expected by Chapter 4",
		},
		[]string{
			"Include terms and conditions, signature disclosure, withdrawal rights and a privacy statement in the document text",
		},
	)
}

func containsAny(content string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(content, kw) {
			return true
		}
	}
	return false
}

func evidenceValue(field, value string) string {
	if value == "" {
		return field + " missing"
	}
	return fmt.Sprintf("%s %q", field, value)
}

func keywordEvidence(found bool, keywords string) string {
	if found {
		return "keyword match: " + keywords
	}
	return "no keyword match: " + keywords
}

func identityEvidence(signature model.SignatureRecord) string {
	channels := make([]string, 0, 3)
	if signature.SignerID != "" {
		channels = append(channels, "signer id")
	}
	if signature.Certificate != nil && signature.Certificate.SerialNumber != "" {
		channels = append(channels, "certificate serial")
	}
	if signature.Biometric != nil && signature.Biometric.DataHash != "" {
		channels = append(channels, "biometric hash")
	}
	if len(channels) == 0 {
		return "no identity channel present"
	}
	return "identity via " + strings.Join(channels, ", ")
}
