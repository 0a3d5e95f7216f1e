// api/model/signature.go
package model

import (
	"time"
)

type SignatureType string

const (
	SignatureTypeElectronic  SignatureType = "electronic"
	SignatureTypeDigital     SignatureType = "digital"
	SignatureTypeBiometric   SignatureType = "biometric"
	SignatureTypeHandwritten SignatureType = "handwritten"
)

// SignatureRecord describes a signature event bound to a document. The
// VerificationHash is the tamper-detection linkage and is expected on every
// signature regardless of type.
type SignatureRecord struct {
	SignerID         string           `json:"signer_id"`
	DocumentID       string           `json:"document_id"`
	Type             SignatureType    `json:"type"`
	CreatedAt        time.Time        `json:"created_at"`
	IPAddress        string           `json:"ip_address,omitempty"`
	UserAgent        string           `json:"user_agent,omitempty"`
	Certificate      *CertificateInfo `json:"certificate,omitempty"`
	Biometric        *BiometricInfo   `json:"biometric,omitempty"`
	SignatureData    string           `json:"signature_data,omitempty"` // raw digital-signature blob, base64
	VerificationHash string           `json:"verification_hash"`
}

// CertificateInfo carries the metadata of the signing certificate when a
// digital signature was used.
type CertificateInfo struct {
	SerialNumber string    `json:"serial_number"`
	Issuer       string    `json:"issuer"`
	ValidFrom    time.Time `json:"valid_from"`
	ValidUntil   time.Time `json:"valid_until"`
	PublicKey    string    `json:"public_key,omitempty"`
}

// BiometricInfo carries a biometric descriptor; only the hash of the
// captured data is retained.
type BiometricInfo struct {
	Type     string `json:"type"` // e.g. "fingerprint", "signature-pad"
	DataHash string `json:"data_hash"`
	DeviceID string `json:"device_id,omitempty"`
}
