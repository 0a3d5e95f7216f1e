// api/model/neo4j/nodes.go
package eta_neo4j

// Node Labels
const (
	// LabelSigner represents a party that has signed at least one document
	LabelSigner = "SIGNER"

	// LabelDocument represents the metadata of an evaluated document
	LabelDocument = "DOCUMENT"

	// LabelReport represents a persisted compliance evaluation outcome
	LabelReport = "REPORT"
)
