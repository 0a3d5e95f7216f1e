// api/model/neo4j/relationships.go
package eta_neo4j

// Relationship Types
const (
	// RelSigned represents the relationship between a signer and a document
	RelSigned = "SIGNED"

	// RelEvaluatedBy represents the relationship between a document and a compliance report
	RelEvaluatedBy = "EVALUATED_BY"
)
