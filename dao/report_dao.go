// api/dao/report_dao.go
package dao

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/oryxsign/etaverify/api/audit"
	compliance_model "github.com/oryxsign/etaverify/api/compliance/model"
	eta_errors "github.com/oryxsign/etaverify/api/errors"
	logger "github.com/oryxsign/etaverify/api/logging"
	"github.com/oryxsign/etaverify/api/model"
	eta_neo4j "github.com/oryxsign/etaverify/api/model/neo4j"
	helper_util "github.com/oryxsign/etaverify/api/util/helper"
)

type ReportDAO struct {
	Driver       neo4j.Driver
	AuditService audit.Service
}

func NewReportDAO(driver neo4j.Driver, auditService audit.Service) *ReportDAO {
	dao := &ReportDAO{Driver: driver, AuditService: auditService}
	// Ensure unique constraint on Report ID
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint", zap.Error(err))
	}
	return dao
}

// EnsureUniqueConstraint ensures the unique constraint on the Report ID
func (dao *ReportDAO) EnsureUniqueConstraint(ctx context.Context) error {
	logger.Info("Ensuring unique constraint on Report ID")
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer func() {
		if err := session.Close(); err != nil {
			logger.Error("Failed to close Neo4j session", zap.Error(err))
		}
	}()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE CONSTRAINT unique_report_id IF NOT EXISTS
        FOR (r:` + eta_neo4j.LabelReport + `) REQUIRE r.id IS UNIQUE
        `
		_, err := transaction.Run(query, nil)
		if err != nil {
			logger.Error("Failed to create unique constraint", zap.Error(err))
			return nil, fmt.Errorf("failed to create unique constraint: %w", err)
		}
		return nil, nil
	})
	if err != nil {
		logger.Error("Failed to ensure unique constraint on Report ID", zap.Error(err))
		return err
	}

	logger.Info("Successfully ensured unique constraint on Report ID")
	return nil
}

// CreateReport persists an evaluation outcome. Signer and document are
// stored as metadata nodes only; the document content never enters the
// graph.
func (dao *ReportDAO) CreateReport(ctx context.Context, report compliance_model.ComplianceReport, signature model.SignatureRecord, document model.DocumentRecord) (string, error) {
	start := time.Now()
	logger.Info("Persisting compliance report",
		zap.String("documentID", document.ID),
		zap.String("signerID", signature.SignerID))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	if report.ID == "" {
		report.ID = uuid.New().String()
	}

	result, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		// First, check if the report already exists
		checkQuery := `
        MATCH (r:` + eta_neo4j.LabelReport + ` {id: $id})
        RETURN r.id
        `
		checkResult, err := transaction.Run(checkQuery, map[string]interface{}{"id": report.ID})
		if err != nil {
			return nil, eta_errors.ErrDatabaseOperation
		}
		if checkResult.Next() {
			return nil, eta_errors.ErrReportConflict
		}

		query := `
            MERGE (s:` + eta_neo4j.LabelSigner + ` {id: $signerId})
            MERGE (d:` + eta_neo4j.LabelDocument + ` {id: $documentId})
            ON CREATE SET d += $docProps
            ON MATCH SET d += $docProps
            MERGE (s)-[:` + eta_neo4j.RelSigned + `]->(d)
            CREATE (r:` + eta_neo4j.LabelReport + ` {id: $reportId})
            SET r += $reportProps
            MERGE (d)-[:` + eta_neo4j.RelEvaluatedBy + `]->(r)
            RETURN r.id as id
        `

		sectionsJSON, _ := json.Marshal(report.Sections)
		issuesJSON, _ := json.Marshal(report.Issues)
		recommendationsJSON, _ := json.Marshal(report.Recommendations)

		reportProps := map[string]interface{}{
			"signerId":        signature.SignerID,
			"documentId":      document.ID,
			"compliant":       report.Compliant,
			"score":           report.Score,
			"timestamp":       report.Timestamp.Format(time.RFC3339),
			"sections":        string(sectionsJSON),
			"issues":          string(issuesJSON),
			"recommendations": string(recommendationsJSON),
		}
		// Per-section scores as flat properties so stats can aggregate in
		// Cypher without touching the JSON blob.
		for kind, section := range report.Sections {
			reportProps["score_"+string(kind)] = section.Score
		}

		parameters := map[string]interface{}{
			"signerId":   signature.SignerID,
			"documentId": document.ID,
			"reportId":   report.ID,
			"docProps": map[string]interface{}{
				"hash":      document.Hash,
				"format":    document.Format,
				"size":      document.Size,
				"createdAt": document.CreatedAt.Format(time.RFC3339),
			},
			"reportProps": reportProps,
		}

		createResult, err := transaction.Run(query, parameters)
		if err != nil {
			return nil, eta_errors.ErrDatabaseOperation
		}
		if createResult.Next() {
			id, found := createResult.Record().Get("id")
			if !found {
				return nil, eta_errors.ErrInternalServer
			}
			return id, nil
		}
		return nil, eta_errors.ErrInternalServer
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to persist report",
			zap.Error(err),
			zap.String("documentID", document.ID),
			zap.Duration("duration", duration))
		return "", err
	}

	reportID := fmt.Sprintf("%v", result)
	logger.Info("Report persisted successfully",
		zap.String("reportID", reportID),
		zap.Duration("duration", duration))

	auditLog := audit.AuditLog{
		Timestamp:    time.Now(),
		SignerID:     signature.SignerID,
		DocumentID:   document.ID,
		Action:       "EVALUATE_COMPLIANCE",
		ReportID:     reportID,
		Compliant:    report.Compliant,
		OverallScore: report.Score,
	}
	if err := dao.AuditService.LogEvaluation(ctx, auditLog); err != nil {
		logger.Error("Failed to create audit log", zap.Error(err))
	}
	return reportID, nil
}

// GetReport retrieves a persisted report by its ID
func (dao *ReportDAO) GetReport(ctx context.Context, reportID string) (*compliance_model.ComplianceReport, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (r:` + eta_neo4j.LabelReport + ` {id: $id})
        RETURN r
        `
		queryResult, err := transaction.Run(query, map[string]interface{}{"id": reportID})
		if err != nil {
			return nil, eta_errors.ErrDatabaseOperation
		}
		if queryResult.Next() {
			node, found := queryResult.Record().Get("r")
			if !found {
				return nil, eta_errors.ErrInternalServer
			}
			return parseReportNode(node)
		}
		return nil, eta_errors.ErrReportNotFound
	})

	if err != nil {
		if err != eta_errors.ErrReportNotFound {
			logger.Error("Failed to get report", zap.Error(err), zap.String("reportID", reportID))
		}
		return nil, err
	}

	return result.(*compliance_model.ComplianceReport), nil
}

// ListReports retrieves persisted reports ordered by evaluation time,
// optionally filtered by signer and document.
func (dao *ReportDAO) ListReports(ctx context.Context, criteria compliance_model.ReportSearchCriteria, limit, offset int) ([]*compliance_model.ComplianceReport, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (r:` + eta_neo4j.LabelReport + `)
        WHERE ($signerId = '' OR r.signerId = $signerId)
          AND ($documentId = '' OR r.documentId = $documentId)
        RETURN r
        ORDER BY r.timestamp DESC
        SKIP $offset LIMIT $limit
        `
		parameters := map[string]interface{}{
			"signerId":   criteria.SignerID,
			"documentId": criteria.DocumentID,
			"offset":     offset,
			"limit":      limit,
		}
		queryResult, err := transaction.Run(query, parameters)
		if err != nil {
			return nil, eta_errors.ErrDatabaseOperation
		}

		var reports []*compliance_model.ComplianceReport
		for queryResult.Next() {
			node, found := queryResult.Record().Get("r")
			if !found {
				continue
			}
			report, err := parseReportNode(node)
			if err != nil {
				logger.Warn("Skipping unparsable report node", zap.Error(err))
				continue
			}
			reports = append(reports, report)
		}
		return reports, nil
	})

	if err != nil {
		logger.Error("Failed to list reports", zap.Error(err))
		return nil, err
	}

	return result.([]*compliance_model.ComplianceReport), nil
}

// DeleteReport removes a persisted report
func (dao *ReportDAO) DeleteReport(ctx context.Context, reportID string) error {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	result, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (r:` + eta_neo4j.LabelReport + ` {id: $id})
        WITH r, r.signerId AS signerId, r.documentId AS documentId
        DETACH DELETE r
        RETURN signerId, documentId
        `
		queryResult, err := transaction.Run(query, map[string]interface{}{"id": reportID})
		if err != nil {
			return nil, eta_errors.ErrDatabaseOperation
		}
		if queryResult.Next() {
			signerID, _ := queryResult.Record().Get("signerId")
			documentID, _ := queryResult.Record().Get("documentId")
			return []string{fmt.Sprintf("%v", signerID), fmt.Sprintf("%v", documentID)}, nil
		}
		return nil, eta_errors.ErrReportNotFound
	})

	if err != nil {
		if err != eta_errors.ErrReportNotFound {
			logger.Error("Failed to delete report", zap.Error(err), zap.String("reportID", reportID))
		}
		return err
	}

	ids := result.([]string)
	auditLog := audit.AuditLog{
		Timestamp:  time.Now(),
		SignerID:   ids[0],
		DocumentID: ids[1],
		Action:     "DELETE_REPORT",
		ReportID:   reportID,
	}
	if err := dao.AuditService.LogEvaluation(ctx, auditLog); err != nil {
		logger.Error("Failed to create audit log", zap.Error(err))
	}

	logger.Info("Report deleted successfully", zap.String("reportID", reportID))
	return nil
}

// GetComplianceStats aggregates persisted evaluation outcomes.
func (dao *ReportDAO) GetComplianceStats(ctx context.Context) (*compliance_model.ComplianceStats, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (r:` + eta_neo4j.LabelReport + `)
        RETURN count(r) AS reportCount,
               avg(r.score) AS averageScore,
               sum(CASE WHEN r.compliant THEN 1 ELSE 0 END) AS compliantCount,
               avg(r.score_section17) AS avgSection17,
               avg(r.score_section20) AS avgSection20,
               avg(r.score_section21) AS avgSection21,
               avg(r.score_section25) AS avgSection25,
               avg(r.score_chapter4) AS avgChapter4
        `
		queryResult, err := transaction.Run(query, nil)
		if err != nil {
			return nil, eta_errors.ErrDatabaseOperation
		}
		if !queryResult.Next() {
			return &compliance_model.ComplianceStats{
				SectionAverages: map[compliance_model.SectionKind]float64{},
			}, nil
		}

		return parseStatsRecord(queryResult.Record()), nil
	})

	if err != nil {
		logger.Error("Failed to compute compliance stats", zap.Error(err))
		return nil, err
	}

	return result.(*compliance_model.ComplianceStats), nil
}

// parseStatsRecord builds stats from the aggregation row. The compliant
// ratio is derived in Go: on an empty graph the Cypher aggregate still
// yields one row with count 0, and dividing there would produce NaN, which
// cannot be marshalled to JSON.
func parseStatsRecord(record *neo4j.Record) *compliance_model.ComplianceStats {
	stats := &compliance_model.ComplianceStats{
		ReportCount:  int(asInt64(record, "reportCount")),
		AverageScore: asFloat64(record, "averageScore"),
		SectionAverages: map[compliance_model.SectionKind]float64{
			compliance_model.SectionLegalRecognition:     asFloat64(record, "avgSection17"),
			compliance_model.SectionElectronicSignatures: asFloat64(record, "avgSection20"),
			compliance_model.SectionOriginalInformation:  asFloat64(record, "avgSection21"),
			compliance_model.SectionAdmissibility:        asFloat64(record, "avgSection25"),
			compliance_model.SectionConsumerProtection:   asFloat64(record, "avgChapter4"),
		},
	}
	if stats.ReportCount > 0 {
		stats.CompliantRatio = float64(asInt64(record, "compliantCount")) / float64(stats.ReportCount)
	}
	return stats
}

func parseReportNode(value interface{}) (*compliance_model.ComplianceReport, error) {
	node, ok := value.(neo4j.Node)
	if !ok {
		return nil, fmt.Errorf("unexpected node type %T", value)
	}
	props := node.Props

	report := &compliance_model.ComplianceReport{
		ID:         asString(props["id"]),
		SignerID:   asString(props["signerId"]),
		DocumentID: asString(props["documentId"]),
		Compliant:  props["compliant"] == true,
	}
	if score, ok := props["score"].(int64); ok {
		report.Score = int(score)
	}
	if ts, err := helper_util.ParseNullableTime(props["timestamp"]); err == nil && ts != nil {
		report.Timestamp = *ts
	}

	if err := json.Unmarshal([]byte(asString(props["sections"])), &report.Sections); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sections: %w", err)
	}
	if err := json.Unmarshal([]byte(asString(props["issues"])), &report.Issues); err != nil {
		return nil, fmt.Errorf("failed to unmarshal issues: %w", err)
	}
	if err := json.Unmarshal([]byte(asString(props["recommendations"])), &report.Recommendations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recommendations: %w", err)
	}

	return report, nil
}

func asString(value interface{}) string {
	if s, ok := value.(string); ok {
		return s
	}
	return ""
}

func asInt64(record *neo4j.Record, key string) int64 {
	value, found := record.Get(key)
	if !found {
		return 0
	}
	if n, ok := value.(int64); ok {
		return n
	}
	return 0
}

func asFloat64(record *neo4j.Record, key string) float64 {
	value, found := record.Get(key)
	if !found {
		return 0
	}
	switch n := value.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	}
	return 0
}
