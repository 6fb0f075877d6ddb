package db

import (
	"context"
	"fmt"

	"github.com/prompt-ops/backend/internal/model"
)

// EnsureMetricSchema - prompt_metrics 테이블 생성
func (db *Postgres) EnsureMetricSchema(ctx context.Context) error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS prompt_metrics (
			id BIGSERIAL PRIMARY KEY,
			version_id BIGINT NOT NULL REFERENCES prompt_versions(id),
			model_name TEXT,
			input_tokens INTEGER,
			output_tokens INTEGER,
			total_tokens INTEGER,
			cost_eur DOUBLE PRECISION,
			latency_ms DOUBLE PRECISION,
			quality_score DOUBLE PRECISION,
			accuracy DOUBLE PRECISION,
			temperature DOUBLE PRECISION,
			top_p DOUBLE PRECISION,
			max_tokens INTEGER,
			success BOOLEAN NOT NULL DEFAULT TRUE,
			error_message TEXT,
			metadata JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE INDEX IF NOT EXISTS prompt_metrics_version_id_idx ON prompt_metrics(version_id)`,
		`CREATE INDEX IF NOT EXISTS prompt_metrics_created_at_idx ON prompt_metrics(created_at DESC)`,
	}

	for _, query := range queries {
		if _, err := db.Pool.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to ensure metric schema: %w", err)
		}
	}
	return nil
}

// SaveMetric - 메트릭 한 건 저장
func (db *Postgres) SaveMetric(ctx context.Context, m model.MetricRecord) (int64, error) {
	query := `
		INSERT INTO prompt_metrics
		(version_id, model_name, input_tokens, output_tokens, total_tokens,
		 cost_eur, latency_ms, quality_score, accuracy, temperature, top_p,
		 max_tokens, success, error_message, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())
		RETURNING id
	`

	var id int64
	err := db.Pool.QueryRow(ctx, query,
		m.VersionID,
		m.ModelName,
		m.InputTokens,
		m.OutputTokens,
		m.TotalTokens,
		m.CostEUR,
		m.LatencyMS,
		m.QualityScore,
		m.Accuracy,
		m.Temperature,
		m.TopP,
		m.MaxTokens,
		m.Success,
		m.ErrorMessage,
		m.Metadata,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetMetrics - 버전 하나의 메트릭 전체 조회 (최신순)
func (db *Postgres) GetMetrics(ctx context.Context, versionID int64) ([]model.MetricRecord, error) {
	query := `
		SELECT id, version_id, model_name, input_tokens, output_tokens, total_tokens,
		       cost_eur, latency_ms, quality_score, accuracy, temperature, top_p,
		       max_tokens, success, error_message, metadata, created_at
		FROM prompt_metrics
		WHERE version_id = $1
		ORDER BY created_at DESC
	`

	rows, err := db.Pool.Query(ctx, query, versionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var metrics []model.MetricRecord
	for rows.Next() {
		var m model.MetricRecord
		if err := rows.Scan(
			&m.ID, &m.VersionID, &m.ModelName, &m.InputTokens, &m.OutputTokens, &m.TotalTokens,
			&m.CostEUR, &m.LatencyMS, &m.QualityScore, &m.Accuracy, &m.Temperature, &m.TopP,
			&m.MaxTokens, &m.Success, &m.ErrorMessage, &m.Metadata, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}

	if metrics == nil {
		metrics = []model.MetricRecord{}
	}
	return metrics, nil
}

// GetMetricValues - 버전 하나에서 특정 메트릭 컬럼의 값만 조회 (A/B 테스트용)
//
// column은 화이트리스트로 검증 후 쿼리에 직접 삽입합니다.
func (db *Postgres) GetMetricValues(ctx context.Context, versionID int64, column string) ([]float64, error) {
	allowed := map[string]bool{
		"cost_eur":      true,
		"latency_ms":    true,
		"quality_score": true,
		"accuracy":      true,
		"total_tokens":  true,
	}
	if !allowed[column] {
		return nil, fmt.Errorf("unsupported metric column: %s", column)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM prompt_metrics
		WHERE version_id = $1 AND %s IS NOT NULL
		ORDER BY created_at ASC
	`, column, column)

	rows, err := db.Pool.Query(ctx, query, versionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// GetMetricSummary - 버전 하나의 메트릭 집계
//
// 메트릭이 한 건도 없으면 CallCount 0인 요약을 반환합니다 (에러 아님).
func (db *Postgres) GetMetricSummary(ctx context.Context, versionID int64) (*model.MetricSummary, error) {
	query := `
		SELECT
			COUNT(*),
			AVG(input_tokens),
			AVG(output_tokens),
			AVG(total_tokens),
			SUM(total_tokens),
			AVG(cost_eur),
			SUM(cost_eur),
			AVG(latency_ms),
			MIN(latency_ms),
			MAX(latency_ms),
			AVG(quality_score),
			AVG(accuracy),
			COUNT(*) FILTER (WHERE success),
			COUNT(*) FILTER (WHERE NOT success)
		FROM prompt_metrics
		WHERE version_id = $1
	`

	var s model.MetricSummary
	err := db.Pool.QueryRow(ctx, query, versionID).Scan(
		&s.CallCount,
		&s.AvgInputTokens,
		&s.AvgOutputTokens,
		&s.AvgTotalTokens,
		&s.TotalTokensUsed,
		&s.AvgCost,
		&s.TotalCost,
		&s.AvgLatency,
		&s.MinLatency,
		&s.MaxLatency,
		&s.AvgQuality,
		&s.AvgAccuracy,
		&s.SuccessCount,
		&s.ErrorCount,
	)
	if err != nil {
		return nil, err
	}

	if s.CallCount > 0 {
		s.SuccessRate = float64(s.SuccessCount) / float64(s.CallCount)
	}
	return &s, nil
}
