package model

import (
	"encoding/json"
	"time"
)

// ============================================================================
// Metric 모델 (호출 1회 단위)
// ============================================================================

// MetricRecord - 버전 하나에 기록된 호출 메트릭 한 건
//
// 버전이 삭제되면 함께 삭제됩니다. 숫자 필드는 전부 optional.
type MetricRecord struct {
	ID           int64           `json:"id"`
	VersionID    int64           `json:"version_id"`
	ModelName    *string         `json:"model_name"`
	InputTokens  *int            `json:"input_tokens"`
	OutputTokens *int            `json:"output_tokens"`
	TotalTokens  *int            `json:"total_tokens"`
	CostEUR      *float64        `json:"cost_eur"`
	LatencyMS    *float64        `json:"latency_ms"`
	QualityScore *float64        `json:"quality_score"`
	Accuracy     *float64        `json:"accuracy"`
	Temperature  *float64        `json:"temperature"`
	TopP         *float64        `json:"top_p"`
	MaxTokens    *int            `json:"max_tokens"`
	Success      bool            `json:"success"`
	ErrorMessage *string         `json:"error_message"`
	Metadata     json.RawMessage `json:"metadata" swaggertype:"object"`
	CreatedAt    time.Time       `json:"created_at"`
}

// LogMetricsRequest - 메트릭 기록 요청 구조체
type LogMetricsRequest struct {
	ModelName    *string         `json:"model_name"`
	InputTokens  *int            `json:"input_tokens"`
	OutputTokens *int            `json:"output_tokens"`
	TotalTokens  *int            `json:"total_tokens"` // 없으면 input + output으로 계산
	CostEUR      *float64        `json:"cost_eur"`     // 없으면 model_name + 토큰 수로 자동 계산
	LatencyMS    *float64        `json:"latency_ms"`
	QualityScore *float64        `json:"quality_score"`
	Accuracy     *float64        `json:"accuracy"`
	Temperature  *float64        `json:"temperature"`
	TopP         *float64        `json:"top_p"`
	MaxTokens    *int            `json:"max_tokens"`
	Success      *bool           `json:"success"` // 기본값 true
	ErrorMessage *string         `json:"error_message"`
	Metadata     json.RawMessage `json:"metadata" swaggertype:"object"`
}

// MetricSummary - 버전 하나의 메트릭 집계 (저장하지 않고 매번 계산)
type MetricSummary struct {
	CallCount       int      `json:"call_count" yaml:"call_count"`
	AvgInputTokens  *float64 `json:"avg_input_tokens" yaml:"avg_input_tokens"`
	AvgOutputTokens *float64 `json:"avg_output_tokens" yaml:"avg_output_tokens"`
	AvgTotalTokens  *float64 `json:"avg_total_tokens" yaml:"avg_total_tokens"`
	TotalTokensUsed *int64   `json:"total_tokens_used" yaml:"total_tokens_used"`
	AvgCost         *float64 `json:"avg_cost" yaml:"avg_cost"`
	TotalCost       *float64 `json:"total_cost" yaml:"total_cost"`
	AvgLatency      *float64 `json:"avg_latency" yaml:"avg_latency"`
	MinLatency      *float64 `json:"min_latency" yaml:"min_latency"`
	MaxLatency      *float64 `json:"max_latency" yaml:"max_latency"`
	AvgQuality      *float64 `json:"avg_quality" yaml:"avg_quality"`
	AvgAccuracy     *float64 `json:"avg_accuracy" yaml:"avg_accuracy"`
	SuccessCount    int      `json:"success_count" yaml:"success_count"`
	ErrorCount      int      `json:"error_count" yaml:"error_count"`
	SuccessRate     float64  `json:"success_rate" yaml:"success_rate"`
}

// VersionComparison - 여러 버전의 메트릭 요약 비교 결과
type VersionComparison struct {
	Name     string                   `json:"name"`
	Versions []VersionComparisonEntry `json:"versions"`
}

// VersionComparisonEntry - 비교 대상 버전 한 건
type VersionComparisonEntry struct {
	Version   string         `json:"version"`
	CreatedAt time.Time      `json:"created_at"`
	GitCommit *string        `json:"git_commit"`
	Summary   *MetricSummary `json:"summary"`
}

// ============================================================================
// A/B 테스트
// ============================================================================

// ABTestResult - 두 버전의 단일 메트릭 A/B 비교 결과
//
// confidence는 샘플 수 기반의 단순 휴리스틱(min(nA,nB)/30, 최대 1.0)이며
// 통계적 유의성 검정이 아닙니다.
type ABTestResult struct {
	VersionA    string  `json:"version_a"`
	VersionB    string  `json:"version_b"`
	MetricName  string  `json:"metric_name"`
	SamplesA    int     `json:"samples_a"`
	SamplesB    int     `json:"samples_b"`
	MeanA       float64 `json:"mean_a"`
	MeanB       float64 `json:"mean_b"`
	Winner      string  `json:"winner"`
	Improvement float64 `json:"improvement_percent"`
	Confidence  float64 `json:"confidence"`
}
