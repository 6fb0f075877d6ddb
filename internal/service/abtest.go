package service

import (
	"context"
	"fmt"

	"github.com/prompt-ops/backend/internal/model"
)

// abTestRepo - DB 인터페이스
type abTestRepo interface {
	GetVersion(ctx context.Context, name, version string) (*model.PromptVersion, error)
	GetMetricValues(ctx context.Context, versionID int64, column string) ([]float64, error)
}

// ABTestService - 두 버전의 단일 메트릭 비교
//
// confidence는 샘플 수 기반 휴리스틱이며 통계 검정이 아닙니다.
type ABTestService struct {
	db abTestRepo
}

func NewABTestService(db abTestRepo) *ABTestService {
	return &ABTestService{db: db}
}

// metricColumns - 요청 메트릭 이름 -> DB 컬럼 매핑
var metricColumns = map[string]string{
	"cost":          "cost_eur",
	"cost_eur":      "cost_eur",
	"latency":       "latency_ms",
	"latency_ms":    "latency_ms",
	"quality":       "quality_score",
	"quality_score": "quality_score",
	"accuracy":      "accuracy",
	"tokens":        "total_tokens",
	"total_tokens":  "total_tokens",
}

// Run - versionA 대비 versionB의 메트릭 비교
//
// winner는 평균이 큰 쪽입니다. 낮을수록 좋은 메트릭(cost, latency)은
// 호출자가 해석을 뒤집어야 합니다.
func (s *ABTestService) Run(ctx context.Context, name, versionA, versionB, metricName string) (*model.ABTestResult, error) {
	column, ok := metricColumns[metricName]
	if !ok {
		return nil, fmt.Errorf("%w: unknown metric %q", ErrInvalidInput, metricName)
	}

	vA, err := s.db.GetVersion(ctx, name, versionA)
	if err != nil {
		return nil, notFoundOrErr(err, name, versionA)
	}
	vB, err := s.db.GetVersion(ctx, name, versionB)
	if err != nil {
		return nil, notFoundOrErr(err, name, versionB)
	}

	valuesA, err := s.db.GetMetricValues(ctx, vA.ID, column)
	if err != nil {
		return nil, err
	}
	valuesB, err := s.db.GetMetricValues(ctx, vB.ID, column)
	if err != nil {
		return nil, err
	}
	if len(valuesA) == 0 || len(valuesB) == 0 {
		return nil, fmt.Errorf("%w: both versions need recorded %s metrics", ErrInvalidInput, metricName)
	}

	meanA := mean(valuesA)
	meanB := mean(valuesB)

	winner := versionA
	if meanB > meanA {
		winner = versionB
	}

	improvement := 0.0
	if meanA != 0 {
		improvement = abs(meanB-meanA) / meanA * 100
	}

	confidence := float64(min(len(valuesA), len(valuesB))) / 30.0
	if confidence > 1.0 {
		confidence = 1.0
	}

	return &model.ABTestResult{
		VersionA:    versionA,
		VersionB:    versionB,
		MetricName:  metricName,
		SamplesA:    len(valuesA),
		SamplesB:    len(valuesB),
		MeanA:       meanA,
		MeanB:       meanB,
		Winner:      winner,
		Improvement: improvement,
		Confidence:  confidence,
	}, nil
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
