package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/prompt-ops/backend/internal/db"
	"github.com/prompt-ops/backend/internal/model"
)

// modelPricing - 모델별 1M 토큰당 가격 (EUR)
type modelPricing struct {
	Input  float64
	Output float64
}

// 기본 가격표. AddModelPricing으로 런타임에 추가/수정 가능
var (
	pricingMu   sync.RWMutex
	modelPrices = map[string]modelPricing{
		"claude-opus-4-1":     {Input: 13.80, Output: 69.00},
		"claude-opus-4":       {Input: 13.80, Output: 69.00},
		"claude-sonnet-4":     {Input: 5.06, Output: 23.00},
		"mistral-large-24-11": {Input: 1.84, Output: 5.52},
		"mistral-medium-3":    {Input: 0.37, Output: 1.84},
		"mistral-small-3-1":   {Input: 0.09, Output: 0.28},
		"mistral-nemo":        {Input: 0.14, Output: 0.14},
		"gpt-5":               {Input: 1.15, Output: 9.20},
		"gpt-5-mini":          {Input: 0.23, Output: 1.84},
		"gpt-5-nano":          {Input: 0.05, Output: 0.37},
		"gpt-4-1":             {Input: 0.92, Output: 3.68},
		"gpt-4-1-mini":        {Input: 0.18, Output: 0.73},
		"gpt-4o":              {Input: 1.15, Output: 4.60},
	}
)

// CalculateCost - 모델 호출 비용 계산 (EUR). 모르는 모델이면 0
func CalculateCost(modelName string, inputTokens, outputTokens int) float64 {
	pricingMu.RLock()
	pricing, ok := modelPrices[modelName]
	pricingMu.RUnlock()
	if !ok {
		return 0.0
	}
	inputCost := float64(inputTokens) / 1_000_000 * pricing.Input
	outputCost := float64(outputTokens) / 1_000_000 * pricing.Output
	return inputCost + outputCost
}

// AddModelPricing - 커스텀 모델 가격 등록 (1M 토큰당 EUR)
func AddModelPricing(modelName string, inputPrice, outputPrice float64) {
	pricingMu.Lock()
	modelPrices[modelName] = modelPricing{Input: inputPrice, Output: outputPrice}
	pricingMu.Unlock()
}

// metricsRepo - DB 인터페이스
type metricsRepo interface {
	GetVersion(ctx context.Context, name, version string) (*model.PromptVersion, error)
	ListVersions(ctx context.Context, name string) ([]model.VersionListItem, error)
	SaveMetric(ctx context.Context, m model.MetricRecord) (int64, error)
	GetMetrics(ctx context.Context, versionID int64) ([]model.MetricRecord, error)
	GetMetricSummary(ctx context.Context, versionID int64) (*model.MetricSummary, error)
}

// MetricsService - 메트릭 기록/요약/비교 비즈니스 로직
type MetricsService struct {
	db metricsRepo
}

func NewMetricsService(db metricsRepo) *MetricsService {
	return &MetricsService{db: db}
}

// LogMetrics - 버전에 메트릭 한 건 기록
//
// cost_eur이 비어 있고 model_name과 토큰 수가 있으면 가격표로 자동 계산합니다.
func (s *MetricsService) LogMetrics(ctx context.Context, name, version string, req model.LogMetricsRequest) (int64, error) {
	v, err := s.getVersion(ctx, name, version)
	if err != nil {
		return 0, err
	}

	record := model.MetricRecord{
		VersionID:    v.ID,
		ModelName:    req.ModelName,
		InputTokens:  req.InputTokens,
		OutputTokens: req.OutputTokens,
		CostEUR:      req.CostEUR,
		LatencyMS:    req.LatencyMS,
		QualityScore: req.QualityScore,
		Accuracy:     req.Accuracy,
		Temperature:  req.Temperature,
		TopP:         req.TopP,
		MaxTokens:    req.MaxTokens,
		ErrorMessage: req.ErrorMessage,
		Metadata:     req.Metadata,
		Success:      true,
	}
	if req.Success != nil {
		record.Success = *req.Success
	}

	record.TotalTokens = req.TotalTokens
	if record.TotalTokens == nil && req.InputTokens != nil && req.OutputTokens != nil {
		total := *req.InputTokens + *req.OutputTokens
		record.TotalTokens = &total
	}

	if req.InputTokens != nil && req.OutputTokens != nil {
		if record.CostEUR == nil && req.ModelName != nil {
			cost := CalculateCost(*req.ModelName, *req.InputTokens, *req.OutputTokens)
			if cost > 0 {
				record.CostEUR = &cost
			}
		}
	}

	return s.db.SaveMetric(ctx, record)
}

// GetMetrics - 버전의 메트릭 전체 조회
func (s *MetricsService) GetMetrics(ctx context.Context, name, version string) ([]model.MetricRecord, error) {
	v, err := s.getVersion(ctx, name, version)
	if err != nil {
		return nil, err
	}
	return s.db.GetMetrics(ctx, v.ID)
}

// GetSummary - 버전의 메트릭 집계 조회
func (s *MetricsService) GetSummary(ctx context.Context, name, version string) (*model.MetricSummary, error) {
	v, err := s.getVersion(ctx, name, version)
	if err != nil {
		return nil, err
	}
	return s.db.GetMetricSummary(ctx, v.ID)
}

// Compare - 프롬프트의 여러 버전 메트릭 요약 비교
//
// versions가 비어 있으면 전체 버전을 비교 대상으로 합니다.
func (s *MetricsService) Compare(ctx context.Context, name string, versions []string) (*model.VersionComparison, error) {
	if len(versions) == 0 {
		list, err := s.db.ListVersions(ctx, name)
		if err != nil {
			return nil, err
		}
		for _, item := range list {
			versions = append(versions, item.Version)
		}
	}
	if len(versions) == 0 {
		return nil, fmt.Errorf("%w: no versions for prompt %s", ErrNotFound, name)
	}

	result := &model.VersionComparison{Name: name}
	for _, version := range versions {
		v, err := s.getVersion(ctx, name, version)
		if err != nil {
			return nil, err
		}
		summary, err := s.db.GetMetricSummary(ctx, v.ID)
		if err != nil {
			return nil, err
		}
		result.Versions = append(result.Versions, model.VersionComparisonEntry{
			Version:   v.Version,
			CreatedAt: v.CreatedAt,
			GitCommit: v.GitCommit,
			Summary:   summary,
		})
	}
	return result, nil
}

func (s *MetricsService) getVersion(ctx context.Context, name, version string) (*model.PromptVersion, error) {
	v, err := s.db.GetVersion(ctx, name, version)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, name, version)
		}
		return nil, err
	}
	return v, nil
}
