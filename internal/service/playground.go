// Playground - 저장된 버전을 실제 모델로 실행해 보는 기능
//
// record=true면 실행 결과를 해당 버전의 메트릭으로 기록해, 실험 실행이
// 곧바로 회귀 감지 데이터가 되도록 합니다.

package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/prompt-ops/backend/internal/client"
	"github.com/prompt-ops/backend/internal/model"
)

// promptGenerator - 모델 호출 클라이언트 인터페이스
type promptGenerator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string, opts client.GenerateOptions) (*client.GenerateResult, error)
}

// PlaygroundService - 버전 테스트 실행
type PlaygroundService struct {
	versions *VersionService
	metrics  *MetricsService
	genai    promptGenerator
}

func NewPlaygroundService(versions *VersionService, metrics *MetricsService, genai promptGenerator) *PlaygroundService {
	return &PlaygroundService{versions: versions, metrics: metrics, genai: genai}
}

// Run - 저장된 버전을 모델로 실행
func (s *PlaygroundService) Run(ctx context.Context, req model.PlaygroundRequest) (*model.PlaygroundResponse, error) {
	if s.genai == nil {
		return nil, fmt.Errorf("%w: AI_API_KEY is not configured", ErrMisconfigured)
	}

	v, err := s.versions.GetVersion(ctx, req.Name, req.Version)
	if err != nil {
		return nil, err
	}

	userPrompt := substituteVariables(v.UserText, req.Variables)

	result, err := s.genai.Generate(ctx, v.SystemText, userPrompt, client.GenerateOptions{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		// 실패도 호출 이력으로 남겨 error_rate 회귀 감지에 반영
		if req.Record {
			success := false
			errMsg := err.Error()
			if _, logErr := s.metrics.LogMetrics(ctx, v.Name, v.Version, model.LogMetricsRequest{
				Success:      &success,
				ErrorMessage: &errMsg,
				Temperature:  req.Temperature,
				MaxTokens:    req.MaxTokens,
			}); logErr != nil {
				log.Printf("[Playground] Failed to record error metrics for %s/%s: %v", v.Name, v.Version, logErr)
			}
		}
		return nil, err
	}

	resp := &model.PlaygroundResponse{
		RunID:        uuid.NewString(),
		ModelName:    result.ModelName,
		Output:       result.Output,
		InputTokens:  result.InputTokens,
		OutputTokens: result.OutputTokens,
		LatencyMS:    result.LatencyMS,
	}

	if result.InputTokens != nil && result.OutputTokens != nil {
		cost := CalculateCost(result.ModelName, *result.InputTokens, *result.OutputTokens)
		if cost > 0 {
			resp.CostEUR = &cost
		}
	}

	if req.Record {
		latency := result.LatencyMS
		if _, err := s.metrics.LogMetrics(ctx, v.Name, v.Version, model.LogMetricsRequest{
			ModelName:    &result.ModelName,
			InputTokens:  result.InputTokens,
			OutputTokens: result.OutputTokens,
			CostEUR:      resp.CostEUR,
			LatencyMS:    &latency,
			Temperature:  req.Temperature,
			MaxTokens:    req.MaxTokens,
		}); err != nil {
			log.Printf("[Playground] Failed to record metrics for %s/%s: %v", v.Name, v.Version, err)
		} else {
			resp.Recorded = true
		}
	}

	return resp, nil
}

// substituteVariables - user_prompt의 {변수}를 요청 값으로 치환
func substituteVariables(text string, variables map[string]string) string {
	if len(variables) == 0 {
		return text
	}
	pairs := make([]string, 0, len(variables)*2)
	for key, value := range variables {
		pairs = append(pairs, "{"+key+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
