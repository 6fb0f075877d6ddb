// Gemini API와 통신하는 생성 클라이언트 정의
//
// Playground에서 저장된 버전을 실제 모델로 호출할 때 사용합니다.
//
// 환경변수:
//   - AI_API_KEY: Gemini API Key
//   - AI_MODEL: 기본 모델 이름 (기본값 gemini-2.0-flash)

package client

import (
	"context"
	"fmt"
	"time"

	"github.com/prompt-ops/backend/internal/config"
	"google.golang.org/genai"
)

// GenAIClient 구조체 정의
type GenAIClient struct {
	client *genai.Client
	model  string
}

// GenerateOptions - 호출 단위 생성 파라미터 (nil 필드는 모델 기본값)
type GenerateOptions struct {
	Temperature *float64
	MaxTokens   *int
}

// GenerateResult - 생성 결과와 호출 메타데이터
type GenerateResult struct {
	ModelName    string
	Output       string
	InputTokens  *int
	OutputTokens *int
	LatencyMS    float64
}

// GenAIClient 객체 생성
func NewGenAIClient(cfg config.GenAIConfig) (*GenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing AI_API_KEY")
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, err
	}
	return &GenAIClient{client: client, model: cfg.Model}, nil
}

// Generate - system/user 프롬프트로 모델 호출 후 결과와 토큰/지연시간 반환
func (c *GenAIClient) Generate(ctx context.Context, systemPrompt, userPrompt string, opts GenerateOptions) (*GenerateResult, error) {
	genCfg := &genai.GenerateContentConfig{}
	if systemPrompt != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}
	if opts.Temperature != nil {
		genCfg.Temperature = genai.Ptr(float32(*opts.Temperature))
	}
	if opts.MaxTokens != nil {
		genCfg.MaxOutputTokens = int32(*opts.MaxTokens)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(userPrompt, genai.RoleUser),
	}

	start := time.Now()
	res, err := c.client.Models.GenerateContent(ctx, c.model, contents, genCfg)
	latency := float64(time.Since(start).Milliseconds())
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{
		ModelName: c.model,
		Output:    res.Text(),
		LatencyMS: latency,
	}
	if res.UsageMetadata != nil {
		in := int(res.UsageMetadata.PromptTokenCount)
		out := int(res.UsageMetadata.CandidatesTokenCount)
		result.InputTokens = &in
		result.OutputTokens = &out
	}
	return result, nil
}
