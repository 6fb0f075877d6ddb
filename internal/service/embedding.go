package service

import (
	"context"
	"fmt"
	"log"

	"github.com/prompt-ops/backend/internal/model"
)

type EmbeddingRepo interface {
	UpsertEmbedding(ctx context.Context, versionID int64, vector []float32, modelName string) (int64, error)
	SearchSimilarVersions(ctx context.Context, vector []float32, limit int) ([]model.SimilarVersion, error)
}

type TextEmbedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, string, error)
}

// EmbeddingService - 버전 텍스트 임베딩 저장 및 유사 버전 검색
type EmbeddingService struct {
	repo   EmbeddingRepo
	client TextEmbedder
}

func NewEmbeddingService(repo EmbeddingRepo, client TextEmbedder) *EmbeddingService {
	return &EmbeddingService{repo: repo, client: client}
}

// EmbedVersion - 버전의 system+user 텍스트를 임베딩해 저장
//
// 버전 저장 경로에서 호출되며, 실패해도 저장 자체는 막지 않습니다 (로그만 남김).
func (s *EmbeddingService) EmbedVersion(ctx context.Context, v *model.PromptVersion) {
	text := v.SystemText + "\n\n" + v.UserText
	vector, modelName, err := s.client.EmbedText(ctx, text)
	if err != nil {
		log.Printf("[Embedding] Failed to embed %s/%s: %v", v.Name, v.Version, err)
		return
	}

	if _, err := s.repo.UpsertEmbedding(ctx, v.ID, vector, modelName); err != nil {
		log.Printf("[Embedding] Failed to store embedding for %s/%s: %v", v.Name, v.Version, err)
	}
}

// SearchSimilar - 쿼리 텍스트와 가까운 버전 검색
func (s *EmbeddingService) SearchSimilar(ctx context.Context, query string, limit int) ([]model.SimilarVersion, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	vector, _, err := s.client.EmbedText(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.repo.SearchSimilarVersions(ctx, vector, limit)
}
