package db

import (
	"context"
	"fmt"

	"github.com/pgvector/pgvector-go"
	"github.com/prompt-ops/backend/internal/model"
)

// EnsureEmbeddingSchema - pgvector 확장 및 prompt_embeddings 테이블 생성
func (db *Postgres) EnsureEmbeddingSchema(ctx context.Context) error {
	queries := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		`
		CREATE TABLE IF NOT EXISTS prompt_embeddings (
			id BIGSERIAL PRIMARY KEY,
			version_id BIGINT NOT NULL UNIQUE REFERENCES prompt_versions(id),
			embedding vector(768),
			model TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
	}

	for _, query := range queries {
		if _, err := db.Pool.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to ensure embedding schema: %w", err)
		}
	}
	return nil
}

// UpsertEmbedding - 버전 임베딩 저장 (재계산 시 교체)
func (db *Postgres) UpsertEmbedding(ctx context.Context, versionID int64, vector []float32, modelName string) (int64, error) {
	query := `
		INSERT INTO prompt_embeddings (version_id, embedding, model, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (version_id)
		DO UPDATE SET embedding = EXCLUDED.embedding, model = EXCLUDED.model, created_at = NOW()
		RETURNING id
	`

	var id int64
	err := db.Pool.QueryRow(ctx, query, versionID, pgvector.NewVector(vector), modelName).Scan(&id)
	return id, err
}

// SearchSimilarVersions - 쿼리 벡터와 가까운 버전 검색 (L2 거리 기준)
func (db *Postgres) SearchSimilarVersions(ctx context.Context, vector []float32, limit int) ([]model.SimilarVersion, error) {
	query := `
		SELECT v.id, v.name, v.version, e.embedding <-> $1 AS distance
		FROM prompt_embeddings e
		JOIN prompt_versions v ON v.id = e.version_id
		ORDER BY distance ASC
		LIMIT $2
	`

	rows, err := db.Pool.Query(ctx, query, pgvector.NewVector(vector), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.SimilarVersion
	for rows.Next() {
		var r model.SimilarVersion
		if err := rows.Scan(&r.VersionID, &r.Name, &r.Version, &r.Distance); err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	if results == nil {
		results = []model.SimilarVersion{}
	}
	return results, nil
}
