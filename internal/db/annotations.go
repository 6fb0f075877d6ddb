package db

import (
	"context"
	"fmt"

	"github.com/prompt-ops/backend/internal/model"
)

// EnsureAnnotationSchema - annotations 테이블 생성
func (db *Postgres) EnsureAnnotationSchema(ctx context.Context) error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS annotations (
			id BIGSERIAL PRIMARY KEY,
			version_id BIGINT NOT NULL REFERENCES prompt_versions(id),
			text TEXT NOT NULL,
			author TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE INDEX IF NOT EXISTS annotations_version_id_idx ON annotations(version_id)`,
	}

	for _, query := range queries {
		if _, err := db.Pool.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to ensure annotation schema: %w", err)
		}
	}
	return nil
}

// AddAnnotation - 버전에 주석 추가
func (db *Postgres) AddAnnotation(ctx context.Context, versionID int64, text, author string) (int64, error) {
	query := `
		INSERT INTO annotations (version_id, text, author, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id
	`

	var id int64
	err := db.Pool.QueryRow(ctx, query, versionID, text, author).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetAnnotations - 버전의 주석 목록 조회 (오래된 순)
func (db *Postgres) GetAnnotations(ctx context.Context, versionID int64) ([]model.Annotation, error) {
	query := `
		SELECT id, version_id, text, author, created_at
		FROM annotations
		WHERE version_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := db.Pool.Query(ctx, query, versionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var annotations []model.Annotation
	for rows.Next() {
		var a model.Annotation
		if err := rows.Scan(&a.ID, &a.VersionID, &a.Text, &a.Author, &a.CreatedAt); err != nil {
			return nil, err
		}
		annotations = append(annotations, a)
	}

	if annotations == nil {
		annotations = []model.Annotation{}
	}
	return annotations, nil
}
