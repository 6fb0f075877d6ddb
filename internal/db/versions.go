package db

import (
	"context"
	"fmt"

	"github.com/prompt-ops/backend/internal/model"
)

// EnsureVersionSchema - prompt_versions 테이블 및 인덱스 생성
func (db *Postgres) EnsureVersionSchema(ctx context.Context) error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS prompt_versions (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			version TEXT NOT NULL,
			system_prompt TEXT NOT NULL DEFAULT '',
			user_prompt TEXT NOT NULL DEFAULT '',
			metadata JSONB,
			git_commit TEXT,
			git_branch TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE(name, version)
		)
		`,
		`CREATE INDEX IF NOT EXISTS prompt_versions_name_idx ON prompt_versions(name)`,
		`CREATE INDEX IF NOT EXISTS prompt_versions_created_at_idx ON prompt_versions(created_at DESC)`,
	}

	for _, query := range queries {
		if _, err := db.Pool.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to ensure version schema: %w", err)
		}
	}
	return nil
}

// SaveVersion - 새 버전 저장. (name, version) 중복이면 unique violation 에러 반환
func (db *Postgres) SaveVersion(ctx context.Context, v model.PromptVersion) (int64, error) {
	query := `
		INSERT INTO prompt_versions (name, version, system_prompt, user_prompt, metadata, git_commit, git_branch, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id
	`

	var id int64
	err := db.Pool.QueryRow(ctx, query,
		v.Name,
		v.Version,
		v.SystemText,
		v.UserText,
		v.Metadata,
		v.GitCommit,
		v.GitBranch,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetVersion - (name, version)으로 단건 조회
func (db *Postgres) GetVersion(ctx context.Context, name, version string) (*model.PromptVersion, error) {
	query := `
		SELECT id, name, version, system_prompt, user_prompt, metadata, git_commit, git_branch, created_at
		FROM prompt_versions
		WHERE name = $1 AND version = $2
	`

	var v model.PromptVersion
	err := db.Pool.QueryRow(ctx, query, name, version).Scan(
		&v.ID,
		&v.Name,
		&v.Version,
		&v.SystemText,
		&v.UserText,
		&v.Metadata,
		&v.GitCommit,
		&v.GitBranch,
		&v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// GetLatestVersion - 가장 최근에 저장된 버전 조회
func (db *Postgres) GetLatestVersion(ctx context.Context, name string) (*model.PromptVersion, error) {
	query := `
		SELECT id, name, version, system_prompt, user_prompt, metadata, git_commit, git_branch, created_at
		FROM prompt_versions
		WHERE name = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var v model.PromptVersion
	err := db.Pool.QueryRow(ctx, query, name).Scan(
		&v.ID,
		&v.Name,
		&v.Version,
		&v.SystemText,
		&v.UserText,
		&v.Metadata,
		&v.GitCommit,
		&v.GitBranch,
		&v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ListVersions - 프롬프트 하나의 버전 목록 (최신순, 메트릭 개수 포함)
func (db *Postgres) ListVersions(ctx context.Context, name string) ([]model.VersionListItem, error) {
	query := `
		SELECT v.id, v.version, v.git_commit, v.created_at, COUNT(m.id)
		FROM prompt_versions v
		LEFT JOIN prompt_metrics m ON m.version_id = v.id
		WHERE v.name = $1
		GROUP BY v.id
		ORDER BY v.created_at DESC, v.id DESC
	`

	rows, err := db.Pool.Query(ctx, query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.VersionListItem
	for rows.Next() {
		var item model.VersionListItem
		if err := rows.Scan(&item.ID, &item.Version, &item.GitCommit, &item.CreatedAt, &item.MetricCount); err != nil {
			return nil, err
		}
		list = append(list, item)
	}

	if list == nil {
		list = []model.VersionListItem{}
	}
	return list, nil
}

// ListVersionsFull - 본문 포함 전체 버전 조회 (export용, 최신순)
func (db *Postgres) ListVersionsFull(ctx context.Context, name string) ([]model.PromptVersion, error) {
	query := `
		SELECT id, name, version, system_prompt, user_prompt, metadata, git_commit, git_branch, created_at
		FROM prompt_versions
		WHERE name = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := db.Pool.Query(ctx, query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.PromptVersion
	for rows.Next() {
		var v model.PromptVersion
		if err := rows.Scan(&v.ID, &v.Name, &v.Version, &v.SystemText, &v.UserText, &v.Metadata, &v.GitCommit, &v.GitBranch, &v.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

// ListPrompts - 추적 중인 프롬프트 이름 전체 목록
func (db *Postgres) ListPrompts(ctx context.Context) ([]string, error) {
	rows, err := db.Pool.Query(ctx, `SELECT DISTINCT name FROM prompt_versions ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	if names == nil {
		names = []string{}
	}
	return names, nil
}

// DeleteVersion - 버전 삭제. 소속 메트릭/주석/임베딩도 함께 삭제
//
// 하나의 트랜잭션으로 실행해 부분 삭제 상태를 남기지 않습니다. 임베딩
// 테이블은 pgvector가 없는 환경에서는 존재하지 않으므로 있을 때만 지웁니다.
func (db *Postgres) DeleteVersion(ctx context.Context, name, version string) (bool, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	var versionID int64
	err = tx.QueryRow(ctx,
		`SELECT id FROM prompt_versions WHERE name = $1 AND version = $2`,
		name, version,
	).Scan(&versionID)
	if err != nil {
		if IsNoRows(err) {
			return false, nil
		}
		return false, err
	}

	var embeddingTable *string
	if err := tx.QueryRow(ctx, `SELECT to_regclass('prompt_embeddings')::text`).Scan(&embeddingTable); err != nil {
		return false, err
	}

	queries := []string{
		`DELETE FROM prompt_metrics WHERE version_id = $1`,
		`DELETE FROM annotations WHERE version_id = $1`,
	}
	if embeddingTable != nil {
		queries = append(queries, `DELETE FROM prompt_embeddings WHERE version_id = $1`)
	}
	queries = append(queries, `DELETE FROM prompt_versions WHERE id = $1`)

	for _, query := range queries {
		if _, err := tx.Exec(ctx, query, versionID); err != nil {
			return false, fmt.Errorf("failed to delete version %s/%s: %w", name, version, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}
