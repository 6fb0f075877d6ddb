package model

import (
	"encoding/json"
	"time"
)

// ============================================================================
// PromptVersion 모델 (프롬프트 스냅샷 단위)
// ============================================================================

// PromptVersion - 저장된 프롬프트 버전 한 건
//
// (name, version) 조합은 유니크하며, 생성 이후 내용은 변경되지 않습니다.
// 롤백/수정은 항상 새 버전 row를 생성합니다.
type PromptVersion struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Version    string          `json:"version"`
	SystemText string          `json:"system_prompt"`
	UserText   string          `json:"user_prompt"`
	Metadata   json.RawMessage `json:"metadata" swaggertype:"object"`
	GitCommit  *string         `json:"git_commit"`
	GitBranch  *string         `json:"git_branch"`
	CreatedAt  time.Time       `json:"created_at"`
}

// VersionListItem - 버전 목록 조회용 구조체 (본문 제외)
type VersionListItem struct {
	ID          int64     `json:"id"`
	Version     string    `json:"version"`
	GitCommit   *string   `json:"git_commit"`
	CreatedAt   time.Time `json:"created_at"`
	MetricCount int       `json:"metric_count"`
}

// SaveVersionRequest - 버전 저장 요청 구조체
//
// version을 직접 주거나 bump_type(+pre_label)로 자동 계산합니다.
type SaveVersionRequest struct {
	Name       string          `json:"name" binding:"required"`
	SystemText string          `json:"system_prompt"`
	UserText   string          `json:"user_prompt"`
	Version    string          `json:"version"`
	BumpType   string          `json:"bump_type"` // major / minor / patch
	PreLabel   string          `json:"pre_label"` // snapshot / m / rc / stable
	PreNumber  *int            `json:"pre_number"`
	Metadata   json.RawMessage `json:"metadata" swaggertype:"object"`
	Overwrite  bool            `json:"overwrite"`
}

// RollbackRequest - 롤백 요청 구조체 (이전 버전 내용으로 새 버전 생성)
type RollbackRequest struct {
	ToVersion string `json:"to_version" binding:"required"`
}

// AnnotationRequest - 버전 주석 추가 요청 구조체
type AnnotationRequest struct {
	Author string `json:"author"`
	Text   string `json:"text" binding:"required"`
}

// Annotation - 버전에 달린 주석
type Annotation struct {
	ID        int64     `json:"id"`
	VersionID int64     `json:"version_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ============================================================================
// Export / Import
// ============================================================================

// PromptExport - 프롬프트 하나의 전체 버전 export 포맷 (JSON/YAML 공용)
type PromptExport struct {
	PromptName string          `json:"prompt_name" yaml:"prompt_name"`
	ExportDate time.Time       `json:"export_date" yaml:"export_date"`
	Versions   []VersionExport `json:"versions" yaml:"versions"`
}

// VersionExport - export에 포함되는 버전 한 건
type VersionExport struct {
	Version        string          `json:"version" yaml:"version"`
	SystemText     string          `json:"system_prompt" yaml:"system_prompt"`
	UserText       string          `json:"user_prompt" yaml:"user_prompt"`
	Metadata       json.RawMessage `json:"metadata,omitempty" yaml:"metadata,omitempty" swaggertype:"object"`
	GitCommit      *string         `json:"git_commit,omitempty" yaml:"git_commit,omitempty"`
	GitBranch      *string         `json:"git_branch,omitempty" yaml:"git_branch,omitempty"`
	CreatedAt      time.Time       `json:"created_at" yaml:"created_at"`
	MetricsSummary *MetricSummary  `json:"metrics_summary,omitempty" yaml:"metrics_summary,omitempty"`
	MetricsCount   int             `json:"metrics_count" yaml:"metrics_count"`
}

// AllPromptsExport - 추적 중인 전체 프롬프트의 export 포맷
type AllPromptsExport struct {
	ExportDate time.Time      `json:"export_date" yaml:"export_date"`
	Prompts    []PromptExport `json:"prompts" yaml:"prompts"`
}

// ImportRequest - import 요청 구조체
type ImportRequest struct {
	Data      PromptExport `json:"data" binding:"required"`
	Overwrite bool         `json:"overwrite"`
	BumpType  string       `json:"bump_type"` // 지정 시 semantic versioning으로 재번호
}

// ImportResult - import 처리 결과
type ImportResult struct {
	BatchID    string `json:"batch_id"`
	PromptName string `json:"prompt_name"`
	Imported   int    `json:"imported"`
	Skipped    int    `json:"skipped"`
	Total      int    `json:"total"`
}
