// 프롬프트 버전 export/import
//
// export는 프롬프트 하나의 전체 버전 이력(메트릭 요약 포함)을 JSON 또는
// YAML로 직렬화합니다. import는 반대로 복원하며, 이미 존재하는 버전은
// overwrite가 아니면 건너뜁니다.

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/prompt-ops/backend/internal/model"
	"gopkg.in/yaml.v3"
)

// exportRepo - DB 인터페이스
type exportRepo interface {
	ListVersionsFull(ctx context.Context, name string) ([]model.PromptVersion, error)
	GetMetricSummary(ctx context.Context, versionID int64) (*model.MetricSummary, error)
}

// ExportService - export/import 비즈니스 로직
type ExportService struct {
	db       exportRepo
	versions *VersionService
}

func NewExportService(db exportRepo, versions *VersionService) *ExportService {
	return &ExportService{db: db, versions: versions}
}

// Export - 프롬프트 하나의 전체 버전 이력 생성
func (s *ExportService) Export(ctx context.Context, name string, includeMetrics bool) (*model.PromptExport, error) {
	versions, err := s.db.ListVersionsFull(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, fmt.Errorf("%w: prompt %s", ErrNotFound, name)
	}

	export := &model.PromptExport{
		PromptName: name,
		ExportDate: time.Now().UTC(),
	}

	for _, v := range versions {
		entry := model.VersionExport{
			Version:    v.Version,
			SystemText: v.SystemText,
			UserText:   v.UserText,
			Metadata:   v.Metadata,
			GitCommit:  v.GitCommit,
			GitBranch:  v.GitBranch,
			CreatedAt:  v.CreatedAt,
		}

		if includeMetrics {
			summary, err := s.db.GetMetricSummary(ctx, v.ID)
			if err != nil {
				return nil, err
			}
			entry.MetricsCount = summary.CallCount
			if summary.CallCount > 0 {
				entry.MetricsSummary = summary
			}
		}

		export.Versions = append(export.Versions, entry)
	}

	return export, nil
}

// ExportJSON - JSON 직렬화 (들여쓰기 포함)
func (s *ExportService) ExportJSON(ctx context.Context, name string, includeMetrics bool) ([]byte, error) {
	export, err := s.Export(ctx, name, includeMetrics)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(export, "", "  ")
}

// ExportYAML - YAML 직렬화
func (s *ExportService) ExportYAML(ctx context.Context, name string, includeMetrics bool) ([]byte, error) {
	export, err := s.Export(ctx, name, includeMetrics)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(export)
}

// ExportAll - 추적 중인 모든 프롬프트의 버전 이력 생성
func (s *ExportService) ExportAll(ctx context.Context, includeMetrics bool) (*model.AllPromptsExport, error) {
	names, err := s.versions.ListPrompts(ctx)
	if err != nil {
		return nil, err
	}

	all := &model.AllPromptsExport{ExportDate: time.Now().UTC()}
	for _, name := range names {
		export, err := s.Export(ctx, name, includeMetrics)
		if err != nil {
			return nil, err
		}
		all.Prompts = append(all.Prompts, *export)
	}
	return all, nil
}

// ExportAllJSON - 전체 export JSON 직렬화
func (s *ExportService) ExportAllJSON(ctx context.Context, includeMetrics bool) ([]byte, error) {
	all, err := s.ExportAll(ctx, includeMetrics)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(all, "", "  ")
}

// ExportAllYAML - 전체 export YAML 직렬화
func (s *ExportService) ExportAllYAML(ctx context.Context, includeMetrics bool) ([]byte, error) {
	all, err := s.ExportAll(ctx, includeMetrics)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(all)
}

// Import - export 포맷에서 버전 복원
//
// bump_type이 지정되면 기존 번호를 버리고 최신 버전에서 이어서 새 번호를
// 계산합니다. 비어 있으면 export에 기록된 번호를 그대로 사용합니다.
func (s *ExportService) Import(ctx context.Context, req model.ImportRequest) (*model.ImportResult, error) {
	name := req.Data.PromptName
	if name == "" {
		return nil, fmt.Errorf("%w: prompt_name is required", ErrInvalidInput)
	}
	if len(req.Data.Versions) == 0 {
		return nil, fmt.Errorf("%w: no versions to import", ErrInvalidInput)
	}

	result := &model.ImportResult{
		BatchID:    uuid.NewString(),
		PromptName: name,
		Total:      len(req.Data.Versions),
	}

	// export는 최신순이므로 역순으로 복원해 생성 순서를 보존
	for i := len(req.Data.Versions) - 1; i >= 0; i-- {
		entry := req.Data.Versions[i]

		saveReq := model.SaveVersionRequest{
			Name:       name,
			SystemText: entry.SystemText,
			UserText:   entry.UserText,
			Metadata:   entry.Metadata,
			Overwrite:  req.Overwrite,
		}
		if req.BumpType != "" {
			saveReq.BumpType = req.BumpType
		} else {
			saveReq.Version = entry.Version
		}

		if _, err := s.versions.SaveVersion(ctx, saveReq); err != nil {
			if isConflict(err) {
				result.Skipped++
				continue
			}
			return nil, err
		}
		result.Imported++
	}

	log.Printf("[Export] Imported %d/%d versions for %s (batch=%s, skipped=%d)",
		result.Imported, result.Total, name, result.BatchID, result.Skipped)
	return result, nil
}

// ParseImport - JSON 또는 YAML 바이트에서 export 구조 파싱
func ParseImport(data []byte) (*model.PromptExport, error) {
	var export model.PromptExport
	if jsonErr := json.Unmarshal(data, &export); jsonErr == nil {
		return &export, nil
	}
	if yamlErr := yaml.Unmarshal(data, &export); yamlErr == nil {
		return &export, nil
	}
	return nil, fmt.Errorf("%w: data is neither valid JSON nor YAML", ErrInvalidInput)
}

func isConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
