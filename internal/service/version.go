package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/prompt-ops/backend/internal/db"
	"github.com/prompt-ops/backend/internal/gitmeta"
	"github.com/prompt-ops/backend/internal/model"
	"github.com/prompt-ops/backend/internal/semver"
)

// versionRepo - DB 인터페이스
type versionRepo interface {
	SaveVersion(ctx context.Context, v model.PromptVersion) (int64, error)
	GetVersion(ctx context.Context, name, version string) (*model.PromptVersion, error)
	GetLatestVersion(ctx context.Context, name string) (*model.PromptVersion, error)
	ListVersions(ctx context.Context, name string) ([]model.VersionListItem, error)
	ListPrompts(ctx context.Context) ([]string, error)
	DeleteVersion(ctx context.Context, name, version string) (bool, error)
	AddAnnotation(ctx context.Context, versionID int64, text, author string) (int64, error)
	GetAnnotations(ctx context.Context, versionID int64) ([]model.Annotation, error)
}

// versionEmbedder - 저장된 버전의 임베딩 계산 (optional)
type versionEmbedder interface {
	EmbedVersion(ctx context.Context, v *model.PromptVersion)
}

// VersionService - 버전 저장/조회/롤백 비즈니스 로직
type VersionService struct {
	db       versionRepo
	embedder versionEmbedder // nil이면 임베딩 생략
}

func NewVersionService(db versionRepo) *VersionService {
	return &VersionService{db: db}
}

// SetEmbedder - 저장 시 임베딩 계산을 붙임 (임베딩 클라이언트가 설정된 경우만)
func (s *VersionService) SetEmbedder(e versionEmbedder) {
	s.embedder = e
}

// SaveVersion - 새 버전 저장
//
// req.Version이 비어 있으면 bump_type/pre_label로 최신 버전에서 다음 번호를
// 계산합니다. 저장 이력이 없으면 1.0.0부터 시작합니다.
func (s *VersionService) SaveVersion(ctx context.Context, req model.SaveVersionRequest) (*model.PromptVersion, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	version := strings.TrimSpace(req.Version)
	if version == "" {
		resolved, err := s.resolveNextVersion(ctx, name, req)
		if err != nil {
			return nil, err
		}
		version = resolved
	}

	// 내용이 같은 중복 저장 방지: overwrite가 아니면 동일 (name, version)은 거부
	if existing, err := s.db.GetVersion(ctx, name, version); err == nil {
		if !req.Overwrite {
			return nil, fmt.Errorf("%w: version %s already exists for %s", ErrConflict, version, name)
		}
		if _, err := s.db.DeleteVersion(ctx, name, version); err != nil {
			return nil, err
		}
		log.Printf("[Version] Overwriting %s/%s (old id=%d)", name, version, existing.ID)
	} else if !db.IsNoRows(err) {
		return nil, err
	}

	v := model.PromptVersion{
		Name:       name,
		Version:    version,
		SystemText: req.SystemText,
		UserText:   req.UserText,
		Metadata:   req.Metadata,
	}

	// git 커밋/브랜치 기록 (저장소 밖이면 생략)
	if commit, ok := gitmeta.CurrentCommit(ctx); ok {
		v.GitCommit = &commit
	}
	if branch, ok := gitmeta.CurrentBranch(ctx); ok {
		v.GitBranch = &branch
	}

	id, err := s.db.SaveVersion(ctx, v)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: version %s already exists for %s", ErrConflict, version, name)
		}
		return nil, err
	}
	v.ID = id

	if s.embedder != nil {
		s.embedder.EmbedVersion(ctx, &v)
	}

	log.Printf("[Version] Saved %s/%s (id=%d)", name, version, id)
	return &v, nil
}

// resolveNextVersion - 최신 버전에서 다음 버전 번호 계산
func (s *VersionService) resolveNextVersion(ctx context.Context, name string, req model.SaveVersionRequest) (string, error) {
	bump := semver.BumpPatch
	if req.BumpType != "" {
		parsed, ok := semver.ParseBump(req.BumpType)
		if !ok {
			return "", fmt.Errorf("%w: unknown bump_type %q", ErrInvalidInput, req.BumpType)
		}
		bump = parsed
	}

	label := semver.LabelNone
	if req.PreLabel != "" {
		parsed, ok := semver.ParseLabel(req.PreLabel)
		if !ok {
			return "", fmt.Errorf("%w: unknown pre_label %q", ErrInvalidInput, req.PreLabel)
		}
		label = parsed
	}

	current := ""
	latest, err := s.db.GetLatestVersion(ctx, name)
	if err != nil {
		if !db.IsNoRows(err) {
			return "", err
		}
	} else {
		current = latest.Version
	}

	return semver.Next(current, bump, label, req.PreNumber), nil
}

// GetVersion - (name, version) 단건 조회. version이 "latest"면 최신 버전
func (s *VersionService) GetVersion(ctx context.Context, name, version string) (*model.PromptVersion, error) {
	var v *model.PromptVersion
	var err error

	if version == "" || version == "latest" {
		v, err = s.db.GetLatestVersion(ctx, name)
	} else {
		v, err = s.db.GetVersion(ctx, name, version)
	}
	if err != nil {
		if db.IsNoRows(err) {
			return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, name, version)
		}
		return nil, err
	}
	return v, nil
}

// ListVersions - 프롬프트 하나의 버전 목록
func (s *VersionService) ListVersions(ctx context.Context, name string) ([]model.VersionListItem, error) {
	return s.db.ListVersions(ctx, name)
}

// ListPrompts - 추적 중인 프롬프트 이름 목록
func (s *VersionService) ListPrompts(ctx context.Context) ([]string, error) {
	return s.db.ListPrompts(ctx)
}

// DeleteVersion - 버전과 소속 메트릭/주석 삭제
func (s *VersionService) DeleteVersion(ctx context.Context, name, version string) error {
	deleted, err := s.db.DeleteVersion(ctx, name, version)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, name, version)
	}
	return nil
}

// Rollback - 과거 버전의 내용으로 새 patch 버전 생성
//
// 대상 버전 자체를 current로 되돌리는 것이 아니라, 그 내용을 복사한
// 새 버전을 만들어 이력을 보존합니다.
func (s *VersionService) Rollback(ctx context.Context, name, toVersion string) (*model.PromptVersion, error) {
	target, err := s.db.GetVersion(ctx, name, toVersion)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, name, toVersion)
		}
		return nil, err
	}

	metadata := withRollbackOrigin(target.Metadata, toVersion)
	saved, err := s.SaveVersion(ctx, model.SaveVersionRequest{
		Name:       name,
		SystemText: target.SystemText,
		UserText:   target.UserText,
		BumpType:   "patch",
		Metadata:   metadata,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[Version] Rolled back %s to contents of %s (new version %s)", name, toVersion, saved.Version)
	return saved, nil
}

// withRollbackOrigin - metadata에 rollback_from 기록. 파싱 불가능한 metadata는 유지
func withRollbackOrigin(metadata json.RawMessage, fromVersion string) json.RawMessage {
	merged := map[string]any{}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &merged); err != nil {
			return metadata
		}
	}
	merged["rollback_from"] = fromVersion
	out, err := json.Marshal(merged)
	if err != nil {
		return metadata
	}
	return out
}

// Annotate - 버전에 주석 추가
func (s *VersionService) Annotate(ctx context.Context, name, version string, req model.AnnotationRequest) (int64, error) {
	if strings.TrimSpace(req.Text) == "" {
		return 0, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}

	v, err := s.GetVersion(ctx, name, version)
	if err != nil {
		return 0, err
	}
	return s.db.AddAnnotation(ctx, v.ID, req.Text, req.Author)
}

// GetAnnotations - 버전의 주석 목록
func (s *VersionService) GetAnnotations(ctx context.Context, name, version string) ([]model.Annotation, error) {
	v, err := s.GetVersion(ctx, name, version)
	if err != nil {
		return nil, err
	}
	return s.db.GetAnnotations(ctx, v.ID)
}
