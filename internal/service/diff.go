package service

import (
	"context"
	"fmt"

	"github.com/prompt-ops/backend/internal/db"
	"github.com/prompt-ops/backend/internal/diff"
	"github.com/prompt-ops/backend/internal/model"
)

// notFoundOrErr - no rows 에러를 ErrNotFound로 변환
func notFoundOrErr(err error, name, version string) error {
	if db.IsNoRows(err) {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, name, version)
	}
	return err
}

// diffRepo - DB 인터페이스
type diffRepo interface {
	GetVersion(ctx context.Context, name, version string) (*model.PromptVersion, error)
}

// DiffService - 두 버전의 텍스트 비교
type DiffService struct {
	db diffRepo
}

func NewDiffService(db diffRepo) *DiffService {
	return &DiffService{db: db}
}

// Compare - (name, v1) -> (name, v2) 변화량 계산
func (s *DiffService) Compare(ctx context.Context, name, oldVersion, newVersion string) (*diff.Result, error) {
	oldV, err := s.getVersion(ctx, name, oldVersion)
	if err != nil {
		return nil, err
	}
	newV, err := s.getVersion(ctx, name, newVersion)
	if err != nil {
		return nil, err
	}

	result := diff.Compute(oldV.SystemText, oldV.UserText, newV.SystemText, newV.UserText)
	return &result, nil
}

func (s *DiffService) getVersion(ctx context.Context, name, version string) (*model.PromptVersion, error) {
	v, err := s.db.GetVersion(ctx, name, version)
	if err != nil {
		return nil, notFoundOrErr(err, name, version)
	}
	return v, nil
}
