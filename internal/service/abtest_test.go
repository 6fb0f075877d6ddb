package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/prompt-ops/backend/internal/model"
)

type fakeABTestRepo struct {
	ids    map[string]int64
	values map[int64][]float64
	column string
}

func (f *fakeABTestRepo) GetVersion(ctx context.Context, name, version string) (*model.PromptVersion, error) {
	id, ok := f.ids[version]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &model.PromptVersion{ID: id, Name: name, Version: version}, nil
}

func (f *fakeABTestRepo) GetMetricValues(ctx context.Context, versionID int64, column string) ([]float64, error) {
	f.column = column
	return f.values[versionID], nil
}

func TestABTestRun(t *testing.T) {
	repo := &fakeABTestRepo{
		ids: map[string]int64{"1.0.0": 1, "1.1.0": 2},
		values: map[int64][]float64{
			1: {0.70, 0.80, 0.75}, // mean 0.75
			2: {0.90, 0.90, 0.90}, // mean 0.90
		},
	}
	svc := NewABTestService(repo)

	result, err := svc.Run(context.Background(), "summarize", "1.0.0", "1.1.0", "quality")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if repo.column != "quality_score" {
		t.Errorf("queried column = %s, want quality_score", repo.column)
	}
	if result.Winner != "1.1.0" {
		t.Errorf("winner = %s, want 1.1.0", result.Winner)
	}
	if !almostEqual(result.MeanA, 0.75) || !almostEqual(result.MeanB, 0.90) {
		t.Errorf("means = %f / %f, want 0.75 / 0.90", result.MeanA, result.MeanB)
	}
	if !almostEqual(result.Improvement, 20.0) {
		t.Errorf("improvement = %f, want 20.0", result.Improvement)
	}
	if !almostEqual(result.Confidence, 3.0/30.0) {
		t.Errorf("confidence = %f, want 0.1", result.Confidence)
	}
	if result.SamplesA != 3 || result.SamplesB != 3 {
		t.Errorf("samples = %d / %d, want 3 / 3", result.SamplesA, result.SamplesB)
	}
}

func TestABTestConfidenceCapped(t *testing.T) {
	many := make([]float64, 100)
	for i := range many {
		many[i] = 1.0
	}
	repo := &fakeABTestRepo{
		ids:    map[string]int64{"1.0.0": 1, "1.1.0": 2},
		values: map[int64][]float64{1: many, 2: many},
	}
	svc := NewABTestService(repo)

	result, err := svc.Run(context.Background(), "summarize", "1.0.0", "1.1.0", "latency")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Confidence != 1.0 {
		t.Errorf("confidence = %f, want capped 1.0", result.Confidence)
	}
	// 동률이면 versionA 유지
	if result.Winner != "1.0.0" {
		t.Errorf("tie winner = %s, want 1.0.0", result.Winner)
	}
}

func TestABTestValidation(t *testing.T) {
	repo := &fakeABTestRepo{
		ids:    map[string]int64{"1.0.0": 1, "1.1.0": 2},
		values: map[int64][]float64{1: {1.0}},
	}
	svc := NewABTestService(repo)
	ctx := context.Background()

	if _, err := svc.Run(ctx, "summarize", "1.0.0", "1.1.0", "vibes"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown metric error = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Run(ctx, "summarize", "1.0.0", "9.9.9", "cost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing version error = %v, want ErrNotFound", err)
	}
	// 한쪽에 메트릭이 없으면 비교 불가
	if _, err := svc.Run(ctx, "summarize", "1.0.0", "1.1.0", "cost"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty samples error = %v, want ErrInvalidInput", err)
	}
}
