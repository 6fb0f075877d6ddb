package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/prompt-ops/backend/internal/model"
)

type fakeMetricsRepo struct {
	version   *model.PromptVersion
	saved     []model.MetricRecord
	summaries map[int64]*model.MetricSummary
	listItems []model.VersionListItem
}

func (f *fakeMetricsRepo) GetVersion(ctx context.Context, name, version string) (*model.PromptVersion, error) {
	if f.version == nil || f.version.Version != version {
		return nil, pgx.ErrNoRows
	}
	return f.version, nil
}

func (f *fakeMetricsRepo) ListVersions(ctx context.Context, name string) ([]model.VersionListItem, error) {
	return f.listItems, nil
}

func (f *fakeMetricsRepo) SaveMetric(ctx context.Context, m model.MetricRecord) (int64, error) {
	f.saved = append(f.saved, m)
	return int64(len(f.saved)), nil
}

func (f *fakeMetricsRepo) GetMetrics(ctx context.Context, versionID int64) ([]model.MetricRecord, error) {
	return f.saved, nil
}

func (f *fakeMetricsRepo) GetMetricSummary(ctx context.Context, versionID int64) (*model.MetricSummary, error) {
	if s, ok := f.summaries[versionID]; ok {
		return s, nil
	}
	return &model.MetricSummary{}, nil
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateCost(t *testing.T) {
	tests := []struct {
		model  string
		input  int
		output int
		want   float64
	}{
		{"gpt-4o", 1_000_000, 1_000_000, 5.75},
		{"claude-sonnet-4", 1000, 500, 0.00506 + 0.0115},
		{"gpt-4o", 0, 0, 0.0},
		{"unknown-model", 1000, 1000, 0.0},
	}

	for _, tt := range tests {
		got := CalculateCost(tt.model, tt.input, tt.output)
		if !almostEqual(got, tt.want) {
			t.Errorf("CalculateCost(%s, %d, %d) = %f, want %f", tt.model, tt.input, tt.output, got, tt.want)
		}
	}
}

func TestAddModelPricing(t *testing.T) {
	AddModelPricing("house-model", 2.0, 4.0)
	got := CalculateCost("house-model", 500_000, 250_000)
	if !almostEqual(got, 1.0+1.0) {
		t.Errorf("CalculateCost(house-model) = %f, want 2.0", got)
	}
}

func TestLogMetricsAutoCost(t *testing.T) {
	repo := &fakeMetricsRepo{version: &model.PromptVersion{ID: 7, Name: "summarize", Version: "1.0.0"}}
	svc := NewMetricsService(repo)

	modelName := "gpt-4o"
	in, out := 1_000_000, 1_000_000
	_, err := svc.LogMetrics(context.Background(), "summarize", "1.0.0", model.LogMetricsRequest{
		ModelName:    &modelName,
		InputTokens:  &in,
		OutputTokens: &out,
	})
	if err != nil {
		t.Fatalf("LogMetrics() error = %v", err)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("saved %d records, want 1", len(repo.saved))
	}

	record := repo.saved[0]
	if record.VersionID != 7 {
		t.Errorf("version ID = %d, want 7", record.VersionID)
	}
	if record.TotalTokens == nil || *record.TotalTokens != 2_000_000 {
		t.Errorf("total tokens = %v, want 2000000", record.TotalTokens)
	}
	if record.CostEUR == nil || !almostEqual(*record.CostEUR, 5.75) {
		t.Errorf("auto cost = %v, want 5.75", record.CostEUR)
	}
	if !record.Success {
		t.Error("success should default to true")
	}
}

func TestLogMetricsExplicitTotalTokens(t *testing.T) {
	repo := &fakeMetricsRepo{version: &model.PromptVersion{ID: 7, Name: "summarize", Version: "1.0.0"}}
	svc := NewMetricsService(repo)

	// input/output 없이 total_tokens만 기록하는 클라이언트도 지원
	total := 1234
	_, err := svc.LogMetrics(context.Background(), "summarize", "1.0.0", model.LogMetricsRequest{
		TotalTokens: &total,
	})
	if err != nil {
		t.Fatalf("LogMetrics() error = %v", err)
	}

	record := repo.saved[0]
	if record.TotalTokens == nil || *record.TotalTokens != 1234 {
		t.Errorf("total tokens = %v, want explicit 1234", record.TotalTokens)
	}
	if record.InputTokens != nil || record.OutputTokens != nil {
		t.Errorf("input/output = %v/%v, want nil", record.InputTokens, record.OutputTokens)
	}

	// 명시된 total은 input + output 합산보다 우선
	in, out := 10, 20
	explicit := 999
	if _, err := svc.LogMetrics(context.Background(), "summarize", "1.0.0", model.LogMetricsRequest{
		InputTokens:  &in,
		OutputTokens: &out,
		TotalTokens:  &explicit,
	}); err != nil {
		t.Fatalf("LogMetrics() error = %v", err)
	}
	if got := repo.saved[1].TotalTokens; got == nil || *got != 999 {
		t.Errorf("total tokens = %v, want explicit 999", got)
	}
}

func TestLogMetricsExplicitCostWins(t *testing.T) {
	repo := &fakeMetricsRepo{version: &model.PromptVersion{ID: 7, Name: "summarize", Version: "1.0.0"}}
	svc := NewMetricsService(repo)

	modelName := "gpt-4o"
	in, out := 100, 100
	cost := 0.42
	success := false
	_, err := svc.LogMetrics(context.Background(), "summarize", "1.0.0", model.LogMetricsRequest{
		ModelName:    &modelName,
		InputTokens:  &in,
		OutputTokens: &out,
		CostEUR:      &cost,
		Success:      &success,
	})
	if err != nil {
		t.Fatalf("LogMetrics() error = %v", err)
	}

	record := repo.saved[0]
	if record.CostEUR == nil || *record.CostEUR != 0.42 {
		t.Errorf("cost = %v, want explicit 0.42", record.CostEUR)
	}
	if record.Success {
		t.Error("explicit success=false should be preserved")
	}
}

func TestLogMetricsUnknownVersion(t *testing.T) {
	repo := &fakeMetricsRepo{}
	svc := NewMetricsService(repo)

	_, err := svc.LogMetrics(context.Background(), "summarize", "9.9.9", model.LogMetricsRequest{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestCompareNoVersions(t *testing.T) {
	repo := &fakeMetricsRepo{}
	svc := NewMetricsService(repo)

	_, err := svc.Compare(context.Background(), "summarize", nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}
