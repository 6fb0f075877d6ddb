package service

import (
	"context"
	"strings"
	"testing"

	"github.com/prompt-ops/backend/internal/model"
)

// exportRepo까지 겸하는 fake
type fakeExportRepo struct {
	*fakeVersionRepo
	summaries map[int64]*model.MetricSummary
}

func (f *fakeExportRepo) ListVersionsFull(ctx context.Context, name string) ([]model.PromptVersion, error) {
	var out []model.PromptVersion
	for i := len(f.versions) - 1; i >= 0; i-- {
		if f.versions[i].Name == name {
			out = append(out, f.versions[i])
		}
	}
	return out, nil
}

func (f *fakeExportRepo) GetMetricSummary(ctx context.Context, versionID int64) (*model.MetricSummary, error) {
	if s, ok := f.summaries[versionID]; ok {
		return s, nil
	}
	return &model.MetricSummary{}, nil
}

func TestExportIncludesAllVersions(t *testing.T) {
	repo := &fakeExportRepo{fakeVersionRepo: newFakeVersionRepo(), summaries: map[int64]*model.MetricSummary{}}
	repo.seed("summarize", "1.0.0", "first")
	repo.seed("summarize", "1.1.0", "second")
	branch := "main"
	repo.versions[0].GitBranch = &branch
	repo.summaries[1] = &model.MetricSummary{CallCount: 5, SuccessRate: 1.0}
	svc := NewExportService(repo, NewVersionService(repo.fakeVersionRepo))

	export, err := svc.Export(context.Background(), "summarize", true)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if export.PromptName != "summarize" || len(export.Versions) != 2 {
		t.Fatalf("export = %s with %d versions, want summarize with 2", export.PromptName, len(export.Versions))
	}

	// 최신순
	if export.Versions[0].Version != "1.1.0" || export.Versions[1].Version != "1.0.0" {
		t.Errorf("version order = %s, %s", export.Versions[0].Version, export.Versions[1].Version)
	}
	if export.Versions[1].MetricsCount != 5 || export.Versions[1].MetricsSummary == nil {
		t.Errorf("metrics for 1.0.0 = count %d, summary %v", export.Versions[1].MetricsCount, export.Versions[1].MetricsSummary)
	}
	if export.Versions[0].MetricsSummary != nil {
		t.Error("version without metrics should omit summary")
	}
	if export.Versions[1].GitBranch == nil || *export.Versions[1].GitBranch != "main" {
		t.Errorf("git branch = %v, want main", export.Versions[1].GitBranch)
	}
}

func TestExportUnknownPrompt(t *testing.T) {
	repo := &fakeExportRepo{fakeVersionRepo: newFakeVersionRepo()}
	svc := NewExportService(repo, NewVersionService(repo.fakeVersionRepo))

	if _, err := svc.Export(context.Background(), "nope", false); err == nil {
		t.Fatal("expected error for unknown prompt")
	}
}

func TestImportRestoresInCreationOrder(t *testing.T) {
	repo := &fakeExportRepo{fakeVersionRepo: newFakeVersionRepo()}
	svc := NewExportService(repo, NewVersionService(repo.fakeVersionRepo))

	// export 포맷은 최신순
	result, err := svc.Import(context.Background(), model.ImportRequest{
		Data: model.PromptExport{
			PromptName: "summarize",
			Versions: []model.VersionExport{
				{Version: "1.1.0", SystemText: "second"},
				{Version: "1.0.0", SystemText: "first"},
			},
		},
	})
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if result.Imported != 2 || result.Skipped != 0 || result.Total != 2 {
		t.Fatalf("result = %+v", result)
	}
	if result.BatchID == "" {
		t.Error("expected batch ID")
	}

	// 오래된 버전이 먼저 저장되어야 함
	if len(repo.versions) != 2 || repo.versions[0].Version != "1.0.0" || repo.versions[1].Version != "1.1.0" {
		t.Errorf("stored order = %+v", repo.versions)
	}
}

func TestImportSkipsExistingVersions(t *testing.T) {
	repo := &fakeExportRepo{fakeVersionRepo: newFakeVersionRepo()}
	repo.seed("summarize", "1.0.0", "existing")
	svc := NewExportService(repo, NewVersionService(repo.fakeVersionRepo))

	result, err := svc.Import(context.Background(), model.ImportRequest{
		Data: model.PromptExport{
			PromptName: "summarize",
			Versions: []model.VersionExport{
				{Version: "1.1.0", SystemText: "new"},
				{Version: "1.0.0", SystemText: "duplicate"},
			},
		},
	})
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if result.Imported != 1 || result.Skipped != 1 {
		t.Fatalf("result = %+v", result)
	}

	// 기존 버전 내용은 유지
	existing, err := repo.GetVersion(context.Background(), "summarize", "1.0.0")
	if err != nil {
		t.Fatalf("GetVersion() error = %v", err)
	}
	if existing.SystemText != "existing" {
		t.Errorf("existing version text = %q, want untouched", existing.SystemText)
	}
}

func TestParseImport(t *testing.T) {
	jsonData := []byte(`{"prompt_name": "summarize", "versions": [{"version": "1.0.0"}]}`)
	yamlData := []byte("prompt_name: summarize\nversions:\n  - version: 1.0.0\n")

	for _, data := range [][]byte{jsonData, yamlData} {
		export, err := ParseImport(data)
		if err != nil {
			t.Fatalf("ParseImport(%s) error = %v", data, err)
		}
		if export.PromptName != "summarize" || len(export.Versions) != 1 {
			t.Errorf("parsed = %+v", export)
		}
	}

	_, err := ParseImport([]byte("{{{not valid"))
	if err == nil {
		t.Fatal("expected error for garbage input")
	}
	if !strings.Contains(err.Error(), "neither") {
		t.Errorf("error = %v, want format hint", err)
	}
}
