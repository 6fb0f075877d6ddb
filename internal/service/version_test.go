package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/prompt-ops/backend/internal/model"
)

// 메모리 기반 fake repo. 없는 row는 DB 계층과 동일하게 pgx.ErrNoRows를 돌려준다.
type fakeVersionRepo struct {
	versions    []model.PromptVersion
	annotations map[int64][]model.Annotation
	nextID      int64
}

func newFakeVersionRepo() *fakeVersionRepo {
	return &fakeVersionRepo{annotations: map[int64][]model.Annotation{}, nextID: 1}
}

func (f *fakeVersionRepo) SaveVersion(ctx context.Context, v model.PromptVersion) (int64, error) {
	v.ID = f.nextID
	f.nextID++
	f.versions = append(f.versions, v)
	return v.ID, nil
}

func (f *fakeVersionRepo) GetVersion(ctx context.Context, name, version string) (*model.PromptVersion, error) {
	for i := range f.versions {
		if f.versions[i].Name == name && f.versions[i].Version == version {
			v := f.versions[i]
			return &v, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeVersionRepo) GetLatestVersion(ctx context.Context, name string) (*model.PromptVersion, error) {
	for i := len(f.versions) - 1; i >= 0; i-- {
		if f.versions[i].Name == name {
			v := f.versions[i]
			return &v, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeVersionRepo) ListVersions(ctx context.Context, name string) ([]model.VersionListItem, error) {
	var items []model.VersionListItem
	for i := len(f.versions) - 1; i >= 0; i-- {
		if f.versions[i].Name == name {
			items = append(items, model.VersionListItem{ID: f.versions[i].ID, Version: f.versions[i].Version})
		}
	}
	return items, nil
}

func (f *fakeVersionRepo) ListPrompts(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var names []string
	for _, v := range f.versions {
		if !seen[v.Name] {
			seen[v.Name] = true
			names = append(names, v.Name)
		}
	}
	return names, nil
}

func (f *fakeVersionRepo) DeleteVersion(ctx context.Context, name, version string) (bool, error) {
	for i := range f.versions {
		if f.versions[i].Name == name && f.versions[i].Version == version {
			f.versions = append(f.versions[:i], f.versions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVersionRepo) AddAnnotation(ctx context.Context, versionID int64, text, author string) (int64, error) {
	id := f.nextID
	f.nextID++
	f.annotations[versionID] = append(f.annotations[versionID], model.Annotation{
		ID: id, VersionID: versionID, Text: text, Author: author,
	})
	return id, nil
}

func (f *fakeVersionRepo) GetAnnotations(ctx context.Context, versionID int64) ([]model.Annotation, error) {
	return f.annotations[versionID], nil
}

func (f *fakeVersionRepo) seed(name, version, systemText string) {
	f.versions = append(f.versions, model.PromptVersion{
		ID: f.nextID, Name: name, Version: version, SystemText: systemText,
	})
	f.nextID++
}

func TestSaveVersionFirstVersion(t *testing.T) {
	repo := newFakeVersionRepo()
	svc := NewVersionService(repo)

	saved, err := svc.SaveVersion(context.Background(), model.SaveVersionRequest{
		Name:       "summarize",
		SystemText: "You are a summarizer.",
	})
	if err != nil {
		t.Fatalf("SaveVersion() error = %v", err)
	}
	if saved.Version != "1.0.0" {
		t.Errorf("first version = %s, want 1.0.0", saved.Version)
	}
	if saved.ID == 0 {
		t.Error("expected assigned ID")
	}
}

func TestSaveVersionAutoBump(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		bumpType string
		preLabel string
		want     string
	}{
		{"default patch", "1.2.3", "", "", "1.2.4"},
		{"minor", "1.2.3", "minor", "", "1.3.0"},
		{"major", "1.2.3", "major", "", "2.0.0"},
		{"minor rc", "1.2.3", "minor", "rc", "1.3.0-RC"},
		{"promote prerelease", "1.3.0-RC", "patch", "stable", "1.3.0"},
		{"garbage restarts", "not-a-version", "minor", "", "1.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeVersionRepo()
			repo.seed("summarize", tt.current, "old")
			svc := NewVersionService(repo)

			saved, err := svc.SaveVersion(context.Background(), model.SaveVersionRequest{
				Name:     "summarize",
				BumpType: tt.bumpType,
				PreLabel: tt.preLabel,
			})
			if err != nil {
				t.Fatalf("SaveVersion() error = %v", err)
			}
			if saved.Version != tt.want {
				t.Errorf("version = %s, want %s", saved.Version, tt.want)
			}
		})
	}
}

func TestSaveVersionInvalidInput(t *testing.T) {
	repo := newFakeVersionRepo()
	svc := NewVersionService(repo)

	if _, err := svc.SaveVersion(context.Background(), model.SaveVersionRequest{Name: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("blank name error = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.SaveVersion(context.Background(), model.SaveVersionRequest{Name: "x", BumpType: "mega"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("bad bump_type error = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.SaveVersion(context.Background(), model.SaveVersionRequest{Name: "x", PreLabel: "beta"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("bad pre_label error = %v, want ErrInvalidInput", err)
	}
}

func TestSaveVersionConflict(t *testing.T) {
	repo := newFakeVersionRepo()
	repo.seed("summarize", "1.0.0", "old")
	svc := NewVersionService(repo)

	_, err := svc.SaveVersion(context.Background(), model.SaveVersionRequest{
		Name:    "summarize",
		Version: "1.0.0",
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate save error = %v, want ErrConflict", err)
	}

	// overwrite면 기존 버전을 지우고 다시 저장
	saved, err := svc.SaveVersion(context.Background(), model.SaveVersionRequest{
		Name:       "summarize",
		Version:    "1.0.0",
		SystemText: "new",
		Overwrite:  true,
	})
	if err != nil {
		t.Fatalf("overwrite save error = %v", err)
	}
	if saved.SystemText != "new" {
		t.Errorf("overwritten system text = %q, want %q", saved.SystemText, "new")
	}

	got, err := svc.GetVersion(context.Background(), "summarize", "1.0.0")
	if err != nil {
		t.Fatalf("GetVersion() error = %v", err)
	}
	if got.SystemText != "new" {
		t.Errorf("stored system text = %q, want %q", got.SystemText, "new")
	}
}

func TestGetVersionLatestAlias(t *testing.T) {
	repo := newFakeVersionRepo()
	repo.seed("summarize", "1.0.0", "first")
	repo.seed("summarize", "1.1.0", "second")
	svc := NewVersionService(repo)

	for _, alias := range []string{"latest", ""} {
		got, err := svc.GetVersion(context.Background(), "summarize", alias)
		if err != nil {
			t.Fatalf("GetVersion(%q) error = %v", alias, err)
		}
		if got.Version != "1.1.0" {
			t.Errorf("GetVersion(%q) = %s, want 1.1.0", alias, got.Version)
		}
	}

	if _, err := svc.GetVersion(context.Background(), "summarize", "9.9.9"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing version error = %v, want ErrNotFound", err)
	}
}

func TestDeleteVersionNotFound(t *testing.T) {
	repo := newFakeVersionRepo()
	svc := NewVersionService(repo)

	if err := svc.DeleteVersion(context.Background(), "summarize", "1.0.0"); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete missing error = %v, want ErrNotFound", err)
	}
}

func TestRollbackCreatesNewPatchVersion(t *testing.T) {
	repo := newFakeVersionRepo()
	repo.seed("summarize", "1.0.0", "original")
	repo.seed("summarize", "1.1.0", "broken")
	svc := NewVersionService(repo)

	saved, err := svc.Rollback(context.Background(), "summarize", "1.0.0")
	if err != nil {
		t.Fatalf("Rollback() error = %v", err)
	}
	if saved.Version != "1.1.1" {
		t.Errorf("rollback version = %s, want 1.1.1", saved.Version)
	}
	if saved.SystemText != "original" {
		t.Errorf("rollback system text = %q, want %q", saved.SystemText, "original")
	}

	var meta map[string]any
	if err := json.Unmarshal(saved.Metadata, &meta); err != nil {
		t.Fatalf("rollback metadata unmarshal: %v", err)
	}
	if meta["rollback_from"] != "1.0.0" {
		t.Errorf("rollback_from = %v, want 1.0.0", meta["rollback_from"])
	}

	// 원본 버전은 그대로 남아야 함
	if _, err := svc.GetVersion(context.Background(), "summarize", "1.1.0"); err != nil {
		t.Errorf("previous version should survive rollback: %v", err)
	}
}

func TestAnnotateRequiresText(t *testing.T) {
	repo := newFakeVersionRepo()
	repo.seed("summarize", "1.0.0", "x")
	svc := NewVersionService(repo)

	if _, err := svc.Annotate(context.Background(), "summarize", "1.0.0", model.AnnotationRequest{Text: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank text error = %v, want ErrInvalidInput", err)
	}

	id, err := svc.Annotate(context.Background(), "summarize", "1.0.0", model.AnnotationRequest{Text: "tuned tone", Author: "dana"})
	if err != nil {
		t.Fatalf("Annotate() error = %v", err)
	}
	if id == 0 {
		t.Error("expected annotation ID")
	}

	notes, err := svc.GetAnnotations(context.Background(), "summarize", "1.0.0")
	if err != nil {
		t.Fatalf("GetAnnotations() error = %v", err)
	}
	if len(notes) != 1 || notes[0].Text != "tuned tone" {
		t.Errorf("annotations = %+v", notes)
	}
}
