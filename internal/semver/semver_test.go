package semver

import "testing"

func intPtr(n int) *int { return &n }

func TestNext(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		bump      Bump
		label     PreLabel
		preNumber *int
		want      string
	}{
		{name: "first-version-patch", current: "", bump: BumpPatch, label: LabelNone, want: "1.0.0"},
		{name: "first-version-major", current: "", bump: BumpMajor, label: LabelNone, want: "1.0.0"},
		{name: "first-version-with-label", current: "", bump: BumpMinor, label: LabelSnapshot, want: "1.0.0-SNAPSHOT"},
		{name: "patch-bump", current: "1.0.0", bump: BumpPatch, label: LabelNone, want: "1.0.1"},
		{name: "minor-bump-resets-patch", current: "1.2.3", bump: BumpMinor, label: LabelNone, want: "1.3.0"},
		{name: "major-bump-resets-all", current: "1.2.3", bump: BumpMajor, label: LabelNone, want: "2.0.0"},
		{name: "patch-snapshot", current: "1.0.0", bump: BumpPatch, label: LabelSnapshot, want: "1.0.1-SNAPSHOT"},
		{name: "minor-milestone-numbered", current: "1.0.0", bump: BumpMinor, label: LabelMilestone, preNumber: intPtr(1), want: "1.1.0-M.1"},
		{name: "rc-iteration", current: "1.0.0-RC.1", bump: BumpPatch, label: LabelRC, preNumber: intPtr(2), want: "1.0.1-RC.2"},
		{name: "promote-rc-to-stable", current: "1.0.0-RC.2", bump: BumpPatch, label: LabelStable, want: "1.0.0"},
		{name: "promote-snapshot-to-stable", current: "2.1.0-SNAPSHOT", bump: BumpPatch, label: LabelStable, want: "2.1.0"},
		{name: "stable-label-on-stable-bumps", current: "1.0.0", bump: BumpPatch, label: LabelStable, want: "1.0.1"},
		{name: "unparseable-resets", current: "not-a-version", bump: BumpPatch, label: LabelNone, want: "1.0.0"},
		{name: "garbage-with-label", current: "v1.2", bump: BumpMajor, label: LabelRC, preNumber: intPtr(1), want: "1.0.0-RC.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next(tt.current, tt.bump, tt.label, tt.preNumber)
			if got != tt.want {
				t.Fatalf("Next(%q, %v, %v) = %q, want %q", tt.current, tt.bump, tt.label, got, tt.want)
			}
		})
	}
}

func TestNextStablePatchIsMonotonic(t *testing.T) {
	v1 := Next("3.4.7", BumpPatch, LabelStable, nil)
	v2 := Next(v1, BumpPatch, LabelStable, nil)

	if v1 != "3.4.8" || v2 != "3.4.9" {
		t.Fatalf("expected 3.4.8 then 3.4.9, got %q then %q", v1, v2)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Version
		ok    bool
	}{
		{input: "1.2.3", want: Version{Major: 1, Minor: 2, Patch: 3}, ok: true},
		{input: "0.0.0", want: Version{}, ok: true},
		{input: "1.0.0-SNAPSHOT", want: Version{Major: 1, PreLabel: "SNAPSHOT"}, ok: true},
		{input: "1.0.0-RC.2", want: Version{Major: 1, PreLabel: "RC", PreNumber: 2, HasNumber: true}, ok: true},
		{input: "10.20.30-M.11", want: Version{Major: 10, Minor: 20, Patch: 30, PreLabel: "M", PreNumber: 11, HasNumber: true}, ok: true},
		{input: "1.2", ok: false},
		{input: "v1.2.3", ok: false},
		{input: "1.2.3-", ok: false},
		{input: "1.2.3-RC.", ok: false},
		{input: "abc", ok: false},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if ok != tt.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseBump(t *testing.T) {
	tests := []struct {
		input string
		want  Bump
		ok    bool
	}{
		{"major", BumpMajor, true},
		{"MAJOR", BumpMajor, true},
		{"Minor", BumpMinor, true},
		{"patch", BumpPatch, true},
		{" patch ", BumpPatch, true},
		{"hotfix", BumpNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseBump(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("ParseBump(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		input string
		want  PreLabel
		ok    bool
	}{
		{"snapshot", LabelSnapshot, true},
		{"SNAPSHOT", LabelSnapshot, true},
		{"m", LabelMilestone, true},
		{"milestone", LabelMilestone, true},
		{"rc", LabelRC, true},
		{"RC", LabelRC, true},
		{"release_candidate", LabelRC, true},
		{"stable", LabelStable, true},
		{"", LabelStable, true},
		{"beta", LabelNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseLabel(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("ParseLabel(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}
