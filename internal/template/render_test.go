package template

import (
	"testing"
	"time"

	"github.com/prompt-ops/backend/internal/model"
)

func TestRenderBody(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	prompt := &PromptData{
		Name:      "summarize",
		Version:   "1.2.0",
		GitCommit: "abc123",
		CreatedAt: created,
	}
	alert := &AlertData{
		Type:          "cost_increase",
		Metric:        "avg_cost",
		ChangePercent: 25.5,
		Threshold:     0.2,
	}

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			"prompt vars",
			`{"name": "{{prompt.name}}", "version": "{{prompt.version}}"}`,
			`{"name": "summarize", "version": "1.2.0"}`,
		},
		{
			"alert vars",
			"{{alert.type}}: {{alert.metric}} changed {{alert.change_percent}}% (threshold {{alert.threshold}})",
			"cost_increase: avg_cost changed 25.5% (threshold 0.2)",
		},
		{
			"created_at rfc3339",
			"{{prompt.created_at}}",
			"2026-03-01T12:00:00Z",
		},
		{
			"unknown vars untouched",
			"{{prompt.name}} {{something.else}}",
			"summarize {{something.else}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderBody(tt.body, prompt, alert)
			if got != tt.want {
				t.Errorf("RenderBody() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderBodyNilData(t *testing.T) {
	got := RenderBody("[{{prompt.name}}][{{alert.metric}}]", nil, nil)
	if got != "[][]" {
		t.Errorf("RenderBody() with nil data = %q, want %q", got, "[][]")
	}
}

func TestAlertDataFromModel(t *testing.T) {
	alert := model.RegressionAlert{
		Type:            model.AlertQualityDrop,
		Metric:          "avg_quality",
		Message:         "Quality dropped",
		BaselineVersion: "1.0.0",
		CurrentVersion:  "1.1.0",
		BaselineValue:   0.9,
		CurrentValue:    0.7,
		ChangePercent:   -22.2,
		Threshold:       -0.1,
	}

	data := AlertDataFromModel(alert)
	if data.Type != "quality_drop" || data.Metric != "avg_quality" {
		t.Errorf("converted alert = %+v", data)
	}
	if data.ChangePercent != -22.2 {
		t.Errorf("change percent = %f, want -22.2", data.ChangePercent)
	}
}
