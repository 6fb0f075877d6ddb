package client

import (
	"testing"

	"github.com/prompt-ops/backend/internal/model"
)

func TestGetColorByAlertType(t *testing.T) {
	c := NewSlackClient("xoxb-test", "C12345", "")

	tests := []struct {
		alertType model.AlertType
		want      string
	}{
		{model.AlertQualityDrop, "#dc3545"},
		{model.AlertErrorRateUp, "#dc3545"},
		{model.AlertCostIncrease, "#ffc107"},
		{model.AlertLatencyIncrease, "#ffc107"},
		{model.AlertType("unknown"), "#17a2b8"},
	}

	for _, tt := range tests {
		got := c.getColorByAlertType(tt.alertType)
		if got != tt.want {
			t.Errorf("getColorByAlertType(%s) = %s, want %s", tt.alertType, got, tt.want)
		}
	}
}

func TestThreadTSLifecycle(t *testing.T) {
	c := NewSlackClient("xoxb-test", "C12345", "")

	if _, ok := c.GetThreadTS("summarize"); ok {
		t.Fatal("expected no thread TS before store")
	}

	c.StoreThreadTS("summarize", "1700000000.000100")
	ts, ok := c.GetThreadTS("summarize")
	if !ok || ts != "1700000000.000100" {
		t.Fatalf("GetThreadTS() = %q, %v", ts, ok)
	}

	// 다른 프롬프트의 스레드와 섞이지 않아야 함
	if _, ok := c.GetThreadTS("translate"); ok {
		t.Error("thread TS leaked across prompt names")
	}

	c.DeleteThreadTS("summarize")
	if _, ok := c.GetThreadTS("summarize"); ok {
		t.Error("expected thread TS removed after delete")
	}
}

func TestIsConfigured(t *testing.T) {
	if NewSlackClient("", "", "").IsConfigured() {
		t.Error("empty client should not be configured")
	}
	if NewSlackClient("xoxb-test", "", "").IsConfigured() {
		t.Error("missing channel should not be configured")
	}
	if !NewSlackClient("xoxb-test", "C12345", "").IsConfigured() {
		t.Error("token + channel should be configured")
	}
}
