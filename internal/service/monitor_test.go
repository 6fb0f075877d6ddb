package service

import (
	"context"
	"testing"

	"github.com/prompt-ops/backend/internal/config"
	"github.com/prompt-ops/backend/internal/model"
)

// 버전 문자열로 요약을 찾을 수 있게 ID 매핑을 들고 있는 fake repo
type summaryRepo struct {
	byVersion map[string]*model.MetricSummary
	idToVer   map[int64]string
}

func newSummaryRepo(byVersion map[string]*model.MetricSummary) *summaryRepo {
	r := &summaryRepo{byVersion: byVersion, idToVer: map[int64]string{}}
	var id int64 = 1
	for v := range byVersion {
		r.idToVer[id] = v
		id++
	}
	return r
}

func (r *summaryRepo) GetVersion(ctx context.Context, name, version string) (*model.PromptVersion, error) {
	for id, v := range r.idToVer {
		if v == version {
			return &model.PromptVersion{ID: id, Name: name, Version: version}, nil
		}
	}
	return nil, ErrNotFound
}

func (r *summaryRepo) GetMetricSummary(ctx context.Context, versionID int64) (*model.MetricSummary, error) {
	return r.byVersion[r.idToVer[versionID]], nil
}

func ptr(v float64) *float64 { return &v }

func summary(cost, latency, quality, successRate float64) *model.MetricSummary {
	return &model.MetricSummary{
		CallCount:   10,
		AvgCost:     ptr(cost),
		AvgLatency:  ptr(latency),
		AvgQuality:  ptr(quality),
		SuccessRate: successRate,
	}
}

func defaultMonitorConfig() config.MonitorConfig {
	return config.MonitorConfig{
		CostThreshold:      0.20,
		LatencyThreshold:   0.30,
		QualityThreshold:   -0.10,
		ErrorRateThreshold: 0.05,
	}
}

func TestCheckRegressionCostIncrease(t *testing.T) {
	repo := newSummaryRepo(map[string]*model.MetricSummary{
		"1.0.0": summary(1.00, 100, 0.9, 1.0),
		"1.1.0": summary(1.25, 100, 0.9, 1.0),
	})
	monitor := NewRegressionMonitor(repo, defaultMonitorConfig())

	alerts, err := monitor.CheckRegression(context.Background(), model.CheckRegressionRequest{
		Name:            "summarize",
		BaselineVersion: "1.0.0",
		CurrentVersion:  "1.1.0",
	})
	if err != nil {
		t.Fatalf("CheckRegression() error = %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("expected exactly 1 alert, got %d", len(alerts))
	}

	alert := alerts[0]
	if alert.Type != model.AlertCostIncrease {
		t.Errorf("alert type = %s, want %s", alert.Type, model.AlertCostIncrease)
	}
	if alert.ChangePercent < 24.9 || alert.ChangePercent > 25.1 {
		t.Errorf("change percent = %f, want ~25.0", alert.ChangePercent)
	}
	if alert.BaselineVersion != "1.0.0" || alert.CurrentVersion != "1.1.0" {
		t.Errorf("alert versions = %s/%s", alert.BaselineVersion, alert.CurrentVersion)
	}
}

func TestCheckRegressionNoAlerts(t *testing.T) {
	repo := newSummaryRepo(map[string]*model.MetricSummary{
		"1.0.0": summary(1.00, 100, 0.9, 1.0),
		"1.0.1": summary(1.05, 105, 0.9, 1.0),
	})
	monitor := NewRegressionMonitor(repo, defaultMonitorConfig())

	alerts, err := monitor.CheckRegression(context.Background(), model.CheckRegressionRequest{
		Name:            "summarize",
		BaselineVersion: "1.0.0",
		CurrentVersion:  "1.0.1",
	})
	if err != nil {
		t.Fatalf("CheckRegression() error = %v", err)
	}
	if len(alerts) != 0 {
		t.Fatalf("expected no alerts, got %d", len(alerts))
	}
}

func TestCheckRegressionQualityDrop(t *testing.T) {
	repo := newSummaryRepo(map[string]*model.MetricSummary{
		"1.0.0": summary(1.00, 100, 0.90, 1.0),
		"2.0.0": summary(1.00, 100, 0.70, 1.0),
	})
	monitor := NewRegressionMonitor(repo, defaultMonitorConfig())

	alerts, err := monitor.CheckRegression(context.Background(), model.CheckRegressionRequest{
		Name:            "summarize",
		BaselineVersion: "1.0.0",
		CurrentVersion:  "2.0.0",
	})
	if err != nil {
		t.Fatalf("CheckRegression() error = %v", err)
	}
	if len(alerts) != 1 || alerts[0].Type != model.AlertQualityDrop {
		t.Fatalf("expected quality_drop alert, got %+v", alerts)
	}
}

func TestCheckRegressionCustomThresholds(t *testing.T) {
	repo := newSummaryRepo(map[string]*model.MetricSummary{
		"1.0.0": summary(1.00, 100, 0.9, 1.0),
		"1.1.0": summary(1.25, 100, 0.9, 1.0),
	})
	monitor := NewRegressionMonitor(repo, defaultMonitorConfig())

	// 비용 임계값을 30%로 올리면 25% 증가는 통과
	cost := 0.30
	alerts, err := monitor.CheckRegression(context.Background(), model.CheckRegressionRequest{
		Name:            "summarize",
		BaselineVersion: "1.0.0",
		CurrentVersion:  "1.1.0",
		Thresholds:      &model.Thresholds{Cost: &cost},
	})
	if err != nil {
		t.Fatalf("CheckRegression() error = %v", err)
	}
	if len(alerts) != 0 {
		t.Fatalf("expected no alerts with raised threshold, got %d", len(alerts))
	}
}

func TestCheckRegressionZeroBaseline(t *testing.T) {
	repo := newSummaryRepo(map[string]*model.MetricSummary{
		"1.0.0": summary(0.0, 100, 0.9, 1.0),
		"1.1.0": summary(5.0, 100, 0.9, 1.0),
	})
	monitor := NewRegressionMonitor(repo, defaultMonitorConfig())

	// baseline 0이면 delta 0으로 처리되어 알림 없음
	alerts, err := monitor.CheckRegression(context.Background(), model.CheckRegressionRequest{
		Name:            "summarize",
		BaselineVersion: "1.0.0",
		CurrentVersion:  "1.1.0",
	})
	if err != nil {
		t.Fatalf("CheckRegression() error = %v", err)
	}
	if len(alerts) != 0 {
		t.Fatalf("expected no alerts for zero baseline, got %d", len(alerts))
	}
}

func TestAlertHandlersInvokedInOrder(t *testing.T) {
	repo := newSummaryRepo(map[string]*model.MetricSummary{
		"1.0.0": summary(1.00, 100, 0.9, 1.0),
		"1.1.0": summary(2.00, 100, 0.9, 1.0),
	})
	monitor := NewRegressionMonitor(repo, defaultMonitorConfig())

	var order []string
	monitor.OnAlert(func(alert model.RegressionAlert) {
		order = append(order, "first")
	})
	monitor.OnAlert(func(alert model.RegressionAlert) {
		panic("boom")
	})
	monitor.OnAlert(func(alert model.RegressionAlert) {
		order = append(order, "third")
	})

	alerts, err := monitor.CheckRegression(context.Background(), model.CheckRegressionRequest{
		Name:            "summarize",
		BaselineVersion: "1.0.0",
		CurrentVersion:  "1.1.0",
	})
	if err != nil {
		t.Fatalf("CheckRegression() error = %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}

	// panic이 난 핸들러 뒤의 핸들러도 호출되어야 함
	if len(order) != 2 || order[0] != "first" || order[1] != "third" {
		t.Fatalf("handler order = %v, want [first third]", order)
	}
}

func TestCheckRegressionNoMetricsMeansNoAlerts(t *testing.T) {
	repo := newSummaryRepo(map[string]*model.MetricSummary{
		"1.0.0": summary(1.00, 100, 0.9, 1.0),
		"1.1.0": {CallCount: 0},
	})
	monitor := NewRegressionMonitor(repo, defaultMonitorConfig())

	// 메트릭이 없는 버전과의 비교는 에러가 아니라 빈 결과
	alerts, err := monitor.CheckRegression(context.Background(), model.CheckRegressionRequest{
		Name:            "summarize",
		BaselineVersion: "1.0.0",
		CurrentVersion:  "1.1.0",
	})
	if err != nil {
		t.Fatalf("CheckRegression() error = %v", err)
	}
	if alerts == nil || len(alerts) != 0 {
		t.Fatalf("alerts = %v, want empty non-nil slice", alerts)
	}
}

func TestCheckRegressionMissingVersion(t *testing.T) {
	repo := newSummaryRepo(map[string]*model.MetricSummary{
		"1.0.0": summary(1.00, 100, 0.9, 1.0),
	})
	monitor := NewRegressionMonitor(repo, defaultMonitorConfig())

	_, err := monitor.CheckRegression(context.Background(), model.CheckRegressionRequest{
		Name:            "summarize",
		BaselineVersion: "1.0.0",
		CurrentVersion:  "9.9.9",
	})
	if err == nil {
		t.Fatal("expected error for missing version")
	}
}
