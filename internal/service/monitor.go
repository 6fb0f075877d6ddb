package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/prompt-ops/backend/internal/config"
	"github.com/prompt-ops/backend/internal/model"
)

// AlertHandler - 감지된 회귀 알림을 받는 콜백 (Slack 전송, webhook 전송 등)
type AlertHandler func(alert model.RegressionAlert)

// monitorRepo - DB 인터페이스
type monitorRepo interface {
	GetVersion(ctx context.Context, name, version string) (*model.PromptVersion, error)
	GetMetricSummary(ctx context.Context, versionID int64) (*model.MetricSummary, error)
}

// RegressionMonitor - baseline 대비 current 버전의 메트릭 회귀 감지
//
// 감지 대상:
//   - cost: 평균 비용 증가
//   - latency: 평균 지연시간 증가
//   - quality: 평균 품질 점수 하락
//   - error_rate: 에러 비율 증가
type RegressionMonitor struct {
	db       monitorRepo
	defaults model.Thresholds

	mu       sync.Mutex
	handlers []AlertHandler
}

func NewRegressionMonitor(db monitorRepo, cfg config.MonitorConfig) *RegressionMonitor {
	cost := cfg.CostThreshold
	latency := cfg.LatencyThreshold
	quality := cfg.QualityThreshold
	errorRate := cfg.ErrorRateThreshold
	return &RegressionMonitor{
		db: db,
		defaults: model.Thresholds{
			Cost:      &cost,
			Latency:   &latency,
			Quality:   &quality,
			ErrorRate: &errorRate,
		},
	}
}

// OnAlert - 알림 핸들러 등록. 등록 순서대로 호출됩니다
func (m *RegressionMonitor) OnAlert(handler AlertHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers = append(m.handlers, handler)
}

// CheckRegression - 두 버전의 메트릭 요약을 비교해 회귀 알림 생성
//
// 감지된 알림마다 등록된 핸들러를 순서대로 호출합니다. 핸들러의 panic은
// 격리되어 다음 핸들러 호출에 영향을 주지 않습니다.
func (m *RegressionMonitor) CheckRegression(ctx context.Context, req model.CheckRegressionRequest) ([]model.RegressionAlert, error) {
	baseline, err := m.getSummary(ctx, req.Name, req.BaselineVersion)
	if err != nil {
		return nil, err
	}
	current, err := m.getSummary(ctx, req.Name, req.CurrentVersion)
	if err != nil {
		return nil, err
	}

	// 어느 한쪽에 기록된 메트릭이 없으면 비교 대상이 없는 것이므로 알림 없음
	if baseline == nil || current == nil {
		return []model.RegressionAlert{}, nil
	}

	thresholds := m.resolveThresholds(req.Thresholds)
	alerts := m.detect(req, baseline, current, thresholds)

	for _, alert := range alerts {
		m.dispatch(alert)
	}
	return alerts, nil
}

// resolveThresholds - 요청 임계값과 기본값 병합 (nil 필드는 기본값)
func (m *RegressionMonitor) resolveThresholds(req *model.Thresholds) model.Thresholds {
	resolved := m.defaults
	if req == nil {
		return resolved
	}
	if req.Cost != nil {
		resolved.Cost = req.Cost
	}
	if req.Latency != nil {
		resolved.Latency = req.Latency
	}
	if req.Quality != nil {
		resolved.Quality = req.Quality
	}
	if req.ErrorRate != nil {
		resolved.ErrorRate = req.ErrorRate
	}
	return resolved
}

// relativeDelta - (current - baseline) / baseline. baseline이 0이면 0
func relativeDelta(baseline, current float64) float64 {
	if baseline == 0 {
		return 0.0
	}
	return (current - baseline) / baseline
}

func (m *RegressionMonitor) detect(req model.CheckRegressionRequest, baseline, current *model.MetricSummary, thresholds model.Thresholds) []model.RegressionAlert {
	alerts := []model.RegressionAlert{}

	newAlert := func(alertType model.AlertType, metric string, baseVal, curVal, delta, threshold float64, message string) model.RegressionAlert {
		return model.RegressionAlert{
			Type:            alertType,
			Message:         message,
			Metric:          metric,
			PromptName:      req.Name,
			BaselineVersion: req.BaselineVersion,
			CurrentVersion:  req.CurrentVersion,
			BaselineValue:   baseVal,
			CurrentValue:    curVal,
			ChangePercent:   delta * 100,
			Threshold:       threshold,
		}
	}

	// cost: 증가가 나쁨
	if baseline.AvgCost != nil && current.AvgCost != nil {
		delta := relativeDelta(*baseline.AvgCost, *current.AvgCost)
		if delta > *thresholds.Cost {
			alerts = append(alerts, newAlert(
				model.AlertCostIncrease, "cost",
				*baseline.AvgCost, *current.AvgCost, delta, *thresholds.Cost,
				fmt.Sprintf("Average cost increased by %.1f%% (%.6f -> %.6f EUR)", delta*100, *baseline.AvgCost, *current.AvgCost),
			))
		}
	}

	// latency: 증가가 나쁨
	if baseline.AvgLatency != nil && current.AvgLatency != nil {
		delta := relativeDelta(*baseline.AvgLatency, *current.AvgLatency)
		if delta > *thresholds.Latency {
			alerts = append(alerts, newAlert(
				model.AlertLatencyIncrease, "latency",
				*baseline.AvgLatency, *current.AvgLatency, delta, *thresholds.Latency,
				fmt.Sprintf("Average latency increased by %.1f%% (%.1f -> %.1f ms)", delta*100, *baseline.AvgLatency, *current.AvgLatency),
			))
		}
	}

	// quality: 하락이 나쁨 (임계값이 음수, delta < threshold면 알림)
	if baseline.AvgQuality != nil && current.AvgQuality != nil {
		delta := relativeDelta(*baseline.AvgQuality, *current.AvgQuality)
		if delta < *thresholds.Quality {
			alerts = append(alerts, newAlert(
				model.AlertQualityDrop, "quality",
				*baseline.AvgQuality, *current.AvgQuality, delta, *thresholds.Quality,
				fmt.Sprintf("Average quality dropped by %.1f%% (%.3f -> %.3f)", -delta*100, *baseline.AvgQuality, *current.AvgQuality),
			))
		}
	}

	// error_rate: 증가가 나쁨. rate = 1 - success_rate
	if baseline.CallCount > 0 && current.CallCount > 0 {
		baseRate := 1.0 - baseline.SuccessRate
		curRate := 1.0 - current.SuccessRate
		delta := relativeDelta(baseRate, curRate)
		if delta > *thresholds.ErrorRate {
			alerts = append(alerts, newAlert(
				model.AlertErrorRateUp, "error_rate",
				baseRate, curRate, delta, *thresholds.ErrorRate,
				fmt.Sprintf("Error rate increased by %.1f%% (%.1f%% -> %.1f%%)", delta*100, baseRate*100, curRate*100),
			))
		}
	}

	return alerts
}

// dispatch - 등록 순서대로 핸들러 호출. panic은 격리
func (m *RegressionMonitor) dispatch(alert model.RegressionAlert) {
	m.mu.Lock()
	handlers := make([]AlertHandler, len(m.handlers))
	copy(handlers, m.handlers)
	m.mu.Unlock()

	for i, handler := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[Monitor] Alert handler %d panicked: %v", i, r)
				}
			}()
			handler(alert)
		}()
	}
}

// getSummary - 버전의 메트릭 요약 조회
//
// 버전 자체가 없으면 ErrNotFound, 버전은 있지만 메트릭이 없으면 (nil, nil)
func (m *RegressionMonitor) getSummary(ctx context.Context, name, version string) (*model.MetricSummary, error) {
	v, err := m.db.GetVersion(ctx, name, version)
	if err != nil {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, name, version)
	}
	summary, err := m.db.GetMetricSummary(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	if summary == nil || summary.CallCount == 0 {
		return nil, nil
	}
	return summary, nil
}
