// Regression Alert 구조체 정의
// handler, service, client 레이어에서 공통으로 사용하기 때문에 model 레이어에 별도로 정의

package model

// AlertType - 감지된 회귀 종류
type AlertType string

const (
	AlertCostIncrease    AlertType = "cost_increase"
	AlertLatencyIncrease AlertType = "latency_increase"
	AlertQualityDrop     AlertType = "quality_drop"
	AlertErrorRateUp     AlertType = "error_rate_increase"
)

// RegressionAlert - baseline 대비 current 버전에서 감지된 회귀 한 건
// 저장하지 않으며 체크할 때마다 다시 생성됩니다.
type RegressionAlert struct {
	Type            AlertType `json:"alert_type"`
	Message         string    `json:"message"`
	Metric          string    `json:"metric"`
	PromptName      string    `json:"prompt_name"`
	BaselineVersion string    `json:"baseline_version"`
	CurrentVersion  string    `json:"current_version"`
	BaselineValue   float64   `json:"baseline_value"`
	CurrentValue    float64   `json:"current_value"`
	ChangePercent   float64   `json:"change_percent"`
	Threshold       float64   `json:"threshold"`
}

// Thresholds - 메트릭별 상대 임계값 (부호 포함)
//
//	cost, latency, error_rate: 양수 (증가가 나쁨, delta > threshold면 알림)
//	quality: 음수 (감소가 나쁨, delta < threshold면 알림)
//
// nil 필드는 기본값 사용 (cost 0.20, latency 0.30, quality -0.10, error_rate 0.05)
type Thresholds struct {
	Cost      *float64 `json:"cost"`
	Latency   *float64 `json:"latency"`
	Quality   *float64 `json:"quality"`
	ErrorRate *float64 `json:"error_rate"`
}

// CheckRegressionRequest - 회귀 체크 요청 구조체
type CheckRegressionRequest struct {
	Name            string      `json:"name" binding:"required"`
	BaselineVersion string      `json:"baseline_version" binding:"required"`
	CurrentVersion  string      `json:"current_version" binding:"required"`
	Thresholds      *Thresholds `json:"thresholds"`
}

// CheckRegressionResponse - 회귀 체크 API 응답 구조체
type CheckRegressionResponse struct {
	Status string            `json:"status"`
	Alerts []RegressionAlert `json:"alerts"`
}
