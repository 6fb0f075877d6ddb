// Package template provides webhook body template rendering.
//
// 지원하는 변수 형식:
//
//	{{prompt.name}}, {{prompt.version}}, {{prompt.git_commit}},
//	{{prompt.created_at}}
//
//	{{alert.type}}, {{alert.metric}}, {{alert.message}},
//	{{alert.baseline_version}}, {{alert.current_version}},
//	{{alert.baseline_value}}, {{alert.current_value}},
//	{{alert.change_percent}}, {{alert.threshold}}
package template

import (
	"strconv"
	"strings"
	"time"

	"github.com/prompt-ops/backend/internal/model"
)

// PromptData - 템플릿 렌더링에 사용할 버전 데이터
type PromptData struct {
	Name      string
	Version   string
	GitCommit string
	CreatedAt time.Time
}

// AlertData - 템플릿 렌더링에 사용할 회귀 알림 데이터
type AlertData struct {
	Type            string
	Metric          string
	Message         string
	BaselineVersion string
	CurrentVersion  string
	BaselineValue   float64
	CurrentValue    float64
	ChangePercent   float64
	Threshold       float64
}

// PromptDataFromVersion - model.PromptVersion에서 PromptData 생성
func PromptDataFromVersion(v *model.PromptVersion) PromptData {
	commit := ""
	if v.GitCommit != nil {
		commit = *v.GitCommit
	}
	return PromptData{
		Name:      v.Name,
		Version:   v.Version,
		GitCommit: commit,
		CreatedAt: v.CreatedAt,
	}
}

// AlertDataFromModel - model.RegressionAlert에서 AlertData 생성
func AlertDataFromModel(alert model.RegressionAlert) AlertData {
	return AlertData{
		Type:            string(alert.Type),
		Metric:          alert.Metric,
		Message:         alert.Message,
		BaselineVersion: alert.BaselineVersion,
		CurrentVersion:  alert.CurrentVersion,
		BaselineValue:   alert.BaselineValue,
		CurrentValue:    alert.CurrentValue,
		ChangePercent:   alert.ChangePercent,
		Threshold:       alert.Threshold,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RenderBody - webhook body 템플릿의 변수를 실제 값으로 치환
//
// prompt 또는 alert 중 하나만 전달해도 동작합니다.
// nil로 전달된 항목의 변수는 빈 문자열로 치환됩니다.
func RenderBody(body string, prompt *PromptData, alert *AlertData) string {
	pairs := make([]string, 0, 26)

	// --- Prompt 변수 ---
	if prompt != nil {
		pairs = append(pairs,
			"{{prompt.name}}", prompt.Name,
			"{{prompt.version}}", prompt.Version,
			"{{prompt.git_commit}}", prompt.GitCommit,
			"{{prompt.created_at}}", prompt.CreatedAt.Format(time.RFC3339),
		)
	} else {
		pairs = append(pairs,
			"{{prompt.name}}", "",
			"{{prompt.version}}", "",
			"{{prompt.git_commit}}", "",
			"{{prompt.created_at}}", "",
		)
	}

	// --- Alert 변수 ---
	if alert != nil {
		pairs = append(pairs,
			"{{alert.type}}", alert.Type,
			"{{alert.metric}}", alert.Metric,
			"{{alert.message}}", alert.Message,
			"{{alert.baseline_version}}", alert.BaselineVersion,
			"{{alert.current_version}}", alert.CurrentVersion,
			"{{alert.baseline_value}}", formatFloat(alert.BaselineValue),
			"{{alert.current_value}}", formatFloat(alert.CurrentValue),
			"{{alert.change_percent}}", formatFloat(alert.ChangePercent),
			"{{alert.threshold}}", formatFloat(alert.Threshold),
		)
	} else {
		pairs = append(pairs,
			"{{alert.type}}", "",
			"{{alert.metric}}", "",
			"{{alert.message}}", "",
			"{{alert.baseline_version}}", "",
			"{{alert.current_version}}", "",
			"{{alert.baseline_value}}", "",
			"{{alert.current_value}}", "",
			"{{alert.change_percent}}", "",
			"{{alert.threshold}}", "",
		)
	}

	return strings.NewReplacer(pairs...).Replace(body)
}
