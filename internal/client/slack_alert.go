// Slack Regression Alert 메시지 관련 메서드 정의

package client

import (
	"fmt"
	"time"

	"github.com/prompt-ops/backend/internal/model"
)

// 회귀 알림을 Slack으로 전송
//
// 같은 프롬프트에서 이미 알림을 보낸 적이 있으면 해당 스레드에 답글로 전송:
//   - 첫 알림: 새 메시지 전송 후 thread_ts 저장
//   - 후속 알림: 저장된 thread_ts로 답글 전송
func (c *SlackClient) SendRegressionAlert(alert model.RegressionAlert) error {
	if !c.IsConfigured() {
		return fmt.Errorf("slack bot token or channel ID not configured")
	}

	// 1. 메시지 포맷팅
	color := c.getColorByAlertType(alert.Type)

	title := fmt.Sprintf("⚠️ [%s] %s", alert.Type, alert.PromptName)

	fields := []SlackField{
		{Title: "Metric", Value: alert.Metric, Short: true},
		{Title: "Change", Value: fmt.Sprintf("%+.1f%%", alert.ChangePercent), Short: true},
		{Title: "Baseline", Value: fmt.Sprintf("%s (%.4g)", alert.BaselineVersion, alert.BaselineValue), Short: true},
		{Title: "Current", Value: fmt.Sprintf("%s (%.4g)", alert.CurrentVersion, alert.CurrentValue), Short: true},
	}

	// 프롬프트 페이지 링크 추가
	if c.frontendURL != "" {
		promptLink := fmt.Sprintf("<%s/prompts/%s|🔍 버전 히스토리 보러가기>", c.frontendURL, alert.PromptName)
		fields = append(fields, SlackField{Title: "Prompt", Value: promptLink, Short: false})
	}

	msg := SlackMessage{
		Channel: c.channelID,
		Attachments: []SlackAttachment{
			{
				Color:  color,
				Title:  title,
				Text:   alert.Message,
				Fields: fields,
				Footer: "prompt-ops",
				Ts:     time.Now().Unix(),
			},
		},
	}

	// 2. 후속 알림: 기존 쓰레드로 전송
	if threadTS, ok := c.GetThreadTS(alert.PromptName); ok {
		msg.ThreadTS = threadTS
	}

	// 3. Slack API 호출
	resp, err := c.send(msg)
	if err != nil {
		return err
	}

	// 4. 첫 알림이면 thread_ts 저장
	if msg.ThreadTS == "" && resp.TS != "" {
		c.StoreThreadTS(alert.PromptName, resp.TS)
	}
	return nil
}

// Alert 종류에 따른 적절한 메시지 색상 반환
func (c *SlackClient) getColorByAlertType(alertType model.AlertType) string {
	switch alertType {
	case model.AlertQualityDrop, model.AlertErrorRateUp:
		return "#dc3545" // red
	case model.AlertCostIncrease, model.AlertLatencyIncrease:
		return "#ffc107" // yellow
	default:
		return "#17a2b8" // blue
	}
}
