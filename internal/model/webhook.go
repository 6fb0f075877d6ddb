// 사용자 정의 Webhook 설정 구조체 정의
// 회귀 알림을 외부 시스템(Teams, Discord, 사내 알림봇 등)으로 전달할 때 사용

package model

import "time"

// WebhookHeader - webhook 요청에 붙일 커스텀 헤더 한 건
type WebhookHeader struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// WebhookConfig - 저장된 webhook 설정
//
// Body는 템플릿 문자열이며 전송 직전에 {{alert.*}}, {{prompt.*}} 변수가 치환됩니다.
type WebhookConfig struct {
	ID        int             `json:"id"`
	URL       string          `json:"url"`
	Method    string          `json:"method"`
	Headers   []WebhookHeader `json:"headers"`
	Body      string          `json:"body"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// WebhookConfigRequest - webhook 설정 생성/수정 요청 구조체
type WebhookConfigRequest struct {
	URL     string          `json:"url" binding:"required"`
	Method  string          `json:"method"`
	Headers []WebhookHeader `json:"headers"`
	Body    string          `json:"body"`
}

type WebhookConfigListResponse struct {
	Status string          `json:"status"`
	Data   []WebhookConfig `json:"data"`
}

type WebhookConfigResponse struct {
	Status string         `json:"status"`
	Data   *WebhookConfig `json:"data"`
}

type WebhookConfigMutationResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	ID      int    `json:"id"`
}
