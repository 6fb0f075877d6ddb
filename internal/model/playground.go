// Playground 실행 요청/응답 구조체 정의
// 저장된 버전을 실제 모델로 호출해 보고 결과 메트릭을 기록하는 기능

package model

// PlaygroundRequest - 버전 테스트 실행 요청 구조체
type PlaygroundRequest struct {
	Name        string            `json:"name" binding:"required"`
	Version     string            `json:"version" binding:"required"`
	Variables   map[string]string `json:"variables"`   // user_prompt의 {변수} 치환용
	Temperature *float64          `json:"temperature"`
	MaxTokens   *int              `json:"max_tokens"`
	Record      bool              `json:"record"` // true면 결과를 메트릭으로 저장
}

// PlaygroundResponse - 테스트 실행 결과
type PlaygroundResponse struct {
	RunID        string   `json:"run_id"`
	ModelName    string   `json:"model_name"`
	Output       string   `json:"output"`
	InputTokens  *int     `json:"input_tokens"`
	OutputTokens *int     `json:"output_tokens"`
	LatencyMS    float64  `json:"latency_ms"`
	CostEUR      *float64 `json:"cost_eur"`
	Recorded     bool     `json:"recorded"`
}
