package model

type ErrorResponse struct {
	Error string `json:"error"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type RootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type AuthLogoutResponse struct {
	Status string `json:"status"`
}

type AuthMeResponse struct {
	UserID  int64  `json:"userId"`
	LoginID string `json:"loginId"`
}

type PromptListResponse struct {
	Prompts []string `json:"prompts"`
}

type VersionDetailEnvelope struct {
	Status string         `json:"status"`
	Data   *PromptVersion `json:"data"`
}

type VersionSavedResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Name      string `json:"name"`
	Version   string `json:"version"`
	VersionID int64  `json:"version_id"`
}

type VersionDeletedResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

type MetricLoggedResponse struct {
	Status   string `json:"status"`
	MetricID int64  `json:"metric_id"`
}

type WebhookConfigSavedResponse struct {
	Status string `json:"status"`
	ID     int    `json:"id"`
}

type SimilarVersion struct {
	VersionID int64   `json:"version_id"`
	Name      string  `json:"name"`
	Version   string  `json:"version"`
	Distance  float64 `json:"distance"`
}

type SimilarVersionsResponse struct {
	Status  string           `json:"status"`
	Results []SimilarVersion `json:"results"`
}
