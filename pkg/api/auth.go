package api

// TokenResponse представляет ответ с токеном доступа к contents API
type TokenResponse struct {
	AccessToken string `json:"access_token"` // JWT access token
	TokenType   string `json:"token_type"`   // всегда "token"
	ExpiresIn   int64  `json:"expires_in"`   // время жизни токена в секундах
}

// ErrorResponse представляет ответ с ошибкой.
// Формат совпадает с ответами GitHub: {"message": "..."}.
type ErrorResponse struct {
	Message          string `json:"message"`                     // описание ошибки
	DocumentationURL string `json:"documentation_url,omitempty"` // ссылка на документацию
}

// HealthResponse ответ health-check эндпоинта
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
