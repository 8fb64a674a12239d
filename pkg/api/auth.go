package api

// TokenResponse представляет ответ token endpoint на обмен кода авторизации
type TokenResponse struct {
	AccessToken string `json:"access_token"`        // bearer token
	OwnerID     string `json:"owner_id"`            // идентификатор владельца сессии
	Signature   string `json:"signature,omitempty"` // устаревшее имя owner_id
}

// Owner возвращает идентификатор владельца с учетом устаревшего поля
func (r *TokenResponse) Owner() string {
	if r.OwnerID != "" {
		return r.OwnerID
	}
	return r.Signature
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Detail string `json:"detail"` // описание ошибки
}

// Параметры authorization/token endpoints
const (
	ParamClientID     = "client_id"
	ParamClientSecret = "client_secret"
	ParamRedirectURI  = "redirect_uri"
	ParamState        = "state"
	ParamCode         = "code"
)
