package response

// TokenResponse тело ответа на успешную регистрацию или вход.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// BearerToken оборачивает выпущенный токен в стандартный ответ.
func BearerToken(token string) TokenResponse {
	return TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}
}
