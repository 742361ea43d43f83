package schemas

// Тела запросов и ответов API аутентификации

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest не содержит подтверждения пароля: оно проверяется только на клиенте
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
