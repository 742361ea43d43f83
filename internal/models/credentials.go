package models

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegistrationCredentials struct {
	Credentials
	ConfirmPassword string `json:"-"`
}

type SessionTokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
