package auth

import "net/http"

type loginInput struct {
	Body loginRequest
}

type loginRequest struct {
	Username string `json:"username" minLength:"1" doc:"Account username"`
	Password string `json:"password" minLength:"1" doc:"Account password"`
	Remember bool   `json:"remember,omitempty" doc:"Keep the session for 30 days"`
}

type loginOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      messageResponse
}

type logoutOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      messageResponse
}

type messageResponse struct {
	Message string `json:"message"`
}

type meOutput struct {
	Body meResponse
}

type meResponse struct {
	Username    string            `json:"username"`
	Permissions map[string]string `json:"permissions"`
}
