package users

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Users []userResponse `json:"users"`
}

// userResponse deliberately omits the stored credential.
type userResponse struct {
	Username    string            `json:"username"`
	Permissions map[string]string `json:"permissions"`
}
