package permissions

type optionsOutput struct {
	Body optionsResponse
}

type optionsResponse struct {
	Modules []string `json:"modules"`
	Levels  []string `json:"levels"`
}

type updateInput struct {
	Username string `path:"username" example:"doc" doc:"Target username"`
	// The full permission mapping to apply, module id to level.
	Body map[string]string
}

type updateOutput struct {
	Body updateResponse
}

type updateResponse struct {
	Username    string            `json:"username"`
	Permissions map[string]string `json:"permissions"`
}
