package user

// User is a system account. Password is stored and compared verbatim,
// matching the legacy data; see DESIGN.md. Permissions maps module id
// to a permission level ("None", "View" or "Edit"); module ids absent
// from the map are treated as "None".
type User struct {
	Username    string            `json:"username"`
	Password    string            `json:"-"`
	Permissions map[string]string `json:"permissions"`
}
