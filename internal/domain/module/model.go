package module

// Module is one named functional area of the clinic application.
// Permission levels are granted per module; the set of modules is
// seeded once at store initialization and immutable afterwards.
type Module struct {
	ID          string `json:"id"`
	Href        string `json:"href"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
