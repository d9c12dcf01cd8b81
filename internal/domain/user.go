package domain

// A registered API consumer profile. Preferences is free-form JSON the
// service stores but never interprets.
type User struct {
	ID          string
	Name        string
	Email       string
	Preferences map[string]any
}
