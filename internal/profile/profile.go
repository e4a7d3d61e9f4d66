// Package profile carries the signed-in learner's context into screens.
package profile

// Profile identifies the learner and the surface the app runs on.
type Profile struct {
	// Email is shown in the header; empty means a guest.
	Email string

	// Web selects single-confirm end dialogs.
	Web bool
}

// DisplayName returns the header label for the learner.
func (p Profile) DisplayName() string {
	if p.Email == "" {
		return "guest"
	}
	return p.Email
}
