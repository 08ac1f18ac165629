package auth

// State is the persisted last-known authentication state. It exists only to
// support fast offline display (e.g. whoami without a network); it is never
// a source of truth, which always requires a round trip.
type State struct {
	LoggedIn bool   `json:"logged_in"`
	Email    string `json:"email"`
}

// IsLoggedIn reports whether the user was logged in as of the last recorded
// state. Missing or unreadable state reads as logged out.
func IsLoggedIn() bool {
	st, err := LoadState()
	if err != nil {
		return false
	}
	return st.LoggedIn
}
