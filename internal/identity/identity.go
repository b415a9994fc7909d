package identity

// HeaderGapAuth is the header the authentication proxy injects upstream of
// this system; when present it carries an email-like identity string that is
// preferred over the raw username for display.
const HeaderGapAuth = "gap-auth"

// Identity is the current user as reported by the auth gateway.
type Identity struct {
	Username    string   `json:"username"`
	Email       string   `json:"email,omitempty"`
	DisplayName string   `json:"display_name"`
	IsAdmin     bool     `json:"is_admin"`
	Groups      []string `json:"groups"`
}

// Anonymous is the fail-closed fallback installed when the identity fetch
// fails: unknown user, no admin rights, no groups.
func Anonymous() Identity {
	return Identity{Username: "unknown", DisplayName: "unknown", Groups: []string{}}
}
