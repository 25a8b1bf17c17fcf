package model

// Credential is the short-lived access token proving an active session. It
// is required to authorize a change feed subscription and is only valid
// while the session it was issued for is alive.
type Credential string

func (c Credential) Void() bool {
	return c == ""
}
