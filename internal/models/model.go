package models

// Account is a registered user identity. Passwords are stored verbatim:
// credential handling beyond an exact match is out of scope for this service.
type Account struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
}

// Message is a short text post authored by an account. PostedAt is an opaque
// epoch value supplied by the client and passed through unvalidated.
type Message struct {
	ID       int64  `json:"id"`
	PostedBy int64  `json:"posted_by"`
	Text     string `json:"text"`
	PostedAt int64  `json:"posted_at"`
}
