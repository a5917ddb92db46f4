package session

// Role classifies an authenticated principal for access control decisions.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Identity holds the authenticated principal's display attributes and role.
// An identity is immutable for the lifetime of a session: it is replaced
// wholesale on login and cleared wholesale on logout.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// TokenPair is the access/refresh token pair representing a session's
// authorization. The pair is an atomic unit: there is no partial update, and
// its lifetime equals the identity's lifetime.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
