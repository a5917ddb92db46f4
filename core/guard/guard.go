package guard

import "github.com/dmitrymomot/storefront/core/session"

// Decision is the outcome of an access evaluation.
type Decision int

const (
	// RedirectToLogin denies entry; the caller should route to the login view.
	RedirectToLogin Decision = iota
	// Allow grants entry to the protected destination.
	Allow
)

// String implements fmt.Stringer.
func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "redirect_to_login"
}

// Allowed reports whether the decision grants entry.
func (d Decision) Allowed() bool {
	return d == Allow
}

// Evaluate decides whether a protected destination may be entered.
// A nil identity means no session is present. An empty required role admits
// any authenticated identity.
//
// Unauthenticated access and wrong-role access produce the same decision;
// the router does not distinguish the two cases.
func Evaluate(required session.Role, identity *session.Identity) Decision {
	if identity == nil {
		return RedirectToLogin
	}
	if required != "" && identity.Role != required {
		return RedirectToLogin
	}
	return Allow
}

// Requires returns a reusable evaluator bound to a required role, convenient
// for wiring route tables:
//
//	adminOnly := guard.Requires(session.RoleAdmin)
//	decision := adminOnly(currentIdentity)
func Requires(required session.Role) func(*session.Identity) Decision {
	return func(identity *session.Identity) Decision {
		return Evaluate(required, identity)
	}
}
