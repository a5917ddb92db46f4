// Package guard decides, per navigation attempt, whether a protected
// destination may be entered.
//
// Evaluate is a pure function over the current identity and an optional
// required role: no side effects, no I/O, deterministic. The consuming router
// maps RedirectToLogin to its login route and Allow to the requested view.
package guard
