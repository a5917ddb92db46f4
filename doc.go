// Package storefront is the client core for a small retail storefront.
//
// The module is organized as independent packages that compose into a
// working client:
//
//   - core/cart: in-memory shopping cart with exact decimal totals
//   - core/session: durable authentication state backed by a key-value store
//   - core/guard: role-based access decisions for protected surfaces
//   - core/checkout: single-flight order submission against a sales backend
//   - core/kv: key-value storage contracts with memory, Redis, and Postgres backends
//   - core/config: typed environment configuration loading
//   - pkg/logger: slog construction and structured attribute helpers
//   - integration/api: HTTP client for the storefront backend
//
// Packages depend on narrow interfaces rather than each other's concrete
// types, so any of them can be used on its own.
package storefront
