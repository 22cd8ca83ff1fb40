// Package steam resolves Steam application identifiers to game names via
// the storefront appdetails endpoint.
//
// The lookup is a single stateless GET; any transport error, non-2xx
// status, unsuccessful payload, or missing name yields ErrUnresolved so
// callers can fall back to a default clip name without inspecting the
// failure further.
package steam
