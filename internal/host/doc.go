// Package host provides a reference host runtime for content type
// registration: a phase scheduler (Hooks) and an in-memory registration
// sink (Runtime) that tracks content types, their features and taxonomy
// associations, and renders item panels. The CLI and the tests activate
// registries against it.
package host
