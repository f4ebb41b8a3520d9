// Package contenttypes holds build information for the typereg module.
package contenttypes

// Version is the release version of typereg.
const Version = "0.1.0"
