// Package stockroom holds project-wide metadata.
package stockroom

// Version is the current stockroom release.
const Version = "0.1.0"
