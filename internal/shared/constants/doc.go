// Package constants centralizes configuration defaults shared across the CLI.
//
// Probe timeouts, body-read caps, and the scanner User-Agent live in one
// place so the values referenced from cmd/ and internal/ cannot drift apart
// without introducing import cycles.
package constants
