//go:build !fixedloc_debug

package container

// debugChecks enables internal contract assertions (index bounds, NA
// access). Build with -tags fixedloc_debug to turn them on.
const debugChecks = false
