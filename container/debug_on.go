//go:build fixedloc_debug

package container

const debugChecks = true
