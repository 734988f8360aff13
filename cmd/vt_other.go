//go:build !windows
// +build !windows

package main

// enableVT is a no-op where ANSI escape sequences work out of the box.
func enableVT() {}
