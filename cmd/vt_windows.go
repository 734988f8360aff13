//go:build windows
// +build windows

package main

import (
	"os"

	"golang.org/x/sys/windows"
)

// enableVT turns on virtual terminal input and output so the console both
// delivers arrow-key escape sequences and interprets the ones we print.
func enableVT() {
	setConsoleFlag(os.Stdin.Fd(), windows.ENABLE_VIRTUAL_TERMINAL_INPUT)
	setConsoleFlag(os.Stdout.Fd(), windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}

func setConsoleFlag(fd uintptr, flag uint32) {
	h := windows.Handle(fd)
	var mode uint32
	if windows.GetConsoleMode(h, &mode) == nil {
		windows.SetConsoleMode(h, mode|flag)
	}
}
