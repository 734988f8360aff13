package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/term"

	"estatehub/internal/types"
)

// pickBroker lets the user move through the broker list with arrow keys and
// press Enter to choose one. It returns the 0-based index and true, or false
// when the user backs out (Esc / Ctrl-C) or the terminal cannot enter raw
// mode.
func pickBroker(brokers []types.BrokerRecord) (int, bool) {
	if len(brokers) == 0 {
		fmt.Println("No brokers saved yet.")
		return 0, false
	}

	if runtime.GOOS == "windows" {
		enableVT()
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Println("(interactive selection not supported on this terminal)")
		return 0, false
	}
	defer term.Restore(fd, oldState)

	reader := bufio.NewReader(os.Stdin)

	selected := 0

	redraw := func() {
		// Clear screen (ANSI reset to top + clear screen). Raw mode needs
		// explicit \r\n line endings.
		fmt.Print("\033[H\033[2J")
		for i, b := range brokers {
			prefix := "  "
			if i == selected {
				prefix = "> "
			}
			fmt.Print(prefix + b.DisplayLine(i+1) + "\r\n")
		}
		fmt.Print("(↑/↓ to navigate, Enter to delete, Esc to cancel)\r\n")
	}

	redraw()

	for {
		b1, err := reader.ReadByte()
		if err != nil {
			return 0, false
		}
		// Handle Windows console arrow sequences (0 or 224, then code)
		if b1 == 0 || b1 == 224 {
			b2, _ := reader.ReadByte()
			switch b2 {
			case 72: // up
				if selected > 0 {
					selected--
					redraw()
				}
			case 80: // down
				if selected < len(brokers)-1 {
					selected++
					redraw()
				}
			case 13: // Enter
				fmt.Print("\r\n")
				return selected, true
			}
			continue
		}

		switch b1 {
		case 27: // ESC or ANSI sequence
			if reader.Buffered() == 0 {
				// Bare ESC – cancel
				fmt.Print("\r\n")
				return 0, false
			}
			b2, _ := reader.ReadByte()
			if b2 != '[' {
				// Not a CSI sequence; ignore unknown combo
				continue
			}
			if reader.Buffered() == 0 {
				continue
			}
			b3, _ := reader.ReadByte()
			switch b3 {
			case 'A': // up
				if selected > 0 {
					selected--
					redraw()
				}
			case 'B': // down
				if selected < len(brokers)-1 {
					selected++
					redraw()
				}
			}
		case '\r', '\n': // Enter
			fmt.Print("\r\n")
			return selected, true
		case 3: // Ctrl-C
			fmt.Print("\r\n")
			return 0, false

		default:
			// ignore other keys
		}
	}
}
