package term

import (
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"
)

func ClearCurrentLine() {
	fmt.Print("\033[2K\r")
}

func GetDivisionLine() string {
	return strings.Repeat("─", GetTerminalWidth())
}

// GetTerminalWidth falls back to 50 columns when stdout is not a terminal.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		log.Println("Error fetching terminal size:", err)
		return 50
	}
	return width
}

func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
