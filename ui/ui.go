package ui

import (
	"fmt"
	"strings"

	"socialcal/term"

	"github.com/fatih/color"
	"github.com/pkg/browser"
)

var openURL = browser.OpenURL

// WebURL joins the web app's base url and a path.
func WebURL(base, path string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

func OpenWebApp(msg, base, path string) {
	url := WebURL(base, path)

	fmt.Printf(
		"%s\n\nIf it doesn't open automatically, use this URL:\n%s\n",
		color.New(term.ColorHiGreen).Sprint(msg),
		url,
	)

	err := openURL(url)
	if err != nil {
		fmt.Printf("Failed to open URL automatically: %v\n", err)
		fmt.Println("Please open the URL manually in your browser.")
	}
}
