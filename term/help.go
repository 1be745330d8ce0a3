package term

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var CmdDesc = map[string][2]string{
	"sign-in":             {"", "sign in to your account"},
	"sign-up":             {"", "create a new account"},
	"sign-out":            {"", "sign out and forget the saved session"},
	"whoami":              {"", "show the signed in account"},
	"dashboard":           {"db", "show the dashboard"},
	"accounts":            {"acc", "list connected social accounts"},
	"accounts connect":    {"", "connect a social account"},
	"accounts disconnect": {"", "disconnect a social account"},
	"analytics":           {"an", "show analytics across accounts"},
	"inbox":               {"in", "list inbox messages"},
	"inbox summary":       {"", "show inbox counts"},
	"inbox mark-all-read": {"", "mark every message read"},
	"calendar":            {"cal", "open the content calendar"},
	"schedule":            {"sc", "list scheduled content"},
	"schedule new":        {"", "schedule a post, story or reel"},
	"schedule rm":         {"", "delete scheduled content"},
	"reminders":           {"rem", "show content due in the next 24 hours"},
	"demo":                {"", "generate demo data"},
	"version":             {"", "print the version"},
}

func PrintCmds(prefix string, cmds ...string) {
	printCmds(os.Stderr, prefix, []color.Attribute{color.Bold, color.FgHiWhite, color.BgCyan}, cmds...)
}

func printCmds(w io.Writer, prefix string, colors []color.Attribute, cmds ...string) {
	for _, cmd := range cmds {
		config, ok := CmdDesc[cmd]
		if !ok {
			continue
		}

		alias := config[0]
		desc := config[1]
		if alias != "" {
			if strings.HasPrefix(cmd, alias) {
				cmd = strings.Replace(cmd, alias, fmt.Sprintf("(%s)", alias), 1)
			} else {
				cmd = fmt.Sprintf("%s (%s)", cmd, alias)
			}
		}
		styled := color.New(colors...).Sprintf(" socialcal %s ", cmd)

		fmt.Fprintf(w, "%s%s 👉 %s\n", prefix, styled, desc)
	}
}

// PrintCustomHelp prints the grouped help shown by the root command.
func PrintCustomHelp() {
	builder := &strings.Builder{}

	color.New(color.Bold, color.BgGreen).Fprintln(builder, " Usage ")
	color.New(color.Bold).Fprintln(builder, "  socialcal [command] [flags]")
	fmt.Fprintln(builder)

	color.New(color.Bold, color.BgGreen).Fprintln(builder, " Help ")
	color.New(color.Bold).Fprintln(builder, "  socialcal help")
	color.New(color.Bold).Fprintln(builder, "  socialcal [command] --help")
	fmt.Fprintln(builder)

	color.New(color.Bold, color.BgMagenta).Fprintln(builder, " Getting Started ")
	fmt.Fprintf(builder, "  Sign in with %s, then open the calendar with %s\n\n",
		color.New(color.Bold, color.BgCyan).Sprint(" socialcal sign-in "),
		color.New(color.Bold, color.BgCyan).Sprint(" socialcal calendar "))

	color.New(color.Bold, color.BgBlue).Fprintln(builder, " Account ")
	printCmds(builder, " ", []color.Attribute{color.Bold}, "sign-in", "sign-up", "sign-out", "whoami")
	fmt.Fprintln(builder)

	color.New(color.Bold, color.BgBlue).Fprintln(builder, " Overview ")
	printCmds(builder, " ", []color.Attribute{color.Bold}, "dashboard", "analytics", "demo", "version")
	fmt.Fprintln(builder)

	color.New(color.Bold, color.BgBlue).Fprintln(builder, " Social Accounts ")
	printCmds(builder, " ", []color.Attribute{color.Bold}, "accounts", "accounts connect", "accounts disconnect")
	fmt.Fprintln(builder)

	color.New(color.Bold, color.BgBlue).Fprintln(builder, " Scheduling ")
	printCmds(builder, " ", []color.Attribute{color.Bold}, "calendar", "schedule", "schedule new", "schedule rm", "reminders")
	fmt.Fprintln(builder)

	color.New(color.Bold, color.BgBlue).Fprintln(builder, " Inbox ")
	printCmds(builder, " ", []color.Attribute{color.Bold}, "inbox", "inbox summary", "inbox mark-all-read")
	fmt.Fprintln(builder)

	fmt.Print(builder.String())
}
