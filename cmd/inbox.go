package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"socialcal/api"
	"socialcal/auth"
	"socialcal/format"
	"socialcal/shared"
	"socialcal/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	inboxStatus   string
	inboxPlatform string
	inboxPriority bool
	priorityOff   bool
)

var inboxCmd = &cobra.Command{
	Use:     "inbox",
	Aliases: []string{"in"},
	Short:   "List inbox messages",
	Args:    cobra.NoArgs,
	Run:     listInbox,
}

var listInboxCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List inbox messages",
	Args:    cobra.NoArgs,
	Run:     listInbox,
}

var showMessageCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a message",
	Args:  cobra.ExactArgs(1),
	Run:   showMessage,
}

var readMessageCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Mark a message read",
	Args:  cobra.ExactArgs(1),
	Run:   readMessage,
}

var priorityMessageCmd = &cobra.Command{
	Use:   "priority <id>",
	Short: "Flag a message as priority",
	Args:  cobra.ExactArgs(1),
	Run:   priorityMessage,
}

var markAllReadCmd = &cobra.Command{
	Use:   "mark-all-read",
	Short: "Mark every message read",
	Args:  cobra.NoArgs,
	Run:   markAllRead,
}

var inboxSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show inbox counts",
	Args:  cobra.NoArgs,
	Run:   inboxSummary,
}

func init() {
	RootCmd.AddCommand(inboxCmd)
	inboxCmd.AddCommand(listInboxCmd)
	inboxCmd.AddCommand(showMessageCmd)
	inboxCmd.AddCommand(readMessageCmd)
	inboxCmd.AddCommand(priorityMessageCmd)
	inboxCmd.AddCommand(markAllReadCmd)
	inboxCmd.AddCommand(inboxSummaryCmd)

	for _, c := range []*cobra.Command{inboxCmd, listInboxCmd} {
		c.Flags().StringVarP(&inboxStatus, "status", "s", "", "Filter by status ("+joinValues(shared.AllMessageStatuses)+")")
		c.Flags().StringVarP(&inboxPlatform, "platform", "p", "", "Filter by platform ("+joinValues(shared.AllPlatforms)+")")
		c.Flags().BoolVar(&inboxPriority, "priority", false, "Only priority messages")
	}

	priorityMessageCmd.Flags().BoolVar(&priorityOff, "off", false, "Remove the priority flag")
}

func inboxFilter() (shared.InboxFilter, error) {
	filter := shared.InboxFilter{PriorityOnly: inboxPriority}

	if inboxStatus != "" {
		st, err := parseMessageStatus(inboxStatus)
		if err != nil {
			return filter, err
		}
		filter.Status = st
	}

	if inboxPlatform != "" {
		p, err := parsePlatform(inboxPlatform)
		if err != nil {
			return filter, err
		}
		filter.Platform = p
	}

	return filter, nil
}

func listInbox(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	filter, err := inboxFilter()
	if err != nil {
		term.OutputErrorAndExit("%v", err)
	}

	term.StartSpinner("")
	messages, apiErr := api.Client.ListInbox(filter)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	if len(messages) == 0 {
		fmt.Println("📭 Inbox is empty")
		return
	}

	width := term.GetTerminalWidth() - 60
	if width < 20 {
		width = 20
	}

	table := newTable("ID", "Platform", "From", "Message", "Status", "Received")
	for _, msg := range messages {
		id := strconv.FormatInt(msg.MessageId, 10)
		if msg.IsPriority {
			id = "⭐ " + id
		}
		table.Append([]string{
			id,
			format.PlatformLabel(msg.Platform),
			"@" + msg.SenderUsername,
			format.Truncate(msg.MessageContent, width),
			messageStatus(msg.Status),
			format.Time(msg.ReceivedAt.Time),
		})
	}
	table.Render()

	fmt.Println()
	term.PrintCmds("", "inbox summary", "inbox mark-all-read")
}

func showMessage(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	id := mustParseId(args[0], "message")

	term.StartSpinner("")
	msg, apiErr := api.Client.GetMessage(id)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	printMessage(msg)
}

func printMessage(msg *shared.Message) {
	header := fmt.Sprintf("%s @%s", format.PlatformLabel(msg.Platform), msg.SenderUsername)
	if msg.IsPriority {
		header += " ⭐"
	}
	fmt.Println(color.New(color.Bold).Sprint(header))
	fmt.Printf("%s · %s\n", messageStatus(msg.Status), format.DateTime(msg.ReceivedAt.Time))
	fmt.Println(term.GetDivisionLine())
	fmt.Println(format.Wrap(msg.MessageContent, term.GetTerminalWidth()))

	if msg.ReadAt != nil {
		fmt.Println()
		fmt.Printf("Read %s\n", format.DateTime(msg.ReadAt.Time))
	}
	if msg.RepliedAt != nil {
		fmt.Printf("Replied %s\n", format.DateTime(msg.RepliedAt.Time))
	}
}

func readMessage(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	id := mustParseId(args[0], "message")
	status := shared.MessageStatusRead

	term.StartSpinner("")
	_, apiErr := api.Client.UpdateMessage(id, shared.UpdateMessageRequest{Status: &status})
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	fmt.Printf("✅ Message %d marked read\n", id)
}

func priorityMessage(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	id := mustParseId(args[0], "message")
	priority := !priorityOff

	term.StartSpinner("")
	_, apiErr := api.Client.UpdateMessage(id, shared.UpdateMessageRequest{IsPriority: &priority})
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	if priority {
		fmt.Printf("⭐ Message %d flagged as priority\n", id)
	} else {
		fmt.Printf("✅ Message %d is no longer priority\n", id)
	}
}

func markAllRead(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	term.StartSpinner("")
	apiErr := api.Client.MarkAllRead()
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	fmt.Println("✅ All messages marked read")
}

func inboxSummary(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	term.StartSpinner("")
	summary, apiErr := api.Client.GetInboxSummary()
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	fmt.Printf("📥 %d messages  %s unread  ⭐ %d priority\n",
		summary.TotalMessages,
		color.New(color.Bold, term.ColorHiCyan).Sprint(summary.UnreadCount),
		summary.PriorityCount,
	)

	if len(summary.MessagesByPlatform) == 0 {
		return
	}

	platforms := make([]string, 0, len(summary.MessagesByPlatform))
	for p := range summary.MessagesByPlatform {
		platforms = append(platforms, p)
	}
	sort.Strings(platforms)

	fmt.Println()
	table := newTable("Platform", "Messages")
	for _, p := range platforms {
		table.Append([]string{format.PlatformLabel(shared.Platform(p)), strconv.Itoa(summary.MessagesByPlatform[p])})
	}
	table.Render()
}

func messageStatus(s shared.MessageStatus) string {
	switch s {
	case shared.MessageStatusUnread:
		return color.New(color.Bold, term.ColorHiCyan).Sprint("unread")
	case shared.MessageStatusReplied:
		return color.New(term.ColorHiGreen).Sprint("replied")
	case shared.MessageStatusArchived:
		return color.New(color.FgHiBlack).Sprint("archived")
	}
	return string(s)
}
