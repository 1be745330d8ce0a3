package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"socialcal/api"
	"socialcal/auth"
	"socialcal/calendar"
	"socialcal/format"
	"socialcal/notify"
	"socialcal/shared"
	"socialcal/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	scheduleStatus      string
	schedulePlatform    string
	scheduleContentType string

	draftPlatform    string
	draftContentType string
	draftTitle       string
	draftCaption     string
	draftHashtags    string
	draftMediaUrls   string
	draftAt          string
	draftAccount     int64
	updateStatus     string

	deleteYes bool
)

var scheduleCmd = &cobra.Command{
	Use:     "schedule",
	Aliases: []string{"sc"},
	Short:   "List scheduled content",
	Args:    cobra.NoArgs,
	Run:     listScheduled,
}

var listScheduledCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List scheduled content",
	Args:    cobra.NoArgs,
	Run:     listScheduled,
}

var newScheduledCmd = &cobra.Command{
	Use:     "new",
	Aliases: []string{"create"},
	Short:   "Schedule a post, story or reel",
	Args:    cobra.NoArgs,
	Run:     newScheduled,
}

var updateScheduledCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change scheduled content",
	Args:  cobra.ExactArgs(1),
	Run:   updateScheduled,
}

var deleteScheduledCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete scheduled content",
	Args:    cobra.ExactArgs(1),
	Run:     deleteScheduled,
}

var copyScheduledCmd = &cobra.Command{
	Use:   "copy <id>",
	Short: "Copy caption and hashtags to the clipboard",
	Args:  cobra.ExactArgs(1),
	Run:   copyScheduled,
}

func init() {
	RootCmd.AddCommand(scheduleCmd)
	scheduleCmd.AddCommand(listScheduledCmd)
	scheduleCmd.AddCommand(newScheduledCmd)
	scheduleCmd.AddCommand(updateScheduledCmd)
	scheduleCmd.AddCommand(deleteScheduledCmd)
	scheduleCmd.AddCommand(copyScheduledCmd)

	for _, c := range []*cobra.Command{scheduleCmd, listScheduledCmd} {
		c.Flags().StringVarP(&scheduleStatus, "status", "s", "", "Filter by status ("+joinValues(shared.AllScheduleStatuses)+")")
		c.Flags().StringVarP(&schedulePlatform, "platform", "p", "", "Filter by platform ("+joinValues(shared.AllPlatforms)+")")
		c.Flags().StringVarP(&scheduleContentType, "type", "t", "", "Filter by content type ("+joinValues(shared.AllContentTypes)+")")
	}

	for _, c := range []*cobra.Command{newScheduledCmd, updateScheduledCmd} {
		c.Flags().StringVarP(&draftPlatform, "platform", "p", "", "Platform ("+joinValues(shared.AllPlatforms)+")")
		c.Flags().StringVarP(&draftContentType, "type", "t", "", "Content type ("+joinValues(shared.AllContentTypes)+")")
		c.Flags().StringVar(&draftTitle, "title", "", "Title")
		c.Flags().StringVarP(&draftCaption, "caption", "c", "", "Caption")
		c.Flags().StringVar(&draftHashtags, "hashtags", "", "Hashtags")
		c.Flags().StringVar(&draftMediaUrls, "media", "", "Media urls")
		c.Flags().StringVar(&draftAt, "at", "", "Local date and time (YYYY-MM-DDTHH:MM)")
		c.Flags().Int64Var(&draftAccount, "account", 0, "Account id")
	}

	updateScheduledCmd.Flags().StringVar(&updateStatus, "status", "", "Status ("+joinValues(shared.AllScheduleStatuses)+")")

	deleteScheduledCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip confirmation")
}

func scheduleFilter() (shared.ScheduleFilter, error) {
	var filter shared.ScheduleFilter

	if scheduleStatus != "" {
		st, err := parseScheduleStatus(scheduleStatus)
		if err != nil {
			return filter, err
		}
		filter.Status = st
	}

	if schedulePlatform != "" {
		p, err := parsePlatform(schedulePlatform)
		if err != nil {
			return filter, err
		}
		filter.Platform = p
	}

	if scheduleContentType != "" {
		c, err := parseContentType(scheduleContentType)
		if err != nil {
			return filter, err
		}
		filter.ContentType = c
	}

	return filter, nil
}

func listScheduled(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	filter, err := scheduleFilter()
	if err != nil {
		term.OutputErrorAndExit("%v", err)
	}

	term.StartSpinner("")
	items, apiErr := api.Client.ListScheduledContent(filter)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	if len(items) == 0 {
		fmt.Println("🤷‍♂️ Nothing scheduled")
		fmt.Println()
		term.PrintCmds("", "schedule new", "calendar")
		return
	}

	printScheduledTable(items, time.Now())

	fmt.Println()
	term.PrintCmds("", "schedule new", "schedule rm", "calendar")
}

func printScheduledTable(items []*shared.ScheduledContent, now time.Time) {
	table := newTable("ID", "Platform", "Type", "Title", "When", "Status")
	for _, item := range items {
		table.Append([]string{
			strconv.FormatInt(item.ScheduleId, 10),
			format.PlatformLabel(item.Platform),
			format.ContentTypeLabel(item.ContentType),
			format.Truncate(item.Label(), 32),
			format.When(item.ScheduledTime.Time, now),
			term.Status(item.Status),
		})
	}
	table.Render()
}


func newScheduled(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	draft, err := draftFromFlags(cmd)
	if err != nil {
		term.OutputErrorAndExit("%v", err)
	}

	if term.IsTerminal() {
		draft, err = promptDraft(cmd, draft)
		if err != nil {
			term.OutputErrorAndExit("%v", err)
		}
	}

	req, err := draft.Request(time.Local)
	if err != nil {
		term.OutputErrorAndExit("%s: %v", calendar.CreateFailedMsg, err)
	}
	if draftMediaUrls != "" {
		req.MediaUrls = shared.StrPtr(draftMediaUrls)
	}

	term.StartSpinner("Scheduling...")
	item, apiErr := api.Client.CreateScheduledContent(*req)
	term.StopSpinner()

	if apiErr != nil {
		if apiErr.Type == shared.ApiErrorTypeValidation || apiErr.Type == shared.ApiErrorTypeOther {
			term.OutputErrorAndExit("%s: %s", calendar.CreateFailedMsg, apiErr.Msg)
		}
		term.HandleApiError(apiErr)
	}

	fmt.Printf("✅ Scheduled %s %s for %s\n",
		format.PlatformLabel(item.Platform),
		color.New(color.Bold).Sprint(item.Label()),
		format.When(item.ScheduledTime.Time, time.Now()),
	)
	fmt.Println()
	term.PrintCmds("", "schedule", "calendar")
}

// draftFromFlags builds a draft from the flags that were set, starting from
// the default platform and content type.
func draftFromFlags(cmd *cobra.Command) (calendar.Draft, error) {
	draft := calendar.NewDraft()
	flags := cmd.Flags()

	if flags.Changed("platform") {
		p, err := parsePlatform(draftPlatform)
		if err != nil {
			return draft, err
		}
		draft.Platform = p
	}
	if flags.Changed("type") {
		c, err := parseContentType(draftContentType)
		if err != nil {
			return draft, err
		}
		draft.ContentType = c
	}
	if flags.Changed("account") {
		id := draftAccount
		draft.AccountId = &id
	}
	draft.Title = draftTitle
	draft.Caption = draftCaption
	draft.Hashtags = draftHashtags
	draft.ScheduledLocal = draftAt

	return draft, nil
}

// promptDraft asks for whatever the flags left out.
func promptDraft(cmd *cobra.Command, draft calendar.Draft) (calendar.Draft, error) {
	flags := cmd.Flags()
	var err error

	if !flags.Changed("platform") {
		draft.Platform, err = term.SelectFromList("Platform", shared.AllPlatforms, format.PlatformLabel)
		if err != nil {
			return draft, fmt.Errorf("error selecting platform: %v", err)
		}
	}

	if !flags.Changed("type") {
		draft.ContentType, err = term.SelectFromList("Content type", shared.AllContentTypes, format.ContentTypeLabel)
		if err != nil {
			return draft, fmt.Errorf("error selecting content type: %v", err)
		}
	}

	if !flags.Changed("title") {
		draft.Title, err = term.GetUserStringInput("Title (optional):")
		if err != nil {
			return draft, fmt.Errorf("error reading title: %v", err)
		}
	}

	if !flags.Changed("caption") {
		draft.Caption, err = term.GetUserStringInput("Caption (optional):")
		if err != nil {
			return draft, fmt.Errorf("error reading caption: %v", err)
		}
	}

	if !flags.Changed("hashtags") {
		draft.Hashtags, err = term.GetUserStringInput("Hashtags (optional):")
		if err != nil {
			return draft, fmt.Errorf("error reading hashtags: %v", err)
		}
	}

	if !flags.Changed("at") {
		def := time.Now().Add(time.Hour).Truncate(time.Hour).Format(calendar.PickerLayout)
		draft.ScheduledLocal, err = term.GetValidatedUserStringInput("Scheduled time (YYYY-MM-DDTHH:MM):", def, func(s string) error {
			_, err := calendar.ParseLocal(s, time.Local)
			return err
		})
		if err != nil {
			return draft, fmt.Errorf("error reading scheduled time: %v", err)
		}
	}

	return draft, nil
}

func updateScheduled(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	id := mustParseId(args[0], "schedule")

	req, err := updateRequestFromFlags(cmd, time.Local)
	if err != nil {
		term.OutputErrorAndExit("%v", err)
	}
	if req.IsEmpty() {
		term.OutputErrorAndExit("Nothing to update. Pass at least one of --platform, --type, --title, --caption, --hashtags, --media, --at, --account or --status")
	}

	term.StartSpinner("Updating...")
	item, apiErr := api.Client.UpdateScheduledContent(id, *req)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	fmt.Printf("✅ Updated %s %s\n", format.PlatformLabel(item.Platform), color.New(color.Bold).Sprint(item.Label()))
}

// updateRequestFromFlags sends only the flags that were set.
func updateRequestFromFlags(cmd *cobra.Command, loc *time.Location) (*shared.UpdateScheduledContentRequest, error) {
	flags := cmd.Flags()
	req := &shared.UpdateScheduledContentRequest{}

	if flags.Changed("platform") {
		p, err := parsePlatform(draftPlatform)
		if err != nil {
			return nil, err
		}
		req.Platform = &p
	}
	if flags.Changed("type") {
		c, err := parseContentType(draftContentType)
		if err != nil {
			return nil, err
		}
		req.ContentType = &c
	}
	if flags.Changed("status") {
		st, err := parseScheduleStatus(updateStatus)
		if err != nil {
			return nil, err
		}
		req.Status = &st
	}
	if flags.Changed("account") {
		id := draftAccount
		req.AccountId = &id
	}
	if flags.Changed("title") {
		req.Title = shared.StrPtr(strings.TrimSpace(draftTitle))
	}
	if flags.Changed("caption") {
		req.Caption = shared.StrPtr(strings.TrimSpace(draftCaption))
	}
	if flags.Changed("hashtags") {
		req.Hashtags = shared.StrPtr(strings.TrimSpace(draftHashtags))
	}
	if flags.Changed("media") {
		req.MediaUrls = shared.StrPtr(strings.TrimSpace(draftMediaUrls))
	}
	if flags.Changed("at") {
		t, err := calendar.ParseLocal(draftAt, loc)
		if err != nil {
			return nil, err
		}
		ts := shared.NewTimestamp(t.UTC())
		req.ScheduledTime = &ts
	}

	if err := shared.ValidateStruct(req); err != nil {
		return nil, err
	}

	return req, nil
}

func deleteScheduled(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	id := mustParseId(args[0], "schedule")

	if !deleteYes {
		ok, err := term.ConfirmYesNo(calendar.DeleteConfirmMsg)
		if err != nil {
			term.OutputErrorAndExit("Error getting confirmation: %v", err)
		}
		if !ok {
			fmt.Println("🤷‍♂️ Nothing deleted")
			return
		}
	}

	term.StartSpinner("Deleting...")
	apiErr := api.Client.DeleteScheduledContent(id)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	fmt.Printf("✅ Deleted schedule %d\n", id)
}

func copyScheduled(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	id := mustParseId(args[0], "schedule")

	term.StartSpinner("")
	items, apiErr := api.Client.ListScheduledContent(shared.ScheduleFilter{})
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	var item *shared.ScheduledContent
	for _, it := range items {
		if it.ScheduleId == id {
			item = it
			break
		}
	}
	if item == nil {
		term.OutputErrorAndExit("Schedule %d not found", id)
	}

	text, err := notify.CopyCaption(item)
	if err != nil {
		term.OutputErrorAndExit("%v", err)
	}

	fmt.Printf("📋 Copied to clipboard\n\n%s\n", text)
}
