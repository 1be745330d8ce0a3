package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"socialcal/shared"
	"socialcal/term"

	"github.com/olekukonko/tablewriter"
)

func mustParseId(arg, what string) int64 {
	id, err := strconv.ParseInt(strings.TrimPrefix(arg, "#"), 10, 64)
	if err != nil || id <= 0 {
		term.OutputErrorAndExit("Invalid %s id: %s", what, arg)
	}
	return id
}

func parsePlatform(s string) (shared.Platform, error) {
	p := shared.Platform(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown platform %q (expected one of %s)", s, joinValues(shared.AllPlatforms))
	}
	return p, nil
}

func parseContentType(s string) (shared.ContentType, error) {
	c := shared.ContentType(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown content type %q (expected one of %s)", s, joinValues(shared.AllContentTypes))
	}
	return c, nil
}

func parseScheduleStatus(s string) (shared.ScheduleStatus, error) {
	st := shared.ScheduleStatus(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("unknown status %q (expected one of %s)", s, joinValues(shared.AllScheduleStatuses))
	}
	return st, nil
}

func parseMessageStatus(s string) (shared.MessageStatus, error) {
	st := shared.MessageStatus(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("unknown status %q (expected one of %s)", s, joinValues(shared.AllMessageStatuses))
	}
	return st, nil
}

func joinValues[T ~string](values []T) string {
	var res []string
	for _, v := range values {
		res = append(res, string(v))
	}
	return strings.Join(res, ", ")
}

func newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetHeader(header)
	return table
}
