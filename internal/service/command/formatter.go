package command

import (
	"fmt"
	"strings"

	"github.com/sandevgo/jotbot/internal/core"
)

type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

func (f *ResponseFormatter) Info(title string) string {
	return fmt.Sprintf("**%s**\n\n", title)
}

func (f *ResponseFormatter) Success(message string) string {
	return fmt.Sprintf("✅ %s\n", message)
}

func (f *ResponseFormatter) Label(label, value string) string {
	return fmt.Sprintf("**%s**  ›  `%s`\n", label, value)
}

func (f *ResponseFormatter) Usage(command string) string {
	return fmt.Sprintf("**Usage**: `%s`\n", command)
}

func (f *ResponseFormatter) List(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("› %s\n", item))
	}
	return sb.String()
}

func (f *ResponseFormatter) Combine(sections ...string) string {
	return strings.Join(sections, "\n")
}

// EntryLine renders one entry the way the journal echoes them back:
// "- [category] text (2006-01-02 15:04)", with the due time for
// reminders.
func (f *ResponseFormatter) EntryLine(e core.Entry) string {
	label := string(e.Type)
	if e.Category != "" {
		label = e.Category
	}

	line := fmt.Sprintf("- [%s] %s", label, e.Text)
	if e.Type == core.EntryReminder && e.DueAt != nil {
		line += fmt.Sprintf(" — due %s", e.DueAt.Format("2006-01-02 15:04"))
	} else {
		line += fmt.Sprintf(" (%s)", e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return line
}

func (f *ResponseFormatter) EntryList(entries []core.Entry) string {
	if len(entries) == 0 {
		return "No entries found."
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, f.EntryLine(e))
	}
	return strings.Join(lines, "\n")
}
