// Package calendar renders an event as an iCalendar file so visitors can
// add it to their own calendar. Pure export, no side effects.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"boxoffice/internal/domain/seating"
)

const dateTimeFormat = "20060102T150405Z"

// VEvent renders a single-VEVENT iCalendar document for the event. The
// caller supplies now so DTSTAMP stays deterministic in tests.
func VEvent(event seating.EventData, now time.Time) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//boxoffice//ticket flow//EN\r\n")
	b.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(&b, "UID:%s\r\n", Escape(event.EventID))
	fmt.Fprintf(&b, "DTSTAMP:%s\r\n", now.UTC().Format(dateTimeFormat))
	fmt.Fprintf(&b, "DTSTART:%s\r\n", event.DateFrom.UTC().Format(dateTimeFormat))
	fmt.Fprintf(&b, "DTEND:%s\r\n", event.DateTo.UTC().Format(dateTimeFormat))
	fmt.Fprintf(&b, "SUMMARY:%s\r\n", Escape(event.NamePub))
	fmt.Fprintf(&b, "DESCRIPTION:%s\r\n", Escape(event.Description))
	fmt.Fprintf(&b, "LOCATION:%s\r\n", Escape(event.Place))
	b.WriteString("END:VEVENT\r\n")
	b.WriteString("END:VCALENDAR\r\n")
	return b.String()
}

// Escape applies RFC 5545 TEXT escaping: backslash, semicolon, comma and
// newline.
func Escape(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\r\n", `\n`,
		"\n", `\n`,
	)
	return r.Replace(s)
}
