package utils

import (
	"fmt"
	"strings"
	"time"

	"studiobook/models"
)

// icalEscape escapes text per RFC 5545 section 3.3.11.
func icalEscape(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
	)
	return r.Replace(s)
}

// BookingICS renders a confirmed booking as a single-event iCalendar file.
// Times are floating local times in the studio's timezone, which is what a
// client importing the event into their calendar expects for an in-person
// session.
func BookingICS(booking *models.Booking, studio *models.Studio) (string, error) {
	date := booking.Date()
	if date == "" {
		return "", fmt.Errorf("booking %s has no time slots", booking.ID)
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("booking %s has malformed date %q: %w", booking.ID, date, err)
	}

	start := day.Add(time.Duration(booking.StartHour()) * time.Hour)
	end := day.Add(time.Duration(booking.EndHour()) * time.Hour)

	summary := "Studio session"
	location := ""
	if studio != nil {
		summary = fmt.Sprintf("Studio session at %s", studio.Name)
		location = studio.Location
	}
	description := fmt.Sprintf("Booking %s. Total: %s %.2f", booking.ID, booking.Currency, booking.TotalPrice)

	const stampLayout = "20060102T150405"
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//StudioBook//Booking//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:" + booking.ID + "@studiobook",
		"DTSTAMP:" + time.Now().UTC().Format(stampLayout) + "Z",
		"DTSTART:" + start.Format(stampLayout),
		"DTEND:" + end.Format(stampLayout),
		"SUMMARY:" + icalEscape(summary),
		"DESCRIPTION:" + icalEscape(description),
	}
	if location != "" {
		lines = append(lines, "LOCATION:"+icalEscape(location))
	}
	lines = append(lines,
		"BEGIN:VALARM",
		"TRIGGER:-PT15M",
		"ACTION:DISPLAY",
		"DESCRIPTION:"+icalEscape(summary),
		"END:VALARM",
		"END:VEVENT",
		"END:VCALENDAR",
	)

	// RFC 5545 requires CRLF line endings.
	return strings.Join(lines, "\r\n") + "\r\n", nil
}
