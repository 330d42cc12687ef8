package utils

import (
	"strings"
	"time"
)

// ISODate is the storage format for meeting and goal dates.
const ISODate = "2006-01-02"

// dateFormats lists the input layouts accepted from clients, tried in
// order. The first match wins.
var dateFormats = []string{
	ISODate,
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"January 2, 2006",
	"Jan 2, 2006",
	time.RFC3339,
}

// NormalizeDate parses a user-supplied date string against the accepted
// layouts and returns it in ISO form. An empty string passes through
// unchanged so optional date fields stay optional.
func NormalizeDate(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", true
	}

	for _, format := range dateFormats {
		if parsed, err := time.Parse(format, value); err == nil {
			return parsed.Format(ISODate), true
		}
	}

	return "", false
}
