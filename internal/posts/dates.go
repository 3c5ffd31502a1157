package posts

import (
	"fmt"
	"strings"
	"time"
)

// FormatRelative is the pseudo-format that renders elapsed time instead
// of a calendar date.
const FormatRelative = "relative"

// tokenReplacer maps the supported date-format tokens onto Go reference
// layout fragments. Longer tokens are listed first so "MMMM" wins over
// "MMM" and "YYYY" over "YY".
var tokenReplacer = strings.NewReplacer(
	"MMMM", "January",
	"MMM", "Jan",
	"MM", "01",
	"DD", "02",
	"D", "2",
	"YYYY", "2006",
	"YY", "06",
)

func (n *Normalizer) formatDate(published string) string {
	if published == "" {
		return "Unknown date"
	}

	t, err := time.Parse(time.RFC3339, published)
	if err != nil {
		return "Invalid date"
	}

	if n.dateFormat == FormatRelative {
		return relativeDate(n.now().Sub(t))
	}

	return t.Format(tokenReplacer.Replace(n.dateFormat))
}

// relativeDate buckets an elapsed duration into the largest whole unit.
func relativeDate(elapsed time.Duration) string {
	if elapsed < time.Minute {
		return "Just now"
	}

	minutes := int(elapsed.Minutes())
	hours := int(elapsed.Hours())
	days := hours / 24

	switch {
	case minutes < 60:
		return agoString(minutes, "minute")
	case hours < 24:
		return agoString(hours, "hour")
	case days < 7:
		return agoString(days, "day")
	case days < 30:
		return agoString(days/7, "week")
	case days < 365:
		return agoString(days/30, "month")
	default:
		return agoString(days/365, "year")
	}
}

func agoString(count int, unit string) string {
	if count == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", count, unit)
}
