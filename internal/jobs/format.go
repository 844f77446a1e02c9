package jobs

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jonathan/career-mentor/internal/types"
)

// FormatSalary renders a salary range as "<currency> <min> - <max>" with thousands separators.
func FormatSalary(s *types.Salary) string {
	if s == nil {
		return "Salary not specified"
	}
	return fmt.Sprintf("%s %s - %s", s.Currency, humanize.Comma(int64(s.Min)), humanize.Comma(int64(s.Max)))
}

// PostedAgo describes how long ago an RFC 3339 timestamp was, relative to now.
// Unparseable timestamps are returned unchanged; future timestamps read as "Today".
func PostedAgo(postedAt string, now time.Time) string {
	t, err := time.Parse(time.RFC3339, postedAt)
	if err != nil {
		return postedAt
	}
	if t.After(now) {
		return "Today"
	}
	days := int(now.Sub(t).Hours() / 24)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "1 day ago"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	default:
		return fmt.Sprintf("%d months ago", days/30)
	}
}
