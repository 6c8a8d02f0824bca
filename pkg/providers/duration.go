package providers

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// parseISODuration parses the PnDTnHnMnS subset of ISO-8601 durations that
// event platforms emit (e.g. "PT2H30M", "P1DT4H"). Weeks, months and years
// are not supported.
func parseISODuration(s string) (time.Duration, error) {
	if s == "" || s[0] != 'P' {
		return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
	}
	rest := s[1:]
	var datePart, timePart string
	if i := strings.IndexByte(rest, 'T'); i >= 0 {
		datePart, timePart = rest[:i], rest[i+1:]
	} else {
		datePart = rest
	}

	var total time.Duration
	parse := func(part string, units map[byte]time.Duration) error {
		num := ""
		for i := 0; i < len(part); i++ {
			c := part[i]
			if (c >= '0' && c <= '9') || c == '.' {
				num += string(c)
				continue
			}
			unit, ok := units[c]
			if !ok || num == "" {
				return fmt.Errorf("invalid ISO-8601 duration %q", s)
			}
			v, err := strconv.ParseFloat(num, 64)
			if err != nil {
				return fmt.Errorf("invalid ISO-8601 duration %q: %w", s, err)
			}
			total += time.Duration(v * float64(unit))
			num = ""
		}
		if num != "" {
			return fmt.Errorf("invalid ISO-8601 duration %q", s)
		}
		return nil
	}

	if err := parse(datePart, map[byte]time.Duration{'D': 24 * time.Hour}); err != nil {
		return 0, err
	}
	if err := parse(timePart, map[byte]time.Duration{
		'H': time.Hour,
		'M': time.Minute,
		'S': time.Second,
	}); err != nil {
		return 0, err
	}
	return total, nil
}

// formatISODuration renders a duration as PT<h>H<m>M, the shape stored on
// canonical events.
func formatISODuration(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("PT%dH%dM", h, m)
	case h > 0:
		return fmt.Sprintf("PT%dH", h)
	default:
		return fmt.Sprintf("PT%dM", m)
	}
}
