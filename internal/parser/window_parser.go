package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ParseWindow parses a trailing-window argument into a number of days.
// Supported formats:
// - plain days (e.g., "30")
// - suffixed (e.g., "30d", "4w")
// - spelled out (e.g., "7 days", "2 weeks", "1 week")
func ParseWindow(input string) (int, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return 0, fmt.Errorf("empty window")
	}

	if days, err := strconv.Atoi(input); err == nil {
		return validateDays(days)
	}

	windowRegex := regexp.MustCompile(`^(\d+)\s*(d|w|day|days|week|weeks)$`)
	matches := windowRegex.FindStringSubmatch(input)
	if len(matches) != 3 {
		return 0, fmt.Errorf("invalid window format. Use: 30, 30d, 4w, '7 days', or '2 weeks'")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("invalid number")
	}

	switch matches[2] {
	case "w", "week", "weeks":
		return validateDays(amount * 7)
	default:
		return validateDays(amount)
	}
}

func validateDays(days int) (int, error) {
	if days < 1 || days > 365 { // Max 1 year
		return 0, fmt.Errorf("window must be between 1 and 365 days")
	}
	return days, nil
}
