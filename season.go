package fastbreak

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The NBA season starts in October.
const seasonStartMonth = time.October

// SeasonFromDate returns the NBA season containing the given date in
// YYYY-YY format. A season is identified by the year it starts: November
// 2024 and March 2025 both fall in "2024-25".
func SeasonFromDate(date time.Time) string {
	startYear := date.Year()
	if date.Month() < seasonStartMonth {
		startYear--
	}
	return fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)
}

// CurrentSeason returns the season containing today's date (UTC).
func CurrentSeason() string {
	return SeasonFromDate(time.Now().UTC())
}

// SeasonStartYear extracts the start year from a YYYY-YY season string.
func SeasonStartYear(season string) (int, error) {
	prefix, _, ok := strings.Cut(season, "-")
	if !ok {
		return 0, fmt.Errorf("season %q is not in YYYY-YY format", season)
	}
	year, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, fmt.Errorf("season %q is not in YYYY-YY format: %w", season, err)
	}
	return year, nil
}

// SeasonID converts a season string to the season ID format some endpoints
// use, e.g. "22024" for "2024-25" (the leading 2 marks the regular season).
func SeasonID(season string) (string, error) {
	year, err := SeasonStartYear(season)
	if err != nil {
		return "", err
	}
	return "2" + strconv.Itoa(year), nil
}
