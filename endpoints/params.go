package endpoints

import "regexp"

// Common parameter values recognized by the API.
const (
	LeagueNBA     = "00"
	LeagueWNBA    = "10"
	LeagueGLeague = "15"

	SeasonTypeRegular  = "Regular Season"
	SeasonTypePlayoffs = "Playoffs"
	SeasonTypePre      = "Pre Season"
	SeasonTypePlayIn   = "PlayIn"

	PlayerOrTeamPlayer = "P"
	PlayerOrTeamTeam   = "T"
)

var (
	seasonRe = regexp.MustCompile(`^\d{4}-\d{2}$`)
	dateRe   = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
)

// ValidSeason reports whether s is in YYYY-YY format, e.g. "2024-25".
func ValidSeason(s string) bool {
	return seasonRe.MatchString(s)
}

// ValidDate reports whether s is in MM/DD/YYYY format, e.g. "01/15/2025".
func ValidDate(s string) bool {
	return dateRe.MatchString(s)
}
