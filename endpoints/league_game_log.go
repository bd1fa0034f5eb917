package endpoints

import (
	"fmt"
	"net/url"
)

// LeagueGameLog fetches the league-wide game log for a season: one row per
// team (or player) per game.
type LeagueGameLog struct {
	// Season in YYYY-YY format, e.g. "2024-25". Required.
	Season string
	// SeasonType defaults to the regular season.
	SeasonType string
	// PlayerOrTeam selects row granularity: "T" (default) or "P".
	PlayerOrTeam string
	// Counter caps the number of rows, API default 0 (no cap).
	Counter int
	// Direction sorts rows "ASC" or "DESC" by date.
	Direction string
}

// GameLogEntry is one game log row.
type GameLogEntry struct {
	SeasonID         string
	TeamID           int
	TeamAbbreviation string
	TeamName         string
	GameID           string
	GameDate         string
	Matchup          string
	WinLoss          string
	MIN              int
	PTS              int
	FGM              int
	FGA              int
	FG3M             int
	FG3A             int
	FTM              int
	FTA              int
	OREB             int
	DREB             int
	REB              int
	AST              int
	STL              int
	BLK              int
	TOV              int
	PF               int
	PlusMinus        float64
}

// GameLog is the decoded LeagueGameLog response.
type GameLog struct {
	Entries []GameLogEntry
}

func (e *LeagueGameLog) Path() string { return "leaguegamelog" }

func (e *LeagueGameLog) Params() url.Values {
	seasonType := e.SeasonType
	if seasonType == "" {
		seasonType = SeasonTypeRegular
	}
	playerOrTeam := e.PlayerOrTeam
	if playerOrTeam == "" {
		playerOrTeam = PlayerOrTeamTeam
	}
	direction := e.Direction
	if direction == "" {
		direction = "ASC"
	}
	return url.Values{
		"Season":       {e.Season},
		"SeasonType":   {seasonType},
		"PlayerOrTeam": {playerOrTeam},
		"Counter":      {fmt.Sprintf("%d", e.Counter)},
		"Direction":    {direction},
		"Sorter":       {"DATE"},
		"LeagueID":     {LeagueNBA},
	}
}

func (e *LeagueGameLog) Decode(data []byte) (GameLog, error) {
	resp, err := decodeTabular(data)
	if err != nil {
		return GameLog{}, err
	}
	set, err := resp.set("LeagueGameLog")
	if err != nil {
		return GameLog{}, err
	}
	rows, err := set.rows()
	if err != nil {
		return GameLog{}, err
	}

	log := GameLog{Entries: make([]GameLogEntry, 0, len(rows))}
	for _, row := range rows {
		log.Entries = append(log.Entries, GameLogEntry{
			SeasonID:         rowString(row, "SEASON_ID"),
			TeamID:           rowInt(row, "TEAM_ID"),
			TeamAbbreviation: rowString(row, "TEAM_ABBREVIATION"),
			TeamName:         rowString(row, "TEAM_NAME"),
			GameID:           rowString(row, "GAME_ID"),
			GameDate:         rowString(row, "GAME_DATE"),
			Matchup:          rowString(row, "MATCHUP"),
			WinLoss:          rowString(row, "WL"),
			MIN:              rowInt(row, "MIN"),
			PTS:              rowInt(row, "PTS"),
			FGM:              rowInt(row, "FGM"),
			FGA:              rowInt(row, "FGA"),
			FG3M:             rowInt(row, "FG3M"),
			FG3A:             rowInt(row, "FG3A"),
			FTM:              rowInt(row, "FTM"),
			FTA:              rowInt(row, "FTA"),
			OREB:             rowInt(row, "OREB"),
			DREB:             rowInt(row, "DREB"),
			REB:              rowInt(row, "REB"),
			AST:              rowInt(row, "AST"),
			STL:              rowInt(row, "STL"),
			BLK:              rowInt(row, "BLK"),
			TOV:              rowInt(row, "TOV"),
			PF:               rowInt(row, "PF"),
			PlusMinus:        rowFloat(row, "PLUS_MINUS"),
		})
	}
	return log, nil
}

// Validate checks the descriptor's parameters before use.
func (e *LeagueGameLog) Validate() error {
	if !ValidSeason(e.Season) {
		return fmt.Errorf("Season %q must be YYYY-YY", e.Season)
	}
	return nil
}
