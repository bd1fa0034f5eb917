package endpoints

import (
	"fmt"
	"net/url"
)

// ScoreboardV2 fetches the daily scoreboard for a date: all games with
// status, quarter line scores and team records.
type ScoreboardV2 struct {
	// GameDate in MM/DD/YYYY format. Empty means today (server-side).
	GameDate string
	// LeagueID defaults to the NBA ("00").
	LeagueID string
	// DayOffset shifts GameDate by whole days, usually "0".
	DayOffset string
}

// GameHeader is one game's summary row on the scoreboard.
type GameHeader struct {
	GameID         string
	GameDate       string
	GameStatusID   int
	GameStatusText string
	HomeTeamID     int
	VisitorTeamID  int
	Season         string
	LivePeriod     int
	ArenaName      string
}

// LineScore is one team's scoring line for one game.
type LineScore struct {
	GameID           string
	TeamID           int
	TeamAbbreviation string
	TeamCityName     string
	TeamWinsLosses   string
	PTS              int
	PTSQtr1          int
	PTSQtr2          int
	PTSQtr3          int
	PTSQtr4          int
	FGPct            float64
	FTPct            float64
	FG3Pct           float64
	AST              int
	REB              int
	TOV              int
}

// Scoreboard is the decoded ScoreboardV2 response.
type Scoreboard struct {
	Games      []GameHeader
	LineScores []LineScore
}

func (e *ScoreboardV2) Path() string { return "scoreboardv2" }

func (e *ScoreboardV2) Params() url.Values {
	leagueID := e.LeagueID
	if leagueID == "" {
		leagueID = LeagueNBA
	}
	dayOffset := e.DayOffset
	if dayOffset == "" {
		dayOffset = "0"
	}
	return url.Values{
		"GameDate":  {e.GameDate},
		"LeagueID":  {leagueID},
		"DayOffset": {dayOffset},
	}
}

func (e *ScoreboardV2) Decode(data []byte) (Scoreboard, error) {
	resp, err := decodeTabular(data)
	if err != nil {
		return Scoreboard{}, err
	}

	var board Scoreboard

	headers, err := resp.set("GameHeader")
	if err != nil {
		return Scoreboard{}, err
	}
	headerRows, err := headers.rows()
	if err != nil {
		return Scoreboard{}, err
	}
	for _, row := range headerRows {
		board.Games = append(board.Games, GameHeader{
			GameID:         rowString(row, "GAME_ID"),
			GameDate:       rowString(row, "GAME_DATE_EST"),
			GameStatusID:   rowInt(row, "GAME_STATUS_ID"),
			GameStatusText: rowString(row, "GAME_STATUS_TEXT"),
			HomeTeamID:     rowInt(row, "HOME_TEAM_ID"),
			VisitorTeamID:  rowInt(row, "VISITOR_TEAM_ID"),
			Season:         rowString(row, "SEASON"),
			LivePeriod:     rowInt(row, "LIVE_PERIOD"),
			ArenaName:      rowString(row, "ARENA_NAME"),
		})
	}

	lines, err := resp.set("LineScore")
	if err != nil {
		return Scoreboard{}, err
	}
	lineRows, err := lines.rows()
	if err != nil {
		return Scoreboard{}, err
	}
	for _, row := range lineRows {
		board.LineScores = append(board.LineScores, LineScore{
			GameID:           rowString(row, "GAME_ID"),
			TeamID:           rowInt(row, "TEAM_ID"),
			TeamAbbreviation: rowString(row, "TEAM_ABBREVIATION"),
			TeamCityName:     rowString(row, "TEAM_CITY_NAME"),
			TeamWinsLosses:   rowString(row, "TEAM_WINS_LOSSES"),
			PTS:              rowInt(row, "PTS"),
			PTSQtr1:          rowInt(row, "PTS_QTR1"),
			PTSQtr2:          rowInt(row, "PTS_QTR2"),
			PTSQtr3:          rowInt(row, "PTS_QTR3"),
			PTSQtr4:          rowInt(row, "PTS_QTR4"),
			FGPct:            rowFloat(row, "FG_PCT"),
			FTPct:            rowFloat(row, "FT_PCT"),
			FG3Pct:           rowFloat(row, "FG3_PCT"),
			AST:              rowInt(row, "AST"),
			REB:              rowInt(row, "REB"),
			TOV:              rowInt(row, "TOV"),
		})
	}

	return board, nil
}

// Validate checks the descriptor's parameters before use.
func (e *ScoreboardV2) Validate() error {
	if e.GameDate != "" && !ValidDate(e.GameDate) {
		return fmt.Errorf("GameDate %q must be MM/DD/YYYY", e.GameDate)
	}
	return nil
}
