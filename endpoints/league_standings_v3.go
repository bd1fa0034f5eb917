package endpoints

import (
	"fmt"
	"net/url"
)

// LeagueStandingsV3 fetches conference standings for a season.
type LeagueStandingsV3 struct {
	// Season in YYYY-YY format. Required.
	Season string
	// SeasonType defaults to the regular season.
	SeasonType string
}

// StandingsRow is one team's standings line.
type StandingsRow struct {
	TeamID           int
	TeamCity         string
	TeamName         string
	Conference       string
	Division         string
	ConferenceRecord string
	PlayoffRank      int
	Wins             int
	Losses           int
	WinPct           float64
	GamesBack        float64
	HomeRecord       string
	RoadRecord       string
	Last10           string
	Streak           string
	PointsPG         float64
	OppPointsPG      float64
	DiffPointsPG     float64
}

// Standings is the decoded LeagueStandingsV3 response.
type Standings struct {
	Rows []StandingsRow
}

func (e *LeagueStandingsV3) Path() string { return "leaguestandingsv3" }

func (e *LeagueStandingsV3) Params() url.Values {
	seasonType := e.SeasonType
	if seasonType == "" {
		seasonType = SeasonTypeRegular
	}
	return url.Values{
		"Season":     {e.Season},
		"SeasonType": {seasonType},
		"LeagueID":   {LeagueNBA},
	}
}

func (e *LeagueStandingsV3) Decode(data []byte) (Standings, error) {
	resp, err := decodeTabular(data)
	if err != nil {
		return Standings{}, err
	}
	set, err := resp.set("Standings")
	if err != nil {
		return Standings{}, err
	}
	rows, err := set.rows()
	if err != nil {
		return Standings{}, err
	}

	standings := Standings{Rows: make([]StandingsRow, 0, len(rows))}
	for _, row := range rows {
		standings.Rows = append(standings.Rows, StandingsRow{
			TeamID:           rowInt(row, "TeamID"),
			TeamCity:         rowString(row, "TeamCity"),
			TeamName:         rowString(row, "TeamName"),
			Conference:       rowString(row, "Conference"),
			Division:         rowString(row, "Division"),
			ConferenceRecord: rowString(row, "ConferenceRecord"),
			PlayoffRank:      rowInt(row, "PlayoffRank"),
			Wins:             rowInt(row, "WINS"),
			Losses:           rowInt(row, "LOSSES"),
			WinPct:           rowFloat(row, "WinPCT"),
			GamesBack:        rowFloat(row, "ConferenceGamesBack"),
			HomeRecord:       rowString(row, "HOME"),
			RoadRecord:       rowString(row, "ROAD"),
			Last10:           rowString(row, "L10"),
			Streak:           rowString(row, "CurrentStreak"),
			PointsPG:         rowFloat(row, "PointsPG"),
			OppPointsPG:      rowFloat(row, "OppPointsPG"),
			DiffPointsPG:     rowFloat(row, "DiffPointsPG"),
		})
	}
	return standings, nil
}

// Validate checks the descriptor's parameters before use.
func (e *LeagueStandingsV3) Validate() error {
	if !ValidSeason(e.Season) {
		return fmt.Errorf("Season %q must be YYYY-YY", e.Season)
	}
	return nil
}
