package endpoints

import (
	"fmt"
	"net/url"
	"strconv"
)

// CommonPlayerInfo fetches biographical and roster data for one player.
type CommonPlayerInfo struct {
	// PlayerID is the stats.nba.com player identifier. Required.
	PlayerID int
}

// PlayerInfo is the decoded CommonPlayerInfo response.
type PlayerInfo struct {
	PlayerID     int
	FirstName    string
	LastName     string
	DisplayName  string
	Birthdate    string
	School       string
	Country      string
	Height       string
	Weight       string
	SeasonExp    int
	Jersey       string
	Position     string
	RosterStatus string
	TeamID       int
	TeamName     string
	TeamAbbrev   string
	TeamCity     string
	FromYear     int
	ToYear       int
	DraftYear    string
	DraftRound   string
	DraftNumber  string
}

func (e *CommonPlayerInfo) Path() string { return "commonplayerinfo" }

func (e *CommonPlayerInfo) Params() url.Values {
	return url.Values{
		"PlayerID": {strconv.Itoa(e.PlayerID)},
		"LeagueID": {LeagueNBA},
	}
}

func (e *CommonPlayerInfo) Decode(data []byte) (PlayerInfo, error) {
	resp, err := decodeTabular(data)
	if err != nil {
		return PlayerInfo{}, err
	}
	set, err := resp.set("CommonPlayerInfo")
	if err != nil {
		return PlayerInfo{}, err
	}
	rows, err := set.rows()
	if err != nil {
		return PlayerInfo{}, err
	}
	if len(rows) == 0 {
		return PlayerInfo{}, fmt.Errorf("CommonPlayerInfo returned no rows")
	}

	row := rows[0]
	return PlayerInfo{
		PlayerID:     rowInt(row, "PERSON_ID"),
		FirstName:    rowString(row, "FIRST_NAME"),
		LastName:     rowString(row, "LAST_NAME"),
		DisplayName:  rowString(row, "DISPLAY_FIRST_LAST"),
		Birthdate:    rowString(row, "BIRTHDATE"),
		School:       rowString(row, "SCHOOL"),
		Country:      rowString(row, "COUNTRY"),
		Height:       rowString(row, "HEIGHT"),
		Weight:       rowString(row, "WEIGHT"),
		SeasonExp:    rowInt(row, "SEASON_EXP"),
		Jersey:       rowString(row, "JERSEY"),
		Position:     rowString(row, "POSITION"),
		RosterStatus: rowString(row, "ROSTERSTATUS"),
		TeamID:       rowInt(row, "TEAM_ID"),
		TeamName:     rowString(row, "TEAM_NAME"),
		TeamAbbrev:   rowString(row, "TEAM_ABBREVIATION"),
		TeamCity:     rowString(row, "TEAM_CITY"),
		FromYear:     rowInt(row, "FROM_YEAR"),
		ToYear:       rowInt(row, "TO_YEAR"),
		DraftYear:    rowString(row, "DRAFT_YEAR"),
		DraftRound:   rowString(row, "DRAFT_ROUND"),
		DraftNumber:  rowString(row, "DRAFT_NUMBER"),
	}, nil
}

// Validate checks the descriptor's parameters before use.
func (e *CommonPlayerInfo) Validate() error {
	if e.PlayerID <= 0 {
		return fmt.Errorf("PlayerID %d must be positive", e.PlayerID)
	}
	return nil
}
