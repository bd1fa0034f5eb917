package endpoints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreboardV2Params(t *testing.T) {
	ep := &ScoreboardV2{GameDate: "01/15/2025"}
	params := ep.Params()

	assert.Equal(t, "01/15/2025", params.Get("GameDate"))
	assert.Equal(t, LeagueNBA, params.Get("LeagueID"))
	assert.Equal(t, "0", params.Get("DayOffset"))

	// Identical descriptors must encode identically; the engine keys its
	// cache on the encoded form.
	other := &ScoreboardV2{GameDate: "01/15/2025"}
	assert.Equal(t, params.Encode(), other.Params().Encode())
}

func TestScoreboardV2Validate(t *testing.T) {
	assert.NoError(t, (&ScoreboardV2{GameDate: "01/15/2025"}).Validate())
	assert.NoError(t, (&ScoreboardV2{}).Validate(), "empty date means today")
	assert.Error(t, (&ScoreboardV2{GameDate: "2025-01-15"}).Validate())
	assert.Error(t, (&ScoreboardV2{GameDate: "yesterday"}).Validate())
}

func TestScoreboardV2Decode(t *testing.T) {
	payload := []byte(`{
		"resource": "scoreboardv2",
		"resultSets": [
			{
				"name": "GameHeader",
				"headers": ["GAME_ID", "GAME_DATE_EST", "GAME_STATUS_ID", "GAME_STATUS_TEXT", "HOME_TEAM_ID", "VISITOR_TEAM_ID", "SEASON", "LIVE_PERIOD", "ARENA_NAME"],
				"rowSet": [
					["0022400561", "2025-01-15T00:00:00", 3, "Final", 1610612738, 1610612747, "2024", 4, "TD Garden"]
				]
			},
			{
				"name": "LineScore",
				"headers": ["GAME_ID", "TEAM_ID", "TEAM_ABBREVIATION", "TEAM_CITY_NAME", "TEAM_WINS_LOSSES", "PTS", "PTS_QTR1", "PTS_QTR2", "PTS_QTR3", "PTS_QTR4", "FG_PCT", "FT_PCT", "FG3_PCT", "AST", "REB", "TOV"],
				"rowSet": [
					["0022400561", 1610612738, "BOS", "Boston", "30-12", 112, 28, 30, 26, 28, 0.48, 0.85, 0.39, 26, 44, 11],
					["0022400561", 1610612747, "LAL", "Los Angeles", "25-17", 105, 25, 27, 28, 25, 0.45, 0.78, 0.33, 22, 41, 14]
				]
			}
		]
	}`)

	board, err := (&ScoreboardV2{GameDate: "01/15/2025"}).Decode(payload)
	require.NoError(t, err)

	require.Len(t, board.Games, 1)
	game := board.Games[0]
	assert.Equal(t, "0022400561", game.GameID)
	assert.Equal(t, "Final", game.GameStatusText)
	assert.Equal(t, 1610612738, game.HomeTeamID)
	assert.Equal(t, 1610612747, game.VisitorTeamID)

	require.Len(t, board.LineScores, 2)
	home := board.LineScores[0]
	assert.Equal(t, "BOS", home.TeamAbbreviation)
	assert.Equal(t, 112, home.PTS)
	assert.Equal(t, 28, home.PTSQtr1)
	assert.InDelta(t, 0.48, home.FGPct, 1e-9)
}

func TestScoreboardV2DecodeMissingSet(t *testing.T) {
	_, err := (&ScoreboardV2{}).Decode([]byte(`{"resultSets": []}`))
	require.Error(t, err)
}

func TestLeagueGameLogParams(t *testing.T) {
	ep := &LeagueGameLog{Season: "2024-25"}
	params := ep.Params()

	assert.Equal(t, "2024-25", params.Get("Season"))
	assert.Equal(t, SeasonTypeRegular, params.Get("SeasonType"))
	assert.Equal(t, PlayerOrTeamTeam, params.Get("PlayerOrTeam"))
	assert.Equal(t, "ASC", params.Get("Direction"))
	assert.Equal(t, "DATE", params.Get("Sorter"))

	player := &LeagueGameLog{Season: "2024-25", PlayerOrTeam: PlayerOrTeamPlayer, Direction: "DESC"}
	params = player.Params()
	assert.Equal(t, "P", params.Get("PlayerOrTeam"))
	assert.Equal(t, "DESC", params.Get("Direction"))
}

func TestLeagueGameLogValidate(t *testing.T) {
	assert.NoError(t, (&LeagueGameLog{Season: "2024-25"}).Validate())
	assert.Error(t, (&LeagueGameLog{}).Validate())
	assert.Error(t, (&LeagueGameLog{Season: "2024"}).Validate())
}

func TestLeagueGameLogDecode(t *testing.T) {
	payload := []byte(`{
		"resultSets": [
			{
				"name": "LeagueGameLog",
				"headers": ["SEASON_ID", "TEAM_ID", "TEAM_ABBREVIATION", "TEAM_NAME", "GAME_ID", "GAME_DATE", "MATCHUP", "WL", "MIN", "PTS", "FGM", "FGA", "FG3M", "FG3A", "FTM", "FTA", "OREB", "DREB", "REB", "AST", "STL", "BLK", "TOV", "PF", "PLUS_MINUS"],
				"rowSet": [
					["22024", 1610612738, "BOS", "Boston Celtics", "0022400561", "2025-01-15", "BOS vs. LAL", "W", 240, 112, 40, 88, 15, 40, 17, 22, 10, 34, 44, 26, 7, 5, 11, 18, 7.0]
				]
			}
		]
	}`)

	log, err := (&LeagueGameLog{Season: "2024-25"}).Decode(payload)
	require.NoError(t, err)
	require.Len(t, log.Entries, 1)

	entry := log.Entries[0]
	assert.Equal(t, "22024", entry.SeasonID)
	assert.Equal(t, "BOS vs. LAL", entry.Matchup)
	assert.Equal(t, "W", entry.WinLoss)
	assert.Equal(t, 112, entry.PTS)
	assert.Equal(t, 88, entry.FGA)
	assert.InDelta(t, 7.0, entry.PlusMinus, 1e-9)
}

func TestLeagueStandingsV3Params(t *testing.T) {
	ep := &LeagueStandingsV3{Season: "2024-25"}
	params := ep.Params()

	assert.Equal(t, "2024-25", params.Get("Season"))
	assert.Equal(t, SeasonTypeRegular, params.Get("SeasonType"))
	assert.Equal(t, LeagueNBA, params.Get("LeagueID"))
}

func TestLeagueStandingsV3Validate(t *testing.T) {
	assert.NoError(t, (&LeagueStandingsV3{Season: "2024-25"}).Validate())
	assert.Error(t, (&LeagueStandingsV3{Season: "24-25"}).Validate())
}

func TestLeagueStandingsV3Decode(t *testing.T) {
	payload := []byte(`{
		"resultSets": [
			{
				"name": "Standings",
				"headers": ["TeamID", "TeamCity", "TeamName", "Conference", "Division", "ConferenceRecord", "PlayoffRank", "WINS", "LOSSES", "WinPCT", "ConferenceGamesBack", "HOME", "ROAD", "L10", "CurrentStreak", "PointsPG", "OppPointsPG", "DiffPointsPG"],
				"rowSet": [
					[1610612738, "Boston", "Celtics", "East", "Atlantic", "20-8", 1, 30, 12, 0.714, 0.0, "18-4", "12-8", "8-2", "W4", 118.2, 109.5, 8.7]
				]
			}
		]
	}`)

	standings, err := (&LeagueStandingsV3{Season: "2024-25"}).Decode(payload)
	require.NoError(t, err)
	require.Len(t, standings.Rows, 1)

	row := standings.Rows[0]
	assert.Equal(t, 1610612738, row.TeamID)
	assert.Equal(t, "Celtics", row.TeamName)
	assert.Equal(t, 1, row.PlayoffRank)
	assert.Equal(t, 30, row.Wins)
	assert.Equal(t, 12, row.Losses)
	assert.InDelta(t, 0.714, row.WinPct, 1e-9)
	assert.Equal(t, "W4", row.Streak)
}

func TestCommonPlayerInfoParams(t *testing.T) {
	ep := &CommonPlayerInfo{PlayerID: 1628369}
	params := ep.Params()
	assert.Equal(t, "1628369", params.Get("PlayerID"))
	assert.Equal(t, LeagueNBA, params.Get("LeagueID"))
}

func TestCommonPlayerInfoValidate(t *testing.T) {
	assert.NoError(t, (&CommonPlayerInfo{PlayerID: 1628369}).Validate())
	assert.Error(t, (&CommonPlayerInfo{}).Validate())
	assert.Error(t, (&CommonPlayerInfo{PlayerID: -3}).Validate())
}

func TestCommonPlayerInfoDecode(t *testing.T) {
	payload := []byte(`{
		"resultSets": [
			{
				"name": "CommonPlayerInfo",
				"headers": ["PERSON_ID", "FIRST_NAME", "LAST_NAME", "DISPLAY_FIRST_LAST", "BIRTHDATE", "SCHOOL", "COUNTRY", "HEIGHT", "WEIGHT", "SEASON_EXP", "JERSEY", "POSITION", "ROSTERSTATUS", "TEAM_ID", "TEAM_NAME", "TEAM_ABBREVIATION", "TEAM_CITY", "FROM_YEAR", "TO_YEAR", "DRAFT_YEAR", "DRAFT_ROUND", "DRAFT_NUMBER"],
				"rowSet": [
					[1628369, "Jayson", "Tatum", "Jayson Tatum", "1998-03-03T00:00:00", "Duke", "USA", "6-8", "210", 7, "0", "Forward", "Active", 1610612738, "Celtics", "BOS", "Boston", 2017, 2024, "2017", "1", "3"]
				]
			}
		]
	}`)

	info, err := (&CommonPlayerInfo{PlayerID: 1628369}).Decode(payload)
	require.NoError(t, err)

	assert.Equal(t, 1628369, info.PlayerID)
	assert.Equal(t, "Jayson Tatum", info.DisplayName)
	assert.Equal(t, "Forward", info.Position)
	assert.Equal(t, "BOS", info.TeamAbbrev)
	assert.Equal(t, 2017, info.FromYear)
	assert.Equal(t, "1", info.DraftRound)
}

func TestCommonPlayerInfoDecodeEmpty(t *testing.T) {
	payload := []byte(`{
		"resultSets": [
			{"name": "CommonPlayerInfo", "headers": ["PERSON_ID"], "rowSet": []}
		]
	}`)
	_, err := (&CommonPlayerInfo{PlayerID: 1}).Decode(payload)
	require.Error(t, err)
}
