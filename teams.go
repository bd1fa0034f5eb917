package fastbreak

import "strings"

// Official NBA Stats API team IDs.
const (
	// Eastern Conference - Atlantic Division
	Celtics = 1610612738
	Nets    = 1610612751
	Knicks  = 1610612752
	Sixers  = 1610612755
	Raptors = 1610612761

	// Eastern Conference - Central Division
	Bulls     = 1610612741
	Cavaliers = 1610612739
	Pistons   = 1610612765
	Pacers    = 1610612754
	Bucks     = 1610612749

	// Eastern Conference - Southeast Division
	Hawks   = 1610612737
	Hornets = 1610612766
	Heat    = 1610612748
	Magic   = 1610612753
	Wizards = 1610612764

	// Western Conference - Northwest Division
	Nuggets      = 1610612743
	Timberwolves = 1610612750
	Thunder      = 1610612760
	TrailBlazers = 1610612757
	Jazz         = 1610612762

	// Western Conference - Pacific Division
	Warriors = 1610612744
	Clippers = 1610612746
	Lakers   = 1610612747
	Suns     = 1610612756
	Kings    = 1610612758

	// Western Conference - Southwest Division
	Mavericks = 1610612742
	Rockets   = 1610612745
	Grizzlies = 1610612763
	Pelicans  = 1610612740
	Spurs     = 1610612759
)

// Team holds static information about an NBA franchise.
type Team struct {
	ID           int
	Abbreviation string
	City         string
	Name         string
	FullName     string
	Conference   string
	Division     string
}

// Teams is the static table of all thirty NBA franchises, keyed by team ID.
var Teams = map[int]Team{
	Celtics:      {Celtics, "BOS", "Boston", "Celtics", "Boston Celtics", "East", "Atlantic"},
	Nets:         {Nets, "BKN", "Brooklyn", "Nets", "Brooklyn Nets", "East", "Atlantic"},
	Knicks:       {Knicks, "NYK", "New York", "Knicks", "New York Knicks", "East", "Atlantic"},
	Sixers:       {Sixers, "PHI", "Philadelphia", "76ers", "Philadelphia 76ers", "East", "Atlantic"},
	Raptors:      {Raptors, "TOR", "Toronto", "Raptors", "Toronto Raptors", "East", "Atlantic"},
	Bulls:        {Bulls, "CHI", "Chicago", "Bulls", "Chicago Bulls", "East", "Central"},
	Cavaliers:    {Cavaliers, "CLE", "Cleveland", "Cavaliers", "Cleveland Cavaliers", "East", "Central"},
	Pistons:      {Pistons, "DET", "Detroit", "Pistons", "Detroit Pistons", "East", "Central"},
	Pacers:       {Pacers, "IND", "Indiana", "Pacers", "Indiana Pacers", "East", "Central"},
	Bucks:        {Bucks, "MIL", "Milwaukee", "Bucks", "Milwaukee Bucks", "East", "Central"},
	Hawks:        {Hawks, "ATL", "Atlanta", "Hawks", "Atlanta Hawks", "East", "Southeast"},
	Hornets:      {Hornets, "CHA", "Charlotte", "Hornets", "Charlotte Hornets", "East", "Southeast"},
	Heat:         {Heat, "MIA", "Miami", "Heat", "Miami Heat", "East", "Southeast"},
	Magic:        {Magic, "ORL", "Orlando", "Magic", "Orlando Magic", "East", "Southeast"},
	Wizards:      {Wizards, "WAS", "Washington", "Wizards", "Washington Wizards", "East", "Southeast"},
	Nuggets:      {Nuggets, "DEN", "Denver", "Nuggets", "Denver Nuggets", "West", "Northwest"},
	Timberwolves: {Timberwolves, "MIN", "Minnesota", "Timberwolves", "Minnesota Timberwolves", "West", "Northwest"},
	Thunder:      {Thunder, "OKC", "Oklahoma City", "Thunder", "Oklahoma City Thunder", "West", "Northwest"},
	TrailBlazers: {TrailBlazers, "POR", "Portland", "Trail Blazers", "Portland Trail Blazers", "West", "Northwest"},
	Jazz:         {Jazz, "UTA", "Utah", "Jazz", "Utah Jazz", "West", "Northwest"},
	Warriors:     {Warriors, "GSW", "Golden State", "Warriors", "Golden State Warriors", "West", "Pacific"},
	Clippers:     {Clippers, "LAC", "Los Angeles", "Clippers", "Los Angeles Clippers", "West", "Pacific"},
	Lakers:       {Lakers, "LAL", "Los Angeles", "Lakers", "Los Angeles Lakers", "West", "Pacific"},
	Suns:         {Suns, "PHX", "Phoenix", "Suns", "Phoenix Suns", "West", "Pacific"},
	Kings:        {Kings, "SAC", "Sacramento", "Kings", "Sacramento Kings", "West", "Pacific"},
	Mavericks:    {Mavericks, "DAL", "Dallas", "Mavericks", "Dallas Mavericks", "West", "Southwest"},
	Rockets:      {Rockets, "HOU", "Houston", "Rockets", "Houston Rockets", "West", "Southwest"},
	Grizzlies:    {Grizzlies, "MEM", "Memphis", "Grizzlies", "Memphis Grizzlies", "West", "Southwest"},
	Pelicans:     {Pelicans, "NOP", "New Orleans", "Pelicans", "New Orleans Pelicans", "West", "Southwest"},
	Spurs:        {Spurs, "SAS", "San Antonio", "Spurs", "San Antonio Spurs", "West", "Southwest"},
}

// Lookup indexes, built once at init.
var (
	teamsByAbbreviation = map[string]Team{}
	teamsByName         = map[string]Team{}
	teamsByCity         = map[string]Team{}
)

func init() {
	for _, t := range Teams {
		teamsByAbbreviation[t.Abbreviation] = t
		teamsByName[strings.ToLower(t.Name)] = t
		teamsByCity[strings.ToLower(t.City)] = t
	}
}

// TeamByID looks up a team by its NBA Stats API ID.
func TeamByID(id int) (Team, bool) {
	t, ok := Teams[id]
	return t, ok
}

// LookupTeam finds a team by abbreviation ("LAL"), name ("Lakers") or city
// ("Los Angeles"), case-insensitively. Abbreviations win when ambiguous.
func LookupTeam(identifier string) (Team, bool) {
	if t, ok := teamsByAbbreviation[strings.ToUpper(identifier)]; ok {
		return t, true
	}
	lower := strings.ToLower(identifier)
	if t, ok := teamsByName[lower]; ok {
		return t, true
	}
	if t, ok := teamsByCity[lower]; ok {
		return t, true
	}
	return Team{}, false
}

// TeamsByConference returns all teams in "East" or "West".
func TeamsByConference(conference string) []Team {
	return filterTeams(func(t Team) bool {
		return strings.EqualFold(t.Conference, conference)
	})
}

// TeamsByDivision returns all teams in a division, e.g. "Atlantic".
func TeamsByDivision(division string) []Team {
	return filterTeams(func(t Team) bool {
		return strings.EqualFold(t.Division, division)
	})
}

func filterTeams(keep func(Team) bool) []Team {
	var out []Team
	for _, t := range Teams {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
