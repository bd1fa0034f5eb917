package fastbreak

import "testing"

func TestTeamsTableComplete(t *testing.T) {
	if len(Teams) != 30 {
		t.Fatalf("team table has %d entries, want 30", len(Teams))
	}

	seenAbbrev := make(map[string]bool)
	for id, team := range Teams {
		if team.ID != id {
			t.Errorf("%s keyed under %d but carries ID %d", team.FullName, id, team.ID)
		}
		if len(team.Abbreviation) != 3 {
			t.Errorf("%s abbreviation %q is not three letters", team.FullName, team.Abbreviation)
		}
		if seenAbbrev[team.Abbreviation] {
			t.Errorf("duplicate abbreviation %q", team.Abbreviation)
		}
		seenAbbrev[team.Abbreviation] = true
		if team.Conference != "East" && team.Conference != "West" {
			t.Errorf("%s conference %q", team.FullName, team.Conference)
		}
	}
}

func TestTeamByID(t *testing.T) {
	team, ok := TeamByID(Lakers)
	if !ok {
		t.Fatal("Lakers lookup failed")
	}
	if team.Abbreviation != "LAL" || team.City != "Los Angeles" {
		t.Errorf("got %+v", team)
	}

	if _, ok := TeamByID(12345); ok {
		t.Error("unknown ID should not resolve")
	}
}

func TestLookupTeam(t *testing.T) {
	tests := []struct {
		identifier string
		wantID     int
	}{
		{"BOS", Celtics},
		{"bos", Celtics},
		{"Celtics", Celtics},
		{"celtics", Celtics},
		{"Boston", Celtics},
		{"Oklahoma City", Thunder},
		{"trail blazers", TrailBlazers},
	}

	for _, tt := range tests {
		team, ok := LookupTeam(tt.identifier)
		if !ok {
			t.Errorf("LookupTeam(%q) failed", tt.identifier)
			continue
		}
		if team.ID != tt.wantID {
			t.Errorf("LookupTeam(%q) = %s, want ID %d", tt.identifier, team.FullName, tt.wantID)
		}
	}

	if _, ok := LookupTeam("Seattle"); ok {
		t.Error("defunct city should not resolve")
	}
}

func TestTeamsByConference(t *testing.T) {
	east := TeamsByConference("East")
	west := TeamsByConference("west")
	if len(east) != 15 || len(west) != 15 {
		t.Errorf("split = %d east / %d west, want 15/15", len(east), len(west))
	}
	if n := len(TeamsByConference("North")); n != 0 {
		t.Errorf("unknown conference returned %d teams", n)
	}
}

func TestTeamsByDivision(t *testing.T) {
	atlantic := TeamsByDivision("Atlantic")
	if len(atlantic) != 5 {
		t.Fatalf("Atlantic has %d teams, want 5", len(atlantic))
	}
	for _, team := range atlantic {
		if team.Conference != "East" {
			t.Errorf("%s is Atlantic but %s conference", team.FullName, team.Conference)
		}
	}
}
