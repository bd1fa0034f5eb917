// Package stats computes derived basketball metrics from traditional box
// score statistics.
//
// Most functions take raw counting stats and return a rate, ratio, or index
// together with an ok bool that is false when the denominator is zero.
// GameScore, Possessions, IsDoubleDouble, and IsTripleDouble always succeed.
//
// All functions assume finite, non-negative inputs. Passing NaN or Inf
// produces unspecified results.
package stats

import (
	"fmt"
	"math"
)

// TrueShooting computes TS%, shooting efficiency across all shot types.
//
//	TS% = PTS / (2 * (FGA + 0.44*FTA))
//
// The 0.44 multiplier on FTA reflects that not every free throw attempt
// costs a full possession. Values above 1.0 are valid on small samples.
// ok is false when both FGA and FTA are zero.
func TrueShooting(pts, fga, fta float64) (float64, bool) {
	denom := 2 * (fga + 0.44*fta)
	if denom == 0 {
		return 0, false
	}
	return pts / denom, true
}

// EffectiveFGPct computes eFG%, field goal percentage with made threes
// credited at 1.5x.
//
//	eFG% = (FGM + 0.5*FG3M) / FGA
//
// ok is false when FGA is zero.
func EffectiveFGPct(fgm, fg3m, fga float64) (float64, bool) {
	if fga == 0 {
		return 0, false
	}
	return (fgm + 0.5*fg3m) / fga, true
}

// FreeThrowRate computes FTA/FGA, how often a player reaches the line
// relative to field goal attempts. ok is false when FGA is zero.
func FreeThrowRate(fta, fga float64) (float64, bool) {
	if fga == 0 {
		return 0, false
	}
	return fta / fga, true
}

// ThreePointRate computes FG3A/FGA, the share of field goal attempts taken
// from beyond the arc. ok is false when FGA is zero.
func ThreePointRate(fg3a, fga float64) (float64, bool) {
	if fga == 0 {
		return 0, false
	}
	return fg3a / fga, true
}

// TovPct computes turnover percentage, the share of possessions ending in a
// turnover, as a 0-1 fraction.
//
//	TOV% = TOV / (FGA + 0.44*FTA + TOV)
//
// ok is false when all three inputs are zero.
func TovPct(fga, fta, tov float64) (float64, bool) {
	denom := fga + 0.44*fta + tov
	if denom == 0 {
		return 0, false
	}
	return tov / denom, true
}

// FourFactors holds Dean Oliver's four team efficiency components. Each
// component carries its own ok flag since any denominator can be zero.
type FourFactors struct {
	EFGPct    float64
	EFGPctOK  bool
	TovPct    float64
	TovPctOK  bool
	ORebPct   float64
	ORebPctOK bool
	FTRate    float64
	FTRateOK  bool
}

// ComputeFourFactors derives the four factors for a single team performance.
// oppDReb is the opponent's defensive rebound count from the same game.
func ComputeFourFactors(fgm, fg3m, fga, tov, fta, oreb, oppDReb float64) FourFactors {
	var ff FourFactors
	ff.EFGPct, ff.EFGPctOK = EffectiveFGPct(fgm, fg3m, fga)
	ff.TovPct, ff.TovPctOK = TovPct(fga, fta, tov)
	ff.FTRate, ff.FTRateOK = FreeThrowRate(fta, fga)
	if total := oreb + oppDReb; total > 0 {
		ff.ORebPct, ff.ORebPctOK = oreb/total, true
	}
	return ff
}

// AstToTov computes the assist-to-turnover ratio. ok is false when
// turnovers are zero.
func AstToTov(ast, tov float64) (float64, bool) {
	if tov == 0 {
		return 0, false
	}
	return ast / tov, true
}

// AssistRatio computes assists per 100 offensive plays.
//
//	AST Ratio = AST / (FGA + 0.44*FTA + AST + TOV) * 100
//
// ok is false when the play count is zero.
func AssistRatio(ast, fga, fta, tov float64) (float64, bool) {
	denom := fga + 0.44*fta + ast + tov
	if denom == 0 {
		return 0, false
	}
	return ast / denom * 100, true
}

// GameScore computes Hollinger's Game Score, a single-number summary of a
// box score line. Roughly calibrated so 10 is an average game and 40+ is
// exceptional; can be negative for very poor shooting lines.
func GameScore(pts, fgm, fga, ftm, fta, oreb, dreb, stl, ast, blk, pf, tov float64) float64 {
	return pts +
		0.4*fgm -
		0.7*fga -
		0.4*(fta-ftm) +
		0.7*oreb +
		0.3*dreb +
		stl +
		0.7*ast +
		0.7*blk -
		0.4*pf -
		tov
}

// Per36 normalizes a counting stat to a per-36-minute pace. ok is false
// when minutes are zero.
func Per36(stat, minutes float64) (float64, bool) {
	if minutes == 0 {
		return 0, false
	}
	return stat * 36 / minutes, true
}

// Per100 normalizes a counting stat to a per-100-possessions rate. Use
// Possessions as the poss argument for team-level data. ok is false when
// possessions are zero.
func Per100(stat, poss float64) (float64, bool) {
	if poss == 0 {
		return 0, false
	}
	return stat * 100 / poss, true
}

const doubleDigit = 10

func countDoubleDigits(pts, reb, ast, stl, blk float64) int {
	n := 0
	for _, c := range [...]float64{pts, reb, ast, stl, blk} {
		if c >= doubleDigit {
			n++
		}
	}
	return n
}

// IsDoubleDouble reports whether at least two of the five counting
// categories reach 10 or more.
func IsDoubleDouble(pts, reb, ast, stl, blk float64) bool {
	return countDoubleDigits(pts, reb, ast, stl, blk) >= 2
}

// IsTripleDouble reports whether at least three of the five counting
// categories reach 10 or more.
func IsTripleDouble(pts, reb, ast, stl, blk float64) bool {
	return countDoubleDigits(pts, reb, ast, stl, blk) >= 3
}

// UsagePct estimates the share of team possessions a player used while on
// the floor.
//
//	Usage% = (FGA + 0.44*FTA + TOV) * (team_MP/5) / (MP * (team_FGA + 0.44*team_FTA + team_TOV))
//
// ok is false when player minutes or team possessions are zero.
func UsagePct(fga, fta, tov, mp, teamFGA, teamFTA, teamTov, teamMP float64) (float64, bool) {
	teamPoss := teamFGA + 0.44*teamFTA + teamTov
	denom := mp * teamPoss
	if denom == 0 {
		return 0, false
	}
	playerPoss := fga + 0.44*fta + tov
	return playerPoss * (teamMP / 5) / denom, true
}

// Possessions estimates possessions with Dean Oliver's formula.
//
//	poss = FGA - OREB + TOV + 0.44*FTA
//
// Typical values run 95-105 for a modern team over a full game.
func Possessions(fga, oreb, tov, fta float64) float64 {
	return fga - oreb + tov + 0.44*fta
}

// ORtg computes offensive rating, points scored per 100 possessions. ok is
// false when the possession estimate is zero.
func ORtg(pts, fga, oreb, tov, fta float64) (float64, bool) {
	poss := Possessions(fga, oreb, tov, fta)
	if poss == 0 {
		return 0, false
	}
	return pts / poss * 100, true
}

// DRtg computes defensive rating, opponent points allowed per 100 opponent
// possessions. All arguments are opponent totals. ok is false when the
// possession estimate is zero.
func DRtg(oppPts, oppFGA, oppOReb, oppTov, oppFTA float64) (float64, bool) {
	poss := Possessions(oppFGA, oppOReb, oppTov, oppFTA)
	if poss == 0 {
		return 0, false
	}
	return oppPts / poss * 100, true
}

// NetRtg computes ORtg minus DRtg for the same game or season.
func NetRtg(pts, fga, oreb, tov, fta, oppPts, oppFGA, oppOReb, oppTov, oppFTA float64) (float64, bool) {
	off, ok := ORtg(pts, fga, oreb, tov, fta)
	if !ok {
		return 0, false
	}
	def, ok := DRtg(oppPts, oppFGA, oppOReb, oppTov, oppFTA)
	if !ok {
		return 0, false
	}
	return off - def, true
}

// MoreyExponent is the basketball-specific Pythagorean exponent.
const MoreyExponent = 13.91

// PythagoreanWinPct computes expected win probability from points scored
// and allowed.
//
//	win% = pts^exp / (pts^exp + opp^exp)
//
// Pass MoreyExponent for the standard basketball correction, 2 for the
// original formula, or 16.5 for the Kubatko variant. ok is false when both
// point totals are zero.
func PythagoreanWinPct(pts, oppPts, exp float64) (float64, bool) {
	p := math.Pow(pts, exp)
	o := math.Pow(oppPts, exp)
	if p+o == 0 {
		return 0, false
	}
	return p / (p + o), true
}

// RollingAvg computes a sliding-window mean over per-game values in
// chronological order. Missing games are marked with NaN in the input;
// output positions before the first full window, and windows containing a
// NaN, are NaN. The result has the same length as values.
func RollingAvg(values []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, fmt.Errorf("window must be >= 1, got %d", window)
	}
	out := make([]float64, len(values))
	sum := 0.0
	missing := 0
	for i, v := range values {
		if math.IsNaN(v) {
			missing++
		} else {
			sum += v
		}
		if i >= window {
			old := values[i-window]
			if math.IsNaN(old) {
				missing--
			} else {
				sum -= old
			}
		}
		if i+1 < window || missing > 0 {
			out[i] = math.NaN()
		} else {
			out[i] = sum / float64(window)
		}
	}
	return out, nil
}
