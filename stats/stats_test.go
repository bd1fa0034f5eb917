package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrueShooting(t *testing.T) {
	ts, ok := TrueShooting(28, 18, 6)
	require.True(t, ok)
	assert.InDelta(t, 0.6781, ts, 0.001)

	_, ok = TrueShooting(0, 0, 0)
	assert.False(t, ok, "no attempts should not produce a value")
}

func TestEffectiveFGPct(t *testing.T) {
	efg, ok := EffectiveFGPct(10, 4, 20)
	require.True(t, ok)
	assert.InDelta(t, 0.6, efg, 1e-9)

	// A hot three-point line can legitimately exceed 1.0.
	efg, ok = EffectiveFGPct(4, 4, 5)
	require.True(t, ok)
	assert.InDelta(t, 1.2, efg, 1e-9)

	_, ok = EffectiveFGPct(0, 0, 0)
	assert.False(t, ok)
}

func TestRates(t *testing.T) {
	ftr, ok := FreeThrowRate(8, 20)
	require.True(t, ok)
	assert.InDelta(t, 0.4, ftr, 1e-9)

	tpr, ok := ThreePointRate(9, 20)
	require.True(t, ok)
	assert.InDelta(t, 0.45, tpr, 1e-9)

	_, ok = FreeThrowRate(8, 0)
	assert.False(t, ok)
	_, ok = ThreePointRate(9, 0)
	assert.False(t, ok)
}

func TestTovPct(t *testing.T) {
	pct, ok := TovPct(85, 20, 14)
	require.True(t, ok)
	assert.InDelta(t, 14.0/(85+0.44*20+14), pct, 1e-9)

	_, ok = TovPct(0, 0, 0)
	assert.False(t, ok)
}

func TestComputeFourFactors(t *testing.T) {
	ff := ComputeFourFactors(40, 12, 88, 13, 22, 10, 33)
	require.True(t, ff.EFGPctOK)
	assert.InDelta(t, (40+0.5*12)/88, ff.EFGPct, 1e-9)
	require.True(t, ff.TovPctOK)
	assert.InDelta(t, 13/(88+0.44*22+13), ff.TovPct, 1e-9)
	require.True(t, ff.ORebPctOK)
	assert.InDelta(t, 10.0/43.0, ff.ORebPct, 1e-9)
	require.True(t, ff.FTRateOK)
	assert.InDelta(t, 22.0/88.0, ff.FTRate, 1e-9)

	empty := ComputeFourFactors(0, 0, 0, 0, 0, 0, 0)
	assert.False(t, empty.EFGPctOK)
	assert.False(t, empty.TovPctOK)
	assert.False(t, empty.ORebPctOK)
	assert.False(t, empty.FTRateOK)
}

func TestAstToTov(t *testing.T) {
	ratio, ok := AstToTov(9, 3)
	require.True(t, ok)
	assert.InDelta(t, 3.0, ratio, 1e-9)

	_, ok = AstToTov(9, 0)
	assert.False(t, ok)
}

func TestAssistRatio(t *testing.T) {
	ar, ok := AssistRatio(8, 15, 5, 3)
	require.True(t, ok)
	assert.InDelta(t, 8/(15+0.44*5+8+3)*100, ar, 1e-9)

	_, ok = AssistRatio(0, 0, 0, 0)
	assert.False(t, ok)
}

func TestGameScore(t *testing.T) {
	gs := GameScore(28, 11, 19, 7, 9, 1, 8, 2, 8, 1, 3, 4)
	assert.InDelta(t, 24.5, gs, 0.01)

	// Bad shooting nights go negative.
	gs = GameScore(2, 1, 15, 0, 0, 0, 1, 0, 0, 0, 5, 4)
	assert.Less(t, gs, 0.0)
}

func TestPerMinuteAndPerPossession(t *testing.T) {
	v, ok := Per36(20, 30)
	require.True(t, ok)
	assert.InDelta(t, 24.0, v, 1e-9)

	v, ok = Per100(25, 98)
	require.True(t, ok)
	assert.InDelta(t, 25*100.0/98, v, 1e-9)

	_, ok = Per36(20, 0)
	assert.False(t, ok)
	_, ok = Per100(25, 0)
	assert.False(t, ok)
}

func TestDoubleDoubleTripleDouble(t *testing.T) {
	assert.True(t, IsDoubleDouble(25, 12, 4, 1, 0))
	assert.False(t, IsDoubleDouble(25, 9, 9, 1, 0))
	assert.True(t, IsTripleDouble(25, 12, 10, 1, 0))
	assert.False(t, IsTripleDouble(25, 12, 9, 1, 0))
	// Steals and blocks count toward the categories too.
	assert.True(t, IsTripleDouble(25, 3, 2, 10, 10))
}

func TestUsagePct(t *testing.T) {
	usg, ok := UsagePct(20, 8, 3, 36, 88, 22, 13, 240)
	require.True(t, ok)
	playerPoss := 20 + 0.44*8 + 3.0
	teamPoss := 88 + 0.44*22 + 13.0
	assert.InDelta(t, playerPoss*(240.0/5)/(36*teamPoss), usg, 1e-9)

	_, ok = UsagePct(20, 8, 3, 0, 88, 22, 13, 240)
	assert.False(t, ok, "zero minutes")
	_, ok = UsagePct(20, 8, 3, 36, 0, 0, 0, 240)
	assert.False(t, ok, "zero team possessions")
}

func TestRatings(t *testing.T) {
	off, ok := ORtg(112, 88, 10, 13, 22)
	require.True(t, ok)
	poss := Possessions(88, 10, 13, 22)
	assert.InDelta(t, 112/poss*100, off, 1e-9)

	def, ok := DRtg(105, 90, 9, 15, 20)
	require.True(t, ok)

	net, ok := NetRtg(112, 88, 10, 13, 22, 105, 90, 9, 15, 20)
	require.True(t, ok)
	assert.InDelta(t, off-def, net, 1e-9)

	_, ok = ORtg(0, 0, 0, 0, 0)
	assert.False(t, ok)
}

func TestPossessions(t *testing.T) {
	assert.InDelta(t, 88-10+13+0.44*22, Possessions(88, 10, 13, 22), 1e-9)
	assert.Zero(t, Possessions(0, 0, 0, 0))
}

func TestPythagoreanWinPct(t *testing.T) {
	pct, ok := PythagoreanWinPct(115, 110, MoreyExponent)
	require.True(t, ok)
	assert.Greater(t, pct, 0.5)
	assert.Less(t, pct, 1.0)

	even, ok := PythagoreanWinPct(110, 110, MoreyExponent)
	require.True(t, ok)
	assert.InDelta(t, 0.5, even, 1e-9)

	_, ok = PythagoreanWinPct(0, 0, MoreyExponent)
	assert.False(t, ok)
}

func TestRollingAvg(t *testing.T) {
	nan := math.NaN()

	out, err := RollingAvg([]float64{22, 18, 30, 25, 20}, 3)
	require.NoError(t, err)
	require.Len(t, out, 5)
	assert.True(t, math.IsNaN(out[0]))
	assert.True(t, math.IsNaN(out[1]))
	assert.InDelta(t, (22+18+30)/3.0, out[2], 1e-9)
	assert.InDelta(t, (18+30+25)/3.0, out[3], 1e-9)
	assert.InDelta(t, (30+25+20)/3.0, out[4], 1e-9)

	out, err = RollingAvg([]float64{22, nan, 30, 25, 20}, 3)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(out[2]), "window touching a missing game")
	assert.True(t, math.IsNaN(out[3]))
	assert.InDelta(t, (30+25+20)/3.0, out[4], 1e-9)

	_, err = RollingAvg([]float64{1, 2}, 0)
	require.Error(t, err)

	out, err = RollingAvg(nil, 2)
	require.NoError(t, err)
	assert.Empty(t, out)
}
