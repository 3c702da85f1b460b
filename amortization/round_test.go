package amortization

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 8884.88, Round2(8884.878867))
	assert.Equal(t, 0.01, Round2(0.005))
	assert.Equal(t, -0.01, Round2(-0.005))
	assert.Equal(t, 12.0, Round2(12))
	assert.True(t, math.IsNaN(Round2(math.NaN())))
	assert.True(t, math.IsInf(Round2(math.Inf(1)), 1))
}

func TestRound_Schedule(t *testing.T) {
	raw := GenerateSchedule(baselineInput())
	rounded := Round(raw)

	assert.Len(t, rounded.Rows, len(raw.Rows))
	assert.Equal(t, 8884.88, rounded.MonthlyEMI)
	assert.Equal(t, 100000.0, rounded.TotalPrincipalPaid)
	assert.Equal(t, Round2(raw.TotalInterest), rounded.TotalInterest)
	assert.Equal(t, 1000.0, rounded.Rows[0].InterestComponent)
	assert.Equal(t, 0.0, rounded.Rows[11].OutstandingBalance)

	// The raw schedule is left as it was.
	assert.NotEqual(t, raw.Rows[0].EMI, rounded.Rows[0].EMI)
}
