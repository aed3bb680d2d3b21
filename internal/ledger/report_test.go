package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func track(t *testing.T, l *Ledger, clock *ManualClock, name string, d time.Duration) {
	t.Helper()
	_, err := l.Start(name)
	require.NoError(t, err)
	clock.Advance(d)
	_, err = l.Stop(name)
	require.NoError(t, err)
}

func TestReportWithoutDataFails(t *testing.T) {
	l, _ := newTestLedger()

	_, err := l.Report()
	require.ErrorIs(t, err, ErrNoData)
}

func TestReportRunningOnlyHasNoData(t *testing.T) {
	l, _ := newTestLedger()
	_, err := l.Start("A")
	require.NoError(t, err)

	_, err = l.Report()
	require.ErrorIs(t, err, ErrNoData)
}

func TestReportAppendsOther(t *testing.T) {
	l, clock := newTestLedger()
	track(t, l, clock, "A", 3600*time.Second)
	track(t, l, clock, "B", 1800*time.Second)

	report, err := l.Report()
	require.NoError(t, err)

	assert.Equal(t, []Slice{
		{Label: "A", Duration: 3600 * time.Second},
		{Label: "B", Duration: 1800 * time.Second},
		{Label: "Other", Duration: 81000 * time.Second, Synthetic: true},
	}, report.Slices)
	assert.Equal(t, 24*time.Hour, report.Total())
	assert.Equal(t, 5400*time.Second, report.Tracked())
	assert.InDelta(t, 100.0/24, report.Percent(0), 1e-9)
	assert.InDelta(t, 1.0, report.Hours(0), 1e-9)
	assert.Equal(t, "4.2%\n(1.0 ч)", report.Label(0, ""))
}

func TestReportKeepsInsertionOrder(t *testing.T) {
	l, clock := newTestLedger()
	track(t, l, clock, "zeta", time.Minute)
	track(t, l, clock, "alpha", time.Minute)
	track(t, l, clock, "zeta", time.Minute)

	report, err := l.Report()
	require.NoError(t, err)
	require.Len(t, report.Slices, 3)
	assert.Equal(t, "zeta", report.Slices[0].Label)
	assert.Equal(t, 2*time.Minute, report.Slices[0].Duration)
	assert.Equal(t, "alpha", report.Slices[1].Label)
}

func TestReportOverWindowOmitsOther(t *testing.T) {
	l, clock := newTestLedger()
	track(t, l, clock, "Marathon", 90000*time.Second)

	report, err := l.Report()
	require.NoError(t, err)

	require.Len(t, report.Slices, 1)
	assert.False(t, report.Slices[0].Synthetic)
	assert.InDelta(t, 100.0, report.Percent(0), 1e-9)
	assert.InDelta(t, 25.0, report.Hours(0), 1e-9)
}

func TestReportExactWindowOmitsOther(t *testing.T) {
	l, clock := newTestLedger()
	track(t, l, clock, "A", 12*time.Hour)
	track(t, l, clock, "B", 12*time.Hour)

	report, err := l.Report()
	require.NoError(t, err)
	assert.Len(t, report.Slices, 2)
}

func TestReportPercentagesRelativeToDataset(t *testing.T) {
	l, clock := newTestLedger()
	track(t, l, clock, "A", 20*time.Hour)
	track(t, l, clock, "B", 20*time.Hour)

	report, err := l.Report()
	require.NoError(t, err)

	var sum float64
	for i := range report.Slices {
		sum += report.Percent(i)
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
	assert.InDelta(t, 50.0, report.Percent(1), 1e-9)
}

func TestReportCustomWindowAndLabel(t *testing.T) {
	l, clock := newTestLedger(WithWindow(8*time.Hour), WithOtherLabel("Прочее"))
	track(t, l, clock, "A", 2*time.Hour)

	report, err := l.Report()
	require.NoError(t, err)
	require.Len(t, report.Slices, 2)
	assert.Equal(t, "Прочее", report.Slices[1].Label)
	assert.Equal(t, 6*time.Hour, report.Slices[1].Duration)
	assert.Equal(t, 8*time.Hour, report.Window)
}

func TestReportDoesNotMutateLedger(t *testing.T) {
	l, clock := newTestLedger()
	track(t, l, clock, "A", time.Hour)

	first, err := l.Report()
	require.NoError(t, err)
	first.Slices[0].Duration = 0

	total, _ := l.Total("A")
	assert.Equal(t, time.Hour, total)
}

func TestPercentOutOfRange(t *testing.T) {
	report := Report{Slices: []Slice{{Label: "A", Duration: time.Hour}}}

	assert.Zero(t, report.Percent(-1))
	assert.Zero(t, report.Percent(1))
	assert.Zero(t, Report{}.Percent(0))
}

func TestFormatLabel(t *testing.T) {
	assert.Equal(t, "33.3%\n(8.0 h)", FormatLabel(33.333, 8, "h"))
}
