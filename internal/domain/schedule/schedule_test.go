package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"12:30", 750, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"9:00", 0, true},   // sem zero à esquerda
		{"09:00 ", 0, true}, // espaço extra
		{"0900", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseClock(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatClockRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "09:05", "12:30", "23:59"} {
		min, err := ParseClock(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatClock(min))
	}
}

func TestWeekdayOf(t *testing.T) {
	cases := []struct {
		date string
		want Weekday
	}{
		{"2026-09-07", Monday},
		{"2026-09-08", Tuesday},
		{"2026-09-12", Saturday},
		{"2026-09-06", Sunday},
		{"2024-02-29", Thursday}, // bissexto
	}

	for _, tc := range cases {
		got, err := WeekdayOf(tc.date)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.date)
	}
}

func TestWeekdayOfInvalidDate(t *testing.T) {
	for _, date := range []string{"", "07/09/2026", "2026-13-01", "2026-09-7", "hoje"} {
		_, err := WeekdayOf(date)
		assert.Error(t, err, date)
	}
}

func TestWeekdayIsValid(t *testing.T) {
	assert.True(t, Monday.IsValid())
	assert.True(t, Saturday.IsValid())
	assert.False(t, Sunday.IsValid())
	assert.False(t, Weekday("segunda").IsValid())
}

// ------------------------------------------------------

func mondaySchedule(day DaySchedule) WorkSchedule {
	return WorkSchedule{Monday: day}
}

func TestResolveDayOpenWithBreak(t *testing.T) {
	ws := mondaySchedule(DaySchedule{
		Active:     true,
		Start:      "09:00",
		End:        "18:00",
		BreakStart: "12:00",
		BreakEnd:   "13:00",
	})

	win, open, err := ResolveDay(ws, "2026-09-07")
	require.NoError(t, err)
	require.True(t, open)

	assert.Equal(t, 540, win.Start)
	assert.Equal(t, 1080, win.End)
	assert.True(t, win.HasBreak)
	assert.Equal(t, 720, win.BreakStart)
	assert.Equal(t, 780, win.BreakEnd)
}

func TestResolveDayOpenWithoutBreak(t *testing.T) {
	ws := mondaySchedule(DaySchedule{Active: true, Start: "08:00", End: "12:00"})

	win, open, err := ResolveDay(ws, "2026-09-07")
	require.NoError(t, err)
	require.True(t, open)
	assert.False(t, win.HasBreak)
}

func TestResolveDayClosed(t *testing.T) {
	cases := []struct {
		name string
		ws   WorkSchedule
		date string
	}{
		{
			"domingo sempre fechado",
			mondaySchedule(DaySchedule{Active: true, Start: "09:00", End: "18:00"}),
			"2026-09-06",
		},
		{
			"dia não configurado",
			WorkSchedule{},
			"2026-09-07",
		},
		{
			"dia inativo",
			mondaySchedule(DaySchedule{Active: false, Start: "09:00", End: "18:00"}),
			"2026-09-07",
		},
		{
			"horário ilegível",
			mondaySchedule(DaySchedule{Active: true, Start: "9h", End: "18:00"}),
			"2026-09-07",
		},
		{
			"início depois do fim",
			mondaySchedule(DaySchedule{Active: true, Start: "18:00", End: "09:00"}),
			"2026-09-07",
		},
		{
			"pausa pela metade",
			mondaySchedule(DaySchedule{
				Active: true, Start: "09:00", End: "18:00", BreakStart: "12:00",
			}),
			"2026-09-07",
		},
		{
			"pausa fora do expediente",
			mondaySchedule(DaySchedule{
				Active: true, Start: "09:00", End: "18:00",
				BreakStart: "08:00", BreakEnd: "09:30",
			}),
			"2026-09-07",
		},
		{
			"pausa invertida",
			mondaySchedule(DaySchedule{
				Active: true, Start: "09:00", End: "18:00",
				BreakStart: "14:00", BreakEnd: "13:00",
			}),
			"2026-09-07",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, open, err := ResolveDay(tc.ws, tc.date)
			require.NoError(t, err)
			assert.False(t, open)
		})
	}
}

func TestResolveDayInvalidDateIsError(t *testing.T) {
	ws := mondaySchedule(DaySchedule{Active: true, Start: "09:00", End: "18:00"})

	_, open, err := ResolveDay(ws, "07/09/2026")
	assert.Error(t, err)
	assert.False(t, open)
}
