package schedule_test

import (
	"errors"
	"testing"
	"time"

	"controlling_heating/internal/models"
	"controlling_heating/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var monday = models.Days{Monday: true}

// 2026-10-12 is a Monday.
func at(hour, minute int) time.Time {
	return time.Date(2026, time.October, 12, hour, minute, 0, 0, time.UTC)
}

func period(id, systemID int, on, off string, target float64, days models.Days) models.HeatingPeriod {
	return models.HeatingPeriod{ID: id, HouseholdID: 1, SystemID: systemID, TimeOn: on, TimeOff: off, Target: target, Days: days}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    schedule.Clock
		wantErr bool
	}{
		{in: "06:30", want: 390},
		{in: "6:30", want: 390},
		{in: "00:00", want: 0},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "12:5", wantErr: true},
		{in: "noon", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := schedule.ParseClock(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "06:05", schedule.Clock(365).String())
}

func TestResolve(t *testing.T) {
	require.Equal(t, time.Monday, at(0, 0).Weekday())

	morning := period(1, 7, "06:00", "08:00", 20, monday)
	evening := period(2, 7, "18:00", "22:00", 21, monday)
	otherSystem := period(3, 8, "06:00", "08:00", 18, monday)
	shared := models.HeatingPeriod{ID: 4, HouseholdID: 1, AllSystems: true, TimeOn: "12:00", TimeOff: "13:00", Target: 19, Days: monday}
	tuesday := period(5, 7, "10:00", "11:00", 22, models.Days{Tuesday: true})

	all := []models.HeatingPeriod{evening, morning, otherSystem, shared, tuesday}

	tests := []struct {
		name   string
		now    time.Time
		wantID int
	}{
		{name: "inside morning", now: at(6, 30), wantID: 1},
		{name: "on boundary start", now: at(6, 0), wantID: 1},
		{name: "on boundary end is exclusive", now: at(8, 0)},
		{name: "shared period", now: at(12, 15), wantID: 4},
		{name: "wrong weekday", now: at(10, 30)},
		{name: "nothing active", now: at(15, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := schedule.Resolve(all, 7, tt.now)
			if tt.wantID == 0 {
				assert.False(t, ok)
				assert.Nil(t, got)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestResolve_CorruptOverlapReturnsEarliestStart(t *testing.T) {
	late := period(10, 7, "06:30", "09:00", 22, monday)
	early := period(11, 7, "06:00", "08:00", 20, monday)
	broken := period(12, 7, "bogus", "09:00", 25, monday)

	got, ok := schedule.Resolve([]models.HeatingPeriod{late, broken, early}, 7, at(7, 0))
	require.True(t, ok)
	assert.Equal(t, 11, got.ID)
}

func TestResolve_AtMostOneForValidSchedule(t *testing.T) {
	var periods []models.HeatingPeriod
	for i, w := range [][2]string{{"05:00", "06:00"}, {"06:00", "07:30"}, {"07:30", "09:00"}, {"17:00", "23:00"}} {
		p := period(i+1, 7, w[0], w[1], 20, models.Days{Monday: true, Wednesday: true})
		require.NoError(t, schedule.Validate(p, periods, schedule.DefaultLimits))
		periods = append(periods, p)
	}

	for minute := 0; minute < 24*60; minute++ {
		now := at(0, 0).Add(time.Duration(minute) * time.Minute)
		var hits int
		for _, p := range periods {
			if _, ok := schedule.Resolve([]models.HeatingPeriod{p}, 7, now); ok {
				hits++
			}
		}
		require.LessOrEqual(t, hits, 1, "at %s", now.Format("15:04"))
	}
}

func TestValidate_Overlap(t *testing.T) {
	existing := []models.HeatingPeriod{period(1, 7, "09:30", "11:00", 20, monday)}

	tests := []struct {
		name    string
		p       models.HeatingPeriod
		wantErr error
	}{
		{name: "overlapping same system", p: period(0, 7, "09:00", "10:00", 20, monday), wantErr: schedule.ErrOverlap},
		{name: "contained", p: period(0, 7, "10:00", "10:30", 20, monday), wantErr: schedule.ErrOverlap},
		{name: "touching is fine", p: period(0, 7, "11:00", "12:00", 20, monday)},
		{name: "different system", p: period(0, 8, "09:00", "10:00", 20, monday)},
		{name: "different day", p: period(0, 7, "09:00", "10:00", 20, models.Days{Friday: true})},
		{
			name:    "all systems collides",
			p:       models.HeatingPeriod{AllSystems: true, TimeOn: "10:00", TimeOff: "12:00", Target: 20, Days: monday},
			wantErr: schedule.ErrOverlap,
		},
		{name: "update of itself", p: period(1, 7, "09:00", "11:30", 21, monday)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schedule.Validate(tt.p, existing, schedule.DefaultLimits)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			var oe *schedule.OverlapError
			require.True(t, errors.As(err, &oe))
			assert.Equal(t, 1, oe.Conflict.ID)
		})
	}
}

func TestValidate_SecondOfOverlappingPairRejected(t *testing.T) {
	a := period(0, 7, "09:00", "10:00", 20, models.Days{Monday: true, Tuesday: true})
	b := period(0, 7, "09:59", "10:30", 20, models.Days{Tuesday: true})

	require.NoError(t, schedule.Validate(a, nil, schedule.DefaultLimits))
	a.ID = 1
	assert.ErrorIs(t, schedule.Validate(b, []models.HeatingPeriod{a}, schedule.DefaultLimits), schedule.ErrOverlap)

	require.NoError(t, schedule.Validate(b, nil, schedule.DefaultLimits))
	b.ID = 2
	a.ID = 0
	assert.ErrorIs(t, schedule.Validate(a, []models.HeatingPeriod{b}, schedule.DefaultLimits), schedule.ErrOverlap)
}

func TestCheck_InvalidPeriods(t *testing.T) {
	tests := []struct {
		name  string
		p     models.HeatingPeriod
		field string
	}{
		{name: "bad on", p: period(0, 7, "9", "10:00", 20, monday), field: "time_on"},
		{name: "bad off", p: period(0, 7, "09:00", "25:00", 20, monday), field: "time_off"},
		{name: "reversed", p: period(0, 7, "10:00", "09:00", 20, monday), field: "time_on"},
		{name: "empty window", p: period(0, 7, "10:00", "10:00", 20, monday), field: "time_on"},
		{name: "too cold", p: period(0, 7, "09:00", "10:00", 4, monday), field: "target"},
		{name: "too hot", p: period(0, 7, "09:00", "10:00", 31, monday), field: "target"},
		{name: "no days", p: period(0, 7, "09:00", "10:00", 20, models.Days{}), field: "days"},
		{name: "no system", p: period(0, 0, "09:00", "10:00", 20, monday), field: "heating_system_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schedule.Check(tt.p, schedule.DefaultLimits)
			require.ErrorIs(t, err, schedule.ErrInvalidPeriod)
			var ve *schedule.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestNormalizeClock(t *testing.T) {
	assert.Equal(t, "06:30", schedule.NormalizeClock("6:30"))
	assert.Equal(t, "18:00", schedule.NormalizeClock("18:00"))
	assert.Equal(t, "9am", schedule.NormalizeClock("9am"))
}
