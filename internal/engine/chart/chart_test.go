package chart_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jyotish/internal/astrotime"
	"jyotish/internal/domain/entity"
	"jyotish/internal/engine/chart"
	"jyotish/internal/ephemeris"
	"jyotish/internal/ephemeris/ephemeristest"
	"jyotish/internal/infra/ephemeris/analytic"
)

var ist = astrotime.Zone(5.5)

func fixture() *ephemeristest.Fixed {
	f := ephemeristest.New(map[entity.BodyID]float64{
		entity.Sun:     311.8,
		entity.Moon:    95,
		entity.Mars:    20,
		entity.Mercury: 300,
		entity.Jupiter: 30.5,
		entity.Venus:   310,
		entity.Saturn:  250,
		entity.Rahu:    310.2,
	}, 114)
	rahu := f.Positions[entity.Rahu]
	rahu.Speed = -0.053
	f.Positions[entity.Rahu] = rahu
	f.Ayanamsa = 23.7
	return f
}

func input() chart.Input {
	birth := time.Date(1989, 2, 24, 16, 30, 0, 0, ist)
	return chart.Input{
		JulianDay: astrotime.JulianDay(birth),
		Latitude:  28.5355,
		Longitude: 77.3910,
		Ayanamsa:  ephemeris.Lahiri,
		Birth:     birth,
	}
}

func TestCalculator_Compute(t *testing.T) {
	p := fixture()
	c, err := chart.Calculator{Provider: p}.Compute(input())
	require.NoError(t, err)

	assert.True(t, p.ModeSet)
	assert.Equal(t, ephemeris.Lahiri, p.Mode)

	assert.InDelta(t, 114.0, c.Ascendant, 1e-9)
	assert.Equal(t, 4, c.AscendantSign)
	require.Len(t, c.Houses, 12)
	assert.Equal(t, 4, c.Houses[0].Sign)
	assert.InDelta(t, 23.7, c.Ayanamsa, 1e-9)

	require.Len(t, c.Bodies, 9)
	wantOrder := []string{"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn", "Rahu", "Ketu"}
	for i, b := range c.Bodies {
		assert.Equal(t, wantOrder[i], b.Name)
		assert.GreaterOrEqual(t, b.House, 1)
		assert.LessOrEqual(t, b.House, 12)
	}

	sun, ok := c.Body(entity.Sun)
	require.True(t, ok)
	assert.Equal(t, 11, sun.Sign)
	assert.Equal(t, 8, sun.House)

	ketu, ok := c.Body(entity.Ketu)
	require.True(t, ok)
	assert.InDelta(t, 130.2, ketu.Longitude, 1e-9)
	assert.True(t, ketu.Retrograde)
	assert.Equal(t, 2, ketu.House)

	want := entity.BasicDetails{
		AscendantLord:   "Moon",
		RasiLord:        "Moon",
		NakshatraCharan: "Pushya 1",
		NakshatraLord:   "Saturn",
		SunSignWest:     "Pisces",
	}
	if diff := cmp.Diff(want, c.BasicDetails); diff != "" {
		t.Errorf("BasicDetails mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "Friday", c.Panchang.Day)
	assert.Equal(t, "Deva", c.Attributes.Gana)
	assert.Equal(t, "Pushya", c.Ghatak.Nakshatra)

	require.NotEmpty(t, c.Dasha.Mahadashas)
	assert.Equal(t, "Saturn", c.Dasha.Mahadashas[0].Planet)
	assert.True(t, c.Dasha.Start().Equal(input().Birth))
}

func TestCalculator_Compute_bodyError(t *testing.T) {
	p := fixture()
	boom := errors.New("ephemeris file missing")
	p.BodyErr = map[entity.BodyID]error{entity.Mars: boom}

	c, err := chart.Calculator{Provider: p}.Compute(input())
	require.Error(t, err)
	assert.Nil(t, c)

	var ee *entity.EphemerisError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, "body_position", ee.Op)
	assert.Equal(t, "Mars", ee.Body)
	assert.True(t, errors.Is(err, entity.ErrEphemeris))
	assert.True(t, errors.Is(err, boom))
}

func TestCalculator_Compute_modeError(t *testing.T) {
	p := fixture()
	p.ModeErr = errors.New("bad mode")

	c, err := chart.Calculator{Provider: p}.Compute(input())
	assert.Nil(t, c)
	assert.ErrorIs(t, err, entity.ErrEphemeris)
	assert.Empty(t, p.BodyCalls)
}

func TestCalculator_Compute_unsupportedHouseSystem(t *testing.T) {
	c, err := chart.Calculator{Provider: fixture(), HouseSystem: "P"}.Compute(input())
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ephemeris.ErrUnsupportedHouseSystem)

	var ee *entity.EphemerisError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "house_cusps", ee.Op)
}

// providerOnly hides the AyanamsaReporter capability of the wrapped provider.
type providerOnly struct{ ephemeris.Provider }

func TestCalculator_Compute_withoutAyanamsaReporter(t *testing.T) {
	c, err := chart.Calculator{Provider: providerOnly{fixture()}}.Compute(input())
	require.NoError(t, err)
	assert.Zero(t, c.Ayanamsa)
	assert.Empty(t, c.BasicDetails.SunSignWest)
}

func TestCalculator_Compute_idempotent(t *testing.T) {
	calc := chart.Calculator{Provider: fixture()}
	a, err := calc.Compute(input())
	require.NoError(t, err)
	b, err := calc.Compute(input())
	require.NoError(t, err)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Compute not idempotent (-first +second):\n%s", diff)
	}
}

func TestCalculator_Compute_analyticProvider(t *testing.T) {
	c, err := chart.Calculator{Provider: analytic.New()}.Compute(input())
	require.NoError(t, err)

	assert.Equal(t, 4, c.AscendantSign, "1989-02-24 16:30 IST in Noida rises in Cancer")
	assert.Equal(t, "Moon", c.BasicDetails.AscendantLord)
	assert.Equal(t, 11, c.Bodies[0].Sign, "sidereal sun in Aquarius")
	assert.Equal(t, "Friday", c.Panchang.Day)
	assert.Len(t, c.Dasha.Mahadashas, 10)
}
