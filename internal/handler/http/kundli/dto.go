// Package kundli provides the HTTP handlers of the chart API.
package kundli

import (
	"time"

	"jyotish/internal/domain/entity"
	"jyotish/internal/ephemeris"
	kundliUC "jyotish/internal/usecase/kundli"
)

// GenerateRequest is the body of POST /api/v1/kundli/generate.
// Coordinates and timezone are pointers so that a missing value is not
// mistaken for zero.
type GenerateRequest struct {
	Dob      string   `json:"dob" example:"1989-02-24"`
	Tob      string   `json:"tob" example:"16:30:00"`
	Lat      *float64 `json:"lat" example:"28.5355"`
	Lon      *float64 `json:"lon" example:"77.391"`
	Timezone *float64 `json:"timezone" example:"5.5"`
	Ayanamsa *int     `json:"ayanamsa,omitempty" example:"1"`
}

// toRequest applies the default ayanamsa and reports missing fields.
func (g GenerateRequest) toRequest(defaultAyanamsa ephemeris.Ayanamsa) (kundliUC.Request, error) {
	switch {
	case g.Dob == "":
		return kundliUC.Request{}, &entity.ValidationError{Field: "dob", Message: "is required"}
	case g.Tob == "":
		return kundliUC.Request{}, &entity.ValidationError{Field: "tob", Message: "is required"}
	case g.Lat == nil:
		return kundliUC.Request{}, &entity.ValidationError{Field: "lat", Message: "is required"}
	case g.Lon == nil:
		return kundliUC.Request{}, &entity.ValidationError{Field: "lon", Message: "is required"}
	case g.Timezone == nil:
		return kundliUC.Request{}, &entity.ValidationError{Field: "timezone", Message: "is required"}
	}
	ayanamsa := defaultAyanamsa
	if g.Ayanamsa != nil {
		ayanamsa = ephemeris.Ayanamsa(*g.Ayanamsa)
	}
	return kundliUC.Request{
		Dob:      g.Dob,
		Tob:      g.Tob,
		Lat:      *g.Lat,
		Lon:      *g.Lon,
		Timezone: *g.Timezone,
		Ayanamsa: ayanamsa,
	}, nil
}

// BasicDetails flattens the summary, panchang, and avakahada attributes
// into one object.
type BasicDetails struct {
	AscendantLord   string `json:"ascendant_lord"`
	RasiLord        string `json:"rasi_lord"`
	NakshatraCharan string `json:"nakshatra_charan"`
	NakshatraLord   string `json:"nakshatra_lord"`
	Yoga            string `json:"yoga"`
	Karan           string `json:"karan"`
	Tithi           string `json:"tithi"`
	Day             string `json:"day"`
	Gana            string `json:"gana"`
	Yoni            string `json:"yoni"`
	Nadi            string `json:"nadi"`
	Varan           string `json:"varan"`
	Vashya          string `json:"vashya"`
	Varga           string `json:"varga"`
	Yunja           string `json:"yunja"`
	Hansak          string `json:"hansak"`
	Paya            string `json:"paya"`
	SunSignWest     string `json:"sunsign_west"`
}

// ChartResponse is the body returned for a generated chart.
type ChartResponse struct {
	Lagna         float64              `json:"lagna"`
	LagnaSign     int                  `json:"lagna_sign"`
	Planets       []entity.Body        `json:"planets"`
	Houses        []entity.House       `json:"houses"`
	AyanamsaValue float64              `json:"ayanamsa_value"`
	JulianDay     float64              `json:"julian_day"`
	Dasha         entity.DashaTimeline `json:"dasha"`
	Panchang      entity.Panchang      `json:"panchang"`
	BasicDetails  BasicDetails         `json:"basic_details"`
	GhatakDetails *entity.Ghatak       `json:"ghatak_details,omitempty"`
}

// NewChartResponse maps a chart onto the response shape.
func NewChartResponse(c *entity.Chart) ChartResponse {
	out := ChartResponse{
		Lagna:         c.Ascendant,
		LagnaSign:     c.AscendantSign,
		Planets:       c.Bodies,
		Houses:        c.Houses,
		AyanamsaValue: c.Ayanamsa,
		JulianDay:     c.JulianDay,
		Dasha:         c.Dasha,
		Panchang:      c.Panchang,
		BasicDetails: BasicDetails{
			AscendantLord:   c.BasicDetails.AscendantLord,
			RasiLord:        c.BasicDetails.RasiLord,
			NakshatraCharan: c.BasicDetails.NakshatraCharan,
			NakshatraLord:   c.BasicDetails.NakshatraLord,
			Yoga:            c.Panchang.Yoga,
			Karan:           c.Panchang.Karan,
			Tithi:           c.Panchang.Tithi,
			Day:             c.Panchang.Day,
			Gana:            c.Attributes.Gana,
			Yoni:            c.Attributes.Yoni,
			Nadi:            c.Attributes.Nadi,
			Varan:           c.Attributes.Varan,
			Vashya:          c.Attributes.Vashya,
			Varga:           c.Attributes.Varga,
			Yunja:           c.Attributes.Yunja,
			Hansak:          c.Attributes.Hansak,
			Paya:            c.Attributes.Paya,
			SunSignWest:     c.BasicDetails.SunSignWest,
		},
	}
	if !c.Ghatak.IsEmpty() {
		g := c.Ghatak
		out.GhatakDetails = &g
	}
	return out
}

// PeriodDTO is one running dasha period without its children.
type PeriodDTO struct {
	Planet        string    `json:"planet"`
	Level         int       `json:"level"`
	Start         time.Time `json:"start_date"`
	End           time.Time `json:"end_date"`
	DurationYears float64   `json:"duration_years"`
}

// CurrentDashaResponse is the body of GET /api/v1/kundli/dasha/current.
type CurrentDashaResponse struct {
	At      time.Time   `json:"at"`
	Periods []PeriodDTO `json:"periods"`
}
