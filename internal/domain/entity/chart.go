package entity

// Panchang holds the four calendrical elements of the birth moment.
type Panchang struct {
	Day   string `json:"day" yaml:"day"`
	Tithi string `json:"tithi" yaml:"tithi"`
	Yoga  string `json:"yoga" yaml:"yoga"`
	Karan string `json:"karan" yaml:"karan"`
}

// VedicAttributes is the Avakahada bundle. "Unknown" is a valid value.
type VedicAttributes struct {
	Gana   string `json:"gana" yaml:"gana"`
	Yoni   string `json:"yoni" yaml:"yoni"`
	Nadi   string `json:"nadi" yaml:"nadi"`
	Varan  string `json:"varan" yaml:"varan"`
	Vashya string `json:"vashya" yaml:"vashya"`
	Varga  string `json:"varga" yaml:"varga"`
	Yunja  string `json:"yunja" yaml:"yunja"`
	Hansak string `json:"hansak" yaml:"hansak"`
	Paya   string `json:"paya" yaml:"paya"`
}

// Ghatak lists the inauspicious factors for a moon sign.
// The zero value is the empty bundle returned for unknown signs.
type Ghatak struct {
	Month     string `json:"month,omitempty" yaml:"month,omitempty"`
	Tithi     string `json:"tithi,omitempty" yaml:"tithi,omitempty"`
	Day       string `json:"day,omitempty" yaml:"day,omitempty"`
	Nakshatra string `json:"nakshatra,omitempty" yaml:"nakshatra,omitempty"`
}

// IsEmpty reports whether g is the empty bundle.
func (g Ghatak) IsEmpty() bool {
	return g == Ghatak{}
}

// BasicDetails summarizes the chart the way printed kundlis do.
type BasicDetails struct {
	AscendantLord   string `json:"ascendant_lord" yaml:"ascendant_lord"`
	RasiLord        string `json:"rasi_lord" yaml:"rasi_lord"`
	NakshatraCharan string `json:"nakshatra_charan" yaml:"nakshatra_charan"`
	NakshatraLord   string `json:"nakshatra_lord" yaml:"nakshatra_lord"`
	SunSignWest     string `json:"sunsign_west" yaml:"sunsign_west"`
}

// Chart is the aggregated result of one chart computation.
type Chart struct {
	Ascendant     float64         `json:"lagna" yaml:"lagna"`
	AscendantSign int             `json:"lagna_sign" yaml:"lagna_sign"`
	Houses        []House         `json:"houses" yaml:"houses"`
	Bodies        []Body          `json:"planets" yaml:"planets"`
	Ayanamsa      float64         `json:"ayanamsa_value" yaml:"ayanamsa_value"`
	JulianDay     float64         `json:"julian_day" yaml:"julian_day"`
	Dasha         DashaTimeline   `json:"dasha" yaml:"dasha"`
	Panchang      Panchang        `json:"panchang" yaml:"panchang"`
	Attributes    VedicAttributes `json:"attributes" yaml:"attributes"`
	Ghatak        Ghatak          `json:"ghatak_details" yaml:"ghatak_details"`
	BasicDetails  BasicDetails    `json:"basic_details" yaml:"basic_details"`
}

// Body returns the body with the given id.
func (c *Chart) Body(id BodyID) (Body, bool) {
	for _, b := range c.Bodies {
		if b.ID == id {
			return b, true
		}
	}
	return Body{}, false
}
