package domain

// Placeholder values applied to places arriving without display fields.
const (
	DefaultPlaceName     = "unnamed"
	DefaultPlaceCategory = "other"
)

// Place is a point of interest positioned in the itinerary. Lat/Lng are
// pointers because manually entered places carry no coordinates.
type Place struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`
	Date     string   `json:"date"`
}

// ApplyDefaults fills missing display fields and stamps the place onto the
// given day. It does not assign an ID; identifier generation happens at
// ingestion boundaries so that it is never deferred to render time.
func (p *Place) ApplyDefaults(date string) {
	if p.Name == "" {
		p.Name = DefaultPlaceName
	}
	if p.Category == "" {
		p.Category = DefaultPlaceCategory
	}
	p.Date = date
}
