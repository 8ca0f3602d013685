package fireeagle

import "strconv"

// Location describes a place in any of the forms the FireEagle API accepts.
// Fill whichever fields you have; zero values are omitted from the request.
// The service disambiguates however it sees fit, best-guess first.
type Location struct {
	// Free-form text, e.g. "333 W Harbor Dr, San Diego" or "Soho, London".
	Query string

	// Decimal degrees. Only sent when both are set.
	Lat, Lon *float64

	Address string
	Postal  string
	City    string
	State   string
	Country string

	// Yahoo Where-On-Earth id.
	WOEID int

	PlaceID string

	// GSM cell tower.
	MCC, MNC, LAC, CellID int
}

// Params renders the location as request parameters, omitting unset fields.
func (l Location) Params() map[string]string {
	params := map[string]string{}

	if l.Query != "" {
		params["q"] = l.Query
	}

	if l.Lat != nil && l.Lon != nil {
		params["lat"] = strconv.FormatFloat(*l.Lat, 'f', -1, 64)
		params["lon"] = strconv.FormatFloat(*l.Lon, 'f', -1, 64)
	}

	for name, value := range map[string]string{
		"address":  l.Address,
		"postal":   l.Postal,
		"city":     l.City,
		"state":    l.State,
		"country":  l.Country,
		"place_id": l.PlaceID,
	} {
		if value != "" {
			params[name] = value
		}
	}

	for name, value := range map[string]int{
		"woeid":  l.WOEID,
		"mcc":    l.MCC,
		"mnc":    l.MNC,
		"lac":    l.LAC,
		"cellid": l.CellID,
	} {
		if value != 0 {
			params[name] = strconv.Itoa(value)
		}
	}

	return params
}

// Point is a convenience for building a Lat/Lon pair in place.
func Point(lat, lon float64) (*float64, *float64) {
	return &lat, &lon
}
