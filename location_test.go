package fireeagle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationParams(t *testing.T) {
	t.Run("empty location renders no params", func(t *testing.T) {
		assert.Empty(t, Location{}.Params())
	})

	t.Run("free-form query", func(t *testing.T) {
		params := Location{Query: "333 W Harbor Dr, San Diego"}.Params()
		assert.Equal(t, map[string]string{"q": "333 W Harbor Dr, San Diego"}, params)
	})

	t.Run("lat and lon travel together", func(t *testing.T) {
		lat, lon := Point(32.7067, -117.1630)

		params := Location{Lat: lat, Lon: lon}.Params()
		assert.Equal(t, "32.7067", params["lat"])
		assert.Equal(t, "-117.163", params["lon"])

		// One half of the pair alone is dropped.
		assert.Empty(t, Location{Lat: lat}.Params())
		assert.Empty(t, Location{Lon: lon}.Params())
	})

	t.Run("postal addresses and place ids", func(t *testing.T) {
		params := Location{
			Address: "500 Third St",
			City:    "San Francisco",
			State:   "CA",
			Postal:  "94107",
			Country: "US",
			PlaceID: "rKZGDCebBZn0tBu2",
		}.Params()

		assert.Equal(t, map[string]string{
			"address":  "500 Third St",
			"city":     "San Francisco",
			"state":    "CA",
			"postal":   "94107",
			"country":  "US",
			"place_id": "rKZGDCebBZn0tBu2",
		}, params)
	})

	t.Run("woeid and cell tower fields", func(t *testing.T) {
		params := Location{
			WOEID:  44418,
			MCC:    234,
			MNC:    30,
			LAC:    234,
			CellID: 5101,
		}.Params()

		assert.Equal(t, map[string]string{
			"woeid":  "44418",
			"mcc":    "234",
			"mnc":    "30",
			"lac":    "234",
			"cellid": "5101",
		}, params)
	})
}
