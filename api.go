package fireeagle

import "net/http"

// Format selects the response body encoding via the endpoint path suffix.
// The body is passed through either way; the client never parses it.
type Format string

const (
	// XML is the service default (no suffix).
	XML  Format = ""
	JSON Format = ".json"
)

func (c *Client) endpoint(name string, format Format) string {
	return c.api + "/" + name + string(format)
}

// User returns the authorized user's current location hierarchy.
func (c *Client) User(format Format) (string, error) {
	return c.Call(http.MethodGet, c.endpoint("user", format), nil)
}

// Update sets the authorized user's location.
func (c *Client) Update(location Location, format Format) (string, error) {
	return c.Call(http.MethodPost, c.endpoint("update", format), location.Params())
}

// Lookup resolves a location into the service's place candidates without
// updating anything, typically to let the user pick before an Update.
func (c *Client) Lookup(location Location, format Format) (string, error) {
	return c.Call(http.MethodGet, c.endpoint("lookup", format), location.Params())
}

// Recent lists users of this application who updated their location
// recently. Recognized params: time, per_page, page.
func (c *Client) Recent(params map[string]string, format Format) (string, error) {
	return c.Call(http.MethodGet, c.endpoint("recent", format), params)
}

// Within lists users of this application currently inside the given place.
func (c *Client) Within(location Location, format Format) (string, error) {
	return c.Call(http.MethodGet, c.endpoint("within", format), location.Params())
}
