// Package fireeagle is a client for the FireEagle location service.
//
// The client walks the OAuth 1.0a handshake (request token, user
// authorization, access token) and signs protected requests with the
// resulting token. Response bodies are returned verbatim; interpreting the
// XML or JSON is up to the caller.
//
// A Client is not safe for concurrent use. It performs no locking and
// assumes at most one in-flight request; callers sharing a client across
// goroutines must serialize access themselves.
package fireeagle

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/mrjones/oauth"
	"github.com/sirupsen/logrus"
)

const (
	apiBase         = "https://fireeagle.yahooapis.com/api/0.1"
	requestTokenURL = "https://fireeagle.yahooapis.com/oauth/request_token"
	accessTokenURL  = "https://fireeagle.yahooapis.com/oauth/access_token"
	authorizeURL    = "https://fireeagle.yahoo.net/oauth/authorize"

	// FireEagle has no per-request callback; authorization completes out of band.
	oauthCallback = "oob"
)

// Configuration carries the credentials a Client is built from. ConsumerKey
// and ConsumerSecret are required. Supplying both AccessToken and
// AccessTokenSecret skips the token-exchange handshake entirely and marks
// the client pre-authorized; the pair is whatever a previous session
// persisted after AccessToken succeeded.
type Configuration struct {
	ConsumerKey, ConsumerSecret, AccessToken, AccessTokenSecret string
}

type Client struct {
	consumer *oauth.Consumer
	api      string
	wire     *signatureCheck

	requestToken     *oauth.RequestToken
	accessToken      *oauth.AccessToken
	authorizationURL string
}

// NewClient validates the configuration and returns an unauthorized client,
// or a pre-authorized one when the configuration carries an access token
// pair. No network calls happen here.
func NewClient(c *Configuration) (*Client, error) {
	return newClient(c, oauth.ServiceProvider{
		RequestTokenUrl:   requestTokenURL,
		AuthorizeTokenUrl: authorizeURL,
		AccessTokenUrl:    accessTokenURL,
	}, apiBase)
}

func newClient(c *Configuration, provider oauth.ServiceProvider, api string) (*Client, error) {
	switch {
	case c.ConsumerKey == "":
		return nil, &ConfigurationError{Field: "consumer_key"}
	case c.ConsumerSecret == "":
		return nil, &ConfigurationError{Field: "consumer_secret"}
	}

	client := &Client{
		consumer: oauth.NewConsumer(c.ConsumerKey, c.ConsumerSecret, provider),
		api:      api,
	}

	client.wire = &signatureCheck{next: http.DefaultClient}
	client.consumer.HttpClient = client.wire

	if c.AccessToken != "" && c.AccessTokenSecret != "" {
		client.accessToken = &oauth.AccessToken{
			Token:  c.AccessToken,
			Secret: c.AccessTokenSecret,
		}
	}

	return client, nil
}

// Authorized reports whether the client holds an access token pair. It says
// nothing about whether the service still accepts the pair.
func (c *Client) Authorized() bool {
	return c.accessToken != nil
}

// Token returns the stored access token pair, or nil before authorization.
// The caller is responsible for persisting it across sessions.
func (c *Client) Token() *oauth.AccessToken {
	return c.accessToken
}

// RequestToken fetches an unauthorized request token from the service using
// the consumer credentials alone, stores it, and memoizes the authorization
// URL derived from it. The token is only good for building the authorization
// URL and for the AccessToken exchange.
func (c *Client) RequestToken() (*oauth.RequestToken, error) {
	token, loginURL, err := c.consumer.GetRequestTokenAndUrl(oauthCallback)
	if err != nil {
		return nil, c.exchangeError(err)
	}

	if token.Token == "" || token.Secret == "" {
		return nil, &ProtocolError{Reason: "request-token response is missing oauth_token or oauth_token_secret"}
	}

	log.WithField("token", token.Token).Debug("obtained request token")

	c.requestToken = token
	c.authorizationURL = loginURL
	return token, nil
}

// AuthorizationURL returns the URL the user must visit to grant this client
// access, fetching a request token first if none is held yet. Repeated calls
// reuse the stored token and make no further network calls.
func (c *Client) AuthorizationURL() (string, error) {
	if c.requestToken == nil {
		if _, err := c.RequestToken(); err != nil {
			return "", err
		}
	}

	return c.authorizationURL, nil
}

// AccessToken exchanges the stored request token for an access token. The
// user must have visited the authorization URL and granted access between
// RequestToken and this call; a grant that never happened surfaces as a
// TransportError or ProtocolError from the service. On success the client
// becomes authorized, the request token is consumed, and the returned pair
// should be persisted by the caller for future sessions.
func (c *Client) AccessToken() (*oauth.AccessToken, error) {
	if c.requestToken == nil {
		return nil, &ProtocolError{Reason: "no request token held; call RequestToken or AuthorizationURL first"}
	}

	// FireEagle predates the 1.0a verifier; the parameter travels empty.
	token, err := c.consumer.AuthorizeToken(c.requestToken, "")
	if err != nil {
		return nil, c.exchangeError(err)
	}

	if token.Token == "" || token.Secret == "" {
		return nil, &ProtocolError{Reason: "access-token response is missing oauth_token or oauth_token_secret"}
	}

	log.Debug("exchanged request token for access token")

	c.accessToken = token
	c.requestToken = nil
	c.authorizationURL = ""
	return token, nil
}

// Call signs and executes a protected request against endpoint and returns
// the raw response body. Params ride the query string for GET and the
// urlencoded body for POST. The client must be authorized; an unauthorized
// call fails before any network I/O.
func (c *Client) Call(method, endpoint string, params map[string]string) (string, error) {
	if !c.Authorized() {
		return "", &UnauthorizedError{}
	}

	log.WithFields(logrus.Fields{
		"method":   method,
		"endpoint": endpoint,
	}).Debug("signed request")

	var response *http.Response
	var err error

	switch method {
	case http.MethodGet:
		response, err = c.consumer.Get(endpoint, params, c.accessToken)
	case http.MethodPost:
		response, err = c.consumer.Post(endpoint, params, c.accessToken)
	default:
		return "", fmt.Errorf("fireeagle: unsupported method %q", method)
	}

	if err != nil {
		return "", wireError(err)
	}

	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return "", &TransportError{Err: err}
	}

	return string(body), nil
}

// wireError maps a failure from the signing library onto the package error
// types. Signature self-check failures pass through, non-2xx responses and
// network failures become TransportErrors, anything else is returned as-is.
func wireError(err error) error {
	var sig *SignatureError
	if errors.As(err, &sig) {
		return sig
	}

	var status oauth.HTTPExecuteError
	if errors.As(err, &status) {
		return &TransportError{Status: status.Status, StatusCode: status.StatusCode}
	}

	var network *url.Error
	if errors.As(err, &network) {
		return &TransportError{Err: network}
	}

	return err
}

// exchangeError is wireError for the token-exchange calls. The signing
// library flattens error chains on that path, so errors.As cannot see the
// underlying failure; classification reads the outcome the wire client
// recorded for the request instead. A request that went out and came back
// 2xx but still failed means the body was missing what the handshake needs.
func (c *Client) exchangeError(err error) error {
	last := c.wire.last

	var sig *SignatureError
	if errors.As(last.err, &sig) {
		return sig
	}

	if last.err != nil {
		return &TransportError{Err: last.err}
	}

	if last.statusCode != 0 && (last.statusCode < http.StatusOK || last.statusCode >= http.StatusMultipleChoices) {
		return &TransportError{Status: last.status, StatusCode: last.statusCode}
	}

	return &ProtocolError{Reason: err.Error()}
}
