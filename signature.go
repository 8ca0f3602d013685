package fireeagle

import (
	"net/http"
	"strings"

	"github.com/mrjones/oauth"
)

// signatureCheck sits between the signing consumer and the real HTTP client.
// It refuses to transmit a request whose Authorization header does not carry
// the OAuth parameters a signed request must have, and records how each
// request fared. The token-exchange helpers in the signing library flatten
// error chains into plain strings, so the exchange path classifies failures
// from this record rather than from the returned error.
type signatureCheck struct {
	next oauth.HttpClient
	last wireOutcome
}

// wireOutcome remembers how the most recent request ended: a pre-send
// refusal or network failure in err, or the response status otherwise.
type wireOutcome struct {
	err        error
	status     string
	statusCode int
}

func (s *signatureCheck) Do(req *http.Request) (*http.Response, error) {
	s.last = wireOutcome{}

	if err := verifySigned(req); err != nil {
		s.last.err = err
		return nil, err
	}

	response, err := s.next.Do(req)
	if err != nil {
		s.last.err = err
		return nil, err
	}

	s.last.status = response.Status
	s.last.statusCode = response.StatusCode
	return response, nil
}

var requiredOAuthParams = []string{"oauth_signature", "oauth_nonce", "oauth_timestamp"}

func verifySigned(req *http.Request) error {
	header := req.Header.Get("Authorization")
	if !strings.HasPrefix(header, "OAuth ") {
		return &SignatureError{Reason: "request carries no OAuth authorization header"}
	}

	params := parseOAuthHeader(header)
	for _, name := range requiredOAuthParams {
		if params[name] == "" {
			return &SignatureError{Reason: "signed request is missing " + name}
		}
	}

	return nil
}

func parseOAuthHeader(header string) map[string]string {
	params := map[string]string{}

	for _, field := range strings.Split(strings.TrimPrefix(header, "OAuth "), ",") {
		name, value, ok := strings.Cut(strings.TrimSpace(field), "=")
		if !ok {
			continue
		}

		params[name] = strings.Trim(value, `"`)
	}

	return params
}
