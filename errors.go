package fireeagle

// ConfigurationError reports a required credential missing at construction.
type ConfigurationError struct {
	Field string
}

func (e *ConfigurationError) Error() string {
	return "fireeagle: missing required configuration field " + e.Field
}

// UnauthorizedError reports a protected call attempted before the client
// holds an access token.
type UnauthorizedError struct{}

func (e *UnauthorizedError) Error() string {
	return "fireeagle: no access token; complete the authorization handshake first"
}

// SignatureError reports an outbound request that failed the local signature
// self-check before transmission. It indicates a bug in the signing
// parameters, not a remote failure.
type SignatureError struct {
	Reason string
}

func (e *SignatureError) Error() string {
	return "fireeagle: signature self-check failed: " + e.Reason
}

// TransportError reports a non-2xx response, with its status line, or an
// underlying network failure.
type TransportError struct {
	Status     string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Status != "" {
		return "fireeagle: request failed: " + e.Status
	}

	return "fireeagle: request failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError reports a 2xx response missing the fields the handshake
// needs, or a handshake step attempted out of order.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return "fireeagle: " + e.Reason
}
