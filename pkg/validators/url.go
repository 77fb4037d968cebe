package validators

import (
	"net/url"

	"github.com/aretw0/roentgen/pkg/domain"
	"github.com/aretw0/roentgen/pkg/registry"
	"github.com/aretw0/roentgen/pkg/schema"
)

// URL checks that a string parses as a URL with the mandatory parts present.
type URL struct {
	domain.Base
	hostname bool
	protocol bool
}

// NewURL is the registry.Factory for schema.TypeURL.
func NewURL(_ registry.Builder, s schema.Schema) (domain.Validator, error) {
	opts, err := schema.As[schema.URL](s)
	if err != nil {
		return nil, err
	}
	return &URL{hostname: opts.RequireHostname(), protocol: opts.RequireProtocol()}, nil
}

// Run returns the input unchanged. A string url.Parse rejects has neither a
// protocol nor a hostname.
func (u *URL) Run(input any) domain.Result {
	text, ok := asText(input)
	if !ok {
		return u.Fail(domain.MsgStringRequired)
	}

	var scheme, host string
	if parsed, err := url.Parse(text); err == nil {
		scheme, host = parsed.Scheme, parsed.Hostname()
	}

	if u.protocol && scheme == "" {
		return u.Fail(domain.MsgProtocolMissing)
	}
	if u.hostname && host == "" {
		return u.Fail(domain.MsgHostnameMissing)
	}
	return u.Ok(input)
}
