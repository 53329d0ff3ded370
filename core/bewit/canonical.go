package bewit

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Protocol constants identifying the scheme. They are part of the signed
// material and not user-configurable.
const (
	headerVersion  = "1"
	headerAuthType = "bewit"
	header         = "hawk." + headerVersion + "." + headerAuthType
)

// Method is the single HTTP verb a bewit authorizes. The canonical string
// hardcodes it; parametrizing the verb would change the security semantics
// of the scheme.
const Method = http.MethodGet

// canonicalString builds the deterministic signing string for the given URI
// and expiry. Layout, newline-joined:
//
//	hawk.1.bewit
//	<expiry-seconds>
//
//	GET
//	<path>[?<query>]
//	<scheme, lowercased>
//	<host, lowercased, or empty>
//	<port>
//
// Path and query are used verbatim: the url package must produce identical
// percent-encoding at generation and validation time, or MACs never match.
func canonicalString(uri *url.URL, expiry int64) (string, error) {
	if uri == nil {
		return "", ErrNilURI
	}

	port, err := resolvePort(uri)
	if err != nil {
		return "", err
	}

	resource := uri.EscapedPath()
	if uri.RawQuery != "" {
		resource += "?" + uri.RawQuery
	}

	return strings.Join([]string{
		header,
		strconv.FormatInt(expiry, 10),
		"",
		Method,
		resource,
		strings.ToLower(uri.Scheme),
		strings.ToLower(uri.Hostname()),
		port,
	}, "\n"), nil
}

// resolvePort returns the explicit port when the URI carries a valid one,
// otherwise the default for the scheme. A scheme without a default port is a
// configuration error, not a validation verdict.
func resolvePort(uri *url.URL) (string, error) {
	if p := uri.Port(); p != "" {
		return p, nil
	}
	switch strings.ToLower(uri.Scheme) {
	case "http":
		return "80", nil
	case "https":
		return "443", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, uri.Scheme)
	}
}
