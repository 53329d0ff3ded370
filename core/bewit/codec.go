package bewit

import (
	"encoding/base64"
	"strconv"
	"strings"
)

// separator is the reserved byte between token fields. It is chosen to be
// unlikely in key ids and is deliberately not validated at encode or decode
// time: a key id containing it misparses on decode rather than being
// rejected up front (documented behavior, kept as-is).
const separator = `\`

// token is the transient in-flight form of a bewit between encode and
// decode. It has no lifecycle beyond a single call.
type token struct {
	keyID  string
	expiry int64
	mac    []byte
}

// encodeToken serializes the token into its public string form:
// base64url-no-padding of `keyID\expiry\base64url-no-padding(mac)\`.
// The trailing separator makes the inner string split into exactly four
// fields on decode, the fourth empty.
func encodeToken(t token) string {
	inner := strings.Join([]string{
		t.keyID,
		strconv.FormatInt(t.expiry, 10),
		base64.RawURLEncoding.EncodeToString(t.mac),
		"",
	}, separator)
	return base64.RawURLEncoding.EncodeToString([]byte(inner))
}

// decodeToken parses a public token string. The second return value is false
// for any malformed input: failed base64url decoding at either layer, a
// field count other than four, or a non-integer expiry. The key id is
// preserved byte-for-byte.
func decodeToken(s string) (token, bool) {
	inner, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return token{}, false
	}

	fields := strings.Split(string(inner), separator)
	if len(fields) != 4 {
		return token{}, false
	}

	expiry, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return token{}, false
	}

	mac, err := base64.RawURLEncoding.DecodeString(fields[2])
	if err != nil {
		return token{}, false
	}

	return token{keyID: fields[0], expiry: expiry, mac: mac}, true
}
