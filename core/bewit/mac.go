package bewit

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"hash"
)

// computeMAC returns the raw HMAC digest of the canonical string's UTF-8
// bytes under the credential's secret key. Pure: same inputs, same bytes.
func computeMAC(cred Credential, canonical string) ([]byte, error) {
	var newHash func() hash.Hash
	switch cred.Algorithm {
	case SHA1:
		newHash = sha1.New
	case SHA256:
		newHash = sha256.New
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, cred.Algorithm)
	}

	mac := hmac.New(newHash, cred.Key)
	mac.Write([]byte(canonical))
	return mac.Sum(nil), nil
}
