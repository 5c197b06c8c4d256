package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// ErrInvalidSignature is returned when a proxied request does not carry a
// valid Shopify signature.
var ErrInvalidSignature = errors.New("invalid proxy signature")

// SignProxyQuery computes the signature Shopify attaches to app proxy
// requests: an HMAC-SHA256 over all query parameters except "signature",
// sorted by key, each rendered as key=value1,value2 and concatenated
// without a separator.
func SignProxyQuery(query url.Values, secret string) string {
	keys := make([]string, 0, len(query))
	for k := range query {
		if k == "signature" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for _, k := range keys {
		builder.WriteString(fmt.Sprintf("%s=%s", k, strings.Join(query[k], ",")))
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(builder.String()))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyProxySignature checks the signature of a proxied storefront request.
func VerifyProxySignature(query url.Values, secret string) error {
	if secret == "" {
		return errors.New("secret is required for signature verification")
	}

	signature := query.Get("signature")
	if signature == "" {
		return ErrInvalidSignature
	}

	expected := SignProxyQuery(query, secret)
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return ErrInvalidSignature
	}
	return nil
}
