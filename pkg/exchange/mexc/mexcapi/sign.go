package mexcapi

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
)

const signatureParam = "signature"

// Sign returns the hex encoded HMAC-SHA256 of payload keyed by secret.
func Sign(payload string, secret string) string {
	var sig = hmac.New(sha256.New, []byte(secret))
	_, err := sig.Write([]byte(payload))
	if err != nil {
		return ""
	}

	return hex.EncodeToString(sig.Sum(nil))
}

// SignQuery encodes params into the canonical query string and appends the
// signature of that exact string as the last field.
//
// The returned string must be sent as-is, re-encoding it would reorder the
// signature field and invalidate it.
func SignQuery(params url.Values, secret string) string {
	query := params.Encode()
	signature := Sign(query, secret)
	if len(query) == 0 {
		return signatureParam + "=" + signature
	}

	return query + "&" + signatureParam + "=" + signature
}
