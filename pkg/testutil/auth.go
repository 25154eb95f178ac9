package testutil

import (
	"os"
	"regexp"
	"testing"

	"github.com/c9s/mexcgo/pkg/envvar"
)

var secretPattern = regexp.MustCompile(`\b(\w{4})\w+\b`)

func maskSecret(s string) string {
	return secretPattern.ReplaceAllString(s, "$1******")
}

// IntegrationTestConfigured returns the api credentials of the exchange when
// <PREFIX>_API_KEY, <PREFIX>_API_SECRET are set and TEST_<PREFIX>=1.
func IntegrationTestConfigured(t *testing.T, prefix string) (key, secret string, ok bool) {
	var hasKey, hasSecret bool
	key, hasKey = os.LookupEnv(prefix + "_API_KEY")
	secret, hasSecret = os.LookupEnv(prefix + "_API_SECRET")
	ok = hasKey && hasSecret && os.Getenv("TEST_"+prefix) == "1"
	if ok {
		t.Logf(prefix+" api integration test enabled, key = %s, secret = %s", maskSecret(key), maskSecret(secret))
	}

	return key, secret, ok
}

// SkipIfCI skips tests that talk to the real exchange on CI.
func SkipIfCI(t *testing.T) {
	if b, _ := envvar.Bool("CI"); b {
		t.Skip("skip test for CI")
	}
}
