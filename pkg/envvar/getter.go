package envvar

import (
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// lookup reads the env var n and converts it with parse. The second return
// value is false when the variable is unset or can not be parsed, in which case
// the first default value (or the zero value) is returned.
func lookup[T any](n string, typeName string, parse func(string) (T, error), defaults []T) (T, bool) {
	var defaultValue T
	if len(defaults) > 0 {
		defaultValue = defaults[0]
	}

	str, ok := os.LookupEnv(n)
	if !ok {
		return defaultValue, false
	}

	v, err := parse(str)
	if err != nil {
		logrus.WithError(err).Errorf("can not parse env var %s=%q as %s, incorrect format", n, str, typeName)
		return defaultValue, false
	}

	return v, true
}

func String(n string, args ...string) (string, bool) {
	return lookup(n, "string", func(s string) (string, error) { return s, nil }, args)
}

func Duration(n string, args ...time.Duration) (time.Duration, bool) {
	return lookup(n, "time.Duration", time.ParseDuration, args)
}

// Int64 returns the int64 value of the environment variable named n.
func Int64(n string, args ...int64) (int64, bool) {
	return lookup(n, "int64", func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	}, args)
}

func Bool(n string, args ...bool) (bool, bool) {
	return lookup(n, "bool", strconv.ParseBool, args)
}
