// Package config registers every setting with its default and loads mediax.toml through viper.
package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mediax-cli/mediax/icon"
	"github.com/mediax-cli/mediax/key"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// constraint restricts the values a key accepts beyond its type.
type constraint struct {
	hint  string
	check func(v any) error
}

var constraints = map[string]constraint{
	key.LogsLevel: {
		hint: "one of " + strings.Join(lo.Map(logrus.AllLevels, func(l logrus.Level, _ int) string { return l.String() }), ", "),
		check: func(v any) error {
			_, err := logrus.ParseLevel(v.(string))
			return err
		},
	},
	key.NetworkUserAgent: {
		hint: "non-empty",
		check: func(v any) error {
			if strings.TrimSpace(v.(string)) == "" {
				return fmt.Errorf("user agent must not be empty")
			}
			return nil
		},
	},
	key.NetworkTimeout: {
		hint:  "seconds, greater than 0",
		check: atLeast(1),
	},
	key.NetworkRateLimit: {
		hint:  "requests per second, 0 or more",
		check: atLeast(0),
	},
	key.PeerTubeInstance: {
		hint:  "absolute http(s) url",
		check: instanceURL,
	},
	key.IconsVariant: {
		hint: "one of " + strings.Join(icon.AvailableVariants(), ", "),
		check: func(v any) error {
			if !lo.Contains(icon.AvailableVariants(), v.(string)) {
				return fmt.Errorf("unknown icons variant %q", v)
			}
			return nil
		},
	},
}

func atLeast(min int) func(v any) error {
	return func(v any) error {
		if n := v.(int); n < min {
			return fmt.Errorf("%d is less than %d", n, min)
		}
		return nil
	}
}

func instanceURL(v any) error {
	u, err := url.Parse(v.(string))
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("instance url %q must start with http:// or https://", v)
	}
	if u.Host == "" {
		return fmt.Errorf("instance url %q has no host", v)
	}
	return nil
}

// Constraint describes the values the field accepts beyond its type, or "" when any is fine.
func (f *Field) Constraint() string {
	return constraints[f.Key].hint
}

// Parse converts the raw command line values to the type of the field and checks its constraint.
func (f *Field) Parse(raw []string) (any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("no value for %s", f.Key)
	}

	var v any
	switch f.Value.(type) {
	case string:
		v = raw[0]
	case int:
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer value for %s: %s", f.Key, raw[0])
		}
		v = n
	case bool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value for %s: %s", f.Key, raw[0])
		}
		v = b
	case []string:
		v = raw
	default:
		return nil, fmt.Errorf("unsupported type %T for %s", f.Value, f.Key)
	}

	if c, ok := constraints[f.Key]; ok {
		if err := c.check(v); err != nil {
			return nil, fmt.Errorf("invalid value for %s (%s): %w", f.Key, c.hint, err)
		}
	}
	return v, nil
}
