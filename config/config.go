// Package config registers every setting with its default and loads mediax.toml through viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mediax-cli/mediax/constant"
	"github.com/mediax-cli/mediax/filesystem"
	"github.com/mediax-cli/mediax/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer turns a key such as network.rate_limit into the env suffix NETWORK_RATE_LIMIT.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup binds env variables, applies defaults and reads mediax.toml. A missing file is not an error.
func Setup() error {
	viper.SetConfigName(constant.Mediax)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Mediax)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	return nil
}
