package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mediax-cli/mediax/filesystem"
	"github.com/mediax-cli/mediax/key"
	"github.com/mediax-cli/mediax/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should register every defined key", func() {
			So(Default, ShouldHaveLength, key.DefinedFieldsCount)
		})

		Convey("Should populate defaults", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.PeerTubeInstance), ShouldEqual, "https://framatube.org")
		})

		Convey("Should read mediax.toml", func() {
			path := filepath.Join(where.Config(), "mediax.toml")
			lo.Must0(filesystem.API().WriteFile(path, []byte("[network]\nrate_limit = 3\n"), os.ModePerm))
			defer filesystem.API().Remove(path)

			So(Setup(), ShouldBeNil)
			So(viper.GetInt(key.NetworkRateLimit), ShouldEqual, 3)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("network.rate_limit"), ShouldEqual, "network_rate_limit")
		})
	})

	Convey("Fields expose their env variable", t, func() {
		field := Default[key.NetworkTimeout]
		So(field.Env(), ShouldEqual, "MEDIAX_NETWORK_TIMEOUT")
		So(field.typeName(), ShouldEqual, "int")
	})
}
