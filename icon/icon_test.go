package icon

import (
	"testing"

	"github.com/mediax-cli/mediax/key"
	"github.com/mediax-cli/mediax/media"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Every icon renders in every variant", t, func() {
		for _, variant := range AvailableVariants() {
			viper.Set(key.IconsVariant, variant)
			for i := range icons {
				So(Get(i), ShouldNotBeEmpty)
			}
		}
	})

	Convey("An unknown variant renders nothing", t, func() {
		viper.Set(key.IconsVariant, "")
		So(Get(Fail), ShouldBeEmpty)
	})

	Convey("Item kinds map to their icons", t, func() {
		So(ForKind(media.KindChannel), ShouldEqual, Channel)
		So(ForKind(media.KindStream), ShouldEqual, Stream)
		So(ForKind(media.KindComment), ShouldEqual, Comment)
	})
}
