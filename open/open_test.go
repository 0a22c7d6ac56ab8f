package open

import (
	"runtime"
	"testing"

	"github.com/mediax-cli/mediax/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	if runtime.GOOS != constant.Linux {
		t.Skip("command layout checked on linux only")
	}

	Convey("Without an app the system handler is used", t, func() {
		cmd, err := Command("https://example.org/v.mp4", "")
		So(err, ShouldBeNil)
		So(cmd.Args, ShouldResemble, []string{"xdg-open", "https://example.org/v.mp4"})
	})

	Convey("An app receives the input as its argument", t, func() {
		cmd, err := Command("https://example.org/v.mp4", "mpv")
		So(err, ShouldBeNil)
		So(cmd.Args, ShouldResemble, []string{"mpv", "https://example.org/v.mp4"})
	})
}
