// Package open hands a URL or file to the system handler or to a named application such as a
// media player.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mediax-cli/mediax/constant"
)

// Run opens input with app, or with the system handler when app is empty, and waits for it.
func Run(input, app string) error {
	cmd, err := Command(input, app)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Start is Run without waiting.
func Start(input, app string) error {
	cmd, err := Command(input, app)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// Command builds the process that opens input on the current platform.
func Command(input, app string) (*exec.Cmd, error) {
	var cmd *exec.Cmd
	if app == "" {
		cmd = systemHandler(input)
	} else {
		cmd = withApp(input, app)
	}

	if cmd == nil {
		return nil, fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd, nil
}

func systemHandler(input string) *exec.Cmd {
	switch runtime.GOOS {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input)
	case constant.Darwin:
		return exec.Command("open", input)
	case constant.Linux:
		return exec.Command("xdg-open", input)
	case constant.Android:
		return exec.Command("termux-open", input)
	default:
		return nil
	}
}

func withApp(input, app string) *exec.Cmd {
	switch runtime.GOOS {
	case constant.Windows:
		// start treats & as a command separator
		return exec.Command("cmd", "/C", "start", "", app, strings.ReplaceAll(input, "&", "^&"))
	case constant.Darwin:
		return exec.Command("open", "-a", app, input)
	case constant.Linux:
		return exec.Command(app, input)
	case constant.Android:
		return exec.Command("termux-open", "--choose", input)
	default:
		return nil
	}
}
