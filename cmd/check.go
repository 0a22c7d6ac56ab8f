// Package cmd implements the mediax command-line interface.
package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/mediax-cli/mediax/constant"
	"github.com/mediax-cli/mediax/icon"
	"github.com/mediax-cli/mediax/style"
)

// checkDependency exits when app is not in PATH.
func checkDependency(app string) {
	if _, err := exec.LookPath(app); err != nil {
		printMissingDependencyError(app)
		os.Exit(1)
	}
}

func installHint(app string) string {
	switch runtime.GOOS {
	case constant.Darwin:
		return "brew install " + app
	case constant.Linux:
		return "sudo apt install " + app
	case constant.Windows:
		return "scoop install " + app
	default:
		return ""
	}
}

func printMissingDependencyError(dep string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The application '%s' was not found in your PATH.", dep))

	suggestion := ""
	if hint := installHint(dep); hint != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(hint))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
