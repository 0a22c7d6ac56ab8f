// Package main is the entry point of mediax.
package main

import (
	"github.com/mediax-cli/mediax/cmd"
	"github.com/mediax-cli/mediax/config"
	"github.com/mediax-cli/mediax/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
