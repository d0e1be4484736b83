package cmd

import (
	"github.com/ndoll1998/FairPT/log"
	"github.com/urfave/cli"
)

var logger = log.New("fairpt")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
