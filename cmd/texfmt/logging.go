package main

import (
	"github.com/urfave/cli"

	"github.com/richinsley/texfmt/log"
)

var logger = log.New("texfmt")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
