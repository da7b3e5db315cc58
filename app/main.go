package main

import (
	"os"

	"github.com/rootdots/rich-dictionary-cli/app/cli"
	"github.com/rootdots/rich-dictionary-cli/app/clients/dictionaryapi"
	"github.com/rootdots/rich-dictionary-cli/app/render"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var opts cli.Opts
	if _, err := flags.ParseArgs(&opts, os.Args[1:]); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if opts.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	out := render.New(os.Stdout)
	if opts.NoColor {
		out.NoColor()
	}
	client := dictionaryapi.NewClient(opts.Timeout)
	os.Exit(cli.Run(opts, client, out))
}
