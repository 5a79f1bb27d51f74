package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/lox/handshapes/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Classify ClassifyCmd      `cmd:"" help:"Classify one hand against a board"`
	Survey   SurveyCmd        `cmd:"" help:"Label every hole card combination on a board"`
	Sample   SampleCmd        `cmd:"" help:"Classify randomly dealt hands"`
	Flags    FlagsCmd         `cmd:"" help:"List the registered hand flags"`
}

func main() {
	// .env values feed the env tags below.
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handclass"),
		kong.Description("Label hold'em hands by strength, position, draws and suit pattern"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
