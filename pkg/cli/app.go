// Package cli implements the modelrep command line application.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mchmarny/modelrep/pkg/config"
	"github.com/mchmarny/modelrep/pkg/logging"
	"github.com/urfave/cli/v2"
)

const (
	formatJSON   = "json"
	formatYAML   = "yaml"
	formatNDJSON = "ndjson"
	formatText   = "text"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	outputFormat = formatText

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "Output format [text, json, yaml, ndjson]",
		Value: formatText,
	}

	workersFlag = &cli.IntFlag{
		Name:  "workers",
		Usage: "Max number of metrics scored in parallel",
		Value: 4,
	}

	llmFlag = &cli.BoolFlag{
		Name:  "llm",
		Usage: "Use analysis-service enhanced metrics where available",
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefaultCLILogger(appConfig().LogLevel)

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:                 "modelrep",
		Version:              fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Compiled:             time.Now(),
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Usage:                "CLI for scoring the trustworthiness of ML artifacts",
		Flags: []cli.Flag{
			debugFlag,
			formatFlag,
		},
		Commands: []*cli.Command{
			scoreCmd,
			authCmd,
		},
		Before: func(c *cli.Context) error {
			if c.Bool(debugFlag.Name) {
				logging.SetDefaultCLILogger("debug")
			}

			f := c.String(formatFlag.Name)
			if !c.IsSet(formatFlag.Name) {
				if cf := appConfig().Format; cf != "" {
					f = cf
				}
			}
			switch f {
			case formatJSON, formatNDJSON, formatText:
				outputFormat = f
			case formatYAML, "yml":
				outputFormat = formatYAML
			}
			return nil
		},
	}
}

func appConfig() *config.Config {
	c, err := config.ReadOrCreate(config.HomeDir())
	if err != nil {
		slog.Debug("failed to read config, using defaults", "error", err)
		return &config.Config{Workers: 4, Format: formatText}
	}
	return c
}
