package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	formwizard "github.com/goliatone/go-formwizard"
	"github.com/goliatone/go-formwizard/pkg/config"
	"github.com/goliatone/go-formwizard/pkg/model"
	"github.com/goliatone/go-formwizard/pkg/tui"
)

func main() {
	env := config.LoadEnv()

	var (
		configFlag   = flag.String("config", env.ConfigPath, "Wizard definition (YAML or JSON); overrides -preset")
		presetFlag   = flag.String("preset", env.Preset, fmt.Sprintf("Embedded wizard preset %v", config.Presets()))
		outputFlag   = flag.String("output", "", "Optional file for the final preview card (stdout when empty)")
		valuesFlag   = flag.Bool("values", false, "Print the submission values as JSON when finished")
		logLevelFlag = flag.String("log-level", env.LogLevel, "Log level (debug, info, warn, error)")
		logFileFlag  = flag.String("log-file", env.LogFile, "Optional rotating log file")
		minifyFlag   = flag.Bool("minify", env.Minify, "Minify rendered markup")
	)
	flag.Parse()

	env.LogLevel = *logLevelFlag
	env.LogFile = *logFileFlag
	logger, closeLog := setupLogger(env)
	defer closeLog()

	form, err := loadForm(*configFlag, *presetFlag)
	if err != nil {
		log.Fatalf("load wizard: %v", err)
	}

	opts := []formwizard.Option{formwizard.WithLogger(logger)}
	if *minifyFlag {
		opts = append(opts, formwizard.WithMinify())
	}
	wizard, err := formwizard.New(form, opts...)
	if err != nil {
		log.Fatalf("build wizard: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := tui.NewSession(wizard, tui.NewSurveyDriver(os.Stdout), tui.WithLogger(logger))
	if err := session.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrAborted) || errors.Is(err, context.Canceled) {
			logger.Info("wizard aborted")
			return
		}
		log.Fatalf("run wizard: %v", err)
	}

	card, err := wizard.RenderPreview()
	if err != nil {
		log.Fatalf("render preview: %v", err)
	}
	if *outputFlag != "" {
		if err := os.WriteFile(*outputFlag, []byte(card), 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Preview written to %s\n", *outputFlag)
	} else {
		fmt.Println(card)
	}

	if *valuesFlag {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(wizard.Values()); err != nil {
			log.Fatalf("encode values: %v", err)
		}
	}
}

func loadForm(path, preset string) (model.FormModel, error) {
	if path != "" {
		slog.Debug("loading wizard definition", "path", path)
		return config.LoadFile(path)
	}
	return config.Preset(preset)
}
