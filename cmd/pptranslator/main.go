package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/birdmanoutman/ppTranslator/internal/cli"
	"github.com/birdmanoutman/ppTranslator/internal/processor"
	"github.com/birdmanoutman/ppTranslator/internal/translate"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	logger := slog.New(slog.DiscardHandler)
	if flags.Verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	backend, err := buildBackend(flags)
	if err != nil {
		return err
	}

	// Handle --check flag
	if flags.Check {
		probe, ok := backend.(interface{ CheckConnection(context.Context) error })
		if !ok {
			return fmt.Errorf("--check is only supported by the ollama backend")
		}
		if err := probe.CheckConnection(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Translation server is reachable.")
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister, ok := backend.(interface {
			ListModels(context.Context) ([]string, error)
		})
		if !ok {
			return fmt.Errorf("--list-models is not supported by the %s backend", flags.Backend)
		}
		models, err := lister.ListModels(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println("Available models:")
		for _, model := range models {
			fmt.Printf("  %s\n", model)
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("an input .pptx file is required")
	}

	from, err := language.Parse(flags.FromLang)
	if err != nil {
		return fmt.Errorf("invalid source language %q: %w", flags.FromLang, err)
	}
	to, err := language.Parse(flags.ToLang)
	if err != nil {
		return fmt.Errorf("invalid target language %q: %w", flags.ToLang, err)
	}

	proc := processor.New(processor.Config{
		Backend: translate.NewBreaker(backend),
		From:    from,
		To:      to,
		Logger:  logger,
		Progress: func(done, total int) {
			fmt.Printf("Translated slide %d/%d\n", done, total)
		},
	})

	fmt.Printf("Translating %s (%s → %s)...\n", args[0], flags.FromLang, flags.ToLang)
	outputPath, err := proc.TranslateFile(cmd.Context(), args[0], flags.Output)
	if err != nil {
		return err
	}

	fmt.Printf("\nDone! Translated file saved to: %s\n", outputPath)
	return nil
}

func buildBackend(flags *cli.Flags) (translate.Backend, error) {
	switch flags.Backend {
	case "ollama":
		return translate.NewOllama(flags.Model, flags.Host)
	case "openai":
		return translate.NewOpenAI(cli.GetOpenAIKey(), flags.Model, flags.Host), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (supported: ollama, openai)", flags.Backend)
	}
}
