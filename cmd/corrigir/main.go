package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/corrigir/internal/domain/entities"
	"github.com/rios0rios0/corrigir/internal/infrastructure/server"
)

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "corrigir",
		Short: "Grades submissions with a language model",
		Long: `A small backend that forwards a submitted answer and a grading instruction
to a chat-completion model and returns the graded text.

When the answer is a GitHub or GitLab repository URL, the repository's source
files are fetched and concatenated into one document that is graded instead.

Usage modes:
  corrigir serve              Start the HTTP API (POST /corrigir, GET /proxy-sicredi)
  corrigir aggregate <url>    Print the aggregated document of a repository`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect, then environment)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	cmd.AddCommand(buildServeCommand(), buildAggregateCommand())
	return cmd
}

func buildServeCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			settings, err := loadSettings(command)
			if err != nil {
				return err
			}
			if err = settings.ValidateModel(); err != nil {
				return err
			}

			app, err := injectAppContext(settings)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(command.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.NewServer(settings, app.GetControllers()).Run(ctx)
		},
	}
}

func buildAggregateCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	return &cobra.Command{
		Use:   "aggregate <url>",
		Short: "Print the aggregated document of a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			settings, err := loadSettings(command)
			if err != nil {
				return err
			}

			app, err := injectAppContext(settings)
			if err != nil {
				return err
			}

			document, err := app.GetAggregate().Execute(command.Context(), args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(command.OutOrStdout(), document.Text())
			return err
		},
	}
}

func loadSettings(command *cobra.Command) (*entities.Settings, error) {
	if verbose, _ := command.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	configPath, _ := command.Flags().GetString("config")
	settings, err := entities.LoadSettings(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})

	if err := godotenv.Load(); err != nil {
		logger.Debugf("No .env file loaded: %v", err)
	}
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	if err := buildRootCommand().ExecuteContext(context.Background()); err != nil {
		logger.Fatalf("Error executing 'corrigir': %s", err)
	}
}
