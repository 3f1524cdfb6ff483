package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hiapplyco/docintel/internal/ai"
	"github.com/hiapplyco/docintel/internal/ai/gemini"
	"github.com/hiapplyco/docintel/internal/engine/boolquery"
	appLogger "github.com/hiapplyco/docintel/internal/logger"
	"github.com/hiapplyco/docintel/internal/secrets"
	"github.com/hiapplyco/docintel/internal/sourcing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var queryCmd = &cobra.Command{
	Use:   "query <instructions>",
	Short: "Build a boolean sourcing query from plain-language instructions",
	Long: "Build a boolean search query for LinkedIn, GitHub or Google from " +
		"plain-language instructions. Uses the configured AI provider when " +
		"enabled and falls back to the deterministic composer otherwise.",
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runQuery(cmd, strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().StringP("platform", "p", string(boolquery.PlatformLinkedIn), "target platform: linkedin, github or google")
	queryCmd.Flags().Bool("no-ai", false, "skip the AI generator even when it is configured")
}

func runQuery(cmd *cobra.Command, instructions string) {
	ctx := context.Background()
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	platform, err := parsePlatform(cmd.Flag("platform").Value.String())
	if err != nil {
		logger.Fatal("invalid --platform value", zap.Error(err))
	}

	var generator ai.Generator
	timeout := ai.DefaultTimeout
	if cmd.Flag("no-ai").Value.String() != "true" {
		generator, timeout, err = newQueryGenerator(ctx, config, logger)
		if err != nil {
			logger.Warn("continuing without AI generator", zap.Error(err))
		}
	}

	composer := boolquery.NewComposer(taxonomyFor(config))
	service := sourcing.NewQueryService(generator, composer, logger, timeout)

	built := service.BuildQuery(ctx, instructions, platform)

	logger.Info("built query",
		zap.String("platform", string(platform)),
		zap.Bool("from_ai", built.FromAI),
	)

	if err := printJSON(built); err != nil {
		logger.Fatal("printing result", zap.Error(err))
	}
}

func parsePlatform(value string) (boolquery.Platform, error) {
	switch boolquery.Platform(strings.ToLower(strings.TrimSpace(value))) {
	case boolquery.PlatformLinkedIn:
		return boolquery.PlatformLinkedIn, nil
	case boolquery.PlatformGitHub:
		return boolquery.PlatformGitHub, nil
	case boolquery.PlatformGoogle:
		return boolquery.PlatformGoogle, nil
	default:
		return "", fmt.Errorf("unsupported platform %q", value)
	}
}

// newQueryGenerator builds the configured AI generator. A disabled or
// unconfigured AI section returns a nil generator, which the query service
// treats as composer-only mode.
func newQueryGenerator(ctx context.Context, config *Config, logger *zap.Logger) (ai.Generator, time.Duration, error) {
	if config == nil || config.AI == nil || !config.AI.Enabled {
		return nil, ai.DefaultTimeout, nil
	}

	provider := strings.TrimSpace(strings.ToLower(config.AI.Provider))
	if provider != "" && provider != "gemini" {
		return nil, ai.DefaultTimeout, fmt.Errorf("unsupported ai provider: %s", config.AI.Provider)
	}

	geminiCfg := config.AI.Gemini
	if geminiCfg == nil {
		geminiCfg = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: geminiCfg.APIKey,
		File:  geminiCfg.APIKeyFile,
		Env:   "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, ai.DefaultTimeout, fmt.Errorf("%w (set ai.gemini.api-key, ai.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, geminiCfg.Model)
	if err != nil {
		return nil, ai.DefaultTimeout, err
	}

	timeout := ai.DefaultTimeout
	if geminiCfg.TimeoutSeconds > 0 {
		timeout = time.Duration(geminiCfg.TimeoutSeconds) * time.Second
	}

	appLogger.WithCommonFields(logger, "gemini", generator.Model()).
		Debug("using AI query generator", zap.Duration("timeout", timeout))

	return generator, timeout, nil
}
