package cmd

import (
	"github.com/hiapplyco/docintel/internal/cleaner"
	"github.com/hiapplyco/docintel/internal/engine/job"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <job-file>",
	Short: "Analyze a job description into title, skills, seniority, salary and policy data",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runAnalyze(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().Bool("html", false, "treat the input as HTML and extract its text first")
}

func runAnalyze(cmd *cobra.Command, path string) {
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	text, err := readInput(path)
	if err != nil {
		logger.Fatal("reading job description", zap.Error(err))
	}

	if cmd.Flag("html").Value.String() == "true" || cleaner.LooksLikeHTML(text) {
		logger.Debug("cleaning html input", zap.Int("raw_length", len(text)))
		text = cleaner.HTML(text)
	}

	analyzer := job.NewAnalyzer(taxonomyFor(config))
	parsed := analyzer.Analyze(text)

	logger.Debug("analyzed job description",
		zap.String("title", parsed.Title),
		zap.Int("required_skills", len(parsed.RequiredSkills)),
	)

	if err := printJSON(parsed); err != nil {
		logger.Fatal("printing result", zap.Error(err))
	}
}
