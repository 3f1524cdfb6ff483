package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hiapplyco/docintel/internal/cleaner"
	"github.com/hiapplyco/docintel/internal/engine/document"
	"github.com/hiapplyco/docintel/internal/engine/job"
	"github.com/hiapplyco/docintel/internal/engine/match"
	"github.com/hiapplyco/docintel/internal/engine/resume"

	"github.com/manifoldco/promptui"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	PromptGaps       = "Show gaps"
	PromptQuestions  = "Show interview questions"
	PromptDumpReport = "Dump full report to file"
	PromptExit       = "Exit"
)

var errExit = errors.New("exit requested")

var matchPrompt = promptui.Select{
	Label: "Next?",
	Items: []string{PromptGaps, PromptQuestions, PromptDumpReport, PromptExit},
}

var matchCmd = &cobra.Command{
	Use:   "match <resume-file> <job-file>",
	Short: "Score how well a resume matches a job description",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runMatch(cmd, args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("weights", "w", "", "factor weight overrides, e.g. skills=0.5,experience=0.3")
	matchCmd.Flags().BoolP("report-only", "r", false, "print the report as json and exit without the interactive menu")
}

func runMatch(cmd *cobra.Command, resumePath, jobPath string) {
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	resumeText, err := readInput(resumePath)
	if err != nil {
		logger.Fatal("reading resume", zap.Error(err))
	}

	jobText, err := readInput(jobPath)
	if err != nil {
		logger.Fatal("reading job description", zap.Error(err))
	}

	if cleaner.LooksLikeHTML(jobText) {
		jobText = cleaner.HTML(jobText)
	}

	weights, err := resolveWeights(config, cmd.Flag("weights").Value.String())
	if err != nil {
		logger.Fatal("resolving weights", zap.Error(err))
	}

	tax := taxonomyFor(config)
	parsedResume := resume.NewAnalyzer(tax, document.DefaultToggles()).Parse(resumeText)
	parsedJob := job.NewAnalyzer(tax).Analyze(jobText)

	report := match.NewScorer(match.DefaultPolicy()).Score(parsedResume, parsedJob, weights)

	logger.Info("scored match",
		zap.Int("overall", report.Overall),
		zap.String("category", report.Category),
	)

	if cmd.Flag("report-only").Value.String() == "true" {
		if err := printJSON(report); err != nil {
			logger.Fatal("printing report", zap.Error(err))
		}
		return
	}

	printSummary(report)

	for {
		_, action, err := matchPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleMatchAction(action, report, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleMatchAction(action string, report *match.Report, logger *zap.Logger) error {
	switch action {
	case PromptGaps:
		printList("Gaps", report.Gaps)
		printList("Recommendations", report.Recommendations)
		return nil
	case PromptQuestions:
		printList("Interview questions", report.InterviewQuestions)
		return nil
	case PromptDumpReport:
		filename, err := dumpReport(report)
		if err != nil {
			return fmt.Errorf("dump report to file: %w", err)
		}
		logger.Info("dumping report to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func printSummary(report *match.Report) {
	fmt.Printf("Overall: %d (%s)\n", report.Overall, report.Category)
	fmt.Printf("  skills:     %.1f (weighted %.1f)\n", report.Skills.Score, report.Skills.Weighted)
	fmt.Printf("  experience: %.1f (weighted %.1f)\n", report.Experience.Score, report.Experience.Weighted)
	fmt.Printf("  education:  %.1f (weighted %.1f)\n", report.Education.Score, report.Education.Weighted)
	fmt.Printf("  other:      %.1f (weighted %.1f)\n", report.Other.Score, report.Other.Weighted)
}

func printList(header string, items []string) {
	if len(items) == 0 {
		fmt.Printf("%s: none\n", header)
		return
	}

	fmt.Printf("%s:\n", header)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}

func dumpReport(report *match.Report) (string, error) {
	file, err := os.CreateTemp("", app+"-report-*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	pretty, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}

	if _, err := file.Write(pretty); err != nil {
		return "", err
	}

	return file.Name(), nil
}

// resolveWeights merges the config weights with flag overrides. The flag
// value is a comma-separated list of factor=value pairs decoded through
// mapstructure into the weights struct, so factor names match the config
// file keys.
func resolveWeights(config *Config, flagValue string) (*match.Weights, error) {
	var weights *match.Weights
	if config != nil && config.Scoring != nil && config.Scoring.Weights != nil {
		w := *config.Scoring.Weights
		weights = &w
	}

	flagValue = strings.TrimSpace(flagValue)
	if flagValue == "" {
		return weights, nil
	}

	overrides := make(map[string]any)
	for _, pair := range strings.Split(flagValue, ",") {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("malformed weight override %q, want factor=value", pair)
		}

		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("malformed weight value in %q: %w", pair, err)
		}

		overrides[strings.ToLower(strings.TrimSpace(key))] = parsed
	}

	if weights == nil {
		w := match.DefaultWeights()
		weights = &w
	}

	if err := mapstructure.Decode(overrides, weights); err != nil {
		return nil, fmt.Errorf("decoding weight overrides: %w", err)
	}

	return weights, nil
}
