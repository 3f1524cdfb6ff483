package cmd

import (
	"fmt"
	"strings"

	"github.com/hiapplyco/docintel/internal/engine/document"
	"github.com/hiapplyco/docintel/internal/engine/resume"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var parseCmd = &cobra.Command{
	Use:   "parse <resume-file>",
	Short: "Parse a resume into structured contact, experience, education and skill data",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runParse(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringP("sections", "s", "", "comma-separated section kinds to parse (default is all)")
}

func runParse(cmd *cobra.Command, path string) {
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	text, err := readInput(path)
	if err != nil {
		logger.Fatal("reading resume", zap.Error(err))
	}

	toggles, err := togglesFromFlag(cmd.Flag("sections").Value.String())
	if err != nil {
		logger.Fatal("invalid --sections value", zap.Error(err))
	}

	analyzer := resume.NewAnalyzer(taxonomyFor(config), toggles)
	parsed := analyzer.Parse(text)

	logger.Debug("parsed resume",
		zap.Int("experience_entries", len(parsed.Experience)),
		zap.Int("education_entries", len(parsed.Education)),
		zap.Float64("experience_years", parsed.ExperienceYears),
	)

	if err := printJSON(parsed); err != nil {
		logger.Fatal("printing result", zap.Error(err))
	}
}

// togglesFromFlag converts a comma-separated kind list into section toggles.
// An empty value enables everything.
func togglesFromFlag(value string) (document.Toggles, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return document.DefaultToggles(), nil
	}

	var toggles document.Toggles
	for _, raw := range strings.Split(value, ",") {
		switch document.Kind(strings.ToLower(strings.TrimSpace(raw))) {
		case document.KindContact:
			toggles.Contact = true
		case document.KindSummary:
			toggles.Summary = true
		case document.KindExperience:
			toggles.Experience = true
		case document.KindEducation:
			toggles.Education = true
		case document.KindSkills:
			toggles.Skills = true
		case document.KindCertifications:
			toggles.Certifications = true
		case document.KindProjects:
			toggles.Projects = true
		default:
			return toggles, fmt.Errorf("unknown section kind %q", strings.TrimSpace(raw))
		}
	}

	return toggles, nil
}
