package cmd

import (
	"fmt"
	"strings"

	"github.com/hiapplyco/docintel/internal/cleaner"
	"github.com/hiapplyco/docintel/internal/engine/enhance"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance <job-file>",
	Short: "Rewrite a job description for structure, tone, seo and inclusive language",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runEnhance(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(enhanceCmd)

	enhanceCmd.Flags().String("company", "", "company name to weave into the description")
	enhanceCmd.Flags().String("location", "", "location to weave into the description")
	enhanceCmd.Flags().StringP("goals", "g", "", "comma-separated goals: structure, tone, seo, inclusivity (default is all)")
	enhanceCmd.Flags().Bool("show-improvements", false, "print the result with the improvement list as json")
}

func runEnhance(cmd *cobra.Command, path string) {
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	text, err := readInput(path)
	if err != nil {
		logger.Fatal("reading job description", zap.Error(err))
	}

	if cleaner.LooksLikeHTML(text) {
		text = cleaner.HTML(text)
	}

	goals, err := goalsFromFlag(cmd.Flag("goals").Value.String())
	if err != nil {
		logger.Fatal("invalid --goals value", zap.Error(err))
	}

	enhancer := enhance.NewEnhancer(taxonomyFor(config))
	result := enhancer.Enhance(text, enhance.Options{
		CompanyName: cmd.Flag("company").Value.String(),
		Location:    cmd.Flag("location").Value.String(),
		Goals:       goals,
	})

	logger.Debug("enhanced job description",
		zap.Int("improvements", len(result.Improvements)),
	)

	if cmd.Flag("show-improvements").Value.String() == "true" {
		if err := printJSON(result); err != nil {
			logger.Fatal("printing result", zap.Error(err))
		}
		return
	}

	fmt.Println(result.Content)
}

func goalsFromFlag(value string) ([]enhance.Goal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return enhance.AllGoals(), nil
	}

	var goals []enhance.Goal
	for _, raw := range strings.Split(value, ",") {
		goal := enhance.Goal(strings.ToLower(strings.TrimSpace(raw)))
		switch goal {
		case enhance.GoalStructure, enhance.GoalTone, enhance.GoalSEO, enhance.GoalInclusivity:
			goals = append(goals, goal)
		default:
			return nil, fmt.Errorf("unknown goal %q", strings.TrimSpace(raw))
		}
	}

	return goals, nil
}
