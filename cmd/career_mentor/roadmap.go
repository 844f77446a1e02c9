package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-mentor/internal/career"
	"github.com/jonathan/career-mentor/internal/observability"
	"github.com/jonathan/career-mentor/internal/rendering"
	"github.com/jonathan/career-mentor/internal/schemas"
	"github.com/jonathan/career-mentor/internal/types"
	schemafiles "github.com/jonathan/career-mentor/schemas"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Generate a career roadmap",
	Long: `Classify interests and skills into a domain and print the personalized three-phase roadmap.

Input comes from flags or from a UserInput JSON file (--in); flags override file values.`,
	RunE: runRoadmap,
}

var (
	roadmapInputFile  string
	roadmapInterests  string
	roadmapSkills     string
	roadmapDomain     string
	roadmapGrade      string
	roadmapExperience string
	roadmapFormat     string
	roadmapOutput     string
)

func init() {
	roadmapCmd.Flags().StringVarP(&roadmapInputFile, "in", "i", "", "Path to a UserInput JSON file")
	roadmapCmd.Flags().StringVar(&roadmapInterests, "interests", "", "Free-text interests")
	roadmapCmd.Flags().StringVar(&roadmapSkills, "skills", "", "Free-text current skills")
	roadmapCmd.Flags().StringVar(&roadmapDomain, "domain", "", "Domain to use instead of keyword matching")
	roadmapCmd.Flags().StringVar(&roadmapGrade, "grade", "", "Education level, e.g. \"College Junior\"")
	roadmapCmd.Flags().StringVar(&roadmapExperience, "experience", "", "Experience level, e.g. \"Intermediate\"")
	roadmapCmd.Flags().StringVarP(&roadmapFormat, "format", "f", "text", "Output format: text or json")
	roadmapCmd.Flags().StringVarP(&roadmapOutput, "output", "o", "", "Write to this file instead of stdout (\"-\" uses the export filename)")

	rootCmd.AddCommand(roadmapCmd)
}

func runRoadmap(_ *cobra.Command, _ []string) error {
	format, err := rendering.ParseFormat(roadmapFormat)
	if err != nil {
		return err
	}

	req, err := readRoadmapInput()
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	catalog := career.Default()
	roadmap := catalog.Generate(req.UserInput)

	if appConfig.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintDomainScores(catalog.Scores(req.Interests, req.Skills), roadmap.Domain)
		printer.PrintRoadmapSummary(&roadmap)
	}

	if err := schemas.ValidateRoadmap(&roadmap); err != nil {
		return fmt.Errorf("generated roadmap failed schema validation: %w", err)
	}

	artifact, err := rendering.Export(&roadmap, &rendering.UserDetails{
		Grade:      req.Grade,
		Experience: req.Experience,
	}, format)
	if err != nil {
		return err
	}

	switch roadmapOutput {
	case "":
		_, err := os.Stdout.Write(artifact.Body)
		return err
	case "-":
		roadmapOutput = artifact.Filename
	}
	if err := os.WriteFile(roadmapOutput, artifact.Body, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s roadmap to %s\n", roadmap.Domain, roadmapOutput)
	return nil
}

// readRoadmapInput loads --in when given and applies the individual flags on top.
func readRoadmapInput() (*types.RoadmapRequest, error) {
	var req types.RoadmapRequest
	if roadmapInputFile != "" {
		data, err := os.ReadFile(roadmapInputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		if err := json.Unmarshal(data, &req.UserInput); err != nil {
			return nil, fmt.Errorf("failed to parse input file: %w", err)
		}
	}

	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&req.Interests, roadmapInterests)
	override(&req.Skills, roadmapSkills)
	override(&req.SelectedDomain, roadmapDomain)
	override(&req.Grade, roadmapGrade)
	override(&req.Experience, roadmapExperience)

	if err := schemas.ValidateValue(schemafiles.UserInput, req.UserInput); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	return &req, nil
}
