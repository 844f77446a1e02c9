package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-mentor/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Validate JSON documents against the embedded schemas",
	Long: "Validate roadmap, input, profile or job JSON files against their JSON Schema. " +
		"Kinds: " + strings.Join(schemas.Kinds(), ", ") + ".",
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

var validateKind string

func init() {
	validateCmd.Flags().StringVarP(&validateKind, "kind", "k", "roadmap", "Document kind")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	if _, err := schemas.SchemaFor(validateKind); err != nil {
		return err
	}

	failed := 0
	for _, path := range args {
		if err := schemas.ValidateFile(validateKind, path); err != nil {
			failed++
			fmt.Printf("✗ %s: %v\n", path, err)
			continue
		}
		fmt.Printf("✓ %s\n", path)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed validation", failed, len(args))
	}
	return nil
}
