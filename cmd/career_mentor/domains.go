package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-mentor/internal/career"
)

var domainsJSON bool

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List the selectable domains",
	Long:  "List every domain in catalog order. Domains marked with * have a dedicated roadmap template; the rest fall back to Web Development.",
	RunE:  runDomains,
}

func init() {
	domainsCmd.Flags().BoolVar(&domainsJSON, "json", false, "Print as JSON")
	rootCmd.AddCommand(domainsCmd)
}

type domainEntry struct {
	Domain      string   `json:"domain"`
	HasTemplate bool     `json:"hasTemplate"`
	Keywords    []string `json:"keywords"`
}

func runDomains(_ *cobra.Command, _ []string) error {
	catalog := career.Default()

	entries := make([]domainEntry, 0, len(catalog.Domains()))
	for _, d := range catalog.Domains() {
		keywords, _ := catalog.Keywords(d)
		_, hasTemplate := catalog.Template(d)
		entries = append(entries, domainEntry{Domain: d, HasTemplate: hasTemplate, Keywords: keywords})
	}

	if domainsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	for _, e := range entries {
		marker := " "
		if e.HasTemplate {
			marker = "*"
		}
		line := fmt.Sprintf("%s %s", marker, e.Domain)
		if appConfig.Verbose && len(e.Keywords) > 0 {
			line += "  [" + strings.Join(e.Keywords, ", ") + "]"
		}
		fmt.Println(line)
	}
	return nil
}
