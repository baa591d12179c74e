package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Anshgoswami194/mind-embrace-connect/internal/content"
)

type pagesOptions struct {
	dir    string
	output string
}

func newPagesCmd() *cobra.Command {
	opts := &pagesOptions{}
	cmd := &cobra.Command{
		Use:   "pages [PAGE]",
		Short: "Print the site navigation or a page",
		Long: `Without an argument, list the navigation. With one, print that page;
unknown pages fall back to home.

Examples:
  mindcare pages
  mindcare pages services -o yaml
  mindcare pages about --content-dir ./site`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := content.Load(opts.dir)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return printNavigation(cmd.OutOrStdout(), site, opts.output)
			}
			return printPage(cmd.OutOrStdout(), site.Page(args[0]), opts.output)
		},
	}

	cmd.Flags().StringVar(&opts.dir, "content-dir", "", "Directory holding an overriding site.yaml")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "human", "Output format (human, json, yaml)")
	return cmd
}

func printNavigation(out io.Writer, site *content.Site, format string) error {
	if format != "human" && format != "" {
		return encode(out, site.Navigation, format)
	}
	color.New(color.FgCyan, color.Bold).Fprintln(out, site.Clinic)
	fmt.Fprintln(out, site.Tagline)
	fmt.Fprintln(out)
	for _, item := range site.Navigation {
		fmt.Fprintf(out, "  %-10s %s\n", item.ID, item.Label)
	}
	return nil
}

func printPage(out io.Writer, page content.Page, format string) error {
	if format != "human" && format != "" {
		return encode(out, page, format)
	}

	heading := color.New(color.FgCyan, color.Bold)
	bold := color.New(color.Bold)

	heading.Fprintln(out, page.Hero.Heading)
	fmt.Fprintln(out, page.Hero.Body)
	for _, section := range page.Sections {
		fmt.Fprintln(out)
		if section.Heading != "" {
			bold.Fprintln(out, section.Heading)
		}
		if section.Intro != "" {
			fmt.Fprintln(out, section.Intro)
		}
		for _, p := range section.Paragraphs {
			fmt.Fprintln(out, p)
		}
		for _, b := range section.Bullets {
			fmt.Fprintf(out, "  - %s\n", b)
		}
		for _, item := range section.Items {
			line := item.Title
			if item.Value != "" {
				line = item.Value + " " + line
			}
			if item.Subtitle != "" {
				line += " (" + item.Subtitle + ")"
			}
			fmt.Fprintf(out, "  * %s\n", line)
			if item.Description != "" {
				fmt.Fprintf(out, "    %s\n", item.Description)
			}
			if len(item.Tags) > 0 {
				fmt.Fprintf(out, "    [%s]\n", strings.Join(item.Tags, ", "))
			}
		}
	}
	return nil
}

func encode(out io.Writer, v any, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
