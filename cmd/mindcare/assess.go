package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Anshgoswami194/mind-embrace-connect/internal/assessment"
)

type assessOptions struct {
	answers []string
	output  string
}

func newAssessCmd() *cobra.Command {
	opts := &assessOptions{}
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Take the five question wellbeing check",
		Long: `Walk through the wellbeing check one question at a time.

Answer with the option number, "b" to go back or "q" to quit.

Examples:
  # Interactive
  mindcare assess

  # Score a fixed set of answers
  mindcare assess --answers several-days,not-at-all,nearly-every-day,several-days,not-at-all -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			questions := assessment.DefaultQuestions()
			if len(opts.answers) > 0 {
				return scoreAnswers(cmd.OutOrStdout(), questions, opts)
			}
			return runAssessment(cmd.InOrStdin(), cmd.OutOrStdout(), questions)
		},
	}

	cmd.Flags().StringSliceVar(&opts.answers, "answers", nil, "Option values in question order; skips the interactive stepper")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "human", "Output format (human, json, yaml)")
	return cmd
}

func scoreAnswers(out io.Writer, questions []assessment.Question, opts *assessOptions) error {
	if len(opts.answers) != len(questions) {
		return fmt.Errorf("expected %d answers, got %d", len(questions), len(opts.answers))
	}
	stepper := assessment.NewStepper(questions)
	for _, value := range opts.answers {
		if err := stepper.Answer(strings.TrimSpace(value)); err != nil {
			return err
		}
		if err := stepper.Next(); err != nil {
			return err
		}
	}
	result, _ := stepper.Result()

	switch opts.output {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(result)
	case "human", "":
		printResult(out, result)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", opts.output)
	}
}

func runAssessment(in io.Reader, out io.Writer, questions []assessment.Question) error {
	stepper := assessment.NewStepper(questions)
	scanner := bufio.NewScanner(in)

	bold := color.New(color.Bold)
	for !stepper.Completed() {
		q, _ := stepper.Question()
		fmt.Fprintln(out)
		bold.Fprintf(out, "Question %d of %d (%.0f%%)\n", stepper.Index()+1, stepper.Total(), stepper.Progress())
		fmt.Fprintln(out, q.Text)
		selected := stepper.Selected()
		for i, opt := range q.Options {
			marker := " "
			if opt.Value == selected {
				marker = "*"
			}
			fmt.Fprintf(out, " %s %d) %s\n", marker, i+1, opt.Label)
		}
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(input) {
		case "q", "quit":
			fmt.Fprintln(out, "Assessment cancelled.")
			return nil
		case "b", "back":
			if err := stepper.Previous(); err != nil {
				printWarning(out, "You are on the first question.")
			}
			continue
		}

		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > len(q.Options) {
			printWarning(out, fmt.Sprintf("Choose a number between 1 and %d.", len(q.Options)))
			continue
		}
		if err := stepper.Answer(q.Options[n-1].Value); err != nil {
			return err
		}
		if err := stepper.Next(); err != nil {
			return err
		}
	}

	result, _ := stepper.Result()
	printResult(out, result)
	return nil
}

func printResult(out io.Writer, result assessment.Result) {
	fmt.Fprintln(out)
	tierColor(result.Color).Fprintf(out, "%s (score %d of %d)\n", result.Tier, result.Score, result.MaxScore)
	fmt.Fprintln(out, result.Description)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Recommendation: %s\n", result.Recommendation)
	fmt.Fprintln(out)
	color.New(color.Faint).Fprintln(out, assessment.Disclaimer)
}

func tierColor(name string) *color.Color {
	switch name {
	case "green":
		return color.New(color.FgGreen, color.Bold)
	case "yellow":
		return color.New(color.FgYellow, color.Bold)
	case "orange":
		return color.New(color.FgHiRed, color.Bold)
	case "red":
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.Bold)
	}
}

func printWarning(out io.Writer, msg string) {
	color.New(color.FgYellow).Fprintln(out, msg)
}
