package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type suggestCmd struct {
	model string
}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "suggest a category for an expense description" }
func (*suggestCmd) Usage() string {
	return `xps suggest [description...]

  Asks Gemini for a category suggestion for the given description, preferring
  categories already present in the expenses file. Requires the GEMINI_API_KEY
  environment variable.

Usage Examples:
$ xps suggest tickets for the night train to Vienna
`
}

func (p *suggestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.model, "model", "gemini-2.5-flash", "Gemini model used for the suggestion.")
}

func (p *suggestCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	description := strings.Join(f.Args(), " ")
	if strings.TrimSpace(description) == "" {
		fmt.Fprintln(os.Stderr, "Error: a description is required.")
		return subcommands.ExitUsageError
	}

	ledger, err := newTracker().List()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	var categories []string
	for c := range ledger.Categories() {
		categories = append(categories, c)
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	prompt := fmt.Sprintf(
		"Suggest a single short expense category (lowercase, one word if possible) for this expense description: %q.\n"+
			"Prefer one of the existing categories: %s.\n"+
			"Answer with the category only.",
		description, strings.Join(categories, ", "))

	chat, err := client.Chats.Create(ctx, p.model, nil, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error starting chat:", err)
		return subcommands.ExitFailure
	}
	resp, err := chat.Send(ctx, &genai.Part{Text: prompt})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error asking for a suggestion:", err)
		return subcommands.ExitFailure
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no suggestion returned.")
		return subcommands.ExitFailure
	}

	fmt.Println(strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text))
	return subcommands.ExitSuccess
}
