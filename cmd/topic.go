package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/cashlog/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	cfg *Config
	raw bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `cashlog topic [-md] [<topic>...]

  Show documentation for the given topics, '*' shows them all.
  Without topic, the list of topics is shown.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "md", false, "Print raw markdown.")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		logger.Error("cannot read documentation", "err", err)
		return subcommands.ExitFailure
	}
	if c.raw {
		fmt.Fprint(stdout, doc)
		return subcommands.ExitSuccess
	}
	printMarkdown(stdout, doc, c.cfg.Style)
	return subcommands.ExitSuccess
}
