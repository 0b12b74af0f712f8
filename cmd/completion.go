package cmd

import (
	"flag"

	"github.com/etnz/cashlog/date"
	"github.com/etnz/cashlog/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors predicts the values of flags by name, other flags take any value.
var flagPredictors = map[string]complete.Predictor{
	"o":        predict.Files("*"),
	"env":      predict.Files("*"),
	"d":        predict.Set{",", ";", "|", "tab", "space"},
	"od":       predict.Set{",", ";", "|", "tab", "space"},
	"p":        predict.Set(date.Units()),
	"format":   predict.Set{"json", "yaml"},
	"desc":     predict.Set{"name", "memo", "both"},
	"currency": predict.Set{"EUR", "USD", "GBP", "CHF", "JPY"},
}

// boolFlag is implemented by flag values that need no argument.
type boolFlag interface{ IsBoolFlag() bool }

// flagsOf returns the predictors of the flags of a flag set.
func flagsOf(visit func(func(*flag.Flag))) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	visit(func(fl *flag.Flag) {
		if b, ok := fl.Value.(boolFlag); ok && b.IsBoolFlag() {
			flags[fl.Name] = predict.Nothing
			return
		}
		if p, ok := flagPredictors[fl.Name]; ok {
			flags[fl.Name] = p
			return
		}
		flags[fl.Name] = predict.Something
	})
	return flags
}

// Completion returns the shell completion of the command line, built out of the global flags
// and the flags of cmds.
func Completion(global *flag.FlagSet, cmds ...subcommands.Command) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagsOf(global.VisitAll),
	}
	for _, cmd := range cmds {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: flagsOf(fs.VisitAll), Args: predict.Files("*.csv")}
		switch cmd.Name() {
		case "topic":
			topics, _ := docs.GetAllTopics()
			sub.Args = predict.Set(topics)
		case "import-ofx":
			sub.Args = predict.Files("*.ofx")
		}
		root.Sub[cmd.Name()] = sub
	}
	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{}
	}
	return root
}
