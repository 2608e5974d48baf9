package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/protodump/protodump"
)

// statsCommand prints a decode summary for each input.
type statsCommand struct {
	inputs *[]string
	hex    *bool
}

func (cmd *statsCommand) run(_ *kingpin.ParseContext) error {
	if len(*cmd.inputs) == 0 {
		data, err := readStdin()
		if err != nil {
			return err
		}
		cmd.printStats("stdin", data)
		return nil
	}

	failed := 0
	for _, arg := range *cmd.inputs {
		data, err := loadInput(arg, *cmd.hex)
		if err != nil {
			level.Error(logger).Log("msg", "skipping input", "input", arg, "err", err)
			failed++
			continue
		}
		cmd.printStats(arg, data)
	}

	if failed > 0 {
		return errors.Errorf("%d of %d inputs could not be read", failed, len(*cmd.inputs))
	}
	return nil
}

func (cmd *statsCommand) printStats(name string, data []byte) {
	root := protodump.Decode(data)
	stats := protodump.Summarize(root)

	bold := color.New(color.Bold)
	bold.Printf("%s:\n", name)
	fmt.Printf("\tsize: %v, root: %v\n", humanize.Bytes(uint64(len(data))), root.Kind)
	fmt.Printf("\tfields: %d, max depth: %d\n", stats.Fields, stats.MaxDepth)
	fmt.Printf(
		"\twire types: varint: %d, fixed64: %d, delimited: %d, fixed32: %d\n",
		stats.Varint, stats.Fixed64, stats.Delimited, stats.Fixed32,
	)
	fmt.Printf(
		"\tdelimited resolved as: message: %d, text: %d, raw: %d\n",
		stats.Messages, stats.Texts, stats.Raws,
	)
}

func addStatsCommand(app *kingpin.Application) {
	cmd := &statsCommand{}
	stats := app.Command("stats", "Print a decode summary for each input.").Action(cmd.run)
	cmd.inputs = stats.Arg("input", "Files to summarize, or hex strings with --hex. Reads stdin when empty.").Strings()
	cmd.hex = stats.Flag("hex", "Treat inputs as hex strings instead of file paths.").Bool()
}
