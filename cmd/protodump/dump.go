package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/protodump/protodump"
)

// dumpCommand decodes each input and prints its field tree.
type dumpCommand struct {
	inputs *[]string
	hex    *bool
}

func (cmd *dumpCommand) run(_ *kingpin.ParseContext) error {
	if len(*cmd.inputs) == 0 {
		data, err := readStdin()
		if err != nil {
			return err
		}
		return protodump.DumpTo(os.Stdout, data)
	}

	failed := 0
	for _, arg := range *cmd.inputs {
		data, err := loadInput(arg, *cmd.hex)
		if err != nil {
			level.Error(logger).Log("msg", "skipping input", "input", arg, "err", err)
			failed++
			continue
		}

		if len(*cmd.inputs) > 1 {
			fmt.Printf("# %s\n", arg)
		}
		if err := protodump.DumpTo(os.Stdout, data); err != nil {
			return errors.Wrap(err, "failed to write output")
		}
	}

	if failed > 0 {
		return errors.Errorf("%d of %d inputs could not be read", failed, len(*cmd.inputs))
	}
	return nil
}

func addDumpCommand(app *kingpin.Application) {
	cmd := &dumpCommand{}
	dump := app.Command("dump", "Decode inputs and print each field tree.").Default().Action(cmd.run)
	cmd.inputs = dump.Arg("input", "Files to decode, or hex strings with --hex. Reads stdin when empty.").Strings()
	cmd.hex = dump.Flag("hex", "Treat inputs as hex strings instead of file paths.").Bool()
}
