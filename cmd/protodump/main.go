// Command protodump decodes Protocol Buffers wire data without a
// schema and prints a best-effort field tree. It never rejects a
// payload: whatever does not parse as fields is shown as text or hex.
package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
)

var logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

func main() {
	app := kingpin.New("protodump", "Inspect Protocol Buffers wire data without a schema.")
	addDumpCommand(app)
	addStatsCommand(app)
	kingpin.MustParse(app.Parse(os.Args[1:]))
}
