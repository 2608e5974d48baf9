package protodump

import "github.com/protodump/protodump/wire"

// Stats summarizes a resolved tree: how many fields it has, how those
// fields split by wire type and by resolved interpretation, and how
// deep the nesting goes. The root value itself is not counted as a
// field; a flat buffer has MaxDepth 0.
type Stats struct {
	Fields    int // total fields across all nesting levels
	Varint    int // fields with wire type 0
	Fixed64   int // fields with wire type 1
	Delimited int // fields with wire type 2
	Fixed32   int // fields with wire type 5

	Messages int // delimited fields resolved as nested messages
	Texts    int // delimited fields resolved as UTF-8 text
	Raws     int // delimited fields resolved as raw bytes

	MaxDepth int // deepest nesting level holding a field
}

// statsLevel is one pending field list in the stats walk.
type statsLevel struct {
	fields []wire.Field
	depth  int
}

// Summarize walks the tree rooted at root and counts. Like the other
// tree walks it carries its own stack so depth stays off the call
// stack.
func Summarize(root wire.Value) Stats {
	var s Stats
	if root.Kind != wire.KindMessage {
		return s
	}

	work := []statsLevel{{fields: root.Message, depth: 0}}
	for len(work) > 0 {
		lvl := work[len(work)-1]
		work = work[:len(work)-1]

		for _, f := range lvl.fields {
			s.Fields++
			if lvl.depth > s.MaxDepth {
				s.MaxDepth = lvl.depth
			}

			switch f.Wire {
			case wire.WireVarint:
				s.Varint++
			case wire.WireFixed64:
				s.Fixed64++
			case wire.WireBytes:
				s.Delimited++
			case wire.WireFixed32:
				s.Fixed32++
			}

			switch f.Value.Kind {
			case wire.KindMessage:
				s.Messages++
				if len(f.Value.Message) > 0 {
					work = append(work, statsLevel{fields: f.Value.Message, depth: lvl.depth + 1})
				}
			case wire.KindText:
				s.Texts++
			case wire.KindRaw:
				s.Raws++
			}
		}
	}

	return s
}
