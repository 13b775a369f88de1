// Package displaytest provides a display.Writer that records what the controller
// would have received.
package displaytest

import (
	"fmt"
	"strings"

	"github.com/BeatGlow/statuspanel/display"
)

// Op is one byte sent to the controller.
type Op struct {
	Kind  display.WordType
	Value byte
}

func (op Op) String() string {
	if op.Kind == display.Command {
		return fmt.Sprintf("C%02X", op.Value)
	}
	return fmt.Sprintf("D%02X", op.Value)
}

// Cmd returns a command Op for every value.
func Cmd(values ...byte) []Op {
	return ops(display.Command, values)
}

// Data returns a data Op for every value.
func Data(values ...byte) []Op {
	return ops(display.Data, values)
}

func ops(kind display.WordType, values []byte) []Op {
	out := make([]Op, len(values))
	for i, v := range values {
		out[i] = Op{Kind: kind, Value: v}
	}
	return out
}

// Concat joins op sequences.
func Concat(seqs ...[]Op) []Op {
	var out []Op
	for _, seq := range seqs {
		out = append(out, seq...)
	}
	return out
}

// Recorder implements display.Writer.
type Recorder struct {
	Ops []Op
}

// Send implements display.Writer.
func (r *Recorder) Send(value byte, kind display.WordType) {
	r.Ops = append(r.Ops, Op{Kind: kind, Value: value})
}

// Reset forgets all recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// DataBytes returns the values of all data ops, in order.
func (r *Recorder) DataBytes() []byte {
	var out []byte
	for _, op := range r.Ops {
		if op.Kind == display.Data {
			out = append(out, op.Value)
		}
	}
	return out
}

func (r *Recorder) String() string {
	s := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		s[i] = op.String()
	}
	return strings.Join(s, " ")
}
