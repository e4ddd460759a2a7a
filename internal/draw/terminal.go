package draw

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Sequences written around a play session.
const (
	seqClear      = termenv.CSI + "H" + termenv.CSI + "2J"
	seqEraseLine  = termenv.CSI + termenv.EraseEntireLineSeq
	seqHideCursor = termenv.CSI + termenv.HideCursorSeq
	seqShowCursor = termenv.CSI + termenv.ShowCursorSeq
)

// packetSize caps a single write so SSH output arrives in MTU-sized pieces.
const packetSize = 1400

// Frame collects one frame of terminal output. Positions are 1-based and
// relative to the frame origin, which follows the centered render area.
type Frame struct {
	out       io.Writer
	buf       []byte
	originCol int
	originRow int
}

// NewFrame returns a frame writing to out with its origin at (col, row) offset.
func NewFrame(out io.Writer, col, row int) *Frame {
	return &Frame{out: out, buf: make([]byte, 0, 16*1024), originCol: col, originRow: row}
}

// SetOrigin moves the frame origin after a resize.
func (f *Frame) SetOrigin(col, row int) {
	f.originCol, f.originRow = col, row
}

// Goto moves the cursor to (col, row).
func (f *Frame) Goto(col, row int) {
	f.buf = append(f.buf, termenv.CSI...)
	f.buf = strconv.AppendInt(f.buf, int64(row+f.originRow), 10)
	f.buf = append(f.buf, ';')
	f.buf = strconv.AppendInt(f.buf, int64(col+f.originCol), 10)
	f.buf = append(f.buf, 'H')
}

// Write appends p at the cursor. Canvas.Render targets a Frame through it.
func (f *Frame) Write(p []byte) (int, error) {
	f.buf = append(f.buf, p...)
	return len(p), nil
}

// Text writes s at (col, row); each further line of s starts one row lower
// at the same column.
func (f *Frame) Text(col, row int, s string) {
	for i, line := range strings.Split(s, "\n") {
		f.Goto(col, row+i)
		f.buf = append(f.buf, line...)
	}
}

// Line replaces row with s.
func (f *Frame) Line(row int, s string) {
	f.Goto(1, row)
	f.buf = append(f.buf, seqEraseLine...)
	f.buf = append(f.buf, s...)
}

// Clear wipes the whole terminal as part of this frame.
func (f *Frame) Clear() {
	f.buf = append(f.buf, seqClear...)
}

// Flush sends the frame in packet-sized writes and empties it.
func (f *Frame) Flush() error {
	data := f.buf
	for len(data) > 0 {
		n := min(len(data), packetSize)
		if _, err := f.out.Write(data[:n]); err != nil {
			f.buf = f.buf[:0]
			return err
		}
		data = data[n:]
	}
	f.buf = f.buf[:0]
	return nil
}

var _ io.Writer = (*Frame)(nil)

// TermSizeFunc returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns the size of os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// EnterScreen hides the cursor and clears the terminal.
func EnterScreen(w io.Writer) {
	_, _ = io.WriteString(w, seqHideCursor+seqClear)
}

// LeaveScreen clears the terminal and gives the cursor back.
func LeaveScreen(w io.Writer) {
	_, _ = io.WriteString(w, seqClear+seqShowCursor)
}
