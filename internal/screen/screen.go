// Package screen implements the reference EventListener the vtparse core
// drives: a terminal cell grid, the "screen/emulator collaborator" the
// core's contract describes but never implements itself.
package screen

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/vtparse/vtparse/internal/debug"
	"github.com/vtparse/vtparse/internal/vtparse"
)

// Screen is a minimal terminal cell grid. It implements
// vtparse.EventListener and tracks only the generic cursor/cell/attribute
// state cellbuf already models, not DEC private-mode semantics — CSI/OSC
// meaning beyond cursor movement, erase, and SGR is out of scope.
type Screen struct {
	buf    *cellbuf.Buffer
	cursor cellbuf.Position
	style  cellbuf.Style

	// text mirrors buf's rune content row by row. cellbuf.Buffer is
	// write-oriented for rendering; Text() needs to read cells back out,
	// so the grid is tracked here rather than guessed at on the Buffer.
	text   [][]rune
	width  int
	height int

	leader       byte
	intermediate []byte
	params       []int
	paramDigits  strings.Builder
	hasParam     bool

	oscBuf strings.Builder
	apcBuf strings.Builder
	pmBuf  strings.Builder

	title    string
	lastAPC  string
	lastPM   string
	lastDCS  strings.Builder
	dcsFinal byte

	logger *debug.Logger
}

// New creates a Screen sized width x height cells.
func New(width, height int, logger *debug.Logger) *Screen {
	return &Screen{
		buf:    cellbuf.NewBuffer(width, height),
		text:   newTextGrid(width, height),
		width:  width,
		height: height,
		logger: logger,
	}
}

func newTextGrid(width, height int) [][]rune {
	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = make([]rune, width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}
	return grid
}

// Resize grows or shrinks the backing grid.
func (s *Screen) Resize(width, height int) {
	s.buf.Resize(width, height)
	s.text = newTextGrid(width, height)
	s.width, s.height = width, height
	if s.cursor.X >= width {
		s.cursor.X = width - 1
	}
	if s.cursor.Y >= height {
		s.cursor.Y = height - 1
	}
}

// Text renders the grid's visible content as plain text, rows joined by
// newlines with trailing blanks on each row trimmed.
func (s *Screen) Text() string {
	lines := make([]string, s.height)
	for y, row := range s.text {
		lines[y] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}

// Buffer exposes the underlying cell grid for rendering.
func (s *Screen) Buffer() *cellbuf.Buffer { return s.buf }

// CursorPosition returns the zero-based column and row of the cursor.
func (s *Screen) CursorPosition() (int, int) { return s.cursor.X, s.cursor.Y }

// Title returns the most recent OSC 0/2 window title.
func (s *Screen) Title() string { return s.title }

func (s *Screen) advance(cells int) {
	w, h := s.buf.Width(), s.buf.Height()
	s.cursor.X += cells
	for s.cursor.X >= w {
		s.cursor.X -= w
		s.cursor.Y++
	}
	if s.cursor.Y >= h {
		s.cursor.Y = h - 1
	}
}

func (s *Screen) putRune(r rune, width int) {
	cell := cellbuf.NewCell(r)
	if cell != nil {
		cell.Width = width
		cell.Style = s.style
	}
	s.buf.SetCell(s.cursor.X, s.cursor.Y, cell)
	if s.cursor.Y >= 0 && s.cursor.Y < len(s.text) && s.cursor.X >= 0 && s.cursor.X < len(s.text[s.cursor.Y]) {
		s.text[s.cursor.Y][s.cursor.X] = r
	}
}

// Print implements vtparse.EventListener.
func (s *Screen) Print(b byte) {
	s.putRune(rune(b), 1)
	s.advance(1)
}

// PrintText implements vtparse.EventListener.
func (s *Screen) PrintText(text []byte, cellCount int) {
	cells := 0
	for _, r := range string(text) {
		w := cellbuf.RuneWidth(r)
		if w <= 0 {
			w = 1
		}
		s.putRune(r, w)
		s.advance(w)
		cells += w
		if cells >= cellCount {
			break
		}
	}
}

// Execute implements vtparse.EventListener. Only the handful of C0 controls
// that affect cursor position are interpreted; everything else is a no-op.
func (s *Screen) Execute(b byte) {
	switch b {
	case '\n':
		s.cursor.X = 0
		s.cursor.Y++
		if s.cursor.Y >= s.buf.Height() {
			s.cursor.Y = s.buf.Height() - 1
		}
	case '\r':
		s.cursor.X = 0
	case '\t':
		s.advance(8 - s.cursor.X%8)
	case 0x08: // BS
		if s.cursor.X > 0 {
			s.cursor.X--
		}
	}
}

// Clear implements vtparse.EventListener: fired on entering Escape,
// CsiEntry, or DcsEntry, it resets the parameter/intermediate accumulator.
func (s *Screen) Clear() {
	s.leader = 0
	s.intermediate = s.intermediate[:0]
	s.params = s.params[:0]
	s.paramDigits.Reset()
	s.hasParam = false
}

func (s *Screen) Collect(b byte)       { s.intermediate = append(s.intermediate, b) }
func (s *Screen) CollectLeader(b byte) { s.leader = b }

func (s *Screen) Param(b byte) { s.paramDigits.WriteByte(b) }

func (s *Screen) ParamDigit(b byte) {
	s.hasParam = true
	s.paramDigits.WriteByte(b)
}

func (s *Screen) flushParam() {
	if s.paramDigits.Len() == 0 {
		s.params = append(s.params, -1)
		return
	}
	n, err := strconv.Atoi(s.paramDigits.String())
	if err != nil {
		n = -1
	}
	s.params = append(s.params, n)
	s.paramDigits.Reset()
}

func (s *Screen) ParamSeparator()    { s.flushParam() }
func (s *Screen) ParamSubSeparator() { s.flushParam() }

// DispatchESC implements vtparse.EventListener. Only RIS ('c') is handled.
func (s *Screen) DispatchESC(b byte) {
	if b == 'c' {
		s.cursor = cellbuf.Position{}
		s.style = cellbuf.Style{}
		s.buf.Clear()
		s.clearTextAll()
	}
}

func (s *Screen) param(i, def int) int {
	if i >= len(s.params) || s.params[i] < 0 {
		return def
	}
	return s.params[i]
}

// DispatchCSI implements vtparse.EventListener, handling cursor movement,
// erase-display/line, and SGR — the minimal subset needed to make the
// demo readable. Every other final byte is acknowledged and ignored.
func (s *Screen) DispatchCSI(b byte) {
	if s.hasParam || s.paramDigits.Len() > 0 {
		s.flushParam()
	}
	switch b {
	case 'H', 'f':
		row, col := s.param(0, 1), s.param(1, 1)
		s.cursor = cellbuf.Position{X: col - 1, Y: row - 1}
	case 'A':
		s.cursor.Y -= max(s.param(0, 1), 1)
	case 'B':
		s.cursor.Y += max(s.param(0, 1), 1)
	case 'C':
		s.cursor.X += max(s.param(0, 1), 1)
	case 'D':
		s.cursor.X -= max(s.param(0, 1), 1)
	case 'J':
		s.eraseDisplay(s.param(0, 0))
	case 'K':
		s.eraseLine(s.param(0, 0))
	case 'm':
		s.applySGR()
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (s *Screen) clearTextRect(x, y, w int) {
	if y < 0 || y >= len(s.text) {
		return
	}
	row := s.text[y]
	end := x + w
	if end > len(row) {
		end = len(row)
	}
	for i := x; i < end; i++ {
		if i >= 0 {
			row[i] = ' '
		}
	}
}

func (s *Screen) clearTextAll() {
	for y := range s.text {
		for x := range s.text[y] {
			s.text[y][x] = ' '
		}
	}
}

func (s *Screen) eraseDisplay(mode int) {
	w, h := s.buf.Width(), s.buf.Height()
	switch mode {
	case 0:
		for y := s.cursor.Y; y < h; y++ {
			s.buf.ClearRect(cellbuf.Rect(0, y, w, 1))
			s.clearTextRect(0, y, w)
		}
	case 1:
		for y := 0; y <= s.cursor.Y; y++ {
			s.buf.ClearRect(cellbuf.Rect(0, y, w, 1))
			s.clearTextRect(0, y, w)
		}
	case 2:
		s.buf.Clear()
		s.clearTextAll()
	}
}

func (s *Screen) eraseLine(mode int) {
	w := s.buf.Width()
	switch mode {
	case 0:
		s.buf.ClearRect(cellbuf.Rect(s.cursor.X, s.cursor.Y, w-s.cursor.X, 1))
		s.clearTextRect(s.cursor.X, s.cursor.Y, w-s.cursor.X)
	case 1:
		s.buf.ClearRect(cellbuf.Rect(0, s.cursor.Y, s.cursor.X+1, 1))
		s.clearTextRect(0, s.cursor.Y, s.cursor.X+1)
	case 2:
		s.buf.ClearRect(cellbuf.Rect(0, s.cursor.Y, w, 1))
		s.clearTextRect(0, s.cursor.Y, w)
	}
}

// applySGR hands the accumulated parameter list to cellbuf.ReadStyle, which
// covers the full SGR surface (bold/dim/italic/underline styles/blink/
// reverse/conceal/strikethrough, 16-color, 256-color, and truecolor)
// instead of just the basic foreground/background subset.
func (s *Screen) applySGR() {
	params := make(ansi.Params, len(s.params))
	for i, p := range s.params {
		if p < 0 {
			p = 0
		}
		params[i] = ansi.Param(p)
	}
	cellbuf.ReadStyle(params, &s.style)
}

// Hook implements vtparse.EventListener: opens a DCS passthrough.
func (s *Screen) Hook(b byte) {
	s.dcsFinal = b
	s.lastDCS.Reset()
}

// Put implements vtparse.EventListener: accumulates passthrough payload.
func (s *Screen) Put(b byte) { s.lastDCS.WriteByte(b) }

// Unhook implements vtparse.EventListener: closes the DCS passthrough. No
// Sixel/DECRQSS decoding happens here — that is explicitly out of scope.
func (s *Screen) Unhook() {
	if s.logger != nil {
		s.logger.Infof("dcs final=%q payload=%d bytes", string(s.dcsFinal), s.lastDCS.Len())
	}
}

func (s *Screen) StartOSC() { s.oscBuf.Reset() }
func (s *Screen) PutOSC(b byte) {
	s.oscBuf.WriteByte(b)
}

// DispatchOSC implements vtparse.EventListener. Only OSC 0/2 (set window
// title) is interpreted.
func (s *Screen) DispatchOSC() {
	payload := s.oscBuf.String()
	num, rest, ok := strings.Cut(payload, ";")
	if !ok {
		return
	}
	if num == "0" || num == "2" {
		s.title = rest
	}
}

func (s *Screen) StartAPC()     { s.apcBuf.Reset() }
func (s *Screen) PutAPC(b byte) { s.apcBuf.WriteByte(b) }
func (s *Screen) DispatchAPC()  { s.lastAPC = s.apcBuf.String() }

func (s *Screen) StartPM()     { s.pmBuf.Reset() }
func (s *Screen) PutPM(b byte) { s.pmBuf.WriteByte(b) }
func (s *Screen) DispatchPM()  { s.lastPM = s.pmBuf.String() }

// Error implements vtparse.EventListener.
func (s *Screen) Error(message string) {
	if s.logger != nil {
		s.logger.Infof("vtparse: %s", message)
	}
}

var _ vtparse.EventListener = (*Screen)(nil)
