package draw

import (
	"math"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Cell is one terminal cell: a rune and the index of the style it is drawn with.
// Ch is 0 for the second column of a wide rune.
type Cell struct {
	Ch    rune
	Style int
}

// Canvas is a grid of styled cells with scaling from logical viewport
// coordinates to terminal cells. Render only rewrites rows that changed since
// the previous frame.
type Canvas struct {
	termWidth  int    // Actual terminal columns
	termHeight int    // Actual terminal rows
	cells      []Cell // Flat slice: [row * termWidth + col]
	prev       []Cell // Cells as last rendered
	dirty      bool   // Forces a full repaint on the next Render

	// Scaling from logical to cell coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // termHeight / logicalHeight

	// Offset for centering the render area when the terminal is larger than
	// the max resolution. 0-based columns/rows to skip.
	offsetCol int
	offsetRow int

	runBuf []rune // Reusable buffer for style runs
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal cells.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
// A size change forces a full repaint.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.cells = make([]Cell, termWidth*termHeight)
		c.prev = make([]Cell, termWidth*termHeight)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.dirty = true
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(termHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.dirty = true
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// ForceRedraw makes the next Render repaint every row, e.g. after the
// terminal was cleared.
func (c *Canvas) ForceRedraw() {
	c.dirty = true
}

// Clear fills the whole canvas with blanks in the given style.
func (c *Canvas) Clear(style int) {
	for i := range c.cells {
		c.cells[i] = Cell{Ch: BlockEmpty, Style: style}
	}
}

// Cell returns the cell at a 0-based position.
func (c *Canvas) Cell(col, row int) Cell {
	if col < 0 || col >= c.termWidth || row < 0 || row >= c.termHeight {
		return Cell{}
	}
	return c.cells[row*c.termWidth+col]
}

// Set stores a cell at a 0-based position, ignoring positions off the canvas.
func (c *Canvas) Set(col, row int, ch rune, style int) {
	if col < 0 || col >= c.termWidth || row < 0 || row >= c.termHeight {
		return
	}
	c.cells[row*c.termWidth+col] = Cell{Ch: ch, Style: style}
}

// RowSpan converts a logical vertical extent to the inclusive range of rows it
// covers. ok is false when the extent lies entirely off the canvas.
func (c *Canvas) RowSpan(top, height float64) (first, last int, ok bool) {
	return span(top, height, c.scaleY, c.termHeight)
}

// ColSpan converts a logical horizontal extent to the inclusive range of columns it covers.
func (c *Canvas) ColSpan(left, width float64) (first, last int, ok bool) {
	return span(left, width, c.scaleX, c.termWidth)
}

func span(start, length, scale float64, limit int) (first, last int, ok bool) {
	first = int(math.Floor(start * scale))
	last = int(math.Ceil((start+length)*scale)) - 1
	last = max(last, first) // Anything visible occupies at least one cell
	if last < 0 || first >= limit {
		return 0, 0, false
	}
	return max(first, 0), min(last, limit-1), true
}

// LogicalToTerminal converts logical coordinates to a 0-based cell position.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	return int(math.Floor(x * c.scaleX)), int(math.Floor(y * c.scaleY))
}

// Text writes s starting at a 0-based cell position. Wide runes take two
// columns. It returns the column after the last written rune.
func (c *Canvas) Text(col, row int, s string, style int) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.Set(col, row, r, style)
		if w == 2 {
			c.Set(col+1, row, 0, style)
		}
		col += w
	}
	return col
}

// TextCentered writes s horizontally centered on the given row.
func (c *Canvas) TextCentered(row int, s string, style int) {
	c.Text(CenterCol(c.termWidth, s), row, s, style)
}

// Render writes every changed row to cw, one style run at a time.
// styles is indexed by Cell.Style.
func (c *Canvas) Render(cw *ChunkWriter, styles []lipgloss.Style) {
	for row := 0; row < c.termHeight; row++ {
		start := row * c.termWidth
		line := c.cells[start : start+c.termWidth]
		if !c.dirty && slices.Equal(line, c.prev[start:start+c.termWidth]) {
			continue
		}

		cw.MoveCursor(1, row+1)
		for i := 0; i < len(line); {
			style := line[i].Style
			runs := c.runBuf[:0]
			for ; i < len(line) && line[i].Style == style; i++ {
				if line[i].Ch != 0 {
					runs = append(runs, line[i].Ch)
				}
			}
			c.runBuf = runs
			cw.WriteString(styleAt(styles, style).Render(string(runs)))
		}
		copy(c.prev[start:start+c.termWidth], line)
	}
	c.dirty = false
}

func styleAt(styles []lipgloss.Style, i int) lipgloss.Style {
	if i >= 0 && i < len(styles) {
		return styles[i]
	}
	return lipgloss.NewStyle()
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
func (c *Canvas) RenderBorder(cw *ChunkWriter, style lipgloss.Style) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars
	if !hasH && !hasV {
		return
	}

	// Canvas-relative 1-based positions just outside the render area
	left, right := 0, c.termWidth+1
	top, bottom := 0, c.termHeight+1

	if hasV {
		bar := repeatRune(BoxHorizontal, c.termWidth)
		topLine, bottomLine := bar, bar
		col := 1
		if hasH {
			topLine = string(BoxTopLeft) + bar + string(BoxTopRight)
			bottomLine = string(BoxBottomLeft) + bar + string(BoxBottomRight)
			col = left
		}
		cw.WriteAt(col, top, style.Render(topLine))
		cw.WriteAt(col, bottom, style.Render(bottomLine))
	}

	if hasH {
		side := style.Render(string(BoxVertical))
		for row := 1; row <= c.termHeight; row++ {
			cw.WriteAt(left, row, side)
			cw.WriteAt(right, row, side)
		}
	}
}

func repeatRune(r rune, n int) string {
	buf := make([]rune, n)
	for i := range buf {
		buf[i] = r
	}
	return string(buf)
}
