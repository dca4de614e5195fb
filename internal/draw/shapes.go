package draw

// FillRect fills a logical rectangle with ch in the given style.
// Rectangles partly off the canvas are clipped.
func (c *Canvas) FillRect(x, y, width, height float64, ch rune, style int) {
	firstRow, lastRow, ok := c.RowSpan(y, height)
	if !ok {
		return
	}
	firstCol, lastCol, ok := c.ColSpan(x, width)
	if !ok {
		return
	}
	for row := firstRow; row <= lastRow; row++ {
		for col := firstCol; col <= lastCol; col++ {
			c.Set(col, row, ch, style)
		}
	}
}

// FillRows fills every column of the rows covered by a logical vertical band.
// It returns the covered rows so callers can place labels inside the band.
func (c *Canvas) FillRows(y, height float64, ch rune, style int) (first, last int, ok bool) {
	first, last, ok = c.RowSpan(y, height)
	if !ok {
		return first, last, false
	}
	for row := first; row <= last; row++ {
		for col := 0; col < c.termWidth; col++ {
			c.Set(col, row, ch, style)
		}
	}
	return first, last, true
}

// FrameRect draws a box outline around a logical rectangle.
func (c *Canvas) FrameRect(x, y, width, height float64, style int) {
	firstRow, lastRow, ok := c.RowSpan(y, height)
	if !ok {
		return
	}
	firstCol, lastCol, ok := c.ColSpan(x, width)
	if !ok {
		return
	}
	for col := firstCol + 1; col < lastCol; col++ {
		c.Set(col, firstRow, BoxHorizontal, style)
		c.Set(col, lastRow, BoxHorizontal, style)
	}
	for row := firstRow + 1; row < lastRow; row++ {
		c.Set(firstCol, row, BoxVertical, style)
		c.Set(lastCol, row, BoxVertical, style)
	}
	c.Set(firstCol, firstRow, BoxTopLeft, style)
	c.Set(lastCol, firstRow, BoxTopRight, style)
	c.Set(firstCol, lastRow, BoxBottomLeft, style)
	c.Set(lastCol, lastRow, BoxBottomRight, style)
}
