package vision

// Mask is a boolean matrix with the same layout as the tile grid.
type Mask struct {
	width  int
	height int
	cells  []bool
}

// NewMask creates a mask with every cell false.
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// Width returns the number of columns.
func (m *Mask) Width() int { return m.width }

// Height returns the number of rows.
func (m *Mask) Height() int { return m.height }

// At returns the cell value, false when out of bounds.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.cells[y*m.width+x]
}

func (m *Mask) set(x, y int) {
	m.cells[y*m.width+x] = true
}

func (m *Mask) fill(v bool) {
	for i := range m.cells {
		m.cells[i] = v
	}
}

// Count returns the number of true cells.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.cells {
		if v {
			n++
		}
	}
	return n
}

// Len returns the total number of cells.
func (m *Mask) Len() int {
	return len(m.cells)
}
