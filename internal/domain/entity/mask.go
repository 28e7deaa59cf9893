package entity

// Mask бинарная маска H×W, хранится построчно.
type Mask struct {
	Width  int
	Height int
	bits   []bool
}

// NewMask создаёт пустую маску заданного размера.
func NewMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Mask{
		Width:  width,
		Height: height,
		bits:   make([]bool, width*height),
	}
}

// At возвращает значение пикселя; за границами: false.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.bits[y*m.Width+x]
}

// Set выставляет значение пикселя; за границами ничего не делает.
func (m *Mask) Set(x, y int, on bool) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	m.bits[y*m.Width+x] = on
}

// Count возвращает количество включённых пикселей.
func (m *Mask) Count() int {
	n := 0
	for _, on := range m.bits {
		if on {
			n++
		}
	}
	return n
}
