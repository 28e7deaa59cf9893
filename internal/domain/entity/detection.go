package entity

import "math"

// Pixel координата пикселя в пределах изображения.
type Pixel struct {
	X int
	Y int
}

// Blob максимальная 8-связная группа пикселей маски.
type Blob []Pixel

// Area возвращает площадь блоба в пикселях.
func (b Blob) Area() int {
	return len(b)
}

// Detection найденная площадка: центроид и радиус равновеликого круга.
type Detection struct {
	X float64 `json:"x"` // среднее по X
	Y float64 `json:"y"` // среднее по Y
	R float64 `json:"r"` // sqrt(площадь / π)
}

// Distance возвращает евклидово расстояние от центра детекции до точки.
func (d Detection) Distance(x, y float64) float64 {
	return math.Hypot(d.X-x, d.Y-y)
}
