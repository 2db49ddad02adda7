package components

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Swatches палитра цветового пикера
var Swatches = []string{
	"#222222",
	"#000000",
	"#FFFFFF",
	"#888888",
	"#FF0000",
	"#FF8800",
	"#FFD700",
	"#00AA00",
	"#00AAAA",
	"#0000FF",
	"#8A2BE2",
	"#FF00FF",
}

// PickColor возвращает соседний образец палитры относительно текущего цвета.
// Текущий цвет сопоставляется с ближайшим образцом; невалидная строка
// считается находящейся перед первым образцом.
func PickColor(current string, step int) string {
	n := len(Swatches)
	idx := nearestSwatch(current)
	if idx < 0 {
		if step > 0 {
			return Swatches[(step-1)%n]
		}
		idx = 0
	}
	next := ((idx+step)%n + n) % n
	return Swatches[next]
}

// IsHexColor сообщает, разбирается ли строка как #rrggbb
func IsHexColor(value string) bool {
	_, err := colorful.Hex(value)
	return err == nil
}

func nearestSwatch(value string) int {
	c, err := colorful.Hex(value)
	if err != nil {
		return -1
	}
	best := -1
	bestDist := 0.0
	for i, hex := range Swatches {
		sw, err := colorful.Hex(hex)
		if err != nil {
			continue
		}
		d := c.DistanceCIEDE2000(sw)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
