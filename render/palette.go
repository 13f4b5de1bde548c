package render

import (
	"hash/fnv"

	"github.com/lucasb-eyer/go-colorful"
)

// EntityColor derives a stable hue from the entity id.
// Keyed by id hash rather than render-order index so colors survive roster
// reordering. Hues land on a 30° lattice so neighbors stay distinguishable
// at terminal color depth
func EntityColor(id string) RGB {
	h := fnv.New32a()
	h.Write([]byte(id))
	hue := float64(h.Sum32()%12) * 30

	c := colorful.Hsv(hue, 0.75, 0.95)
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}
}
