package parallel

import (
	"github.com/gogpu/lattice"
)

// ForEach calls fn on every tile of t and waits.
//
// Tiles are disjoint, so fn may write into a shared output as long as it
// only touches the positions of its own tile. A nil pool processes the
// tiles sequentially in outer order.
func ForEach[R any](p *Pool, t *lattice.Tiling[R], fn func(R)) {
	tiles := t.Tiles()
	if p == nil || p.Size() == 1 || len(tiles) == 1 {
		for _, tile := range tiles {
			fn(tile)
		}
		return
	}

	lattice.Logger().Debug("parallel: scheduling tiles",
		"tiles", len(tiles),
		"outer", t.Shape().String(),
		"workers", p.Size())
	p.Run(len(tiles), func(i int) { fn(tiles[i]) })
}
