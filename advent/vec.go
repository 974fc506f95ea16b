package main

type vec2 struct {
	x, y int64
}

func (v vec2) add(v1 vec2) vec2 {
	return vec2{v.x + v1.x, v.y + v1.y}
}

func (v vec2) scalarMul(n int64) vec2 {
	return vec2{v.x * n, v.y * n}
}

// sign returns v with each component clamped to -1, 0, or 1.
func (v vec2) sign() vec2 {
	return vec2{sign64(v.x), sign64(v.y)}
}

func sign64(n int64) int64 {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

var orthogonalDirs = []vec2{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// neighbors4 returns the in-bounds orthogonal neighbors of v on a w×h grid.
func (v vec2) neighbors4(w, h int64) []vec2 {
	nbs := make([]vec2, 0, 4)
	for _, d := range orthogonalDirs {
		nb := v.add(d)
		if nb.x >= 0 && nb.x < w && nb.y >= 0 && nb.y < h {
			nbs = append(nbs, nb)
		}
	}
	return nbs
}
