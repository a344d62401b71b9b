package snap

func reversed(p Path) Path {
	r := make(Path, len(p))
	for i, j := 0, len(p)-1; j >= 0; i, j = i+1, j-1 {
		r[i] = p[j]
	}
	return r
}

// Join stitches path pieces that share end points into longer paths. Pieces
// may be reversed to fit. Whatever cannot be connected is returned as a
// separate path.
func Join(pieces []Path) []Path {
	in := make([]Path, 0, len(pieces))
	for _, piece := range pieces {
		if len(piece) > 0 {
			in = append(in, append(Path(nil), piece...))
		}
	}

	// Keep merging until nothing connects anymore.
	repeat := true
	for repeat {
		repeat = false

		for i := 0; i < len(in) && !repeat; i++ {
			start := in[i][0]
			end := in[i][len(in[i])-1]

			for j := 0; j < len(in); j++ {
				if i == j {
					continue
				}

				other := in[j]
				start2 := other[0]
				end2 := other[len(other)-1]

				switch {
				case end == start2:
					in[i] = append(in[i], other[1:]...)
				case end == end2:
					in[i] = append(in[i], reversed(other)[1:]...)
				case start == end2:
					in[i] = append(other, in[i][1:]...)
				case start == start2:
					in[i] = append(reversed(other), in[i][1:]...)
				default:
					continue
				}

				in = append(in[:j], in[j+1:]...)
				repeat = true
				break
			}
		}
	}
	return in
}
