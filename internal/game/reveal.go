package game

// ticksPerTile is how many animation ticks each tile of a submitted row
// stays hidden before flipping to its color.
const ticksPerTile = 3

// reveal flips the tiles of the last submitted row one by one.
// The engine has already scored the row; this only delays the colors.
type reveal struct {
	row   int // history index being revealed
	width int // tiles in the row; 0 when idle
	shown int // tiles already flipped
	ticks int
}

func (r *reveal) start(row, width int) {
	*r = reveal{row: row, width: width}
}

func (r *reveal) active() bool {
	return r.width > 0 && r.shown < r.width
}

// step advances one tick and reports whether the animation is still running.
func (r *reveal) step() bool {
	if !r.active() {
		return false
	}
	r.ticks++
	if r.ticks >= ticksPerTile {
		r.ticks = 0
		r.shown++
	}
	return r.active()
}

// hidden reports whether the tile at (row, col) should still be drawn
// unjudged.
func (r *reveal) hidden(row, col int) bool {
	return r.active() && row == r.row && col >= r.shown
}

// finish shows every tile at once.
func (r *reveal) finish() {
	r.shown = r.width
}
