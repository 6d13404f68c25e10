package board

// AnimTag names the animation a piece is playing.
type AnimTag uint8

const (
	AnimIdle AnimTag = iota
	AnimBlink
	AnimExplode

	animTagCount
)

func (t AnimTag) String() string {
	switch t {
	case AnimIdle:
		return "idle"
	case AnimBlink:
		return "blink"
	case AnimExplode:
		return "explode"
	default:
		return "unknown"
	}
}

// Clip describes one animation: how many frames, how long each lasts, and
// whether it wraps around.
type Clip struct {
	Frames   int
	FrameDur float64
	Loop     bool
}

// Duration returns the length of one pass through the clip.
func (c Clip) Duration() float64 {
	return float64(c.Frames) * c.FrameDur
}

// AnimTable maps every tag to its clip.
type AnimTable [animTagCount]Clip

// NewAnimTable builds the clips from board params.
func NewAnimTable(p Params) AnimTable {
	return AnimTable{
		AnimIdle:    {Frames: 1, FrameDur: 1.0, Loop: true},
		AnimBlink:   {Frames: 1, FrameDur: p.BlinkFrame},
		AnimExplode: {Frames: p.ExplodeFrames, FrameDur: p.ExplodeFrame},
	}
}

// Animator is the animation clock of a single piece.
type Animator struct {
	table   *AnimTable
	tag     AnimTag
	elapsed float64
}

// Play restarts the clock on the given clip.
func (a *Animator) Play(tag AnimTag) {
	a.tag = tag
	a.elapsed = 0
}

// Advance moves the clock forward by dt seconds.
func (a *Animator) Advance(dt float64) {
	a.elapsed += dt
}

// Tag returns the clip being played.
func (a *Animator) Tag() AnimTag {
	return a.tag
}

// Frame returns the index of the current frame.
// Non-looping clips hold their last frame once finished.
func (a *Animator) Frame() int {
	clip := a.table[a.tag]
	if clip.Frames <= 1 || clip.FrameDur <= 0 {
		return 0
	}
	frame := int(a.elapsed / clip.FrameDur)
	if clip.Loop {
		return frame % clip.Frames
	}
	if frame >= clip.Frames {
		return clip.Frames - 1
	}
	return frame
}

// Finished reports whether a non-looping clip has played through.
func (a *Animator) Finished() bool {
	clip := a.table[a.tag]
	if clip.Loop {
		return false
	}
	return a.elapsed >= clip.Duration()
}
