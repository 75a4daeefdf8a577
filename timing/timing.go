package timing

import "time"

var (
	startTime time.Time

	// fps is updated once per second
	fps            uint32
	framesThisSec  uint32
	lastFpsUpdated time.Time
)

// Init resets the clock. Elapsed time starts counting from this call.
func Init() {

	startTime = time.Now()
	lastFpsUpdated = startTime

	fps = 0
	framesThisSec = 0
}

func FrameEnded() {
	frameEndedAt(time.Now())
}

func frameEndedAt(t time.Time) {

	framesThisSec++
	if t.Sub(lastFpsUpdated) >= time.Second {
		fps = framesThisSec
		framesThisSec = 0
		lastFpsUpdated = t
	}
}

// Elapsed returns the time since Init. It uses the monotonic clock reading
// so wall clock changes never make it go backwards.
func Elapsed() time.Duration {
	return time.Since(startTime)
}

// FPS is the number of frames that ended during the last full second
func FPS() uint32 {
	return fps
}
