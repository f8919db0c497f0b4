package krane

import "math/rand"

// sparkSalt separates the decoration stream from the layout stream.
const sparkSalt = 0x5eed5a17

// newStreams derives the two random streams of a run. Layout drives
// obstacle placement, sparks drives render jitter, so drawing never
// changes where obstacles appear.
func newStreams(seed int64) (layout, sparks *rand.Rand) {
	return rand.New(rand.NewSource(seed)), rand.New(rand.NewSource(seed ^ sparkSalt))
}
