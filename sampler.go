package touchstrip

// DefaultSampleCount is the number of points sampled along a touch's path
// between two frames.
const DefaultSampleCount = 10

// SamplePath fills buf with count points evenly spaced along the segment
// from prev to curr and returns it. The first point is one step away from
// prev and the last is exactly curr. A count below 1 is treated as 1.
// buf is grown as needed; pass the previous result to avoid allocation.
func SamplePath(prev, curr Vec2, count int, buf []Vec2) []Vec2 {
	if count < 1 {
		count = 1
	}
	if cap(buf) < count {
		buf = make([]Vec2, count)
	}
	buf = buf[:count]
	for i := 1; i < count; i++ {
		buf[i-1] = prev.Lerp(curr, float64(i)/float64(count))
	}
	buf[count-1] = curr
	return buf
}
