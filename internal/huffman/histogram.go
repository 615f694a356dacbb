package huffman

// Histogram counts the occurrences of each byte value.
// h[v] is the number of samples equal to v.
type Histogram [256]int

// CountSamples builds a histogram of the given samples.
func CountSamples(samples []byte) Histogram {
	var h Histogram
	for _, s := range samples {
		h[s]++
	}
	return h
}

// Total reports the number of samples counted in the histogram.
func (h *Histogram) Total() int {
	var total int
	for _, n := range h {
		total += n
	}
	return total
}

// Distinct reports the number of values with a positive count.
func (h *Histogram) Distinct() int {
	var n int
	for _, count := range h {
		if count > 0 {
			n++
		}
	}
	return n
}

// Max reports the largest count in the histogram.
func (h *Histogram) Max() int {
	var most int
	for _, count := range h {
		most = max(most, count)
	}
	return most
}
