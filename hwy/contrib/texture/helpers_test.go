package texture

import (
	"math/rand"

	"github.com/ajroetker/go-edgehist/hwy"
)

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// randomImage returns a width x height image with the given stride. The
// padding between width and stride is filled with pad so tests can detect
// reads outside the image.
func randomImage(rng *rand.Rand, width, height, stride int, pad uint8) []uint8 {
	src := make([]uint8, (height-1)*stride+width)
	for y := range height {
		row := src[y*stride:]
		for x := range width {
			row[x] = uint8(rng.Intn(256))
		}
		for x := width; x < stride && y*stride+x < len(src); x++ {
			row[x] = pad
		}
	}
	return src
}

// alignedImage is randomImage placed at a vector-aligned address with a
// vector-aligned stride, so the aligned kernel is selected.
func alignedImage(rng *rand.Rand, width, height int) ([]uint8, int) {
	lanes := hwy.MaxLanes[uint8]()
	stride := hwy.AlignHi(width, lanes)
	img := randomImage(rng, width, height, stride, 0)

	backing := make([]uint8, len(img)+lanes)
	off := 0
	for !hwy.IsAlignedPtr(backing[off:]) {
		off++
	}
	src := backing[off : off+len(img)]
	copy(src, img)
	return src, stride
}

// naiveHistogram is an independent single-accumulator reference written
// with int arithmetic.
func naiveHistogram(src []uint8, width, height, stride, step, indent int) Histogram {
	var hist Histogram
	at := func(x, y int) int { return int(src[y*stride+x]) }
	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}
	for y := indent; y < height-indent; y++ {
		for x := indent; x < width-indent; x++ {
			c := at(x, y)
			sdX := abs((at(x-step, y)+at(x+step, y)+1)/2 - c)
			sdY := abs((at(x, y-step)+at(x, y+step)+1)/2 - c)
			hist[max(sdX, sdY)]++
		}
	}
	return hist
}
