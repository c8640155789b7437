package texture

import (
	"testing"

	"github.com/ajroetker/go-edgehist/hwy"
)

func TestAvgRoundsTiesUp(t *testing.T) {
	tests := []struct {
		a, b, want uint8
	}{
		{1, 2, 2},
		{2, 1, 2},
		{0, 1, 1},
		{254, 255, 255},
		{0, 255, 128},
		{3, 3, 3},
	}
	for _, tc := range tests {
		if got := avg(tc.a, tc.b); got != tc.want {
			t.Errorf("avg(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestScalarMatchesVectorAvg(t *testing.T) {
	lanes := hwy.MaxLanes[uint8]()
	a := make([]uint8, lanes)
	b := make([]uint8, lanes)
	out := make([]uint8, lanes)
	for hi := 0; hi < 256; hi++ {
		for i := range lanes {
			a[i] = uint8(hi)
			b[i] = uint8((hi + i*17) % 256)
		}
		hwy.Store(hwy.Avg(hwy.Load(a), hwy.Load(b)), out)
		for i := range lanes {
			if want := avg(a[i], b[i]); out[i] != want {
				t.Fatalf("hwy.Avg(%d, %d) = %d, scalar %d", a[i], b[i], out[i], want)
			}
		}
	}
}

func TestAbsSecondDerivative(t *testing.T) {
	// 3x3 image, center at index 4.
	tests := []struct {
		name string
		img  []uint8
		want uint8
	}{
		{"flat", []uint8{9, 9, 9, 9, 9, 9, 9, 9, 9}, 0},
		{"spike", []uint8{0, 0, 0, 0, 200, 0, 0, 0, 0}, 200},
		{"horizontal_ramp", []uint8{0, 0, 0, 10, 20, 30, 0, 0, 0}, 20},
		{"vertical_wins", []uint8{0, 0, 0, 4, 4, 4, 0, 100, 0}, 46},
		{"tie_rounds_up", []uint8{0, 1, 0, 0, 0, 0, 0, 2, 0}, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := absSecondDerivative(tc.img, 4, 1, 3); got != tc.want {
				t.Errorf("absSecondDerivative = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestKernelsMatchScalar(t *testing.T) {
	rng := newRNG()
	lanes := hwy.MaxLanes[uint8]()
	width, height := 3*lanes, 7
	src := randomImage(rng, width, height, width, 0)

	for _, kc := range kernels {
		for step := 1; step <= 3; step++ {
			rowStep := step * width
			for p := 3*width + step; p+lanes+step <= 4*width; p += 5 {
				dst := make([]uint8, lanes)
				kc.k.block(src, p, step, rowStep, dst)
				for i := range lanes {
					if want := absSecondDerivative(src, p+i, step, rowStep); dst[i] != want {
						t.Fatalf("%s kernel step %d at %d: got %d, want %d", kc.name, step, p+i, dst[i], want)
					}
				}
			}
		}
	}
}
