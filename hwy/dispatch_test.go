package hwy

import "testing"

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.level.String(); got != tc.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", tc.level, got, tc.want)
		}
	}
}

func TestCurrentWidth(t *testing.T) {
	switch w := CurrentWidth(); w {
	case 16, 32, 64:
	default:
		t.Errorf("CurrentWidth() = %d, want 16, 32 or 64", w)
	}
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, CurrentLevel() = %q", CurrentName(), CurrentLevel())
	}
	if MaxLanes[uint8]() != CurrentWidth() {
		t.Errorf("MaxLanes[uint8]() = %d, want %d", MaxLanes[uint8](), CurrentWidth())
	}
	if MaxLanes[uint32]()*4 != CurrentWidth() {
		t.Errorf("MaxLanes[uint32]() = %d, want %d", MaxLanes[uint32](), CurrentWidth()/4)
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"0", false},
		{"yes", true},
	}
	for _, tc := range tests {
		t.Setenv("HWY_NO_SIMD", tc.val)
		if got := NoSimdEnv(); got != tc.want {
			t.Errorf("NoSimdEnv() with %q = %v, want %v", tc.val, got, tc.want)
		}
	}
}

func TestSetScalarMode(t *testing.T) {
	level, width, name := currentLevel, currentWidth, currentName
	defer func() { currentLevel, currentWidth, currentName = level, width, name }()

	setScalarMode()
	if CurrentLevel() != DispatchScalar || CurrentWidth() != 16 || CurrentName() != "scalar" {
		t.Errorf("setScalarMode: got %v/%d/%q", CurrentLevel(), CurrentWidth(), CurrentName())
	}
}
