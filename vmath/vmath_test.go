package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func assertVec(t *testing.T, want, got Vec3F) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "X")
	assert.InDelta(t, want.Y, got.Y, eps, "Y")
	assert.InDelta(t, want.Z, got.Z, eps, "Z")
}

func TestV3FDirection(t *testing.T) {
	dir, ok := V3FDirection(Vec3F{1, 1, 0}, Vec3F{4, 5, 0})
	assert.True(t, ok)
	assertVec(t, Vec3F{0.6, 0.8, 0}, dir)

	_, ok = V3FDirection(Vec3F{2, 2, 2}, Vec3F{2, 2, 2})
	assert.False(t, ok, "coincident points have no direction")

	_, ok = V3FDirection(Vec3F{}, Vec3F{math.Inf(1), 0, 0})
	assert.False(t, ok, "infinite distance has no direction")
}

func TestV3FClampLen(t *testing.T) {
	assertVec(t, Vec3F{3, 4, 0}, V3FClampLen(Vec3F{3, 4, 0}, 10))
	assertVec(t, Vec3F{0.6, 0.8, 0}, V3FClampLen(Vec3F{3, 4, 0}, 1))
	assertVec(t, Vec3F{}, V3FClampLen(Vec3F{}, 1))
}

func TestV3FFinite(t *testing.T) {
	assert.True(t, V3FFinite(Vec3F{1, -2, 3}))
	assert.False(t, V3FFinite(Vec3F{math.NaN(), 0, 0}))
	assert.False(t, V3FFinite(Vec3F{0, math.Inf(-1), 0}))
}

func TestQuatYawForward(t *testing.T) {
	// Quarter turn counter-clockwise takes +Y to -X
	q := QuatFromYaw(math.Pi / 2)
	assertVec(t, Vec3F{-1, 0, 0}, QuatForward(q))
	assertVec(t, V3FForward, QuatForward(QuatIdentity))
}

func TestQuatLookAt(t *testing.T) {
	tests := []struct {
		name string
		dir  Vec3F
	}{
		{"forward", Vec3F{0, 1, 0}},
		{"right", Vec3F{1, 0, 0}},
		{"backward", Vec3F{0, -1, 0}},
		{"diagonal", V3FNormalize(Vec3F{1, -1, 0})},
		{"climb", V3FNormalize(Vec3F{0, 1, 1})},
		{"straight down", Vec3F{0, 0, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuatLookAt(tt.dir)
			assert.True(t, QuatFinite(q))
			assertVec(t, tt.dir, QuatForward(q))
		})
	}
}

func TestQuatNormalize(t *testing.T) {
	assert.Equal(t, QuatIdentity, QuatNormalize(Quat{}))
	q := QuatNormalize(Quat{W: 2})
	assert.InDelta(t, 1.0, q.W, eps)
}

func TestQuatMulComposesYaw(t *testing.T) {
	a := QuatFromYaw(0.3)
	b := QuatFromYaw(0.4)
	want := QuatForward(QuatFromYaw(0.7))
	assertVec(t, want, QuatForward(QuatMul(a, b)))
}
