package layertree

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Affine) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func TestAffineConstructors(t *testing.T) {
	assertMatrix(t, "translate", Translate(10, 20), Affine{1, 0, 0, 1, 10, 20})
	assertMatrix(t, "scale", Scale(2, 3), Affine{2, 0, 0, 3, 0, 0})
	// cos(90)=0, sin(90)=1 → a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", Rotate(math.Pi/2), Affine{0, 1, -1, 0, 0, 0})
}

func TestAffineMulIdentity(t *testing.T) {
	m := Affine{2, 0.5, -0.3, 3, 10, 20}
	assertMatrix(t, "I*m", Identity.Mul(m), m)
	assertMatrix(t, "m*I", m.Mul(Identity), m)
}

func TestAffineMulTranslations(t *testing.T) {
	assertMatrix(t, "t1*t2", Translate(10, 20).Mul(Translate(5, 7)), Translate(15, 27))
}

func TestAffineMulOrder(t *testing.T) {
	// Scale first, then translate.
	m := Translate(10, 0).Mul(Scale(2, 2))
	assertVec(t, "point", m.Apply(Vec2{1, 1}), Vec2{12, 2})
	// Translate first, then scale.
	m = Scale(2, 2).Mul(Translate(10, 0))
	assertVec(t, "point", m.Apply(Vec2{1, 1}), Vec2{22, 2})
}

func TestAffineInverse(t *testing.T) {
	m := Translate(30, -4).Mul(Rotate(0.7)).Mul(Scale(2, 0.5))
	assertMatrix(t, "m*inv", m.Mul(m.Inverse()), Identity)
	assertMatrix(t, "inv*m", m.Inverse().Mul(m), Identity)

	p := Vec2{3, 9}
	assertVec(t, "roundtrip", m.Inverse().Apply(m.Apply(p)), p)
}

func TestAffineSingular(t *testing.T) {
	m := Scale(0, 5)
	if m.IsInvertible() {
		t.Fatal("zero scale should not be invertible")
	}
	assertMatrix(t, "inverse of singular", m.Inverse(), Identity)
	assertNear(t, "det", m.Determinant(), 0)
	assertNear(t, "det scale", Scale(2, 3).Determinant(), 6)
}

func TestAffineApplyQuad(t *testing.T) {
	q := QuadFromBox(Bounds{Min: Vec2{0, 0}, Max: Vec2{2, 1}})
	got := Translate(1, 1).Mul(Scale(2, 2)).ApplyQuad(q)
	want := Quad{{1, 1}, {5, 1}, {5, 3}, {1, 3}}
	for i := range got {
		assertVec(t, "corner", got[i], want[i])
	}
}

func TestAffineTranslationAndApproxEqual(t *testing.T) {
	m := Translate(4, 5).Mul(Scale(3, 3))
	assertVec(t, "translation", m.Translation(), Vec2{4, 5})
	if !m.ApproxEqual(Affine{3, 0, 0, 3, 4, 5 + 1e-12}, 1e-9) {
		t.Error("ApproxEqual should tolerate tiny differences")
	}
	if m.ApproxEqual(Identity, 1e-9) {
		t.Error("ApproxEqual should reject different matrices")
	}
}
