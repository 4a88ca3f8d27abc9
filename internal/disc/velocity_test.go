package disc

import (
	"math"
	"testing"

	"github.com/san-kum/discflow/internal/units"
)

func TestKeplerianMidplane_EdgeOnMajorAxis(t *testing.T) {
	// At incl = pi/2 and phi = 0 the angular factor is exactly 1, so the
	// projected speed equals the full Keplerian speed sqrt(GM/R).
	radii := []float64{10, 50, 100, 300}

	for _, au := range radii {
		r := au * units.AU
		s := Surface{
			X: []float64{r},
			Y: []float64{0},
			Z: []float64{0},
			R: []float64{r},
		}
		v := keplerianMidplane(units.MSun, math.Pi/2, s)

		want := math.Sqrt(units.G * units.MSun / r)
		if math.Abs(math.Abs(v[0])-want) > 1e-9*want {
			t.Errorf("R=%gau: |v| = %v, want %v", au, math.Abs(v[0]), want)
		}
		if v[0] > 0 {
			t.Errorf("R=%gau: velocity on +x major axis should be negative (receding), got %v", au, v[0])
		}
	}
}

func TestKeplerianVertical_ReducesToMidplaneAtZ0(t *testing.T) {
	r := 75 * units.AU
	s := Surface{
		X: []float64{0.6 * r},
		Y: []float64{0.8 * r},
		Z: []float64{0},
		R: []float64{r},
	}

	mid := keplerianMidplane(units.MSun, 0.5, s)
	vert := keplerianVertical(units.MSun, 0.5, s)

	if math.Abs(mid[0]-vert[0]) > 1e-9*math.Abs(mid[0]) {
		t.Errorf("z=0: midplane %v != vertical %v", mid[0], vert[0])
	}
}

func TestKeplerianVertical_SlowerAboveMidplane(t *testing.T) {
	// Lifting the emitting layer increases the spherical radius, so the
	// vertical law must report a smaller speed than the midplane law.
	r := 75 * units.AU
	s := Surface{
		X: []float64{r},
		Y: []float64{0},
		Z: []float64{0.3 * r},
		R: []float64{r},
	}

	mid := keplerianMidplane(units.MSun, 0.8, s)
	vert := keplerianVertical(units.MSun, 0.8, s)

	if math.Abs(vert[0]) >= math.Abs(mid[0]) {
		t.Errorf("vertical |v|=%v should be below midplane |v|=%v", math.Abs(vert[0]), math.Abs(mid[0]))
	}
}

func TestFaceOnFlatDisc_NearEqualsFar(t *testing.T) {
	// Face-on and flat the cone collapses onto the midplane; the two
	// sides are the same surface.
	g := testGrid(t, 60*units.AU, 8, 8)

	for _, law := range LawNames() {
		m, err := New(g, Params{Mstar: units.MSun, Incl: 0, Psi: UniformOpening(0), Law: law})
		if err != nil {
			t.Fatalf("law=%s: %v", law, err)
		}

		near, far := m.Velocity(SideNear), m.Velocity(SideFar)
		for i := range near {
			if near[i] != far[i] {
				t.Fatalf("law=%s point %d: near %v != far %v", law, i, near[i], far[i])
			}
		}
	}
}

func TestLawNames(t *testing.T) {
	names := LawNames()
	if len(names) != 2 {
		t.Fatalf("expected 2 laws, got %v", names)
	}
	if names[0] != LawKeplerian || names[1] != LawKeplerianVertical {
		t.Errorf("unexpected law names: %v", names)
	}
}

func TestField_Helpers(t *testing.T) {
	f := Field{-2, 0, 3.5}
	min, max := f.Bounds()
	if min != -2 || max != 3.5 {
		t.Errorf("Bounds() = (%v, %v), want (-2, 3.5)", min, max)
	}
	if !f.IsValid() {
		t.Error("finite field should be valid")
	}
	if (Field{1, math.NaN()}).IsValid() {
		t.Error("field with NaN should be invalid")
	}
}
