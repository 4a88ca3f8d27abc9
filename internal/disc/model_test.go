package disc

import (
	"math"
	"testing"

	"github.com/san-kum/discflow/internal/grid"
	"github.com/san-kum/discflow/internal/units"
)

func singlePointGrid(x, y float64) *grid.Grid {
	return &grid.Grid{
		NPoints: 1,
		XYZ: [3][]float64{
			{x},
			{y},
			{0},
		},
		Nodes: [2]int{1, 1},
	}
}

func TestNew_Validation(t *testing.T) {
	g := &grid.Grid{
		NPoints: 4,
		XYZ: [3][]float64{
			{1, 2, 3, 4},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
		Nodes: [2]int{2, 2},
	}

	tests := []struct {
		name   string
		params Params
	}{
		{"unknown law", Params{Mstar: units.MSun, Incl: 0.3, Law: "keplerian_3d"}},
		{"zero mass", Params{Mstar: 0, Incl: 0.3}},
		{"negative mass", Params{Mstar: -units.MSun, Incl: 0.3}},
		{"edge-on inclination", Params{Mstar: units.MSun, Incl: math.Pi / 2}},
		{"opening shape mismatch", Params{Mstar: units.MSun, Incl: 0.3, Psi: PerPointOpening([]float64{0.1, 0.1})}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(g, tt.params); err == nil {
				t.Error("expected construction error")
			}
		})
	}
}

func TestNew_DefaultsToKeplerian(t *testing.T) {
	g := singlePointGrid(40*units.AU, 10*units.AU)
	m, err := New(g, Params{Mstar: units.MSun, Incl: 0.4})
	if err != nil {
		t.Fatal(err)
	}
	if !m.Velocity(SideNear).IsValid() {
		t.Error("default law produced invalid field")
	}
}

// TestRegression_SinglePoint pins the full pipeline for one sky point at
// x'=100au, y'=0 with Mstar = 1 Msun, incl = 30deg, psi = 10deg, PA = 0.
// For y'=0 the quadratic collapses to a closed form,
//
//	t = x * sin(psi) * sqrt(2 / (cos(2*incl) + cos(2*psi)))
//
// from which the expected coordinates and velocity follow directly.
func TestRegression_SinglePoint(t *testing.T) {
	x := 100 * units.AU
	incl := 30 * math.Pi / 180
	psi := 10 * math.Pi / 180

	g := singlePointGrid(x, 0)
	m, err := New(g, Params{Mstar: units.MSun, Incl: incl, Psi: UniformOpening(psi)})
	if err != nil {
		t.Fatal(err)
	}

	tRoot := x * math.Sin(psi) * math.Sqrt(2/(math.Cos(2*incl)+math.Cos(2*psi)))
	wantY := tRoot * math.Sin(incl)
	wantR := math.Hypot(x, wantY)
	wantZ := tRoot * math.Cos(incl)

	phi := math.Atan2(wantY, x)
	wantV := -math.Sin(incl) * math.Cos(phi) * math.Sqrt(units.G*units.MSun/wantR)

	near := m.Surface(SideNear)
	far := m.Surface(SideFar)

	checks := []struct {
		name      string
		got, want float64
	}{
		{"near y", near.Y[0], wantY},
		{"near z", near.Z[0], wantZ},
		{"near R", near.R[0], wantR},
		{"far y", far.Y[0], -wantY},
		{"far z", far.Z[0], -wantZ},
		{"far R", far.R[0], wantR},
		{"near v", m.Velocity(SideNear)[0], wantV},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-9*math.Abs(c.want) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	// Recorded reference values for the same fixture.
	refs := []struct {
		name     string
		got      float64
		want     float64
		tol      float64
	}{
		{"near R (au)", near.R[0] / units.AU, 100.522, 0.01},
		{"near z (au)", near.Z[0] / units.AU, 17.725, 0.01},
		{"near v (m/s)", m.Velocity(SideNear)[0], -1477.9, 1.5},
	}
	for _, r := range refs {
		if math.Abs(r.got-r.want) > r.tol {
			t.Errorf("%s = %v, want %v +- %v", r.name, r.got, r.want, r.tol)
		}
	}
}

func TestPAInvariance(t *testing.T) {
	// Rotating the sky grid by theta and telling the model PA = theta must
	// reproduce the PA = 0 fields of the unrotated grid.
	theta := 0.73
	base := testGrid(t, 90*units.AU, 8, 8)

	rotated := &grid.Grid{NPoints: base.NPoints, Nodes: base.Nodes}
	rotated.XYZ[0] = make([]float64, base.NPoints)
	rotated.XYZ[1] = make([]float64, base.NPoints)
	rotated.XYZ[2] = make([]float64, base.NPoints)
	sinT, cosT := math.Sincos(theta)
	for i := 0; i < base.NPoints; i++ {
		x, y := base.XYZ[0][i], base.XYZ[1][i]
		rotated.XYZ[0][i] = cosT*x - sinT*y
		rotated.XYZ[1][i] = sinT*x + cosT*y
	}

	params := Params{Mstar: units.MSun, Incl: 0.5, Psi: UniformOpening(0.2)}
	ref, err := New(base, params)
	if err != nil {
		t.Fatal(err)
	}

	params.PA = theta
	got, err := New(rotated, params)
	if err != nil {
		t.Fatal(err)
	}

	for _, side := range Sides {
		sr, sg := ref.Surface(side), got.Surface(side)
		vr, vg := ref.Velocity(side), got.Velocity(side)
		for i := range vr {
			if math.Abs(sg.R[i]-sr.R[i]) > 1e-9*sr.R[i] {
				t.Fatalf("side=%s point %d: R %v != %v", side, i, sg.R[i], sr.R[i])
			}
			if math.Abs(sg.Z[i]-sr.Z[i]) > 1e-9*math.Abs(sr.Z[i])+1e-6 {
				t.Fatalf("side=%s point %d: z %v != %v", side, i, sg.Z[i], sr.Z[i])
			}
			if math.Abs(vg[i]-vr[i]) > 1e-9*math.Abs(vr[i])+1e-9 {
				t.Fatalf("side=%s point %d: v %v != %v", side, i, vg[i], vr[i])
			}
		}
	}
}

func TestGet2D(t *testing.T) {
	g := testGrid(t, 60*units.AU, 4, 3)

	m, err := New(g, Params{Mstar: units.MSun, Incl: 0.4, Psi: UniformOpening(0.1), Get2D: true})
	if err != nil {
		t.Fatal(err)
	}

	for _, side := range Sides {
		matrix := m.VelocityMap(side)
		if len(matrix) != 3 {
			t.Fatalf("side=%s: expected 3 rows, got %d", side, len(matrix))
		}
		for j, row := range matrix {
			if len(row) != 4 {
				t.Fatalf("side=%s row %d: expected 4 cols, got %d", side, j, len(row))
			}
		}

		flat := m.Velocity(side)
		for k, v := range flat {
			if matrix[k/4][k%4] != v {
				t.Fatalf("side=%s: flat[%d] not at row %d col %d", side, k, k/4, k%4)
			}
		}
	}
}

func TestVelocityMap_NilWithout2D(t *testing.T) {
	g := testGrid(t, 60*units.AU, 4, 4)
	m, err := New(g, Params{Mstar: units.MSun, Incl: 0.4, Psi: UniformOpening(0.1)})
	if err != nil {
		t.Fatal(err)
	}
	if m.VelocityMap(SideNear) != nil {
		t.Error("expected nil map when Get2D is off")
	}
}

func TestGet2D_LayoutMismatch(t *testing.T) {
	g := singlePointGrid(50*units.AU, 0)
	g.Nodes = [2]int{2, 2} // claims 4 nodes for 1 point

	_, err := New(g, Params{Mstar: units.MSun, Incl: 0.4, Psi: UniformOpening(0.1), Get2D: true})
	if err == nil {
		t.Fatal("expected layout error")
	}
}
