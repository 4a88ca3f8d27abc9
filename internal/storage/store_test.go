package storage

import (
	"math"
	"testing"

	"github.com/san-kum/discflow/internal/config"
	"github.com/san-kum/discflow/internal/disc"
)

func saveTestRun(t *testing.T, st *Store) (string, *config.Config, *disc.Model) {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Grid = config.GridConfig{HalfSize: 100, NX: 6, NY: 6}
	cfg.Incl = 40
	cfg.Psi = 12

	g, err := cfg.BuildGrid()
	if err != nil {
		t.Fatal(err)
	}
	m, err := disc.New(g, cfg.ToParams())
	if err != nil {
		t.Fatal(err)
	}

	runID, err := st.Save(cfg, g, m)
	if err != nil {
		t.Fatal(err)
	}
	return runID, cfg, m
}

func TestSaveAndLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runID, cfg, _ := saveTestRun(t, st)

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.ID != runID {
		t.Errorf("ID = %s, want %s", meta.ID, runID)
	}
	if meta.Incl != cfg.Incl || meta.Psi != cfg.Psi {
		t.Errorf("angles not round-tripped: %+v", meta)
	}
	if meta.NPoints != 36 {
		t.Errorf("NPoints = %d, want 36", meta.NPoints)
	}
	if len(meta.VRange) != 2 {
		t.Errorf("expected near and far velocity ranges, got %v", meta.VRange)
	}
}

func TestLoadFields(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runID, _, m := saveTestRun(t, st)

	x, y, near, far, err := st.LoadFields(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(x) != 36 || len(y) != 36 || len(near) != 36 || len(far) != 36 {
		t.Fatalf("field lengths: %d %d %d %d, want 36 each", len(x), len(y), len(near), len(far))
	}

	// CSV round-trip keeps 6 decimals
	want := m.Velocity(disc.SideNear)
	for i := range near {
		if math.Abs(near[i]-want[i]) > 1e-5 {
			t.Fatalf("near[%d] = %v, want %v", i, near[i], want[i])
		}
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("fresh store should list no runs, got %d", len(runs))
	}

	runID, _, _ := saveTestRun(t, st)

	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].ID != runID {
		t.Errorf("List() = %v, want single run %s", runs, runID)
	}
}

func TestList_MissingDir(t *testing.T) {
	st := New("/nonexistent/discflow-test")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("missing base dir should not error: %v", err)
	}
	if len(runs) != 0 {
		t.Error("expected empty list")
	}
}

func TestLoad_Missing(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); err == nil {
		t.Error("expected error for missing run")
	}
	if _, _, _, _, err := st.LoadFields("nope"); err == nil {
		t.Error("expected error for missing fields")
	}
}
