// Package storage persists rendered velocity fields as run directories:
// metadata.json for the parameters and fields.csv for the per-point data.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/discflow/internal/config"
	"github.com/san-kum/discflow/internal/disc"
	"github.com/san-kum/discflow/internal/grid"
	"github.com/san-kum/discflow/internal/units"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string                `json:"id"`
	Timestamp time.Time             `json:"timestamp"`
	Mstar     float64               `json:"mstar"` // solar masses
	Incl      float64               `json:"incl"`  // degrees
	Psi       float64               `json:"psi"`   // degrees
	PA        float64               `json:"pa"`    // degrees
	Law       string                `json:"law"`
	HalfSize  float64               `json:"half_size"` // au
	NX        int                   `json:"nx"`
	NY        int                   `json:"ny"`
	NPoints   int                   `json:"npoints"`
	VRange    map[string][2]float64 `json:"v_range"` // m/s per side
}

// Save writes one run directory: the render parameters and the flat
// near/far fields alongside the sky coordinates that produced them.
func (s *Store) Save(cfg *config.Config, g *grid.Grid, m *disc.Model) (string, error) {
	runID := fmt.Sprintf("%s_%d", cfg.Law, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	vrange := make(map[string][2]float64, len(disc.Sides))
	for _, side := range disc.Sides {
		min, max := m.Velocity(side).Bounds()
		vrange[string(side)] = [2]float64{min, max}
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Mstar:     cfg.Mstar,
		Incl:      cfg.Incl,
		Psi:       cfg.Psi,
		PA:        cfg.PA,
		Law:       cfg.Law,
		HalfSize:  cfg.Grid.HalfSize,
		NX:        g.Nodes[0],
		NY:        g.Nodes[1],
		NPoints:   g.NPoints,
		VRange:    vrange,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "fields.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"x_au", "y_au", "v_near", "v_far"}); err != nil {
		return "", err
	}

	near := m.Velocity(disc.SideNear)
	far := m.Velocity(disc.SideFar)
	for i := 0; i < g.NPoints; i++ {
		row := []string{
			strconv.FormatFloat(units.ToAU(g.XYZ[0][i]), 'f', 6, 64),
			strconv.FormatFloat(units.ToAU(g.XYZ[1][i]), 'f', 6, 64),
			strconv.FormatFloat(near[i], 'f', 6, 64),
			strconv.FormatFloat(far[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadFields reads a run's per-point data back: sky coordinates in AU and
// the near/far line-of-sight velocities in m/s.
func (s *Store) LoadFields(runID string) (x, y []float64, near, far disc.Field, err error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "fields.csv"))
	if err != nil {
		return nil, nil, nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if len(records) < 2 {
		return nil, nil, nil, nil, fmt.Errorf("run %s has no field data", runID)
	}

	n := len(records) - 1
	x = make([]float64, 0, n)
	y = make([]float64, 0, n)
	near = make(disc.Field, 0, n)
	far = make(disc.Field, 0, n)

	for _, record := range records[1:] {
		if len(record) != 4 {
			return nil, nil, nil, nil, fmt.Errorf("run %s: malformed row with %d columns", runID, len(record))
		}
		vals := make([]float64, 4)
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, nil, nil, fmt.Errorf("run %s: %w", runID, err)
			}
			vals[j] = v
		}
		x = append(x, vals[0])
		y = append(y, vals[1])
		near = append(near, vals[2])
		far = append(far, vals[3])
	}

	return x, y, near, far, nil
}
