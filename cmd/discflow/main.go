package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/discflow/internal/config"
	"github.com/san-kum/discflow/internal/disc"
	"github.com/san-kum/discflow/internal/export"
	"github.com/san-kum/discflow/internal/grid"
	"github.com/san-kum/discflow/internal/render"
	"github.com/san-kum/discflow/internal/storage"
	"github.com/san-kum/discflow/internal/tui"
	"github.com/san-kum/discflow/internal/units"
)

var (
	dataDir string
	mstar   float64
	incl    float64
	psi     float64
	pa      float64
	law     string
	// Grid extent and nodes
	halfSize float64
	nx       int
	ny       int
	// Emitting surface height law
	aspect float64
	flare  float64
	r0     float64
	// Config file and preset
	configFile string
	preset     string
	// Display
	side     string
	maxCols  int
	// SVG export
	outFile  string
	cellSize int
	// Grid filler
	rMin  float64
	rMax  float64
	nDum  int
	seed  int64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "discflow",
		Short: "protoplanetary disc velocity field toolkit",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".discflow", "data directory")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "compute and store a velocity field",
		RunE:  renderField,
	}
	renderCmd.Flags().Float64Var(&mstar, "mstar", config.DefaultMstar, "stellar mass (solar masses)")
	renderCmd.Flags().Float64Var(&incl, "incl", config.DefaultInclDeg, "inclination (degrees)")
	renderCmd.Flags().Float64Var(&psi, "psi", config.DefaultPsiDeg, "cone opening angle (degrees)")
	renderCmd.Flags().Float64Var(&pa, "pa", 0, "position angle (degrees)")
	renderCmd.Flags().StringVar(&law, "law", disc.LawKeplerian, "velocity law")
	renderCmd.Flags().Float64Var(&halfSize, "size", config.DefaultHalfSize, "sky-plane half size (au)")
	renderCmd.Flags().IntVar(&nx, "nx", config.DefaultNodes, "grid columns")
	renderCmd.Flags().IntVar(&ny, "ny", config.DefaultNodes, "grid rows")
	renderCmd.Flags().Float64Var(&aspect, "aspect", 0, "emitting surface aspect ratio z/R at r0 (0 keeps cone heights)")
	renderCmd.Flags().Float64Var(&flare, "flare", 1.25, "height law flaring exponent")
	renderCmd.Flags().Float64Var(&r0, "r0", 100, "height law reference radius (au)")
	renderCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	renderCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "display a stored velocity map in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().StringVar(&side, "side", string(disc.SideNear), "cone side (near|far)")
	showCmd.Flags().IntVar(&maxCols, "width", 72, "maximum map width in cells")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the major-axis velocity cut",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run fields to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a velocity map to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&side, "side", string(disc.SideNear), "cone side (near|far)")
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output file (defaults to <run_id>.svg)")
	exportSVGCmd.Flags().IntVar(&cellSize, "cell", 6, "pixel size per grid node")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("  %-10s incl=%.0f° psi=%.0f° %s\n", name, cfg.Incl, cfg.Psi, cfg.Law)
			}
			return nil
		},
	}

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "interactive velocity map viewer",
		RunE:  viewInteractive,
	}
	viewCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	viewCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	fillCmd := &cobra.Command{
		Use:   "fill",
		Short: "pad a grid with random dummy points",
		RunE:  fillGrid,
	}
	fillCmd.Flags().Float64Var(&halfSize, "size", config.DefaultHalfSize, "sky-plane half size (au)")
	fillCmd.Flags().IntVar(&nx, "nx", config.DefaultNodes, "grid columns")
	fillCmd.Flags().IntVar(&ny, "ny", config.DefaultNodes, "grid rows")
	fillCmd.Flags().Float64Var(&rMin, "rmin", 0, "inner shell radius (au)")
	fillCmd.Flags().Float64Var(&rMax, "rmax", 0, "outer shell radius (au, 0 = farthest grid point)")
	fillCmd.Flags().IntVar(&nDum, "n", 0, "dummy points to inject (0 = npoints/100)")
	fillCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	rootCmd.AddCommand(renderCmd, listCmd, showCmd, plotCmd, exportCmd, exportCSVCmd, exportSVGCmd, presetsCmd, viewCmd, fillCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig merges defaults, preset, config file and flags, in that
// order; explicitly set flags always win.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("mstar") {
		cfg.Mstar = mstar
	}
	if flags.Changed("incl") {
		cfg.Incl = incl
	}
	if flags.Changed("psi") {
		cfg.Psi = psi
	}
	if flags.Changed("pa") {
		cfg.PA = pa
	}
	if flags.Changed("law") {
		cfg.Law = law
	}
	if flags.Changed("size") {
		cfg.Grid.HalfSize = halfSize
	}
	if flags.Changed("nx") {
		cfg.Grid.NX = nx
	}
	if flags.Changed("ny") {
		cfg.Grid.NY = ny
	}
	if flags.Changed("aspect") {
		cfg.Surf.Aspect = aspect
	}
	if flags.Changed("flare") {
		cfg.Surf.Flare = flare
	}
	if flags.Changed("r0") {
		cfg.Surf.R0 = r0
	}

	return cfg, nil
}

func renderField(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Get2D = true

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	g, err := cfg.BuildGrid()
	if err != nil {
		return err
	}

	fmt.Printf("rendering %s field on %dx%d nodes...\n", cfg.Law, g.Nodes[0], g.Nodes[1])
	start := time.Now()

	m, err := disc.New(g, cfg.ToParams())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg, g, m)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n\n", runID)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIDE\tVMIN (km/s)\tVMAX (km/s)")
	for _, s := range disc.Sides {
		min, max := m.Velocity(s).Bounds()
		fmt.Fprintf(w, "%s\t%.3f\t%.3f\n", s, min/units.KmS, max/units.KmS)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tLAW\tMSTAR\tINCL\tPSI\tPA\tNODES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.1f°\t%.1f°\t%.1f°\t%dx%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Law,
			run.Mstar,
			run.Incl,
			run.Psi,
			run.PA,
			run.NX,
			run.NY,
		)
	}
	return w.Flush()
}

func loadRunMap(runID string, s disc.Side) (*storage.RunMetadata, [][]float64, disc.Field, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, nil, err
	}

	_, _, near, far, err := st.LoadFields(runID)
	if err != nil {
		return nil, nil, nil, err
	}

	field := near
	if s == disc.SideFar {
		field = far
	}

	matrix, err := disc.Rasterize(field, meta.NX, meta.NY)
	if err != nil {
		return nil, nil, nil, err
	}
	return meta, matrix, field, nil
}

func parseSide(s string) (disc.Side, error) {
	switch disc.Side(s) {
	case disc.SideNear, disc.SideFar:
		return disc.Side(s), nil
	}
	return "", fmt.Errorf("unknown side %q (near|far)", s)
}

func showRun(cmd *cobra.Command, args []string) error {
	s, err := parseSide(side)
	if err != nil {
		return err
	}

	meta, matrix, field, err := loadRunMap(args[0], s)
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s side, %s, incl=%.1f° psi=%.1f°\n\n",
		render.Title.Render(meta.ID), s, meta.Law, meta.Incl, meta.Psi)
	fmt.Print(render.Heatmap(matrix, maxCols))

	min, max := field.Bounds()
	fmt.Println()
	fmt.Println(render.Legend(min, max))
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	_, _, near, far, err := st.LoadFields(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("law: %s\n", meta.Law)
	fmt.Printf("major-axis cut across %.0f au\n\n", 2*meta.HalfSize)

	row := meta.NY / 2
	for _, cut := range []struct {
		name  string
		field disc.Field
	}{
		{"near side", near},
		{"far side", far},
	} {
		if (row+1)*meta.NX > len(cut.field) {
			return fmt.Errorf("run %s: fields shorter than node layout", runID)
		}
		data := make([]float64, meta.NX)
		for i := range data {
			data[i] = cut.field[row*meta.NX+i] / units.KmS
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(72),
			asciigraph.Caption(fmt.Sprintf("%s v_los (km/s)", cut.name)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	x, y, near, far, err := st.LoadFields(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"x_au", "y_au", "v_near", "v_far"}); err != nil {
		return err
	}
	for i := range x {
		row := []string{
			strconv.FormatFloat(x[i], 'f', 6, 64),
			strconv.FormatFloat(y[i], 'f', 6, 64),
			strconv.FormatFloat(near[i], 'f', 6, 64),
			strconv.FormatFloat(far[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	s, err := parseSide(side)
	if err != nil {
		return err
	}

	_, matrix, _, err := loadRunMap(args[0], s)
	if err != nil {
		return err
	}

	out := outFile
	if out == "" {
		out = args[0] + ".svg"
	}
	if err := os.WriteFile(out, []byte(export.MapToSVG(matrix, cellSize)), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}

func viewInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Get2D = true
	return tui.Run(cfg)
}

func fillGrid(cmd *cobra.Command, args []string) error {
	g, err := grid.NewCartesian(halfSize, nx, ny)
	if err != nil {
		return err
	}
	before := g.NPoints

	res, err := grid.NewFiller(g, seed).Spherical(rMin, rMax, nDum)
	if err != nil {
		return err
	}

	fmt.Printf("injected %d dummy points in shell [%.1f, %.1f] au\n", res.NDummy, res.RMin, res.RMax)
	fmt.Printf("grid points: %d -> %d\n", before, g.NPoints)
	return nil
}
