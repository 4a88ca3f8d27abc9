// Package tui is an interactive terminal viewer for the disc velocity
// field: adjust the viewing geometry and watch the projected map update.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/discflow/internal/config"
	"github.com/san-kum/discflow/internal/disc"
	"github.com/san-kum/discflow/internal/render"
)

const (
	inclStep = 5.0
	psiStep  = 2.5
	paStep   = 15.0
	maxIncl  = 85.0
	maxPsi   = 35.0
)

type viewer struct {
	cfg     *config.Config
	side    disc.Side
	heatmap string
	vmin    float64
	vmax    float64
	err     error
	width   int
}

// Run starts the interactive viewer with the given starting configuration.
func Run(cfg *config.Config) error {
	v := &viewer{cfg: cfg, side: disc.SideNear, width: 100}
	v.recompute()

	_, err := tea.NewProgram(v, tea.WithAltScreen()).Run()
	return err
}

func (v *viewer) Init() tea.Cmd { return nil }

func (v *viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return v, tea.Quit
		case "up":
			v.cfg.Incl = clamp(v.cfg.Incl+inclStep, 0, maxIncl)
		case "down":
			v.cfg.Incl = clamp(v.cfg.Incl-inclStep, 0, maxIncl)
		case "right":
			v.cfg.Psi = clamp(v.cfg.Psi+psiStep, 0, maxPsi)
		case "left":
			v.cfg.Psi = clamp(v.cfg.Psi-psiStep, 0, maxPsi)
		case "a":
			v.cfg.PA += paStep
			if v.cfg.PA >= 360 {
				v.cfg.PA -= 360
			}
		case "A":
			v.cfg.PA -= paStep
			if v.cfg.PA < 0 {
				v.cfg.PA += 360
			}
		case "v":
			if v.cfg.Law == disc.LawKeplerian {
				v.cfg.Law = disc.LawKeplerianVertical
			} else {
				v.cfg.Law = disc.LawKeplerian
			}
		case "s":
			if v.side == disc.SideNear {
				v.side = disc.SideFar
			} else {
				v.side = disc.SideNear
			}
		default:
			return v, nil
		}
		v.recompute()
		return v, nil
	}
	return v, nil
}

func (v *viewer) recompute() {
	v.err = nil

	g, err := v.cfg.BuildGrid()
	if err != nil {
		v.err = err
		return
	}
	m, err := disc.New(g, v.cfg.ToParams())
	if err != nil {
		v.err = err
		return
	}

	matrix := m.VelocityMap(v.side)
	if matrix == nil {
		matrix, err = disc.Rasterize(m.Velocity(v.side), g.Nodes[0], g.Nodes[1])
		if err != nil {
			v.err = err
			return
		}
	}

	maxCols := v.width / 2
	if maxCols < 16 {
		maxCols = 16
	}
	v.heatmap = render.Heatmap(matrix, maxCols)
	v.vmin, v.vmax = m.Velocity(v.side).Bounds()
}

func (v *viewer) View() string {
	var b strings.Builder

	b.WriteString(render.Title.Render("discflow"))
	b.WriteString(render.Subtle.Render(fmt.Sprintf("  %s side, %s", v.side, v.cfg.Law)))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(fmt.Sprintf("error: %v\n\n", v.err))
	} else {
		b.WriteString(v.heatmap)
		b.WriteString("\n")
		b.WriteString(render.Legend(v.vmin, v.vmax))
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		render.Label.Render("incl"), render.Value.Render(fmt.Sprintf("%.1f°", v.cfg.Incl)),
		render.Label.Render("psi"), render.Value.Render(fmt.Sprintf("%.1f°", v.cfg.Psi)),
		render.Label.Render("pa"), render.Value.Render(fmt.Sprintf("%.1f°", v.cfg.PA)),
	))
	b.WriteString(render.KeyHint.Render("↑/↓ incl · ←/→ psi · a/A pa · v law · s side · q quit"))
	b.WriteString("\n")

	return b.String()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
