package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"

	"github.com/jsommer/windtunnel/internal/scenario"
	"github.com/jsommer/windtunnel/pkg/fluid"
)

const (
	windowWidth  = 960
	windowHeight = 600
)

// tunnelGame is the ebiten harness around a FluidSolver: it steps the
// solver once per Update and renders the selected field as a false-color
// image each Draw.
type tunnelGame struct {
	solver *fluid.FluidSolver
	dt     float32
	mode   fieldMode
	pixels []byte
	canvas *ebiten.Image
}

func newTunnelGame(f *fluid.FluidSolver, dt float32) *tunnelGame {
	return &tunnelGame{
		solver: f,
		dt:     dt,
		mode:   fieldVelocity,
		pixels: make([]byte, f.Width()*f.Height()*4),
		canvas: ebiten.NewImage(f.Width(), f.Height()),
	}
}

func (g *tunnelGame) Update() error {
	g.solver.Step(g.dt)
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.mode = (g.mode + 1) % 3
	}
	return nil
}

func (g *tunnelGame) Draw(screen *ebiten.Image) {
	w, h := g.solver.Width(), g.solver.Height()
	solid := g.solver.Solid()

	switch g.mode {
	case fieldVelocity:
		mag := g.solver.VelocityMagnitude()
		g.fillPixels(w, h, solid, func(idx int) color.RGBA {
			return getSciValue(mag.Raw()[idx], 0, 3)
		})
	case fieldDye:
		dye := g.solver.Dye()
		g.fillPixels(w, h, solid, func(idx int) color.RGBA {
			return getSciValue(dye[idx], 0, 1)
		})
	case fieldPressure:
		pressure := g.solver.Pressure()
		g.fillPixels(w, h, solid, func(idx int) color.RGBA {
			return getSciValue(pressure[idx], -1, 1)
		})
	}

	g.canvas.WritePixels(g.pixels)
	op := &ebiten.DrawImageOptions{}
	sx := float64(windowWidth) / float64(w)
	sy := float64(windowHeight-40) / float64(h)
	op.GeoM.Scale(sx, sy)
	screen.DrawImage(g.canvas, op)

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"windtunnel  field=%s (tab to switch)  fps=%0.1f  t=%s",
		g.mode, ebiten.ActualFPS(), time.Now().Format("15:04:05")))
}

func (g *tunnelGame) fillPixels(w, h int, solid []float32, colorAt func(idx int) color.RGBA) {
	for idx := 0; idx < w*h; idx++ {
		c := colorAt(idx)
		if solid[idx] > 0 {
			c = obstacleColor
		}
		o := idx * 4
		g.pixels[o] = c.R
		g.pixels[o+1] = c.G
		g.pixels[o+2] = c.B
		g.pixels[o+3] = c.A
	}
}

func (g *tunnelGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}

func newViewCommand() *cobra.Command {
	var (
		scenarioPath string
		dt           float32
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open a windowed viewer of the running simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := scenario.Default()
			if scenarioPath != "" {
				loaded, err := scenario.Load(scenarioPath)
				if err != nil {
					return err
				}
				cfg = loaded
				log.WithField("path", scenarioPath).Info("loaded scenario")
			}

			f, err := fluid.New(cfg.Width, cfg.Height)
			if err != nil {
				return err
			}
			scenario.Apply(cfg, f)

			ebiten.SetWindowSize(windowWidth, windowHeight)
			ebiten.SetWindowTitle("windtunnel")

			return ebiten.RunGame(newTunnelGame(f, dt))
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "path to a TOML scenario file")
	cmd.Flags().Float32Var(&dt, "dt", 0.016, "time step in seconds")

	return cmd
}
