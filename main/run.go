package main

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jsommer/windtunnel/internal/scenario"
	"github.com/jsommer/windtunnel/pkg/fluid"
)

func newRunCommand() *cobra.Command {
	var (
		scenarioPath string
		steps        int
		dt           float32
		reportEvery  int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Step the solver headlessly and report divergence/throughput",
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

			log.WithFields(logrus.Fields{
				"width": f.Width(), "height": f.Height(), "steps": steps,
			}).Info("starting headless run")

			start := time.Now()
			for i := 1; i <= steps; i++ {
				f.Step(dt)
				if reportEvery > 0 && i%reportEvery == 0 {
					elapsed := time.Since(start)
					log.WithFields(logrus.Fields{
						"step":          i,
						"max_div":       f.MaxDivergence(),
						"steps_per_sec": float64(i) / elapsed.Seconds(),
					}).Info("progress")
				}
			}
			log.WithField("total_elapsed", time.Since(start)).Info("run complete")
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "path to a TOML scenario file")
	cmd.Flags().IntVar(&steps, "steps", 500, "number of simulation steps")
	cmd.Flags().Float32Var(&dt, "dt", 0.016, "time step in seconds")
	cmd.Flags().IntVar(&reportEvery, "report-every", 50, "log progress every N steps (0 disables)")

	return cmd
}
