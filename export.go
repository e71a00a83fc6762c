package impact

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// ExportConfig configures the trajectory export. An empty filename disables
// the export entirely.
type ExportConfig struct {
	Filename string
}

// IsUseless returns whether this configuration will output anything.
func (c ExportConfig) IsUseless() bool {
	return c.Filename == ""
}

// TrajectoryPoint is one exported integrator sample.
type TrajectoryPoint struct {
	JD float64   // Julian date of the sample
	R  []float64 // km, geocentric inertial
}

// StreamTrajectory drains the points channel into a CSV file in the
// configured output directory. It blocks until the channel is closed; run it
// in its own goroutine next to the integration, the way a host pairs a
// consumer with Simulation.Run.
func StreamTrajectory(conf ExportConfig, points <-chan TrajectoryPoint) error {
	if conf.IsUseless() {
		for range points {
			// Drain so the producer never blocks.
		}
		return nil
	}
	// The producer must never block on a consumer which exited early, so every
	// error return below still drains the channel.
	defer func() {
		for range points {
		}
	}()
	path := filepath.Join(impactConfig().outputDir, conf.Filename+".csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create trajectory file: %w", err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{"jd", "x_km", "y_km", "z_km"}); err != nil {
		return err
	}
	for pt := range points {
		rec := []string{
			strconv.FormatFloat(pt.JD, 'f', 8, 64),
			strconv.FormatFloat(pt.R[0], 'f', 4, 64),
			strconv.FormatFloat(pt.R[1], 'f', 4, 64),
			strconv.FormatFloat(pt.R[2], 'f', 4, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// ExportHistory replays a finished run's trajectory history through
// StreamTrajectory. The start Julian date and step size reconstruct the time
// axis of the append-only history.
func ExportHistory(conf ExportConfig, startJD, dt float64, history [][]float64) error {
	points := make(chan TrajectoryPoint, 1000)
	done := make(chan error, 1)
	go func() {
		done <- StreamTrajectory(conf, points)
	}()
	for i, r := range history {
		points <- TrajectoryPoint{startJD + float64(i+1)*dt/86400, r}
	}
	close(points)
	return <-done
}
