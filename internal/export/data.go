package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/sim"
)

// TrajectoryData is the JSON shape of an exported run. Only samples are
// written; the parameters that produced them are not kept.
type TrajectoryData struct {
	Steps      int       `json:"steps"`
	Times      []float64 `json:"times"`
	Positions  []float64 `json:"positions"`
	Velocities []float64 `json:"velocities"`
}

func WriteCSV(w io.Writer, traj sim.Trajectory) error {
	if traj.Empty() {
		return fmt.Errorf("csv export: %w", dynamo.ErrEmptyTrajectory)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "position", "velocity"}); err != nil {
		return err
	}

	for i := range traj.Time {
		row := []string{
			strconv.FormatFloat(traj.Time[i], 'f', 6, 64),
			strconv.FormatFloat(traj.Position[i], 'f', 6, 64),
			strconv.FormatFloat(traj.Velocity[i], 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func WriteJSON(w io.Writer, traj sim.Trajectory) error {
	if traj.Empty() {
		return fmt.Errorf("json export: %w", dynamo.ErrEmptyTrajectory)
	}

	data := TrajectoryData{
		Steps:      traj.Steps(),
		Times:      traj.Time,
		Positions:  traj.Position,
		Velocities: traj.Velocity,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func SaveCSV(path string, traj sim.Trajectory) error {
	return saveFile(path, traj, WriteCSV)
}

func SaveJSON(path string, traj sim.Trajectory) error {
	return saveFile(path, traj, WriteJSON)
}

func saveFile(path string, traj sim.Trajectory, write func(io.Writer, sim.Trajectory) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := write(f, traj); err != nil {
		return err
	}
	return f.Close()
}
