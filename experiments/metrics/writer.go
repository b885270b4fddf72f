package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type AgentConfig struct {
	ID             int
	Selector       string
	Goroutines     int
	SamplesPerMove int // 0 for the selector default
	Cutoff         int
}

type GameRecord struct {
	ID    int
	Agent int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type ThroughputRecord struct {
	Goroutines int
	SearchMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> to hold the records of one run.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "selector", "goroutines", "samples_per_move", "cutoff"}
	rows := make([][]string, len(configs))
	for i, config := range configs {
		rows[i] = []string{
			strconv.Itoa(config.ID),
			config.Selector,
			strconv.Itoa(config.Goroutines),
			strconv.Itoa(config.SamplesPerMove),
			strconv.Itoa(config.Cutoff),
		}
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent", "seed", "outcome", "moves", "progress", "start_time", "end_time", "duration"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent),
			strconv.FormatUint(record.Seed, 10),
			record.Outcome,
			strconv.Itoa(record.TotalMoves),
			formatFloat(record.Progress),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "move", "shortcut", "early_win", "best_win_rate", "worst_win_rate",
		"candidates", "duration", "episodes", "wins", "full_playouts", "cutoffs"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Move,
			strconv.FormatBool(record.Shortcut),
			strconv.FormatBool(record.EarlyWin),
			formatFloat(record.BestWinRate),
			formatFloat(record.WorstWinRate),
			strconv.Itoa(record.Candidates),
			record.Duration.String(),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.Wins),
			strconv.Itoa(record.FullPlayouts),
			strconv.Itoa(record.Cutoffs),
		}
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) WriteThroughputRecords(records []ThroughputRecord) error {
	header := []string{"goroutines", "selector", "duration", "episodes", "episodes_per_second"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.Goroutines),
			record.Selector,
			record.Duration.String(),
			strconv.Itoa(record.Episodes),
			formatFloat(record.EpisodesPerSecond()),
		}
	}
	return w.write("throughput.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}
