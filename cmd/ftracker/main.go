package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/ftracker/internal/history"
	"github.com/claude/ftracker/internal/training"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// sensorPackage is one raw reading: a workout code plus its positional
// numeric payload.
type sensorPackage struct {
	workoutType string
	data        []float64
}

// packages is the fixed demonstration input, processed in order.
var packages = []sensorPackage{
	{"SWM", []float64{720, 1, 80, 25, 40}},
	{"RUN", []float64{15000, 1, 75}},
	{"WLK", []float64{9000, 1, 75, 180}},
}

func main() {
	historyDir := flag.String("history", "", "directory for the local session history database (optional)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("ftracker", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var hist *history.DB
	if *historyDir != "" {
		var err error
		hist, err = history.Open(*historyDir)
		if err != nil {
			log.Error("failed to open history database", "error", err)
			os.Exit(1)
		}
		defer hist.Close()
	}

	for _, pkg := range packages {
		tr, err := training.ReadPackage(pkg.workoutType, pkg.data)
		if err != nil {
			log.Error("failed to read sensor package", "workout_type", pkg.workoutType, "error", err)
			os.Exit(1)
		}

		info, err := training.ShowTrainingInfo(tr)
		if err != nil {
			log.Error("failed to compute training info", "workout_type", pkg.workoutType, "error", err)
			os.Exit(1)
		}

		fmt.Println(info.Message())

		if hist != nil {
			if _, err := hist.Record(info); err != nil {
				log.Error("failed to record session", "error", err)
				os.Exit(1)
			}
		}
	}
}
