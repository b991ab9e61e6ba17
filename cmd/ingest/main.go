package main

import (
	"flag" // CLI flags

	"campuscard/internal/config" // Custom import path (Config)
	"campuscard/internal/db"     // Custom import path (Database)
	"campuscard/internal/ingest" // CSV batch loader

	"github.com/sirupsen/logrus"
)

// Main entry point for the batch CSV load
func main() {
	cfg := config.LoadConfig()
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	dataDir := flag.String("data-dir", cfg.DataDir, "directory containing the ingestion CSV files")
	flag.Parse()

	if *dataDir == "" {
		logrus.Fatal("no data directory: set --data-dir or DATA_DIR")
	}

	gdb, err := db.Open(cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	logrus.WithField("data_dir", *dataDir).Info("Starting ingestion")
	if err := ingest.New(gdb, *dataDir).Run(); err != nil {
		// The loader already rolled back; nothing was committed
		logrus.Fatalf("ingestion failed: %v", err)
	}
	logrus.Info("Ingestion completed.")
}
