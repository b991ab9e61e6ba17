package main

import (
	"campuscard/internal/config" // Custom import path (Config)
	"campuscard/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus"
)

// Main entry point for the destructive schema reset.
// Drops every table and recreates the schema empty.
func main() {
	cfg := config.LoadConfig()
	logrus.Warn("Resetting schema: all data will be dropped")
	db.Reset(cfg.DSN())
}
