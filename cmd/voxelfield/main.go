package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"voxelfield/internal/config"
	"voxelfield/internal/game"
)

func main() {
	configPath := flag.String("config", "", "path to a voxelfield YAML config (defaults built in)")
	assetsDir := flag.String("assets", "", "override the asset directory")
	snapshot := flag.String("snapshot", "", "write a scene snapshot to this path after bootstrap")
	headless := flag.Bool("headless", false, "bootstrap and export without opening a window")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") && *configPath == "" {
			os.Chdir(execDir)
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *assetsDir != "" {
		cfg.Assets.Dir = *assetsDir
	}
	if *snapshot != "" {
		cfg.Snapshot.Path = *snapshot
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("voxelfield: %v", err)
	}
	if err := g.ExportSnapshot(); err != nil {
		log.Printf("snapshot: %v", err)
	}
	if *headless {
		return
	}
	g.Run()
}
