package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gocv.io/x/gocv"

	"github.com/fitwave/fitwave/internal/app"
	"github.com/fitwave/fitwave/internal/store"
)

func main() {
	fmt.Println("FitWave - Posture & Fitness Analysis")

	frontPath := flag.String("front", "", "path to the front-view photograph")
	backPath := flag.String("back", "", "path to the back-view photograph")
	flag.Parse()

	if *frontPath == "" && *backPath == "" {
		fmt.Println("Usage: fitwave -front <image> [-back <image>]")
		os.Exit(2)
	}

	// Optional .env configuration
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	// Initialize the store
	dbPath := os.Getenv("FITWAVE_DB")
	if dbPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to get home directory: %v", err)
		}

		dataDir := filepath.Join(homeDir, ".fitwave")
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
		dbPath = filepath.Join(dataDir, "fitwave.db")
	}

	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	analyzer := app.New(app.Config{Store: st})
	defer analyzer.Close()

	front := loadImage(*frontPath)
	if front != nil {
		defer front.Close()
	}
	back := loadImage(*backPath)
	if back != nil {
		defer back.Close()
	}

	result, err := analyzer.AnalyzePosture(front, back)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
	fmt.Println(string(out))
}

// loadImage reads an image file into a matrix, or returns nil for an
// empty path or an unreadable file.
func loadImage(path string) *gocv.Mat {
	if path == "" {
		return nil
	}

	mat := gocv.IMRead(path, gocv.IMReadColor)
	if mat.Empty() {
		log.Printf("Failed to read image %s, skipping view", path)
		mat.Close()
		return nil
	}

	return &mat
}
