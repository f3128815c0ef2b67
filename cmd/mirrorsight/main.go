package main

import (
	"flag"
	"log"

	"github.com/glasshouse/mirrorsight/internal/game"
	"github.com/glasshouse/mirrorsight/internal/level"
	ebitenrender "github.com/glasshouse/mirrorsight/internal/render/ebiten"
	"github.com/glasshouse/mirrorsight/internal/ui/menu"
)

func main() {
	dataDir := flag.String("data", "data/levels", "directory containing level files")
	width := flag.Int("width", 1280, "window width in pixels")
	height := flag.Int("height", 800, "window height in pixels")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen mode")
	startLevel := flag.String("level", "", "skip the menu and start this level file directly")
	flag.Parse()

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	// Scan the data directory for playable rooms
	log.Printf("Scanning %s for levels...", *dataDir)
	entries, err := level.Scan(*dataDir)
	if err != nil {
		log.Fatalf("Failed to scan level directory: %v", err)
	}
	log.Printf("Found %d levels", len(entries))

	// Create the main menu
	mainMenu := menu.NewMainMenu(entries, renderer, inputMgr, *width, *height)

	// Create the game manager
	gameManager := game.NewManager(renderer, inputMgr, *width, *height)
	gameManager.SetMainMenu(mainMenu)

	// A -level flag skips the menu
	if *startLevel != "" {
		if err := gameManager.StartLevel(*startLevel); err != nil {
			log.Fatalf("Failed to start level %s: %v", *startLevel, err)
		}
	}

	// Set up the window
	engine.SetWindowSize(*width, *height)
	engine.SetWindowTitle("Mirrorsight")
	engine.SetWindowResizable(true)
	engine.SetFullscreen(*fullscreen)

	log.Println("Starting game...")
	if err := engine.RunGame(gameManager); err != nil {
		log.Fatal(err)
	}
}
