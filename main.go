package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tetrapod/wallflower/config"
	"github.com/tetrapod/wallflower/scenes"
	"github.com/tetrapod/wallflower/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// The canvas is exactly the window: one sprite frame.
	return outsideWidth, outsideHeight
}

func main() {
	scripted := flag.Bool("test", false, "run the deterministic test sequence instead of wandering")
	overlay := flag.Bool("debug", false, "draw the state overlay")
	scale := flag.Float64("scale", 0, "sprite scale factor (0 = saved/default)")
	seed := flag.Int64("seed", 0, "wander RNG seed (0 = saved/default)")
	sheetPath := flag.String("sheet", "", "sprite sheet path (default pet.png)")
	flag.Parse()

	if err := systems.InitPersistence(); err == nil {
		if saved, err := systems.LoadSettings(); err == nil && saved != nil {
			systems.ApplySavedSettings(saved)
		}
	}

	// Flags beat saved settings.
	config.Debug.Scripted = *scripted
	config.Debug.Overlay = *overlay
	if *scale > 0 {
		config.Debug.Scale = *scale
	}
	if *seed != 0 {
		config.Debug.Seed = *seed
	}
	if *sheetPath != "" {
		config.Debug.SheetPath = *sheetPath
	}

	systems.SeedWander(config.Debug.Seed)
	systems.SaveSettings(&systems.SavedSettings{
		Scripted: config.Debug.Scripted,
		Scale:    config.Debug.Scale,
		Seed:     config.Debug.Seed,
	})

	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowTitle("wallflower")
	ebiten.SetWindowSize(64, 64) // overwritten once the sheet loads

	game := &Game{scene: scenes.NewDesktopScene()}
	opts := &ebiten.RunGameOptions{
		ScreenTransparent: true,
	}
	if err := ebiten.RunGameWithOptions(game, opts); err != nil {
		log.Fatal(err)
	}
}
