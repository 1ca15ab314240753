package factory

import (
	"github.com/solarlune/resolv"
	"github.com/tetrapod/wallflower/archetypes"
	"github.com/tetrapod/wallflower/components"
	cfg "github.com/tetrapod/wallflower/config"
	"github.com/tetrapod/wallflower/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePet spawns the one pet entity. Its resolv object is attached later,
// once the sheet has loaded and the frame size is known.
func CreatePet(ecs *ecs.ECS, scripted bool) *donburi.Entry {
	pet := archetypes.Pet.Spawn(ecs)

	components.Pet.SetValue(pet, components.PetData{
		Surface: cfg.Floor,
		Action:  cfg.Move,
		Dir:     1,
		X:       float64(cfg.Screen.StartMargin),
		Y:       float64(cfg.Screen.StartMargin),
	})
	components.Sprite.SetValue(pet, components.SpriteData{
		ScaleX: 1,
		ScaleY: 1,
	})
	components.Tween.SetValue(pet, components.TweenData{})
	components.Drag.SetValue(pet, components.DragData{})

	anim := components.Animation.Get(pet)
	anim.SetRow(cfg.RowIdle, cfg.Animation.IdleFPS)

	if scripted {
		donburi.Add(pet, components.Sequencer, &components.SequencerData{
			Cases: DefaultCases(),
			Left:  cfg.Sequencer.CaseDuration,
		})
	} else {
		donburi.Add(pet, components.Wander, &components.WanderData{})
	}

	return pet
}

// AttachPetObject gives the pet its contact body, sized to the window frame.
func AttachPetObject(ecs *ecs.ECS, pet *donburi.Entry, screen *components.ScreenData) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	petData := components.Pet.Get(pet)
	obj := resolv.NewObject(petData.X, petData.Y, float64(screen.FrameW), float64(screen.FrameH), tags.ResolvPet)
	space.Add(obj)
	obj.Data = pet
	components.Object.SetValue(pet, components.ObjectData{Object: obj})
}
