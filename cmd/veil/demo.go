package main

import (
	"context"
	"fmt"

	"github.com/dotsetgreg/veil/pkg/engine"
	"github.com/dotsetgreg/veil/pkg/parser"
	"github.com/dotsetgreg/veil/pkg/persona"
	"github.com/dotsetgreg/veil/pkg/providers"
	"github.com/spf13/cobra"
)

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the scripted two-scene walkthrough (no credentials needed)",
		Long:  "Play a fixed scenario against the canned responder: a trust-building scene followed by a hostile one, showing relationship adaptation, moral drift and emotional decay.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

func runDemo() error {
	pool, err := persona.NewPool()
	if err != nil {
		return err
	}
	def, err := pool.GetByID("silas")
	if err != nil {
		return err
	}

	state := def.NewState()
	npc := engine.NewNPC(state, providers.DefaultScript(), nil, engine.Config{})
	ctx := context.Background()

	fmt.Println("---------------------------------------------------------")
	fmt.Printf("--- DEMO: %s (adaptive NPC) ---\n", state.Name)
	fmt.Printf("    initial moral alignment: %.2f\n", state.TraitValue(persona.TraitMoralAlignment))
	fmt.Println("---------------------------------------------------------")

	// Scene 1: the player earned goodwill before the conversation starts.
	fmt.Println("\n[SCENE 1: BUILDING TRUST]")
	npc.Ledger().Record("Player", "The player risked their life to save Silas from the Cybernetic Enforcers.")
	state.UpdateRelationship(0.5)

	query := "I need your access codes for the Ion sub-level archives. Trust me, I'm doing this for the Syndicate."
	fmt.Printf("\n>> [PLAYER INPUT]: %s\n", query)
	printDemoTurn(npc, npc.Receive(ctx, query))

	// Scene 2: the game engine detects the hostile tone and pins anger high.
	fmt.Println("\n[SCENE 2: DANGER]")
	if err := state.UpdateEmotion(persona.EmotionAnger, 0.75); err != nil {
		return err
	}

	query = "Silas, you're weak and unfit to lead. I'm taking over."
	fmt.Printf("\n>> [PLAYER INPUT]: %s\n", query)
	printDemoTurn(npc, npc.Receive(ctx, query))

	fmt.Printf("\n[SYSTEM CHECK] post-interaction anger decay: %.2f\n", state.EmotionValue(persona.EmotionAnger))
	return nil
}

func printDemoTurn(npc *engine.NPC, rec parser.Interaction) {
	s := npc.State()
	fmt.Printf("\nTrust=%.2f | Moral=%.2f | Cynicism=%.2f | Anger=%.2f\n",
		s.Relationship(),
		s.TraitValue(persona.TraitMoralAlignment),
		s.TraitValue(persona.TraitCynicism),
		s.EmotionValue(persona.EmotionAnger),
	)
	fmt.Printf("[NPC THOUGHTS] %s\n", rec.Analysis)
	fmt.Printf("[GAME RENDER] %s says: %s\n", s.Name, rec.Dialogue)
	fmt.Printf("[GAME ACTION] %s -> %s (%s: %s)\n", rec.Action.Type, rec.Action.Target, rec.Action.Parameter, rec.Action.Value)
}
