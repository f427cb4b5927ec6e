package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dotsetgreg/veil/pkg/config"
	"github.com/dotsetgreg/veil/pkg/engine"
	"github.com/dotsetgreg/veil/pkg/history"
	"github.com/dotsetgreg/veil/pkg/logger"
	"github.com/dotsetgreg/veil/pkg/persona"
	"github.com/dotsetgreg/veil/pkg/providers"
	"github.com/dotsetgreg/veil/pkg/sentiment"
	"github.com/spf13/cobra"
)

func newChatCommand() *cobra.Command {
	var (
		personaID string
		responder string
		debug     bool
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Run an interactive session against a persona",
		Long:  "Talk to an adaptive NPC: each turn updates its relationship and emotional state and yields a structured game action alongside the dialogue.",
		Example: strings.Join([]string{
			"  veil chat",
			"  veil chat --persona silas --responder openrouter",
			"  veil chat --debug",
		}, "\n"),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.SetDebug(debug)

			cfg, err := config.LoadConfig(config.ConfigPath())
			if err != nil {
				return err
			}
			if responder != "" {
				cfg.Providers.Default = responder
			}
			if personaID == "" {
				personaID = cfg.Engine.DefaultPersona
			}

			pool, err := persona.NewPool()
			if err != nil {
				return err
			}
			def, err := pool.GetByID(personaID)
			if err != nil {
				return err
			}

			resp, err := providers.CreateResponder(cfg)
			if err != nil {
				return err
			}

			var estimator sentiment.Estimator
			if len(cfg.Sentiment.Lexicon) > 0 {
				estimator = sentiment.NewLexicon(cfg.Sentiment.Lexicon)
			}

			npc := engine.NewNPC(def.NewState(), resp, estimator, engine.Config{
				ShortTermCapacity: cfg.Engine.ShortTermCapacity,
				DecayRate:         cfg.Engine.DecayRate,
				PlayerName:        cfg.Engine.PlayerName,
			})

			var journal *history.Store
			var sessionID string
			if cfg.History.Enabled {
				journal, err = history.Open(cfg.HistoryPath())
				if err != nil {
					return err
				}
				defer journal.Close()
				sessionID, err = journal.BeginSession(def.ID)
				if err != nil {
					return err
				}
			}

			fmt.Printf("Talking to %s of %s (responder: %s). Type exit to quit.\n\n", def.Name, def.Faction, resp.Name())
			return chatLoop(npc, def.Name, journal, sessionID, debug)
		},
	}

	cmd.Flags().StringVarP(&personaID, "persona", "p", "", "Persona ID to talk to (default from config)")
	cmd.Flags().StringVarP(&responder, "responder", "r", "", "Responder backend override (script, openrouter, gemini)")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "Show the NPC's internal analysis and state after each turn")

	return cmd
}

func chatLoop(npc *engine.NPC, npcName string, journal *history.Store, sessionID string, debug bool) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "You: ",
		HistoryFile:     filepath.Join(os.TempDir(), ".veil_history"),
		HistoryLimit:    100,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("initialize readline: %w", err)
	}
	defer rl.Close()

	seq := 0
	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF {
				fmt.Println("\nGoodbye!")
				return nil
			}
			fmt.Printf("Error reading input: %v\n", err)
			continue
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			fmt.Println("Goodbye!")
			return nil
		}

		rec := npc.Receive(context.Background(), input)
		seq++

		fmt.Printf("\n%s: %s\n", npcName, rec.Dialogue)
		fmt.Printf("  [action] %s -> %s (%s: %s)\n\n", rec.Action.Type, rec.Action.Target, rec.Action.Parameter, rec.Action.Value)
		if debug {
			printNPCState(npc, rec.Analysis)
		}

		if journal != nil {
			if err := journal.RecordTurn(sessionID, seq, input, rec, npc.State().Relationship()); err != nil {
				logger.WarnCF("cli", "failed to journal turn", map[string]interface{}{"error": err.Error()})
			}
		}
	}
}

func printNPCState(npc *engine.NPC, analysis string) {
	s := npc.State()
	fmt.Printf("  [analysis] %s\n", analysis)
	fmt.Printf("  [state] relationship=%.2f", s.Relationship())
	for _, t := range persona.Traits() {
		fmt.Printf(" %s=%.2f", t, s.TraitValue(t))
	}
	for _, e := range persona.Emotions() {
		fmt.Printf(" %s=%.2f", e, s.EmotionValue(e))
	}
	fmt.Printf(" (long-term memories: %d)\n\n", npc.Ledger().LongTermCount())
}
