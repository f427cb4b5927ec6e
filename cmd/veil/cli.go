package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dotsetgreg/veil/pkg/config"
	"github.com/dotsetgreg/veil/pkg/persona"
	"github.com/dotsetgreg/veil/pkg/providers"
	"github.com/spf13/cobra"
)

func executeCLI() error {
	return buildRootCommand().Execute()
}

func buildRootCommand() *cobra.Command {
	var showVersion bool

	root := &cobra.Command{
		Use:   "veil",
		Short: "Adaptive NPC persona engine with memory, moral drift, and pluggable responders",
		Long: strings.TrimSpace(`veil runs adaptive non-player characters: evolving psychological state,
bounded conversational memory, and structured game-engine actions parsed from
free-form model output.

Use CLI commands to chat with a persona, run the scripted demo, and manage
configuration.`),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				printVersion()
				return nil
			}
			_ = cmd.Help()
			return fmt.Errorf("a subcommand is required")
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.Flags().BoolVarP(&showVersion, "version", "v", false, "Show build/version metadata")

	root.AddCommand(newChatCommand())
	root.AddCommand(newDemoCommand())
	root.AddCommand(newPersonasCommand())
	root.AddCommand(newConfigCommand())
	root.AddCommand(newVersionCommand())

	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build/version metadata",
		RunE: func(cmd *cobra.Command, args []string) error {
			printVersion()
			return nil
		},
	}
}

func newPersonasCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "personas",
		Short: "List the built-in persona definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := persona.NewPool()
			if err != nil {
				return err
			}
			for _, d := range pool.GetAll() {
				fmt.Printf("%-10s %s (%s)\n", d.ID, d.Name, d.Faction)
				fmt.Printf("           goal: %s\n", d.CoreGoal)
			}
			return nil
		},
	}
}

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage veil configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a default config file to ~/.veil/config.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ConfigPath()
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config already exists at %s", path)
			}
			if err := config.SaveConfig(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration and responder status",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(config.ConfigPath())
			if err != nil {
				return err
			}
			fmt.Printf("default persona:  %s\n", cfg.Engine.DefaultPersona)
			fmt.Printf("responder:        %s (supported: %s)\n",
				providers.ActiveResponderName(cfg), strings.Join(providers.SupportedResponders(), ", "))
			if err := providers.ValidateResponderConfig(cfg); err != nil {
				fmt.Printf("responder status: %v\n", err)
			} else {
				fmt.Printf("responder status: ok\n")
			}
			fmt.Printf("history:          enabled=%v path=%s\n", cfg.History.Enabled, cfg.HistoryPath())
			return nil
		},
	})

	return cmd
}
