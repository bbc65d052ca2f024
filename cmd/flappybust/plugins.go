package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappybust/internal/games/flappy"
)

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "List the game's plugins in build order",
	Long:  `Shows the ECS plugins the game is built from. Update systems run in this order.`,
	Args:  cobra.NoArgs,
	Run:   runPlugins,
}

func runPlugins(_ *cobra.Command, _ []string) {
	for i, name := range flappy.PluginNames() {
		fmt.Printf("  %2d  %s\n", i+1, name)
	}
}
