// Package main is the entry point for the hero-api server and its
// operator tooling.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "hero-api",
	Short: "Hero equipment gRPC server",
	Long:  `hero-api manages hero inventories and equipped gear: the item catalog, per-hero loadouts, and the slot compatibility rules between them.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default: built-in defaults plus HEROAPI_* env)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(equipCmd)
	rootCmd.AddCommand(unequipCmd)
	rootCmd.AddCommand(loadoutCmd)
	rootCmd.AddCommand(grantCmd)
	rootCmd.AddCommand(inventoryCmd)
}
