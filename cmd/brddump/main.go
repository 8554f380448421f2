// brddump - inspect Cadence Allegro .brd board-layout files
//
// Usage:
//
//	brddump load /path/to/board.brd            # one-line summary
//	brddump load /path/to/board.brd --json      # full board as JSON
//	brddump load /path/to/board.brd --list      # layer/footprint names
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	board "github.com/cadenceboard/brdreader"
)

func main() {
	var (
		asJSON   bool
		listOnly bool
		verbose  bool
	)

	loadCmd := &cobra.Command{
		Use:   "load <path>",
		Short: "Load a .brd file and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &board.Options{}
			if verbose {
				opts.Logger = log.New(os.Stderr, "brddump: ", 0)
			}

			b, err := board.LoadBoard(args[0], opts)
			if err != nil {
				return err
			}

			switch {
			case asJSON:
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(b)

			case listOnly:
				fmt.Printf("layers (%d):\n", b.CopperLayerCount)
				for i, name := range b.LayerNames {
					fmt.Printf("  %d: %s\n", i, name)
				}
				fmt.Println("footprints:")
				for _, fp := range b.Footprints {
					fmt.Printf("  %s (%s)\n", fp.Refdes, fp.Name)
				}

			default:
				fmt.Printf("[*] %s: %d copper layers, %d footprints, %d tracks, %d vias, %d zones\n",
					args[0], b.CopperLayerCount, len(b.Footprints), len(b.Tracks), len(b.Vias), len(b.Zones))
			}
			return nil
		},
	}
	loadCmd.Flags().BoolVar(&asJSON, "json", false, "print the full board model as indented JSON")
	loadCmd.Flags().BoolVar(&listOnly, "list", false, "print only layer/footprint names")
	loadCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log soft-anomaly warnings to stderr")

	rootCmd := &cobra.Command{
		Use:   "brddump",
		Short: "Inspect Cadence Allegro .brd board-layout files",
	}
	rootCmd.AddCommand(loadCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
