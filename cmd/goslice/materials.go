package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/philipparndt/goslice/pkg/analysis"
	"github.com/philipparndt/goslice/pkg/material"
	"github.com/spf13/cobra"
)

var materialsFormat string

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the available materials",
	Long: `List the materials of the configured index. With --format the index is
printed as TOML or YAML, ready to be edited and referenced from the config.`,
	Args: cobra.NoArgs,
	Run:  runMaterials,
}

func init() {
	rootCmd.AddCommand(materialsCmd)
	materialsCmd.Flags().StringVar(&materialsFormat, "format", "", "Dump the index as toml or yaml")
}

func runMaterials(cmd *cobra.Command, args []string) {
	ix, err := cfg.Materials()
	if err != nil {
		fail("Error loading materials: %v", err)
	}

	if materialsFormat != "" {
		format, err := material.FormatFromPath("materials." + strings.ToLower(materialsFormat))
		if err != nil {
			fail("Error: unknown format %q", materialsFormat)
		}
		if err := ix.Encode(os.Stdout, format); err != nil {
			fail("Error encoding materials: %v", err)
		}
		return
	}

	fmt.Printf("Materials (%d)\n", ix.Len())
	fmt.Println("=============")
	for _, id := range ix.IDs() {
		md, err := ix.Lookup(id)
		if err != nil {
			fail("Error: %v", err)
		}
		marker := " "
		if string(id) == cfg.Material.ID {
			marker = "*"
		}
		fmt.Printf("%s %-12s %-6s size %s  tiles %d", marker, id, md.Projection, analysis.FormatVector(md.Size), len(md.Tiles))
		if md.Projection == material.ProjectionBark {
			fmt.Printf("  bark %.4f", md.BarkThickness)
		}
		fmt.Println()
	}
}
