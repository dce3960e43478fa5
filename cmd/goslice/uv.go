package main

import (
	"fmt"
	"sort"

	"github.com/philipparndt/goslice/pkg/objfile"
	"github.com/philipparndt/goslice/pkg/uvmap"
	"github.com/spf13/cobra"
)

var (
	uvInput    inputFlags
	uvMaterial string
	uvOut      string
)

var uvCmd = &cobra.Command{
	Use:   "uv [file]",
	Short: "Project texture atlas coordinates onto a mesh",
	Long: `Classify every face by its orientation and map it into the tile of the
material atlas assigned to that orientation. Faces that are not aligned with
an axis keep zero UVs.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runUV,
}

func init() {
	rootCmd.AddCommand(uvCmd)

	uvInput.register(uvCmd.Flags())
	uvCmd.Flags().StringVarP(&uvMaterial, "material", "m", "", "Material id")
	uvCmd.Flags().StringVarP(&uvOut, "out", "o", "", "Write the textured mesh as OBJ")
}

func runUV(cmd *cobra.Command, args []string) {
	m, err := uvInput.load(cmd, args)
	if err != nil {
		fail("Error loading mesh: %v", err)
	}
	md, err := lookupMaterial(uvMaterial)
	if err != nil {
		fail("Error in material: %v", err)
	}
	if md == nil {
		fail("Error: no material selected")
	}

	stats, err := cfg.Projector().Apply(m, *md)
	if err != nil {
		fail("Error projecting %s: %v", m.Name, err)
	}

	fmt.Println("UV Projection")
	fmt.Println("=============")
	fmt.Printf("Material: %s (%s projection)\n", md.ID, md.Projection)
	fmt.Printf("Faces: %d (mapped: %d, unmapped: %d)\n\n", stats.Faces, stats.Mapped, stats.Unmapped)

	roles := make([]uvmap.Role, 0, len(stats.Roles))
	for role := range stats.Roles {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	for _, role := range roles {
		fmt.Printf("  %-8s %d\n", role.String()+":", stats.Roles[role])
	}

	if uvOut != "" {
		if err := objfile.WriteFile(uvOut, m); err != nil {
			fail("Error writing %s: %v", uvOut, err)
		}
		fmt.Printf("\nWrote %s\n", uvOut)
	}
}
