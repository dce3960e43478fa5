package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goslice/internal/config"
	"github.com/philipparndt/goslice/internal/logging"
	"github.com/philipparndt/goslice/version"
	"github.com/spf13/cobra"
)

var (
	cfgPath     string
	verbose     bool
	veryVerbose bool
	quiet       bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "goslice",
	Short: "Cut, mirror and texture solid meshes",
	Long: `goslice cuts a solid mesh with a plane, closes both halves, mirrors the
kept half to build symmetric parts, and projects texture atlas coordinates
onto the result. It reads STL and OpenSCAD files or generates a box.`,
	Version:           version.GetFullVersion(),
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath(), "Config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress")
	rootCmd.PersistentFlags().BoolVar(&veryVerbose, "vv", false, "Log debug details")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log errors")
}

func setup(cmd *cobra.Command, args []string) error {
	logging.Setup(os.Stderr, logging.LevelFromFlags(veryVerbose, verbose, quiet))

	var err error
	cfg, err = config.Load(cfgPath)
	return err
}

func main() {
	registerCompletions()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
