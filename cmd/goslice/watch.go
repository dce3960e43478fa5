package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/goslice/pkg/source"
	"github.com/philipparndt/goslice/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	watchInput    inputFlags
	watchPlane    planeFlags
	watchMaterial string
	watchSliced   string
	watchMirrored string
	watchPreview  string
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Regenerate the mirror preview whenever the source changes",
	Long: `Watch an STL or OpenSCAD file (with everything it includes) and rebuild the
kept and mirrored halves after every change. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchInput.register(watchCmd.Flags())
	watchPlane.register(watchCmd.Flags())
	watchCmd.Flags().StringVarP(&watchMaterial, "material", "m", "", "Material id for UV projection (none to skip)")
	watchCmd.Flags().StringVar(&watchSliced, "sliced", "", "Write the kept half (.obj or .stl)")
	watchCmd.Flags().StringVar(&watchMirrored, "mirrored", "", "Write the mirrored half (.obj or .stl)")
	watchCmd.Flags().StringVar(&watchPreview, "preview", "", "Render the halves to a PNG after every change")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "Wait this long after the last change")
}

func runWatch(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	cmd.SetContext(ctx)

	c, err := newMirrorController(cmd, args, &watchInput, &watchPlane, watchMaterial)
	if err != nil {
		fail("Error: %v", err)
	}

	preview := func() {
		if err := c.Recompute(); err != nil {
			slog.Error("recompute failed", "error", err)
			return
		}
		d := c.Display()
		if err := writeMesh(watchSliced, d.Sliced); err != nil {
			slog.Error("write failed", "error", err)
		}
		if err := writeMesh(watchMirrored, d.Mirrored); err != nil {
			slog.Error("write failed", "error", err)
		}
		if err := writePreview(watchPreview, previewLayers(d)...); err != nil {
			slog.Error("preview failed", "error", err)
		}
	}
	preview()

	files, err := source.FileGenerator{Path: args[0]}.Files()
	if err != nil {
		fail("Error resolving dependencies: %v", err)
	}

	fw, err := watcher.NewFileWatcher(watchDebounce)
	if err != nil {
		fail("Error: %v", err)
	}
	defer fw.Close()

	err = fw.Watch(files, func(path string) {
		slog.Info("reloading", "changed", path)
		if err := c.ClearBuffers(); err != nil {
			slog.Error("reload failed", "error", err)
			return
		}
		preview()
	})
	if err != nil {
		fail("Error: %v", err)
	}

	fmt.Printf("Watching %d file(s), press Ctrl+C to stop\n", len(files))
	fw.Run(ctx)
	slog.Debug("watch stopped")
}
