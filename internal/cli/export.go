package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"meshmark/internal/export"
	"meshmark/internal/logger"
	"meshmark/internal/place"
	"meshmark/internal/prefs"
)

var (
	exportOut      string
	exportFormat   string
	exportQuality  string
	exportMatches  bool
	exportPoints   bool
	exportOriginal string
	exportMerge    bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the placed scene as STL, OBJ, or PLY",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, _ := prefs.Load()

		// Flags override preferences only when set explicitly.
		if !cmd.Flags().Changed("format") {
			exportFormat = p.Format
		}
		if !cmd.Flags().Changed("quality") {
			exportQuality = p.Quality
		}
		if !cmd.Flags().Changed("matches") {
			exportMatches = p.IncludeMatches
		}
		if !cmd.Flags().Changed("points") {
			exportPoints = p.IncludePoints
		}
		if !cmd.Flags().Changed("merge") {
			exportMerge = p.MergeGeometry
		}

		format, err := export.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		quality, err := export.ParseQuality(exportQuality)
		if err != nil {
			return err
		}

		store, err := openSession()
		if err != nil {
			return err
		}
		defer store.Close()
		sc, err := store.LoadScene()
		if err != nil {
			return err
		}
		anchors := sc.Snapshot()

		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		var original []byte
		includeOriginal := false
		if exportOriginal != "" {
			original, err = os.ReadFile(exportOriginal)
			if err != nil {
				return fmt.Errorf("read original geometry: %w", err)
			}
			includeOriginal = true
		}

		cfg := export.Config{
			IncludeOriginal: includeOriginal,
			IncludeMatches:  exportMatches,
			IncludePoints:   exportPoints,
			MergeGeometry:   exportMerge,
			Format:          format,
			Quality:         quality,
		}
		in := export.Input{
			Instances: place.PlaceAll(reg, anchors),
			Anchors:   anchors,
			Original:  original,
		}
		out, err := export.Serialize(in, cfg)
		if err != nil {
			return err
		}

		log := logger.New()
		if exportOut == "" || exportOut == "-" {
			fmt.Print(out)
			log.Logf("exported %s to stdout: %d instances, %d anchors", format, len(in.Instances), len(anchors))
			return nil
		}
		if err := os.WriteFile(exportOut, []byte(out), 0644); err != nil {
			return err
		}
		log.Logf("exported %s to %s: %d instances, %d anchors", format, exportOut, len(in.Instances), len(anchors))
		fmt.Fprintf(os.Stderr, "wrote %s (%d instances, %d anchor markers)\n", exportOut, len(in.Instances), len(anchors))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "stl", "output format: stl, obj, or ply")
	exportCmd.Flags().StringVar(&exportQuality, "quality", "medium", "marker quality: low, medium, or high")
	exportCmd.Flags().BoolVar(&exportMatches, "matches", true, "include placed template geometry")
	exportCmd.Flags().BoolVar(&exportPoints, "points", true, "include anchor marker pins")
	exportCmd.Flags().BoolVar(&exportMerge, "merge", false, "merge all geometry into a single group")
	exportCmd.Flags().StringVar(&exportOriginal, "original", "", "original base-model file, noted in header metadata")
	exportCmd.Flags().StringVar(&catalogDefsPath, "defs", "", "extra template definitions (YAML)")
	rootCmd.AddCommand(exportCmd)
}
