package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"meshmark/internal/place"
	"meshmark/internal/score"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Show template placements and their confidence scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openSession()
		if err != nil {
			return err
		}
		defer store.Close()
		anchors, err := store.List()
		if err != nil {
			return err
		}
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		var scorer score.Scorer = score.BoundsScorer{}
		for _, a := range anchors {
			t, ok := reg.Lookup(a.ShapeType)
			if !ok {
				fmt.Printf("%s  %-16s no template (marker only)\n", a.ID, a.ShapeType)
				continue
			}
			inst := place.Place(t, a)
			fmt.Printf("%s  %-16s confidence %.2f\n", a.ID, a.ShapeType, scorer.Score(inst, a.ShapeType))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
}
