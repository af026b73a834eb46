package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"meshmark/internal/scene"
)

var anchorCmd = &cobra.Command{
	Use:   "anchor",
	Short: "Manage the session's anchor points",
}

var (
	anchorAddAt    string
	anchorAddShape string
	anchorAddID    string
)

var anchorAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an anchor point (or replace one by --id)",
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := parsePoint(anchorAddAt)
		if err != nil {
			return err
		}
		store, err := openSession()
		if err != nil {
			return err
		}
		defer store.Close()

		stored, err := store.Upsert(scene.AnchorPoint{
			ID:        anchorAddID,
			Position:  pos,
			ShapeType: anchorAddShape,
		})
		if err != nil {
			return err
		}
		fmt.Printf("added anchor %s at (%g, %g, %g) shape=%s\n",
			stored.ID, stored.Position[0], stored.Position[1], stored.Position[2], stored.ShapeType)
		return nil
	},
}

var anchorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List anchor points in creation order",
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
		if len(anchors) == 0 {
			fmt.Println("no anchor points")
			return nil
		}
		for _, a := range anchors {
			fmt.Printf("%s  (%g, %g, %g)  %s  %s\n",
				a.ID, a.Position[0], a.Position[1], a.Position[2], a.ShapeType,
				a.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

var anchorRemoveCmd = &cobra.Command{
	Use:   "remove ID",
	Short: "Remove one anchor point",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openSession()
		if err != nil {
			return err
		}
		defer store.Close()
		return store.Remove(args[0])
	},
}

var anchorClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every anchor point",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openSession()
		if err != nil {
			return err
		}
		defer store.Close()
		return store.Clear()
	},
}

func init() {
	anchorAddCmd.Flags().StringVar(&anchorAddAt, "at", "", "anchor position as x,y,z (required)")
	anchorAddCmd.Flags().StringVar(&anchorAddShape, "shape", "", "shape type, e.g. hs-cap (required)")
	anchorAddCmd.Flags().StringVar(&anchorAddID, "id", "", "anchor id; replaces the existing record when it matches")
	_ = anchorAddCmd.MarkFlagRequired("at")
	_ = anchorAddCmd.MarkFlagRequired("shape")

	anchorCmd.AddCommand(anchorAddCmd, anchorListCmd, anchorRemoveCmd, anchorClearCmd)
	rootCmd.AddCommand(anchorCmd)
}
