package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"meshmark/internal/catalog"
	"meshmark/internal/prefs"
)

var catalogDefsPath string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the template catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered shape types",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		for _, name := range reg.Types() {
			t, _ := reg.Lookup(name)
			size := t.Bounds.Size()
			fmt.Printf("%-16s %4d vertices %4d triangles  %.2f×%.2f×%.2f\n",
				name, t.VertexCount(), t.TriangleCount(), size[0], size[1], size[2])
		}
		return nil
	},
}

// loadRegistry builds the catalog: built-ins plus the definition file from
// --defs or the preferences, when one is configured.
func loadRegistry() (*catalog.Registry, error) {
	reg := catalog.NewRegistry()
	path := catalogDefsPath
	if path == "" {
		p, _ := prefs.Load()
		path = p.TemplateDefs
	}
	if path != "" {
		if err := reg.LoadDefs(path); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func init() {
	catalogCmd.PersistentFlags().StringVar(&catalogDefsPath, "defs", "", "extra template definitions (YAML)")
	catalogCmd.AddCommand(catalogListCmd)
	rootCmd.AddCommand(catalogCmd)
}
