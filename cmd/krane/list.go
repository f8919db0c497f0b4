package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kampala-krane/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available game variants",
	Long:  `Shows every registered variant with the viewport it plays on.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	variants := registry.List()
	if len(variants) == 0 {
		fmt.Println("No variants registered.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tTITLE\tVIEWPORT")
	for _, v := range variants {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", v.ID, v.Title, v.Viewport)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Run 'krane play <id>' to play a variant.")
}
