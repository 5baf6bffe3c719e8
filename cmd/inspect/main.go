// Command inspect prints keybinds and outfit stats without starting the
// game, and can write a layout out as a keybind file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"text/tabwriter"

	"skyhaul/game"
	"skyhaul/input"
	"skyhaul/logger"
	"skyhaul/shipstats"
)

func main() {
	layout := flag.String("layout", input.LayoutArrows, "Keyboard layout to start from (arrows or wasd)")
	keybinds := flag.String("keybinds", "", "Keybind file to apply over the layout")
	export := flag.String("export", "", "Write the resulting bindings to this .yaml or .toml file")
	outfits := flag.String("outfits", "", "Outfit catalogue to describe")
	csv := flag.Bool("csv", false, "Print outfit stats as CSV")
	flag.Parse()

	logger.Init(logger.Config{Level: "warn", Format: "console", Output: os.Stderr})
	log := logger.L()

	keys := game.NewEbitenKeys()
	reg := input.NewRegistry(log)
	if err := reg.ApplyLayout(*layout, keys); err != nil {
		log.Error("applying layout", "error", err)
		os.Exit(1)
	}
	if *keybinds != "" {
		if err := input.LoadKeybinds(*keybinds, reg, keys); err != nil {
			log.Error("loading keybinds", "error", err)
			os.Exit(1)
		}
	}

	if *outfits != "" {
		if err := describeOutfits(os.Stdout, *outfits, *csv); err != nil {
			log.Error("describing outfits", "error", err)
			os.Exit(1)
		}
		return
	}

	if *export != "" {
		if err := input.SaveKeybinds(*export, reg, keys); err != nil {
			log.Error("exporting keybinds", "error", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", *export)
		return
	}

	printBindings(os.Stdout, reg, keys)
}

func printBindings(w io.Writer, reg *input.Registry, keys input.KeyNamer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ACTION\tNAME\tBINDING")
	for _, a := range input.Actions() {
		name := a.String()
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, reg.DisplayName(name), reg.Display(name, keys))
	}
	tw.Flush()
}

func describeOutfits(w io.Writer, path string, asCSV bool) error {
	catalogue, err := game.LoadOutfitsFile(path)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	slices.Sort(names)

	if asCSV {
		fmt.Fprintf(w, "outfit,%s\n", shipstats.CSVHeader())
		for _, name := range names {
			s := shipstats.New()
			s.ModFromList(catalogue[name].Stats, 1)
			fmt.Fprintf(w, "%q,%s\n", name, shipstats.CSV(&s))
		}
		return nil
	}
	for _, name := range names {
		o := catalogue[name]
		fmt.Fprintf(w, "%s (cpu %.0f)\n", o.Name, o.CPU)
		if d := shipstats.ListDesc(o.Stats); d != "" {
			fmt.Fprintln(w, d)
		}
		fmt.Fprintln(w)
	}
	return nil
}
