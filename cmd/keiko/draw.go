package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrhapile/keiko-bundler/pkg/trainer"
)

var drawSeed uint64

var drawCmd = &cobra.Command{
	Use:       "draw kihon|kata",
	Short:     "Print a random training selection, like the web app does",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(trainer.ScreenKihon), string(trainer.ScreenKata)},
	RunE: func(cmd *cobra.Command, args []string) error {
		nav := trainer.NewNavigator(trainer.NewRand(drawSeed))
		if err := nav.Show(trainer.Screen(args[0])); err != nil {
			return err
		}
		printScreen(cmd.OutOrStdout(), nav)
		return nil
	},
}

func init() {
	drawCmd.Flags().Uint64Var(&drawSeed, "seed", 0, "Random seed (0 picks one)")
	rootCmd.AddCommand(drawCmd)
}

func printScreen(w io.Writer, nav *trainer.Navigator) {
	switch nav.Current() {
	case trainer.ScreenKihon:
		fmt.Fprintf(w, "Kihon – %d zufällige Kombinationen\n", trainer.KihonPerDraw)
		for i, k := range nav.Kihon() {
			fmt.Fprintf(w, "\n[%d] Kombination %d\n", k.ID, i+1)
			for j, line := range k.Lines {
				fmt.Fprintf(w, "  %d. %s\n", j+1, line)
			}
		}
	case trainer.ScreenKata:
		fmt.Fprintln(w, "Kata – Vorschlag (4)")
		for _, s := range nav.Kata() {
			fmt.Fprintf(w, "  %d. %s\n", s.Num, s.Name)
		}
	}
}
