package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "harmonysep",
	Short: "Separates chords in a MIDI file into rank-ordered tracks",
	Long: `Separates the chords inside each track of a MIDI file into distinct,
pitch-rank-ordered output tracks, one monophonic track per voice.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
