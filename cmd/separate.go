package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sabiaka/midi-original-track-harmony-separator/midi"
	"github.com/sabiaka/midi-original-track-harmony-separator/separator"
)

func init() {
	rootCmd.AddCommand(separateCmd)
}

var separateCmd = &cobra.Command{
	Use:   "separate <input.mid> <output.mid>",
	Short: "Splits chords into rank-ordered tracks",
	Long: `Splits chords into rank-ordered tracks.

Each input track's simultaneous notes are spread over one output track
per chord rank (rank 0 carries the highest pitch), and its non-note
messages travel with the rank-0 track.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(separate(args[0], args[1]))
	},
}

func separate(inPath, outPath string) error {
	mid, err := midi.ReadMidiFile(inPath)
	if err != nil {
		return err
	}
	fmt.Printf("Read %v: %v tracks, time format %v\n", inPath, len(mid.Tracks), mid.TimeFormat)

	res := separator.Separate(mid)

	fmt.Printf("Writing %v tracks to %v\n", len(res.Tracks), outPath)
	return midi.WriteMidiFile(outPath, res)
}
