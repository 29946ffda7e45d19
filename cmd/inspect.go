package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sabiaka/midi-original-track-harmony-separator/midi"
	"github.com/sabiaka/midi-original-track-harmony-separator/separator"
	"github.com/sabiaka/midi-original-track-harmony-separator/util"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects the tracks of a MIDI file",
	Long: `Inspects the tracks of a MIDI file: event counts, chord width and
channels per track. Useful before and after separating.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(inspect(args[0]))
	},
}

func inspect(path string) error {
	mid, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	fmt.Printf("%v: %v tracks, time format %v\n", path, len(mid.Tracks), mid.TimeFormat)

	var eventCounts []int
	for i, track := range mid.Tracks {
		st := separator.Summarize(track)
		eventCounts = append(eventCounts, st.Events)
		fmt.Printf("track %v: %v events (%v on / %v off / %v other), max chord %v, channels %v, %v ticks\n",
			i, st.Events, st.NoteOns, st.NoteOffs, st.Others, st.MaxChordSize, st.Channels, st.LengthTicks)
	}
	fmt.Printf("total events: %v\n", util.Sum(eventCounts))
	return nil
}
