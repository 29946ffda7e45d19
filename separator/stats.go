package separator

import (
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/sabiaka/midi-original-track-harmony-separator/model"
	"github.com/sabiaka/midi-original-track-harmony-separator/util"
)

// Summarize counts what one source track contains and how wide its
// chords get. The inspect command prints this per track.
func Summarize(track smf.Track) model.TrackStats {
	var st model.TrackStats
	channels := make(map[uint8]bool)

	for _, group := range groupByTick(track) {
		st.LengthTicks = group.tick
		var ons int
		for _, msg := range group.msgs {
			st.Events++
			var channel, key, velocity uint8
			switch {
			case msg.GetNoteStart(&channel, &key, &velocity):
				st.NoteOns++
				channels[channel] = true
				ons++
			case msg.GetNoteEnd(&channel, &key):
				st.NoteOffs++
				channels[channel] = true
			default:
				st.Others++
			}
		}
		if ons > st.MaxChordSize {
			st.MaxChordSize = ons
		}
	}

	st.Channels = util.Keys(channels)
	return st
}
