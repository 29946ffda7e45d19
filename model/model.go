package model

// TrackStats summarizes one track of a standard MIDI file.
type TrackStats struct {
	Events   int
	NoteOns  int
	NoteOffs int
	Others   int

	// MaxChordSize is the largest number of notes starting on the same
	// tick, i.e. how many rank tracks this track would separate into.
	MaxChordSize int

	// LengthTicks is the absolute tick of the last event.
	LengthTicks uint64

	Channels []uint8
}
