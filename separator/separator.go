// Package separator rewrites a standard MIDI file so that chords inside
// each source track are spread over rank-ordered monophonic tracks: one
// output track per chord rank per source track, rank 0 holding the
// highest pitch of each simultaneous onset. Non-note messages of a
// source track travel with its rank-0 voice.
package separator

import (
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"
)

// allocator hands out output track indices. One instance is shared by
// every source track, so indices are globally unique and dense; its
// final count is the output track count.
type allocator struct {
	count int
}

func (a *allocator) next() int {
	idx := a.count
	a.count++
	return idx
}

// placed is one message pinned to an absolute tick. seq records the
// order in which messages were buffered: the materializer sorts by
// (tick, seq), so messages sharing a tick keep their routing order. In
// particular a forced note off is buffered before the note on that
// caused it and must stay there.
type placed struct {
	tick uint64
	seq  int
	msg  smf.Message
}

// buffer accumulates routed events per output track index until every
// source track has been processed.
type buffer struct {
	events map[int][]placed
	seq    int
}

func newBuffer() *buffer {
	return &buffer{events: make(map[int][]placed)}
}

func (b *buffer) add(track int, tick uint64, msg smf.Message) {
	b.events[track] = append(b.events[track], placed{tick: tick, seq: b.seq, msg: msg})
	b.seq++
}

// Separate is a pure transformation: it does no I/O and leaves mid
// untouched. Source tracks are processed in file order against one
// shared allocator, so output indices are grouped by source track
// (track 0 rank 0, track 0 rank 1, ..., track 1 rank 0, ...).
func Separate(mid *smf.SMF) *smf.SMF {
	res := smf.New()
	res.TimeFormat = mid.TimeFormat

	alloc := &allocator{}
	buf := newBuffer()
	for _, track := range mid.Tracks {
		newSplitter(alloc, buf).run(track)
	}

	for idx := 0; idx < alloc.count; idx++ {
		res.Add(materialize(buf.events[idx]))
	}
	return res
}

// materialize turns buffered absolute-tick messages back into a
// delta-timed track closed by an end-of-track meta. An index that
// received no events yields a terminator-only track.
func materialize(events []placed) smf.Track {
	sort.Slice(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].seq < events[j].seq
	})

	var track smf.Track
	var last uint64
	for _, ev := range events {
		track.Add(uint32(ev.tick-last), ev.msg)
		last = ev.tick
	}
	if n := len(track); n == 0 || !track[n-1].Message.Is(smf.MetaEndOfTrackMsg) {
		track.Close(0)
	}
	return track
}
