package separator

import (
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// noTrack marks an unassigned output track index.
const noTrack = -1

// timeGroup collects every message of one source track sharing the same
// absolute tick, in original file order.
type timeGroup struct {
	tick uint64
	msgs []smf.Message
}

// groupByTick converts a track's delta times into absolute ticks and
// groups messages landing on the same tick. Deltas are unsigned, so the
// prefix sums only grow and the groups come out already in ascending
// tick order.
func groupByTick(track smf.Track) []timeGroup {
	var groups []timeGroup
	var abs uint64
	for _, ev := range track {
		abs += uint64(ev.Delta)
		if n := len(groups); n > 0 && groups[n-1].tick == abs {
			groups[n-1].msgs = append(groups[n-1].msgs, ev.Message)
			continue
		}
		groups = append(groups, timeGroup{tick: abs, msgs: []smf.Message{ev.Message}})
	}
	return groups
}

type noteMsg struct {
	channel uint8
	key     uint8
	msg     smf.Message
}

// splitter routes one source track into the shared buffer. All of its
// state is scoped to that track and discarded afterwards; only the
// allocator and the buffer outlive it.
type splitter struct {
	alloc *allocator
	buf   *buffer

	// chord rank (0 = highest pitch of an onset group) to the output
	// track carrying every note of that rank in this source track.
	// Assigned on first use and fixed from then on.
	rankTrack map[int]int

	// per pitch, the output track holding its currently sounding
	// instance, noTrack while the pitch is silent. A pitch has at most
	// one owner at a time: the most recent unmatched note on.
	active [128]int

	// output track for everything that is not a note. Set by the first
	// rank-0 note on, or by the first non-note message if that comes
	// first, and immutable afterwards.
	nonNoteTarget int
}

func newSplitter(alloc *allocator, buf *buffer) *splitter {
	s := &splitter{
		alloc:         alloc,
		buf:           buf,
		rankTrack:     make(map[int]int),
		nonNoteTarget: noTrack,
	}
	for i := range s.active {
		s.active[i] = noTrack
	}
	return s
}

func (s *splitter) run(track smf.Track) {
	for _, group := range groupByTick(track) {
		var ons, offs []noteMsg
		var others []smf.Message

		for _, msg := range group.msgs {
			var channel, key, velocity uint8
			switch {
			case msg.GetNoteStart(&channel, &key, &velocity):
				ons = append(ons, noteMsg{channel: channel, key: key, msg: msg})
			case msg.GetNoteEnd(&channel, &key):
				// also matches a note on with velocity 0
				offs = append(offs, noteMsg{channel: channel, key: key, msg: msg})
			default:
				others = append(others, msg)
			}
		}

		s.routeNoteOffs(group.tick, offs)
		s.routeNoteOns(group.tick, ons)
		s.routeOthers(group.tick, others)
	}
}

// routeNoteOffs sends each note off to the output track that received
// the matching note on. An off with no sounding instance is dropped:
// real-world recordings contain unbalanced notes and the rewrite
// tolerates them rather than failing.
func (s *splitter) routeNoteOffs(tick uint64, offs []noteMsg) {
	for _, off := range offs {
		target := s.active[off.key]
		if target == noTrack {
			continue
		}
		s.buf.add(target, tick, off.msg)
		s.active[off.key] = noTrack
	}
}

// routeNoteOns ranks the simultaneous note ons by descending pitch and
// sends each one to the output track owned by its rank, allocating that
// track on first use. Ranks identify voice position, not pitch: rank 0
// always takes whatever pitch is highest at this instant.
func (s *splitter) routeNoteOns(tick uint64, ons []noteMsg) {
	sort.SliceStable(ons, func(i, j int) bool {
		return ons[i].key > ons[j].key
	})

	for rank, on := range ons {
		target, ok := s.rankTrack[rank]
		if !ok {
			target = s.alloc.next()
			s.rankTrack[rank] = target
			if rank == 0 && s.nonNoteTarget == noTrack {
				s.nonNoteTarget = target
			}
		}

		// Retrigger: the pitch sounds again before its previous
		// instance was closed. Force the previous instance off on
		// whichever track owns it, then start the new one. The active
		// entry is overwritten below, after this check reads it.
		if prev := s.active[on.key]; prev != noTrack {
			s.buf.add(prev, tick, smf.Message(midi.NoteOff(on.channel, on.key)))
		}

		s.buf.add(target, tick, on.msg)
		s.active[on.key] = target
	}
}

// routeOthers sends non-note messages to the track carrying this source
// track's highest voice. When no note has established one yet, a
// dedicated track is allocated and kept for the rest of the source
// track, even after rank 0 appears.
func (s *splitter) routeOthers(tick uint64, others []smf.Message) {
	if len(others) == 0 {
		return
	}
	if s.nonNoteTarget == noTrack {
		s.nonNoteTarget = s.alloc.next()
	}
	for _, msg := range others {
		s.buf.add(s.nonNoteTarget, tick, msg)
	}
}
