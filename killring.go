package editor

// KillSide records which side of a cut the bytes came from, so a repeated
// kill of the same kind concatenates onto the existing clip in the right
// direction: killing forward (KillRight) appends after the clip, killing
// backward (KillLeft) prepends before it. KillNone always starts a new clip
// even when a kill/yank streak is in progress -- used by explicit copies,
// which should never silently merge into whatever was last killed.
type KillSide int

const (
	KillNone KillSide = iota
	KillLeft
	KillRight
)

// KillRing is the Emacs-style clipboard: an ordered list of clips (newest
// last), plus the bookkeeping SPEC_FULL.md §4.H pins for append-on-repeat
// kills and yank/yank-pop cycling through distinct prior clips.
type KillRing struct {
	clips        [][]Byte
	justRecorded bool // true if the most recent mutation was a kill eligible to extend
	justYanked   bool // true if the most recent action was a yank, enabling M-y
	pasteNumber  int
}

// NewKillRing returns an empty kill ring with no yank in progress.
func NewKillRing() *KillRing {
	return &KillRing{}
}

// RecordYank records bytes cut from a kill operation. If a kill/yank streak
// is in progress (justRecorded) and side isn't KillNone, bytes extend the
// most recent clip in the direction side names; otherwise bytes become a
// new clip. Mirrors record_yank.
func (k *KillRing) RecordYank(content []Byte, side KillSide) {
	if k.justRecorded && side != KillNone && len(k.clips) > 0 {
		last := k.clips[len(k.clips)-1]
		switch side {
		case KillRight:
			k.clips[len(k.clips)-1] = append(append([]Byte{}, last...), content...)
		case KillLeft:
			k.clips[len(k.clips)-1] = append(append([]Byte{}, content...), last...)
		}
	} else {
		k.clips = append(k.clips, append([]Byte{}, content...))
	}
	k.justRecorded = true
	k.justYanked = false
	k.pasteNumber = 0
}

// RecordCopy pushes bytes as a new clip from an explicit copy (M-w),
// without extending any in-progress kill streak.
func (k *KillRing) RecordCopy(content []Byte) {
	k.RecordYank(content, KillNone)
}

// BreakKillStreak ends a run of appending kills, called whenever a
// non-kill, non-yank action happens (movement, ordinary typing). Mirrors
// no_yank's justRecorded half.
func (k *KillRing) BreakKillStreak() {
	k.justRecorded = false
	k.justYanked = false
	k.pasteNumber = 0
}

// clipIndex computes (clips.len()-1-pasteNumber) mod clips.len(), wrapped
// into [0, n) for Go's truncating %.
func clipIndex(n, pasteNumber int) int {
	idx := (n - 1 - pasteNumber) % n
	if idx < 0 {
		idx += n
	}
	return idx
}

// DoYank returns the clip a fresh C-y should insert -- the newest clip not
// yet stepped past by a paste-pop -- and marks a yank as in progress so a
// following M-y can cycle to an older one. Returns nil if the ring is
// empty.
func (k *KillRing) DoYank() []Byte {
	if len(k.clips) == 0 {
		return nil
	}
	k.pasteNumber = 0
	k.justYanked = true
	k.justRecorded = false
	clip := k.clips[clipIndex(len(k.clips), k.pasteNumber)]
	return append([]Byte{}, clip...)
}

// IsYankInProgress reports whether the most recent action was a yank not
// yet broken by an intervening non-yank action -- M-y is only meaningful
// immediately after a C-y or another M-y.
func (k *KillRing) IsYankInProgress() bool {
	return k.justYanked
}

// StepPasteNumber advances the paste cycle for M-y and returns the clip to
// substitute for the previous yank: the next older entry in the ring,
// wrapping back to the newest once every clip has been cycled through.
func (k *KillRing) StepPasteNumber() []Byte {
	runtimeCheck(k.justYanked, "StepPasteNumber: no yank in progress")
	k.pasteNumber++
	clip := k.clips[clipIndex(len(k.clips), k.pasteNumber)]
	return append([]Byte{}, clip...)
}

// Content returns a copy of the newest clip (the one most recently
// recorded), e.g. for a "copy region" that also needs to report what was
// copied. It does not follow M-y: after a yank-pop it still returns the
// newest clip, not the one just inserted.
func (k *KillRing) Content() []Byte {
	if len(k.clips) == 0 {
		return nil
	}
	return append([]Byte{}, k.clips[len(k.clips)-1]...)
}
