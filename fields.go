package converter

import "maps"

// Key identifies one input field of an engine. The set of keys is fixed at
// construction and never grows.
type Key string

// The canonical two-field converter keys, used by NewPair.
const (
	From Key = "from"
	To   Key = "to"
)

// fieldStore holds the per-field text and the anchor snapshot of the last
// committed amounts.
//
// The anchor exists because currency assignments arrive asynchronously
// relative to edits: a handler acting on a field other than the one it is
// editing must read that field's last committed amount from the anchor,
// never a value captured earlier. The anchor is rewritten exactly once per
// commit and is read-only everywhere else.
type fieldStore struct {
	keys   []Key
	values map[Key]string
	anchor map[Key]string
}

func newFieldStore(keys []Key, initial map[Key]string) *fieldStore {
	s := &fieldStore{
		keys:   keys,
		values: make(map[Key]string, len(keys)),
		anchor: make(map[Key]string, len(keys)),
	}
	for _, k := range keys {
		if v := initial[k]; IsValidAmount(StripGroups(v)) {
			s.values[k] = v
		} else {
			s.values[k] = ""
		}
	}
	s.commit()
	return s
}

func (s *fieldStore) has(key Key) bool {
	_, ok := s.values[key]
	return ok
}

func (s *fieldStore) get(key Key) string { return s.values[key] }

// set validates and stores a field amount on the propagation path. It
// reports whether the value was accepted; a rejected value leaves the field
// unchanged. It does not refresh the anchor: the caller commits once the
// whole propagation step is stored.
func (s *fieldStore) set(key Key, value string) bool {
	if !s.has(key) || !IsValidAmount(value) {
		return false
	}
	s.values[key] = value
	return true
}

// setDerived stores a conversion result on the propagation path. Derived
// text is display text and may carry grouping separators (big results come
// grouped), so validation applies to its stripped form. Like set, it leaves
// the anchor to the caller's commit.
func (s *fieldStore) setDerived(key Key, value string) bool {
	if !s.has(key) || !IsValidAmount(StripGroups(value)) {
		return false
	}
	s.values[key] = value
	return true
}

// put writes a field slot without validation and without touching the
// anchor. It is the cosmetic path used by the raw/formatted display toggle.
func (s *fieldStore) put(key Key, value string) {
	if s.has(key) {
		s.values[key] = value
	}
}

// commit refreshes the anchor snapshot to the current field state. It runs
// synchronously at the end of every successful propagation step, so the
// anchor always happens-after the last commit.
func (s *fieldStore) commit() {
	maps.Copy(s.anchor, s.values)
}

// anchored returns the last committed amount for key.
func (s *fieldStore) anchored(key Key) string { return s.anchor[key] }
