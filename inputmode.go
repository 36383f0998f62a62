package converter

// modeController toggles a field between raw edit text and grouped display
// text at focus/blur boundaries. The toggle is purely cosmetic: it rewrites
// the field slot in place, outside the propagation path, and never touches
// the anchor snapshot.
type modeController struct {
	store   *fieldStore
	focused Key // "" when no field is in raw mode
}

func newModeController(store *fieldStore) *modeController {
	return &modeController{store: store}
}

// focus puts the field in raw mode. A previously focused field is blurred
// first, keeping at most one field raw at any instant regardless of the
// order the host delivers its focus and blur events.
func (m *modeController) focus(key Key) {
	if !m.store.has(key) || m.focused == key {
		return
	}
	if m.focused != "" {
		m.blur(m.focused)
	}
	m.focused = key
	m.store.put(key, StripGroups(m.store.get(key)))
}

// blur restores the grouped display text.
func (m *modeController) blur(key Key) {
	if !m.store.has(key) {
		return
	}
	if m.focused == key {
		m.focused = ""
	}
	m.store.put(key, FormatGroups(m.store.get(key)))
}
