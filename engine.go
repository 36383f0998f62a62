package converter

import "slices"

// Navigator is the collaborator an Engine asks to present a currency
// selection surface. The host later reports the pick through
// Engine.AssignCurrency, possibly after an arbitrary delay, possibly never.
type Navigator interface {
	RequestCurrencySelection(key Key)
}

// Engine keeps a fixed set of numeric fields mutually consistent: every
// field reflects the same underlying value converted through its assigned
// currency's USD price.
//
// Each operation is one propagation step with exactly one source field; all
// other fields are derived from it directly (star topology), never chained
// through one another. Operations run to completion, never block, and never
// fail: invalid text, missing prices and unknown keys degrade silently per
// field.
//
// An Engine is not safe for concurrent use. It is meant to be driven from a
// single event loop (text-change, focus, blur, currency-selected, switch),
// one event at a time.
type Engine struct {
	keys  []Key
	store *fieldStore
	reg   *registry
	modes *modeController
	nav   Navigator
}

// New creates an engine over the given field keys, seeded with initial
// amounts and currencies (both maps may be sparse or nil). The key set is
// immutable for the lifetime of the engine; New panics on an empty or
// duplicated key set, which is a programming error rather than a runtime
// condition.
//
// When every field already holds a priced currency and the first key holds
// an amount, New runs one bootstrap propagation from that key, so the
// screen opens consistent.
func New(keys []Key, initialValues map[Key]string, initialCurrencies map[Key]*Currency, nav Navigator) *Engine {
	if len(keys) == 0 {
		panic("converter: engine needs at least one field key")
	}
	owned := slices.Clone(keys)
	slices.Sort(owned)
	if len(slices.Compact(owned)) != len(keys) {
		panic("converter: duplicate field keys")
	}
	e := &Engine{
		keys:  slices.Clone(keys),
		store: newFieldStore(slices.Clone(keys), initialValues),
		reg:   newRegistry(slices.Clone(keys), initialCurrencies),
		nav:   nav,
	}
	e.modes = newModeController(e.store)
	if e.reg.complete() && e.store.get(e.keys[0]) != "" {
		if e.deriveFrom(e.keys[0], e.store.get(e.keys[0]), false) {
			e.store.commit()
		}
	}
	return e
}

// NewPair creates the canonical two-field engine with the From and To keys.
func NewPair(fromValue, toValue string, from, to *Currency, nav Navigator) *Engine {
	return New(
		[]Key{From, To},
		map[Key]string{From: fromValue, To: toValue},
		map[Key]*Currency{From: from, To: to},
		nav,
	)
}

// Keys returns the engine's field keys in declaration order.
func (e *Engine) Keys() []Key { return slices.Clone(e.keys) }

// Value returns the field's current text.
func (e *Engine) Value(key Key) string { return e.store.get(key) }

// Currency returns the field's assigned currency, nil while unset.
func (e *Engine) Currency(key Key) *Currency { return e.reg.get(key) }

// SetText is the text-change event: the edited field becomes the source of
// a propagation step. Text failing numeric validation is rejected and
// nothing changes. If the source field's own price is unknown the edit is
// accepted locally and conversion is skipped.
func (e *Engine) SetText(key Key, text string) {
	if !e.store.set(key, text) {
		return
	}
	e.deriveFrom(key, text, false)
	e.store.commit()
}

// AssignCurrency is the selection callback: it merges the picked currency
// into the field's slot. While some field still lacks a currency the
// assignment is stored with no visible side effect. Once every field holds
// one, all other fields are recomputed, anchored on the assigned field's
// last committed amount rather than any value still mid-edit. When the
// assigned field holds no amount at all, the recompute anchors on the first
// field that does, so completing the selection in either order reconciles
// the fields.
func (e *Engine) AssignCurrency(key Key, c *Currency) {
	if c == nil || !e.store.has(key) {
		return
	}
	e.reg.assign(key, c)
	if !e.reg.complete() {
		return
	}
	source := key
	if e.store.anchored(source) == "" {
		// The assigned field never held an amount, so anchoring on it would
		// recompute nothing. Fall back to the first field with a committed
		// amount: completing the selection on the empty side still has to
		// reconcile it with what the user already typed.
		for _, k := range e.keys {
			if k != key && e.store.anchored(k) != "" {
				source = k
				break
			}
		}
	}
	if e.deriveFrom(source, e.store.anchored(source), true) {
		e.store.commit()
	}
}

// Switch exchanges the currencies of the two fields of a pair engine and
// recomputes keyB from keyA's last committed amount and the swapped prices.
// The anchored amount is used because keyB's displayed value is derived and
// may be stale or mid-reformat; only the user-entered source amount is
// authoritative. On any other topology Switch is a no-op.
func (e *Engine) Switch(keyA, keyB Key) {
	if len(e.keys) != 2 || keyA == keyB || !e.store.has(keyA) || !e.store.has(keyB) {
		return
	}
	e.reg.swap(keyA, keyB)
	if e.reg.get(keyA) == nil || e.reg.get(keyB) == nil {
		return
	}
	e.store.setDerived(keyB, Convert(e.store.anchored(keyA), e.reg.priceOf(keyA), e.reg.priceOf(keyB)))
	e.store.commit()
}

// RequestCurrency asks the navigation collaborator to present a selection
// surface for the field. Without a navigator it is a no-op.
func (e *Engine) RequestCurrency(key Key) {
	if e.nav != nil && e.store.has(key) {
		e.nav.RequestCurrencySelection(key)
	}
}

// Focus switches the field to raw edit text (grouping stripped). At most
// one field is raw at a time: focusing implicitly blurs any other field.
func (e *Engine) Focus(key Key) { e.modes.focus(key) }

// Blur reformats the field with grouping separators.
func (e *Engine) Blur(key Key) { e.modes.blur(key) }

// deriveFrom recomputes every other field with a known price directly from
// the source key's amount (star topology). When keepOnEmpty is set, an
// empty conversion result leaves the target untouched instead of clearing
// it; the edit path clears, the assignment path keeps. It reports whether
// any field was written.
func (e *Engine) deriveFrom(source Key, amount string, keepOnEmpty bool) bool {
	sourceUSD := e.reg.priceOf(source)
	if !sourceUSD.IsPositive() {
		return false
	}
	written := false
	for _, k := range e.keys {
		if k == source {
			continue
		}
		targetUSD := e.reg.priceOf(k)
		if !targetUSD.IsPositive() {
			continue
		}
		derived := Convert(amount, sourceUSD, targetUSD)
		if derived == "" && keepOnEmpty {
			continue
		}
		if e.store.setDerived(k, derived) {
			written = true
		}
	}
	return written
}
