package converter

import "github.com/shopspring/decimal"

// registry holds the currency assigned to each field, or nil while the user
// has not picked one yet. Assigning never triggers recomputation by itself;
// that is the engine's call.
type registry struct {
	keys       []Key
	currencies map[Key]*Currency
}

func newRegistry(keys []Key, initial map[Key]*Currency) *registry {
	r := &registry{
		keys:       keys,
		currencies: make(map[Key]*Currency, len(keys)),
	}
	for _, k := range keys {
		r.currencies[k] = initial[k]
	}
	return r
}

func (r *registry) assign(key Key, c *Currency) {
	if _, ok := r.currencies[key]; ok {
		r.currencies[key] = c
	}
}

func (r *registry) get(key Key) *Currency { return r.currencies[key] }

// priceOf returns the USD price for the field's currency, zero when the
// field has no currency or the price is unknown.
func (r *registry) priceOf(key Key) decimal.Decimal {
	return r.currencies[key].Price()
}

// complete reports the bootstrap condition: every field holds an assigned
// currency. Cross-field recomputation is gated on it.
func (r *registry) complete() bool {
	for _, k := range r.keys {
		if r.currencies[k] == nil {
			return false
		}
	}
	return true
}

// swap exchanges the currencies assigned to two keys.
func (r *registry) swap(a, b Key) {
	r.currencies[a], r.currencies[b] = r.currencies[b], r.currencies[a]
}
