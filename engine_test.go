package converter

import "testing"

func TestEngine_EndToEnd(t *testing.T) {
	e := NewPair("1", "", coin("BTC", 50000), coin("ETH", 2000), nil)

	// The constructor bootstraps the derived side from the initial amount.
	if got := e.Value(To); got != "25.00" {
		t.Fatalf("after bootstrap, to = %q, want %q", got, "25.00")
	}

	e.SetText(From, "2")
	if got := e.Value(To); got != "50.00" {
		t.Errorf("after editing from, to = %q, want %q", got, "50.00")
	}

	e.SetText(To, "100")
	if got := e.Value(From); got != "4.00" {
		t.Errorf("after editing to, from = %q, want %q", got, "4.00")
	}
}

// Every derived field is computed directly from the edited field, so all
// fields with known prices agree on the underlying USD value after any edit.
func TestEngine_StarConsistency(t *testing.T) {
	keys := []Key{"first", "second", "third"}
	e := New(keys,
		map[Key]string{"first": "1"},
		map[Key]*Currency{
			"first":  coin("AAA", 10),
			"second": coin("BBB", 5),
			"third":  coin("CCC", 2),
		}, nil)

	if got := e.Value("second"); got != "2.00" {
		t.Errorf("bootstrap second = %q, want %q", got, "2.00")
	}
	if got := e.Value("third"); got != "5.00" {
		t.Errorf("bootstrap third = %q, want %q", got, "5.00")
	}

	e.SetText("second", "10")
	if got := e.Value("first"); got != "5.00" {
		t.Errorf("first = %q, want %q", got, "5.00")
	}
	if got := e.Value("third"); got != "25.00" {
		t.Errorf("third = %q, want %q", got, "25.00")
	}
}

func TestEngine_RejectsInvalidText(t *testing.T) {
	e := NewPair("1", "", coin("BTC", 50000), coin("ETH", 2000), nil)

	for _, bad := range []string{"12a", "1.2.3", "-5", "1,000"} {
		e.SetText(From, bad)
		if got := e.Value(From); got != "1" {
			t.Errorf("after SetText(%q), from = %q, want the prior value", bad, got)
		}
		if got := e.Value(To); got != "25.00" {
			t.Errorf("after SetText(%q), to = %q, want it untouched", bad, got)
		}
	}
}

func TestEngine_EditWithoutSourcePrice(t *testing.T) {
	// Both fields have a currency but the edited one has no known quote:
	// the edit lands locally, no derived field is touched.
	e := NewPair("", "7", coin("NEW", 0), coin("ETH", 2000), nil)

	e.SetText(From, "3")
	if got := e.Value(From); got != "3" {
		t.Errorf("from = %q, want %q", got, "3")
	}
	if got := e.Value(To); got != "7" {
		t.Errorf("to = %q, want it untouched", got)
	}
}

func TestEngine_ClearingSourceClearsDerived(t *testing.T) {
	e := NewPair("1", "", coin("BTC", 50000), coin("ETH", 2000), nil)

	e.SetText(From, "")
	if got := e.Value(To); got != "" {
		t.Errorf("to = %q, want it cleared with the source", got)
	}
}

func TestEngine_BootstrapGating(t *testing.T) {
	e := New([]Key{From, To}, map[Key]string{From: "1"}, nil, nil)

	// First assignment: the other field has no currency yet, so the value
	// is stored with no visible side effect.
	e.AssignCurrency(To, coin("ETH", 2000))
	if got := e.Value(To); got != "" {
		t.Fatalf("before bootstrap, to = %q, want no change", got)
	}
	if got := e.Value(From); got != "1" {
		t.Fatalf("before bootstrap, from = %q, want no change", got)
	}

	// Completing the assignment triggers exactly one recompute, anchored on
	// the assigned field's last committed amount.
	e.AssignCurrency(From, coin("BTC", 50000))
	if got := e.Value(To); got != "25.00" {
		t.Errorf("after bootstrap, to = %q, want %q", got, "25.00")
	}
	if got := e.Value(From); got != "1" {
		t.Errorf("after bootstrap, from = %q, want it untouched", got)
	}
}

func TestEngine_ReassignAnchorsOnSnapshot(t *testing.T) {
	e := NewPair("1", "", coin("BTC", 50000), coin("ETH", 2000), nil)

	// Changing an already-assigned currency recomputes the other side from
	// the changed field's committed amount.
	e.AssignCurrency(From, coin("SOL", 100))
	if got := e.Value(To); got != "0.05" {
		t.Errorf("to = %q, want %q", got, "0.05")
	}
	if got := e.Currency(From).Symbol; got != "SOL" {
		t.Errorf("from currency = %q, want %q", got, "SOL")
	}
}

func TestEngine_BootstrapInEitherOrder(t *testing.T) {
	// Completing the bootstrap on the field that never held an amount must
	// still reconcile it: the recompute anchors on the field that did.
	e := New([]Key{From, To}, map[Key]string{From: "1"}, nil, nil)

	e.AssignCurrency(From, coin("BTC", 50000))
	e.AssignCurrency(To, coin("ETH", 2000))
	if got := e.Value(To); got != "25.00" {
		t.Errorf("to = %q, want %q", got, "25.00")
	}
	if got := e.Value(From); got != "1" {
		t.Errorf("from = %q, want it untouched", got)
	}
}

func TestEngine_AssignWithAllAnchorsEmpty(t *testing.T) {
	// With no committed amount anywhere there is nothing to reconcile:
	// completing the bootstrap must leave every field untouched.
	e := New([]Key{From, To}, nil, nil, nil)

	e.AssignCurrency(From, coin("BTC", 50000))
	e.AssignCurrency(To, coin("ETH", 2000))
	if got := e.Value(From); got != "" {
		t.Errorf("from = %q, want it empty still", got)
	}
	if got := e.Value(To); got != "" {
		t.Errorf("to = %q, want it empty still", got)
	}
}

func TestEngine_DerivesGroupedBigAmounts(t *testing.T) {
	// Derived results at or above 1000 come back as grouped text and must
	// land in the target field on every propagation path.
	e := NewPair("1", "", coin("BTC", 50000), coin("USDT", 1), nil)
	if got := e.Value(To); got != "50,000" {
		t.Fatalf("after bootstrap, to = %q, want %q", got, "50,000")
	}

	e.SetText(From, "2")
	if got := e.Value(To); got != "100,000" {
		t.Errorf("after editing from, to = %q, want %q", got, "100,000")
	}

	e.AssignCurrency(From, coin("BIG", 100000))
	if got := e.Value(To); got != "200,000" {
		t.Errorf("after reassigning from, to = %q, want %q", got, "200,000")
	}
}

func TestEngine_SwapDerivesGroupedBigAmount(t *testing.T) {
	e := NewPair("5", "", coin("ONE", 1), coin("BIG", 2000), nil)

	e.Switch(From, To)
	// 5 * 2000 / 1, grouped.
	if got := e.Value(To); got != "10,000" {
		t.Errorf("after switch, to = %q, want %q", got, "10,000")
	}
}

func TestEngine_DerivedSkipsUnpricedTargets(t *testing.T) {
	keys := []Key{"first", "second", "third"}
	e := New(keys,
		map[Key]string{"third": "9"},
		map[Key]*Currency{
			"first":  coin("AAA", 10),
			"second": coin("BBB", 5),
			"third":  coin("NEW", 0), // listed but not quoted yet
		}, nil)

	e.SetText("first", "2")
	if got := e.Value("second"); got != "4.00" {
		t.Errorf("second = %q, want %q", got, "4.00")
	}
	if got := e.Value("third"); got != "9" {
		t.Errorf("third = %q, want it untouched", got)
	}
}

func TestEngine_SwapAnchoring(t *testing.T) {
	e := NewPair("1", "", coin("ONE", 1), coin("TWO", 2), nil)

	e.SetText(From, "5")
	if got := e.Value(To); got != "2.50" {
		t.Fatalf("to = %q, want %q", got, "2.50")
	}

	e.Switch(From, To)
	// Currencies exchanged, and the to side recomputed from the committed
	// from amount through the swapped prices: 5 * 2 / 1.
	if got := e.Value(To); got != "10.00" {
		t.Errorf("after switch, to = %q, want %q", got, "10.00")
	}
	if got := e.Currency(From).Symbol; got != "TWO" {
		t.Errorf("from currency = %q, want %q", got, "TWO")
	}
	if got := e.Currency(To).Symbol; got != "ONE" {
		t.Errorf("to currency = %q, want %q", got, "ONE")
	}
}

func TestEngine_SwapIgnoresStaleDerivedText(t *testing.T) {
	e := NewPair("5", "", coin("ONE", 1), coin("TWO", 2), nil)

	// Simulate the to field being mid-reformat: the display toggle rewrites
	// the slot without committing, so the anchor still holds the edit.
	e.Focus(To)
	e.Switch(From, To)
	if got := e.Value(To); got != "10.00" {
		t.Errorf("after switch, to = %q, want %q", got, "10.00")
	}
}

func TestEngine_SwitchIsPairOnly(t *testing.T) {
	keys := []Key{"first", "second", "third"}
	e := New(keys, map[Key]string{"first": "1"}, map[Key]*Currency{
		"first":  coin("AAA", 10),
		"second": coin("BBB", 5),
		"third":  coin("CCC", 2),
	}, nil)

	before := []string{e.Value("first"), e.Value("second"), e.Value("third")}
	e.Switch("first", "second")
	after := []string{e.Value("first"), e.Value("second"), e.Value("third")}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("field %s changed from %q to %q, want Switch to be a no-op", keys[i], before[i], after[i])
		}
	}
	if got := e.Currency("first").Symbol; got != "AAA" {
		t.Errorf("first currency = %q, want it unswapped", got)
	}
}

type navigatorSpy struct {
	requests []Key
}

func (n *navigatorSpy) RequestCurrencySelection(key Key) {
	n.requests = append(n.requests, key)
}

func TestEngine_RequestCurrency(t *testing.T) {
	spy := &navigatorSpy{}
	e := NewPair("1", "", nil, nil, spy)

	e.RequestCurrency(From)
	e.RequestCurrency(To)
	e.RequestCurrency("elsewhere") // unknown key, dropped

	if len(spy.requests) != 2 || spy.requests[0] != From || spy.requests[1] != To {
		t.Errorf("navigator got %v, want [from to]", spy.requests)
	}

	// A host without navigation still must not blow up.
	bare := NewPair("1", "", nil, nil, nil)
	bare.RequestCurrency(From)
}

func TestNew_PanicsOnBadKeySet(t *testing.T) {
	for name, keys := range map[string][]Key{
		"empty":     {},
		"duplicate": {"a", "b", "a"},
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%v) did not panic", keys)
				}
			}()
			New(keys, nil, nil, nil)
		})
	}
}
