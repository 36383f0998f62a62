package converter

import "testing"

func TestEngine_FocusBlurToggling(t *testing.T) {
	e := NewPair("1000", "", nil, nil, nil)

	e.Blur(From)
	if got := e.Value(From); got != "1,000" {
		t.Fatalf("after blur, from = %q, want %q", got, "1,000")
	}

	e.Focus(From)
	if got := e.Value(From); got != "1000" {
		t.Errorf("after focus, from = %q, want raw %q", got, "1000")
	}

	e.Blur(From)
	if got := e.Value(From); got != "1,000" {
		t.Errorf("after blur, from = %q, want %q", got, "1,000")
	}
}

func TestEngine_AtMostOneRawField(t *testing.T) {
	e := NewPair("1000", "2000", nil, nil, nil)
	e.Blur(From)
	e.Blur(To)

	e.Focus(From)
	// Focusing the other field implicitly reformats the first one, even if
	// the host never delivered its blur event.
	e.Focus(To)
	if got := e.Value(From); got != "1,000" {
		t.Errorf("from = %q, want it back to display mode", got)
	}
	if got := e.Value(To); got != "2000" {
		t.Errorf("to = %q, want raw edit text", got)
	}
}

func TestEngine_TogglingNeverPropagates(t *testing.T) {
	e := NewPair("1", "", coin("BTC", 50000), coin("ETH", 2000), nil)
	if got := e.Value(To); got != "25.00" {
		t.Fatalf("to = %q, want %q", got, "25.00")
	}

	// The display toggle rewrites the focused slot only; the other side and
	// the anchor are out of its reach.
	e.Focus(From)
	e.Blur(From)
	if got := e.Value(To); got != "25.00" {
		t.Errorf("to = %q, want it untouched by focus/blur on from", got)
	}

	// An edit right after the toggle still anchors correctly.
	e.SetText(From, "2")
	if got := e.Value(To); got != "50.00" {
		t.Errorf("to = %q, want %q", got, "50.00")
	}
}

func TestEngine_EditWhileFocused(t *testing.T) {
	e := NewPair("1", "", coin("AAA", 1), coin("BBB", 1), nil)

	e.Focus(From)
	e.SetText(From, "123456.7")
	if got := e.Value(To); got != "123,457" {
		t.Errorf("to = %q, want %q", got, "123,457")
	}
	e.Blur(From)
	if got := e.Value(From); got != "123,456.7" {
		t.Errorf("after blur, from = %q, want grouped text", got)
	}
}
