// Package converter implements the linked-value propagation engine behind a
// currency converter: a fixed set of numeric input fields, each assigned a
// priced currency, kept mutually consistent through a shared USD price anchor.
//
// The core functionalities include:
//   - Conversion Math: a pure function deriving a target amount from a source
//     amount and two USD prices, with the display rounding policy of the
//     converter (two decimals below 1000, grouped integers above).
//   - Propagation Engine: the state machine deciding which field is the edit
//     source, recomputing every other priced field from it, and reconciling
//     asynchronous currency (re)assignments against the last committed
//     amounts rather than values still in flight.
//   - Input Modes: the raw/formatted text transition on focus and blur,
//     kept strictly out of the propagation path.
//
// The engine performs no I/O and never returns an error: invalid input,
// missing prices and degenerate arithmetic all degrade silently to leaving
// the affected field untouched or empty. Catalog retrieval lives in the
// cryptorank subpackage; this package serves as the foundational logic for
// the `crc` command-line tool.
package converter
