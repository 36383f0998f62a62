package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/converter"
	"github.com/google/subcommands"
)

type convertCmd struct {
	amount   string
	doSwitch bool
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount between two catalog currencies" }
func (*convertCmd) Usage() string {
	return `crc convert [-a <amount>] [-switch] <from_symbol> <to_symbol>

  Fetches both currencies from the catalog and converts the amount through
  their USD prices.

Usage Examples:
$ crc convert BTC ETH
$ crc convert -a 0.25 -switch BTC USDT

`
}

func (p *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.amount, "a", "1", "Amount on the from side.")
	f.BoolVar(&p.doSwitch, "switch", false, "Also show the conversion with both sides exchanged.")
}

func (p *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: convert expects exactly a from and a to symbol.")
		return subcommands.ExitUsageError
	}
	from := strings.ToUpper(f.Arg(0))
	to := strings.ToUpper(f.Arg(1))

	index, err := NewClient().BySymbol(from, to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching currencies: %v\n", err)
		return subcommands.ExitFailure
	}
	fromCur, ok := index[from]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown symbol %q\n", from)
		return subcommands.ExitFailure
	}
	toCur, ok := index[to]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown symbol %q\n", to)
		return subcommands.ExitFailure
	}

	eng := converter.NewPair(p.amount, "", &fromCur, &toCur, nil)
	if eng.Value(converter.To) == "" {
		fmt.Fprintf(os.Stderr, "Error: no conversion possible between %s and %s (missing price or invalid amount)\n", from, to)
		return subcommands.ExitFailure
	}
	printPair(eng)

	if p.doSwitch {
		eng.Switch(converter.From, converter.To)
		printPair(eng)
	}
	return subcommands.ExitSuccess
}

// printPair prints the two sides of a pair engine in display formatting.
// Formatting happens on the way out only: the engine's own state, and the
// anchors a later Switch reads, stay exactly as committed.
func printPair(eng *converter.Engine) {
	fmt.Printf("%s %s = %s %s\n",
		converter.FormatGroups(eng.Value(converter.From)), eng.Currency(converter.From).Symbol,
		converter.FormatGroups(eng.Value(converter.To)), eng.Currency(converter.To).Symbol,
	)
}
