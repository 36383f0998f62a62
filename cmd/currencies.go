package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/converter"
	"github.com/etnz/converter/cryptorank"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type currenciesCmd struct {
	limit   int
	offset  int
	sort    string
	symbols string
}

func (*currenciesCmd) Name() string     { return "currencies" }
func (*currenciesCmd) Synopsis() string { return "list a page of the currency catalog" }
func (*currenciesCmd) Usage() string {
	return `crc currencies [-n <limit>] [-o <offset>] [-sort <order>] [-symbols <list>]

  Lists one page of the catalog with USD prices, optionally filtered by
  symbols and sorted by price or rank (prefix with '-' for descending).

Usage Examples:
$ crc currencies -n 10 -sort -rank
$ crc currencies -symbols BTC,ETH,SOL

`
}

func (p *currenciesCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.limit, "n", 20, "Page size.")
	f.IntVar(&p.offset, "o", 0, "Page offset.")
	f.StringVar(&p.sort, "sort", "rank", "Sort order (price, -price, rank, -rank).")
	f.StringVar(&p.symbols, "symbols", "", "Comma-separated symbol filter.")
}

func (p *currenciesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	params := cryptorank.ListParams{
		Limit:  p.limit,
		Offset: p.offset,
		Sort:   cryptorank.SortOrder(p.sort),
	}
	if p.symbols != "" {
		params.Symbols = strings.Split(p.symbols, ",")
	}

	page, err := NewClient().List(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing currencies: %v\n", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	b.WriteString("| Rank | Symbol | Name | Price (USD) | 24h |\n")
	b.WriteString("|---:|:---|:---|---:|---:|\n")
	for _, c := range page.Currencies {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %+.2f%% |\n",
			c.Rank, c.Symbol, c.Name, priceCell(c), c.PercentChange24h)
	}
	fmt.Fprintf(&b, "\nShowing %d of %d currencies.\n", len(page.Currencies), page.Total)
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

// priceCell renders a USD price, keeping full precision for sub-cent coins
// that a fiat formatter would flatten to $0.00.
func priceCell(c converter.Currency) string {
	if !c.HasPrice() {
		return "-"
	}
	if c.USDPrice.LessThan(decimal.NewFromFloat(0.01)) {
		return "$" + c.USDPrice.String()
	}
	return converter.USD(c.USDPrice).String()
}
