// Package cmd implements the CLI application behind the crc converter tool.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/converter/cryptorank"
	"github.com/google/subcommands"
)

// Commands lists the subcommands a main package registers.
var Commands = []subcommands.Command{
	&convertCmd{},
	&currenciesCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

const EnvAPIKey = "CRC_API_KEY"

var apiKey = flag.String("api-key", "", "cryptorank API key (defaults to $"+EnvAPIKey+")")
var Verbose = flag.Bool("v", false, "enable verbose logging")

// NewClient is the central function to open a catalog client from the app
// configuration.
func NewClient() *cryptorank.Client {
	key := *apiKey
	if key == "" {
		key = os.Getenv(EnvAPIKey)
	}
	return cryptorank.NewClient(key)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer is not available.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
