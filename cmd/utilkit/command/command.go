// Package command provides main command line interface
package command

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/alecthomas/kong"

	"github.com/takuo/go-utilkit/internal/fetcher"
	"github.com/takuo/go-utilkit/pkg/utils"
)

// CLI main command line interface
type CLI struct {
	Add      AddCmd      `cmd:"" help:"Print the sum of two numbers."`
	Multiply MultiplyCmd `cmd:"" help:"Print the product of two numbers."`
	Greet    GreetCmd    `cmd:"" help:"Print a greeting for a name."`
	Filter   FilterCmd   `cmd:"" help:"Print the even values of a number sequence."`
	Fetch    FetchCmd    `cmd:"" help:"Simulate delayed data fetches."`

	Version kong.VersionFlag `short:"v" long:"version" help:"Print version and exit"`
}

// Runtime holds the capabilities commands run against. main binds stdout
// and the production fetcher; tests bind a buffer and a stub.
type Runtime struct {
	Out     io.Writer
	Fetcher fetcher.Fetcher
}

// NewRuntime returns the production Runtime.
func NewRuntime() *Runtime {
	return &Runtime{
		Out:     os.Stdout,
		Fetcher: fetcher.NewDelayed(),
	}
}

// AddCmd prints the sum of two numbers.
type AddCmd struct {
	A float64 `arg:"" help:"First operand"`
	B float64 `arg:"" help:"Second operand"`
}

// Run run the add command
func (c *AddCmd) Run(rt *Runtime) error {
	fmt.Fprintln(rt.Out, formatNumber(utils.Add(c.A, c.B)))
	return nil
}

// MultiplyCmd prints the product of two numbers. Arguments are parsed
// leniently: anything that is not a number is handed to Multiply as-is so
// its validation decides.
type MultiplyCmd struct {
	A string `arg:"" help:"First operand"`
	B string `arg:"" help:"Second operand"`
}

// Run run the multiply command
func (c *MultiplyCmd) Run(rt *Runtime) error {
	product, err := utils.Multiply(numeric(c.A), numeric(c.B))
	if err != nil {
		return fmt.Errorf("failed to multiply: %w", err)
	}
	fmt.Fprintln(rt.Out, formatNumber(product))
	return nil
}

// GreetCmd prints a greeting.
type GreetCmd struct {
	Name string `short:"n" long:"name" help:"Name to greet (falls back to unknown)"`
}

// Run run the greet command
func (c *GreetCmd) Run(rt *Runtime) error {
	fmt.Fprintln(rt.Out, utils.Greet(c.Name))
	return nil
}

// FilterCmd prints the even values of its arguments, in order.
type FilterCmd struct {
	Values []string `arg:"" optional:"" help:"Sequence of numbers to filter"`
}

// Run run the filter command
func (c *FilterCmd) Run(rt *Runtime) error {
	seq := make([]any, len(c.Values))
	for i, v := range c.Values {
		seq[i] = numeric(v)
	}
	evens, err := utils.FilterEven(seq)
	if err != nil {
		return fmt.Errorf("failed to filter: %w", err)
	}
	fmt.Fprintf(rt.Out, "%v\n", evens)
	return nil
}

// FetchCmd runs one simulated fetch per delay argument.
type FetchCmd struct {
	Concurrency int     `short:"c" long:"concurrency" default:"4" help:"Number of concurrent fetches"`
	DelaysMs    []int64 `arg:"" name:"delay-ms" help:"Fetch delays in milliseconds"`
}

// Run run the fetch command
func (c *FetchCmd) Run(rt *Runtime) error {
	delays := make([]time.Duration, len(c.DelaysMs))
	for i, ms := range c.DelaysMs {
		delays[i] = time.Duration(ms) * time.Millisecond
	}
	log.Printf("Fetching %d items with concurrency %d.\n", len(delays), c.Concurrency)

	results, err := fetcher.FetchAll(context.Background(), rt.Fetcher, delays, c.Concurrency)
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	for _, r := range results {
		fmt.Fprintln(rt.Out, r)
	}
	return nil
}

// numeric converts s to a float64 when it parses as one, otherwise returns
// s unchanged so the utilities' own validation rejects it.
func numeric(s string) any {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
