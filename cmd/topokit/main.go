package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/denismitr/topokit/set"
	"github.com/denismitr/topokit/topology"
)

func main() {
	elements := flag.String("set", "a,b,c", "comma separated elements of the base set")
	point := flag.String("point", "", "point whose neighbourhood system to print (defaults to the first element)")
	flag.Parse()

	s := set.NewOrderedSet[string]()
	for _, el := range strings.Split(*elements, ",") {
		if el = strings.TrimSpace(el); el != "" {
			s.Insert(el)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, s, *point); err != nil {
		slog.Error("topokit failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, s *set.OrderedSet[string], point string) error {
	header := color.New(color.FgGreen, color.Bold)

	header.Printf("topologies on %s\n", formatSubset(s))

	count := 0
	err := topology.Enumerate[string](ctx, s, func(f *topology.Family[string]) error {
		count++
		fmt.Printf("%4d: %s\n", count, formatFamily(f))
		return nil
	}, topology.WithProgress(func(pct float64) {
		fmt.Fprintf(os.Stderr, "\r%6.2f%%", pct)
	}))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return err
	}
	header.Printf("%d topologies found\n", count)

	if s.Len() == 0 {
		return nil
	}
	if point == "" {
		point = s.Items()[0]
	}

	discrete, err := topology.PowerSet[string](s)
	if err != nil {
		return err
	}

	ns, err := topology.NeighbourhoodSystem[string](s, discrete, point)
	if err != nil {
		return err
	}

	header.Printf("neighbourhood system of %q in the discrete topology\n", point)
	fmt.Println(formatFamily(ns))

	return nil
}

func formatSubset(sub set.Set[string]) string {
	return "{" + strings.Join(set.SortedItems[string](sub), ", ") + "}"
}

func formatFamily(f *topology.Family[string]) string {
	parts := make([]string, 0, f.Len())
	for _, sub := range f.Subsets() {
		parts = append(parts, formatSubset(sub))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
