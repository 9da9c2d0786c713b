package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/youruser/deckapp/internal/cards"
	"github.com/youruser/deckapp/internal/config"
	"github.com/youruser/deckapp/internal/deck"
	"github.com/youruser/deckapp/internal/util"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to YAML config file")
	data := flag.String("data", "", "card database (overrides config)")
	out := flag.String("out", "", "write the normalized deck file here when it is exportable")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: deckcheck [--data PATH] [--out FILE] DECKFILE")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *data != "" {
		cfg.DataPath = *data
	}
	logger := util.NewLogger(os.Stderr, cfg.LogLevel)

	repo, err := cards.Load(context.Background(), cfg.DataPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	text, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	d := deck.New(repo)
	rep := d.Import(string(text))
	if rep.Unresolved > 0 {
		logger.Warn("unresolved deck lines skipped", "count", rep.Unresolved)
	}
	if rep.Rejected > 0 {
		logger.Warn("cards refused by zone rules", "count", rep.Rejected)
	}
	for _, zone := range []cards.Zone{cards.ZoneMain, cards.ZoneExtra} {
		v, _ := d.View(zone)
		printZone(v)
	}

	exported, err := d.Export()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *out != "" {
		if err := util.WriteFile(*out, []byte(exported)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Println("deck is valid")
}

func printZone(v deck.ZoneView) {
	fmt.Printf("%s (%d / %d) %s\n", v.Zone, v.TotalCount, v.Limit, v.LimitStatus)
	for _, g := range v.Groups {
		fmt.Printf("  %dx %d %s\n", g.Count, g.Card.ID, g.Card.Name)
	}
}
