// Command assess evaluates a complete answer set from the command line and
// prints the full output contract plus the gate trace and per-domain
// subtotals, for regression and manual validation without the surrounding
// application.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"caretier/internal/config"
	"caretier/internal/engine"
	"caretier/internal/model"
)

func main() {
	answersPath := flag.String("answers", "-", "JSON answer set file, or - for stdin")
	rulesPath := flag.String("rules", "", "optional YAML rule set override")
	hoursMode := flag.String("hours-mode", "", "override hours estimator mode: off, shadow, active")
	compareHours := flag.Bool("compare-hours", false, "include the hours estimate regardless of tier")
	effectFlags := flag.String("effect-flags", "", "comma-separated effect flag ids")
	flag.Parse()

	switch *hoursMode {
	case "", "off", "shadow", "active":
	default:
		log.Fatalf("Unknown hours mode %q", *hoursMode)
	}

	rules, err := config.LoadRuleSet(*rulesPath)
	if err != nil {
		log.Fatal("Failed to load rule set: ", err)
	}

	raw, err := readAnswers(*answersPath)
	if err != nil {
		log.Fatal("Failed to read answers: ", err)
	}

	var flags []string
	if *effectFlags != "" {
		flags = strings.Split(*effectFlags, ",")
	}

	eng := engine.New(rules)
	rec := eng.Evaluate(context.Background(), raw, flags, engine.Options{
		HoursMode:    config.HoursMode(*hoursMode),
		CompareHours: *compareHours,
	})

	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		log.Fatal("Failed to encode recommendation: ", err)
	}
	fmt.Println(string(out))

	fmt.Println("\nGate trace:")
	for _, d := range rec.Audit.GateTrace {
		fmt.Printf("  [%s] %s", d.Gate, d.Reason)
		if len(d.Blocked) > 0 {
			fmt.Printf(" (blocked: %v)", d.Blocked)
		}
		fmt.Println()
	}

	fmt.Println("\nDomain subtotals:")
	for _, d := range model.AllDomains {
		fmt.Printf("  %-14s %d\n", d, rec.Audit.DomainSubtotals[d])
	}
}

func readAnswers(path string) (model.RawAnswers, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	var raw model.RawAnswers
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse answer set: %w", err)
	}
	return raw, nil
}
