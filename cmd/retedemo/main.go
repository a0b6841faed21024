// Command retedemo exercises the example package's hand-wired networks end
// to end, printing the activation set after each fact event so the
// incremental add/remove propagation is visible on the terminal.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/bittoy/rete/example"
	"github.com/bittoy/rete/types"
)

func main() {
	ctx := context.Background()
	config := types.NewConfig()

	if err := runSinglePattern(ctx, config); err != nil {
		log.Fatal(err)
	}
	if err := runPositiveJoin(ctx, config); err != nil {
		log.Fatal(err)
	}
	if err := runNegation(ctx, config); err != nil {
		log.Fatal(err)
	}
}

func runSinglePattern(ctx context.Context, config types.Config) error {
	net, r, err := example.SingleRulePattern(config)
	if err != nil {
		return err
	}

	fact := example.Event{Kind: "a", ID: 1}
	fmt.Println("-- single rule, single pattern --")

	if err := net.AddFact(ctx, fact); err != nil {
		return err
	}
	fmt.Printf("after add:    %+v\n", net.GetActivations(r.RuleID()))

	if err := net.RemoveFact(ctx, fact); err != nil {
		return err
	}
	fmt.Printf("after remove: %+v\n", net.GetActivations(r.RuleID()))
	return nil
}

func runPositiveJoin(ctx context.Context, config types.Config) error {
	net, r, err := example.PositiveJoin(config)
	if err != nil {
		return err
	}

	left := example.Event{Kind: "a", ID: 3}
	right := example.Event{Kind: "b", Val: 3}
	fmt.Println("-- positive join --")

	if err := net.AddFact(ctx, left); err != nil {
		return err
	}
	if err := net.AddFact(ctx, right); err != nil {
		return err
	}
	fmt.Printf("after both facts: %+v\n", net.GetActivations(r.RuleID()))

	if err := net.RemoveFact(ctx, left); err != nil {
		return err
	}
	fmt.Printf("after retracting left: %+v\n", net.GetActivations(r.RuleID()))
	return nil
}

func runNegation(ctx context.Context, config types.Config) error {
	net, r, err := example.Negation(config)
	if err != nil {
		return err
	}

	left := example.Event{Kind: "left", ID: 1}
	right := example.Event{Kind: "right", ID: 1}
	fmt.Println("-- negation --")

	if err := net.AddFact(ctx, left); err != nil {
		return err
	}
	fmt.Printf("after left only:       %+v\n", net.GetActivations(r.RuleID()))

	if err := net.AddFact(ctx, right); err != nil {
		return err
	}
	fmt.Printf("after matching right:  %+v\n", net.GetActivations(r.RuleID()))

	if err := net.RemoveFact(ctx, right); err != nil {
		return err
	}
	fmt.Printf("after retracting right: %+v\n", net.GetActivations(r.RuleID()))
	return nil
}
