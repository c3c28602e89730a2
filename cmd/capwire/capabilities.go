// Capabilities command: probe the context and check the plan.
package main

import (
	"fmt"

	"github.com/sghaida/capwire/capability"
	"github.com/sghaida/capwire/clock"
	"github.com/sghaida/capwire/examples"
	"github.com/sghaida/capwire/wire"
	"github.com/spf13/cobra"
)

var capabilitiesCmd = &cobra.Command{
	Use:   "capabilities",
	Short: "Probe the configured context and check the plan",
	Long: `Capabilities probes the context against each built-in contract,
lists the fault classes it can absorb, and checks every binding of the
plan. The clock and query contracts read as unsatisfied on purpose: the
clock enters the plan as a binding and querying is composed, not
context-provided.`,
	Args: cobra.NoArgs,
	RunE: runCapabilities,
}

func runCapabilities(_ *cobra.Command, _ []string) error {
	fmt.Printf("context %T\n", app)

	contracts := []capability.Contract{
		capability.BlobContract(),
		capability.CacheContract[string, examples.Person](),
		capability.QueryContract[string, examples.Person](),
		capability.ClockContract(),
		capability.FaultContract(),
	}
	fmt.Println("contracts")
	for _, c := range contracts {
		mark := "ok"
		if err := c.Verify(app); err != nil {
			mark = "unsatisfied"
		}
		fmt.Printf("  %-60s %s\n", c.Name, mark)
	}

	fmt.Println("fault classes")
	for _, class := range app.Faults().Classes() {
		fmt.Printf("  %s\n", class)
	}

	plan, err := wire.NewPlan(app, appBindings(cfg, clock.System())...)
	if err != nil {
		return err
	}
	fmt.Println("plan")
	for _, key := range plan.Keys() {
		if err := plan.Check(key); err != nil {
			fmt.Printf("  %-28s %v\n", key, err)
			continue
		}
		fmt.Printf("  %-28s ok\n", key)
	}
	return nil
}
