// Greet command: prove the configured greeter and run it.
package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sghaida/capwire/clock"
	"github.com/sghaida/capwire/fault"
	"github.com/sghaida/capwire/greet"
	"github.com/sghaida/capwire/wire"
	"github.com/spf13/cobra"
)

// flagAt pins the plan's clock; empty means the system clock.
var flagAt string

var greetCmd = &cobra.Command{
	Use:   "greet <id> [<id>...]",
	Short: "Greet people by identity",
	Long: `Greet proves the plan for the configured target (the gated greeter
unless --gated=false) and runs it once per identity. Greetings go to
stdout; faults are logged with their component, code and context.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGreet,
}

func init() {
	greetCmd.Flags().StringVar(&flagAt, "at", "", "pin the clock (RFC3339 or HH:MM)")
}

func runGreet(_ *cobra.Command, args []string) error {
	clk, err := greetClock()
	if err != nil {
		return err
	}

	plan, err := wire.NewPlan(app, appBindings(cfg, clk)...)
	if err != nil {
		return err
	}
	target := keyGreeter
	if cfg.Gated {
		target = keyGated
	}

	greeter, err := wire.Prove[greet.Greeter[appCtx, string]](plan, target)
	if err != nil {
		return err
	}
	logger.Debug().Str("target", string(target)).Msg("proof complete")

	failed := 0
	for _, id := range args {
		trace := uuid.NewString()
		line, err := greeter.Run(app, id)
		if err != nil {
			failed++
			logGreetFault(trace, id, err)
			continue
		}
		logger.Info().Str("trace", trace).Str("id", id).Msg("greeted")
		fmt.Println(line)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d greetings failed", failed, len(args))
	}
	return nil
}

// greetClock resolves --at into the clock the plan binds.
func greetClock() (clock.Clock, error) {
	if flagAt == "" {
		return clock.System(), nil
	}
	if t, err := time.Parse(time.RFC3339, flagAt); err == nil {
		return clock.Fixed(t), nil
	}
	t, err := time.Parse("15:04", flagAt)
	if err != nil {
		return nil, fmt.Errorf("parse --at %q: want RFC3339 or HH:MM", flagAt)
	}
	now := time.Now()
	return clock.Fixed(time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, time.Local)), nil
}

func logGreetFault(trace, id string, err error) {
	evt := logger.Error().Err(err).Str("trace", trace).Str("id", id)
	if f, ok := fault.As(err); ok {
		evt = evt.Str("component", f.Component()).Str("code", f.Code()).Fields(f.Context())
	}
	evt.Msg("greeting failed")
}
