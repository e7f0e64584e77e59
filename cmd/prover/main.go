// Command prover runs the worked end-to-end scenarios from the sequent
// calculus prover's specification and reports whether each is provable.
// It is a demonstration harness, not the REPL/surface-syntax controller
// the engine assumes sits in front of it: formulas here are built
// directly from logic.Expression constructors.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gitrdm/seqprover/pkg/logic"
)

type scenario struct {
	name   string
	axioms []logic.Expression
	goal   logic.Expression
}

func scenarios() []scenario {
	x := logic.NewVariable("x")
	y := logic.NewVariable("y")
	p := logic.NewPredicate("P")
	a := logic.NewPredicate("A")
	b := logic.NewPredicate("B")
	r := func(u, v logic.Expression) logic.Expression { return logic.NewPredicate("R", u, v) }

	return []scenario{
		{
			name: "propositional-axiom",
			goal: logic.NewImplies(p, p),
		},
		{
			name: "de-morgan",
			goal: logic.NewImplies(
				logic.NewNot(logic.NewOr(a, b)),
				logic.NewAnd(logic.NewNot(a), logic.NewNot(b)),
			),
		},
		{
			name:   "universal-instantiation",
			axioms: []logic.Expression{logic.NewForAll(x, logic.NewPredicate("P", x))},
			goal:   logic.NewPredicate("P", logic.NewFunctor("a")),
		},
		{
			name:   "existential-introduction",
			axioms: []logic.Expression{logic.NewPredicate("P", logic.NewFunctor("a"))},
			goal:   logic.NewThereExists(x, logic.NewPredicate("P", x)),
		},
		{
			name: "syllogism",
			axioms: []logic.Expression{
				logic.NewForAll(x, logic.NewImplies(logic.NewPredicate("Man", x), logic.NewPredicate("Mortal", x))),
				logic.NewPredicate("Man", logic.NewFunctor("socrates")),
			},
			goal: logic.NewPredicate("Mortal", logic.NewFunctor("socrates")),
		},
		{
			name: "quantifier-swap-valid-direction",
			goal: logic.NewImplies(
				logic.NewThereExists(x, logic.NewForAll(y, r(x, y))),
				logic.NewForAll(y, logic.NewThereExists(x, r(x, y))),
			),
		},
	}
}

func main() {
	var (
		trace  bool
		budget time.Duration
	)

	root := &cobra.Command{
		Use:   "prover",
		Short: "Run the sequent calculus prover's worked scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.NewNop()
			if trace {
				built, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				logger = built
				defer logger.Sync() //nolint:errcheck
			}

			exitCode := 0
			for _, sc := range scenarios() {
				runID := uuid.New().String()
				log := logger.With(zap.String("run", runID), zap.String("scenario", sc.name))
				tracer := logic.NewTracer(log)

				ctx := context.Background()
				var cancel context.CancelFunc
				if budget > 0 {
					ctx, cancel = context.WithTimeout(ctx, budget)
				}

				provable, err := logic.Prove(ctx, sc.axioms, sc.goal, logic.WithTracer(tracer))
				if cancel != nil {
					cancel()
				}

				switch {
				case err != nil:
					fmt.Printf("%-35s cancelled: %v\n", sc.name, err)
					exitCode = 1
				case provable:
					fmt.Printf("%-35s provable\n", sc.name)
				default:
					fmt.Printf("%-35s not provable\n", sc.name)
					exitCode = 1
				}
			}
			if exitCode != 0 {
				os.Exit(exitCode)
			}
			return nil
		},
	}

	root.Flags().BoolVar(&trace, "trace", false, "log the proof-search trace (sequent and substitution lines)")
	root.Flags().DurationVar(&budget, "budget", 0, "maximum wall-clock time per scenario (0 = unbounded)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
