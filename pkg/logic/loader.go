package logic

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// ErrNotAFormula is the sentinel cause reported for an Expression that
// cannot serve as an axiom or goal: a bare Variable, Term or Functor
// rather than a Predicate, Not, And, Or, Implies, ForAll or ThereExists.
var ErrNotAFormula = errors.New("logic: expression is not a formula")

// BuildAxiomSet validates that every supplied expression is a
// well-formed formula and returns the accepted subset, reporting every
// rejected entry at once (rather than failing on the first) via an
// aggregated multierr. This is input validation for a controller to
// call before invoking Prove; the engine itself assumes well-formed
// inputs (spec.md §7).
func BuildAxiomSet(candidates []Expression) ([]Expression, error) {
	accepted := make([]Expression, 0, len(candidates))
	var errs error
	for i, c := range candidates {
		if !isFormula(c) {
			errs = multierr.Append(errs, errors.Wrapf(ErrNotAFormula, "axiom %d (%s)", i, c.String()))
			continue
		}
		accepted = append(accepted, c)
	}
	return accepted, errs
}

func isFormula(e Expression) bool {
	switch e.(type) {
	case *Predicate, *Not, *And, *Or, *Implies, *ForAll, *ThereExists:
		return true
	default:
		return false
	}
}
