package logic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestBuildAxiomSetAcceptsWellFormedFormulas(t *testing.T) {
	formulas := []Expression{
		NewPredicate("P", NewFunctor("a")),
		NewForAll(NewVariable("x"), NewPredicate("Q", NewVariable("x"))),
	}

	accepted, err := BuildAxiomSet(formulas)
	require.NoError(t, err)
	assert.Len(t, accepted, 2)
}

func TestBuildAxiomSetReportsEveryRejectedEntry(t *testing.T) {
	formulas := []Expression{
		NewPredicate("P"),
		NewTerm("t1"),   // not a formula
		NewVariable("x"), // not a formula
	}

	accepted, err := BuildAxiomSet(formulas)
	require.Error(t, err)
	assert.Len(t, accepted, 1)
	assert.Len(t, multierr.Errors(err), 2)

	for _, e := range multierr.Errors(err) {
		assert.True(t, errors.Is(e, ErrNotAFormula))
	}
}

func TestBuildAxiomSetOnValidSubsetSucceeds(t *testing.T) {
	formulas := []Expression{NewTerm("t1")}
	accepted, err := BuildAxiomSet(formulas)
	require.Error(t, err)
	require.Len(t, accepted, 0)

	accepted, err = BuildAxiomSet(accepted)
	require.NoError(t, err)
	assert.Len(t, accepted, 0)
}
