package logic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvePropositionalAxiom(t *testing.T) {
	// P -> P, zero axioms.
	p := NewPredicate("P")
	goal := NewImplies(p, p)

	ok, err := Prove(context.Background(), nil, goal)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProveDeMorgan(t *testing.T) {
	a := NewPredicate("A")
	b := NewPredicate("B")
	goal := NewImplies(
		NewNot(NewOr(a, b)),
		NewAnd(NewNot(a), NewNot(b)),
	)

	ok, err := Prove(context.Background(), nil, goal)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProveUniversalInstantiation(t *testing.T) {
	x := NewVariable("x")
	axiom := NewForAll(x, NewPredicate("P", x))
	goal := NewPredicate("P", NewFunctor("a"))

	ok, err := Prove(context.Background(), []Expression{axiom}, goal)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProveExistentialIntroduction(t *testing.T) {
	axiom := NewPredicate("P", NewFunctor("a"))
	x := NewVariable("x")
	goal := NewThereExists(x, NewPredicate("P", x))

	ok, err := Prove(context.Background(), []Expression{axiom}, goal)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProveSyllogism(t *testing.T) {
	x := NewVariable("x")
	manImpliesMortal := NewForAll(x, NewImplies(NewPredicate("Man", x), NewPredicate("Mortal", x)))
	manSocrates := NewPredicate("Man", NewFunctor("socrates"))
	goal := NewPredicate("Mortal", NewFunctor("socrates"))

	ok, err := Prove(context.Background(), []Expression{manImpliesMortal, manSocrates}, goal)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProveQuantifierSwapValidDirection(t *testing.T) {
	x := NewVariable("x")
	y := NewVariable("y")
	r := func(a, b Expression) Expression { return NewPredicate("R", a, b) }

	// (exists x. forall y. R(x,y)) -> (forall y. exists x. R(x,y))
	goal := NewImplies(
		NewThereExists(x, NewForAll(y, r(x, y))),
		NewForAll(y, NewThereExists(x, r(x, y))),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ok, err := Prove(ctx, nil, goal)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProveQuantifierSwapInvalidDirectionDoesNotCloseUnderBudget(t *testing.T) {
	x := NewVariable("x")
	y := NewVariable("y")
	r := func(a, b Expression) Expression { return NewPredicate("R", a, b) }

	// (forall y. exists x. R(x,y)) -> (exists x. forall y. R(x,y)) -- invalid.
	goal := NewImplies(
		NewForAll(y, NewThereExists(x, r(x, y))),
		NewThereExists(x, NewForAll(y, r(x, y))),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	ok, err := Prove(ctx, nil, goal)
	if err != nil {
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	} else {
		assert.False(t, ok)
	}
}

func TestProveReturnsFalseOnStuckBranch(t *testing.T) {
	goal := NewPredicate("P") // no axioms, an atomic goal with no matching axiom never closes.

	ok, err := Prove(context.Background(), nil, goal)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProveCancellationIsDistinguishableFromNotProvable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // already cancelled

	axiom := NewForAll(NewVariable("x"), NewPredicate("P", NewVariable("x")))
	goal := NewPredicate("P", NewFunctor("a"))

	ok, err := Prove(ctx, []Expression{axiom}, goal)
	assert.False(t, ok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
