package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreshNameAvoidsExistingVariablesAndTerms(t *testing.T) {
	s := NewSequent([]Expression{NewPredicate("P", NewVariable("t1"))}, NewPredicate("Q", NewTerm("t2")))

	name := s.FreshName("t")
	assert.NotEqual(t, "t1", name)
	assert.NotEqual(t, "t2", name)
	assert.Equal(t, "t3", name)
}

func TestFreshNameStartsAtOneWhenNoConflict(t *testing.T) {
	s := NewSequent(nil, NewPredicate("P"))
	assert.Equal(t, "v1", s.FreshName("v"))
}

func TestFormulaSetReinsertionMovesToEndOfOrder(t *testing.T) {
	fs := NewFormulaSet()
	a := NewPredicate("A")
	b := NewPredicate("B")
	fs.Set(a, 0)
	fs.Set(b, 0)
	fs.Delete(a)
	fs.Set(a, 1)

	entries := fs.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "B", entries[0].Formula.String())
	assert.Equal(t, "A", entries[1].Formula.String())
}

func TestSequentEqualityIgnoresDepthAndOrder(t *testing.T) {
	a := NewSequent([]Expression{NewPredicate("A"), NewPredicate("B")}, NewPredicate("C"))
	b := NewSequent([]Expression{NewPredicate("B"), NewPredicate("A")}, NewPredicate("C"))
	b.Left.Set(NewPredicate("A"), 9) // different depth, same membership

	assert.True(t, a.Equal(b))
}

func TestUnificationPairsOnlyIncludeIndividuallyUnifiablePairs(t *testing.T) {
	s := NewSequent(
		[]Expression{NewPredicate("P", NewTerm("t1")), NewPredicate("Q", NewFunctor("a"))},
		NewPredicate("P", NewFunctor("b")),
	)
	pairs := s.UnificationPairs()
	require.Len(t, pairs, 1)
	assert.Equal(t, "P(t1)", pairs[0].Left.String())
	assert.Equal(t, "P(b)", pairs[0].Right.String())
}

func TestSiblingGroupSharedAcrossMembers(t *testing.T) {
	group := NewSiblingGroup()
	a := &Sequent{Left: NewFormulaSet(), Right: NewFormulaSet(), Siblings: group}
	b := &Sequent{Left: NewFormulaSet(), Right: NewFormulaSet(), Siblings: group}
	group.Add(a)
	group.Add(b)

	assert.Equal(t, 2, a.Siblings.Len())
	a.Siblings.Remove(a)
	assert.Equal(t, 1, b.Siblings.Len())
}
