package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringEqualityAgreesWithStructuralEquality(t *testing.T) {
	a := NewAnd(NewPredicate("P", NewVariable("x")), NewPredicate("Q"))
	b := NewAnd(NewPredicate("P", NewVariable("x")), NewPredicate("Q"))
	c := NewAnd(NewPredicate("P", NewVariable("y")), NewPredicate("Q"))

	require.Equal(t, a.String(), b.String())
	assert.True(t, a.Equal(b))

	assert.NotEqual(t, a.String(), c.String())
	assert.False(t, a.Equal(c))
	assert.Equal(t, a.String() == c.String(), a.Equal(c))
}

func TestFreeVariablesExcludeBoundVariable(t *testing.T) {
	x := NewVariable("x")
	body := NewPredicate("P", x, NewVariable("y"))

	forAll := NewForAll(x, body)
	assert.NotContains(t, forAll.FreeVariables(), "x")
	assert.Contains(t, forAll.FreeVariables(), "y")

	exists := NewThereExists(x, body)
	assert.NotContains(t, exists.FreeVariables(), "x")
	assert.Contains(t, exists.FreeVariables(), "y")
}

func TestQuantificationDoesNotRemoveFreeTerms(t *testing.T) {
	x := NewVariable("x")
	tm := NewTerm("t1")
	body := NewPredicate("P", x, tm)

	forAll := NewForAll(x, body)
	assert.Contains(t, forAll.FreeTerms(), "t1")
}

func TestOccursFindsUnificationTermAnywhere(t *testing.T) {
	t1 := NewTerm("t1")
	nested := NewFunctor("f", NewVariable("x"), NewFunctor("g", t1))

	assert.True(t, nested.Occurs(t1))
	assert.False(t, nested.Occurs(NewTerm("t2")))
}

func TestReplaceRebuildsStructurally(t *testing.T) {
	x := NewVariable("x")
	a := NewFunctor("a")
	pred := NewPredicate("P", x, x)

	replaced := pred.Replace(x, a)
	assert.Equal(t, "P(a, a)", replaced.String())
	// original is untouched: replace never mutates.
	assert.Equal(t, "P(x, x)", pred.String())
}

func TestReplaceIsIdempotentWhenReplacementOmitsTarget(t *testing.T) {
	x := NewVariable("x")
	a := NewFunctor("a")
	pred := NewPredicate("P", x, NewFunctor("f", x))

	once := pred.Replace(x, a)
	twice := once.Replace(x, a)
	assert.Equal(t, once.String(), twice.String())
}

func TestSetCreationTimePropagatesToChildren(t *testing.T) {
	t1 := NewTerm("t1")
	f := NewFunctor("f", t1, NewVariable("x"))
	pred := NewPredicate("P", f)

	pred.SetCreationTime(7)
	assert.Equal(t, 7, pred.CreationTime())
	assert.Equal(t, 7, f.CreationTime())
	assert.Equal(t, 7, t1.CreationTime())
}

func TestCanonicalPrintedForms(t *testing.T) {
	x := NewVariable("x")
	p := NewPredicate("P", x)
	q := NewPredicate("Q")

	assert.Equal(t, "¬P(x)", NewNot(p).String())
	assert.Equal(t, "(P(x) ∧ Q)", NewAnd(p, q).String())
	assert.Equal(t, "(P(x) ∨ Q)", NewOr(p, q).String())
	assert.Equal(t, "(P(x) → Q)", NewImplies(p, q).String())
	assert.Equal(t, "(∀x. P(x))", NewForAll(x, p).String())
	assert.Equal(t, "(∃x. P(x))", NewThereExists(x, p).String())
	assert.Equal(t, "Q", q.String())
	assert.Equal(t, "f(a, b)", NewFunctor("f", NewFunctor("a"), NewFunctor("b")).String())
}

func TestIsAtomicOnlyTrueForPredicate(t *testing.T) {
	assert.True(t, IsAtomic(NewPredicate("P")))
	assert.False(t, IsAtomic(NewFunctor("f")))
	assert.False(t, IsAtomic(NewNot(NewPredicate("P"))))
}
