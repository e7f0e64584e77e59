package logic

import "fmt"

// FormulaSet is an insertion-ordered multiset of formulas keyed by
// structural identity, each carrying a per-entry expansion depth. It
// behaves like the Python dict the original implementation keys formulas
// by: re-adding a previously deleted formula appends it at the end of
// iteration order, which matters for the depth/side tie-break in the
// prover's rule-selection step (§4.4).
type FormulaSet struct {
	order  []Expression
	depths map[string]int
	byKey  map[string]Expression
}

// NewFormulaSet returns an empty formula set.
func NewFormulaSet() *FormulaSet {
	return &FormulaSet{depths: make(map[string]int), byKey: make(map[string]Expression)}
}

// Set records formula at depth, overwriting any existing depth for it.
// A formula not previously present is appended to iteration order.
func (fs *FormulaSet) Set(formula Expression, depth int) {
	key := Hash(formula)
	if _, exists := fs.depths[key]; !exists {
		fs.order = append(fs.order, formula)
		fs.byKey[key] = formula
	}
	fs.depths[key] = depth
}

// SetIfAbsent records formula at depth only if it is not already present.
func (fs *FormulaSet) SetIfAbsent(formula Expression, depth int) {
	if !fs.Contains(formula) {
		fs.Set(formula, depth)
	}
}

// Delete removes formula. A later Set of the same formula is treated as
// new and appended at the end of iteration order.
func (fs *FormulaSet) Delete(formula Expression) {
	key := Hash(formula)
	if _, ok := fs.depths[key]; !ok {
		return
	}
	delete(fs.depths, key)
	delete(fs.byKey, key)
	for i, e := range fs.order {
		if Hash(e) == key {
			fs.order = append(fs.order[:i], fs.order[i+1:]...)
			break
		}
	}
}

// Contains reports whether formula is present.
func (fs *FormulaSet) Contains(formula Expression) bool {
	_, ok := fs.depths[Hash(formula)]
	return ok
}

// Depth returns the depth recorded for formula, if present.
func (fs *FormulaSet) Depth(formula Expression) (int, bool) {
	d, ok := fs.depths[Hash(formula)]
	return d, ok
}

// Entries returns every (formula, depth) pair in insertion order.
func (fs *FormulaSet) Entries() []struct {
	Formula Expression
	Depth   int
} {
	out := make([]struct {
		Formula Expression
		Depth   int
	}, len(fs.order))
	for i, e := range fs.order {
		out[i].Formula = e
		out[i].Depth = fs.depths[Hash(e)]
	}
	return out
}

// Keys returns the set of structural-identity keys present.
func (fs *FormulaSet) Keys() map[string]struct{} {
	out := make(map[string]struct{}, len(fs.byKey))
	for k := range fs.byKey {
		out[k] = struct{}{}
	}
	return out
}

// Clone returns a deep-enough copy: a new ordered map sharing the
// (immutable) Expression values but independent of further Set/Delete
// calls on the original.
func (fs *FormulaSet) Clone() *FormulaSet {
	out := NewFormulaSet()
	out.order = append([]Expression(nil), fs.order...)
	for k, v := range fs.depths {
		out.depths[k] = v
	}
	for k, v := range fs.byKey {
		out.byKey[k] = v
	}
	return out
}

func (fs *FormulaSet) freeVariables() VarSet {
	out := VarSet{}
	for _, e := range fs.order {
		out = out.Union(e.FreeVariables())
	}
	return out
}

func (fs *FormulaSet) freeTerms() TermSet {
	out := TermSet{}
	for _, e := range fs.order {
		out = out.Union(e.FreeTerms())
	}
	return out
}

func (fs *FormulaSet) String() string {
	s := ""
	for i, e := range fs.order {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}
	return s
}

// SiblingGroup is the shared, mutable set of sequents that share
// unification terms and must all close simultaneously under one
// substitution. Every member holds a pointer to the same group; every
// rule application inserts its successor sequent into the parent's group
// when there is one, and ∀-left/∃-right start a new group when the
// parent has none (or an empty one).
type SiblingGroup struct {
	members map[*Sequent]struct{}
}

// NewSiblingGroup returns an empty sibling group.
func NewSiblingGroup() *SiblingGroup {
	return &SiblingGroup{members: make(map[*Sequent]struct{})}
}

// Add inserts s into the group.
func (g *SiblingGroup) Add(s *Sequent) { g.members[s] = struct{}{} }

// Remove drops s from the group.
func (g *SiblingGroup) Remove(s *Sequent) { delete(g.members, s) }

// Members returns every sequent currently in the group.
func (g *SiblingGroup) Members() []*Sequent {
	out := make([]*Sequent, 0, len(g.members))
	for s := range g.members {
		out = append(out, s)
	}
	return out
}

// Len reports the number of sequents in the group.
func (g *SiblingGroup) Len() int { return len(g.members) }

// Sequent is a pair of formula multisets — left and right of the
// turnstile — plus an optional sibling group and the sequent's own
// search depth.
type Sequent struct {
	Left, Right *FormulaSet
	Siblings    *SiblingGroup
	Depth       int
}

// NewSequent builds a sequent at depth 0 with every axiom and the goal
// at expansion depth 0, and no sibling group.
func NewSequent(axioms []Expression, goal Expression) *Sequent {
	left := NewFormulaSet()
	for _, a := range axioms {
		left.Set(a, 0)
	}
	right := NewFormulaSet()
	right.Set(goal, 0)
	return &Sequent{Left: left, Right: right, Siblings: nil, Depth: 0}
}

// successor returns a copy of s with both sides cloned, the same
// sibling group reference, and depth advanced by one — the common
// shape every rule application in §4.5 builds from.
func (s *Sequent) successor() *Sequent {
	return &Sequent{
		Left:     s.Left.Clone(),
		Right:    s.Right.Clone(),
		Siblings: s.Siblings,
		Depth:    s.Depth + 1,
	}
}

// FreeVariables returns the free Variables across both sides.
func (s *Sequent) FreeVariables() VarSet {
	return s.Left.freeVariables().Union(s.Right.freeVariables())
}

// FreeTerms returns the free unification Terms across both sides.
func (s *Sequent) FreeTerms() TermSet {
	return s.Left.freeTerms().Union(s.Right.freeTerms())
}

// FreshName returns prefix+k for the smallest positive integer k such
// that neither a Variable nor a Term by that name occurs free anywhere
// in the sequent.
func (s *Sequent) FreshName(prefix string) string {
	vars := s.FreeVariables()
	terms := s.FreeTerms()
	for k := 1; ; k++ {
		name := fmt.Sprintf("%s%d", prefix, k)
		if _, ok := vars[name]; ok {
			continue
		}
		if _, ok := terms[name]; ok {
			continue
		}
		return name
	}
}

// UnificationPair is one candidate cross-side pair for closing a branch.
type UnificationPair struct {
	Left, Right Expression
}

// UnificationPairs enumerates every cross-side pair whose unification
// succeeds in isolation (without a shared substitution), in left-major,
// right-minor insertion order.
func (s *Sequent) UnificationPairs() []UnificationPair {
	var pairs []UnificationPair
	for _, l := range s.Left.order {
		for _, r := range s.Right.order {
			if _, ok := Unify(l, r); ok {
				pairs = append(pairs, UnificationPair{Left: l, Right: r})
			}
		}
	}
	return pairs
}

// closureKeys reports whether some structural-identity key appears on
// both sides — true means the sequent closes propositionally.
func (s *Sequent) closureKeys() bool {
	for k := range s.Left.byKey {
		if _, ok := s.Right.byKey[k]; ok {
			return true
		}
	}
	return false
}

// Equal reports whether two sequents hold the same formulas as sets on
// each side; depth metadata is ignored for identity.
func (s *Sequent) Equal(other *Sequent) bool {
	if len(s.Left.byKey) != len(other.Left.byKey) || len(s.Right.byKey) != len(other.Right.byKey) {
		return false
	}
	for k := range s.Left.byKey {
		if _, ok := other.Left.byKey[k]; !ok {
			return false
		}
	}
	for k := range s.Right.byKey {
		if _, ok := other.Right.byKey[k]; !ok {
			return false
		}
	}
	return true
}

// String renders the sequent in the canonical "lhs ⊢ rhs" form.
func (s *Sequent) String() string {
	left := s.Left.String()
	right := s.Right.String()
	if left != "" {
		left += " "
	}
	if right != "" {
		right = " " + right
	}
	return left + "⊢" + right
}
