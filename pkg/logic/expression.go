// Package logic implements a Gentzen-style sequent calculus prover for
// first-order logic with equality-free classical semantics: an immutable
// term/formula algebra, first-order unification with an occurs check and
// a creation-time ordering discipline, and an iterative-deepening sequent
// proof-search engine.
package logic

import "strings"

// Expression is the tagged-variant algebra shared by terms and formulas:
// Variable, Term, Functor, Predicate, Not, And, Or, Implies, ForAll and
// ThereExists all satisfy it. Implementations are immutable after
// construction except for creation time, which SetCreationTime advances
// monotonically within a single search.
type Expression interface {
	// String renders the canonical printed form, used for both display
	// and structural equality/hashing.
	String() string

	// Equal reports structural equality: same variant at every node, with
	// the same names and arity. Equal expressions print identically; the
	// converse does not hold across variants (a Variable and a Term, or a
	// Functor and a Predicate, with the same name print alike but are not
	// Equal).
	Equal(other Expression) bool

	// FreeVariables returns the set of free Variables (eigenvariables),
	// keyed by canonical name.
	FreeVariables() VarSet

	// FreeTerms returns the set of free Terms (unification metavariables),
	// keyed by canonical name.
	FreeTerms() TermSet

	// Occurs reports whether the unification term t appears anywhere in
	// this expression's syntax tree.
	Occurs(t *Term) bool

	// Replace returns a new expression with every subtree structurally
	// equal to current replaced by replacement, recurring into children.
	Replace(current, replacement Expression) Expression

	// SetCreationTime assigns t to this expression and, for composite
	// expressions, recursively to every child.
	SetCreationTime(t int)

	// CreationTime returns the time most recently assigned by
	// SetCreationTime (zero if never set).
	CreationTime() int
}

// Hash returns a stable hash key for e, derived from its canonical
// printed form: two expressions that print identically hash identically.
func Hash(e Expression) string { return e.String() }

// VarSet is a set of Variables keyed by name.
type VarSet map[string]*Variable

// TermSet is a set of unification Terms keyed by name.
type TermSet map[string]*Term

// Union returns a new VarSet containing every member of a and b.
func (a VarSet) Union(b VarSet) VarSet {
	out := make(VarSet, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Union returns a new TermSet containing every member of a and b.
func (a TermSet) Union(b TermSet) TermSet {
	out := make(TermSet, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Variable is a bound or free logical variable (eigenvariable).
type Variable struct {
	Name string
	time int
}

// NewVariable constructs a Variable with the given name.
func NewVariable(name string) *Variable { return &Variable{Name: name} }

func (v *Variable) String() string { return v.Name }

func (v *Variable) Equal(other Expression) bool {
	o, ok := other.(*Variable)
	return ok && v.Name == o.Name
}

func (v *Variable) FreeVariables() VarSet { return VarSet{v.Name: v} }
func (v *Variable) FreeTerms() TermSet    { return TermSet{} }
func (v *Variable) Occurs(*Term) bool     { return false }

func (v *Variable) Replace(current, replacement Expression) Expression {
	if v.Equal(current) {
		return replacement
	}
	return v
}

func (v *Variable) SetCreationTime(t int) { v.time = t }
func (v *Variable) CreationTime() int     { return v.time }

// Term is a unification metavariable introduced to instantiate a
// quantifier; it is unifiable against any expression, subject to the
// occurs check and the creation-time ordering discipline.
type Term struct {
	Name string
	time int
}

// NewTerm constructs a unification Term with the given name.
func NewTerm(name string) *Term { return &Term{Name: name} }

func (t *Term) String() string { return t.Name }

func (t *Term) Equal(other Expression) bool {
	o, ok := other.(*Term)
	return ok && t.Name == o.Name
}

func (t *Term) FreeVariables() VarSet  { return VarSet{} }
func (t *Term) FreeTerms() TermSet     { return TermSet{t.Name: t} }
func (t *Term) Occurs(other *Term) bool { return t.Equal(other) }

func (t *Term) Replace(current, replacement Expression) Expression {
	if t.Equal(current) {
		return replacement
	}
	return t
}

func (t *Term) SetCreationTime(time int) { t.time = time }
func (t *Term) CreationTime() int        { return t.time }

// children is the shared base for Functor and Predicate: an ordered
// application of a name to a list of argument expressions.
type children struct {
	Name string
	Args []Expression
	time int
}

func (c *children) freeVariables() VarSet {
	out := VarSet{}
	for _, a := range c.Args {
		out = out.Union(a.FreeVariables())
	}
	return out
}

func (c *children) freeTerms() TermSet {
	out := TermSet{}
	for _, a := range c.Args {
		out = out.Union(a.FreeTerms())
	}
	return out
}

func (c *children) occurs(t *Term) bool {
	for _, a := range c.Args {
		if a.Occurs(t) {
			return true
		}
	}
	return false
}

func (c *children) setCreationTime(t int) {
	c.time = t
	for _, a := range c.Args {
		a.SetCreationTime(t)
	}
}

func (c *children) replaceArgs(current, replacement Expression) []Expression {
	out := make([]Expression, len(c.Args))
	for i, a := range c.Args {
		out[i] = a.Replace(current, replacement)
	}
	return out
}

func printApplication(name string, args []Expression) string {
	if len(args) == 0 {
		return name
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	b.WriteString(strings.Join(parts, ", "))
	b.WriteByte(')')
	return b.String()
}

func sameApplication(name string, args []Expression, other *children) bool {
	if name != other.Name || len(args) != len(other.Args) {
		return false
	}
	for i, a := range args {
		if !a.Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

// Functor is an applied function symbol f(e1, ..., en).
type Functor struct{ children }

// NewFunctor constructs a Functor with the given name and arguments.
func NewFunctor(name string, args ...Expression) *Functor {
	return &Functor{children{Name: name, Args: args}}
}

func (f *Functor) String() string { return printApplication(f.Name, f.Args) }

func (f *Functor) Equal(other Expression) bool {
	o, ok := other.(*Functor)
	return ok && sameApplication(f.Name, f.Args, &o.children)
}

func (f *Functor) FreeVariables() VarSet { return f.freeVariables() }
func (f *Functor) FreeTerms() TermSet    { return f.freeTerms() }
func (f *Functor) Occurs(t *Term) bool   { return f.occurs(t) }

func (f *Functor) Replace(current, replacement Expression) Expression {
	if f.Equal(current) {
		return replacement
	}
	return &Functor{children{Name: f.Name, Args: f.replaceArgs(current, replacement)}}
}

func (f *Functor) SetCreationTime(t int) { f.setCreationTime(t) }
func (f *Functor) CreationTime() int     { return f.time }

// Predicate is an atomic formula P(e1, ..., en). Algebraically identical
// to Functor but distinguished so proof search can treat it as atomic:
// predicates are never expanded, only closed propositionally or by
// unification.
type Predicate struct{ children }

// NewPredicate constructs a Predicate with the given name and arguments.
func NewPredicate(name string, args ...Expression) *Predicate {
	return &Predicate{children{Name: name, Args: args}}
}

func (p *Predicate) String() string { return printApplication(p.Name, p.Args) }

func (p *Predicate) Equal(other Expression) bool {
	o, ok := other.(*Predicate)
	return ok && sameApplication(p.Name, p.Args, &o.children)
}

func (p *Predicate) FreeVariables() VarSet { return p.freeVariables() }
func (p *Predicate) FreeTerms() TermSet    { return p.freeTerms() }
func (p *Predicate) Occurs(t *Term) bool   { return p.occurs(t) }

func (p *Predicate) Replace(current, replacement Expression) Expression {
	if p.Equal(current) {
		return replacement
	}
	return &Predicate{children{Name: p.Name, Args: p.replaceArgs(current, replacement)}}
}

func (p *Predicate) SetCreationTime(t int) { p.setCreationTime(t) }
func (p *Predicate) CreationTime() int     { return p.time }

// Not is formula negation, ¬A.
type Not struct {
	Formula Expression
	time    int
}

// NewNot constructs a negation of formula.
func NewNot(formula Expression) *Not { return &Not{Formula: formula} }

func (n *Not) String() string { return "¬" + n.Formula.String() }

func (n *Not) Equal(other Expression) bool {
	o, ok := other.(*Not)
	return ok && n.Formula.Equal(o.Formula)
}

func (n *Not) FreeVariables() VarSet { return n.Formula.FreeVariables() }
func (n *Not) FreeTerms() TermSet    { return n.Formula.FreeTerms() }
func (n *Not) Occurs(t *Term) bool   { return n.Formula.Occurs(t) }

func (n *Not) Replace(current, replacement Expression) Expression {
	if n.Equal(current) {
		return replacement
	}
	return &Not{Formula: n.Formula.Replace(current, replacement)}
}

func (n *Not) SetCreationTime(t int) {
	n.time = t
	n.Formula.SetCreationTime(t)
}
func (n *Not) CreationTime() int { return n.time }

// binary is the shared base for And, Or and Implies.
type binary struct {
	Left, Right Expression
	time        int
}

func (b *binary) freeVariables() VarSet { return b.Left.FreeVariables().Union(b.Right.FreeVariables()) }
func (b *binary) freeTerms() TermSet    { return b.Left.FreeTerms().Union(b.Right.FreeTerms()) }
func (b *binary) occurs(t *Term) bool   { return b.Left.Occurs(t) || b.Right.Occurs(t) }
func (b *binary) setCreationTime(t int) {
	b.time = t
	b.Left.SetCreationTime(t)
	b.Right.SetCreationTime(t)
}

func sameBinary(left, right Expression, other *binary) bool {
	return left.Equal(other.Left) && right.Equal(other.Right)
}

// And is conjunction, A ∧ B.
type And struct{ binary }

// NewAnd constructs a conjunction of left and right.
func NewAnd(left, right Expression) *And { return &And{binary{Left: left, Right: right}} }

func (a *And) String() string { return "(" + a.Left.String() + " ∧ " + a.Right.String() + ")" }

func (a *And) Equal(other Expression) bool {
	o, ok := other.(*And)
	return ok && sameBinary(a.Left, a.Right, &o.binary)
}

func (a *And) FreeVariables() VarSet { return a.freeVariables() }
func (a *And) FreeTerms() TermSet    { return a.freeTerms() }
func (a *And) Occurs(t *Term) bool   { return a.occurs(t) }

func (a *And) Replace(current, replacement Expression) Expression {
	if a.Equal(current) {
		return replacement
	}
	return &And{binary{Left: a.Left.Replace(current, replacement), Right: a.Right.Replace(current, replacement)}}
}

func (a *And) SetCreationTime(t int) { a.setCreationTime(t) }
func (a *And) CreationTime() int     { return a.time }

// Or is disjunction, A ∨ B.
type Or struct{ binary }

// NewOr constructs a disjunction of left and right.
func NewOr(left, right Expression) *Or { return &Or{binary{Left: left, Right: right}} }

func (o *Or) String() string { return "(" + o.Left.String() + " ∨ " + o.Right.String() + ")" }

func (o *Or) Equal(other Expression) bool {
	oo, ok := other.(*Or)
	return ok && sameBinary(o.Left, o.Right, &oo.binary)
}

func (o *Or) FreeVariables() VarSet { return o.freeVariables() }
func (o *Or) FreeTerms() TermSet    { return o.freeTerms() }
func (o *Or) Occurs(t *Term) bool   { return o.occurs(t) }

func (o *Or) Replace(current, replacement Expression) Expression {
	if o.Equal(current) {
		return replacement
	}
	return &Or{binary{Left: o.Left.Replace(current, replacement), Right: o.Right.Replace(current, replacement)}}
}

func (o *Or) SetCreationTime(t int) { o.setCreationTime(t) }
func (o *Or) CreationTime() int     { return o.time }

// Implies is implication, A → B.
type Implies struct{ binary }

// NewImplies constructs an implication from left to right.
func NewImplies(left, right Expression) *Implies { return &Implies{binary{Left: left, Right: right}} }

func (i *Implies) String() string { return "(" + i.Left.String() + " → " + i.Right.String() + ")" }

func (i *Implies) Equal(other Expression) bool {
	o, ok := other.(*Implies)
	return ok && sameBinary(i.Left, i.Right, &o.binary)
}

func (i *Implies) FreeVariables() VarSet { return i.freeVariables() }
func (i *Implies) FreeTerms() TermSet    { return i.freeTerms() }
func (i *Implies) Occurs(t *Term) bool   { return i.occurs(t) }

func (i *Implies) Replace(current, replacement Expression) Expression {
	if i.Equal(current) {
		return replacement
	}
	return &Implies{binary{Left: i.Left.Replace(current, replacement), Right: i.Right.Replace(current, replacement)}}
}

func (i *Implies) SetCreationTime(t int) { i.setCreationTime(t) }
func (i *Implies) CreationTime() int     { return i.time }

// quantifier is the shared base for ForAll and ThereExists.
type quantifier struct {
	Variable *Variable
	Body     Expression
	time     int
}

func (q *quantifier) freeVariables() VarSet {
	out := VarSet{}
	for k, v := range q.Body.FreeVariables() {
		if k != q.Variable.Name {
			out[k] = v
		}
	}
	return out
}

func (q *quantifier) occurs(t *Term) bool { return q.Body.Occurs(t) }

func (q *quantifier) setCreationTime(t int) {
	q.time = t
	q.Variable.SetCreationTime(t)
	q.Body.SetCreationTime(t)
}

func sameQuantifier(v *Variable, body Expression, other *quantifier) bool {
	return v.Equal(other.Variable) && body.Equal(other.Body)
}

// ForAll is universal quantification, ∀x. A.
type ForAll struct{ quantifier }

// NewForAll constructs a universal quantification of body over v.
func NewForAll(v *Variable, body Expression) *ForAll {
	return &ForAll{quantifier{Variable: v, Body: body}}
}

func (f *ForAll) String() string { return "(∀" + f.Variable.String() + ". " + f.Body.String() + ")" }

func (f *ForAll) Equal(other Expression) bool {
	o, ok := other.(*ForAll)
	return ok && sameQuantifier(f.Variable, f.Body, &o.quantifier)
}

func (f *ForAll) FreeVariables() VarSet { return f.freeVariables() }
func (f *ForAll) FreeTerms() TermSet    { return f.Body.FreeTerms() }
func (f *ForAll) Occurs(t *Term) bool   { return f.occurs(t) }

// Replace recurses into both the bound variable and the body: quantifier
// substitution may wholesale replace the quantifier itself (current
// equals the whole ForAll), or may target the bound variable during
// instantiation. The bound variable is replaced only when replacement is
// itself a *Variable; for any other replacement it is kept as it was and
// only the body is rewritten. ThereExists.Replace behaves the same way.
func (f *ForAll) Replace(current, replacement Expression) Expression {
	if f.Equal(current) {
		return replacement
	}
	newVar := f.Variable.Replace(current, replacement)
	v, ok := newVar.(*Variable)
	if !ok {
		v = f.Variable
	}
	return &ForAll{quantifier{Variable: v, Body: f.Body.Replace(current, replacement)}}
}

func (f *ForAll) SetCreationTime(t int) { f.setCreationTime(t) }
func (f *ForAll) CreationTime() int     { return f.time }

// ThereExists is existential quantification, ∃x. A.
type ThereExists struct{ quantifier }

// NewThereExists constructs an existential quantification of body over v.
func NewThereExists(v *Variable, body Expression) *ThereExists {
	return &ThereExists{quantifier{Variable: v, Body: body}}
}

func (e *ThereExists) String() string {
	return "(∃" + e.Variable.String() + ". " + e.Body.String() + ")"
}

func (e *ThereExists) Equal(other Expression) bool {
	o, ok := other.(*ThereExists)
	return ok && sameQuantifier(e.Variable, e.Body, &o.quantifier)
}

func (e *ThereExists) FreeVariables() VarSet { return e.freeVariables() }
func (e *ThereExists) FreeTerms() TermSet    { return e.Body.FreeTerms() }
func (e *ThereExists) Occurs(t *Term) bool   { return e.occurs(t) }

func (e *ThereExists) Replace(current, replacement Expression) Expression {
	if e.Equal(current) {
		return replacement
	}
	newVar := e.Variable.Replace(current, replacement)
	v, ok := newVar.(*Variable)
	if !ok {
		v = e.Variable
	}
	return &ThereExists{quantifier{Variable: v, Body: e.Body.Replace(current, replacement)}}
}

func (e *ThereExists) SetCreationTime(t int) { e.setCreationTime(t) }
func (e *ThereExists) CreationTime() int     { return e.time }

// IsAtomic reports whether e is a Predicate, the only variant proof
// search treats as atomic (never expanded by a sequent rule).
func IsAtomic(e Expression) bool {
	_, ok := e.(*Predicate)
	return ok
}
