package logic

// Substitution maps unification Term names to their bound replacement
// Expression. Bindings are recorded in the order they were first made so
// that callers (notably the trace recorder) can reproduce the
// substitution-line order of the original proof search.
type Substitution struct {
	order    []string
	bindings map[string]Expression
}

// NewSubstitution returns an empty substitution.
func NewSubstitution() *Substitution {
	return &Substitution{bindings: make(map[string]Expression)}
}

func singleton(name string, e Expression) *Substitution {
	s := NewSubstitution()
	s.Bind(name, e)
	return s
}

// Lookup returns the expression bound to the unification term named
// name, if any.
func (s *Substitution) Lookup(name string) (Expression, bool) {
	e, ok := s.bindings[name]
	return e, ok
}

// Bind records name ↦ e, preserving first-bound order.
func (s *Substitution) Bind(name string, e Expression) {
	if _, exists := s.bindings[name]; !exists {
		s.order = append(s.order, name)
	}
	s.bindings[name] = e
}

// Merge folds every binding of other into s, in other's order.
func (s *Substitution) Merge(other *Substitution) {
	for _, name := range other.order {
		s.Bind(name, other.bindings[name])
	}
}

// Binding is one name ↦ expression pair, as recorded in bind order.
type Binding struct {
	Name string
	Expr Expression
}

// Bindings returns every binding in s in the order they were first made.
func (s *Substitution) Bindings() []Binding {
	out := make([]Binding, len(s.order))
	for i, name := range s.order {
		out[i] = Binding{Name: name, Expr: s.bindings[name]}
	}
	return out
}

// Apply rewrites e by replacing every unification term s binds with its
// bound expression, one binding at a time in bind order — the same
// incremental replace-then-unify discipline unify uses internally.
func (s *Substitution) Apply(e Expression) Expression {
	for _, name := range s.order {
		e = e.Replace(NewTerm(name), s.bindings[name])
	}
	return e
}

// Unify attempts to unify expressions a and b, returning the most
// general substitution that makes them structurally equal, or ok=false
// on failure. Term (metavariable) ends are bound to whatever they face,
// subject to the occurs check and the creation-time ordering discipline;
// Variable (eigenvariable) ends only unify with an identically-named
// Variable; Functor/Functor and Predicate/Predicate pairs unify pairwise
// by name and arity, threading the accumulated substitution through
// subsequent children.
func Unify(a, b Expression) (*Substitution, bool) {
	if at, ok := a.(*Term); ok {
		if b.Occurs(at) || b.CreationTime() > at.CreationTime() {
			return nil, false
		}
		return singleton(at.Name, b), true
	}
	if bt, ok := b.(*Term); ok {
		if a.Occurs(bt) || a.CreationTime() > bt.CreationTime() {
			return nil, false
		}
		return singleton(bt.Name, a), true
	}
	if av, ok := a.(*Variable); ok {
		if bv, ok2 := b.(*Variable); ok2 && av.Equal(bv) {
			return NewSubstitution(), true
		}
		return nil, false
	}
	switch av := a.(type) {
	case *Functor:
		bv, ok := b.(*Functor)
		if !ok {
			return nil, false
		}
		return unifyChildren(av.Name, av.Args, bv.Name, bv.Args)
	case *Predicate:
		bv, ok := b.(*Predicate)
		if !ok {
			return nil, false
		}
		return unifyChildren(av.Name, av.Args, bv.Name, bv.Args)
	}
	return nil, false
}

func unifyChildren(nameA string, argsA []Expression, nameB string, argsB []Expression) (*Substitution, bool) {
	if nameA != nameB || len(argsA) != len(argsB) {
		return nil, false
	}
	sub := NewSubstitution()
	for i := range argsA {
		a, b := argsA[i], argsB[i]
		a = sub.Apply(a)
		b = sub.Apply(b)
		step, ok := Unify(a, b)
		if !ok {
			return nil, false
		}
		sub.Merge(step)
	}
	return sub, true
}

// UnifyList unifies a list of equation pairs, threading the accumulated
// substitution through subsequent pairs and merging bindings as it goes.
// Used to close a group of sibling branches under one consistent
// substitution.
func UnifyList(pairs [][2]Expression) (*Substitution, bool) {
	sub := NewSubstitution()
	for _, pair := range pairs {
		a := sub.Apply(pair[0])
		b := sub.Apply(pair[1])
		step, ok := Unify(a, b)
		if !ok {
			return nil, false
		}
		sub.Merge(step)
	}
	return sub, true
}
