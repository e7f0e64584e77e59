package logic

// applyLeftRule dispatches a left-side formula to its sequent rule (§4.5),
// returning the one or two successor sequents it produces. formula must
// be present in s.Left at the given depth and must not be atomic.
func applyLeftRule(s *Sequent, formula Expression, depth int) []*Sequent {
	switch f := formula.(type) {
	case *Not:
		succ := s.successor()
		succ.Left.Delete(formula)
		succ.Right.Set(f.Formula, depth+1)
		addSelfToSiblings(succ)
		return []*Sequent{succ}

	case *And:
		succ := s.successor()
		succ.Left.Delete(formula)
		succ.Left.Set(f.Left, depth+1)
		succ.Left.Set(f.Right, depth+1)
		addSelfToSiblings(succ)
		return []*Sequent{succ}

	case *Or:
		a, b := s.successor(), s.successor()
		a.Left.Delete(formula)
		b.Left.Delete(formula)
		a.Left.Set(f.Left, depth+1)
		b.Left.Set(f.Right, depth+1)
		addSelfToSiblings(a)
		addSelfToSiblings(b)
		return []*Sequent{a, b}

	case *Implies:
		a, b := s.successor(), s.successor()
		a.Left.Delete(formula)
		b.Left.Delete(formula)
		a.Right.Set(f.Left, depth+1)
		b.Left.Set(f.Right, depth+1)
		addSelfToSiblings(a)
		addSelfToSiblings(b)
		return []*Sequent{a, b}

	case *ForAll:
		group := s.Siblings
		if group == nil || group.Len() == 0 {
			group = NewSiblingGroup()
		}
		succ := &Sequent{Left: s.Left.Clone(), Right: s.Right.Clone(), Siblings: group, Depth: s.Depth + 1}
		succ.Left.Set(formula, depth+1)
		fresh := NewTerm(s.FreshName("t"))
		instantiated := f.Body.Replace(f.Variable, fresh)
		instantiated.SetCreationTime(succ.Depth)
		succ.Left.SetIfAbsent(instantiated, depth+1)
		group.Add(succ)
		return []*Sequent{succ}

	case *ThereExists:
		succ := s.successor()
		succ.Left.Delete(formula)
		v := NewVariable(s.FreshName("v"))
		instantiated := f.Body.Replace(f.Variable, v)
		instantiated.SetCreationTime(succ.Depth)
		succ.Left.Set(instantiated, depth+1)
		addSelfToSiblings(succ)
		return []*Sequent{succ}
	}
	panic("logic: applyLeftRule called on atomic or unknown formula")
}

// applyRightRule dispatches a right-side formula to its sequent rule
// (§4.5), symmetric to applyLeftRule.
func applyRightRule(s *Sequent, formula Expression, depth int) []*Sequent {
	switch f := formula.(type) {
	case *Not:
		succ := s.successor()
		succ.Right.Delete(formula)
		succ.Left.Set(f.Formula, depth+1)
		addSelfToSiblings(succ)
		return []*Sequent{succ}

	case *And:
		a, b := s.successor(), s.successor()
		a.Right.Delete(formula)
		b.Right.Delete(formula)
		a.Right.Set(f.Left, depth+1)
		b.Right.Set(f.Right, depth+1)
		addSelfToSiblings(a)
		addSelfToSiblings(b)
		return []*Sequent{a, b}

	case *Or:
		succ := s.successor()
		succ.Right.Delete(formula)
		succ.Right.Set(f.Left, depth+1)
		succ.Right.Set(f.Right, depth+1)
		addSelfToSiblings(succ)
		return []*Sequent{succ}

	case *Implies:
		succ := s.successor()
		succ.Right.Delete(formula)
		succ.Left.Set(f.Left, depth+1)
		succ.Right.Set(f.Right, depth+1)
		addSelfToSiblings(succ)
		return []*Sequent{succ}

	case *ForAll:
		succ := s.successor()
		succ.Right.Delete(formula)
		v := NewVariable(s.FreshName("v"))
		instantiated := f.Body.Replace(f.Variable, v)
		instantiated.SetCreationTime(succ.Depth)
		succ.Right.Set(instantiated, depth+1)
		addSelfToSiblings(succ)
		return []*Sequent{succ}

	case *ThereExists:
		group := s.Siblings
		if group == nil || group.Len() == 0 {
			group = NewSiblingGroup()
		}
		succ := &Sequent{Left: s.Left.Clone(), Right: s.Right.Clone(), Siblings: group, Depth: s.Depth + 1}
		succ.Right.Set(formula, depth+1)
		fresh := NewTerm(s.FreshName("t"))
		instantiated := f.Body.Replace(f.Variable, fresh)
		instantiated.SetCreationTime(succ.Depth)
		succ.Right.SetIfAbsent(instantiated, depth+1)
		group.Add(succ)
		return []*Sequent{succ}
	}
	panic("logic: applyRightRule called on atomic or unknown formula")
}

func addSelfToSiblings(s *Sequent) {
	if s.Siblings != nil {
		s.Siblings.Add(s)
	}
}
