package logic

import (
	"context"
	"sort"
	"strings"
)

// Option configures a Prove call.
type Option func(*proverConfig)

type proverConfig struct {
	tracer *Tracer
}

// WithTracer attaches a Tracer that records sequent and substitution
// lines as the search proceeds. Omit it (or pass a Tracer built from a
// nil *zap.Logger) to trace nothing.
func WithTracer(t *Tracer) Option {
	return func(c *proverConfig) { c.tracer = t }
}

// Prove decides whether goal follows from axioms under the sequent
// calculus described in spec.md §4.4. It returns (true, nil) if the
// goal sequent closes, (false, nil) if search exhausts every rule
// expansion without closing (a "stuck" branch), and (false, err) if ctx
// is cancelled before either outcome is reached — search for an
// unprovable goal with essential quantifiers may not terminate, so
// callers that need a bound must supply one via ctx.
func Prove(ctx context.Context, axioms []Expression, goal Expression, opts ...Option) (bool, error) {
	cfg := &proverConfig{tracer: NewTracer(nil)}
	for _, opt := range opts {
		opt(cfg)
	}

	root := NewSequent(axioms, goal)
	for _, e := range root.Left.order {
		e.SetCreationTime(0)
	}
	for _, e := range root.Right.order {
		e.SetCreationTime(0)
	}

	frontier := []*Sequent{root}
	proven := map[string]bool{sequentKey(root): true}

	for {
		if err := ctx.Err(); err != nil {
			return false, wrapCancellation(err)
		}

		// Keep popping while the frontier has entries and either nothing
		// has been popped yet or the last pop is already proven. The final
		// pop becomes current once the frontier empties, even if it's
		// still flagged proven; only an empty frontier at the start of
		// this drain (current stays nil) ends the search as fully closed.
		var current *Sequent
		for len(frontier) > 0 && (current == nil || proven[sequentKey(current)]) {
			current = frontier[0]
			frontier = frontier[1:]
		}
		if current == nil {
			return true, nil
		}

		cfg.tracer.sequent(current)

		if current.closureKeys() {
			proven[sequentKey(current)] = true
			cfg.tracer.proven(current)
			continue
		}

		if current.Siblings != nil {
			siblings, closed := tryCloseSiblingGroup(current, cfg.tracer)
			if closed {
				inGroup := make(map[*Sequent]bool, len(siblings))
				for _, sib := range siblings {
					inGroup[sib] = true
					proven[sequentKey(sib)] = true
				}
				remaining := frontier[:0:0]
				for _, f := range frontier {
					if !inGroup[f] {
						remaining = append(remaining, f)
					}
				}
				frontier = remaining
				continue
			}
		}

		leftFormula, leftDepth, haveLeft := pickNonAtomic(current.Left)
		rightFormula, rightDepth, haveRight := pickNonAtomic(current.Right)

		var applyLeft bool
		switch {
		case haveLeft && !haveRight:
			applyLeft = true
		case !haveLeft && haveRight:
			applyLeft = false
		case haveLeft && haveRight:
			applyLeft = leftDepth < rightDepth
		default:
			cfg.tracer.stuck(current)
			return false, nil
		}

		var successors []*Sequent
		if applyLeft {
			successors = applyLeftRule(current, leftFormula, leftDepth)
		} else {
			successors = applyRightRule(current, rightFormula, rightDepth)
		}
		frontier = append(frontier, successors...)
	}
}

// tryCloseSiblingGroup attempts to close every sequent in current's
// sibling group simultaneously under one substitution (§4.4 step 3). If
// any sibling currently has no unifiable cross-side pair, current is
// removed from the group (it cannot yet close) and the caller should
// fall through to rule expansion.
func tryCloseSiblingGroup(current *Sequent, tracer *Tracer) (siblings []*Sequent, closed bool) {
	siblings = current.Siblings.Members()
	pairLists := make([][]UnificationPair, len(siblings))
	for i, sib := range siblings {
		pairLists[i] = sib.UnificationPairs()
		if len(pairLists[i]) == 0 {
			current.Siblings.Remove(current)
			return nil, false
		}
	}

	index := make([]int, len(pairLists))
	for {
		chosen := make([][2]Expression, len(pairLists))
		for i := range pairLists {
			p := pairLists[i][index[i]]
			chosen[i] = [2]Expression{p.Left, p.Right}
		}
		if sub, ok := UnifyList(chosen); ok {
			for _, b := range sub.Bindings() {
				tracer.substitution(b)
			}
			return siblings, true
		}

		pos := len(pairLists) - 1
		for pos >= 0 {
			index[pos]++
			if index[pos] < len(pairLists[pos]) {
				break
			}
			index[pos] = 0
			pos--
		}
		if pos < 0 {
			return nil, false
		}
	}
}

// pickNonAtomic returns the non-atomic formula with the smallest
// expansion depth in fs, in insertion order (ties keep the first
// formula reached, matching the strict less-than comparison of §4.4
// step 4).
func pickNonAtomic(fs *FormulaSet) (formula Expression, depth int, ok bool) {
	for _, entry := range fs.Entries() {
		if IsAtomic(entry.Formula) {
			continue
		}
		if !ok || entry.Depth < depth {
			formula, depth, ok = entry.Formula, entry.Depth, true
		}
	}
	return
}

// sequentKey is the content-identity key the proven set and frontier
// dequeue loop use: two sequents with the same formulas as sets on each
// side (regardless of depth or object identity) collapse to one entry,
// matching the reference implementation's content-equal, content-hashed
// Sequent type.
func sequentKey(s *Sequent) string {
	leftKeys := sortedKeys(s.Left.byKey)
	rightKeys := sortedKeys(s.Right.byKey)
	return strings.Join(leftKeys, "\x00") + "\x01" + strings.Join(rightKeys, "\x00")
}

func sortedKeys(m map[string]Expression) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
