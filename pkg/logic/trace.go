package logic

import "go.uber.org/zap"

// Tracer records the proof-search trace at debug level: once per
// dequeued sequent, once per substitution line when a sibling group
// closes, once when a sequent closes propositionally, and once when a
// branch is stuck. A Tracer from NewTracer(nil) is backed by zap's no-op
// logger, so tracing costs nothing on the hot path when the caller
// doesn't supply a logger. The zero value Tracer has no logger and must
// not be used.
type Tracer struct {
	log *zap.Logger
}

// NewTracer wraps log for use as a proof-search tracer. A nil log is
// replaced with zap's no-op logger.
func NewTracer(log *zap.Logger) *Tracer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracer{log: log}
}

func (t *Tracer) sequent(s *Sequent) {
	t.log.Debug("sequent", zap.Int("depth", s.Depth), zap.String("form", s.String()))
}

func (t *Tracer) substitution(b Binding) {
	t.log.Debug("substitution", zap.String("term", b.Name), zap.String("expr", b.Expr.String()))
}

func (t *Tracer) proven(s *Sequent) {
	t.log.Debug("proven", zap.Int("depth", s.Depth), zap.String("form", s.String()))
}

func (t *Tracer) stuck(s *Sequent) {
	t.log.Debug("stuck", zap.Int("depth", s.Depth), zap.String("form", s.String()))
}
