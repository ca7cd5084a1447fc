// Package session holds the live input record for one calculator run and
// keeps the derived metrics in lockstep with it: every accepted edit
// overwrites one field wholesale and recomputes the full result before the
// caller can observe anything.
package session

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rustyeddy/levercalc/format"
	"github.com/rustyeddy/levercalc/risk"
)

// FieldNames lists the editable fields under their canonical names, in
// display order.
var FieldNames = []string{
	"actual_price",
	"leverage_price",
	"price_high",
	"price_low",
	"initial_capital",
	"take_profit_percent",
	"position_size",
	"losses_factor",
	"direction",
}

// Entry records one accepted edit together with the state derived from it.
type Entry struct {
	ID     string
	Time   time.Time
	Field  string
	Raw    string
	Inputs risk.Inputs
	Result risk.Result
}

// Session is the state container for one calculator run. The derived
// Result is never stale: New and every successful Set recompute it before
// returning.
type Session struct {
	mu      sync.Mutex
	in      risk.Inputs
	out     risk.Result
	history []Entry
	logger  *zap.Logger
	now     func() time.Time
}

// New starts a session from in. A nil logger disables logging.
func New(in risk.Inputs, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		in:     in,
		out:    risk.Calculate(in),
		logger: logger,
		now:    time.Now,
	}
}

// Inputs returns the current input record.
func (s *Session) Inputs() risk.Inputs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.in
}

// Result returns the metrics derived from the current input record.
func (s *Session) Result() risk.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out
}

// Set overwrites one field from raw user text and recomputes the full
// result. Numeric fields never reject an edit: text that does not parse is
// coerced to 0. The direction field is the exception — an unrecognized
// value returns an error and leaves the session untouched.
func (s *Session) Set(field, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.in
	switch field {
	case "actual_price":
		next.ActualPrice = format.ParseNumber(raw)
	case "leverage_price":
		next.LeveragePrice = format.ParseNumber(raw)
	case "price_high":
		next.PriceHigh = format.ParseNumber(raw)
	case "price_low":
		next.PriceLow = format.ParseNumber(raw)
	case "initial_capital":
		next.InitialCapital = format.ParseNumber(raw)
	case "take_profit_percent":
		next.TakeProfitPercent = format.ParseNumber(raw)
	case "position_size":
		next.PositionSize = format.ParseNumber(raw)
	case "losses_factor":
		next.LossesFactor = format.ParseNumber(raw)
	case "direction":
		d, err := risk.ParseDirection(raw)
		if err != nil {
			return err
		}
		next.Direction = d
	default:
		return fmt.Errorf("unknown field %q", field)
	}

	s.in = next
	s.out = risk.Calculate(next)

	now := s.now()
	s.history = append(s.history, Entry{
		ID:     newEntryID(now),
		Time:   now,
		Field:  field,
		Raw:    raw,
		Inputs: s.in,
		Result: s.out,
	})

	s.logger.Debug("input updated",
		zap.String("field", field),
		zap.String("raw", raw),
		zap.Int("edits", len(s.history)),
	)
	return nil
}

// History returns a copy of the edit log in arrival order.
func (s *Session) History() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.history))
	copy(out, s.history)
	return out
}
