package stickerdomain

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
)

// FaultRecorder counts rule faults.
type FaultRecorder interface {
	RecordRuleFault(ctx context.Context, sticker competitiondomain.StickerID)
}

// RuleFault is a predicate that failed or panicked for one Application.
type RuleFault struct {
	Sticker       competitiondomain.StickerID
	Rule          string
	ApplicationID competitiondomain.ApplicationID
	Err           error
}

func (f RuleFault) Error() string {
	return fmt.Sprintf("rule %s (sticker %d) for application %s: %v", f.Rule, f.Sticker, f.ApplicationID, f.Err)
}

func (f RuleFault) Unwrap() error { return f.Err }

// Evaluation is the outcome of running every rule for every Application.
type Evaluation struct {
	// Stickers are sorted ascending per Application. Every current-Grade
	// Application has an entry.
	Stickers map[competitiondomain.ApplicationID][]competitiondomain.StickerID
	Faults   []RuleFault
}

// Evaluator applies a Registry to a Context.
type Evaluator struct {
	registry *Registry
	logger   *slog.Logger
	faults   FaultRecorder
}

// NewEvaluator creates an Evaluator. faults may be nil.
func NewEvaluator(registry *Registry, logger *slog.Logger, faults FaultRecorder) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{registry: registry, logger: logger, faults: faults}
}

// Evaluate runs all rules. A failing rule withholds only its own sticker.
func (e *Evaluator) Evaluate(ctx context.Context, c *Context) Evaluation {
	out := Evaluation{
		Stickers: make(map[competitiondomain.ApplicationID][]competitiondomain.StickerID, len(c.Current.Grade.Applications)),
	}

	for _, app := range c.Current.Grade.Applications {
		earned := []competitiondomain.StickerID{}
		for _, rule := range e.registry.rules {
			ok, err := e.apply(rule, c, app.ID)
			if err != nil {
				fault := RuleFault{Sticker: rule.Sticker, Rule: rule.Name, ApplicationID: app.ID, Err: err}
				out.Faults = append(out.Faults, fault)
				e.logger.WarnContext(ctx, "Sticker rule failed",
					slog.Int("sticker", int(rule.Sticker)),
					slog.String("rule", rule.Name),
					slog.String("application_id", app.ID.String()),
					slog.String("series_id", c.Current.Series.ID.String()),
					slog.Any("error", err),
				)
				if e.faults != nil {
					e.faults.RecordRuleFault(ctx, rule.Sticker)
				}
				continue
			}
			if ok {
				earned = append(earned, rule.Sticker)
			}
		}
		slices.Sort(earned)
		out.Stickers[app.ID] = earned
	}

	return out
}

func (e *Evaluator) apply(rule Rule, c *Context, id competitiondomain.ApplicationID) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return rule.Predicate(c, id)
}
