// Package alert evaluates finance records and goals against the due-date
// and achievement rules and emits each alert at most once per session.
package alert

import (
	"fmt"
	"sync"

	"github.com/cofrinho/backend/internal/models"
	"github.com/cofrinho/backend/internal/types"
)

// Severity of an emitted notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is a single emission for an (entity, rule) pair.
type Notification struct {
	EntityID uint     `json:"entityId" example:"42"`
	Rule     string   `json:"rule" example:"due-today"`
	Severity Severity `json:"severity" example:"warning"`
	Message  string   `json:"message" example:"O pagamento de \"Conta de luz\" é hoje!"`
}

// Store remembers which (entity, rule) pairs have already fired.
type Store map[string]struct{}

// Evaluator applies the notification rules. Each (entity, rule) pair fires
// at most once for the lifetime of the evaluator; the store is owned by the
// instance so tests and sessions can reset it deterministically.
type Evaluator struct {
	mu    sync.Mutex
	store Store
}

// NewEvaluator returns an Evaluator with an empty store.
func NewEvaluator() *Evaluator {
	return &Evaluator{store: Store{}}
}

// NewEvaluatorWithStore returns an Evaluator using the given store.
func NewEvaluatorWithStore(store Store) *Evaluator {
	return &Evaluator{store: store}
}

// notifyOnce appends the notification unless the (entity, rule) pair has
// fired before. The caller must hold e.mu.
func (e *Evaluator) notifyOnce(out []Notification, n Notification) []Notification {
	key := fmt.Sprintf("%d-%s", n.EntityID, n.Rule)
	if _, fired := e.store[key]; fired {
		return out
	}

	e.store[key] = struct{}{}
	return append(out, n)
}

// EvaluateFinances checks every record against the due-date rule table.
//
// The rules are ordered, the first match wins. Paid records and records
// without a due date are exempt.
func (e *Evaluator) EvaluateFinances(finances []models.Finance, today types.Date) []Notification {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []Notification
	for _, f := range finances {
		if f.Status == models.FinanceStatusPaid || f.DueDate == nil {
			continue
		}

		daysLeft := f.DueDate.DaysUntil(today)

		switch {
		case daysLeft == 0:
			out = e.notifyOnce(out, Notification{
				EntityID: f.ID,
				Rule:     "due-today",
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("O pagamento de %q é hoje!", f.Title),
			})
		case daysLeft == 1:
			out = e.notifyOnce(out, Notification{
				EntityID: f.ID,
				Rule:     "due-tomorrow",
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("O pagamento de %q é amanhã.", f.Title),
			})
		case daysLeft > 1 && daysLeft <= 3:
			out = e.notifyOnce(out, Notification{
				EntityID: f.ID,
				Rule:     "due-soon",
				Severity: SeverityInfo,
				Message:  fmt.Sprintf("Faltam %d dias para o pagamento de %q.", daysLeft, f.Title),
			})
		case daysLeft < 0:
			out = e.notifyOnce(out, Notification{
				EntityID: f.ID,
				Rule:     "due-expired",
				Severity: SeverityError,
				Message:  fmt.Sprintf("O pagamento de %q está atrasado à %d dias!", f.Title, -daysLeft),
			})
		}
	}

	return out
}

// EvaluateGoals checks every goal against the achievement and deadline
// rule table.
//
// "goal achieved" has priority over every deadline rule, so an achieved
// goal never reports a missed deadline. A goal without a deadline can only
// ever fire the achieved rule.
func (e *Evaluator) EvaluateGoals(goals []models.Goal, today types.Date) []Notification {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []Notification
	for _, g := range goals {
		if g.Achieved() {
			out = e.notifyOnce(out, Notification{
				EntityID: g.ID,
				Rule:     "goal-achieved",
				Severity: SeveritySuccess,
				Message:  fmt.Sprintf("Meta %q atingida com sucesso!", g.Title),
			})
			continue
		}

		if g.Deadline == nil {
			continue
		}

		daysLeft := g.Deadline.DaysUntil(today)

		switch {
		case daysLeft == 0:
			out = e.notifyOnce(out, Notification{
				EntityID: g.ID,
				Rule:     "deadline-today",
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("Hoje é o prazo final da meta %q!", g.Title),
			})
		case daysLeft == 1:
			out = e.notifyOnce(out, Notification{
				EntityID: g.ID,
				Rule:     "deadline-tomorrow",
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("A meta %q termina amanhã.", g.Title),
			})
		case daysLeft > 1 && daysLeft <= 3:
			out = e.notifyOnce(out, Notification{
				EntityID: g.ID,
				Rule:     "deadline-soon",
				Severity: SeverityInfo,
				Message:  fmt.Sprintf("Restam %d dias para o fim da meta %q.", daysLeft, g.Title),
			})
		case daysLeft < 0:
			out = e.notifyOnce(out, Notification{
				EntityID: g.ID,
				Rule:     "deadline-expired",
				Severity: SeverityError,
				Message:  fmt.Sprintf("A meta %q passou do prazo e não foi concluída.", g.Title),
			})
		}
	}

	return out
}
