package timesheet

import (
	"github.com/google/uuid"
	"github.com/worklog-zero/backend/internal/models"
	"github.com/worklog-zero/backend/internal/status"
	"gorm.io/gorm/clause"
)

// Actor is the authenticated user driving a transition.
type Actor struct {
	Name  string
	Admin bool
}

// ownedActions are the transitions only the owning user (or an admin) may
// request. Approval side actions are gated by role in the API layer.
var ownedActions = map[status.Action]bool{
	status.Submit: true,
	status.Reopen: true,
}

// TransitionSummary applies a lifecycle action to a summary and notifies
// the owner about the new state.
func TransitionSummary(id uuid.UUID, action status.Action, actor Actor, comment string) (models.MonthlySummary, error) {
	// The first read only resolves the lock key
	var summary models.MonthlySummary
	err := models.DB.First(&summary, id).Error
	if err != nil {
		return models.MonthlySummary{}, err
	}

	unlock := lockMonth(summary.UserName, summary.Month)
	defer unlock()

	// Re-read under the lock so the guard check cannot run on a snapshot
	// a concurrent writer has already replaced
	err = models.DB.First(&summary, id).Error
	if err != nil {
		return models.MonthlySummary{}, err
	}

	if ownedActions[action] && !actor.Admin && actor.Name != summary.UserName {
		return models.MonthlySummary{}, ErrNotOwner
	}

	err = summary.Transition(action, comment)
	if err != nil {
		return models.MonthlySummary{}, err
	}

	err = models.DB.Omit(clause.Associations).Save(&summary).Error
	if err != nil {
		return models.MonthlySummary{}, err
	}

	notify.SummaryStatusChanged(summary.UserName, summary.Month, summary.Status, summary.Comments)

	return WithRecords(summary)
}
