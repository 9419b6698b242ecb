package timesheet_test

import (
	"sync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklog-zero/backend/internal/status"
	"github.com/worklog-zero/backend/internal/timesheet"
)

func (suite *TestSuiteStandard) TestTransitionSummaryOwnerCheck() {
	summary, err := timesheet.Reconcile("astrid", may, []timesheet.Entry{{Date: "2024-05-02", HoursWorked: 8}}, false)
	require.NoError(suite.T(), err)

	_, err = timesheet.TransitionSummary(summary.ID, status.Submit, timesheet.Actor{Name: "finn"}, "")
	assert.ErrorIs(suite.T(), err, timesheet.ErrNotOwner)

	// Admins may act on behalf of the owner
	_, err = timesheet.TransitionSummary(summary.ID, status.Submit, timesheet.Actor{Name: "root", Admin: true}, "")
	assert.NoError(suite.T(), err)
}

func (suite *TestSuiteStandard) TestTransitionSummaryLifecycle() {
	summary, err := timesheet.Reconcile("astrid", may, []timesheet.Entry{{Date: "2024-05-02", HoursWorked: 8}}, true)
	require.NoError(suite.T(), err)

	summary, err = timesheet.TransitionSummary(summary.ID, status.Approve, timesheet.Actor{Name: "paula"}, "")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), status.Approved, summary.Status)
	require.NotNil(suite.T(), summary.ApprovalDate)

	summary, err = timesheet.TransitionSummary(summary.ID, status.Pay, timesheet.Actor{Name: "paula"}, "")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), status.Paid, summary.Status)
	require.NotNil(suite.T(), summary.PaymentDate)

	// submit, approve, pay
	require.Len(suite.T(), suite.notify.Sent, 3)
	assert.Equal(suite.T(), status.Paid, suite.notify.Sent[2].Status)
}

func (suite *TestSuiteStandard) TestTransitionSummaryConcurrentDecisions() {
	summary, err := timesheet.Reconcile("astrid", may, []timesheet.Entry{{Date: "2024-05-02", HoursWorked: 8}}, true)
	require.NoError(suite.T(), err)

	// Approve and reject race on the same submitted month. The state guard
	// runs on the row as re-read under the month lock, so exactly one
	// decision can win.
	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = timesheet.TransitionSummary(summary.ID, status.Approve, timesheet.Actor{Name: "paula"}, "")
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = timesheet.TransitionSummary(summary.ID, status.Reject, timesheet.Actor{Name: "paula"}, "double booked")
	}()
	wg.Wait()

	if errs[0] == nil {
		assert.ErrorIs(suite.T(), errs[1], status.ErrWrongSourceState)
	} else {
		assert.ErrorIs(suite.T(), errs[0], status.ErrWrongSourceState)
		assert.NoError(suite.T(), errs[1])
	}

	// submit plus the one decision that won
	assert.Len(suite.T(), suite.notify.Sent, 2)
}

func (suite *TestSuiteStandard) TestTransitionSummaryGuards() {
	summary, err := timesheet.Reconcile("astrid", may, []timesheet.Entry{{Date: "2024-05-02", HoursWorked: 8}}, false)
	require.NoError(suite.T(), err)

	// A draft cannot be approved or paid
	_, err = timesheet.TransitionSummary(summary.ID, status.Approve, timesheet.Actor{Name: "paula"}, "")
	assert.ErrorIs(suite.T(), err, status.ErrWrongSourceState)

	_, err = timesheet.TransitionSummary(summary.ID, status.Pay, timesheet.Actor{Name: "paula"}, "")
	assert.ErrorIs(suite.T(), err, status.ErrWrongSourceState)

	// Rejecting needs a comment
	_, err = timesheet.TransitionSummary(summary.ID, status.Submit, timesheet.Actor{Name: "astrid"}, "")
	require.NoError(suite.T(), err)

	_, err = timesheet.TransitionSummary(summary.ID, status.Reject, timesheet.Actor{Name: "paula"}, "")
	assert.ErrorIs(suite.T(), err, status.ErrCommentRequired)

	// Failed transitions must not notify
	assert.Len(suite.T(), suite.notify.Sent, 1)
}
