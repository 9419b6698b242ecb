// Package status implements the approval lifecycle shared by monthly
// summaries and subcontractor invoices.
//
// Both lifecycles are the same machine with different policies: which
// transitions exist, which states they start from, and whether a comment
// must accompany them.
package status

import (
	"errors"
	"fmt"
	"strings"
)

// Status is the lifecycle state of a summary or invoice.
type Status string

const (
	Draft     Status = "DRAFT"
	Submitted Status = "SUBMITTED"
	Approved  Status = "APPROVED"
	Rejected  Status = "REJECTED"
	Paid      Status = "PAID"
)

// Action is a lifecycle transition request.
type Action string

const (
	Submit  Action = "submit"
	Approve Action = "approve"
	Reject  Action = "reject"
	Reopen  Action = "reopen"
	Pay     Action = "pay"
)

var (
	ErrUnknownAction    = errors.New("this action does not exist for the resource")
	ErrCommentRequired  = errors.New("comments are required for this action")
	ErrWrongSourceState = errors.New("the action is not allowed in the current state")
)

// Rule describes one legal transition.
type Rule struct {
	From           []Status
	To             Status
	RequireComment bool
}

// Policy is the set of legal transitions for one resource kind.
type Policy map[Action]Rule

// SummaryPolicy governs monthly summaries. Rejection requires a comment,
// and a rejected summary can be explicitly reopened for another attempt.
var SummaryPolicy = Policy{
	Submit:  {From: []Status{Draft}, To: Submitted},
	Approve: {From: []Status{Submitted}, To: Approved},
	Reject:  {From: []Status{Submitted}, To: Rejected, RequireComment: true},
	Reopen:  {From: []Status{Rejected}, To: Draft},
	Pay:     {From: []Status{Approved}, To: Paid},
}

// InvoicePolicy governs subcontractor invoices. Invoices are born
// submitted and rejection carries no comment requirement.
var InvoicePolicy = Policy{
	Approve: {From: []Status{Submitted}, To: Approved},
	Reject:  {From: []Status{Submitted}, To: Rejected},
	Pay:     {From: []Status{Approved}, To: Paid},
}

// Apply checks an action against the policy and returns the resulting
// status. The current status is never mutated on error.
func (p Policy) Apply(current Status, action Action, comment string) (Status, error) {
	rule, ok := p[action]
	if !ok {
		return current, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	if rule.RequireComment && strings.TrimSpace(comment) == "" {
		return current, fmt.Errorf("%w: %q", ErrCommentRequired, action)
	}

	for _, from := range rule.From {
		if from == current {
			return rule.To, nil
		}
	}

	return current, fmt.Errorf("%w: %q requires status %s, resource is %s",
		ErrWrongSourceState, action, statusList(rule.From), current)
}

// ParseStatus validates a client-provided status string.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToUpper(s)) {
	case Draft, Submitted, Approved, Rejected, Paid:
		return Status(strings.ToUpper(s)), nil
	}

	return "", fmt.Errorf("invalid status: %q", s)
}

// ActionForStatus maps a requested target status to the action reaching
// it. Invoice status updates arrive as plain status values, not actions.
func ActionForStatus(target Status) (Action, error) {
	switch target {
	case Approved:
		return Approve, nil
	case Rejected:
		return Reject, nil
	case Paid:
		return Pay, nil
	case Submitted:
		return Submit, nil
	}

	return "", fmt.Errorf("no action leads to status %q", target)
}

func statusList(statuses []Status) string {
	parts := make([]string, 0, len(statuses))
	for _, s := range statuses {
		parts = append(parts, string(s))
	}

	return strings.Join(parts, " or ")
}
