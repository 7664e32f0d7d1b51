package policies

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Actions for an incoming element whose path is already taken.
const (
	ActionFail    = "fail"
	ActionKeep    = "keep"
	ActionReplace = "replace"
)

// ConflictDecision says what a merge does with one incoming duplicate.
type ConflictDecision int

const (
	DecisionKeepExisting ConflictDecision = iota
	DecisionTakeIncoming
)

// ParseConflictAction normalizes a merge action; empty means fail.
func ParseConflictAction(action string) (string, error) {
	switch normalized := strings.ToLower(strings.TrimSpace(action)); normalized {
	case "":
		return ActionFail, nil
	case ActionFail, ActionKeep, ActionReplace:
		return normalized, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown merge action: %s", action))
	}
}

// ResolveConflict applies action to a duplicate at path.
func ResolveConflict(path string, action string) (ConflictDecision, error) {
	normalized, err := ParseConflictAction(action)
	if err != nil {
		return DecisionKeepExisting, err
	}
	switch normalized {
	case ActionKeep:
		return DecisionKeepExisting, nil
	case ActionReplace:
		return DecisionTakeIncoming, nil
	default:
		return DecisionKeepExisting, errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg(fmt.Sprintf("%s is defined more than once", path))
	}
}
