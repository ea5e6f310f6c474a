package sim

import "github.com/gerri-robotics/g1bridge-go/pkg/g1"

type armClient struct {
	client
}

var _ g1.ArmActionClient = (*armClient)(nil)

func (c *armClient) Init() error                      { return c.initialize() }
func (c *armClient) SetTimeout(seconds float32) error { return c.setTimeout(seconds) }
func (c *armClient) Close() error                     { return c.close() }

// ExecuteAction validates the id against the catalog and the FSM against the
// states that accept arm actions.
func (c *armClient) ExecuteAction(actionID int32) (int32, error) {
	return c.invoke("ExecuteAction", func(s *State) int32 {
		if !knownAction(actionID) {
			return g1.CodeInvalidActionID
		}
		switch s.FsmID {
		case FsmStart, FsmStart2, FsmWalkRun:
		default:
			return g1.CodeInvalidFsmID
		}
		s.TaskID = actionID
		return g1.StatusOK
	}, actionID)
}

// GetActionList reports the configured actions as JSON, or "" when none are
// configured.
func (c *armClient) GetActionList() (string, int32, error) {
	var (
		list string
		err  error
	)
	rc, ierr := c.invoke("GetActionList", func(*State) int32 {
		list, err = c.r.actionListJSON()
		if err != nil {
			return g1.CodeArmSDKError
		}
		return g1.StatusOK
	})
	if ierr != nil {
		return "", 0, ierr
	}
	if rc != g1.StatusOK {
		return "", rc, nil
	}
	return list, rc, nil
}

func knownAction(id int32) bool {
	for _, a := range g1.Actions() {
		if a.ID == id {
			return true
		}
	}
	return false
}
