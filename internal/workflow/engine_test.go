package workflow

import (
	"testing"
	"time"

	"broadcast-ops-backend/internal/database/models"
	apperrors "broadcast-ops-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRequest(state models.WorkflowState, nocRequired bool) *models.Request {
	return &models.Request{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
			CreatedBy: "producer-1",
		},
		BookingType:    models.BookingTypeIncomingFeed,
		Title:          "Morning satellite feed",
		ProgramSegment: "Morning News / Block A",
		AirDateTime:    time.Date(2025, 3, 11, 6, 0, 0, 0, time.UTC),
		Priority:       models.PriorityNormal,
		NOCRequired:    nocRequired,
		State:          state,
		Version:        1,
		Feed: &models.FeedDetails{
			SourceType: models.SourceTypeSatellite,
			ReturnPath: models.ReturnPathDisabled,
			KeyFill:    models.KeyFillNone,
		},
	}
}

func fixedClockEngine(t time.Time) *BookingEngine {
	e := NewBookingEngine()
	e.now = func() time.Time { return t }
	return e
}

func TestBookingTableIsPartialFunction(t *testing.T) {
	table := NewBookingTable()

	// Every (state, action) pair outside the defined rule set must fail
	// lookup; terminal states must define nothing at all.
	defined := 0
	for _, state := range models.AllWorkflowStates {
		for _, action := range BookingActions {
			if table.Defined(state, action) {
				defined++
				assert.False(t, state.IsTerminal(), "rule defined out of terminal state %s", state)
			}
		}
	}
	assert.Equal(t, 12, defined)
}

func TestUndefinedTransitionsFailWithoutMutation(t *testing.T) {
	engine := NewBookingEngine()

	for _, state := range models.AllWorkflowStates {
		for _, action := range BookingActions {
			if engine.Table().Defined(state, action) {
				continue
			}
			req := newTestRequest(state, true)
			before := *req

			outcome, err := engine.Apply(req, action, models.RoleNOC, Payload{Actor: "noc-1"})

			assert.Nil(t, outcome)
			assert.True(t, apperrors.IsInvalidTransition(err), "expected InvalidTransition for %s/%s, got %v", state, action, err)
			assert.Equal(t, before, *req, "entity mutated on rejected %s/%s", state, action)
		}
	}
}

func TestTerminalStatesAreImmutable(t *testing.T) {
	engine := NewBookingEngine()

	for _, state := range []models.WorkflowState{models.WorkflowStateCompleted, models.WorkflowStateNotDone} {
		for _, action := range BookingActions {
			for _, role := range []models.Role{models.RoleBooking, models.RoleNOC, models.RoleIngest, models.RoleAdmin} {
				req := newTestRequest(state, true)
				before := *req

				outcome, err := engine.Apply(req, action, role, Payload{Actor: "anyone", Comment: "c", Resources: "r", Reason: "x"})

				assert.Nil(t, outcome)
				assert.True(t, apperrors.IsInvalidTransition(err))
				assert.Equal(t, before, *req)
			}
		}
	}
}

func TestRoleGating(t *testing.T) {
	engine := NewBookingEngine()
	allRoles := []models.Role{models.RoleBooking, models.RoleNOC, models.RoleIngest, models.RoleAdmin}

	cases := []struct {
		state    models.WorkflowState
		action   Action
		required models.Role
	}{
		{models.WorkflowStateDraft, ActionSubmit, models.RoleBooking},
		{models.WorkflowStateSubmitted, ActionAcknowledge, models.RoleNOC},
		{models.WorkflowStateWithNOC, ActionAssignResources, models.RoleNOC},
		{models.WorkflowStateWithNOC, ActionRequestClarification, models.RoleNOC},
		{models.WorkflowStateWithNOC, ActionForwardToIngest, models.RoleNOC},
		{models.WorkflowStateWithIngest, ActionMarkCompleted, models.RoleIngest},
		{models.WorkflowStateWithIngest, ActionMarkNotDone, models.RoleIngest},
	}

	for _, tc := range cases {
		for _, role := range allRoles {
			if role == tc.required {
				continue
			}
			req := newTestRequest(tc.state, true)
			before := *req

			outcome, err := engine.Apply(req, tc.action, role, Payload{Actor: "imposter", Comment: "c", Resources: "r", Reason: "x"})

			assert.Nil(t, outcome)
			assert.True(t, apperrors.IsUnauthorized(err), "expected Unauthorized for %s/%s as %s", tc.state, tc.action, role)
			assert.Equal(t, before, *req)
		}
	}
}

func TestSubmitRoutesByNOCRequired(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	engine := fixedClockEngine(now)

	// NOC required: submit lands directly in with_noc.
	req := newTestRequest(models.WorkflowStateDraft, true)
	outcome, err := engine.Apply(req, ActionSubmit, models.RoleBooking, Payload{Actor: "producer-1"})
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowStateWithNOC, outcome.Request.State)
	assert.Equal(t, models.WorkflowStateDraft, *outcome.Transition.FromState)
	assert.Equal(t, models.WorkflowStateWithNOC, outcome.Transition.ToState)
	assert.Equal(t, now, outcome.Transition.Timestamp)
	assert.Equal(t, models.WorkflowStateDraft, req.State, "input entity must not be mutated")

	// NOC waived: submit stays in submitted, eligible for direct forwarding.
	req = newTestRequest(models.WorkflowStateDraft, false)
	outcome, err = engine.Apply(req, ActionSubmit, models.RoleBooking, Payload{Actor: "producer-1"})
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowStateSubmitted, outcome.Request.State)
}

func TestForwardToIngestSkipsNOCOnlyWhenWaived(t *testing.T) {
	engine := NewBookingEngine()

	// noc_required=false: forwarding straight from submitted is legal.
	req := newTestRequest(models.WorkflowStateSubmitted, false)
	outcome, err := engine.Apply(req, ActionForwardToIngest, models.RoleNOC, Payload{Actor: "noc-1"})
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowStateWithIngest, outcome.Request.State)
	require.Len(t, outcome.Effects, 1)
	assert.Equal(t, EffectNotifyRole, outcome.Effects[0].Type)
	assert.Equal(t, string(models.RoleIngest), outcome.Effects[0].Recipient)

	// noc_required=true: the guard rejects direct forwarding from submitted.
	req = newTestRequest(models.WorkflowStateSubmitted, true)
	outcome, err = engine.Apply(req, ActionForwardToIngest, models.RoleNOC, Payload{Actor: "noc-1"})
	assert.Nil(t, outcome)
	assert.True(t, apperrors.IsInvalidTransition(err))
}

func TestAssignResourcesPlansAllocation(t *testing.T) {
	engine := NewBookingEngine()
	req := newTestRequest(models.WorkflowStateWithNOC, true)

	outcome, err := engine.Apply(req, ActionAssignResources, models.RoleNOC, Payload{
		Actor:     "noc-1",
		Resources: "Encoder-01, SRT-TX-A, SDI Patchbay 3",
	})

	require.NoError(t, err)
	assert.Equal(t, models.WorkflowStateResourcesAdded, outcome.Request.State)
	require.Len(t, outcome.Effects, 1)
	effect := outcome.Effects[0]
	assert.Equal(t, EffectCreateResourceAllocation, effect.Type)
	require.NotNil(t, effect.Allocation)
	assert.Equal(t, "NOC Resources", effect.Allocation.ResourceType)
	assert.Equal(t, "Encoder-01, SRT-TX-A, SDI Patchbay 3", effect.Allocation.Details)
	assert.Equal(t, "noc-1", effect.Allocation.AllocatedBy)
}

func TestAssignResourcesRequiresDetails(t *testing.T) {
	engine := NewBookingEngine()
	req := newTestRequest(models.WorkflowStateWithNOC, true)
	before := *req

	outcome, err := engine.Apply(req, ActionAssignResources, models.RoleNOC, Payload{Actor: "noc-1"})

	assert.Nil(t, outcome)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, before, *req)
}

func TestRequestClarificationRequiresComment(t *testing.T) {
	engine := NewBookingEngine()

	for _, comment := range []string{"", "   "} {
		req := newTestRequest(models.WorkflowStateWithNOC, true)
		before := *req

		outcome, err := engine.Apply(req, ActionRequestClarification, models.RoleNOC, Payload{
			Actor:   "noc-1",
			Comment: comment,
		})

		assert.Nil(t, outcome)
		assert.True(t, apperrors.IsValidation(err))
		assert.Equal(t, before, *req)
	}
}

func TestRequestClarificationNotifiesRequester(t *testing.T) {
	engine := NewBookingEngine()
	req := newTestRequest(models.WorkflowStateWithNOC, true)

	outcome, err := engine.Apply(req, ActionRequestClarification, models.RoleNOC, Payload{
		Actor:   "noc-1",
		Comment: "Need guest confirmed number and SRT pub key",
	})

	require.NoError(t, err)
	assert.Equal(t, models.WorkflowStateClarificationRequested, outcome.Request.State)
	require.Len(t, outcome.Effects, 1)
	assert.Equal(t, string(models.RoleBooking), outcome.Effects[0].Recipient)
	assert.Contains(t, outcome.Effects[0].Message, "Need guest confirmed number")
	assert.Contains(t, outcome.Transition.Notes, "Clarification requested")
}

func TestMarkNotDoneRecordsReasonAndNotifiesAll(t *testing.T) {
	engine := NewBookingEngine()
	req := newTestRequest(models.WorkflowStateWithIngest, true)

	outcome, err := engine.Apply(req, ActionMarkNotDone, models.RoleIngest, Payload{
		Actor:  "ingest-1",
		Reason: "Source failure, guest no-show",
	})

	require.NoError(t, err)
	assert.Equal(t, models.WorkflowStateNotDone, outcome.Request.State)
	assert.Equal(t, "Source failure, guest no-show", outcome.Request.NotDoneReason)
	assert.Equal(t, "Not Done: Source failure, guest no-show", outcome.Transition.Notes)

	recipients := map[string]bool{}
	reasonRecorded := false
	for _, effect := range outcome.Effects {
		switch effect.Type {
		case EffectNotifyRole:
			recipients[effect.Recipient] = true
		case EffectRecordReason:
			reasonRecorded = true
		}
	}
	assert.True(t, reasonRecorded)
	assert.Len(t, recipients, 3)
}

func TestMarkNotDoneRequiresReason(t *testing.T) {
	engine := NewBookingEngine()
	req := newTestRequest(models.WorkflowStateWithIngest, true)

	outcome, err := engine.Apply(req, ActionMarkNotDone, models.RoleIngest, Payload{Actor: "ingest-1"})

	assert.Nil(t, outcome)
	assert.True(t, apperrors.IsValidation(err))
}

func TestDeterminism(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	engine := fixedClockEngine(now)
	req := newTestRequest(models.WorkflowStateWithNOC, true)
	payload := Payload{Actor: "noc-1", Resources: "Encoder-01"}

	first, err := engine.Apply(req, ActionAssignResources, models.RoleNOC, payload)
	require.NoError(t, err)
	second, err := engine.Apply(req, ActionAssignResources, models.RoleNOC, payload)
	require.NoError(t, err)

	assert.Equal(t, first.Request, second.Request)
	assert.Equal(t, first.Transition, second.Transition)
	assert.Equal(t, first.Effects, second.Effects)
}

// TestHistoryReplayReconstructsFinalState walks a request through the full NOC
// path and checks that the transition log replays through the table to the
// same final state.
func TestHistoryReplayReconstructsFinalState(t *testing.T) {
	engine := NewBookingEngine()
	req := newTestRequest(models.WorkflowStateDraft, true)

	steps := []struct {
		action  Action
		role    models.Role
		payload Payload
	}{
		{ActionSubmit, models.RoleBooking, Payload{Actor: "producer-1"}},
		{ActionAssignResources, models.RoleNOC, Payload{Actor: "noc-1", Resources: "Encoder-01"}},
		{ActionForwardToIngest, models.RoleNOC, Payload{Actor: "noc-1"}},
		{ActionMarkCompleted, models.RoleIngest, Payload{Actor: "ingest-1"}},
	}

	var log []models.WorkflowTransition
	current := req
	for _, step := range steps {
		outcome, err := engine.Apply(current, step.action, step.role, step.payload)
		require.NoError(t, err)
		log = append(log, outcome.Transition)
		current = outcome.Request
	}
	require.Len(t, log, 4)
	assert.Equal(t, models.WorkflowStateCompleted, current.State)

	// Replay: each log entry must be continuous with its predecessor and
	// reachable through some table rule for this entity.
	state := models.WorkflowStateDraft
	for _, entry := range log {
		require.NotNil(t, entry.FromState)
		require.Equal(t, state, *entry.FromState, "transition log is not a continuous walk")
		assert.True(t, reachable(engine.Table(), req, *entry.FromState, entry.ToState),
			"no table rule produces %s -> %s", *entry.FromState, entry.ToState)
		state = entry.ToState
	}
	assert.Equal(t, current.State, state)
}

// reachable reports whether some defined action moves the entity from one
// state to the other under the table's rules.
func reachable(table *BookingTable, req *models.Request, from, to models.WorkflowState) bool {
	probe := *req
	probe.State = from
	for _, action := range BookingActions {
		rule, ok := table.Lookup(from, action)
		if !ok {
			continue
		}
		if rule.Guard != nil && !rule.Guard(&probe) {
			continue
		}
		next := rule.NextState
		if rule.Resolve != nil {
			next = rule.Resolve(&probe)
		}
		if next == to {
			return true
		}
	}
	return false
}
