package workflow

import (
	"sort"

	"broadcast-ops-backend/internal/database/models"
)

// CallsheetRule describes one entry of the call-sheet transition table.
type CallsheetRule struct {
	RequiredRole models.CallsheetRole
	NextStatus   models.CallsheetStatus
	Effects      []EffectType
	NotifyRole   models.CallsheetRole

	// Resolve overrides NextStatus for conditional branches; it receives the
	// payload because the equipment comparison depends on the submitted set.
	Resolve func(cs *models.CallsheetRequest, p Payload) models.CallsheetStatus
}

type callsheetRuleKey struct {
	Status models.CallsheetStatus
	Action Action
}

// CallsheetTable is the static (status, action) -> rule mapping for the
// call-sheet workflow. Immutable after construction.
type CallsheetTable struct {
	rules map[callsheetRuleKey]CallsheetRule
}

// NewCallsheetTable builds the call-sheet transition table.
//
// A call sheet without a driver completes immediately on creation; one with a
// driver enters technical review. The technical store's equipment submission
// branches on whether the assigned set differs from the requested set.
func NewCallsheetTable() *CallsheetTable {
	t := &CallsheetTable{rules: map[callsheetRuleKey]CallsheetRule{}}

	t.add(models.CallsheetStatusNew, ActionCreate, CallsheetRule{
		RequiredRole: models.CallsheetRoleRequester,
		NextStatus:   models.CallsheetStatusCompleted,
		Resolve: func(cs *models.CallsheetRequest, _ Payload) models.CallsheetStatus {
			if cs.DriverNeeded {
				return models.CallsheetStatusPendingTechnical
			}
			return models.CallsheetStatusCompleted
		},
	})

	submit := CallsheetRule{
		RequiredRole: models.CallsheetRoleTechnicalStore,
		NextStatus:   models.CallsheetStatusCompleted,
		Resolve: func(cs *models.CallsheetRequest, p Payload) models.CallsheetStatus {
			if EqualEquipmentSets(p.Equipment, cs.EquipmentRequested) {
				return models.CallsheetStatusCompleted
			}
			return models.CallsheetStatusPendingRequesterApproval
		},
	}
	t.add(models.CallsheetStatusPendingTechnical, ActionSubmitEquipment, submit)
	t.add(models.CallsheetStatusClarificationRequested, ActionSubmitEquipment, submit)

	t.add(models.CallsheetStatusPendingRequesterApproval, ActionApprove, CallsheetRule{
		RequiredRole: models.CallsheetRoleRequester,
		NextStatus:   models.CallsheetStatusCompleted,
		Effects:      []EffectType{EffectFreezeEquipment},
	})

	t.add(models.CallsheetStatusPendingRequesterApproval, ActionRequestClarification, CallsheetRule{
		RequiredRole: models.CallsheetRoleRequester,
		NextStatus:   models.CallsheetStatusClarificationRequested,
		Effects:      []EffectType{EffectNotifyRole},
		NotifyRole:   models.CallsheetRoleTechnicalStore,
	})

	return t
}

func (t *CallsheetTable) add(status models.CallsheetStatus, action Action, rule CallsheetRule) {
	key := callsheetRuleKey{Status: status, Action: action}
	if _, exists := t.rules[key]; exists {
		panic("duplicate callsheet rule for " + string(status) + "/" + string(action))
	}
	t.rules[key] = rule
}

// Lookup returns the rule for (status, action), if one is defined.
func (t *CallsheetTable) Lookup(status models.CallsheetStatus, action Action) (CallsheetRule, bool) {
	rule, ok := t.rules[callsheetRuleKey{Status: status, Action: action}]
	return rule, ok
}

// Defined reports whether the table has a rule for (status, action).
func (t *CallsheetTable) Defined(status models.CallsheetStatus, action Action) bool {
	_, ok := t.Lookup(status, action)
	return ok
}

// EqualEquipmentSets compares two equipment collections as sets of unique
// identifiers, ignoring order and duplicates.
func EqualEquipmentSets(a, b []string) bool {
	return equipmentKey(a) == equipmentKey(b)
}

func equipmentKey(items []string) string {
	unique := uniqueEquipment(items)
	sort.Strings(unique)
	key := ""
	for _, item := range unique {
		key += item + "\x00"
	}
	return key
}

// uniqueEquipment drops duplicate identifiers, keeping first-occurrence order.
func uniqueEquipment(items []string) []string {
	seen := make(map[string]bool, len(items))
	unique := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			unique = append(unique, item)
		}
	}
	return unique
}
