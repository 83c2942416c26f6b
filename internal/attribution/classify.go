package attribution

import "strings"

// ChangeType labels what kind of change a commit represents.
type ChangeType string

const (
	ChangeFix     ChangeType = "fix"
	ChangeFeature ChangeType = "feature"
	ChangeDelete  ChangeType = "delete"
	ChangeCreate  ChangeType = "create"
	ChangeUpdate  ChangeType = "update"
)

// changeTypeRules are tested in order; the first category whose keyword
// appears in the lower-cased message wins.
var changeTypeRules = []struct {
	keywords []string
	label    ChangeType
}{
	{[]string{"fix", "bug"}, ChangeFix},
	{[]string{"feat", "add", "new"}, ChangeFeature},
	{[]string{"del", "remove"}, ChangeDelete},
	{[]string{"create", "init"}, ChangeCreate},
}

// ClassifyChangeType maps a commit message to a change type by keyword
// substring matching in fixed priority order, defaulting to update.
func ClassifyChangeType(message string) ChangeType {
	msg := strings.ToLower(message)
	for _, rule := range changeTypeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(msg, kw) {
				return rule.label
			}
		}
	}
	return ChangeUpdate
}

// ValidChangeType reports whether s is one of the known change types.
func ValidChangeType(s string) bool {
	switch ChangeType(s) {
	case ChangeFix, ChangeFeature, ChangeDelete, ChangeCreate, ChangeUpdate:
		return true
	default:
		return false
	}
}
