package world

// Label is the classification of a cell relative to the path being walked
type Label int

// Label constants
const (
	Undetermined Label = iota
	NotOnCurrentPath
	LeadsOffBoard
	OnCycle
	LeadsIntoCycle
)

// AllLabels returns every label, Undetermined first
func AllLabels() []Label {
	return []Label{Undetermined, NotOnCurrentPath, LeadsOffBoard, OnCycle, LeadsIntoCycle}
}

// String returns the string representation of a label
func (l Label) String() string {
	switch l {
	case Undetermined:
		return "Undetermined"
	case NotOnCurrentPath:
		return "NotOnCurrentPath"
	case LeadsOffBoard:
		return "LeadsOffBoard"
	case OnCycle:
		return "OnCycle"
	case LeadsIntoCycle:
		return "LeadsIntoCycle"
	default:
		return "Unknown"
	}
}

// Key returns the translation key for the label
func (l Label) Key() string {
	switch l {
	case NotOnCurrentPath:
		return "LABEL_NOT_ON_PATH"
	case LeadsOffBoard:
		return "LABEL_LEADS_OFF_BOARD"
	case OnCycle:
		return "LABEL_ON_CYCLE"
	case LeadsIntoCycle:
		return "LABEL_LEADS_INTO_CYCLE"
	default:
		return "LABEL_UNDETERMINED"
	}
}

// IsTerminalOutcome reports whether l is one of the three results a classification can produce
func (l Label) IsTerminalOutcome() bool {
	return l == LeadsOffBoard || l == OnCycle || l == LeadsIntoCycle
}
