package model

// Slot labels are derived purely from an entry's current position in a
// presented list, so removing an entry shifts every later label down by one.
// They are never stored.

// MaxSlots is the size of the label alphabet (0-9 then a-z). It bounds both
// the bookmark list and the number of subdirectories offered for selection.
const MaxSlots = 36

// Label returns the slot character for a list position. Positions outside
// the alphabet render as '?'.
func Label(index int) rune {
	switch {
	case index < 0 || index >= MaxSlots:
		return '?'
	case index < 10:
		return rune('0' + index)
	default:
		return rune('a' + index - 10)
	}
}

// Index is the inverse of Label. Letters are matched case-insensitively.
func Index(label rune) (int, error) {
	switch {
	case label >= '0' && label <= '9':
		return int(label - '0'), nil
	case label >= 'a' && label <= 'z':
		return 10 + int(label-'a'), nil
	case label >= 'A' && label <= 'Z':
		return 10 + int(label-'A'), nil
	}
	return 0, NewError(CodeInvalidLabel, "invalid slot label %q", string(label))
}
