package entry

// Completion is the evening decision for a day. The store encodes it as a
// bool that may be absent, and several UI iterations of this app conflated
// null, empty string, and missing with false; the explicit three-variant type
// keeps that class of bug out of the engine. Only Success and Failure count
// as decided.
type Completion int

const (
	Undecided Completion = iota
	Success
	Failure
)

// Decided reports whether an evening check actually happened.
func (c Completion) Decided() bool {
	return c == Success || c == Failure
}

// Bool renders the decision in store form. ok is false for Undecided, in
// which case the field must stay absent from the record.
func (c Completion) Bool() (value, ok bool) {
	switch c {
	case Success:
		return true, true
	case Failure:
		return false, true
	default:
		return false, false
	}
}

// CompletionOf maps a store bool to the decided variants.
func CompletionOf(completed bool) Completion {
	if completed {
		return Success
	}
	return Failure
}

func (c Completion) String() string {
	switch c {
	case Success:
		return "completed"
	case Failure:
		return "failed"
	default:
		return "undecided"
	}
}
