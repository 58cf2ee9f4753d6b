package validkit

// Status is the validation state of an engine. An engine is always in
// exactly one status; transitions happen under the engine's lock so readers
// never observe an in-between state.
type Status int

const (
	// StatusIdle means no validation has run since construction, the last
	// candidate value was skipped, or the engine was reset.
	StatusIdle Status = iota

	// StatusPending means a validation attempt is scheduled or in flight.
	StatusPending

	// StatusValid means the most recent attempt passed.
	StatusValid

	// StatusInvalid means the most recent attempt failed; Message holds the
	// user-facing text.
	StatusInvalid
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}
