package outcome

// Reporter is the payload-free view shared by Outcome and every Of[T].
type Reporter interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
	// Err returns the failure message, empty on success
	Err() string
}

// Provider extends Reporter with guarded access to the payload
type Provider[T any] interface {
	Reporter
	// Get returns the payload, or an error wrapping ErrInvalidAccess
	Get() (T, error)
}

var (
	_ Reporter      = Outcome{}
	_ Reporter      = Of[int]{}
	_ Provider[int] = Of[int]{}
)

// FirstFailure returns the first reporter that failed, or nil if all
// succeeded. Nil reporters are skipped.
func FirstFailure(reporters ...Reporter) Reporter {
	for _, r := range reporters {
		if IsNil(r) {
			continue
		}
		if r.IsFailure() {
			return r
		}
	}
	return nil
}
