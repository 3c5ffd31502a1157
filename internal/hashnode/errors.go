package hashnode

// FetchErrorKind distinguishes the ways a post fetch can fail.
type FetchErrorKind int

const (
	// ErrUnreachable covers transport failures and timeouts.
	ErrUnreachable FetchErrorKind = iota
	// ErrRejected covers non-2xx responses and GraphQL error payloads.
	ErrRejected
	// ErrPublicationMissing means the API answered but knows no such publication.
	ErrPublicationMissing
)

// FetchError is fatal: a failed fetch aborts the whole run.
type FetchError struct {
	Kind    FetchErrorKind
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
