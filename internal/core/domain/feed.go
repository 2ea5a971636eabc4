package domain

// FetchOutcome describes what a single fetch attempt did.
type FetchOutcome int

const (
	// FetchSkipped means no request was issued: a fetch was already in
	// flight or no more data is available.
	FetchSkipped FetchOutcome = iota

	// FetchAppended means a full page was appended and more may follow.
	FetchAppended

	// FetchExhausted means the last page was reached. Any records from a
	// short page were appended.
	FetchExhausted

	// FetchFailed means the request failed. Nothing was appended and
	// pagination has stopped.
	FetchFailed
)

// String returns the string representation of the outcome.
func (o FetchOutcome) String() string {
	switch o {
	case FetchSkipped:
		return "skipped"
	case FetchAppended:
		return "appended"
	case FetchExhausted:
		return "exhausted"
	case FetchFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FetchResult reports the outcome of one fetch attempt.
type FetchResult struct {
	// Outcome is what the attempt did.
	Outcome FetchOutcome

	// Page is the page number that was requested. Zero when skipped.
	Page int

	// Added is the number of records appended.
	Added int

	// Err is the failure for FetchFailed. Informational only: the feed
	// has already logged it and stopped.
	Err error
}

// FeedState is a read-only snapshot of the pagination state.
type FeedState struct {
	// SessionID identifies the feed for the lifetime of the process.
	SessionID string

	// Repositories is the accumulated list in arrival order.
	Repositories []Repository

	// Page is the cursor of the next page to request.
	Page int

	// HasMore is false once the end of the data was reached or a fetch failed.
	HasMore bool

	// Loading is true while a fetch is in flight.
	Loading bool
}

// Count returns the number of accumulated repositories.
func (s FeedState) Count() int {
	return len(s.Repositories)
}

// CanFetch reports whether a new fetch would be issued.
func (s FeedState) CanFetch() bool {
	return s.HasMore && !s.Loading
}
