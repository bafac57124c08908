package model

// ItemStatus is the outcome of processing one batch item
type ItemStatus string

const (
	// ItemStatusCompleted means the media was downloaded
	ItemStatusCompleted ItemStatus = "completed"

	// ItemStatusError means the download failed or the item panicked
	ItemStatusError ItemStatus = "error"
)

// String returns the string representation of ItemStatus
func (s ItemStatus) String() string {
	return string(s)
}

// IsSuccess reports whether the item downloaded
func (s ItemStatus) IsSuccess() bool {
	return s == ItemStatusCompleted
}
