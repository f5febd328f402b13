package store

// ErrNotFound is returned when a user has no graph in the store.
type ErrNotFound struct {
	UserID string
}

func (e ErrNotFound) Error() string {
	if e.UserID == "" {
		return "graph not found"
	}

	return "graph not found: " + e.UserID
}
