package app

import "github.com/google/uuid"

// GetHistoryQuery selects a page of an account's journal. Events at or
// below AfterVersion are left out before paging; a Limit of 0 or less
// returns everything after Skip.
type GetHistoryQuery struct {
	AccountID    uuid.UUID
	AfterVersion int
	Limit        int
	Skip         int
}
