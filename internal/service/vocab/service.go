// Package vocab keeps the local vocabulary catalog in sync with the
// published upstream catalog and serves catalog reads.
package vocab

import (
	"context"
	"errors"
	"fmt"

	"github.com/glossa-app/glossa-api/internal/domain"
	"github.com/glossa-app/glossa-api/internal/platform/vocabsource"
)

// ErrGroupNotFound indicates the requested word group does not exist.
var ErrGroupNotFound = errors.New("word group not found")

// ErrSyncFailed indicates the catalog could not be synced. Individual group
// failures abort the whole run; already-committed groups stay updated.
var ErrSyncFailed = errors.New("vocabulary sync failed")

// CatalogSource fetches the published vocabulary catalog.
// Implemented by vocabsource.Client.
type CatalogSource interface {
	FetchCatalog(ctx context.Context) ([]vocabsource.GroupPayload, error)
}

// SyncResult summarizes one catalog sync run.
type SyncResult struct {
	GroupsChecked int `json:"groups_checked"`
	GroupsUpdated int `json:"groups_updated"`
	WordsWritten  int `json:"words_written"`
}

// VocabService provides catalog reads and upstream synchronization.
type VocabService interface {
	// SyncCatalog fetches the upstream catalog and updates every group whose
	// version differs from the stored one. Each group is replaced in its own
	// transaction, so a failure mid-run never leaves a half-written group.
	SyncCatalog(ctx context.Context) (*SyncResult, error)

	// ListGroups returns all word groups.
	ListGroups(ctx context.Context) ([]domain.WordGroup, error)

	// WordsForGroup returns the words of one group.
	// Returns ErrGroupNotFound if the group does not exist.
	WordsForGroup(ctx context.Context, groupID int) ([]domain.Word, error)
}

// ServiceError wraps errors from the vocab service with additional context.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}
