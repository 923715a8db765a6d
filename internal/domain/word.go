package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Word-specific validation errors.
var (
	ErrWordGroupIDInvalid  = errors.New("word group ID must be positive")
	ErrWordLocalIDInvalid  = errors.New("word local ID must be positive")
	ErrWordTextEmpty       = errors.New("word text cannot be empty")
	ErrGroupNameEmpty      = errors.New("group name cannot be empty")
	ErrGroupVersionInvalid = errors.New("group version cannot be negative")
)

// WordGroup is one thematic unit of the vocabulary catalog. Groups are
// versioned upstream; a version bump means the group's word list changed
// and must be re-synced.
type WordGroup struct {
	ID        int       `json:"id"`
	Version   int       `json:"version"`
	NameEN    string    `json:"name_en"`
	NameRU    string    `json:"name_ru"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks if the WordGroup has valid data.
func (g *WordGroup) Validate() error {
	if g.ID <= 0 {
		return ErrWordGroupIDInvalid
	}
	if g.Version < 0 {
		return ErrGroupVersionInvalid
	}
	if g.NameEN == "" {
		return ErrGroupNameEmpty
	}
	return nil
}

// Word is a single vocabulary item. Words are identified by the composite
// key "<groupID>_<localID>"; the local ID is only unique within its group.
type Word struct {
	GroupID int    `json:"group_id"`
	LocalID int    `json:"local_id"`
	Greek   string `json:"gr"`
	English string `json:"en"`
	Russian string `json:"ru"`
}

// CompositeID returns the stable identity of the word, shared with its
// progress record.
func (w *Word) CompositeID() string {
	return WordCompositeID(w.GroupID, w.LocalID)
}

// WordCompositeID builds the composite word key from its parts.
func WordCompositeID(groupID, localID int) string {
	return fmt.Sprintf("%d_%d", groupID, localID)
}

// ParseWordCompositeID splits a composite word key back into its parts.
// Returns ErrInvalidID if the key is malformed.
func ParseWordCompositeID(id string) (groupID, localID int, err error) {
	sep := strings.IndexByte(id, '_')
	if sep <= 0 || sep == len(id)-1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	groupID, err = strconv.Atoi(id[:sep])
	if err != nil || groupID <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	localID, err = strconv.Atoi(id[sep+1:])
	if err != nil || localID <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return groupID, localID, nil
}

// Validate checks if the Word has valid data.
func (w *Word) Validate() error {
	if w.GroupID <= 0 {
		return ErrWordGroupIDInvalid
	}
	if w.LocalID <= 0 {
		return ErrWordLocalIDInvalid
	}
	if w.Greek == "" || w.English == "" {
		return ErrWordTextEmpty
	}
	return nil
}
