package arena

import "errors"

var (
	// ErrNoSpace indicates that no arena could satisfy an allocation and
	// acquiring a new one failed. It covers both page-provider exhaustion
	// and request sizes too large to represent or reserve.
	ErrNoSpace = errors.New("arena: allocation failed")

	// ErrBadRef indicates a Realloc ref that does not correspond to a block
	// header this allocator created.
	ErrBadRef = errors.New("arena: bad block reference")
)
