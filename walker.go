package docfind

import "context"

// Walker searches every supported document under a directory tree.
type Walker interface {
	// Walk returns the matches for keyword in all documents under dir.
	// Matches from one document keep their unit order; the order across
	// documents is unspecified. A missing dir yields no matches and no error.
	// Unreadable documents are skipped.
	Walk(ctx context.Context, dir, keyword string) ([]*Match, error)
}
