package docfind

import "context"

// SearchService is the entry point for keyword searches.
type SearchService interface {
	// Search returns all matches for keyword in documents under dir,
	// consulting the result cache first.
	// Returns EINVALID if dir or keyword is empty.
	Search(ctx context.Context, dir, keyword string) ([]*Match, error)
}

// SearchRequest is the input to a search.
type SearchRequest struct {
	Dir     string
	Keyword string
}

// Validate returns an error if the request is missing a field.
func (r *SearchRequest) Validate() error {
	if r.Dir == "" {
		return Errorf(EINVALID, "directory required")
	}
	if r.Keyword == "" {
		return Errorf(EINVALID, "keyword required")
	}
	return nil
}
