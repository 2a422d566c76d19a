package docfind_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/docfind"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docfind.Errorf(docfind.EUNREADABLE, "document %q cannot be parsed", "a.pdf")

	assert.Equal(t, docfind.EUNREADABLE, docfind.ErrorCode(err))
	assert.Equal(t, "document \"a.pdf\" cannot be parsed", docfind.ErrorMessage(err))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("open cache: %w", docfind.Errorf(docfind.EUNAVAILABLE, "store closed"))

	assert.Equal(t, docfind.EUNAVAILABLE, docfind.ErrorCode(err))
	assert.Equal(t, "store closed", docfind.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("boom")

	assert.Equal(t, docfind.EINTERNAL, docfind.ErrorCode(err))
	assert.Equal(t, "Internal error.", docfind.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docfind.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docfind.ErrorMessage(nil))
}

func TestSearchRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     docfind.SearchRequest
		wantErr bool
	}{
		{name: "valid", req: docfind.SearchRequest{Dir: "/docs", Keyword: "budget"}},
		{name: "missing dir", req: docfind.SearchRequest{Keyword: "budget"}, wantErr: true},
		{name: "missing keyword", req: docfind.SearchRequest{Dir: "/docs"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantErr {
				assert.Equal(t, docfind.EINVALID, docfind.ErrorCode(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}
