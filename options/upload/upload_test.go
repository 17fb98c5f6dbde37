package upload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c2fo/boxsync/options/upload"
)

func TestWithShared(t *testing.T) {
	opt := upload.WithShared(true)

	s, ok := opt.(*upload.Shared)
	require.Truef(t, ok, "expected `*upload.Shared`, got %T", opt)
	assert.Equal(t, upload.Shared(true), *s)
	assert.Equal(t, "uploadShared", s.UploadOptionName())
}

func TestWithMessage(t *testing.T) {
	opt := upload.WithMessage("new report")

	m, ok := opt.(*upload.Message)
	require.Truef(t, ok, "expected `*upload.Message`, got %T", opt)
	assert.Equal(t, upload.Message("new report"), *m)
	assert.Equal(t, "uploadMessage", m.UploadOptionName())
}

func TestWithEmails(t *testing.T) {
	opt := upload.WithEmails("a@example.com", "b@example.com")

	e, ok := opt.(*upload.Emails)
	require.Truef(t, ok, "expected `*upload.Emails`, got %T", opt)
	assert.Equal(t, upload.Emails{"a@example.com", "b@example.com"}, *e)
	assert.Equal(t, "uploadEmails", e.UploadOptionName())
}
