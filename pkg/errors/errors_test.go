package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("portfolio.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "portfolio.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "portfolio.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("folio.yaml", 0, stdErrors.New("eof"))
	require.Equal(t, "parse error: folio.yaml: eof", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("projects[1].liveurl", "must be a url", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "projects[1].liveurl", validationErr.Field)
	require.Contains(t, err.Error(), "must be a url")
}

func TestStorageErrorIncludesBackendAndKey(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("disk full")
	err := NewStorageError("file", "set", "theme", underlying)

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	require.Equal(t, "file", storageErr.Backend)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, `storage error [file] set "theme": disk full`, err.Error())
}
