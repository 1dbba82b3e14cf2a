// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/dotstow/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "host_not_found",
			code:    errors.ErrHostNotFound,
			message: "no host directory",
			wantStr: "[HOST_NOT_FOUND] no host directory",
		},
		{
			name:    "empty_discovery",
			code:    errors.ErrEmptyDiscovery,
			message: "no packages found",
			wantStr: "[EMPTY_DISCOVERY] no packages found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrPackageNotFound, "package %q not found", "vim")
	assert.Equal(t, `package "vim" not found`, err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("exit status 1")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrPackageLinkFailure, "stow failed")

		require.NotNil(t, err)
		assert.Equal(t, errors.ErrPackageLinkFailure, err.Code)
		assert.Equal(t, "[PACKAGE_LINK_FAILURE] stow failed: exit status 1", err.Error())
		assert.True(t, stderrors.Is(err, baseErr))
	})

	t.Run("wrap_nil_error", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "nothing"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "nothing %d", 1))
	})
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New(errors.ErrHostNotFound, "ghost-machine"))

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrHostNotFound, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrEmptyDiscovery, "")))
}

func TestErrorCodeHelpers(t *testing.T) {
	err := errors.New(errors.ErrAllPackagesFailed, "all failed").
		WithDetail("failed", []string{"vim", "zsh"})

	assert.True(t, errors.IsErrorCode(err, errors.ErrAllPackagesFailed))
	assert.False(t, errors.IsErrorCode(stderrors.New("plain"), errors.ErrAllPackagesFailed))
	assert.Equal(t, errors.ErrAllPackagesFailed, errors.GetErrorCode(err))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Equal(t, []string{"vim", "zsh"}, errors.GetErrorDetails(err)["failed"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "stow not found", errors.UserMessage(errors.New(errors.ErrMissingDependency, "stow not found")))
	assert.Equal(t, "read root: denied",
		errors.UserMessage(errors.Wrap(stderrors.New("denied"), errors.ErrFileAccess, "read root")))
	assert.Equal(t, "plain", errors.UserMessage(stderrors.New("plain")))
}
