package internal_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/honohub/internal"
)

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("direct", func(t *testing.T) {
		t.Parallel()
		got := internal.AsHTTPError(internal.ErrNotFound("not found"))
		require.NotNil(t, got)
		require.Equal(t, http.StatusNotFound, got.Code)
		require.Equal(t, "not found", got.Message)
	})

	t.Run("wrapped preserves fields", func(t *testing.T) {
		t.Parallel()
		httpErr := internal.ErrUnprocessable("invalid document", internal.WithErrorCode("validation_failed"))
		err := fmt.Errorf("crud: %w", httpErr)

		require.True(t, internal.IsHTTPError(err))
		got := internal.AsHTTPError(err)
		require.NotNil(t, got)
		require.Equal(t, http.StatusUnprocessableEntity, got.Code)
		require.Equal(t, "validation_failed", got.ErrorCode)
	})

	t.Run("unrelated error", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, internal.AsHTTPError(errors.New("plain error")))
		require.False(t, internal.IsHTTPError(nil))
	})
}

func TestPluginBootstrapError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := &internal.PluginBootstrapError{Plugin: "audit", Err: cause}

	assert.Equal(t, `plugin "audit" bootstrap: boom`, err.Error())
	assert.ErrorIs(t, err, cause)

	var target *internal.PluginBootstrapError
	require.ErrorAs(t, fmt.Errorf("compose: %w", err), &target)
	assert.Equal(t, "audit", target.Plugin)
}
