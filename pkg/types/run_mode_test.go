package types_test

import (
	"testing"

	"github.com/arthur-debert/dotstow/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	m, err := types.ParseMode("base")
	require.NoError(t, err)
	assert.Equal(t, types.ModeBase, m)

	m, err = types.ParseMode("host")
	require.NoError(t, err)
	assert.Equal(t, types.ModeHost, m)

	_, err = types.ParseMode("all")
	assert.Error(t, err)
}
