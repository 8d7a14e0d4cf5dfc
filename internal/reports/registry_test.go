package reports

import (
	"testing"

	"logreport/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownReport(t *testing.T) {
	t.Parallel()

	r, err := Get("average")
	require.NoError(t, err)
	assert.Equal(t, "average", r.Name())
}

func TestGet_UnknownReport(t *testing.T) {
	t.Parallel()

	r, err := Get("user-agent")
	assert.Nil(t, r)
	require.Error(t, err)

	svcErr, ok := svcerrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "Unknown report type 'user-agent'. Supported: average", svcErr.Message)
	assert.Equal(t, 1, svcErr.ExitCode)
}

func TestSupported(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"average"}, Supported())
}
