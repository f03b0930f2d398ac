package chat_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLivezEndpoint(t *testing.T) {
	env := setupChatServer(t)

	health, err := env.Client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotEmpty(t, health.Version)
}

func TestReadyzEndpoint(t *testing.T) {
	env := setupChatServer(t)

	health, err := env.Client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
}
