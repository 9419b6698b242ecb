package test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/worklog-zero/backend/internal/identity"
)

func init() {
	identity.SetSecret("worklog-zero-test-secret")
}

// BearerFor returns the request headers authenticating as a user with the
// given roles.
func BearerFor(t *testing.T, name string, roles ...string) map[string]string {
	token, err := identity.Token(name, roles, time.Hour)
	require.NoError(t, err, "test token could not be signed")

	return map[string]string{"Authorization": "Bearer " + token}
}
