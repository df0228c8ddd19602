package testutil

import (
	"os"
	"strings"
	"testing"

	"github.com/sujeeth-infosec/portfolio/pkg/domain/types"
)

// GetEnvOrSkip returns the value of the environment variable. If it is unset or blank, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		t.Skipf("Environment variable %s is not set, skipping test", key)
	}
	return value
}

// GitHubUsernameOrSkip returns the account used by tests against the live GitHub API
func GitHubUsernameOrSkip(t *testing.T) types.GitHubUsername {
	t.Helper()
	return types.GitHubUsername(GetEnvOrSkip(t, "TEST_GITHUB_USERNAME"))
}
