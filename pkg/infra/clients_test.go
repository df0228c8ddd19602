package infra_test

import (
	"net/http"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/mock"
	"github.com/sujeeth-infosec/portfolio/pkg/infra"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.HTTPClient()).Equal(http.DefaultClient)
		gt.V(t, clients.GitHub()).Equal(nil)
		gt.V(t, clients.EmailRelay()).Equal(nil)
	})

	t.Run("WithGitHub option sets GitHub client", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		clients := infra.New(infra.WithGitHub(mockGH))
		gt.V(t, clients.GitHub()).Equal(mockGH)
	})

	t.Run("WithEmailRelay option sets email relay", func(t *testing.T) {
		mockRelay := &mock.EmailRelayMock{}
		clients := infra.New(infra.WithEmailRelay(mockRelay))
		gt.V(t, clients.EmailRelay()).Equal(mockRelay)
	})

	t.Run("WithHTTPClient option sets HTTP client", func(t *testing.T) {
		mockHTTP := &mockHTTPClient{}
		clients := infra.New(infra.WithHTTPClient(mockHTTP))
		gt.V(t, clients.HTTPClient()).Equal(mockHTTP)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		mockRelay := &mock.EmailRelayMock{}
		mockHTTP := &mockHTTPClient{}

		clients := infra.New(
			infra.WithGitHub(mockGH),
			infra.WithEmailRelay(mockRelay),
			infra.WithHTTPClient(mockHTTP),
		)
		gt.V(t, clients.GitHub()).Equal(mockGH)
		gt.V(t, clients.EmailRelay()).Equal(mockRelay)
		gt.V(t, clients.HTTPClient()).Equal(mockHTTP)
	})
}

type mockHTTPClient struct{}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return nil, nil
}
