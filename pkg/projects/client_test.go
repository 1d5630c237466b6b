package projects_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/folio/pkg/projects"
)

const reposJSON = `[
  {"id":1,"name":"wilson.github.io","language":"HTML","topics":[]},
  {"id":2,"name":"wilson","description":"profile readme","language":null,"topics":[]},
  {"id":3,"name":"folio","description":"Portfolio backend","language":"Go","topics":["portfolio"],"stargazers_count":4,"forks_count":1,"html_url":"https://github.com/wilson/folio","created_at":"2024-01-02T10:00:00Z","updated_at":"2024-05-01T10:00:00Z"},
  {"id":4,"name":"atlas","description":null,"language":"TypeScript","stargazers_count":9}
]`

func TestClient_List(t *testing.T) {
	t.Parallel()

	var (
		path, query, auth string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path, query, auth = r.URL.Path, r.URL.RawQuery, r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(reposJSON))
	}))
	t.Cleanup(srv.Close)

	c, err := projects.NewClient(projects.Config{User: "wilson", BaseURL: srv.URL}, srv.Client())
	require.NoError(t, err)

	repos, err := c.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/users/wilson/repos", path)
	assert.Equal(t, "sort=updated&per_page=50", query)
	assert.Empty(t, auth)

	require.Len(t, repos, 2)
	assert.Equal(t, "folio", repos[0].Name)
	assert.Equal(t, 4, repos[0].Stars)
	assert.Equal(t, 2024, repos[0].UpdatedAt.Year())
	assert.Equal(t, "atlas", repos[1].Name)
	assert.Empty(t, repos[1].Description)
	assert.NotNil(t, repos[1].Topics)
}

func TestClient_List_WithToken(t *testing.T) {
	t.Parallel()

	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	c, err := projects.NewClient(projects.Config{User: "wilson", Token: "ghp_test", BaseURL: srv.URL}, srv.Client())
	require.NoError(t, err)

	_, err = c.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer ghp_test", auth)
}

func TestClient_List_Exclusions(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
  {"id":1,"name":"docs.github.io"},
  {"id":2,"name":"Wilson.GitHub.io"},
  {"id":3,"name":"WILSON"},
  {"id":4,"name":"github.io-tools"}
]`))
	}))
	t.Cleanup(srv.Close)

	c, err := projects.NewClient(projects.Config{User: "wilson", BaseURL: srv.URL}, srv.Client())
	require.NoError(t, err)

	repos, err := c.List(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(repos))
	for _, r := range repos {
		names = append(names, r.Name)
	}
	// The .github.io match is case-sensitive; the profile repo match is not.
	assert.Equal(t, []string{"Wilson.GitHub.io", "github.io-tools"}, names)
}

func TestClient_List_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "rate limited", status: http.StatusForbidden, body: `{"message":"API rate limit exceeded"}`, want: projects.ErrRequestFailed},
		{name: "not found", status: http.StatusNotFound, body: `{}`, want: projects.ErrRequestFailed},
		{name: "bad json", status: http.StatusOK, body: `{"not":"a list"}`, want: projects.ErrDecodeFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)

			c, err := projects.NewClient(projects.Config{User: "wilson", BaseURL: srv.URL}, srv.Client())
			require.NoError(t, err)

			_, err = c.List(context.Background())
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewClient_RequiresUser(t *testing.T) {
	t.Parallel()

	_, err := projects.NewClient(projects.Config{}, nil)
	require.ErrorIs(t, err, projects.ErrNoUser)
}
