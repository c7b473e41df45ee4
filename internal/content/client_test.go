package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/postpage/internal/validation"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", time.Second)
}

func TestPostByIDFound(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts/42", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":42,"title":"Hello","description":"World","image":"/img.jpg","date":"2024-01-15T00:00:00Z"}`))
	})

	post, err := client.PostByID(context.Background(), "42")
	require.NoError(t, err)
	require.NotNil(t, post)

	assert.Equal(t, int64(42), post.ID)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, "World", post.Description)
	assert.Equal(t, "/img.jpg", post.Image)
	assert.Equal(t, "2024-01-15T00:00:00Z", post.Date)
}

func TestPostByIDAbsent(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"404", func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}},
		{"null body", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("null"))
		}},
		{"empty body", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestServer(t, tt.handler)

			post, err := client.PostByID(context.Background(), "99")
			require.NoError(t, err)
			assert.Nil(t, post)
		})
	}
}

func TestPostByIDErrors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.PostByID(context.Background(), "7")
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})

	t.Run("malformed json", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":`))
		})

		_, err := client.PostByID(context.Background(), "7")
		assert.Error(t, err)
	})

	t.Run("incomplete record", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":7,"title":"Draft"}`))
		})

		post, err := client.PostByID(context.Background(), "7")
		assert.Nil(t, post)
		assert.ErrorIs(t, err, validation.ErrIncompletePost)
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		client := NewClient(srv.URL, time.Second)
		srv.Close()

		_, err := client.PostByID(context.Background(), "7")
		assert.Error(t, err)
	})

	t.Run("canceled context", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`null`))
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.PostByID(ctx, "7")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestPostByIDEscapesID(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts/%2042", r.URL.EscapedPath())
		http.NotFound(w, r)
	})

	post, err := client.PostByID(context.Background(), " 42")
	require.NoError(t, err)
	assert.Nil(t, post)
}
