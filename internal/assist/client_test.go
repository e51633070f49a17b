package assist

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/project/assist", r.URL.Path)
		assert.Equal(t, "get", r.URL.Query().Get("action"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/project/assist", time.Second)
	exps, err := c.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, exps, 3)
	assert.Equal(t, srv.URL+"/project/assist", c.Endpoint())
}

func TestClientDeleteEscapesID(t *testing.T) {
	var gotID, gotAction string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAction = r.URL.Query().Get("action")
		gotID = r.URL.Query().Get("id")
		assert.Contains(t, r.URL.RawQuery, "id=a%2Fb+c%26d")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	require.NoError(t, c.Delete(context.Background(), "a/b c&d"))
	assert.Equal(t, "delete", gotAction)
	assert.Equal(t, "a/b c&d", gotID)
}

func TestClientDeleteRequiresID(t *testing.T) {
	c := NewClient("http://localhost:1", time.Second)
	assert.Error(t, c.Delete(context.Background(), ""))
}

func TestClientStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, strings.Repeat("x", 2*snippetBytes), http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Fetch(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, ActionGet, statusErr.Action)
	assert.Len(t, statusErr.Body, snippetBytes)
	assert.Contains(t, err.Error(), "500 Internal Server Error")
}

func TestClientBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"nope": true}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Fetch(context.Background())
	assert.ErrorContains(t, err, "failed to decode")
}

func TestClientContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := NewClient(srv.URL, 0).Fetch(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStatusErrorWithoutBody(t *testing.T) {
	err := &StatusError{Action: ActionDelete, StatusCode: http.StatusNotFound}
	assert.Equal(t, "assist delete returned 404 Not Found", err.Error())
}
