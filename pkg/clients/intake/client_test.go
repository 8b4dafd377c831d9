package intake

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/medireon/site/pkg/errors"
)

func TestSubmitPostsURLEncodedForm(t *testing.T) {
	var (
		method      string
		contentType string
		body        string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		_, _ = w.Write([]byte(`{"result":"success"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nil)
	err := client.Submit(context.Background(), url.Values{"email": {"a@b.com"}, "launch": {"true"}})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "application/x-www-form-urlencoded", contentType)
	assert.Equal(t, "email=a%40b.com&launch=true", body)
}

func TestSubmitTreatsErrorStatusAsDelivered(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>script error</html>"))
	}))
	defer srv.Close()

	err := NewClient(srv.URL, time.Second, nil).Submit(context.Background(), url.Values{"email": {"a@b.com"}})
	assert.NoError(t, err)
}

func TestSubmitTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	err := NewClient(addr, time.Second, nil).Submit(context.Background(), url.Values{"email": {"a@b.com"}})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeDependency, pkgerrors.CodeOf(err))
}

func TestSubmitTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	err := NewClient(srv.URL, 20*time.Millisecond, nil).Submit(context.Background(), url.Values{})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeDependency, pkgerrors.CodeOf(err))
}

func TestSubmitWithoutEndpoint(t *testing.T) {
	err := NewClient("  ", time.Second, nil).Submit(context.Background(), url.Values{})
	assert.Equal(t, pkgerrors.CodeDependency, pkgerrors.CodeOf(err))
}
