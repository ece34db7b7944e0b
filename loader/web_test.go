package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragforge/docqa"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
	<title>Refund Policy</title>
	<style>body { color: red; }</style>
</head>
<body>
	<script>console.log("tracking");</script>
	<h1>Refunds</h1>
	<p>Refunds are processed within 5-7 business days.</p>
</body>
</html>`

func TestWebLoader(t *testing.T) {
	ctx := context.Background()

	t.Run("extracts visible text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(samplePage))
		}))
		defer srv.Close()

		docs, err := NewWeb([]string{srv.URL}).Load(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 1)

		doc := docs[0]
		assert.Equal(t, srv.URL, doc.ID)
		assert.Equal(t, "Refund Policy", doc.Metadata["title"])
		assert.Contains(t, doc.Content, "Refunds are processed within 5-7 business days.")
		assert.NotContains(t, doc.Content, "console.log")
		assert.NotContains(t, doc.Content, "color: red")
	})

	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := NewWeb([]string{srv.URL}).Load(ctx)
		var extErr *docqa.ExternalServiceError
		assert.ErrorAs(t, err, &extErr)
	})

	t.Run("unreachable host", func(t *testing.T) {
		_, err := NewWeb([]string{"http://127.0.0.1:1/nope"}).Load(ctx)
		var extErr *docqa.ExternalServiceError
		assert.ErrorAs(t, err, &extErr)
	})
}
