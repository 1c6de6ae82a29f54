package imaging

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataURIResolver(t *testing.T) {
	r := DataURIResolver{}

	t.Run("decodes base64 payload", func(t *testing.T) {
		ref := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("payload"))
		data, err := r.Resolve(ref)
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), data)
	})

	t.Run("rejects non data URIs", func(t *testing.T) {
		_, err := r.Resolve("https://example.com/logo.png")
		assert.ErrorIs(t, err, ErrUnsupportedSource)
	})

	t.Run("fails on missing base64 marker", func(t *testing.T) {
		_, err := r.Resolve("data:image/png,rawbytes")
		assert.ErrorIs(t, err, ErrConversionFailed)
	})
}

func TestHTTPResolver(t *testing.T) {
	t.Run("fetches from URL", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("image-bytes"))
		}))
		defer srv.Close()

		data, err := HTTPResolver{Client: srv.Client()}.Resolve(srv.URL)
		require.NoError(t, err)
		assert.Equal(t, []byte("image-bytes"), data)
	})

	t.Run("non-200 is a conversion error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := HTTPResolver{Client: srv.Client()}.Resolve(srv.URL)
		assert.ErrorIs(t, err, ErrConversionFailed)
	})

	t.Run("rejects non-http references", func(t *testing.T) {
		_, err := HTTPResolver{}.Resolve("ZGF0YQ==")
		assert.ErrorIs(t, err, ErrUnsupportedSource)
	})
}

func TestResolve(t *testing.T) {
	resolvers := DefaultResolvers()

	t.Run("bare base64 falls through to the last resolver", func(t *testing.T) {
		data, err := Resolve(resolvers, base64.StdEncoding.EncodeToString([]byte("logo")))
		require.NoError(t, err)
		assert.Equal(t, []byte("logo"), data)
	})

	t.Run("recognized but broken source stops the chain", func(t *testing.T) {
		_, err := Resolve(resolvers, "data:image/png;base64,!!!not-base64!!!")
		assert.ErrorIs(t, err, ErrConversionFailed)
	})

	t.Run("empty source fails", func(t *testing.T) {
		_, err := Resolve(resolvers, "")
		assert.ErrorIs(t, err, ErrConversionFailed)
	})

	t.Run("nothing accepts the source", func(t *testing.T) {
		_, err := Resolve(resolvers, "not base64 at all!!!")
		assert.ErrorIs(t, err, ErrConversionFailed)
	})
}
