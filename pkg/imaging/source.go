package imaging

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrUnsupportedSource is returned by a Resolver that cannot handle the
// given reference.
var ErrUnsupportedSource = errors.New("imaging: unsupported source")

// Resolver turns an image reference (data URI, base64 blob, URL, ...) into
// raw encoded image bytes. Resolvers are tried in order; the first one that
// succeeds wins.
type Resolver interface {
	Resolve(ref string) ([]byte, error)
}

// DataURIResolver handles "data:image/...;base64,..." references.
type DataURIResolver struct{}

func (DataURIResolver) Resolve(ref string) ([]byte, error) {
	if !strings.HasPrefix(ref, "data:") {
		return nil, ErrUnsupportedSource
	}
	idx := strings.Index(ref, "base64,")
	if idx < 0 {
		return nil, fmt.Errorf("%w: data URI without base64 payload", ErrConversionFailed)
	}
	data, err := base64.StdEncoding.DecodeString(ref[idx+len("base64,"):])
	if err != nil {
		return nil, fmt.Errorf("%w: data URI decode: %v", ErrConversionFailed, err)
	}
	return data, nil
}

// HTTPResolver fetches the image from a remote URL.
type HTTPResolver struct {
	Client *http.Client
}

func (r HTTPResolver) Resolve(ref string) ([]byte, error) {
	if !strings.HasPrefix(ref, "http://") && !strings.HasPrefix(ref, "https://") {
		return nil, ErrUnsupportedSource
	}
	client := r.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Get(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch: %v", ErrConversionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fetch: status %d", ErrConversionFailed, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: fetch: %v", ErrConversionFailed, err)
	}
	return data, nil
}

// Base64Resolver handles bare base64 blobs with no data URI prefix.
type Base64Resolver struct{}

func (Base64Resolver) Resolve(ref string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(ref)
	if err != nil {
		return nil, ErrUnsupportedSource
	}
	return data, nil
}

// DefaultResolvers is the standard resolution chain.
func DefaultResolvers() []Resolver {
	return []Resolver{
		DataURIResolver{},
		HTTPResolver{},
		Base64Resolver{},
	}
}

// Resolve tries each resolver in order and returns the first successful
// result. A resolver that does not recognize the reference is skipped; a
// resolver that recognizes it but fails ends the chain with its error.
func Resolve(resolvers []Resolver, ref string) ([]byte, error) {
	if ref == "" {
		return nil, fmt.Errorf("%w: empty source", ErrConversionFailed)
	}
	for _, r := range resolvers {
		data, err := r.Resolve(ref)
		if err == nil {
			return data, nil
		}
		if errors.Is(err, ErrUnsupportedSource) {
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("%w: no resolver accepted the source", ErrConversionFailed)
}
