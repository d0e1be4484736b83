package mesh

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Resource is a streamable model file, either on the local filesystem or
// fetched over http/https. The caller must close it.
type Resource struct {
	io.ReadCloser
	url *url.URL
}

// Path returns the location this resource was opened from.
func (r *Resource) Path() string {
	return r.url.String()
}

// IsRemote reports whether the resource is streamed over http/https.
func (r *Resource) IsRemote() bool {
	return r.url.Scheme != ""
}

// OpenResource opens a model file from a local path or an http/https URL.
func OpenResource(path string) (*Resource, error) {
	url, err := url.Parse(strings.Replace(path, `\`, `/`, -1))
	if err != nil {
		return nil, fmt.Errorf("mesh: could not parse resource path: %v", err)
	}

	var reader io.ReadCloser
	switch url.Scheme {
	case "":
		reader, err = os.Open(filepath.Clean(url.Path))
		if err != nil {
			return nil, fmt.Errorf("mesh: could not open resource: %v", err)
		}
	case "http", "https":
		resp, err := http.Get(url.String())
		if err != nil {
			return nil, fmt.Errorf("mesh: could not fetch '%s': %v", url, err)
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, fmt.Errorf("mesh: could not fetch '%s': status %d", url, resp.StatusCode)
		}
		reader = resp.Body
	default:
		return nil, fmt.Errorf("mesh: unsupported resource scheme '%s'", url.Scheme)
	}

	return &Resource{
		ReadCloser: reader,
		url:        url,
	}, nil
}
