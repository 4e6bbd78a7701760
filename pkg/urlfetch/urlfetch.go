// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package urlfetch turns schema URLs into byte streams.
package urlfetch

import (
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// Fetcher turns an absolute URL, or a resource-style identifier,
// into a byte stream. The caller closes the returned reader.
type Fetcher interface {
	Fetch(rawURL string) (io.ReadCloser, error)
}

// Standard is the default fetcher. It supports http, https, and
// file URLs. An identifier without a recognized scheme is looked up
// in Resources, the analog of a classpath lookup; when Resources is
// nil such identifiers fail.
type Standard struct {
	// Client is the HTTP client to use. nil means
	// http.DefaultClient.
	Client *http.Client
	// Resources resolves scheme-less identifiers.
	Resources fs.FS
}

// Fetch implements Fetcher.
func (s *Standard) Fetch(rawURL string) (io.ReadCloser, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return s.fetchResource(rawURL)
	}

	switch u.Scheme {
	case "http", "https":
		client := s.Client
		if client == nil {
			client = http.DefaultClient
		}
		resp, err := client.Get(rawURL)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetching %s: unexpected status %s", rawURL, resp.Status)
		}
		return resp.Body, nil

	case "file":
		return os.Open(u.Path)

	default:
		return s.fetchResource(rawURL)
	}
}

// fetchResource looks an identifier up in the resource file system.
func (s *Standard) fetchResource(name string) (io.ReadCloser, error) {
	if s.Resources == nil {
		return nil, fmt.Errorf("no resource file system configured for %q", name)
	}
	return s.Resources.Open(strings.TrimPrefix(name, "/"))
}
