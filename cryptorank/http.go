package cryptorank

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"
)

// cachingTransport replays catalog responses from a small on-disk cache
// with a daily expiry. Quotes move, but for a converter one fetch per day
// and per query is plenty, and the free API tier is easily exhausted.
type cachingTransport struct {
	next http.RoundTripper
}

func (t *cachingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	file := cacheFile(req)
	if resp, err := readCached(file, req); err == nil {
		return resp, nil
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("catalog %s %s %s", req.Method, req.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	if err := writeCached(file, resp); err != nil {
		log.Printf("catalog cache write err (ignored): %v", err)
	}
	return resp, nil
}

// cacheFile keys a request by day and by URL with the api_key parameter
// stripped, so rotating the key does not cold-start the cache.
func cacheFile(req *http.Request) string {
	u := *req.URL
	q := u.Query()
	q.Del("api_key")
	u.RawQuery = q.Encode()
	key := time.Now().Format("2006-01-02") + " " + req.Method + " " + u.String()
	return filepath.Join(os.TempDir(), fmt.Sprintf("cryptorank-%x", sha1.Sum([]byte(key))))
}

func readCached(file string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
}

func writeCached(file string, resp *http.Response) error {
	// DumpResponse leaves resp.Body readable for the actual consumer.
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(file, content, 0o644)
}

// daily returns the default catalog client, caching included.
func daily() *http.Client {
	return &http.Client{Transport: &cachingTransport{http.DefaultTransport}}
}
