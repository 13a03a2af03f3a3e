package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// DefaultUserAgent is sent with every request. Some hosts reject the Go default.
const DefaultUserAgent = "Mozilla/5.0"

// Fetcher downloads single files over HTTP. There are no retries.
type Fetcher struct {
	Client    *http.Client
	UserAgent string
	Log       *slog.Logger
}

func (f *Fetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return http.DefaultClient
}

func (f *Fetcher) logger() *slog.Logger {
	if f.Log != nil {
		return f.Log
	}
	return slog.New(slog.DiscardHandler)
}

// Fetch GETs url and writes the body to path, returning the byte count.
func (f *Fetcher) Fetch(ctx context.Context, url, path string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	ua := f.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)

	resp, err := f.client().Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return 0, fmt.Errorf("download %s failed: %s: %s", url, resp.Status, strings.TrimSpace(string(b)))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, err
	}
	out, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(out, resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("write %s: %w", path, err)
	}
	return n, nil
}

// Populate downloads every listed file into dir, in order. Files already on
// disk are kept unless force is set. The first failure aborts.
func Populate(ctx context.Context, dir string, list []Source, f *Fetcher, force bool) (*Catalog, error) {
	log := f.logger()
	for _, s := range list {
		path := filepath.Join(dir, s.Name)
		if !force {
			if _, err := os.Stat(path); err == nil {
				log.Debug("source present", "file", s.Name)
				continue
			} else if !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
		}
		n, err := f.Fetch(ctx, s.URL, path)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", s.Name, err)
		}
		log.Info("downloaded", "file", s.Name, "bytes", n)
	}
	return newCatalog(dir, list), nil
}
