package sources

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/1siamBot/herofx-assets/engine/raster"
)

func TestDefaultListNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Default {
		if seen[s.Name] {
			t.Errorf("duplicate source %s", s.Name)
		}
		seen[s.Name] = true
		if !strings.HasPrefix(s.URL, "https://") {
			t.Errorf("%s: url %q", s.Name, s.URL)
		}
	}
	if len(Default) != 15 {
		t.Fatalf("%d sources, want 15", len(Default))
	}
}

func TestFetchSendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.UserAgent()
		w.Write([]byte("payload"))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "sub", "file.bin")
	f := &Fetcher{Client: srv.Client()}
	n, err := f.Fetch(context.Background(), srv.URL+"/file.bin", path)
	if err != nil {
		t.Fatal(err)
	}
	if n != 7 {
		t.Fatalf("wrote %d bytes, want 7", n)
	}
	if gotUA != DefaultUserAgent {
		t.Fatalf("user agent = %q", gotUA)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "payload" {
		t.Fatalf("file = %q, %v", data, err)
	}
}

func TestFetchNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such texture", http.StatusNotFound)
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "missing.png")
	_, err := (&Fetcher{Client: srv.Client()}).Fetch(context.Background(), srv.URL+"/missing.png", path)
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"404", "no such texture"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("failed download left a file: %v", err)
	}
}

func TestPopulateSkipsPresentUnlessForced(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(r.URL.Path))
	}))
	defer srv.Close()

	list := []Source{
		{Name: "a.png", URL: srv.URL + "/a", Group: GroupThreeJS},
		{Name: "b.png", URL: srv.URL + "/b", Group: GroupThreeJS},
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.png"), []byte("local"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := &Fetcher{Client: srv.Client()}
	cat, err := Populate(context.Background(), dir, list, f, false)
	if err != nil {
		t.Fatal(err)
	}
	if hits.Load() != 1 {
		t.Fatalf("%d requests, want 1", hits.Load())
	}
	if data, _ := os.ReadFile(cat.Path("a.png")); string(data) != "local" {
		t.Fatalf("present file overwritten: %q", data)
	}

	if _, err := Populate(context.Background(), dir, list, f, true); err != nil {
		t.Fatal(err)
	}
	if hits.Load() != 3 {
		t.Fatalf("%d requests after force, want 3", hits.Load())
	}
	if data, _ := os.ReadFile(cat.Path("a.png")); string(data) != "/a" {
		t.Fatalf("forced file = %q", data)
	}
}

func TestPopulateStopsAtFirstFailure(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	list := []Source{
		{Name: "a.png", URL: srv.URL + "/a"},
		{Name: "b.png", URL: srv.URL + "/b"},
	}
	_, err := Populate(context.Background(), t.TempDir(), list, &Fetcher{Client: srv.Client()}, false)
	if err == nil || !strings.Contains(err.Error(), "a.png") {
		t.Fatalf("err = %v", err)
	}
	if hits.Load() != 1 {
		t.Fatalf("%d requests, want 1", hits.Load())
	}
}

func TestOpenReportsEveryMissingFile(t *testing.T) {
	_, err := Open(t.TempDir(), Default[:3])
	if err == nil {
		t.Fatal("expected error")
	}
	for _, s := range Default[:3] {
		if !strings.Contains(err.Error(), s.Name) {
			t.Errorf("error does not name %s", s.Name)
		}
	}
}

func TestWriteSyntheticIsUsable(t *testing.T) {
	dir := t.TempDir()
	if _, err := WriteSynthetic(dir, Default, 8); err != nil {
		t.Fatal(err)
	}
	cat, err := Open(dir, Default)
	if err != nil {
		t.Fatal(err)
	}

	for _, zipName := range []string{WallZip2K, FloorZip1K} {
		for _, m := range packMembers {
			img, err := raster.LoadZipImage(cat.Path(zipName), strings.ToLower(m))
			if err != nil {
				t.Fatalf("%s %s: %v", zipName, m, err)
			}
			if got := img.Bounds().Dx(); got != 8 {
				t.Fatalf("%s %s width %d", zipName, m, got)
			}
		}
	}
	for _, name := range []string{Disc, Caustic, NoiseTex} {
		img, err := raster.Load(cat.Path(name))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got := img.Bounds().Size().X; got != 8 {
			t.Fatalf("%s width %d", name, got)
		}
	}
	if s, ok := cat.Source(Caustic); !ok || s.Group != GroupThreeJS {
		t.Fatalf("Source(%s) = %+v, %v", Caustic, s, ok)
	}
}

func TestWriteSyntheticDeterministic(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	list := []Source{{Name: NoiseTex}, {Name: Disc}, {Name: WallZip1K}}
	if _, err := WriteSynthetic(a, list, 6); err != nil {
		t.Fatal(err)
	}
	if _, err := WriteSynthetic(b, list, 6); err != nil {
		t.Fatal(err)
	}
	for _, s := range list {
		da, _ := os.ReadFile(filepath.Join(a, s.Name))
		db, _ := os.ReadFile(filepath.Join(b, s.Name))
		if string(da) != string(db) {
			t.Errorf("%s differs between runs", s.Name)
		}
	}
}
