package render

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSource(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "track.vtt")
	if err := os.WriteFile(path, []byte("WEBVTT\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	text, err := FileSource{}.FetchText(context.Background(), path)
	if err != nil {
		t.Fatalf("FetchText failed: %v", err)
	}
	if text != "WEBVTT\n" {
		t.Errorf("text = %q", text)
	}
}

func TestFileSourceNotFound(t *testing.T) {
	_, err := FileSource{}.FetchText(context.Background(), "/does/not/exist.vtt")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/track.vtt":
			_, _ = w.Write([]byte("WEBVTT\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src := NewHTTPSource()

	text, err := src.FetchText(context.Background(), srv.URL+"/track.vtt")
	if err != nil {
		t.Fatalf("FetchText failed: %v", err)
	}
	if text != "WEBVTT\n" {
		t.Errorf("text = %q", text)
	}

	_, err = src.FetchText(context.Background(), srv.URL+"/missing.vtt")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestHTTPSourceServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewHTTPSource().FetchText(context.Background(), srv.URL+"/track.vtt")
	if err == nil {
		t.Fatal("expected error for a 500 response")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("a server error is not ErrNotFound")
	}
}
