package storage

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/storage/")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	ctx := context.Background()

	key := "anonymous/case-1/section21_notice_1700000000.pdf"
	url, err := store.Upload(ctx, key, strings.NewReader("%PDF-1.4 content"), "application/pdf")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "http://localhost:8080/storage/"+key {
		t.Fatalf("unexpected URL %q", url)
	}

	reader, err := store.Download(ctx, key)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	defer reader.Close()
	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "%PDF-1.4 content" {
		t.Fatalf("unexpected content %q", data)
	}

	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Download(ctx, key); err == nil {
		t.Fatalf("expected download to fail after delete")
	}
}

func TestLocalStorageDeleteMissingIsIdempotent(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/storage")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	if err := store.Delete(context.Background(), "never/uploaded.pdf"); err != nil {
		t.Fatalf("deleting a missing artifact must not fail: %v", err)
	}
}

func TestSanitizeKeyStripsTraversal(t *testing.T) {
	cases := map[string]string{
		"/leading/slash.pdf":      "leading/slash.pdf",
		"a/../../b.pdf":           "a//b.pdf",
		"windows\\style\\key.pdf": "windows/style/key.pdf",
		"plain/key.pdf":           "plain/key.pdf",
	}
	for in, want := range cases {
		if got := sanitizeKey(in); got != want {
			t.Fatalf("sanitizeKey(%q) = %q, want %q", in, got, want)
		}
	}
}
