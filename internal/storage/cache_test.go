package storage

import (
	"bytes"
	"context"
	"testing"

	"github.com/vovakirdan/floaty-cloud/internal/offline"
)

func TestCacheEntries(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, ok, err := store.GetEntry(ctx, offline.Bucket, "/"); ok || err != nil {
		t.Errorf("empty cache returned (%v, %v)", ok, err)
	}

	entry := offline.Entry{Path: "/app.js", ContentType: "text/javascript", Status: 200, Body: []byte("let x = 1")}
	if err := store.PutEntry(ctx, offline.Bucket, entry); err != nil {
		t.Fatalf("PutEntry() failed: %v", err)
	}

	entry.Body = []byte("let x = 2")
	if err := store.PutEntry(ctx, offline.Bucket, entry); err != nil {
		t.Fatalf("PutEntry() overwrite failed: %v", err)
	}

	got, ok, err := store.GetEntry(ctx, offline.Bucket, "/app.js")
	if err != nil || !ok {
		t.Fatalf("GetEntry() = (%v, %v), expected hit", ok, err)
	}
	if got.Path != "/app.js" || got.ContentType != "text/javascript" || got.Status != 200 || !bytes.Equal(got.Body, entry.Body) {
		t.Errorf("GetEntry() = %+v, expected %+v", got, entry)
	}

	if _, ok, _ := store.GetEntry(ctx, "floaty-cloud-v1", "/app.js"); ok {
		t.Error("entry leaked into another bucket")
	}
}

func TestDropBucket(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, p := range offline.DefaultManifest {
		store.PutEntry(ctx, "floaty-cloud-v1", offline.Entry{Path: p, Status: 200, Body: []byte(p)})
	}
	store.PutEntry(ctx, offline.Bucket, offline.Entry{Path: "/", Status: 200, Body: []byte("new")})

	n, err := store.DropBucket(ctx, "floaty-cloud-v1")
	if err != nil {
		t.Fatalf("DropBucket() failed: %v", err)
	}
	if n != int64(len(offline.DefaultManifest)) {
		t.Errorf("dropped %d entries, expected %d", n, len(offline.DefaultManifest))
	}
	if _, ok, _ := store.GetEntry(ctx, offline.Bucket, "/"); !ok {
		t.Error("current bucket should survive")
	}
}
