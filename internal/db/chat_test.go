package db

import "testing"

func TestPairChatID(t *testing.T) {
	a := PairChatID("uid-zed", "uid-ann")
	b := PairChatID("uid-ann", "uid-zed")
	if a != b {
		t.Fatalf("pair id depends on argument order: %q vs %q", a, b)
	}
	if a != "dm_uid-ann_uid-zed" {
		t.Fatalf("pair id = %q, want dm_uid-ann_uid-zed", a)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 50); got != "short" {
		t.Fatalf("truncate(short) = %q", got)
	}
	long := make([]byte, 60)
	for i := range long {
		long[i] = 'x'
	}
	if got := truncate(string(long), 50); len(got) != 50 {
		t.Fatalf("truncate kept %d bytes, want 50", len(got))
	}
}
