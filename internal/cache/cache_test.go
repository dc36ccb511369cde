package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/swiftherb/swiftherb-server/internal/domain"
)

func TestGetSet(t *testing.T) {
	c := New[string](10)

	c.Set("k", "v", time.Minute)

	got, ok := c.Get("k")
	if !ok {
		t.Fatal("Expected hit")
	}
	if got != "v" {
		t.Errorf("Expected v, got %q", got)
	}
}

func TestGetMissing(t *testing.T) {
	c := New[string](10)

	if _, ok := c.Get("nope"); ok {
		t.Error("Expected miss for unknown key")
	}
}

func TestTTLExpiry(t *testing.T) {
	c := New[string](10)

	c.Set("k", "v", 100*time.Millisecond)

	if _, ok := c.Get("k"); !ok {
		t.Fatal("Expected hit before expiry")
	}

	time.Sleep(150 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Error("Expected miss after expiry")
	}
	if c.Len() != 0 {
		t.Errorf("Expected expired entry to be removed, len=%d", c.Len())
	}
}

func TestEvictionOldestFirst(t *testing.T) {
	c := New[int](100)

	for i := 0; i < 100; i++ {
		c.Set(fmt.Sprintf("key-%d", i), i, time.Minute)
	}
	if c.Len() != 100 {
		t.Fatalf("Expected 100 entries, got %d", c.Len())
	}

	// The 101st distinct key evicts exactly the oldest entry.
	c.Set("key-100", 100, time.Minute)

	if c.Len() != 100 {
		t.Errorf("Expected 100 entries after eviction, got %d", c.Len())
	}
	if _, ok := c.Get("key-0"); ok {
		t.Error("Expected oldest entry key-0 to be evicted")
	}
	if _, ok := c.Get("key-1"); !ok {
		t.Error("Expected key-1 to survive")
	}
	if _, ok := c.Get("key-100"); !ok {
		t.Error("Expected new key to be present")
	}
}

func TestSetExistingKeyDoesNotEvict(t *testing.T) {
	c := New[int](2)

	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)
	c.Set("a", 3, time.Minute)

	if got, _ := c.Get("a"); got != 3 {
		t.Errorf("Expected refreshed value 3, got %d", got)
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("Expected b to survive a refresh of a")
	}
}

func TestDeleteAndClear(t *testing.T) {
	c := New[string](10)

	c.Set("a", "1", time.Minute)
	c.Set("b", "2", time.Minute)

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("Expected a to be deleted")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Expected empty cache after Clear, len=%d", c.Len())
	}
	if _, ok := c.Get("b"); ok {
		t.Error("Expected b to be gone after Clear")
	}
}

func TestKeyDeterministic(t *testing.T) {
	msgs := []domain.Message{
		{Role: domain.RoleUser, Content: "help with sleep"},
		{Role: domain.RoleAssistant, Content: "try [[Magnesium Glycinate]]"},
	}

	k1 := Key(msgs, "what else?")
	k2 := Key(msgs, "what else?")
	if k1 != k2 {
		t.Errorf("Expected identical keys, got %q and %q", k1, k2)
	}
}

func TestKeySensitivity(t *testing.T) {
	msgs := []domain.Message{
		{Role: domain.RoleUser, Content: "a"},
		{Role: domain.RoleAssistant, Content: "b"},
	}
	reordered := []domain.Message{
		{Role: domain.RoleAssistant, Content: "b"},
		{Role: domain.RoleUser, Content: "a"},
	}

	if Key(msgs, "x") == Key(msgs, "y") {
		t.Error("Expected different keys for different user messages")
	}
	if Key(msgs, "x") == Key(reordered, "x") {
		t.Error("Expected different keys for reordered transcripts")
	}
	if Key(nil, "x") == Key(msgs, "x") {
		t.Error("Expected different keys for different history")
	}
}
