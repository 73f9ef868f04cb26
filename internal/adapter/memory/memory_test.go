package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"accounts/internal/domain"
)

func TestCreateAndFindByEmail(t *testing.T) {
	ctx := context.Background()
	db := New()

	hash := "not-a-real-hash"
	created, err := db.Create(ctx, "ana@example.com", "Ana", &hash, "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Error("expected generated id")
	}

	found, err := db.FindByEmail(ctx, "ANA@example.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found == nil {
		t.Fatal("expected user, got nil")
	}
	if found.ID != created.ID {
		t.Errorf("expected id %s, got %s", created.ID, found.ID)
	}
	if found.Email != "ana@example.com" {
		t.Errorf("unexpected email: %s", found.Email)
	}
}

func TestFindMissingReturnsNil(t *testing.T) {
	ctx := context.Background()
	db := New()

	u, err := db.FindByEmail(ctx, "nobody@example.com")
	if err != nil || u != nil {
		t.Errorf("expected nil, nil; got %v, %v", u, err)
	}
}

func TestCreateDuplicateCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	db := New()

	if _, err := db.Create(ctx, "ana@example.com", "Ana", nil, ""); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := db.Create(ctx, "Ana@Example.COM", "Impostor", nil, "")
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
	if db.Count() != 1 {
		t.Errorf("expected 1 user, got %d", db.Count())
	}
}

// Concurrent creates with the same email: exactly one wins.
func TestCreateConcurrentDuplicates(t *testing.T) {
	ctx := context.Background()
	db := New()

	const attempts = 32
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := db.Create(ctx, "ana@example.com", "Ana", nil, "")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, dup int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrDuplicateEmail):
			dup++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	if ok != 1 {
		t.Errorf("expected exactly 1 successful create, got %d", ok)
	}
	if dup != attempts-1 {
		t.Errorf("expected %d duplicate errors, got %d", attempts-1, dup)
	}
	if db.Count() != 1 {
		t.Errorf("expected 1 stored user, got %d", db.Count())
	}
}

// Mutating a returned user must not leak into the store.
func TestReturnsCopies(t *testing.T) {
	ctx := context.Background()
	db := New()

	hash := "hash-1"
	created, err := db.Create(ctx, "ana@example.com", "Ana", &hash, "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	created.DisplayName = "Mutated"

	found, _ := db.FindByEmail(ctx, "ana@example.com")
	if found.DisplayName != "Ana" {
		t.Errorf("store mutated through returned copy: %s", found.DisplayName)
	}
}
