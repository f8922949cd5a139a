package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"item-catalog/internal/domain"
	"item-catalog/internal/repository"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	if err := NewUserRepository(db).Init(ctx); err != nil {
		t.Fatalf("init users: %v", err)
	}
	if err := NewItemRepository(db).Init(ctx); err != nil {
		t.Fatalf("init items: %v", err)
	}
	return db
}

func newTestUser(email, username string) *domain.User {
	return &domain.User{
		Email:        email,
		Username:     username,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
	}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	user := newTestUser("a@x.com", "a")
	id, err := repo.Create(ctx, user)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive id, got %d", id)
	}
	if user.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}

	byID, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID.Email != "a@x.com" || byID.Username != "a" {
		t.Fatalf("unexpected user: %+v", byID)
	}

	byEmail, err := repo.GetByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail.ID != id {
		t.Fatalf("id mismatch: got %d want %d", byEmail.ID, id)
	}

	byUsername, err := repo.GetByUsername(ctx, "a")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if byUsername.ID != id {
		t.Fatalf("id mismatch: got %d want %d", byUsername.ID, id)
	}
}

func TestUserRepository_Get_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, 999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByEmail(ctx, "nobody@x.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByUsername(ctx, "nobody"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_UniqueConstraints(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, newTestUser("a@x.com", "a")); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := repo.Create(ctx, newTestUser("a@x.com", "b")); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate email, got %v", err)
	}
	if _, err := repo.Create(ctx, newTestUser("b@x.com", "a")); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate username, got %v", err)
	}

	// Distinct pair still registers.
	if _, err := repo.Create(ctx, newTestUser("b@x.com", "b")); err != nil {
		t.Fatalf("create distinct pair: %v", err)
	}
}

func TestUserRepository_Update_PartialFields(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	user := newTestUser("a@x.com", "a")
	id, err := repo.Create(ctx, user)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	username := "renamed"
	updated, err := repo.Update(ctx, id, repository.UserUpdate{Username: &username})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Username != "renamed" {
		t.Fatalf("username not updated: %q", updated.Username)
	}
	if updated.Email != "a@x.com" {
		t.Fatalf("email changed unexpectedly: %q", updated.Email)
	}
	if updated.PasswordHash != user.PasswordHash {
		t.Fatalf("password hash changed unexpectedly")
	}
	if updated.UpdatedAt.Before(updated.CreatedAt) {
		t.Fatalf("expected updated_at not to precede created_at")
	}
}

func TestUserRepository_Update_EmptyUpdateKeepsRow(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, newTestUser("a@x.com", "a"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := repo.Update(ctx, id, repository.UserUpdate{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Email != "a@x.com" || updated.Username != "a" {
		t.Fatalf("row changed by empty update: %+v", updated)
	}
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	username := "ghost"
	if _, err := repo.Update(ctx, 999, repository.UserUpdate{Username: &username}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_Update_ConflictOnTakenEmail(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, newTestUser("a@x.com", "a")); err != nil {
		t.Fatalf("create: %v", err)
	}
	id, err := repo.Create(ctx, newTestUser("b@x.com", "b"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	taken := "a@x.com"
	if _, err := repo.Update(ctx, id, repository.UserUpdate{Email: &taken}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestUserRepository_Delete(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, newTestUser("a@x.com", "a"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := repo.Delete(ctx, id)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Fatalf("expected delete to report a removed row")
	}

	if _, err := repo.GetByID(ctx, id); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	deleted, err = repo.Delete(ctx, id)
	if err != nil {
		t.Fatalf("delete absent: %v", err)
	}
	if deleted {
		t.Fatalf("expected delete of absent row to report false")
	}
}

func TestUserRepository_List_OrderAndWindow(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	emails := []string{"a@x.com", "b@x.com", "c@x.com"}
	names := []string{"a", "b", "c"}
	for i := range emails {
		if _, err := repo.Create(ctx, newTestUser(emails[i], names[i])); err != nil {
			t.Fatalf("create %s: %v", names[i], err)
		}
	}

	all, err := repo.List(ctx, 0, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 users, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].ID <= all[i-1].ID {
			t.Fatalf("expected ascending id order")
		}
	}

	window, err := repo.List(ctx, 1, 1)
	if err != nil {
		t.Fatalf("list window: %v", err)
	}
	if len(window) != 1 || window[0].Username != "b" {
		t.Fatalf("unexpected window: %+v", window)
	}
}
