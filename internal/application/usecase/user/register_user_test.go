package user

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// fakeUserRepo is an in-memory UserRepository for use case tests.
type fakeUserRepo struct {
	users    map[uuid.UUID]*entity.User
	profiles map[uuid.UUID]*entity.Profile
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    make(map[uuid.UUID]*entity.User),
		profiles: make(map[uuid.UUID]*entity.Profile),
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User, profile *entity.Profile) error {
	r.users[user.ID] = user
	r.profiles[user.ID] = profile
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindProfileByUserID(_ context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return profile, nil
}

func (r *fakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, user := range r.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return domainerror.ErrUserNotFound
	}
	delete(r.users, id)
	delete(r.profiles, id)
	return nil
}

// fakePasswordService hashes by prefixing, which keeps the plain text
// visible for assertions.
type fakePasswordService struct{}

func (fakePasswordService) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) Compare(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return domainerror.ErrUserNotFound
	}
	return nil
}

func TestRegisterUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	input := RegisterUserInput{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "SecurePass123!",
		FirstName: "Alice",
		LastName:  "Smith",
	}

	t.Run("registers a user with its profile", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewRegisterUserUseCase(repo, fakePasswordService{})

		output, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.User.Username != "alice" {
			t.Errorf("expected username alice, got %s", output.User.Username)
		}
		if output.Profile.UserID != output.User.ID {
			t.Error("expected profile to belong to the new user")
		}
		if len(repo.users) != 1 || len(repo.profiles) != 1 {
			t.Errorf("expected 1 user and 1 profile, got %d and %d", len(repo.users), len(repo.profiles))
		}
	})

	t.Run("stores the hash instead of the password", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewRegisterUserUseCase(repo, fakePasswordService{})

		output, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.PasswordHash != "hashed:SecurePass123!" {
			t.Errorf("expected hashed password, got %s", output.User.PasswordHash)
		}
	})

	t.Run("rejects a taken username", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewRegisterUserUseCase(repo, fakePasswordService{})

		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		second := input
		second.Email = "other@example.com"
		_, err := uc.Execute(ctx, second)
		if err == nil {
			t.Fatal("expected error for taken username")
		}
		if domainerror.KindOf(err) != domainerror.KindConflict {
			t.Errorf("expected kind %s, got %s", domainerror.KindConflict, domainerror.KindOf(err))
		}
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewRegisterUserUseCase(repo, fakePasswordService{})

		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		second := input
		second.Username = "alice2"
		_, err := uc.Execute(ctx, second)
		if err == nil {
			t.Fatal("expected error for taken email")
		}
		if domainerror.KindOf(err) != domainerror.KindConflict {
			t.Errorf("expected kind %s, got %s", domainerror.KindConflict, domainerror.KindOf(err))
		}
	})
}

func TestDeleteUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an existing user", func(t *testing.T) {
		repo := newFakeUserRepo()
		registered, err := NewRegisterUserUseCase(repo, fakePasswordService{}).Execute(ctx, RegisterUserInput{
			Username:  "bob",
			Email:     "bob@example.com",
			Password:  "SecurePass123!",
			FirstName: "Bob",
			LastName:  "Jones",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewDeleteUserUseCase(repo)
		if err := uc.Execute(ctx, DeleteUserInput{UserID: registered.User.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.users) != 0 {
			t.Errorf("expected 0 users, got %d", len(repo.users))
		}
	})

	t.Run("returns not found for a missing user", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewDeleteUserUseCase(repo)

		err := uc.Execute(ctx, DeleteUserInput{UserID: uuid.New()})
		if err == nil {
			t.Fatal("expected error for missing user")
		}
		if domainerror.KindOf(err) != domainerror.KindNotFound {
			t.Errorf("expected kind %s, got %s", domainerror.KindNotFound, domainerror.KindOf(err))
		}
	})
}
