package goal

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// fakeGoalRepo is an in-memory GoalRepository for use case tests.
type fakeGoalRepo struct {
	goals map[uuid.UUID]*entity.Goal
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[uuid.UUID]*entity.Goal)}
}

func (r *fakeGoalRepo) Create(_ context.Context, goal *entity.Goal) error {
	r.goals[goal.ID] = goal
	return nil
}

func (r *fakeGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	goal, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	copied := *goal
	return &copied, nil
}

func (r *fakeGoalRepo) FindByUserID(_ context.Context, userID uuid.UUID, status *entity.GoalStatus) ([]*entity.Goal, error) {
	var result []*entity.Goal
	for _, goal := range r.goals {
		if goal.UserID != userID {
			continue
		}
		if status != nil && goal.Status != *status {
			continue
		}
		copied := *goal
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeGoalRepo) Update(_ context.Context, goal *entity.Goal) error {
	if _, ok := r.goals[goal.ID]; !ok {
		return domainerror.ErrGoalNotFound
	}
	copied := *goal
	r.goals[goal.ID] = &copied
	return nil
}

func (r *fakeGoalRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.goals[id]; !ok {
		return domainerror.ErrGoalNotFound
	}
	delete(r.goals, id)
	return nil
}

func seedGoal(repo *fakeGoalRepo, target, current int64) *entity.Goal {
	goal := entity.NewGoal(
		uuid.New(),
		"Vacation fund",
		nil,
		decimal.NewFromInt(target),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	)
	goal.CurrentAmount = decimal.NewFromInt(current)
	repo.goals[goal.ID] = goal
	return goal
}

func TestUpdateGoalProgressUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts progress within the target", func(t *testing.T) {
		repo := newFakeGoalRepo()
		goal := seedGoal(repo, 1000, 0)
		uc := NewUpdateGoalProgressUseCase(repo)

		output, err := uc.Execute(ctx, UpdateGoalProgressInput{
			GoalID:        goal.ID,
			CurrentAmount: decimal.NewFromInt(500),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Goal.CurrentAmount.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected current amount 500, got %s", output.Goal.CurrentAmount)
		}
	})

	t.Run("accepts progress equal to the target", func(t *testing.T) {
		repo := newFakeGoalRepo()
		goal := seedGoal(repo, 1000, 0)
		uc := NewUpdateGoalProgressUseCase(repo)

		output, err := uc.Execute(ctx, UpdateGoalProgressInput{
			GoalID:        goal.ID,
			CurrentAmount: decimal.NewFromInt(1000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Goal.CurrentAmount.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected current amount 1000, got %s", output.Goal.CurrentAmount)
		}
	})

	t.Run("rejects progress above the target", func(t *testing.T) {
		repo := newFakeGoalRepo()
		goal := seedGoal(repo, 1000, 0)
		uc := NewUpdateGoalProgressUseCase(repo)

		_, err := uc.Execute(ctx, UpdateGoalProgressInput{
			GoalID:        goal.ID,
			CurrentAmount: decimal.NewFromInt(1500),
		})
		if err == nil {
			t.Fatal("expected error for progress above target")
		}
		if domainerror.KindOf(err) != domainerror.KindInvalid {
			t.Errorf("expected kind %s, got %s", domainerror.KindInvalid, domainerror.KindOf(err))
		}
	})

	t.Run("rejects negative progress", func(t *testing.T) {
		repo := newFakeGoalRepo()
		goal := seedGoal(repo, 1000, 0)
		uc := NewUpdateGoalProgressUseCase(repo)

		_, err := uc.Execute(ctx, UpdateGoalProgressInput{
			GoalID:        goal.ID,
			CurrentAmount: decimal.NewFromInt(-1),
		})
		if err == nil {
			t.Fatal("expected error for negative progress")
		}
		if domainerror.KindOf(err) != domainerror.KindInvalid {
			t.Errorf("expected kind %s, got %s", domainerror.KindInvalid, domainerror.KindOf(err))
		}
	})

	t.Run("never changes the status", func(t *testing.T) {
		repo := newFakeGoalRepo()
		goal := seedGoal(repo, 1000, 0)
		uc := NewUpdateGoalProgressUseCase(repo)

		output, err := uc.Execute(ctx, UpdateGoalProgressInput{
			GoalID:        goal.ID,
			CurrentAmount: decimal.NewFromInt(1000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.Status != entity.GoalStatusInProgress {
			t.Errorf("expected status to stay %s, got %s", entity.GoalStatusInProgress, output.Goal.Status)
		}
	})

	t.Run("returns not found for a missing goal", func(t *testing.T) {
		repo := newFakeGoalRepo()
		uc := NewUpdateGoalProgressUseCase(repo)

		_, err := uc.Execute(ctx, UpdateGoalProgressInput{
			GoalID:        uuid.New(),
			CurrentAmount: decimal.NewFromInt(10),
		})
		if err == nil {
			t.Fatal("expected error for missing goal")
		}
		if domainerror.KindOf(err) != domainerror.KindNotFound {
			t.Errorf("expected kind %s, got %s", domainerror.KindNotFound, domainerror.KindOf(err))
		}
	})
}

func TestUpdateGoalUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("changes status explicitly", func(t *testing.T) {
		repo := newFakeGoalRepo()
		goal := seedGoal(repo, 1000, 1000)
		uc := NewUpdateGoalUseCase(repo)

		achieved := entity.GoalStatusAchieved
		output, err := uc.Execute(ctx, UpdateGoalInput{
			GoalID: goal.ID,
			Status: &achieved,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.Status != entity.GoalStatusAchieved {
			t.Errorf("expected status %s, got %s", entity.GoalStatusAchieved, output.Goal.Status)
		}
	})

	t.Run("rejects reopening a terminal goal", func(t *testing.T) {
		repo := newFakeGoalRepo()
		goal := seedGoal(repo, 1000, 1000)
		goal.Status = entity.GoalStatusAchieved
		uc := NewUpdateGoalUseCase(repo)

		inProgress := entity.GoalStatusInProgress
		_, err := uc.Execute(ctx, UpdateGoalInput{
			GoalID: goal.ID,
			Status: &inProgress,
		})
		if err == nil {
			t.Fatal("expected error for reopening an achieved goal")
		}
		if domainerror.KindOf(err) != domainerror.KindInvalid {
			t.Errorf("expected kind %s, got %s", domainerror.KindInvalid, domainerror.KindOf(err))
		}
	})

	t.Run("accepts restating the current terminal status", func(t *testing.T) {
		repo := newFakeGoalRepo()
		goal := seedGoal(repo, 1000, 0)
		goal.Status = entity.GoalStatusAbandoned
		uc := NewUpdateGoalUseCase(repo)

		abandoned := entity.GoalStatusAbandoned
		output, err := uc.Execute(ctx, UpdateGoalInput{
			GoalID: goal.ID,
			Status: &abandoned,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.Status != entity.GoalStatusAbandoned {
			t.Errorf("expected status %s, got %s", entity.GoalStatusAbandoned, output.Goal.Status)
		}
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		repo := newFakeGoalRepo()
		goal := seedGoal(repo, 1000, 0)
		uc := NewUpdateGoalUseCase(repo)

		bogus := entity.GoalStatus("paused")
		_, err := uc.Execute(ctx, UpdateGoalInput{
			GoalID: goal.ID,
			Status: &bogus,
		})
		if err == nil {
			t.Fatal("expected error for unknown status")
		}
		if domainerror.KindOf(err) != domainerror.KindInvalid {
			t.Errorf("expected kind %s, got %s", domainerror.KindInvalid, domainerror.KindOf(err))
		}
	})

	t.Run("rejects a target below the current amount", func(t *testing.T) {
		repo := newFakeGoalRepo()
		goal := seedGoal(repo, 1000, 800)
		uc := NewUpdateGoalUseCase(repo)

		target := decimal.NewFromInt(500)
		_, err := uc.Execute(ctx, UpdateGoalInput{
			GoalID:       goal.ID,
			TargetAmount: &target,
		})
		if err == nil {
			t.Fatal("expected error for target below current amount")
		}
		if domainerror.KindOf(err) != domainerror.KindInvalid {
			t.Errorf("expected kind %s, got %s", domainerror.KindInvalid, domainerror.KindOf(err))
		}
	})

	t.Run("rejects a non-positive target", func(t *testing.T) {
		repo := newFakeGoalRepo()
		goal := seedGoal(repo, 1000, 0)
		uc := NewUpdateGoalUseCase(repo)

		target := decimal.Zero
		_, err := uc.Execute(ctx, UpdateGoalInput{
			GoalID:       goal.ID,
			TargetAmount: &target,
		})
		if err == nil {
			t.Fatal("expected error for zero target")
		}
	})

	t.Run("rejects an end date before the start date", func(t *testing.T) {
		repo := newFakeGoalRepo()
		goal := seedGoal(repo, 1000, 0)
		uc := NewUpdateGoalUseCase(repo)

		end := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		_, err := uc.Execute(ctx, UpdateGoalInput{
			GoalID:  goal.ID,
			EndDate: &end,
		})
		if err == nil {
			t.Fatal("expected error for end date before start date")
		}
		if domainerror.KindOf(err) != domainerror.KindInvalid {
			t.Errorf("expected kind %s, got %s", domainerror.KindInvalid, domainerror.KindOf(err))
		}
	})
}
