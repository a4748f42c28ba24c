package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/domain/entity"
	domainerrors "tasklist/internal/domain/errors"
	"tasklist/internal/errors"
	"tasklist/internal/usecase"
)

func newTaskFixture(store *memStore) usecase.TaskUsecase {
	return NewTaskService(TaskServiceParams{
		TaskRepo: &fakeTaskRepo{store: store},
		UserRepo: &fakeUserRepo{store: store},
		Logger:   newDiscardLogger(),
	})
}

func seedUser(store *memStore, email string) {
	store.users[email] = &entity.User{Email: email, PasswordHash: "digest:x"}
}

func TestTaskService_CreateTask(t *testing.T) {
	t.Run("persists a task for an existing owner", func(t *testing.T) {
		store := newMemStore()
		seedUser(store, "alice@example.com")
		srv := newTaskFixture(store)

		out, err := srv.CreateTask(context.Background(), &usecase.CreateTaskInput{
			UserEmail: "alice@example.com",
			Title:     "water the plants",
		})
		require.NoError(t, err)
		assert.NotZero(t, out.ID)
		assert.Equal(t, "alice@example.com", out.UserEmail)
		assert.Equal(t, "water the plants", out.Title)
		assert.False(t, out.Completed)
	})

	t.Run("rejects a task whose owner does not exist", func(t *testing.T) {
		store := newMemStore()
		srv := newTaskFixture(store)

		_, err := srv.CreateTask(context.Background(), &usecase.CreateTaskInput{
			UserEmail: "ghost@example.com",
			Title:     "never stored",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrTaskOwnerNotFound))
		assert.Empty(t, store.tasks)
	})
}

func TestTaskService_ListAndGet(t *testing.T) {
	store := newMemStore()
	seedUser(store, "alice@example.com")
	srv := newTaskFixture(store)

	first, err := srv.CreateTask(context.Background(), &usecase.CreateTaskInput{
		UserEmail: "alice@example.com",
		Title:     "first",
	})
	require.NoError(t, err)
	second, err := srv.CreateTask(context.Background(), &usecase.CreateTaskInput{
		UserEmail: "alice@example.com",
		Title:     "second",
		Completed: true,
	})
	require.NoError(t, err)

	tasks, err := srv.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, first.ID, tasks[0].ID)
	assert.Equal(t, second.ID, tasks[1].ID)

	got, err := srv.GetTask(context.Background(), second.ID)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Title)
	assert.True(t, got.Completed)

	_, err = srv.GetTask(context.Background(), 9999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))
}

func TestTaskService_UpdateTask(t *testing.T) {
	t.Run("overwrites every mutable field", func(t *testing.T) {
		store := newMemStore()
		seedUser(store, "alice@example.com")
		srv := newTaskFixture(store)

		created, err := srv.CreateTask(context.Background(), &usecase.CreateTaskInput{
			UserEmail: "alice@example.com",
			Title:     "draft",
		})
		require.NoError(t, err)

		err = srv.UpdateTask(context.Background(), &usecase.UpdateTaskInput{
			ID:        created.ID,
			UserEmail: "alice@example.com",
			Title:     "final",
			Completed: true,
		})
		require.NoError(t, err)

		got, err := srv.GetTask(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, "final", got.Title)
		assert.True(t, got.Completed)
	})

	t.Run("reports a missing task", func(t *testing.T) {
		store := newMemStore()
		srv := newTaskFixture(store)

		err := srv.UpdateTask(context.Background(), &usecase.UpdateTaskInput{ID: 42, Title: "nope"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	store := newMemStore()
	seedUser(store, "alice@example.com")
	srv := newTaskFixture(store)

	created, err := srv.CreateTask(context.Background(), &usecase.CreateTaskInput{
		UserEmail: "alice@example.com",
		Title:     "short-lived",
	})
	require.NoError(t, err)

	require.NoError(t, srv.DeleteTask(context.Background(), created.ID))

	err = srv.DeleteTask(context.Background(), created.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))
}
