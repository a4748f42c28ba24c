package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"

	"tasklist/internal/domain/entity"
	"tasklist/internal/domain/repository"
	"tasklist/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memStore is an in-memory stand-in for the persistence layer. It backs the
// fake repositories handed out by fakeFactory so a test sees one consistent
// data set across repositories.
type memStore struct {
	users       map[string]*entity.User
	assignments map[string][]entity.RoleAssignment
	roles       map[uint]entity.Role
	tasks       map[uint]*entity.Task
	nextTaskID  uint

	failUserCreate error // forced error for the next user create
}

func newMemStore() *memStore {
	store := &memStore{
		users:       make(map[string]*entity.User),
		assignments: make(map[string][]entity.RoleAssignment),
		roles:       make(map[uint]entity.Role),
		tasks:       make(map[uint]*entity.Task),
		nextTaskID:  1,
	}
	for _, role := range entity.SeededRoles() {
		store.roles[role.ID] = role
	}

	return store
}

func (s *memStore) rolesOf(email string) []entity.Role {
	assignments := append([]entity.RoleAssignment(nil), s.assignments[email]...)
	sort.Slice(assignments, func(i, j int) bool { return assignments[i].RoleID < assignments[j].RoleID })

	roles := make([]entity.Role, 0, len(assignments))
	for _, assignment := range assignments {
		if role, ok := s.roles[assignment.RoleID]; ok {
			roles = append(roles, role)
		}
	}

	return roles
}

// --- fake repositories ---

type fakeUserRepo struct{ store *memStore }

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	user, ok := r.store.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	copied := *user
	copied.Roles = r.store.rolesOf(email)

	return &copied, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.store.users[email]

	return ok, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User, assignments []entity.RoleAssignment) error {
	if err := r.store.failUserCreate; err != nil {
		r.store.failUserCreate = nil

		return err
	}

	copied := *user
	r.store.users[user.Email] = &copied
	r.store.assignments[user.Email] = append([]entity.RoleAssignment(nil), assignments...)

	return nil
}

func (r *fakeUserRepo) ListRoles(_ context.Context, email string) ([]entity.Role, error) {
	return r.store.rolesOf(email), nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	emails := make([]string, 0, len(r.store.users))
	for email := range r.store.users {
		emails = append(emails, email)
	}
	sort.Strings(emails)

	users := make([]*entity.User, 0, len(emails))
	for _, email := range emails {
		user, err := r.FindByEmail(context.Background(), email)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

type fakeRoleRepo struct{ store *memStore }

func (r *fakeRoleRepo) FindByIDs(_ context.Context, ids []uint) ([]entity.Role, error) {
	sorted := append([]uint(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	roles := make([]entity.Role, 0, len(sorted))
	for _, id := range sorted {
		if role, ok := r.store.roles[id]; ok {
			roles = append(roles, role)
		}
	}

	return roles, nil
}

type fakeTaskRepo struct{ store *memStore }

func (r *fakeTaskRepo) List(_ context.Context) ([]*entity.Task, error) {
	ids := make([]uint, 0, len(r.store.tasks))
	for id := range r.store.tasks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	tasks := make([]*entity.Task, 0, len(ids))
	for _, id := range ids {
		copied := *r.store.tasks[id]
		tasks = append(tasks, &copied)
	}

	return tasks, nil
}

func (r *fakeTaskRepo) FindByID(_ context.Context, id uint) (*entity.Task, error) {
	task, ok := r.store.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}

	copied := *task

	return &copied, nil
}

func (r *fakeTaskRepo) Create(_ context.Context, task *entity.Task) error {
	task.ID = r.store.nextTaskID
	r.store.nextTaskID++

	copied := *task
	r.store.tasks[task.ID] = &copied

	return nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *entity.Task) error {
	if _, ok := r.store.tasks[task.ID]; !ok {
		return repository.ErrTaskNotFound
	}

	copied := *task
	r.store.tasks[task.ID] = &copied

	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.store.tasks[id]; !ok {
		return repository.ErrTaskNotFound
	}
	delete(r.store.tasks, id)

	return nil
}

// --- fake transaction manager ---

type fakeFactory struct{ store *memStore }

func (f *fakeFactory) UserRepo() repository.UserRepository { return &fakeUserRepo{store: f.store} }
func (f *fakeFactory) RoleRepo() repository.RoleRepository { return &fakeRoleRepo{store: f.store} }
func (f *fakeFactory) TaskRepo() repository.TaskRepository { return &fakeTaskRepo{store: f.store} }

// fakeTxManager runs the callback against the shared store without real
// transaction semantics; the services under test never rely on rollback,
// only on error propagation.
type fakeTxManager struct{ store *memStore }

func (tm *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(&fakeFactory{store: tm.store})
}

// --- stub domain services ---

// stubHasher prefixes instead of hashing so tests can assert digests flow
// through untouched.
type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "digest:" + password, nil }

func (stubHasher) Check(password, digest string) bool { return "digest:"+password == digest }

// stubTokenService records the last issuance request.
type stubTokenService struct {
	lastSubject string
	lastRoles   []string
	issued      int
}

func (s *stubTokenService) Generate(email string, roles []string) (string, error) {
	s.lastSubject = email
	s.lastRoles = append([]string(nil), roles...)
	s.issued++

	return "signed-token", nil
}

func (s *stubTokenService) Validate(string) (*service.Claims, error) {
	panic("not used in use case tests")
}
