package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/backprop/server/internal/common"
	"github.com/backprop/server/internal/cryptox"
	"github.com/backprop/server/internal/dbx"
	"github.com/backprop/server/internal/logging"
	"github.com/backprop/server/internal/server/auth"
	"github.com/backprop/server/internal/server/metrics"
	"github.com/backprop/server/internal/server/models"
	datasetsrepo "github.com/backprop/server/internal/server/repositories/datasets"
	projectsrepo "github.com/backprop/server/internal/server/repositories/projects"
	usersrepo "github.com/backprop/server/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errBoom  = errors.New("boom")
	fixedNow = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
)

// --- fakes ---

type fakeUsersRepo struct {
	mu    sync.Mutex
	byID  map[string]*models.User
	err   error // returned by every call when set
	calls []string
}

func newFakeUsersRepo(users ...*models.User) *fakeUsersRepo {
	f := &fakeUsersRepo{byID: map[string]*models.User{}}
	for _, u := range users {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsersRepo) record(call string) error {
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("Create"); err != nil {
		return nil, err
	}
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	u.CreatedAt = fixedNow
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetByEmail"); err != nil {
		return nil, err
	}
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetByID"); err != nil {
		return nil, err
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) update(call, id string, apply func(u *models.User) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(call); err != nil {
		return err
	}
	u, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	return apply(u)
}

func (f *fakeUsersRepo) UpdateUsername(ctx context.Context, id, username string) error {
	return f.update("UpdateUsername", id, func(u *models.User) error {
		u.UserName = username
		return nil
	})
}

func (f *fakeUsersRepo) UpdateEmail(ctx context.Context, id, email string) error {
	return f.update("UpdateEmail", id, func(u *models.User) error {
		for _, other := range f.byID {
			if other.ID != id && other.Email == email {
				return common.ErrorAlreadyExists
			}
		}
		u.Email = email
		return nil
	})
}

func (f *fakeUsersRepo) UpdatePassword(ctx context.Context, id string, salt, hash []byte) error {
	return f.update("UpdatePassword", id, func(u *models.User) error {
		u.Salt, u.PasswordHash = salt, hash
		return nil
	})
}

func (f *fakeUsersRepo) Delete(ctx context.Context, id string) error {
	return f.update("Delete", id, func(u *models.User) error {
		delete(f.byID, id)
		return nil
	})
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	d *fakeDatasetsRepo
	p *fakeProjectsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) Datasets(db dbx.DBTX) datasetsrepo.Repository { return m.d }
func (m *fakeRepoManager) Projects(db dbx.DBTX) projectsrepo.Repository { return m.p }

type fakeMailer struct {
	to, subject, body string
	err               error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	f.to, f.subject, f.body = to, subject, body
	return f.err
}

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fixture struct {
	svc     *UserService
	repo    *fakeUsersRepo
	mailer  *fakeMailer
	metrics *metrics.Metrics
	signer  *auth.Signer
	mock    sqlmock.Sqlmock
}

func newFixture(t *testing.T, users ...*models.User) *fixture {
	t.Helper()
	db, mock := newSQLMockDB(t)
	f := &fixture{
		repo:    newFakeUsersRepo(users...),
		mailer:  &fakeMailer{},
		metrics: metrics.New(),
		signer:  auth.NewSigner(auth.NewSecret("test-secret")),
		mock:    mock,
	}
	f.svc = NewUserService(db, &fakeRepoManager{u: f.repo}, f.signer, f.mailer, f.metrics, logging.Nop())
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

func storedUser(t *testing.T, id, email, password string) *models.User {
	t.Helper()
	salt := make([]byte, cryptox.SaltSize)
	copy(salt, id)
	return &models.User{
		ID:           id,
		UserName:     "name-" + id,
		Email:        email,
		Salt:         salt,
		PasswordHash: cryptox.DeriveKey(password, salt),
	}
}

func counter(t *testing.T, m *metrics.Metrics, name, result string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			if result == "" {
				return metric.GetCounter().GetValue()
			}
			for _, lp := range metric.GetLabel() {
				if lp.GetName() == "result" && lp.GetValue() == result {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

// --- tests ---

func TestRegister_IssuesTokenForNewUser(t *testing.T) {
	f := newFixture(t)

	token, err := f.svc.Register(context.Background(), "alice", "alice@example.com", "correct-password")
	require.NoError(t, err)

	sub, err := f.signer.Verify(token, fixedNow)
	require.NoError(t, err)

	stored, err := f.repo.GetByID(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, "alice", stored.UserName)
	assert.Len(t, stored.Salt, cryptox.SaltSize)
	assert.Len(t, stored.PasswordHash, cryptox.KeySize)
	assert.True(t, cryptox.VerifyPassword("correct-password", stored.Salt, stored.PasswordHash))
	assert.Equal(t, 1.0, counter(t, f.metrics, "backprop_tokens_issued_total", ""))
}

func TestRegister_Errors(t *testing.T) {
	existing := storedUser(t, "u-1", "taken@example.com", "pw")

	tests := []struct {
		name                      string
		username, email, password string
		repoErr                   error
		want                      error
	}{
		{name: "blank username", username: " ", email: "a@b", password: "pw", want: common.ErrorValidation},
		{name: "blank email", username: "a", email: "", password: "pw", want: common.ErrorValidation},
		{name: "empty password", username: "a", email: "a@b", password: "", want: common.ErrorValidation},
		{name: "email taken", username: "a", email: "taken@example.com", password: "pw", want: common.ErrorAlreadyExists},
		{name: "storage failure", username: "a", email: "a@b", password: "pw", repoErr: errBoom, want: common.ErrorInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, existing)
			f.repo.err = tt.repoErr

			token, err := f.svc.Register(context.Background(), tt.username, tt.email, tt.password)
			require.ErrorIs(t, err, tt.want)
			assert.Empty(t, token)
		})
	}
}

func TestLogin(t *testing.T) {
	user := storedUser(t, "11111111-1111-1111-1111-111111111111", "alice@example.com", "correct-password")

	t.Run("success", func(t *testing.T) {
		f := newFixture(t, user)

		token, err := f.svc.Login(context.Background(), "alice@example.com", "correct-password")
		require.NoError(t, err)

		sub, err := f.signer.Verify(token, fixedNow)
		require.NoError(t, err)
		assert.Equal(t, user.ID, sub)
		assert.Equal(t, 1.0, counter(t, f.metrics, "backprop_logins_total", metrics.ResultOK))
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newFixture(t, user)

		_, err := f.svc.Login(context.Background(), "alice@example.com", "Correct-password")
		require.ErrorIs(t, err, common.ErrWrongPassword)
		assert.Equal(t, 1.0, counter(t, f.metrics, "backprop_logins_total", metrics.ResultWrongPassword))
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newFixture(t, user)

		_, err := f.svc.Login(context.Background(), "ghost@example.com", "correct-password")
		require.ErrorIs(t, err, common.ErrUserNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newFixture(t, user)
		f.repo.err = errBoom

		_, err := f.svc.Login(context.Background(), "alice@example.com", "correct-password")
		require.ErrorIs(t, err, common.ErrorInternal)
	})
}

func TestAuthenticate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	token, err := f.signer.Issue("u-1", fixedNow)
	require.NoError(t, err)

	sub, err := f.svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", sub)

	_, err = f.svc.Authenticate(ctx, "not-a-token")
	require.ErrorIs(t, err, common.ErrInvalidToken)

	other, err := auth.NewSigner(auth.NewSecret("other-secret")).Issue("u-1", fixedNow)
	require.NoError(t, err)
	_, err = f.svc.Authenticate(ctx, other)
	require.ErrorIs(t, err, common.ErrInvalidToken)

	f.svc.now = func() time.Time { return fixedNow.Add(auth.TokenValidity) }
	_, err = f.svc.Authenticate(ctx, token)
	require.ErrorIs(t, err, common.ErrTokenExpired)

	assert.Equal(t, 1.0, counter(t, f.metrics, "backprop_token_verifications_total", metrics.ResultOK))
	assert.Equal(t, 1.0, counter(t, f.metrics, "backprop_token_verifications_total", metrics.ResultMalformed))
	assert.Equal(t, 1.0, counter(t, f.metrics, "backprop_token_verifications_total", metrics.ResultBadSignature))
	assert.Equal(t, 1.0, counter(t, f.metrics, "backprop_token_verifications_total", metrics.ResultExpired))
}

func TestGet(t *testing.T) {
	user := storedUser(t, "u-1", "alice@example.com", "pw")
	f := newFixture(t, user)

	got, err := f.svc.Get(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)

	_, err = f.svc.Get(context.Background(), "u-2")
	require.ErrorIs(t, err, common.ErrUserNotFound)

	f.repo.err = errBoom
	_, err = f.svc.Get(context.Background(), "u-1")
	require.ErrorIs(t, err, common.ErrorInternal)
}

func TestEdit_AllFieldsInOneTransaction(t *testing.T) {
	user := storedUser(t, "u-1", "alice@example.com", "old-password")
	f := newFixture(t, user)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	err := f.svc.Edit(context.Background(), "u-1", EditUser{
		UsernameChanged: true,
		Username:        "alice2",
		PasswordChanged: true,
		Password:        "new-password",
		Email:           "alice2@example.com",
	})
	require.NoError(t, err)
	require.NoError(t, f.mock.ExpectationsWereMet())

	got, _ := f.repo.GetByID(context.Background(), "u-1")
	assert.Equal(t, "alice2", got.UserName)
	assert.Equal(t, "alice2@example.com", got.Email)
	assert.True(t, cryptox.VerifyPassword("new-password", got.Salt, got.PasswordHash))
	assert.False(t, cryptox.VerifyPassword("old-password", got.Salt, got.PasswordHash))
}

func TestEdit_UnchangedFlagsAreIgnored(t *testing.T) {
	user := storedUser(t, "u-1", "alice@example.com", "pw")
	f := newFixture(t, user)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	err := f.svc.Edit(context.Background(), "u-1", EditUser{Username: "ignored", Password: "ignored"})
	require.NoError(t, err)

	got, _ := f.repo.GetByID(context.Background(), "u-1")
	assert.Equal(t, "name-u-1", got.UserName)
	assert.True(t, cryptox.VerifyPassword("pw", got.Salt, got.PasswordHash))
}

func TestEdit_Errors(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		f := newFixture(t)
		err := f.svc.Edit(context.Background(), "u-1", EditUser{UsernameChanged: true})
		require.ErrorIs(t, err, common.ErrorValidation)
		err = f.svc.Edit(context.Background(), "u-1", EditUser{PasswordChanged: true})
		require.ErrorIs(t, err, common.ErrorValidation)
	})

	t.Run("email taken rolls back", func(t *testing.T) {
		f := newFixture(t,
			storedUser(t, "u-1", "alice@example.com", "pw"),
			storedUser(t, "u-2", "bob@example.com", "pw"))
		f.mock.ExpectBegin()
		f.mock.ExpectRollback()

		err := f.svc.Edit(context.Background(), "u-1", EditUser{Email: "bob@example.com"})
		require.ErrorIs(t, err, common.ErrorAlreadyExists)
		require.NoError(t, f.mock.ExpectationsWereMet())
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)
		f.mock.ExpectBegin()
		f.mock.ExpectRollback()

		err := f.svc.Edit(context.Background(), "ghost", EditUser{UsernameChanged: true, Username: "x"})
		require.ErrorIs(t, err, common.ErrUserNotFound)
	})
}

func TestResetPassword(t *testing.T) {
	user := storedUser(t, "u-1", "alice@example.com", "old-password")
	f := newFixture(t, user)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	require.NoError(t, f.svc.ResetPassword(context.Background(), "alice@example.com"))
	require.NoError(t, f.mock.ExpectationsWereMet())

	assert.Equal(t, "alice@example.com", f.mailer.to)
	assert.Equal(t, resetSubject, f.mailer.subject)

	idx := strings.Index(f.mailer.body, "password is: ")
	require.GreaterOrEqual(t, idx, 0)
	password := strings.Fields(f.mailer.body[idx+len("password is: "):])[0]
	assert.Len(t, password, common.TemporaryPasswordSize*2)

	got, _ := f.repo.GetByID(context.Background(), "u-1")
	assert.True(t, cryptox.VerifyPassword(password, got.Salt, got.PasswordHash))
	assert.False(t, cryptox.VerifyPassword("old-password", got.Salt, got.PasswordHash))
}

func TestResetPassword_Errors(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		f := newFixture(t)
		err := f.svc.ResetPassword(context.Background(), "ghost@example.com")
		require.ErrorIs(t, err, common.ErrUserNotFound)
		assert.Empty(t, f.mailer.to)
	})

	t.Run("mail failure after commit", func(t *testing.T) {
		f := newFixture(t, storedUser(t, "u-1", "alice@example.com", "pw"))
		f.mailer.err = errBoom
		f.mock.ExpectBegin()
		f.mock.ExpectCommit()

		err := f.svc.ResetPassword(context.Background(), "alice@example.com")
		require.ErrorIs(t, err, common.ErrorInternal)
		require.NoError(t, f.mock.ExpectationsWereMet())

		got, _ := f.repo.GetByID(context.Background(), "u-1")
		assert.False(t, cryptox.VerifyPassword("pw", got.Salt, got.PasswordHash))
	})

	t.Run("commit failure sends nothing", func(t *testing.T) {
		f := newFixture(t, storedUser(t, "u-1", "alice@example.com", "pw"))
		f.mock.ExpectBegin()
		f.mock.ExpectCommit().WillReturnError(errBoom)

		err := f.svc.ResetPassword(context.Background(), "alice@example.com")
		require.ErrorIs(t, err, common.ErrorInternal)
		require.NoError(t, f.mock.ExpectationsWereMet())
		assert.Empty(t, f.mailer.to)
	})
}

func TestDelete(t *testing.T) {
	t.Run("matching email", func(t *testing.T) {
		f := newFixture(t, storedUser(t, "u-1", "alice@example.com", "pw"))

		require.NoError(t, f.svc.Delete(context.Background(), "u-1", "Alice@Example.com"))
		_, err := f.repo.GetByID(context.Background(), "u-1")
		require.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("other email", func(t *testing.T) {
		f := newFixture(t, storedUser(t, "u-1", "alice@example.com", "pw"))

		err := f.svc.Delete(context.Background(), "u-1", "bob@example.com")
		require.ErrorIs(t, err, common.ErrorUnauthorized)
		assert.NotContains(t, f.repo.calls, "Delete")
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Delete(context.Background(), "ghost", "a@b")
		require.ErrorIs(t, err, common.ErrUserNotFound)
	})
}
