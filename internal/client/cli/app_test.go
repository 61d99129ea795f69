package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/backprop/server/internal/cryptox"
	pb "github.com/backprop/server/internal/proto"
	"github.com/backprop/server/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

type fakeClient struct {
	addr     string
	token    string
	password string
	email    string
	err      error
	closed   bool

	lastEdit    *pb.EditUserRequest
	lastDataset *pb.CreateDatasetRequest
	lastColumns []*pb.Column
	lastProject *pb.CreateProjectRequest
	lastGet     string
}

func (f *fakeClient) Register(_ context.Context, username, email, password string) (string, error) {
	f.email, f.password = email, password
	return "token-" + username, f.err
}

func (f *fakeClient) Login(_ context.Context, email, password string) (string, error) {
	f.email, f.password = email, password
	return "token-" + email, f.err
}

func (f *fakeClient) ResetPassword(_ context.Context, email string) error {
	f.email = email
	return f.err
}

func (f *fakeClient) WhoAmI(context.Context) (*pb.WhoAmIResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pb.WhoAmIResponse{
		UserId:    "u-1",
		Username:  "alice",
		Email:     "alice@example.com",
		CreatedAt: "2024-01-01T00:00:00Z",
	}, nil
}

func (f *fakeClient) EditUser(_ context.Context, req *pb.EditUserRequest) error {
	f.lastEdit = req
	return f.err
}

func (f *fakeClient) DeleteUser(_ context.Context, email string) error {
	f.email = email
	return f.err
}

func (f *fakeClient) CreateDataset(_ context.Context, req *pb.CreateDatasetRequest) (string, error) {
	f.lastDataset = req
	return "d-1", f.err
}

func (f *fakeClient) GetDataset(_ context.Context, id string) (*pb.Dataset, error) {
	f.lastGet = id
	if f.err != nil {
		return nil, f.err
	}
	return &pb.Dataset{DatasetId: id, Name: "iris", FileType: "csv", Url: "https://example.com/iris.csv"}, nil
}

func (f *fakeClient) ListDatasets(context.Context) ([]*pb.Dataset, error) {
	return []*pb.Dataset{{DatasetId: "d-1", Name: "iris", FileType: "csv"}}, f.err
}

func (f *fakeClient) CreateColumns(_ context.Context, cols []*pb.Column) (int, error) {
	f.lastColumns = cols
	return len(cols), f.err
}

func (f *fakeClient) CreateProject(_ context.Context, req *pb.CreateProjectRequest) (string, error) {
	f.lastProject = req
	return "p-1", f.err
}

func (f *fakeClient) ListProjects(context.Context) ([]*pb.Project, error) {
	return []*pb.Project{{ProjectId: "p-1", DatasetId: "d-1", Name: "iris-mlp", BatchSize: 32, LearningRate: 0.01, Loss: "mse"}}, f.err
}

func (f *fakeClient) Ping(context.Context) error { return f.err }
func (f *fakeClient) SetToken(token string)      { f.token = token }

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

func stubClient(t *testing.T, f *fakeClient) {
	t.Helper()
	orig := newClient
	t.Cleanup(func() { newClient = orig })
	newClient = func(addr string) (userClient, error) {
		f.addr = addr
		return f, nil
	}
}

// run executes the app with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := App()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &out
	app.ErrWriter = &errOut
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run(append([]string{"authctl"}, args...))
	return out.String(), err
}

func TestApp(t *testing.T) {
	app := App()
	require.NotNil(t, app)
	assert.Equal(t, "authctl", app.Name)

	names := map[string]bool{}
	for _, cmd := range app.Commands {
		names[cmd.Name] = true
	}
	for _, name := range []string{"hash-password", "issue", "verify", "register", "login", "whoami", "edit", "delete", "reset-password", "dataset", "project", "ping"} {
		assert.True(t, names[name], "missing command %s", name)
	}
}

func TestHashPassword(t *testing.T) {
	out, err := run(t, "correct-password\n", "hash-password")
	require.NoError(t, err)

	var saltEnc, hashEnc string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		k, v, _ := strings.Cut(line, ": ")
		switch k {
		case "salt":
			saltEnc = v
		case "hash":
			hashEnc = v
		}
	}
	salt, err := auth.Decode(saltEnc)
	require.NoError(t, err)
	hash, err := auth.Decode(hashEnc)
	require.NoError(t, err)

	assert.Len(t, salt, cryptox.SaltSize)
	assert.True(t, cryptox.VerifyPassword("correct-password", salt, hash))
}

func TestIssueAndVerify(t *testing.T) {
	origNow := now
	t.Cleanup(func() { now = origNow })
	now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }

	out, err := run(t, "", "issue", "--subject", "11111111-1111-1111-1111-111111111111", "--secret", "s3")
	require.NoError(t, err)
	token := strings.TrimSpace(out)
	assert.Len(t, strings.Split(token, "."), 3)

	out, err = run(t, "", "verify", "--secret", "s3", token)
	require.NoError(t, err)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111\n", out)

	_, err = run(t, "", "verify", "--secret", "other", token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")

	now = func() time.Time { return time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC) }
	_, err = run(t, "", "verify", "--secret", "s3", token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), auth.ErrExpired.Error())
}

func TestIssue_DevelopmentFallbackFromEnv(t *testing.T) {
	t.Setenv("SECRET", "")

	out, err := run(t, "", "issue", "--subject", "u-1")
	require.NoError(t, err)

	signer := auth.NewSigner(auth.NewSecret(auth.DevelopmentSecret))
	sub, err := signer.Verify(strings.TrimSpace(out), time.Now())
	require.NoError(t, err)
	assert.Equal(t, "u-1", sub)
}

func TestVerify_ArgCount(t *testing.T) {
	_, err := run(t, "", "verify")
	require.Error(t, err)
}

func TestRegisterAndLogin(t *testing.T) {
	f := &fakeClient{}
	stubClient(t, f)

	out, err := run(t, "pw-1\n", "--server", "example:1", "register", "-u", "alice", "-e", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "token-alice\n", out)
	assert.Equal(t, "example:1", f.addr)
	assert.Equal(t, "pw-1", f.password)
	assert.True(t, f.closed)

	out, err = run(t, "pw-2\n", "login", "--email", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "token-alice@example.com\n", out)
	assert.Equal(t, "pw-2", f.password)
}

func TestWhoAmI(t *testing.T) {
	f := &fakeClient{}
	stubClient(t, f)

	out, err := run(t, "", "whoami", "--token", "tok")
	require.NoError(t, err)
	assert.Equal(t, "tok", f.token)
	assert.Contains(t, out, "alice@example.com")
	assert.Contains(t, out, "2024-01-01T00:00:00Z")
}

func TestRemoteErrors(t *testing.T) {
	f := &fakeClient{err: errors.New("user not found")}
	stubClient(t, f)

	_, err := run(t, "", "reset-password", "-e", "ghost@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user not found")

	_, err = run(t, "", "ping")
	require.Error(t, err)
}

func TestConnectError(t *testing.T) {
	orig := newClient
	t.Cleanup(func() { newClient = orig })
	newClient = func(string) (userClient, error) { return nil, errors.New("bad target") }

	_, err := run(t, "", "ping")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect")
}

func TestEdit(t *testing.T) {
	f := &fakeClient{}
	stubClient(t, f)

	out, err := run(t, "", "edit", "--token", "tok", "--username", "al", "--email", "al@example.com")
	require.NoError(t, err)
	assert.Equal(t, "account updated\n", out)
	assert.Equal(t, "tok", f.token)
	require.NotNil(t, f.lastEdit)
	assert.True(t, f.lastEdit.UsernameChanged)
	assert.Equal(t, "al", f.lastEdit.Username)
	assert.Equal(t, "al@example.com", f.lastEdit.Email)
	assert.False(t, f.lastEdit.PasswordChanged)
	assert.Empty(t, f.lastEdit.Password)
}

func TestEdit_Password(t *testing.T) {
	f := &fakeClient{}
	stubClient(t, f)

	_, err := run(t, "new-secret\n", "edit", "--token", "tok", "--password")
	require.NoError(t, err)
	require.NotNil(t, f.lastEdit)
	assert.True(t, f.lastEdit.PasswordChanged)
	assert.Equal(t, "new-secret", f.lastEdit.Password)
	assert.False(t, f.lastEdit.UsernameChanged)
}

func TestEdit_EmptyUsernameIsAChange(t *testing.T) {
	f := &fakeClient{}
	stubClient(t, f)

	_, err := run(t, "", "edit", "--token", "tok", "--username", "")
	require.NoError(t, err)
	assert.True(t, f.lastEdit.UsernameChanged)
}

func TestEdit_NothingToChange(t *testing.T) {
	f := &fakeClient{}
	stubClient(t, f)

	_, err := run(t, "", "edit", "--token", "tok")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to change")
	assert.Nil(t, f.lastEdit)
}

func TestDelete(t *testing.T) {
	f := &fakeClient{}
	stubClient(t, f)

	out, err := run(t, "", "delete", "--token", "tok", "--email", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "account deleted\n", out)
	assert.Equal(t, "tok", f.token)
	assert.Equal(t, "alice@example.com", f.email)

	f.err = errors.New("unauthorized")
	_, err = run(t, "", "delete", "--token", "tok", "--email", "bob@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")

	_, err = run(t, "", "delete", "--token", "tok")
	require.Error(t, err, "email is required")
}

func TestDatasetCommands(t *testing.T) {
	f := &fakeClient{}
	stubClient(t, f)

	out, err := run(t, "", "dataset", "create", "--token", "tok", "--name", "iris", "--file-type", "csv", "--url", "https://example.com/iris.csv")
	require.NoError(t, err)
	assert.Equal(t, "d-1\n", out)
	assert.Equal(t, "iris", f.lastDataset.Name)
	assert.Equal(t, "https://example.com/iris.csv", f.lastDataset.Url)

	out, err = run(t, "", "dataset", "get", "--token", "tok", "d-7")
	require.NoError(t, err)
	assert.Equal(t, "d-7", f.lastGet)
	assert.Contains(t, out, "file type:   csv")

	_, err = run(t, "", "dataset", "get", "--token", "tok")
	require.Error(t, err)

	out, err = run(t, "", "dataset", "list", "--token", "tok")
	require.NoError(t, err)
	assert.Equal(t, "d-1\tiris\tcsv\n", out)
}

func TestDatasetAddColumns(t *testing.T) {
	f := &fakeClient{}
	stubClient(t, f)

	out, err := run(t, "", "dataset", "add-columns", "--token", "tok", "--dataset", "d-1",
		"--column", "sepal_length:float", "--column", "id:int", "--column", "species:string", "--exclude", "id")
	require.NoError(t, err)
	assert.Equal(t, "3 columns added\n", out)

	require.Len(t, f.lastColumns, 3)
	assert.Equal(t, "sepal_length", f.lastColumns[0].Name)
	assert.True(t, f.lastColumns[0].Include)
	assert.False(t, f.lastColumns[1].Include)
	assert.Equal(t, int32(2), f.lastColumns[2].Index)
	assert.Equal(t, "d-1", f.lastColumns[2].DatasetId)

	f.lastColumns = nil
	_, err = run(t, "", "dataset", "add-columns", "--token", "tok", "--dataset", "d-1", "--column", "broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want name:type")
	assert.Nil(t, f.lastColumns)
}

func TestProjectCommands(t *testing.T) {
	f := &fakeClient{}
	stubClient(t, f)

	out, err := run(t, "", "project", "create", "--token", "tok", "--dataset", "d-1", "--name", "iris-mlp",
		"--batch-size", "64", "--learning-rate", "0.05", "--loss", "cross_entropy")
	require.NoError(t, err)
	assert.Equal(t, "p-1\n", out)
	assert.Equal(t, int32(64), f.lastProject.BatchSize)
	assert.Equal(t, 0.05, f.lastProject.LearningRate)
	assert.Equal(t, "cross_entropy", f.lastProject.Loss)

	_, err = run(t, "", "project", "create", "--token", "tok", "--dataset", "d-1", "--name", "defaults")
	require.NoError(t, err)
	assert.Equal(t, int32(32), f.lastProject.BatchSize)
	assert.Equal(t, "mse", f.lastProject.Loss)

	out, err = run(t, "", "project", "list", "--token", "tok")
	require.NoError(t, err)
	assert.Equal(t, "p-1\tiris-mlp\tdataset=d-1 batch=32 lr=0.01 loss=mse\n", out)
}
