// Package cli defines the authctl command-line tool: offline token and
// credential helpers plus remote account commands against the server.
package cli

import (
	"bufio"
	"context"
	"fmt"

	"github.com/backprop/server/internal/client"
	pb "github.com/backprop/server/internal/proto"
	"github.com/urfave/cli/v2"
)

// Build information, set via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

// userClient is the part of client.GRPCClient the remote commands use.
type userClient interface {
	Register(ctx context.Context, username, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ResetPassword(ctx context.Context, email string) error
	WhoAmI(ctx context.Context) (*pb.WhoAmIResponse, error)
	EditUser(ctx context.Context, req *pb.EditUserRequest) error
	DeleteUser(ctx context.Context, email string) error
	Ping(ctx context.Context) error

	CreateDataset(ctx context.Context, req *pb.CreateDatasetRequest) (string, error)
	GetDataset(ctx context.Context, datasetID string) (*pb.Dataset, error)
	ListDatasets(ctx context.Context) ([]*pb.Dataset, error)
	CreateColumns(ctx context.Context, columns []*pb.Column) (int, error)
	CreateProject(ctx context.Context, req *pb.CreateProjectRequest) (string, error)
	ListProjects(ctx context.Context) ([]*pb.Project, error)

	SetToken(token string)
	Close() error
}

// newClient is a seam for tests.
var newClient = func(addr string) (userClient, error) {
	return client.NewGRPCClient(addr)
}

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "authctl",
		Usage:   "backprop token and account tool",
		Version: fmt.Sprintf("%s (commit: %s)", Version, Commit),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			HashPasswordCommand(),
			IssueCommand(),
			VerifyCommand(),
			RegisterCommand(),
			LoginCommand(),
			WhoAmICommand(),
			EditCommand(),
			DeleteCommand(),
			ResetPasswordCommand(),
			DatasetCommand(),
			ProjectCommand(),
			PingCommand(),
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "server gRPC address",
			EnvVars: []string{"BACKPROP_SERVER"},
			Value:   "localhost:50051",
		},
	}
}

func secretFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "secret",
		Usage:   "signing secret; the development fallback is used when empty",
		EnvVars: []string{"SECRET"},
	}
}

func tokenFlag() cli.Flag {
	return &cli.StringFlag{Name: "token", Aliases: []string{"t"}, EnvVars: []string{"BACKPROP_TOKEN"}, Required: true}
}

// withClient dials the server named by --server and runs fn.
func withClient(c *cli.Context, fn func(userClient) error) error {
	uc, err := newClient(c.String("server"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("connect: %v", err), 1)
	}
	defer uc.Close()

	if c.IsSet("token") {
		uc.SetToken(c.String("token"))
	}
	if err := fn(uc); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

func reader(c *cli.Context) *bufio.Reader {
	if r, ok := c.App.Reader.(*bufio.Reader); ok {
		return r
	}
	return bufio.NewReader(c.App.Reader)
}
