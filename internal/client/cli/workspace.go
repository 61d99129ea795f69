package cli

import (
	"fmt"
	"strings"

	pb "github.com/backprop/server/internal/proto"
	"github.com/urfave/cli/v2"
)

func DatasetCommand() *cli.Command {
	return &cli.Command{
		Name:  "dataset",
		Usage: "Manage datasets of the current account",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Register a dataset and print its id",
				Flags: []cli.Flag{
					tokenFlag(),
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true},
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}},
					&cli.StringFlag{Name: "file-type", Usage: "source format, e.g. csv"},
					&cli.StringFlag{Name: "url", Usage: "location of the raw file"},
				},
				Action: func(c *cli.Context) error {
					return withClient(c, func(uc userClient) error {
						id, err := uc.CreateDataset(c.Context, &pb.CreateDatasetRequest{
							Name:        c.String("name"),
							Description: c.String("description"),
							FileType:    c.String("file-type"),
							Url:         c.String("url"),
						})
						if err != nil {
							return err
						}
						fmt.Fprintln(c.App.Writer, id)
						return nil
					})
				},
			},
			{
				Name:      "get",
				Usage:     "Show one dataset",
				ArgsUsage: "<dataset-id>",
				Flags:     []cli.Flag{tokenFlag()},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("get takes exactly one dataset id", 2)
					}
					return withClient(c, func(uc userClient) error {
						d, err := uc.GetDataset(c.Context, c.Args().First())
						if err != nil {
							return err
						}
						fmt.Fprintf(c.App.Writer, "id:          %s\nname:        %s\ndescription: %s\nfile type:   %s\nurl:         %s\n",
							d.GetDatasetId(), d.GetName(), d.GetDescription(), d.GetFileType(), d.GetUrl())
						return nil
					})
				},
			},
			{
				Name:  "list",
				Usage: "List datasets",
				Flags: []cli.Flag{tokenFlag()},
				Action: func(c *cli.Context) error {
					return withClient(c, func(uc userClient) error {
						list, err := uc.ListDatasets(c.Context)
						if err != nil {
							return err
						}
						for _, d := range list {
							fmt.Fprintf(c.App.Writer, "%s\t%s\t%s\n", d.GetDatasetId(), d.GetName(), d.GetFileType())
						}
						return nil
					})
				},
			},
			{
				Name:  "add-columns",
				Usage: "Describe dataset columns, in file order",
				Flags: []cli.Flag{
					tokenFlag(),
					&cli.StringFlag{Name: "dataset", Required: true},
					&cli.StringSliceFlag{Name: "column", Usage: "name:type, repeat per column", Required: true},
					&cli.StringSliceFlag{Name: "exclude", Usage: "column names that are not model inputs"},
				},
				Action: func(c *cli.Context) error {
					columns, err := parseColumns(c.String("dataset"), c.StringSlice("column"), c.StringSlice("exclude"))
					if err != nil {
						return cli.Exit(err.Error(), 2)
					}
					return withClient(c, func(uc userClient) error {
						n, err := uc.CreateColumns(c.Context, columns)
						if err != nil {
							return err
						}
						fmt.Fprintf(c.App.Writer, "%d columns added\n", n)
						return nil
					})
				},
			},
		},
	}
}

// parseColumns turns name:type definitions into columns indexed by position.
func parseColumns(datasetID string, defs, exclude []string) ([]*pb.Column, error) {
	skip := map[string]bool{}
	for _, name := range exclude {
		skip[name] = true
	}

	columns := make([]*pb.Column, 0, len(defs))
	for i, def := range defs {
		name, typ, ok := strings.Cut(def, ":")
		if !ok || name == "" || typ == "" {
			return nil, fmt.Errorf("bad column %q, want name:type", def)
		}
		columns = append(columns, &pb.Column{
			DatasetId: datasetID,
			Name:      name,
			Type:      typ,
			Include:   !skip[name],
			Index:     int32(i),
		})
	}
	return columns, nil
}

func ProjectCommand() *cli.Command {
	return &cli.Command{
		Name:  "project",
		Usage: "Manage training projects of the current account",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a project over a dataset and print its id",
				Flags: []cli.Flag{
					tokenFlag(),
					&cli.StringFlag{Name: "dataset", Required: true},
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true},
					&cli.IntFlag{Name: "batch-size", Value: 32},
					&cli.Float64Flag{Name: "learning-rate", Value: 0.001},
					&cli.StringFlag{Name: "loss", Value: "mse"},
				},
				Action: func(c *cli.Context) error {
					return withClient(c, func(uc userClient) error {
						id, err := uc.CreateProject(c.Context, &pb.CreateProjectRequest{
							DatasetId:    c.String("dataset"),
							Name:         c.String("name"),
							BatchSize:    int32(c.Int("batch-size")),
							LearningRate: c.Float64("learning-rate"),
							Loss:         c.String("loss"),
						})
						if err != nil {
							return err
						}
						fmt.Fprintln(c.App.Writer, id)
						return nil
					})
				},
			},
			{
				Name:  "list",
				Usage: "List projects",
				Flags: []cli.Flag{tokenFlag()},
				Action: func(c *cli.Context) error {
					return withClient(c, func(uc userClient) error {
						list, err := uc.ListProjects(c.Context)
						if err != nil {
							return err
						}
						for _, p := range list {
							fmt.Fprintf(c.App.Writer, "%s\t%s\tdataset=%s batch=%d lr=%g loss=%s\n",
								p.GetProjectId(), p.GetName(), p.GetDatasetId(), p.GetBatchSize(), p.GetLearningRate(), p.GetLoss())
						}
						return nil
					})
				},
			},
		},
	}
}
