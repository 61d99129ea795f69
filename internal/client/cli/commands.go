package cli

import (
	"fmt"
	"time"

	"github.com/backprop/server/internal/client/prompt"
	"github.com/backprop/server/internal/common"
	"github.com/backprop/server/internal/cryptox"
	pb "github.com/backprop/server/internal/proto"
	"github.com/backprop/server/internal/server/auth"
	"github.com/urfave/cli/v2"
)

// now is a seam for tests.
var now = time.Now

func readPassword(c *cli.Context) (string, error) {
	pw, err := prompt.Password(reader(c), "Password", c.App.ErrWriter)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// HashPasswordCommand prints a fresh salt and the credential hash of a
// prompted password, both URL-safe base64.
func HashPasswordCommand() *cli.Command {
	return &cli.Command{
		Name:  "hash-password",
		Usage: "Derive a salt and credential hash for a password",
		Action: func(c *cli.Context) error {
			password, err := readPassword(c)
			if err != nil {
				return cli.Exit(fmt.Sprintf("read password: %v", err), 1)
			}
			salt, err := cryptox.GenerateSalt()
			if err != nil {
				return cli.Exit(fmt.Sprintf("generate salt: %v", err), 1)
			}
			hash := cryptox.DeriveKey(password, salt)

			fmt.Fprintf(c.App.Writer, "salt: %s\nhash: %s\n", auth.Encode(salt), auth.Encode(hash))
			return nil
		},
	}
}

func IssueCommand() *cli.Command {
	return &cli.Command{
		Name:  "issue",
		Usage: "Issue a token offline",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "subject", Usage: "token subject (user id)", Required: true},
			secretFlag(),
		},
		Action: func(c *cli.Context) error {
			signer := auth.NewSigner(auth.NewSecret(c.String("secret")))
			token, err := signer.Issue(c.String("subject"), now())
			if err != nil {
				return cli.Exit(fmt.Sprintf("issue: %v", err), 1)
			}
			fmt.Fprintln(c.App.Writer, token)
			return nil
		},
	}
}

func VerifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "Verify a token offline and print its subject",
		ArgsUsage: "<token>",
		Flags:     []cli.Flag{secretFlag()},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("verify takes exactly one token", 2)
			}
			signer := auth.NewSigner(auth.NewSecret(c.String("secret")))
			subject, err := signer.Verify(c.Args().First(), now())
			if err != nil {
				return cli.Exit(fmt.Sprintf("invalid token: %v", err), 1)
			}
			fmt.Fprintln(c.App.Writer, subject)
			return nil
		},
	}
}

func RegisterCommand() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "Create an account and print its token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
			&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Required: true},
		},
		Action: func(c *cli.Context) error {
			password, err := readPassword(c)
			if err != nil {
				return cli.Exit(fmt.Sprintf("read password: %v", err), 1)
			}
			return withClient(c, func(uc userClient) error {
				token, err := uc.Register(c.Context, c.String("username"), c.String("email"), password)
				if err != nil {
					return err
				}
				fmt.Fprintln(c.App.Writer, token)
				return nil
			})
		},
	}
}

func LoginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Log in and print a token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Required: true},
		},
		Action: func(c *cli.Context) error {
			password, err := readPassword(c)
			if err != nil {
				return cli.Exit(fmt.Sprintf("read password: %v", err), 1)
			}
			return withClient(c, func(uc userClient) error {
				token, err := uc.Login(c.Context, c.String("email"), password)
				if err != nil {
					return err
				}
				fmt.Fprintln(c.App.Writer, token)
				return nil
			})
		},
	}
}

func WhoAmICommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "Show the account a token belongs to",
		Flags: []cli.Flag{tokenFlag()},
		Action: func(c *cli.Context) error {
			return withClient(c, func(uc userClient) error {
				who, err := uc.WhoAmI(c.Context)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.App.Writer, "id:       %s\nusername: %s\nemail:    %s\ncreated:  %s\n",
					who.UserId, who.Username, who.Email, who.CreatedAt)
				return nil
			})
		},
	}
}

// EditCommand changes the profile of the token's account. Only the given
// fields change; --password prompts for the new password.
func EditCommand() *cli.Command {
	return &cli.Command{
		Name:  "edit",
		Usage: "Change username, email or password of the current account",
		Flags: []cli.Flag{
			tokenFlag(),
			&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Usage: "new username"},
			&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Usage: "new email"},
			&cli.BoolFlag{Name: "password", Usage: "prompt for a new password"},
		},
		Action: func(c *cli.Context) error {
			req := &pb.EditUserRequest{
				Email:           c.String("email"),
				UsernameChanged: c.IsSet("username"),
				Username:        c.String("username"),
				PasswordChanged: c.Bool("password"),
			}
			if !req.UsernameChanged && !req.PasswordChanged && req.Email == "" {
				return cli.Exit("nothing to change: pass --username, --email or --password", 2)
			}
			if req.PasswordChanged {
				password, err := readPassword(c)
				if err != nil {
					return cli.Exit(fmt.Sprintf("read password: %v", err), 1)
				}
				req.Password = password
			}
			return withClient(c, func(uc userClient) error {
				if err := uc.EditUser(c.Context, req); err != nil {
					return err
				}
				fmt.Fprintln(c.App.Writer, "account updated")
				return nil
			})
		},
	}
}

func DeleteCommand() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Delete the current account; --email must repeat its address",
		Flags: []cli.Flag{
			tokenFlag(),
			&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Required: true},
		},
		Action: func(c *cli.Context) error {
			return withClient(c, func(uc userClient) error {
				if err := uc.DeleteUser(c.Context, c.String("email")); err != nil {
					return err
				}
				fmt.Fprintln(c.App.Writer, "account deleted")
				return nil
			})
		},
	}
}

func ResetPasswordCommand() *cli.Command {
	return &cli.Command{
		Name:  "reset-password",
		Usage: "Mail a new password to an account",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Required: true},
		},
		Action: func(c *cli.Context) error {
			return withClient(c, func(uc userClient) error {
				if err := uc.ResetPassword(c.Context, c.String("email")); err != nil {
					return err
				}
				fmt.Fprintln(c.App.Writer, "password reset, check your mail")
				return nil
			})
		},
	}
}

func PingCommand() *cli.Command {
	return &cli.Command{
		Name:  "ping",
		Usage: "Check that the server answers",
		Action: func(c *cli.Context) error {
			return withClient(c, func(uc userClient) error {
				if err := uc.Ping(c.Context); err != nil {
					return err
				}
				fmt.Fprintln(c.App.Writer, "OK")
				return nil
			})
		},
	}
}
