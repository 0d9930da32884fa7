package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/back-informatica/chamados/internal/application/user/dto"
	"github.com/back-informatica/chamados/internal/application/user/usecases"
	"github.com/back-informatica/chamados/internal/infrastructure/auth"
	"github.com/back-informatica/chamados/internal/infrastructure/config"
	"github.com/back-informatica/chamados/internal/infrastructure/platform"
	"github.com/back-informatica/chamados/internal/shared/logger"
)

var errNoPassword = errors.New("--password is required when stdin is not a terminal")

type createOptions struct {
	id        string
	username  string
	name      string
	email     string
	role      string
	empresaID string
	password  string
}

type blockOptions struct {
	id       string
	username string
}

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Provision accounts for password login",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newCreateCommand(), newBlockCommand())
	return cmd
}

func newCreateCommand() *cobra.Command {
	opts := &createOptions{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account with a bcrypt password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.password == "" {
				pw, err := promptPassword(cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				opts.password = pw
			}
			return withStore(cmd.Context(), func(b *platform.Backend, cfg *config.Config, log logger.Interface) error {
				uc := usecases.NewCreateUserUseCase(b.Users, auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost), log)
				result, err := uc.Execute(cmd.Context(), opts.command())
				if err != nil {
					return err
				}
				return printUser(cmd.OutOrStdout(), result)
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.id, "id", "", "Account id; use the identity platform uid to link an existing subject")
	f.StringVarP(&opts.username, "username", "u", "", "Login name (required)")
	f.StringVar(&opts.name, "name", "", "Display name")
	f.StringVar(&opts.email, "email", "", "Email address")
	f.StringVar(&opts.role, "role", "cliente", "Role (cliente, tecnico, admin)")
	f.StringVar(&opts.empresaID, "empresa-id", "", "Organization id")
	f.StringVarP(&opts.password, "password", "p", "", "Password; prompted for when omitted")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func (o *createOptions) command() usecases.CreateUserCommand {
	return usecases.CreateUserCommand{
		ID:        o.id,
		Username:  o.username,
		Name:      o.name,
		Email:     o.email,
		Role:      o.role,
		EmpresaID: o.empresaID,
		Password:  o.password,
	}
}

func newBlockCommand() *cobra.Command {
	opts := &blockOptions{}
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Block an account so both login routes refuse it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.id == "" && opts.username == "" {
				return errors.New("one of --id or --username is required")
			}
			return withStore(cmd.Context(), func(b *platform.Backend, _ *config.Config, log logger.Interface) error {
				uc := usecases.NewBlockUserUseCase(b.Users, log)
				result, err := uc.Execute(cmd.Context(), usecases.BlockUserCommand{ID: opts.id, Username: opts.username})
				if err != nil {
					return err
				}
				return printUser(cmd.OutOrStdout(), result)
			})
		},
	}

	cmd.Flags().StringVar(&opts.id, "id", "", "Account id")
	cmd.Flags().StringVarP(&opts.username, "username", "u", "", "Login name")
	return cmd
}

func withStore(ctx context.Context, fn func(*platform.Backend, *config.Config, logger.Interface) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger().Named("user")

	b, err := platform.OpenStore(ctx, cfg, log, platform.Options{})
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if err := b.Close(ctx); err != nil {
			log.Warnw("failed to close store", "error", err)
		}
	}()

	return fn(b, cfg, log)
}

func promptPassword(out io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errNoPassword
	}

	fmt.Fprint(out, "Password: ")
	first, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Fprint(out, "Repeat password: ")
	second, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	return strings.TrimRight(string(first), "\r\n"), nil
}

func printUser(w io.Writer, u *dto.UserDTO) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(u)
}
