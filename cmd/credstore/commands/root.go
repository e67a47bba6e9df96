package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"credstore/internal/app"
	"credstore/internal/domain"
)

var (
	storePath string
	salt      string
	digest    string
	verbose   bool
	appCtx    *app.Wire
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "credstore",
		Short: "Manage the local credential store",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid by now; runtime failures need no usage text.
			cmd.SilenceUsage = true

			cfg := app.LoadConfig()
			applyFlagOverrides(cmd.Flags(), &cfg)

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			var err error
			appCtx, err = app.NewWire(cfg, logger)
			return err
		},
	}

	addStoreFlags(root.PersistentFlags())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(addCmd(), verifyCmd(), passwdCmd(), removeCmd(), listCmd())
	return root
}

// addStoreFlags registers the flags that override environment configuration.
func addStoreFlags(fs *pflag.FlagSet) {
	fs.StringVar(&storePath, "store", "", "credential file (default $"+app.EnvStorePath+" or "+app.DefaultStorePath+")")
	fs.StringVar(&salt, "salt", "", "shared hash salt (default $"+app.EnvSalt+" or the built-in salt)")
	fs.StringVar(&digest, "digest", "", "password digest: sha1 or ripemd160 (default $"+app.EnvDigest+" or sha1)")
}

func applyFlagOverrides(fs *pflag.FlagSet, cfg *app.Config) {
	if fs.Changed("store") {
		cfg.StorePath = storePath
	}
	if fs.Changed("salt") {
		cfg.Salt = salt
	}
	if fs.Changed("digest") {
		cfg.Digest = domain.DigestName(digest)
	}
}
