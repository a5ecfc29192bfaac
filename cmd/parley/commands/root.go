package commands

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"parley/internal/app"
	"parley/internal/config"
	"parley/internal/tui"
)

var (
	home       string
	server     string
	passphrase string

	presenter *tui.Presenter
	wire      *app.Wire
	logClose  func() error
)

func Execute() error {
	root := &cobra.Command{
		Use:   "parley",
		Short: "Signed chat client with local contact verification",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if home == "" {
				home = cfg.Home
			}
			if server == "" {
				server = cfg.Server
			}
			if passphrase == "" {
				passphrase = cfg.Passphrase
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			presenter = tui.NewPresenter()
			wire, err = app.NewWire(app.Config{
				Home:      home,
				Logger:    newLogger(home),
				Presenter: presenter,
			})
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logClose != nil {
				return logClose()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.parley)")
	root.PersistentFlags().StringVar(&server, "server", "", "channel server base URL (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the identity")

	root.AddCommand(initCmd(), fingerprintCmd(), chatCmd())
	return root.Execute()
}

// newLogger writes engine logs to a file under home. The terminal belongs to
// the chat UI, so stderr is not an option while a session runs.
func newLogger(home string) zerolog.Logger {
	f, err := os.OpenFile(filepath.Join(home, "parley.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return zerolog.Nop()
	}
	logClose = f.Close
	return zerolog.New(f).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
