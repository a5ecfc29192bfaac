package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"parley/internal/crypto"
	"parley/internal/tui"
)

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Connect to a channel and open the chat UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			id, err := wire.Identity.Load(passphrase)
			if err != nil {
				return fmt.Errorf("load identity (run 'parley init' first): %w", err)
			}
			publicKey := crypto.EncodeKey(id.EdPub.Slice())
			wire.UseIdentity(id)

			// A --server flag or PARLEY_SERVER wins over the remembered value.
			if server != "" {
				wire.Prefs.SetString("server", server)
			}

			model := tui.New(wire.Sync, presenter, wire.Prefs, publicKey)
			p := tea.NewProgram(model, tea.WithAltScreen())
			presenter.Attach(p)

			_, err = p.Run()
			wire.Sync.Disconnect()
			return err
		},
	}
}
