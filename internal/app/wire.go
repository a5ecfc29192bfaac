package app

import (
	"net/http"

	"github.com/rs/zerolog"

	"parley/internal/crypto"
	"parley/internal/domain"
	"parley/internal/prefs"
	"parley/internal/remote"
	identitysvc "parley/internal/services/identity"
	syncsvc "parley/internal/services/sync"
	"parley/internal/store"
	"parley/internal/trust"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string           // config directory, e.g. $HOME/.parley
	HTTP      *http.Client     // optional; defaults to http.DefaultClient
	Logger    zerolog.Logger   // engine logger
	Presenter domain.Presenter // presentation boundary receiving render actions
}

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Identity domain.IdentityService
	Oracle   domain.TrustOracle
	Prefs    *prefs.Store
	Sync     *syncsvc.Service
	HTTP     *http.Client

	// sign stamps outgoing posts; nil until UseIdentity is called.
	sign func(payload []byte) []byte
}

// UseIdentity arms the channel client factory so outgoing posts carry the
// identity's authorship signature. Must be called before connecting.
func (w *Wire) UseIdentity(id domain.Identity) {
	priv := id.EdPriv
	w.sign = func(payload []byte) []byte {
		return crypto.SignEd25519(priv, payload)
	}
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	identityStore := store.NewIdentityFileStore(cfg.Home)
	keyring := trust.NewKeyring(cfg.Home)
	prefStore := prefs.NewStore(cfg.Home)

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	w := &Wire{
		Identity: identitysvc.New(identityStore),
		Oracle:   keyring,
		Prefs:    prefStore,
		HTTP:     httpClient,
	}

	dial := func(endpoint, channel string, self domain.Profile) domain.ChannelClient {
		c := remote.NewHTTP(endpoint, channel, self)
		c.HTTP = httpClient
		c.Sign = w.sign
		return c
	}
	w.Sync = syncsvc.New(dial, keyring, cfg.Presenter, cfg.Logger)
	return w, nil
}
