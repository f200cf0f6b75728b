package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/njoroge/campus-share/internal"
)

// app wires the core components for one command invocation: configuration,
// identity, the resource ledger and the conversation store.
type app struct {
	cfg     *internal.Config
	session internal.Session
	ledger  *internal.Ledger
	chats   *internal.ChatStore
}

// newApp resolves the data directory, loads configuration and the persisted
// state. A failed resource load is degraded to an empty ledger with a
// warning, matching the startup policy for the conversation store.
func newApp() (*app, error) {
	dir := dataDir
	if dir == "" {
		var err error
		dir, err = internal.DefaultDataDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve data directory: %w", err)
		}
	}

	cfg, err := internal.LoadConfig(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	email := asEmail
	if email == "" {
		email = os.Getenv("CAMPUS_SHARE_EMAIL")
	}

	gate := internal.NewSimulatedGate(cfg.GateRate, time.Now().UnixNano())
	ledger := internal.NewLedger(internal.NewResourceStore(cfg.ResourceDBPath()), gate)
	if err := ledger.Load(); err != nil {
		internal.LogWarn("failed to load resources, starting empty: %v", err)
	} else {
		internal.LogDebug("loaded %d resource(s)", len(ledger.Resources()))
	}

	chats := internal.NewChatStore(internal.NewChatArchive(cfg.ChatDBPath()))

	return &app{
		cfg:     cfg,
		session: internal.NewSession(email, cfg),
		ledger:  ledger,
		chats:   chats,
	}, nil
}

// saveLedger persists the resource set and reports how many were written
func (a *app) saveLedger() error {
	if err := a.ledger.Save(); err != nil {
		return fmt.Errorf("failed to save resources: %w", err)
	}
	internal.LogDebug("saved %d resource(s)", len(a.ledger.Resources()))
	return nil
}
