// Package app is the application root: it turns a config.Config into loaded
// stores, a session, an API client and the checkout flow.
package app

import (
	"fmt"
	"io"

	"github.com/nikolayk812/storefront/internal/apiclient"
	"github.com/nikolayk812/storefront/internal/checkout"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/logger"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/nikolayk812/storefront/internal/store"
	"go.uber.org/zap"
)

type App struct {
	Log      *zap.Logger
	Session  port.SessionRepository
	Cart     *store.Cart
	Wishlist *store.Wishlist
	API      *apiclient.Client
	Checkout *checkout.Flow
	Terminal *Terminal

	storage repository.Storage
}

// New opens local storage and loads the cart and wishlist once. Views and
// messages are written to out.
func New(cfg *config.Config, log *zap.Logger, out io.Writer) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	gormLog := logger.NewGormLogger(log, logger.GormLevel(cfg.Log.Level))

	storage, err := repository.OpenStorage(cfg.Storage.Driver, cfg.Storage.Path, gormLog)
	if err != nil {
		return nil, fmt.Errorf("repository.OpenStorage: %w", err)
	}

	cartRepo := repository.NewCart(storage, log)
	wishlistRepo := repository.NewWishlist(storage, log)
	session := repository.NewSession(storage, log)

	terminal := NewTerminal(out)

	client, err := apiclient.New(apiclient.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
	}, session, terminal, log)
	if err != nil {
		_ = storage.Close()
		return nil, fmt.Errorf("apiclient.New: %w", err)
	}

	cart := store.NewCart(cartRepo.Load(), cartRepo.Save, cfg.Store.Currency)
	wishlist := store.NewWishlist(wishlistRepo.Load(), wishlistRepo.Save)

	flow := checkout.NewFlow(cart, client, session, terminal, terminal, log)

	log.Debug("storefront ready",
		zap.String("storage", cfg.Storage.Driver),
		zap.String("api", cfg.API.BaseURL),
		zap.Int("cart_lines", cart.Len()),
		zap.Int("wishlist", wishlist.Count()))

	return &App{
		Log:      log,
		Session:  session,
		Cart:     cart,
		Wishlist: wishlist,
		API:      client,
		Checkout: flow,
		Terminal: terminal,
		storage:  storage,
	}, nil
}

func (a *App) Close() error {
	if err := a.storage.Close(); err != nil {
		return fmt.Errorf("storage.Close: %w", err)
	}
	return nil
}
