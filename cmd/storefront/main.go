// Package main provides the terminal storefront: catalog browsing, cart,
// wishlist, checkout, account and admin commands against the storefront API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nikolayk812/storefront/internal/apiclient"
	"github.com/nikolayk812/storefront/internal/app"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/logger"
	"go.uber.org/zap"
)

// Version information (populated at build time)
var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	configPath  string
	logLevel    string
	showVersion bool
)

func init() {
	flag.StringVar(&configPath, "config", "", "Path to the configuration file (default: ./storefront.yaml or ~/.storefront/storefront.yaml)")
	flag.StringVar(&configPath, "c", "", "Path to the configuration file (shorthand)")
	flag.StringVar(&logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = printUsage
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Storefront - terminal client for the Fina storefront

USAGE:
    storefront [options] <command> [arguments]

OPTIONS:
    -config, -c <path>    Configuration file
    -log-level <level>    Override log level (debug, info, warn, error)
    -version              Show version information

CATALOG:
    catalog [-category c] [-gender g] [-style s] [-size s] [-color c]
            [-min p] [-max p] [-search q] [-new]
    product <id>

CART AND WISHLIST:
    cart show
    cart add -product <id> -size <size> [-color <color>] [-qty <n>]
    cart remove -product <id> -size <size> -color <color>
    cart clear
    wishlist show
    wishlist toggle <product id>

CHECKOUT:
    checkout -name <name> -phone <phone> -address <address> -district <district>
             [-reference <ref>] -method tarjeta|yape|plin
             [-card <number> -expiry <MM/YY> -cvv <cvv>]
    districts

ACCOUNT:
    login -email <email> -password <password>
    register -name <name> -email <email> -password <password>
    profile
    logout
    orders mine
    orders get <id>

ADMIN:
    admin users
    admin user <id>
    admin role <id> cliente|admin
    admin active <id> true|false
    admin delete-user <id>
    admin orders
    admin stats
    admin product-create -file <payload.json>
    admin product-update -file <payload.json> <id>
    admin product-delete <id>

ENVIRONMENT:
    Every setting can be overridden with a STOREFRONT_ variable,
    e.g. STOREFRONT_API_BASE_URL=https://api.fina.pe/api
`)
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("storefront %s (built %s)\n", version, buildTime)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	os.Exit(run(cfg, log, args))
}

func run(cfg *config.Config, log *zap.Logger, args []string) int {
	defer func() {
		_ = log.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg, log, os.Stdout)
	if err != nil {
		log.Error("failed to start storefront", zap.Error(err))
		return 1
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Warn("failed to close storage", zap.Error(err))
		}
	}()

	cli := &cli{app: a, out: os.Stdout}

	if err := cli.dispatch(ctx, args); err != nil {
		if errors.Is(err, errUsage) {
			printUsage()
			return 2
		}
		if errors.Is(err, errReported) {
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", apiclient.Message(err, err.Error()))
		return 1
	}

	return 0
}
