// Command searchcli runs one catalog operation against the configured
// backend and prints the resulting envelope as JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"example.com/sector17-directory/internal/app"
	"example.com/sector17-directory/internal/config"
	domproduct "example.com/sector17-directory/internal/domain/product"
	"example.com/sector17-directory/internal/gateway"
	"example.com/sector17-directory/internal/infra/logger"
	cataloguc "example.com/sector17-directory/internal/usecase/catalog"
)

const usage = `usage: searchcli [flags] <operation>

operations:
  search       search products (--query, --category, --shop, --min-price, --max-price)
  shops        list shops
  shop         show one shop and its products (--id)
  categories   list categories
  products     list products
  filters      list filter options
  stats        count shops, products and categories
  login        check admin credentials (--email, --password)

flags:
`

var errEnvelopeFailed = errors.New("operation answered with a failure envelope")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errEnvelopeFailed) {
			fmt.Fprintln(os.Stderr, "searchcli:", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	flags := pflag.NewFlagSet("searchcli", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprint(stderr, usage)
		flags.PrintDefaults()
	}

	query := flags.StringP("query", "q", "", "free-text search")
	category := flags.StringP("category", "c", domproduct.All, "category filter")
	shop := flags.StringP("shop", "s", domproduct.All, "shop name filter")
	minPrice := flags.Float64("min-price", domproduct.DefaultMinPrice, "minimum price, applied only when given")
	maxPrice := flags.Float64("max-price", domproduct.DefaultMaxPrice, "maximum price, applied only when given")
	id := flags.String("id", "", "shop id for the shop operation")
	email := flags.String("email", "", "admin email for login")
	password := flags.String("password", "", "admin password for login")
	backend := flags.StringP("backend", "b", "", "override CATALOG_BACKEND (fixture or remote)")
	backendURL := flags.String("url", "", "override BACKEND_URL")
	noLatency := flags.Bool("no-latency", false, "disable simulated fixture latency")

	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return errors.New("exactly one operation is required")
	}

	for name, v := range map[string]string{"CATALOG_BACKEND": *backend, "BACKEND_URL": *backendURL} {
		if v == "" {
			continue
		}
		if err := os.Setenv(name, v); err != nil {
			return fmt.Errorf("set %s: %w", name, err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if *noLatency {
		cfg.SimulateLatency = false
	}

	log := logger.NewWithWriter("searchcli", cfg.LogLevel, stderr)
	b, err := app.NewBackend(ctx, cfg, log, nil)
	if err != nil {
		return err
	}
	defer b.Close()

	gw := gateway.New(b, log)
	catalog := cataloguc.NewService(gw)

	var (
		out     any
		success = true
	)
	switch op := flags.Arg(0); op {
	case "search":
		f := domproduct.Filter{Category: *category, Shop: *shop}
		if flags.Changed("min-price") {
			f.MinPrice = domproduct.Price(*minPrice)
		}
		if flags.Changed("max-price") {
			f.MaxPrice = domproduct.Price(*maxPrice)
		}
		res, err := catalog.Search(ctx, *query, f)
		if err != nil {
			return err
		}
		out, success = res, res.Success
	case "shops":
		res, err := catalog.Shops(ctx)
		if err != nil {
			return err
		}
		out, success = res, res.Success
	case "shop":
		if *id == "" {
			return errors.New("--id is required for the shop operation")
		}
		res, err := catalog.ShopDetails(ctx, *id)
		if err != nil {
			return err
		}
		out, success = res, res.Success
	case "categories":
		res, err := catalog.Categories(ctx)
		if err != nil {
			return err
		}
		out, success = res, res.Success
	case "products":
		res, err := catalog.Products(ctx)
		if err != nil {
			return err
		}
		out, success = res, res.Success
	case "filters":
		opts, err := catalog.FilterOptions(ctx)
		if err != nil {
			return err
		}
		out = gateway.OK(opts)
	case "stats":
		stats, err := catalog.Dashboard(ctx)
		if err != nil {
			return err
		}
		out = gateway.OK(stats)
	case "login":
		res, err := gw.AdminLogin(ctx, *email, *password)
		if err != nil {
			return err
		}
		out, success = res, res.Success
	default:
		flags.Usage()
		return fmt.Errorf("unknown operation %q", op)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	if !success {
		return errEnvelopeFailed
	}
	return nil
}
