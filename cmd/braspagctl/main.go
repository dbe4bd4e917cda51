// Command braspagctl runs single Braspag gateway operations from the shell.
//
// Usage:
//
//	braspagctl <command> [flags]
//
// Commands taking a parameter document read it as JSON from -params
// (a file path, or "-" for stdin). The result is printed as JSON.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/kevin07696/braspag-go/internal/adapters/secrets"
	"github.com/kevin07696/braspag-go/internal/config"
	"github.com/kevin07696/braspag-go/pkg/braspag"
	pkgerrors "github.com/kevin07696/braspag-go/pkg/errors"
	"github.com/kevin07696/braspag-go/pkg/observability"
	"github.com/kevin07696/braspag-go/pkg/security"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// command runs one gateway operation against client
type command struct {
	usage string
	run   func(ctx context.Context, client *braspag.Client, fs *flag.FlagSet, args []string) (braspag.Result, error)
}

var commands = map[string]command{
	"authorize": {
		usage: "authorize a credit card payment (-params)",
		run: withParams(func(ctx context.Context, c *braspag.Client, p braspag.Params) (braspag.Result, error) {
			return c.CreditCard.Authorize(ctx, p)
		}),
	},
	"capture": {
		usage: "capture an authorized order (-order)",
		run: withOrder(func(ctx context.Context, c *braspag.Client, orderID string) (braspag.Result, error) {
			return c.CreditCard.Capture(ctx, orderID)
		}),
	},
	"partial-capture": {
		usage: "capture part of an authorized order (-order, -amount)",
		run:   runPartialCapture,
	},
	"void": {
		usage: "void an order (-order)",
		run: withOrder(func(ctx context.Context, c *braspag.Client, orderID string) (braspag.Result, error) {
			return c.CreditCard.Void(ctx, orderID)
		}),
	},
	"card-info": {
		usage: "show the card data of an order (-order)",
		run: withOrder(func(ctx context.Context, c *braspag.Client, orderID string) (braspag.Result, error) {
			return c.CreditCard.Info(ctx, orderID)
		}),
	},
	"status": {
		usage: "show the status of an order (-order)",
		run: withOrder(func(ctx context.Context, c *braspag.Client, orderID string) (braspag.Result, error) {
			return c.CreditCard.Status(ctx, orderID)
		}),
	},
	"boleto": {
		usage: "generate a boleto (-params)",
		run: withParams(func(ctx context.Context, c *braspag.Client, p braspag.Params) (braspag.Result, error) {
			return c.Bill.Generate(ctx, p)
		}),
	},
	"boleto-info": {
		usage: "show the data of a boleto order (-order)",
		run: withOrder(func(ctx context.Context, c *braspag.Client, orderID string) (braspag.Result, error) {
			return c.Bill.Info(ctx, orderID)
		}),
	},
	"save-card": {
		usage: "store a card in the protected card vault (-params)",
		run: withParams(func(ctx context.Context, c *braspag.Client, p braspag.Params) (braspag.Result, error) {
			return c.ProtectedCard.Save(ctx, p)
		}),
	},
	"get-card": {
		usage: "fetch a stored card (-key)",
		run:   runGetCard,
	},
	"just-click": {
		usage: "charge a stored card (-params)",
		run: withParams(func(ctx context.Context, c *braspag.Client, p braspag.Params) (braspag.Result, error) {
			return c.ProtectedCard.JustClickShop(ctx, p)
		}),
	},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" {
		printUsage(stderr)
		return 2
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		printUsage(stderr)
		return 2
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(stderr, "configuration error: %v\n", err)
		return 1
	}

	logger := initLogger(cfg.Logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	client, err := newClient(ctx, cfg, logger, registry)
	if err != nil {
		logger.Error("Failed to initialize Braspag client", zap.Error(err))
		return 1
	}

	if cfg.Metrics.Addr != "" {
		health := observability.NewHealthChecker(map[string]observability.CheckFunc{
			"config": func(context.Context) error { return client.Config().Validate() },
		})
		server := observability.StartMetricsServer(cfg.Metrics.Addr, registry, health, security.NewZapLogger(logger))
		defer func() {
			if err := observability.ShutdownMetricsServer(server); err != nil {
				logger.Error("Metrics server shutdown error", zap.Error(err))
			}
		}()
		logger.Info("Metrics server started", zap.String("address", cfg.Metrics.Addr))
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	stdinReader = stdin

	result, err := cmd.run(ctx, client, fs, args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 2
		}
		reportError(stderr, err)
		return 1
	}

	if err := writeResult(stdout, result); err != nil {
		logger.Error("Failed to write result", zap.Error(err))
		return 1
	}
	return 0
}

// newClient resolves the merchant key and builds the gateway client
func newClient(ctx context.Context, cfg *config.Config, logger *zap.Logger, reg prometheus.Registerer) (*braspag.Client, error) {
	env, err := braspag.ParseEnvironment(cfg.Braspag.Environment)
	if err != nil {
		return nil, err
	}

	merchantID := cfg.Braspag.MerchantID
	if merchantID == "" {
		reader, err := secrets.NewReader(ctx, secretsBackend(cfg.Secrets), logger)
		if err != nil {
			return nil, err
		}
		merchantID, err = secrets.ResolveMerchantID(ctx, reader, cfg.Secrets.MerchantIDSecret)
		if err != nil {
			return nil, err
		}
	}

	clientCfg := braspag.DefaultConfig(merchantID, env)
	clientCfg.ProxyURL = cfg.Braspag.ProxyURL
	clientCfg.OpenTimeout = cfg.Braspag.OpenTimeout
	clientCfg.ReadTimeout = cfg.Braspag.ReadTimeout
	clientCfg.Logger = security.NewZapLogger(logger)
	clientCfg.Metrics = observability.NewGatewayMetrics(reg)

	return braspag.New(clientCfg)
}

func secretsBackend(cfg config.SecretsConfig) secrets.BackendConfig {
	aws := secrets.DefaultAWSSecretsManagerConfig(cfg.AWSRegion)
	aws.Endpoint = cfg.AWSEndpoint

	vault := secrets.DefaultVaultConfig(cfg.VaultAddress)
	vault.Token = cfg.VaultToken
	vault.MountPath = cfg.VaultMountPath
	vault.KVVersion = cfg.VaultKVVersion

	return secrets.BackendConfig{
		Backend:   cfg.Backend,
		LocalPath: cfg.LocalPath,
		AWS:       aws,
		Vault:     vault,
	}
}

// initLogger builds a production JSON logger, or a console logger when
// development mode is on
func initLogger(cfg config.LoggerConfig) *zap.Logger {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{"stderr"}

	logger, err := zapCfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

var stdinReader io.Reader = os.Stdin

func withParams(op func(context.Context, *braspag.Client, braspag.Params) (braspag.Result, error)) func(context.Context, *braspag.Client, *flag.FlagSet, []string) (braspag.Result, error) {
	return func(ctx context.Context, c *braspag.Client, fs *flag.FlagSet, args []string) (braspag.Result, error) {
		source := fs.String("params", "-", "JSON parameter document, or - for stdin")
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		params, err := readParams(*source)
		if err != nil {
			return nil, err
		}
		return op(ctx, c, params)
	}
}

func withOrder(op func(context.Context, *braspag.Client, string) (braspag.Result, error)) func(context.Context, *braspag.Client, *flag.FlagSet, []string) (braspag.Result, error) {
	return func(ctx context.Context, c *braspag.Client, fs *flag.FlagSet, args []string) (braspag.Result, error) {
		orderID := fs.String("order", "", "order id")
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		return op(ctx, c, *orderID)
	}
}

func runPartialCapture(ctx context.Context, c *braspag.Client, fs *flag.FlagSet, args []string) (braspag.Result, error) {
	orderID := fs.String("order", "", "order id")
	amount := fs.String("amount", "", "amount to capture, e.g. 10.50")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(*amount)
	if err != nil {
		return nil, pkgerrors.ErrInvalidAmountParam.WithField("amount")
	}
	return c.CreditCard.PartialCapture(ctx, *orderID, d)
}

func runGetCard(ctx context.Context, c *braspag.Client, fs *flag.FlagSet, args []string) (braspag.Result, error) {
	key := fs.String("key", "", "just click key")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c.ProtectedCard.Get(ctx, *key)
}

// readParams decodes a JSON object. Integral numbers become int, others
// decimal.Decimal, so amounts keep their exact value.
func readParams(source string) (braspag.Params, error) {
	var r io.Reader
	if source == "-" {
		r = stdinReader
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("failed to open params: %w", err)
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode params: %w", err)
	}

	params := make(braspag.Params, len(raw))
	for k, v := range raw {
		params[k] = normalizeParam(v)
	}
	return params, nil
}

func normalizeParam(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return int(i)
	}
	if d, err := decimal.NewFromString(n.String()); err == nil {
		return d
	}
	return n.String()
}

func writeResult(w io.Writer, result braspag.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func reportError(w io.Writer, err error) {
	var typed *pkgerrors.Error
	if !errors.As(err, &typed) {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	out := map[string]string{
		"code":     string(typed.Code),
		"category": string(typed.Category),
		"message":  typed.Message,
	}
	if typed.Field != "" {
		out["field"] = typed.Field
	}
	if typed.GatewayMessage != "" {
		out["gateway_message"] = typed.GatewayMessage
	}
	_ = json.NewEncoder(w).Encode(out)
}

func printUsage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("usage: braspagctl <command> [flags]\n\ncommands:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %-16s %s\n", name, commands[name].usage)
	}
	fmt.Fprint(w, b.String())
}
