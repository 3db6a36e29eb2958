// Package cmd implements the mm command line application, a ledger of
// balances for a handful of people.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/etnz/moneymanager"
	"github.com/etnz/moneymanager/kv"
	"github.com/etnz/moneymanager/logger"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addUserCmd{}, "users")
	c.Register(&deleteUserCmd{}, "users")
	c.Register(&usersCmd{}, "users")

	c.Register(&txCmd{kind: moneymanager.Credit}, "transactions")
	c.Register(&txCmd{kind: moneymanager.Debit}, "transactions")
	c.Register(&historyCmd{}, "transactions")

	c.Register(&queryCmd{}, "data")
	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")

	c.Register(&topicCmd{}, "help")
}

// Environment variables holding the defaults of the global flags. They are
// also passed to extensions.
const (
	EnvStore    = "MM_STORE"
	EnvDSN      = "MM_DSN"
	EnvKey      = "MM_KEY"
	EnvCurrency = "MM_CURRENCY"
	EnvMaxUsers = "MM_MAX_USERS"
	EnvLogLevel = "MM_LOG_LEVEL"
)

const defaultDir = ".moneymanager"

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	envFile      = flag.String("env", ".env", "file of environment variables loaded before reading the MM_* defaults")
	storeKind    = flag.String("store", "", "storage backend: dir, sqlite, redis or memory ($MM_STORE, default dir)")
	storeDSN     = flag.String("dsn", "", "storage location: a directory, a sqlite file or a redis URL ($MM_DSN)")
	storeKey     = flag.String("key", "", "key of the ledger in the storage ($MM_KEY, default "+moneymanager.DefaultKey+")")
	currencyFlag = flag.String("currency", "", "currency amounts are displayed in ($MM_CURRENCY, default "+moneymanager.DefaultCurrency+")")
	maxUsersFlag = flag.Int("max-users", -1, "maximum number of users, 0 for no limit ($MM_MAX_USERS, default 0)")
	logLevel     = flag.String("log-level", "", "log level: debug, info, warn or error ($MM_LOG_LEVEL, default warn)")
)

// stdout is where commands write their output.
var stdout io.Writer = os.Stdout

// now is the clock used for relative dates.
var now = time.Now

// Config is the resolved configuration of the application: flags first, then
// environment, then defaults.
type Config struct {
	Store    string
	DSN      string
	Key      string
	Currency string
	MaxUsers int
	LogLevel string
}

// LoadConfig resolves the configuration. The -env file is loaded first, it
// does not override variables already set in the environment.
func LoadConfig() (Config, error) {
	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", *envFile, err)
		}
	}

	c := Config{
		Store:    pick(*storeKind, EnvStore, kv.KindDir),
		Key:      pick(*storeKey, EnvKey, moneymanager.DefaultKey),
		LogLevel: pick(*logLevel, EnvLogLevel, "warn"),
	}

	dsn := ""
	if c.Store == kv.KindDir {
		dsn = defaultDir
	}
	c.DSN = pick(*storeDSN, EnvDSN, dsn)

	cur, err := moneymanager.CheckCurrency(pick(*currencyFlag, EnvCurrency, moneymanager.DefaultCurrency))
	if err != nil {
		return Config{}, err
	}
	c.Currency = cur

	c.MaxUsers = *maxUsersFlag
	if c.MaxUsers < -1 {
		return Config{}, fmt.Errorf("invalid -max-users %d: want a non negative integer", c.MaxUsers)
	}
	if c.MaxUsers < 0 {
		c.MaxUsers = 0
		if s := os.Getenv(EnvMaxUsers); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 {
				return Config{}, fmt.Errorf("invalid %s %q: want a non negative integer", EnvMaxUsers, s)
			}
			c.MaxUsers = n
		}
	}
	return c, nil
}

// Environ returns c as environment variables.
func (c Config) Environ() []string {
	return []string{
		EnvStore + "=" + c.Store,
		EnvDSN + "=" + c.DSN,
		EnvKey + "=" + c.Key,
		EnvCurrency + "=" + c.Currency,
		EnvMaxUsers + "=" + strconv.Itoa(c.MaxUsers),
		EnvLogLevel + "=" + c.LogLevel,
	}
}

func pick(flagValue, env, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v, ok := os.LookupEnv(env); ok && v != "" {
		return v
	}
	return def
}

// session is an opened store and the configuration it was opened with.
type session struct {
	Config
	store   *moneymanager.Store
	backend kv.Backend
}

// open loads the configuration, sets up the logger and opens the ledger.
func open(ctx context.Context) (*session, error) {
	c, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := logger.Initialize(c.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	backend, err := kv.Open(ctx, c.Store, c.DSN)
	if err != nil {
		return nil, err
	}
	store, err := moneymanager.Open(ctx, backend, moneymanager.WithKey(c.Key))
	if err != nil {
		backend.Close()
		return nil, err
	}
	return &session{Config: c, store: store, backend: backend}, nil
}

func (s *session) Close() error { return s.backend.Close() }

// report prints err for a failed mutation and returns the exit status.
//
// A write failure is only a warning: the change is applied but will be lost
// when the process exits.
func report(err error) subcommands.ExitStatus {
	var werr *moneymanager.WriteError
	switch {
	case err == nil:
		return subcommands.ExitSuccess
	case errors.As(err, &werr):
		fmt.Fprintf(os.Stderr, "Warning: the change could not be saved: %v\n", err)
		return subcommands.ExitSuccess
	case errors.Is(err, moneymanager.ErrInvalidName),
		errors.Is(err, moneymanager.ErrInvalidAmount),
		errors.Is(err, moneymanager.ErrInvalidReason),
		errors.Is(err, moneymanager.ErrInvalidKind),
		errors.Is(err, moneymanager.ErrDuplicateName),
		errors.Is(err, moneymanager.ErrTooManyUsers),
		errors.Is(err, moneymanager.ErrNotFound):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
}

// lookup finds a user by id, or else by name.
func (s *session) lookup(ref string) (moneymanager.User, error) {
	if u, ok := s.store.User(ref); ok {
		return u, nil
	}
	if u, ok := s.store.UserByName(ref); ok {
		return u, nil
	}
	return moneymanager.User{}, fmt.Errorf("%w: no user %q", moneymanager.ErrNotFound, ref)
}
