package commands

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"zrsa"
	"zrsa/internal/config"
	"zrsa/internal/logging"
)

// Persistent flag names shared by every subcommand.
const (
	flagLogLevel     = "log-level"
	flagLogType      = "log-type"
	flagLogFile      = "log-file"
	flagPrimeBound   = "prime-bound"
	flagIndexOffset  = "index-offset"
	flagExponentBase = "exponent-base"
	flagMaxSteps     = "max-exponent-steps"
	flagHistoryDB    = "history-db"
)

// RegisterPersistentFlags adds logging and key generation flags to root.
func RegisterPersistentFlags(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.String(flagLogLevel, config.LogLevelWarning, "log level: debug, info, warning, error")
	flags.String(flagLogType, config.LogTypeConsole, "log backend: console or file")
	flags.String(flagLogFile, "", "log file path when --log-type=file")
	flags.Int(flagPrimeBound, zrsa.DefaultPrimeBound, "sieve bound for the prime table")
	flags.Int(flagIndexOffset, zrsa.DefaultIndexOffset, "number of smallest primes skipped when sampling p and q")
	flags.Int64(flagExponentBase, zrsa.DefaultExponentBase, "first candidate for the public exponent")
	flags.Int(flagMaxSteps, zrsa.DefaultMaxExponentSteps, "maximum increments of the public exponent search")
	flags.String(flagHistoryDB, "", "SQLite file recording session rounds (empty disables)")
}

func setupLogger(cmd *cobra.Command) (logging.Logger, error) {
	settings := config.DefaultLoggerSettings()
	flags := cmd.Flags()

	var err error
	if settings.LogLevel, err = flags.GetString(flagLogLevel); err != nil {
		return nil, err
	}
	if settings.LogType, err = flags.GetString(flagLogType); err != nil {
		return nil, err
	}
	if settings.FilePath, err = flags.GetString(flagLogFile); err != nil {
		return nil, err
	}
	if settings.LogType == config.LogTypeFile {
		settings.MaxSize, settings.MaxBackups, settings.MaxAge = 10, 3, 28
	}
	return logging.New(settings)
}

func keySettingsFromFlags(cmd *cobra.Command) (*config.KeySettings, error) {
	flags := cmd.Flags()
	s := &config.KeySettings{}

	var err error
	if s.PrimeBound, err = flags.GetInt(flagPrimeBound); err != nil {
		return nil, err
	}
	if s.IndexOffset, err = flags.GetInt(flagIndexOffset); err != nil {
		return nil, err
	}
	if s.ExponentBase, err = flags.GetInt64(flagExponentBase); err != nil {
		return nil, err
	}
	if s.MaxExponentSteps, err = flags.GetInt(flagMaxSteps); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// newGenerator builds a generator from the key flags.
func newGenerator(cmd *cobra.Command, logger logging.Logger) (*zrsa.Generator, error) {
	s, err := keySettingsFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	cfg := zrsa.Config{
		PrimeBound:       s.PrimeBound,
		IndexOffset:      s.IndexOffset,
		ExponentBase:     s.ExponentBase,
		MaxExponentSteps: s.MaxExponentSteps,
	}
	gen, err := zrsa.NewDefaultGenerator(cfg, zrsa.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create key generator: %w", err)
	}
	return gen, nil
}

// confirm reads one line and reports whether its first non-space character
// is y or Y.
func confirm(in *bufio.Reader) bool {
	line, _ := in.ReadString('\n')
	for _, r := range line {
		switch r {
		case ' ':
			continue
		case 'y', 'Y':
			return true
		default:
			return false
		}
	}
	return false
}

func printInformation(out io.Writer, pub *zrsa.PublicKey, priv *zrsa.PrivateKey) {
	fmt.Fprintln(out, "--------------- Information ---------------------")
	fmt.Fprintln(out, "p:", priv.P)
	fmt.Fprintln(out, "q:", priv.Q)
	fmt.Fprintln(out, "(p-1)(q-1):", priv.Totient())
	fmt.Fprintln(out)
	fmt.Fprintln(out, "public key:")
	fmt.Fprintln(out, "e:", pub.E)
	fmt.Fprintln(out, "n:", pub.N)
	fmt.Fprintln(out, "private key:")
	fmt.Fprintln(out, "d:", priv.D)
	fmt.Fprintln(out, "n:", priv.N)
}

func joinCodes(codes []*big.Int) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func parseBig(name, value string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(value), 10)
	if !ok {
		return nil, fmt.Errorf("invalid %s %q", name, value)
	}
	return v, nil
}
