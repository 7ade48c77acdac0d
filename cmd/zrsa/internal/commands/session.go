package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"zrsa"
	"zrsa/internal/history"
	"zrsa/internal/logging"
)

// Session is the interactive encrypt/decrypt loop. It owns the current
// keypair and replaces it wholesale when the user asks for a new key.
type Session struct {
	ID     uuid.UUID
	gen    *zrsa.Generator
	store  *history.Store
	logger logging.Logger
	in     *bufio.Reader
	out    io.Writer

	pub  *zrsa.PublicKey
	priv *zrsa.PrivateKey
}

// NewSession wires a session to in and out. store may be nil.
func NewSession(gen *zrsa.Generator, store *history.Store, logger logging.Logger, in io.Reader, out io.Writer) *Session {
	id := uuid.New()
	return &Session{
		ID:     id,
		gen:    gen,
		store:  store,
		logger: logger.With("session", id.String()),
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// Run generates a key and loops until the user declines to continue or the
// input ends.
func (s *Session) Run(ctx context.Context) error {
	if err := s.newKey(); err != nil {
		return err
	}

	for {
		passed, err := s.round(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if !passed {
			s.logger.Warn("round trip mismatch", "fingerprint", s.pub.Fingerprint())
		}

		fmt.Fprint(s.out, "Continue? (N/y): ")
		if !confirm(s.in) {
			break
		}
		fmt.Fprint(s.out, "Create A New Key? (N/y): ")
		if confirm(s.in) {
			if err := s.newKey(); err != nil {
				return err
			}
		}
	}

	fmt.Fprintln(s.out, "Bye")
	return nil
}

func (s *Session) newKey() error {
	pub, priv, err := s.gen.Generate()
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}
	s.pub, s.priv = pub, priv
	s.logger.Info("new keypair", "fingerprint", pub.Fingerprint(), "bits", pub.N.BitLen())
	printInformation(s.out, pub, priv)
	return nil
}

// round encrypts and decrypts one line. It returns io.EOF when no line is
// left to read.
func (s *Session) round(ctx context.Context) (bool, error) {
	fmt.Fprintln(s.out, "----------------- Encrypt -----------------------")
	fmt.Fprintln(s.out, "Input Information to Encrypt, End by Enter")
	fmt.Fprintln(s.out)

	line, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return false, err
	}
	input := strings.TrimRight(line, "\r\n")

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Use Public Key to Encrypt Information:", input)
	fmt.Fprintln(s.out)
	codes := zrsa.EncryptText(s.pub, input)
	fmt.Fprintln(s.out, "Ciphertext Is:")
	fmt.Fprintln(s.out, joinCodes(codes))
	fmt.Fprintln(s.out)

	fmt.Fprintln(s.out, "----------------- Decrypt -----------------------")
	fmt.Fprintln(s.out, "Code After Decrypt:")
	fmt.Fprintln(s.out, joinCodes(zrsa.DecryptCodes(s.priv, codes)))
	fmt.Fprintln(s.out)
	output := zrsa.DecryptText(s.priv, codes)
	fmt.Fprintln(s.out, "Source Information is:")
	fmt.Fprintln(s.out, output)
	fmt.Fprintln(s.out)

	passed := input == output
	if passed {
		fmt.Fprintln(s.out, "Right, Test Passed!")
	}

	if s.store != nil {
		_, err := s.store.Record(ctx, history.Round{
			SessionID:      s.ID,
			KeyFingerprint: s.pub.Fingerprint(),
			ModulusBits:    s.pub.N.BitLen(),
			PlainLength:    len(input),
			Ciphertext:     codes,
			Passed:         passed,
		})
		if err != nil {
			// recording is best effort, the round itself succeeded
			s.logger.Error("failed to record round", "error", err)
		}
	}
	return passed, nil
}

// InitSessionCommand registers the session subcommand and makes it the root
// default.
func InitSessionCommand(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Interactive encrypt/decrypt loop with a fresh keypair",
		RunE:  runSession,
	}
	root.AddCommand(cmd)
	root.RunE = runSession
}

func runSession(cmd *cobra.Command, _ []string) error {
	logger, err := setupLogger(cmd)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}
	gen, err := newGenerator(cmd, logger)
	if err != nil {
		return err
	}

	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	return NewSession(gen, store, logger, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
}

// openHistory returns nil when --history-db is empty.
func openHistory(cmd *cobra.Command) (*history.Store, error) {
	settings, err := historySettingsFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	if !settings.Enabled() {
		return nil, nil
	}
	store, err := history.Open(settings.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	return store, nil
}
