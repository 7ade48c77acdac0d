package commands

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"zrsa/internal/config"
	"zrsa/internal/history"
)

// InitHistoryCommands registers the history subcommand tree.
func InitHistoryCommands(root *cobra.Command) {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded session rounds",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recent rounds",
		RunE:  runHistoryList,
	}
	listCmd.Flags().Int("limit", 20, "number of rounds to show (0 for all)")

	showCmd := &cobra.Command{
		Use:   "show [session-id]",
		Short: "Show every round of one session",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryShow,
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the history database",
		RunE:  runHistoryStats,
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded rounds",
		RunE:  runHistoryClear,
	}

	historyCmd.AddCommand(listCmd, showCmd, statsCmd, clearCmd)
	root.AddCommand(historyCmd)
}

func historySettingsFromFlags(cmd *cobra.Command) (*config.HistorySettings, error) {
	s := &config.HistorySettings{}
	var err error
	if s.Path, err = cmd.Flags().GetString(flagHistoryDB); err != nil {
		return nil, err
	}
	if cmd.Flags().Lookup("limit") != nil {
		if s.Limit, err = cmd.Flags().GetInt("limit"); err != nil {
			return nil, err
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// requireHistory opens the store, defaulting the path for history
// subcommands where recording is the whole point.
func requireHistory(cmd *cobra.Command) (*history.Store, *config.HistorySettings, error) {
	settings, err := historySettingsFromFlags(cmd)
	if err != nil {
		return nil, nil, err
	}
	if !settings.Enabled() {
		settings.Path = config.DefaultHistoryPath
	}
	store, err := history.Open(settings.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open history: %w", err)
	}
	return store, settings, nil
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	store, settings, err := requireHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	rounds, err := store.List(cmd.Context(), settings.Limit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(rounds) == 0 {
		fmt.Fprintln(out, "No rounds recorded")
		return nil
	}
	for _, r := range rounds {
		printRound(out, r)
	}
	fmt.Fprintln(out, "\nTotal rounds shown:", len(rounds))
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid session id: %w", err)
	}
	store, _, err := requireHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	rounds, err := store.BySession(cmd.Context(), id)
	if err != nil {
		return err
	}
	for _, r := range rounds {
		printRound(cmd.OutOrStdout(), r)
	}
	return nil
}

func runHistoryStats(cmd *cobra.Command, _ []string) error {
	store, _, err := requireHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	st, err := store.Stats(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== STATISTICS ===")
	fmt.Fprintln(out, "Sessions:", st.Sessions)
	fmt.Fprintln(out, "Rounds:", st.Rounds)
	fmt.Fprintln(out, "Failed rounds:", st.Failed)
	fmt.Fprintln(out, "Distinct keys:", st.Keys)
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	store, _, err := requireHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Clear(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Deleted rounds:", n)
	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

func printRound(out io.Writer, r history.Round) {
	fmt.Fprintf(out, "\n--- Round %d ---\n", r.ID)
	fmt.Fprintln(out, "Session:", r.SessionID)
	fmt.Fprintln(out, "Time:", r.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(out, "Key:", truncate(r.KeyFingerprint, 16), fmt.Sprintf("(%d bits)", r.ModulusBits))
	fmt.Fprintln(out, "Length:", r.PlainLength)
	fmt.Fprintln(out, "Ciphertext:", truncate(joinCodes(r.Ciphertext), 60))
	fmt.Fprintln(out, "Passed:", r.Passed)
}
