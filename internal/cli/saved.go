package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"rfind/internal/adapter/matcher"
	"rfind/internal/adapter/store"
	"rfind/internal/domain"
	"rfind/internal/usecase"
)

func openStore(opts *globalOptions) (*store.BoltStore, error) {
	path, err := opts.cfg.StoreDBPath()
	if err != nil {
		return nil, fmt.Errorf("failed to prepare store: %w", err)
	}
	st, err := store.NewBoltStore(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return st, nil
}

func newSaveCmd(opts *globalOptions) *cobra.Command {
	search := &searchOptions{}
	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Save a search under a name",
		Long: `Save the directories, patterns and size threshold of a search so it can be
replayed later with "rfind run NAME". Saving over an existing name replaces it.

Examples:
  rfind save big-logs -d /var/log -p '\.log$' -s 1048576`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := search.request(cmd, opts)
			if err != nil {
				return err
			}
			if opts.cfg.Search.StrictPatterns {
				if _, err := matcher.CompileStrict(req.Patterns); err != nil {
					return err
				}
			}

			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			saved := domain.SavedSearch{
				Name:      args[0],
				Dirs:      req.Dirs,
				Patterns:  req.Patterns,
				MinSize:   req.MinSize,
				CreatedAt: time.Now(),
			}
			if err := st.PutSearch(saved); err != nil {
				return fmt.Errorf("failed to save search: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved search %q\n", saved.Name)
			return nil
		},
	}
	search.bind(cmd)
	return cmd
}

func newRunCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run NAME",
		Short: "Run a saved search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			saved, err := st.GetSearch(args[0])
			st.Close()
			if err != nil {
				return err
			}

			return executeSearch(cmd, opts, usecase.SearchRequest{
				Dirs:     saved.Dirs,
				Patterns: saved.Patterns,
				MinSize:  saved.MinSize,
				Strict:   opts.cfg.Search.StrictPatterns,
			})
		},
	}
}

func newListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved searches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			searches, err := st.ListSearches()
			if err != nil {
				return fmt.Errorf("failed to list searches: %w", err)
			}

			out := cmd.OutOrStdout()
			if opts.cfg.Output.Format == "json" {
				if searches == nil {
					searches = []domain.SavedSearch{}
				}
				data, err := json.MarshalIndent(searches, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			if len(searches) == 0 {
				fmt.Fprintln(out, "No saved searches.")
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tDIRS\tPATTERNS\tMIN SIZE")
			for _, s := range searches {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", s.Name, strings.Join(s.Dirs, ","), strings.Join(s.Patterns, " "), s.MinSize)
			}
			return tw.Flush()
		},
	}
}

func newDeleteCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a saved search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.DeleteSearch(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted search %q\n", args[0])
			return nil
		},
	}
}
