package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"rfind/internal/adapter/fs"
	"rfind/internal/adapter/logging"
	"rfind/internal/domain"
	"rfind/internal/usecase"
)

// searchOptions are the flags that describe a search.
type searchOptions struct {
	dirs     []string
	patterns []string
	size     uint64
}

func (s *searchOptions) bind(cmd *cobra.Command) {
	// StringArray keeps commas inside regexes like a{1,3} intact.
	cmd.Flags().StringArrayVarP(&s.dirs, "dirs", "d", nil, "directory to search in (repeatable)")
	cmd.Flags().StringArrayVarP(&s.patterns, "patterns", "p", nil, "regular expression the path must match (repeatable, all must match)")
	cmd.Flags().Uint64VarP(&s.size, "size", "s", 0, "match entries larger than this many bytes")
}

// request merges flags over config defaults.
func (s *searchOptions) request(cmd *cobra.Command, opts *globalOptions) (usecase.SearchRequest, error) {
	req := usecase.SearchRequest{
		Dirs:     opts.cfg.Search.Dirs,
		Patterns: opts.cfg.Search.Patterns,
		MinSize:  opts.cfg.Search.MinSize,
		Strict:   opts.cfg.Search.StrictPatterns,
	}
	if len(s.dirs) > 0 {
		req.Dirs = s.dirs
	}
	if len(s.patterns) > 0 {
		req.Patterns = s.patterns
	}
	if cmd.Flags().Changed("size") {
		req.MinSize = s.size
	}

	if len(req.Dirs) == 0 {
		return req, fmt.Errorf("at least one directory is required (--dirs)")
	}
	if len(req.Patterns) == 0 {
		return req, fmt.Errorf("at least one pattern is required (--patterns)")
	}
	return req, nil
}

func runSearch(cmd *cobra.Command, opts *globalOptions, search *searchOptions) error {
	req, err := search.request(cmd, opts)
	if err != nil {
		return err
	}
	return executeSearch(cmd, opts, req)
}

func executeSearch(cmd *cobra.Command, opts *globalOptions, req usecase.SearchRequest) error {
	uc := usecase.NewSearchUseCase(fs.NewOSFileSystem(), logging.NewDiagnosticSink(opts.logger))

	var bar *progressbar.ProgressBar
	if opts.cfg.Output.Progress && logging.IsTerminal(cmd.ErrOrStderr()) {
		bar = newSpinner(cmd.ErrOrStderr())
		uc.OnVisit(func(visited int, _ string) {
			bar.Set(visited)
		})
	}

	result, err := uc.Search(req)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	opts.logger.Log(logging.LevelDebug, result.String(), nil)

	return writeResults(cmd.OutOrStdout(), result.Matches(), opts.cfg.Output.Format)
}

func newSpinner(w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription("[cyan]Searching[reset]"),
		progressbar.OptionShowCount(),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

type fileOutput struct {
	Path  string `json:"path"`
	Size  uint64 `json:"size"`
	IsDir bool   `json:"is_dir"`
}

func writeResults(w io.Writer, files []domain.File, format string) error {
	if format == "json" {
		out := make([]fileOutput, 0, len(files))
		for _, f := range files {
			out = append(out, fileOutput{Path: f.Path, Size: f.Size, IsDir: f.IsDir})
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	for _, f := range files {
		if _, err := fmt.Fprintln(w, f.Path); err != nil {
			return err
		}
	}
	return nil
}
