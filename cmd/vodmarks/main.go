package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/nikbrunner/vodmarks/internal/api"
	"github.com/nikbrunner/vodmarks/internal/app"
	"github.com/nikbrunner/vodmarks/internal/config"
	"github.com/nikbrunner/vodmarks/internal/culler"
	"github.com/nikbrunner/vodmarks/internal/exporter"
	"github.com/nikbrunner/vodmarks/internal/importer"
	"github.com/nikbrunner/vodmarks/internal/logging"
	"github.com/nikbrunner/vodmarks/internal/model"
	"github.com/nikbrunner/vodmarks/internal/picker"
	"github.com/nikbrunner/vodmarks/internal/prefs"
	"github.com/nikbrunner/vodmarks/internal/search"
	"github.com/nikbrunner/vodmarks/internal/state"
	"github.com/nikbrunner/vodmarks/internal/tui"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "import":
			runImport(os.Args[2:])
			return
		case "export":
			// Export with optional path
			var outputPath string
			if len(os.Args) >= 3 {
				outputPath = os.Args[2]
			}
			runExport(outputPath)
			return
		case "check":
			runCheck()
			return
		default:
			// Treat as search query (join all remaining args)
			query := strings.Join(os.Args[1:], " ")
			runQuickSearch(query)
			return
		}
	}

	// No args - run full TUI
	runTUI()
}

const helpText = "# vodmarks\n\n" +
	"Terminal client for a VOD bookmark server.\n\n" +
	"## Usage\n\n" +
	"| Command | Description |\n" +
	"|---|---|\n" +
	"| `vodmarks` | Open interactive TUI |\n" +
	"| `vodmarks <query>` | Quick search, select, open |\n" +
	"| `vodmarks import [--folder NAME] [--all] <file> <folder-id>` | Add video links from an HTML export |\n" +
	"| `vodmarks export [path]` | Export folders and entries to HTML |\n" +
	"| `vodmarks check` | Report dead and unreachable links |\n" +
	"| `vodmarks help` | Show this help |\n\n" +
	"## TUI Keybindings\n\n" +
	"- `1`/`2` switch between Bookmarks and Media Log\n" +
	"- `j`/`k`, `gg`/`G` move; `tab` switches pane\n" +
	"- `enter` opens a folder or a VOD; `y` copies its URL\n" +
	"- `/` filters, `o` cycles sort, `f` finds across all folders\n" +
	"- `n` new folder, `r` rename, `a` add VOD, `A` add media\n" +
	"- `v` selects, `m` moves, `d` deletes\n" +
	"- `u`/`s`/`x` upload, show and remove subtitles\n" +
	"- `t` toggles theme, `V` toggles cards and rows\n" +
	"- `?` help, `q` quit\n\n" +
	"## Configuration\n\n" +
	"`~/.config/vodmarks/config.json`, overridden by `.env` and `VODMARKS_*` variables " +
	"such as `VODMARKS_BASE_URL`.\n"

func printHelp() {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Print(helpText)
		return
	}
	out, err := r.Render(helpText)
	if err != nil {
		fmt.Print(helpText)
		return
	}
	fmt.Print(out)
}

// session holds everything a subcommand needs to talk to the server.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	prefs  prefs.Prefs
	client *api.Client
	closer io.Closer
}

func (s *session) Close() {
	_ = s.closer.Close()
	_ = s.logger.Sync()
}

// newSession loads config and opens the client. The TUI logs to the
// configured file; subcommands log warnings to stderr.
func newSession(interactive bool) (*session, error) {
	_ = config.LoadDotEnv()

	configPath, err := config.DefaultConfigFilePath()
	if err != nil {
		return nil, fmt.Errorf("getting config path: %w", err)
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.Stderr()
	if interactive {
		logger, err = logging.New(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("opening log: %w", err)
		}
	}

	dir := cfg.PrefsPath
	if dir == "" {
		if dir, err = prefs.DefaultDir(); err != nil {
			return nil, fmt.Errorf("getting prefs path: %w", err)
		}
	}
	p, closer, err := prefs.Open(cfg.PrefsBackend, dir)
	if err != nil {
		return nil, fmt.Errorf("opening prefs: %w", err)
	}

	client, err := api.NewClient(cfg.BaseURL, api.WithTimeout(cfg.Timeout()), api.WithLogger(logger))
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	return &session{cfg: cfg, logger: logger, prefs: p, client: client, closer: closer}, nil
}

func (s *session) controller(opts ...app.Option) *app.Controller {
	opts = append(opts, app.WithLogger(s.logger))
	return app.New(state.New(s.prefs), s.client, opts...)
}

func mustSession(interactive bool) *session {
	s, err := newSession(interactive)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return s
}

// runTUI runs the full interactive TUI.
func runTUI() {
	s := mustSession(true)
	defer s.Close()

	bridge := tui.NewBridge()
	ctrl := s.controller(app.WithConfirmer(bridge), app.WithNotifier(bridge))

	ctx, cancel := context.WithCancel(context.Background())
	m := tui.NewApp(tui.AppParams{
		Controller: ctrl,
		Context:    ctx,
		Logger:     s.logger,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())
	bridge.Attach(p)

	_, err := p.Run()
	// Release actions still waiting on a confirm
	cancel()
	bridge.SetSend(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}

// runQuickSearch performs a fuzzy search and opens the selected bookmark.
func runQuickSearch(query string) {
	s := mustSession(false)
	defer s.Close()

	list, err := s.controller().AllBookmarks(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bookmarks: %v\n", err)
		os.Exit(1)
	}

	results := search.FuzzySearchBookmarks(list, query)
	if len(results) == 0 {
		fmt.Printf("No bookmarks found for '%s'\n", query)
		return
	}

	var (
		selected *model.Bookmark
		action   = picker.ActionOpen
	)
	if len(results) == 1 {
		// Single result - select it directly
		selected = results[0].Bookmark
		fmt.Printf("Opening: %s\n", selected.Title)
	} else {
		program := tea.NewProgram(picker.New(results, query))
		finalModel, err := program.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
			os.Exit(1)
		}

		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			return
		}
		selected = finalPicker.SelectedBookmark()
		action = finalPicker.Action()
	}

	if selected == nil {
		return
	}

	switch action {
	case picker.ActionCopy:
		if err := clipboard.WriteAll(selected.URL); err != nil {
			fmt.Fprintf(os.Stderr, "Error copying URL: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Copied: %s\n", selected.URL)
	default:
		if err := tui.OpenURL(selected.URL); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening URL: %v\n", err)
			os.Exit(1)
		}
	}
}

// runImport handles the import subcommand.
func runImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	folder := fs.String("folder", "", "only import links under this browser folder")
	all := fs.Bool("all", false, "import every link, not only video URLs")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vodmarks import [--folder NAME] [--all] <file.html> <folder-id>\n")
	}
	_ = fs.Parse(args)
	if fs.NArg() < 2 {
		fs.Usage()
		os.Exit(1)
	}
	filePath, folderID := fs.Arg(0), model.ID(fs.Arg(1))

	file, err := os.Open(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	links, err := importer.ParseHTMLBookmarks(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing HTML: %v\n", err)
		os.Exit(1)
	}
	urls := importer.URLs(importer.Filter(links, *folder, !*all))
	if len(urls) == 0 {
		fmt.Println("Nothing to import")
		return
	}

	s := mustSession(false)
	defer s.Close()
	ctrl := s.controller()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := ctrl.LoadAll(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading folders: %v\n", err)
		os.Exit(1)
	}
	var known bool
	ctrl.Read(func(st *state.Store) { known = st.Tree().Contains(folderID) })
	if !known {
		fmt.Fprintf(os.Stderr, "Unknown folder: %s\n", folderID)
		os.Exit(1)
	}

	added, err := ctrl.ImportVideos(ctx, folderID, urls)
	fmt.Printf("Imported %d of %d links\n", added, len(urls))
	if err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(os.Stderr, "  failed: %s\n", line)
		}
		os.Exit(1)
	}
}

// runExport handles the export subcommand.
func runExport(outputPath string) {
	if outputPath == "" {
		var err error
		outputPath, err = exporter.DefaultExportPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting default export path: %v\n", err)
			os.Exit(1)
		}
	}

	s := mustSession(false)
	defer s.Close()
	ctrl := s.controller()
	ctx := context.Background()

	if err := ctrl.LoadAll(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading folders: %v\n", err)
		os.Exit(1)
	}
	entries, err := ctrl.AllBookmarks(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bookmarks: %v\n", err)
		os.Exit(1)
	}

	var (
		html    string
		folders int
	)
	ctrl.Read(func(st *state.Store) {
		html = exporter.ExportHTML(st.Tree(), entries)
		folders = len(st.Tree().Flatten())
	})

	if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d entries, %d folders to %s\n", len(entries), folders, outputPath)
}

// runCheck checks every bookmark URL and lists the broken ones.
func runCheck() {
	s := mustSession(false)
	defer s.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entries, err := s.controller().AllBookmarks(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bookmarks: %v\n", err)
		os.Exit(1)
	}

	results := culler.Check(ctx, entries, culler.Options{
		Concurrency:    s.cfg.CheckConcurrency,
		Timeout:        s.cfg.CheckTimeout(),
		ExcludeDomains: s.cfg.CheckExcludeDomains,
		OnProgress: func(completed, total int) {
			fmt.Fprintf(os.Stderr, "\rChecking %d/%d", completed, total)
		},
	})
	fmt.Fprintln(os.Stderr)

	for _, r := range results {
		switch r.Status {
		case culler.Dead:
			fmt.Printf("✗ dead (%d)  %s  %s\n", r.StatusCode, r.Entry.Title, r.Entry.URL)
		case culler.Unreachable:
			fmt.Printf("? unreachable (%s)  %s  %s\n", r.Error, r.Entry.Title, r.Entry.URL)
		}
	}

	sum := culler.Summarize(results)
	fmt.Printf("%d healthy, %d dead, %d unreachable\n", sum.Healthy, sum.Dead, sum.Unreachable)
	if errors.Is(ctx.Err(), context.Canceled) {
		os.Exit(130)
	}
}
