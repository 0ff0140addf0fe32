package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"

	"dirhop/internal/logging"
	"dirhop/internal/model"
	"dirhop/internal/nav"
	"dirhop/internal/shell"
	"dirhop/internal/store"
	"dirhop/internal/tui"
)

// chooseInteractive is the NoOptDefVal sentinel for a bare -c: not a valid
// slot label, so it can never collide with a real selection.
const chooseInteractive = "-"

var (
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	slotStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "dirhop",
		Repository: "dirhop",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/dirhop/dirhop/releases")
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dirhop [options] [NAME]\n\n")
		fmt.Fprintf(os.Stderr, "dirhop is a directory bookmarking and navigation helper.\n")
		fmt.Fprintf(os.Stderr, "It prints a single destination path, which the shell wrapper cds into.\n")
		fmt.Fprintf(os.Stderr, "Install the wrapper with: eval \"$(dirhop --init)\"\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s proj        # Resolve \"proj\": bookmarks, then children, then ancestors\n", shell.WrapperName)
		fmt.Fprintf(os.Stderr, "  %s -l          # List bookmarks with their slot labels\n", shell.WrapperName)
		fmt.Fprintf(os.Stderr, "  %s -c 3        # Jump straight to bookmark 3\n", shell.WrapperName)
		fmt.Fprintf(os.Stderr, "  %s -i          # Open the full-screen picker\n", shell.WrapperName)
	}

	listFlag := pflag.BoolP("list", "l", false, "List all bookmarked directories")
	bookmarkFlag := pflag.Bool("bookmark", false, "Bookmark the current directory")
	forgetFlag := pflag.BoolP("forget", "f", false, "Forget the current directory if bookmarked")
	forgetAllFlag := pflag.BoolP("forget-all", "F", false, "Forget all bookmarked directories")
	chooseFlag := pflag.StringP("choose", "c", "", "Choose a bookmark by label, prompting when no label is given")
	downFlag := pflag.BoolP("down", "d", false, "List and select a subdirectory")
	backFlag := pflag.BoolP("back", "b", false, "Change to the previous directory")
	upFlag := pflag.BoolP("up", "u", false, "Change up one directory level")
	pickFlag := pflag.BoolP("pick", "i", false, "Open the full-screen picker (combine with -d to start on subdirectories)")
	initFlag := pflag.String("init", "", "Print the shell wrapper function (zsh|bash)")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Enable verbose/debug output")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.Bool("update", false, "Check for a newer release")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")

	pflag.Lookup("choose").NoOptDefVal = chooseInteractive
	pflag.Lookup("init").NoOptDefVal = "auto"

	// pflag cannot register '?' as a shorthand, so handle -? before parsing.
	if slices.Contains(os.Args[1:], "-?") {
		pflag.Usage()
		return
	}
	pflag.Parse()

	logging.Setup(*verboseFlag, isatty.IsTerminal(os.Stderr.Fd()))

	if *helpFlag {
		pflag.Usage()
		return
	}
	if *versionFlag {
		fmt.Printf("dirhop version %s\n", model.Version)
		return
	}
	if *updateFlag {
		checkUpdate(model.Version)
		return
	}
	if *initFlag != "" {
		arg := *initFlag
		if arg == "auto" && pflag.NArg() > 0 {
			arg = pflag.Arg(0)
		}
		runInit(arg)
		return
	}

	st := store.New()

	var err error
	switch {
	case *listFlag:
		err = runList(st)
	case *bookmarkFlag:
		err = runBookmark(st)
	case *forgetFlag:
		err = runForget(st)
	case *forgetAllFlag:
		err = runForgetAll(st)
	case pflag.Lookup("choose").Changed:
		// With NoOptDefVal set, pflag only binds the value for -c=3; a
		// space-separated label lands in the positional args.
		label := *chooseFlag
		if label == chooseInteractive && pflag.NArg() > 0 {
			label = pflag.Arg(0)
		}
		err = runChoose(st, label)
	case *pickFlag:
		source := tui.SourceBookmarks
		if *downFlag {
			source = tui.SourceSubdirs
		}
		err = runPick(st, source)
	case *downFlag:
		err = runDown(st)
	case *backFlag:
		err = runBack(st)
	case *upFlag:
		err = runUp(st)
	case pflag.NArg() > 0:
		err = runFind(st, pflag.Arg(0))
	default:
		err = runCurrent()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

// workingDir returns the normalized directory the invocation resolves from.
func workingDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", model.WrapError(err, model.CodeFilesystem, "cannot determine the current directory")
	}
	return model.Normalize(cwd)
}

// finishNavigation records the directory we are navigating away from and,
// only once the history is safely persisted, prints the destination. A
// failed invocation must never leave a path on stdout.
func finishNavigation(st *store.Store, from, dest string) error {
	st.RecordVisit(from)
	if err := st.SaveHistory(); err != nil {
		return err
	}
	fmt.Println(dest)
	return nil
}

func runCurrent() error {
	cwd, err := workingDir()
	if err != nil {
		return err
	}
	fmt.Println(cwd)
	return nil
}

func runList(st *store.Store) error {
	if err := st.Load(); err != nil {
		return err
	}
	if len(st.Bookmarks) == 0 {
		fmt.Println(warnStyle.Render("No bookmarked directories."))
		return nil
	}
	for i, b := range st.Bookmarks {
		fmt.Printf("%s %s\n", slotStyle.Render(fmt.Sprintf("[%c]", model.Label(i))), b)
	}
	return nil
}

func runBookmark(st *store.Store) error {
	cwd, err := workingDir()
	if err != nil {
		return err
	}
	if err := st.Load(); err != nil {
		return err
	}
	added, err := st.AddBookmark(cwd)
	if err != nil {
		return err
	}
	if !added {
		fmt.Fprintln(os.Stderr, warnStyle.Render("Current directory is already bookmarked."))
		return nil
	}
	if err := st.SaveBookmarks(); err != nil {
		return err
	}
	fmt.Println(okStyle.Render(fmt.Sprintf("Bookmarked: %s", cwd)))
	return nil
}

func runForget(st *store.Store) error {
	cwd, err := workingDir()
	if err != nil {
		return err
	}
	if err := st.Load(); err != nil {
		return err
	}
	removed, err := st.RemoveBookmark(cwd)
	if err != nil {
		return err
	}
	if !removed {
		// Forgetting an unbookmarked directory is a no-op; the file is
		// left untouched.
		return nil
	}
	if err := st.SaveBookmarks(); err != nil {
		return err
	}
	fmt.Println(okStyle.Render(fmt.Sprintf("Removed bookmark: %s", cwd)))
	return nil
}

func runForgetAll(st *store.Store) error {
	if err := st.Load(); err != nil {
		return err
	}
	if len(st.Bookmarks) == 0 {
		fmt.Println(warnStyle.Render("No bookmarks to remove."))
		return nil
	}
	st.ClearBookmarks()
	if err := st.SaveBookmarks(); err != nil {
		return err
	}
	fmt.Println(okStyle.Render("All bookmarks removed."))
	return nil
}

func runChoose(st *store.Store, label string) error {
	cwd, err := workingDir()
	if err != nil {
		return err
	}
	if err := st.Load(); err != nil {
		return err
	}
	if len(st.Bookmarks) == 0 {
		return model.NewError(model.CodeInvalidSelection, "no bookmarked directories")
	}

	var dest string
	if label == chooseInteractive {
		selector := &nav.Selector{In: os.Stdin, Out: os.Stderr}
		dest, err = selector.Present(st.Bookmarks)
	} else {
		dest, err = nav.Pick(st.Bookmarks, strings.TrimSpace(label))
	}
	if err != nil {
		return err
	}
	return finishNavigation(st, cwd, dest)
}

func runDown(st *store.Store) error {
	cwd, err := workingDir()
	if err != nil {
		return err
	}
	if err := st.Load(); err != nil {
		return err
	}

	resolver := &nav.Resolver{Cwd: cwd}
	subdirs, err := resolver.Subdirs()
	if err != nil {
		return err
	}
	if len(subdirs) == 0 {
		return model.NewError(model.CodeNotFound, "no subdirectories found")
	}

	selector := &nav.Selector{In: os.Stdin, Out: os.Stderr, BaseNames: true}
	dest, err := selector.Present(subdirs)
	if err != nil {
		return err
	}
	return finishNavigation(st, cwd, dest)
}

func runPick(st *store.Store, source tui.Source) error {
	cwd, err := workingDir()
	if err != nil {
		return err
	}
	if err := st.Load(); err != nil {
		return err
	}

	// The directory listing is read only when the subdirs view is shown,
	// so picking a bookmark never depends on the working directory being
	// readable.
	resolver := &nav.Resolver{Cwd: cwd}

	// The picker needs a real terminal on both ends; otherwise degrade to
	// the plain one-line selector.
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stderr.Fd()) {
		items := st.Bookmarks
		baseNames := false
		if source == tui.SourceSubdirs {
			items, err = resolver.Subdirs()
			if err != nil {
				return err
			}
			baseNames = true
		}
		if len(items) == 0 {
			return model.NewError(model.CodeInvalidSelection, "nothing to select")
		}
		selector := &nav.Selector{In: os.Stdin, Out: os.Stderr, BaseNames: baseNames}
		dest, err := selector.Present(items)
		if err != nil {
			return err
		}
		return finishNavigation(st, cwd, dest)
	}

	dest, err := tui.Run(st.Bookmarks, resolver.Subdirs, source)
	if err != nil {
		return err
	}
	return finishNavigation(st, cwd, dest)
}

func runBack(st *store.Store) error {
	cwd, err := workingDir()
	if err != nil {
		return err
	}
	if err := st.Load(); err != nil {
		return err
	}

	resolver := &nav.Resolver{Cwd: cwd, History: st.History}
	dest, err := resolver.Back()
	if err != nil {
		return err
	}
	return finishNavigation(st, cwd, dest)
}

func runUp(st *store.Store) error {
	cwd, err := workingDir()
	if err != nil {
		return err
	}
	if err := st.Load(); err != nil {
		return err
	}

	resolver := &nav.Resolver{Cwd: cwd}
	dest, err := resolver.Up()
	if err != nil {
		return err
	}
	return finishNavigation(st, cwd, dest)
}

func runFind(st *store.Store, name string) error {
	cwd, err := workingDir()
	if err != nil {
		return err
	}
	if err := st.Load(); err != nil {
		return err
	}

	resolver := &nav.Resolver{Cwd: cwd, Bookmarks: st.Bookmarks}
	dest, err := resolver.Resolve(name)
	if err != nil {
		return err
	}
	return finishNavigation(st, cwd, dest)
}

func runInit(arg string) {
	shellPath := arg
	if arg == "auto" {
		shellPath = os.Getenv("SHELL")
	}
	fmt.Print(shell.Detect(shellPath).InitSnippet())
}
