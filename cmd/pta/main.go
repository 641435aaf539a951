// Command pta runs the pointer analysis on a built-in demo program,
// prints its call graph, points-to sets, taint flows, and dead-code
// findings, and optionally writes the call graph in DOT format.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-git/go-git/v5"
	"golang.org/x/term"

	"github.com/flowgraph/pta/actx"
	"github.com/flowgraph/pta/callgraph"
	"github.com/flowgraph/pta/config"
	"github.com/flowgraph/pta/deadcode"
	"github.com/flowgraph/pta/heap"
	"github.com/flowgraph/pta/internal/plog"
	"github.com/flowgraph/pta/result"
	"github.com/flowgraph/pta/scenario"
	"github.com/flowgraph/pta/solver"
	"github.com/flowgraph/pta/taint"
)

var (
	styleHeader  lipgloss.Style
	styleSuccess lipgloss.Style
	styleWarning lipgloss.Style
	styleSubtle  lipgloss.Style
	styleBold    lipgloss.Style
)

func initStyles() {
	plain := os.Getenv("NO_COLOR") != "" || strings.EqualFold(os.Getenv("PTA_THEME"), "plain")
	if plain {
		reset := lipgloss.NewStyle()
		styleHeader, styleSuccess, styleWarning, styleSubtle = reset, reset, reset, reset
		styleBold = lipgloss.NewStyle().Bold(true)
		return
	}
	styleHeader = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#3366cc", Dark: "#8fb3ff"}).Bold(true)
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2f9e44", Dark: "#69db7c"})
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#e8590c", Dark: "#ffa94d"}).Bold(true)
	styleSubtle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#868e96", Dark: "#adb5bd"})
	styleBold = lipgloss.NewStyle().Bold(true)
}

func main() {
	initStyles()

	var (
		demo       = flag.String("demo", "copychain", "built-in scenario to run: "+strings.Join(scenario.Names(), ", "))
		ctxMode    = flag.String("context", "insensitive", "context sensitivity: insensitive, cfa<k>, obj<k>, type<k> (e.g. cfa1, obj2)")
		configPath = flag.String("config", "", "path to a taint config YAML, overriding the scenario's own config")
		repoURL    = flag.String("repo", "", "clone this repository and load <repo>/pta-taint.yaml as the taint config")
		dotPath    = flag.String("dot", "", "write the call graph in DOT format to this path")
		verbose    = flag.Bool("verbose", false, "enable debug logging")
		trace      = flag.Bool("trace", false, "enable trace logging (implies -verbose)")
	)
	flag.Parse()

	if err := run(*demo, *ctxMode, *configPath, *repoURL, *dotPath, *verbose, *trace); err != nil {
		fmt.Fprintln(os.Stderr, styleWarning.Render("error:"), err)
		os.Exit(1)
	}
}

func run(demoName, ctxMode, configPath, repoURL, dotPath string, verbose, trace bool) error {
	sc, err := scenario.Build(demoName)
	if err != nil {
		return err
	}

	selector, err := parseContextMode(ctxMode)
	if err != nil {
		return err
	}

	matchers, err := loadTaintConfig(configPath, repoURL, sc)
	if err != nil {
		return err
	}

	level := plog.LevelInfo
	switch {
	case trace:
		level = plog.LevelTrace
	case verbose:
		level = plog.LevelDebug
	}
	logger := plog.New(level, os.Stderr)

	wrapped := lipgloss.NewStyle().Width(termWidth()).Render(sc.Description)
	fmt.Println(styleHeader.Render("pta"), styleSubtle.Render("—"), styleSubtle.Render(wrapped))

	heapModel := heap.NewModel()
	tm := taint.NewManager(matchers)

	s := solver.NewSolver(selector, heapModel, sc.Hierarchy, solver.WithHooks(tm), solver.WithLogger(logger))
	progress := plog.NewProgressTracker(logger, "solve")
	s.AddEntryPoint(sc.Program.Entry)
	s.Solve()
	progress.Done()

	r := result.New(s, tm)
	printPointsTo(r, sc)
	printCallGraph(r)
	printTaintFlows(r)
	printDeadCode(sc)

	if dotPath != "" {
		if err := writeDOT(r.CallGraph, dotPath); err != nil {
			return err
		}
		fmt.Println(styleSubtle.Render("call graph written to " + dotPath))
	}
	return nil
}

func parseContextMode(mode string) (actx.Selector, error) {
	switch {
	case mode == "insensitive" || mode == "":
		return actx.Insensitive, nil
	case strings.HasPrefix(mode, "cfa"):
		k, err := strconv.Atoi(strings.TrimPrefix(mode, "cfa"))
		if err != nil {
			return nil, fmt.Errorf("invalid call-site sensitivity %q: %w", mode, err)
		}
		return actx.CallSiteSensitive(k), nil
	case strings.HasPrefix(mode, "obj"):
		k, err := strconv.Atoi(strings.TrimPrefix(mode, "obj"))
		if err != nil {
			return nil, fmt.Errorf("invalid object sensitivity %q: %w", mode, err)
		}
		return actx.ObjectSensitive(k), nil
	case strings.HasPrefix(mode, "type"):
		k, err := strconv.Atoi(strings.TrimPrefix(mode, "type"))
		if err != nil {
			return nil, fmt.Errorf("invalid type sensitivity %q: %w", mode, err)
		}
		return actx.TypeSensitive(k), nil
	default:
		return nil, fmt.Errorf("unknown context mode %q", mode)
	}
}

// loadTaintConfig resolves the taint config in priority order: an
// explicit -config path, a -repo clone's pta-taint.yaml, then the
// scenario's own embedded config.
func loadTaintConfig(configPath, repoURL string, sc *scenario.Scenario) (*config.Matchers, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	if repoURL != "" {
		dir, err := cloneRepository(repoURL)
		if err != nil {
			return nil, err
		}
		return config.Load(filepath.Join(dir, "pta-taint.yaml"))
	}
	if sc.ConfigYAML != nil {
		return config.Parse(sc.ConfigYAML)
	}
	return &config.Matchers{}, nil
}

// cloneRepository clones repoURL under the OS temp directory, reusing
// an existing clone if one is already present there.
func cloneRepository(repoURL string) (string, error) {
	dir := filepath.Join(os.TempDir(), "pta", "repo", sanitizeRepoURL(repoURL))
	if _, err := os.Stat(dir); err == nil {
		return dir, nil
	}
	_, err := git.PlainClone(dir, false, &git.CloneOptions{
		URL:          repoURL,
		Depth:        1,
		Tags:         git.NoTags,
		SingleBranch: true,
	})
	if err != nil {
		return "", fmt.Errorf("clone %s: %w", repoURL, err)
	}
	return dir, nil
}

func sanitizeRepoURL(u string) string {
	r := strings.NewReplacer("://", "_", "/", "_", ":", "_")
	return r.Replace(u)
}

func printPointsTo(r *result.PointerAnalysisResult, sc *scenario.Scenario) {
	fmt.Println(styleBold.Render("points-to:"))
	names := make([]string, 0, len(sc.Vars))
	for name := range sc.Vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		v := sc.Vars[name]
		objs := r.PointsTo(actx.Empty(), v)
		fmt.Printf("  %s -> %v\n", v.String(), objs)
	}
}

func printCallGraph(r *result.PointerAnalysisResult) {
	fmt.Println(styleBold.Render("call graph:"))
	for _, e := range r.Edges() {
		caller := "<entry>"
		if e.Site != nil {
			caller = e.Site.String()
		}
		fmt.Printf("  %s --%s--> %s\n", caller, e.Kind, e.Callee)
	}
}

func printTaintFlows(r *result.PointerAnalysisResult) {
	if len(r.Flows) == 0 {
		return
	}
	fmt.Println(styleBold.Render("taint flows:"))
	for _, f := range r.Flows {
		fmt.Println("  " + styleSuccess.Render(f.String()))
	}
}

func printDeadCode(sc *scenario.Scenario) {
	findings := collectDeadCode(sc)
	if len(findings) == 0 {
		return
	}
	fmt.Println(styleBold.Render("dead code:"))
	for _, f := range findings {
		fmt.Printf("  [%d] %s: %T\n", f.Index, styleWarning.Render(f.Reason.String()), f.Stmt)
	}
}

// collectDeadCode runs the reference constant-propagation and
// liveness analyses over the entry method's body and feeds them to
// the detector. Scenarios that want their branch condition pruned
// (like "deadcode") seed the constant table from Vars named "cond".
func collectDeadCode(sc *scenario.Scenario) []deadcode.Finding {
	stmts := sc.Program.Entry.IR.Stmts
	constants := deadcode.Constants{}
	if cond, ok := sc.Vars["cond"]; ok {
		constants[cond] = "0"
	}
	live := deadcode.Compute(stmts)
	return deadcode.Detect(stmts, constants, live)
}

func writeDOT(g *callgraph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return callgraph.WriteDOT(f, g)
}

// termWidth reports the terminal width for wrapping long output,
// falling back to 80 columns when stdout isn't a terminal (e.g. piped
// into a file or another program).
func termWidth() int {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return 80
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
