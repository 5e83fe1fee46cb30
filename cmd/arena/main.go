package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridduel/gridduel/arena"
	"github.com/gridduel/gridduel/engine"
	"github.com/gridduel/gridduel/game"
	"github.com/gridduel/gridduel/logging"
)

var totalTicks atomic.Int64
var totalMatches atomic.Int64

type MatchUpdate struct {
	WorkerID int
	Result   arena.Result
}

type model struct {
	matchesDone   int
	winsA         int
	winsB         int
	draws         int
	ticks         int64
	startTime     time.Time
	recentMatches []string
	updates       chan MatchUpdate
}

func initialModel(updates chan MatchUpdate) model {
	return model{
		startTime: time.Now(),
		updates:   updates,
	}
}

type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return tea.Batch(waitForUpdate(m.updates), tickCmd())
}

func waitForUpdate(updates chan MatchUpdate) tea.Cmd {
	return func() tea.Msg {
		return <-updates
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case TickMsg:
		m.ticks = totalTicks.Load()
		return m, tickCmd()
	case MatchUpdate:
		m.matchesDone++
		switch msg.Result.Winner {
		case arena.WinnerA:
			m.winsA++
		case arena.WinnerB:
			m.winsB++
		default:
			m.draws++
		}
		logMsg := fmt.Sprintf("Worker %d: Winner %s, %d-%d, Ticks %d",
			msg.WorkerID, msg.Result.Winner, msg.Result.ScoreA, msg.Result.ScoreB, msg.Result.Ticks)
		m.recentMatches = append([]string{logMsg}, m.recentMatches...)
		if len(m.recentMatches) > 10 {
			m.recentMatches = m.recentMatches[:10]
		}
		return m, waitForUpdate(m.updates)
	}
	return m, nil
}

func (m model) View() string {
	duration := time.Since(m.startTime)
	matchesPerSec := float64(m.matchesDone) / duration.Seconds()
	ticksPerSec := float64(m.ticks) / duration.Seconds()
	if duration.Seconds() < 1 {
		matchesPerSec = 0
		ticksPerSec = 0
	}

	s := fmt.Sprintf("Matches Played: %d\n", m.matchesDone)
	s += fmt.Sprintf("A / B / Draw:   %d / %d / %d\n", m.winsA, m.winsB, m.draws)
	s += fmt.Sprintf("Total Ticks:    %d\n", m.ticks)
	s += fmt.Sprintf("Duration:       %s\n", duration.Round(time.Second))
	s += fmt.Sprintf("Matches/Sec:    %.2f\n", matchesPerSec)
	s += fmt.Sprintf("Ticks/Sec:      %.2f\n\n", ticksPerSec)

	s += "Recent Matches:\n"
	for _, r := range m.recentMatches {
		s += r + "\n"
	}

	s += "\nPress q to quit.\n"
	return s
}

func main() {
	matches := flag.Int("matches", 0, "Stop after this many matches (0 = run until interrupted)")
	workers := flag.Int("workers", 4, "Number of concurrent matches")
	seed := flag.Int64("seed", 1, "Base spawn seed; match n uses seed+n")
	depth := flag.Int("depth", engine.DefaultConfig().SearchDepth, "Search depth for both engines")
	budget := flag.Duration("budget", engine.DefaultConfig().TimeBudget, "Per-move time budget for both engines")
	maxTicks := flag.Int("max-ticks", arena.DefaultMaxTicks, "Tick cap per match")
	listen := flag.String("listen", "", "If set, serve live match frames over websocket at this address (path /ws)")
	noTUI := flag.Bool("no-tui", false, "Log match results with slog instead of the dashboard")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := slog.New(logging.NewPrettyHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	engCfg := engine.DefaultConfig()
	engCfg.SearchDepth = *depth
	engCfg.TimeBudget = *budget

	var hub *arena.Hub
	var onTick func(arena.Frame)
	if *listen != "" {
		hub = arena.NewHub(logger)
		defer hub.Close()
		mux := http.NewServeMux()
		mux.HandleFunc("/ws", hub.Handler())
		go func() {
			logger.Info("serving match frames", "addr", *listen)
			if err := http.ListenAndServe(*listen, mux); err != nil {
				logger.Error("frame server stopped", "err", err)
			}
		}()
		onTick = func(f arena.Frame) {
			totalTicks.Add(1)
			hub.Broadcast(f)
		}
	} else {
		onTick = func(arena.Frame) {
			totalTicks.Add(1)
		}
	}

	updates := make(chan MatchUpdate, *workers)
	var matchSeq atomic.Int64

	var workerWG sync.WaitGroup
	for i := 0; i < *workers; i++ {
		workerWG.Add(1)
		go func(workerID int) {
			defer workerWG.Done()
			for {
				select {
				case <-ctx.Done():
					return
				default:
				}

				n := matchSeq.Add(1)
				if *matches > 0 && n > int64(*matches) {
					cancel()
					return
				}

				opts := arena.Options{
					Game:     game.DefaultConfig(),
					EngineA:  engCfg,
					EngineB:  engCfg,
					Seed:     *seed + n,
					MaxTicks: *maxTicks,
					OnTick:   onTick,
				}
				res, err := arena.PlayMatch(ctx, opts)
				if err != nil {
					if ctx.Err() == nil {
						logger.Error("match aborted", "worker", workerID, "err", err)
					}
					continue
				}
				totalMatches.Add(1)
				if *matches > 0 && totalMatches.Load() >= int64(*matches) {
					cancel()
				}

				// Avoid blocking shutdown if the UI loop stops consuming.
				select {
				case updates <- MatchUpdate{WorkerID: workerID, Result: *res}:
				default:
				}
			}
		}(i)
	}

	if *noTUI {
		runPlain(ctx, logger, updates, &workerWG)
		return
	}

	p := tea.NewProgram(initialModel(updates), tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	if _, err := p.Run(); err != nil {
		logger.Error("dashboard failed", "err", err)
	}
	cancel()
	workerWG.Wait()
}

// runPlain is the headless loop used with -no-tui: per-match result logs
// plus a one-second stats ticker.
func runPlain(ctx context.Context, logger *slog.Logger, updates chan MatchUpdate, workerWG *sync.WaitGroup) {
	startTime := time.Now()
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutdown requested; waiting for running matches")
			workerWG.Wait()
			logger.Info("shutdown complete", "matches", totalMatches.Load(), "ticks", totalTicks.Load())
			return
		case u := <-updates:
			logger.Info("match finished",
				"worker", u.WorkerID,
				"match_id", u.Result.ID,
				"winner", string(u.Result.Winner),
				"score_a", u.Result.ScoreA,
				"score_b", u.Result.ScoreB,
				"ticks", u.Result.Ticks,
			)
		case <-ticker.C:
			duration := time.Since(startTime)
			ticks := totalTicks.Load()
			logger.Info("stats",
				"matches", totalMatches.Load(),
				"ticks_per_sec", float64(ticks)/duration.Seconds(),
			)
		}
	}
}
