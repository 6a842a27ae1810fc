// Command arena runs batches of games against a fixed opponent lineup and
// reports the win rate with a one-sided confidence bound, so two tuning
// files can be compared without eyeballing individual games.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	gormrepo "github.com/p-rivero/EDA-ThePurge2020/internal/adapter/repo/gorm"
	"github.com/p-rivero/EDA-ThePurge2020/internal/app/ports"
)

type options struct {
	games    int
	workers  int
	seed     int64
	engine   string
	player   string
	opponent string
	mode     string
	dsn      string
}

type result struct {
	seed   int64
	won    bool
	output string
	err    error
}

func main() {
	var opts options
	flag.IntVar(&opts.games, "n", 100, "number of games to run")
	flag.IntVar(&opts.workers, "j", 4, "games run in parallel")
	flag.Int64Var(&opts.seed, "seed", time.Now().UnixNano()%1_000_000, "seed of the first game")
	flag.StringVar(&opts.engine, "game", "./Game", "path to the game engine binary")
	flag.StringVar(&opts.player, "player", "Eldar", "name of the player under test")
	flag.StringVar(&opts.opponent, "opponent", "Dummy", "opponent filling the other seats")
	flag.StringVar(&opts.mode, "mode", "1v3", "seating: 1v3 (null 25%) or 2v2 (null 50%)")
	flag.StringVar(&opts.dsn, "dsn", os.Getenv("PURGE_DB_DSN"), "postgres DSN to persist results (optional)")
	flag.Parse()

	if opts.games <= 0 {
		log.Fatal("need at least one game")
	}
	if opts.mode != "1v3" && opts.mode != "2v2" {
		log.Fatalf("unsupported mode %q, want 1v3 or 2v2", opts.mode)
	}
	if opts.workers <= 0 {
		opts.workers = 1
	}

	repo, err := openRepo(opts.dsn)
	if err != nil {
		log.Fatalf("open match repo: %v", err)
	}

	results := runBatch(context.Background(), opts)

	wins, failures := 0, 0
	for _, r := range results {
		switch {
		case r.err != nil:
			failures++
			log.Printf("seed %d: %v", r.seed, r.err)
		case r.won:
			wins++
		}
		if repo != nil && r.err == nil {
			rec := ports.MatchRecord{
				Seed:       r.seed,
				Player:     opts.player,
				Opponent:   opts.opponent,
				Mode:       opts.mode,
				Won:        r.won,
				Output:     r.output,
				FinishedAt: time.Now().UTC(),
			}
			if err := repo.SaveMatch(context.Background(), rec); err != nil {
				log.Printf("seed %d: save match: %v", r.seed, err)
			}
		}
	}

	played := len(results) - failures
	if played == 0 {
		log.Fatal("no game finished")
	}
	rate := float64(wins) / float64(played)
	null := nullWinRate(opts.mode)
	fmt.Printf("%s vs %s (%s): %d/%d wins (%.1f%%)\n",
		opts.player, opts.opponent, opts.mode, wins, played, 100*rate)
	fmt.Printf("expected (%.0f%%): %.1f\n", 100*null, null*float64(played))
	fmt.Printf("critical point (better with 95%% confidence): %.1f\n", criticalPoint(null, played))
	fmt.Printf("win rate > %.1f%% with 95%% confidence\n", 100*winLowerBound(wins, played))
}

// nullWinRate is the win rate of a player no better than its opponents:
// one seat in four for 1v3, two in four for 2v2.
func nullWinRate(mode string) float64 {
	if mode == "2v2" {
		return 0.5
	}
	return 0.25
}

// criticalPoint is the win count above which the player beats the null
// baseline with 95% confidence, by normal approximation.
func criticalPoint(null float64, played int) float64 {
	if played == 0 {
		return 0
	}
	se := math.Sqrt(null * (1 - null) / float64(played))
	return (null + 1.644854*se) * float64(played)
}

func openRepo(dsn string) (*gormrepo.MatchRepo, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, nil
	}
	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		return nil, err
	}
	repo := gormrepo.NewMatchRepo(db)
	if err := repo.Migrate(); err != nil {
		return nil, err
	}
	return &repo, nil
}

func runBatch(ctx context.Context, opts options) []result {
	seeds := make(chan int64)
	out := make(chan result)

	var wg sync.WaitGroup
	for w := 0; w < opts.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range seeds {
				out <- playOne(ctx, opts, seed)
			}
		}()
	}
	go func() {
		for i := 0; i < opts.games; i++ {
			seeds <- opts.seed + int64(i)
		}
		close(seeds)
		wg.Wait()
		close(out)
	}()

	results := make([]result, 0, opts.games)
	for r := range out {
		results = append(results, r)
	}
	return results
}

// seats fills the four engine seats for the given mode: the player under
// test takes one seat in 1v3 and the first two in 2v2, the opponent the
// rest.
func seats(mode, player, opponent string) []string {
	if mode == "2v2" {
		return []string{player, player, opponent, opponent}
	}
	return []string{player, opponent, opponent, opponent}
}

// playOne runs one engine game. The engine announces winners on stderr; a
// seat wins when its name is followed by "got top score".
func playOne(ctx context.Context, opts options, seed int64) result {
	args := append(seats(opts.mode, opts.player, opts.opponent),
		"-s", fmt.Sprint(seed),
		"-o", os.DevNull,
	)
	cmd := exec.CommandContext(ctx, opts.engine, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	output := stderr.String()
	if err != nil {
		return result{seed: seed, output: output, err: fmt.Errorf("engine: %w", err)}
	}
	return result{seed: seed, won: playerWon(output, opts.player), output: output}
}

func playerWon(output, player string) bool {
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, "got top score") && strings.Contains(line, player) {
			return true
		}
	}
	return false
}

// winLowerBound is the lower end of the one-sided 95% confidence interval
// for the true win rate, by normal approximation.
func winLowerBound(wins, played int) float64 {
	if played == 0 {
		return 0
	}
	p := float64(wins) / float64(played)
	bound := p - 1.644854*math.Sqrt(p*(1-p)/float64(played))
	if bound < 0 {
		return 0
	}
	return bound
}
