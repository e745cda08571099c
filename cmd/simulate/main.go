// Command simulate plays one or more matches between two squads and prints
// scorecards.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"github.com/xtding233/cricket-sim/internal/commentary"
	"github.com/xtding233/cricket-sim/internal/cricket"
	"github.com/xtding233/cricket-sim/internal/engine"
	"github.com/xtding233/cricket-sim/internal/stats"
	"github.com/xtding233/cricket-sim/internal/tables"
)

func main() {
	_ = godotenv.Load()
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "simulate:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	squadsPath := fs.String("squads", "configs/squads.yaml", "squads YAML file")
	home := fs.String("home", "", "home team ID")
	away := fs.String("away", "", "away team ID")
	format := fs.String("format", "T20", "match format")
	ground := fs.String("ground", "Riverside", "ground name")
	pitch := fs.String("pitch", "", "pitch override")
	group := fs.String("group", "", "competition stage, e.g. Final")
	seed := fs.Uint64("seed", 0, "random seed; 0 uses the system source")
	matches := fs.Int("matches", 1, "number of matches to play")
	tablesDir := fs.String("tables", os.Getenv("CRICKET_TABLES_DIR"), "tables directory; empty uses built-in defaults")
	competition := fs.String("competition", os.Getenv("CRICKET_COMPETITION"), "competition override file")
	verbose := fs.Bool("v", false, "print ball-by-ball commentary")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *matches < 1 {
		return fmt.Errorf("-matches must be >= 1")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	rules, err := tables.NewLoader(*tablesDir).Load(*competition)
	if err != nil {
		return err
	}
	teams, err := tables.LoadSquads(*squadsPath)
	if err != nil {
		return err
	}
	h, a, err := pickTeams(teams, *home, *away)
	if err != nil {
		return err
	}

	fixtures := make([]engine.Fixture, *matches)
	for i := range fixtures {
		fixtures[i] = engine.Fixture{
			MatchNumber: i + 1,
			Format:      *format,
			Ground:      *ground,
			Pitch:       *pitch,
			Home:        h,
			Away:        a,
			Group:       *group,
			AutoTactics: true,
		}
	}

	opts := []engine.Option{engine.WithLogger(logger)}
	if *verbose {
		opts = append(opts,
			engine.WithCommentator(commentary.New(nil)),
			engine.WithObserver(func(ev engine.BallEvent) { fmt.Fprintf(out, "%6s  %s\n", ev.Overs, ev.Commentary) }))
	}

	var results []cricket.MatchResult
	if *seed == 0 || *verbose {
		// sequential so commentary prints in order
		var rng engine.RandomSource
		if *seed != 0 {
			rng = engine.NewSeededRNG(*seed)
		}
		sim := engine.NewSimulator(rules, rng, opts...)
		for _, f := range fixtures {
			res, err := sim.SimulateMatch(f)
			if err != nil {
				return err
			}
			results = append(results, res)
		}
	} else {
		results, err = engine.SimulateBatch(context.Background(), rules, fixtures, *seed, 0, opts...)
		if err != nil {
			return err
		}
	}

	names := map[string]string{h.ID: h.Name, a.ID: a.Name}
	book := stats.Book{}
	for _, res := range results {
		printScorecard(out, res, names)
		book = stats.Apply(res, *format, book)
	}
	if len(results) > 1 {
		printLeaders(out, book, *format)
	}
	return nil
}

func pickTeams(teams map[string]cricket.Team, home, away string) (cricket.Team, cricket.Team, error) {
	if home == "" || away == "" {
		ids := make([]string, 0, len(teams))
		for id := range teams {
			ids = append(ids, id)
		}
		return cricket.Team{}, cricket.Team{}, fmt.Errorf("-home and -away are required (squads: %s)", strings.Join(ids, ", "))
	}
	h, ok := teams[home]
	if !ok {
		return cricket.Team{}, cricket.Team{}, fmt.Errorf("%w: no squad %q", cricket.ErrInvalidTeam, home)
	}
	a, ok := teams[away]
	if !ok {
		return cricket.Team{}, cricket.Team{}, fmt.Errorf("%w: no squad %q", cricket.ErrInvalidTeam, away)
	}
	return h, a, nil
}

func printScorecard(out io.Writer, res cricket.MatchResult, names map[string]string) {
	fmt.Fprintf(out, "\nMatch %d: %s at %s (%s pitch)\n", res.MatchNumber, res.Format, res.Ground, res.Pitch)
	if res.Toss != nil {
		fmt.Fprintf(out, "%s won the toss and chose to %s\n", names[res.Toss.WinnerID], res.Toss.Decision)
	}
	for _, in := range res.Innings {
		fmt.Fprintf(out, "\nInnings %d: %s %s (%s ov, RR %.2f)\n", in.Number, names[in.TeamID], in.Scoreline(), in.Overs(), in.RunRate())
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "Batter\t\tR\tB\t4s\t6s\tSR")
		for _, b := range in.Batting {
			how := "not out"
			if b.Out {
				how = b.Dismissal
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%.1f\n", b.Name, how, b.Runs, b.Balls, b.Fours, b.Sixes, b.StrikeRate())
		}
		fmt.Fprintln(tw, "\t\t\t\t\t\t")
		fmt.Fprintln(tw, "Bowler\tO\tM\tR\tW\tEcon\t")
		for _, b := range in.Bowling {
			if b.Balls == 0 {
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%.2f\t\n", b.Name, b.Overs(), b.Maidens, b.Runs, b.Wickets, b.Economy())
		}
		tw.Flush()
		if len(in.FallOfWickets) > 0 {
			fow := make([]string, len(in.FallOfWickets))
			for i, f := range in.FallOfWickets {
				fow[i] = fmt.Sprintf("%d-%d (%s, %s)", f.Wicket, f.Score, f.Batter, f.Over)
			}
			fmt.Fprintf(out, "FoW: %s\n", strings.Join(fow, ", "))
		}
	}
	fmt.Fprintf(out, "\n%s\n", res.Summary)
	if m := res.ManOfTheMatch; m != nil {
		fmt.Fprintf(out, "Player of the match: %s (%s) %s\n", m.Name, names[m.TeamID], m.Figures)
	}
}

func printLeaders(out io.Writer, book stats.Book, format string) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\nMost runs\tInn\tRuns\tHS\tAvg\tSR")
	for _, c := range stats.Leaders(book, format, stats.MetricRuns, 5) {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.2f\t%.1f\n", c.Name, c.Innings, c.Runs, c.HighScore, c.Average(), c.StrikeRate())
	}
	fmt.Fprintln(tw, "\nMost wickets\tInn\tWkts\tBest\tAvg\tEcon")
	for _, c := range stats.Leaders(book, format, stats.MetricWickets, 5) {
		best := "-"
		if c.Best != nil {
			best = c.Best.String()
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%.2f\t%.2f\n", c.Name, c.BowlingInnings, c.Wickets, best, c.BowlingAverage(), c.Economy())
	}
	tw.Flush()
}
