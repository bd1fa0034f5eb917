package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/reidhoch/fastbreak"
	"github.com/reidhoch/fastbreak/endpoints"
)

var (
	configPath string
	verbose    bool
	season     string
	gameDate   string
	timeout    time.Duration
	retries    int
	cacheTTL   time.Duration
)

// fileConfig mirrors the optional ~/.fastbreak.yaml settings. Flags win
// over file values.
type fileConfig struct {
	Timeout    string `yaml:"timeout"`
	MaxRetries *int   `yaml:"max_retries"`
	CacheTTL   string `yaml:"cache_ttl"`
	UserAgent  string `yaml:"user_agent"`
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fastbreak",
	Short: "NBA Stats API client",
	Long: `fastbreak queries the NBA Stats API: daily scoreboards, standings,
game logs and player information.

Examples:
  fastbreak scoreboard                     # Today's games
  fastbreak scoreboard -d 01/15/2025       # A specific date
  fastbreak standings                      # Current season standings
  fastbreak standings -s 2023-24           # A past season
  fastbreak gamelog -s 2024-25             # League-wide game log
  fastbreak player 1628369                 # Player biography
  fastbreak teams                          # The franchise table`,
	Version:       fastbreak.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.fastbreak.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log request lifecycle events")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "per-request HTTP timeout")
	rootCmd.PersistentFlags().IntVar(&retries, "retries", 3, "retry budget for transient failures")
	rootCmd.PersistentFlags().DurationVar(&cacheTTL, "cache-ttl", 5*time.Minute, "result cache TTL, 0 disables")

	scoreboardCmd.Flags().StringVarP(&gameDate, "date", "d", "", "game date in MM/DD/YYYY (default today)")
	standingsCmd.Flags().StringVarP(&season, "season", "s", "", "season in YYYY-YY (default current)")
	gamelogCmd.Flags().StringVarP(&season, "season", "s", "", "season in YYYY-YY (default current)")

	rootCmd.AddCommand(scoreboardCmd, standingsCmd, gamelogCmd, playerCmd, teamsCmd)
}

// newClient assembles a client from config file and flags. The returned
// cleanup func releases the connection pool and flushes logs.
func newClient(cmd *cobra.Command) (*fastbreak.Client, func(), error) {
	options := []fastbreak.Option{
		fastbreak.WithTimeout(timeout),
		fastbreak.WithMaxRetries(retries),
	}
	if cacheTTL > 0 {
		options = append(options, fastbreak.WithCacheTTL(cacheTTL))
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if cfg != nil {
		if cfg.Timeout != "" && !cmd.Flags().Changed("timeout") {
			d, err := time.ParseDuration(cfg.Timeout)
			if err != nil {
				return nil, nil, fmt.Errorf("config timeout: %w", err)
			}
			options = append(options, fastbreak.WithTimeout(d))
		}
		if cfg.MaxRetries != nil && !cmd.Flags().Changed("retries") {
			options = append(options, fastbreak.WithMaxRetries(*cfg.MaxRetries))
		}
		if cfg.CacheTTL != "" && !cmd.Flags().Changed("cache-ttl") {
			d, err := time.ParseDuration(cfg.CacheTTL)
			if err != nil {
				return nil, nil, fmt.Errorf("config cache_ttl: %w", err)
			}
			options = append(options, fastbreak.WithCacheTTL(d))
		}
		if cfg.UserAgent != "" {
			options = append(options, fastbreak.WithUserAgent(cfg.UserAgent))
		}
	}

	flush := func() {}
	if verbose {
		zl, err := zap.NewDevelopment()
		if err != nil {
			return nil, nil, fmt.Errorf("building logger: %w", err)
		}
		options = append(options, fastbreak.WithLogger(fastbreak.NewZapLogger(zl)))
		flush = func() { _ = zl.Sync() }
	}

	client := fastbreak.New(options...)
	if err := client.ValidationError(); err != nil {
		flush()
		return nil, nil, err
	}
	cleanup := func() {
		client.Close()
		flush()
	}
	return client, cleanup, nil
}

func loadConfig() (*fileConfig, error) {
	path := configPath
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil
		}
		path = filepath.Join(home, ".fastbreak.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

var scoreboardCmd = &cobra.Command{
	Use:   "scoreboard",
	Short: "Show the scoreboard for a date",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ep := &endpoints.ScoreboardV2{GameDate: gameDate}
		if err := ep.Validate(); err != nil {
			return err
		}

		client, cleanup, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		board, err := fastbreak.Get(cmd.Context(), client, ep)
		if err != nil {
			return err
		}
		if len(board.Games) == 0 {
			fmt.Println("No games scheduled.")
			return nil
		}

		points := make(map[string]map[int]int)
		for _, line := range board.LineScores {
			if points[line.GameID] == nil {
				points[line.GameID] = make(map[int]int)
			}
			points[line.GameID][line.TeamID] = line.PTS
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "MATCHUP\tSCORE\tSTATUS")
		for _, game := range board.Games {
			home := teamLabel(game.HomeTeamID)
			away := teamLabel(game.VisitorTeamID)
			score := fmt.Sprintf("%d-%d", points[game.GameID][game.VisitorTeamID], points[game.GameID][game.HomeTeamID])
			fmt.Fprintf(w, "%s @ %s\t%s\t%s\n", away, home, score, game.GameStatusText)
		}
		return w.Flush()
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show conference standings for a season",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if season == "" {
			season = fastbreak.CurrentSeason()
		}
		ep := &endpoints.LeagueStandingsV3{Season: season}
		if err := ep.Validate(); err != nil {
			return err
		}

		client, cleanup, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		standings, err := fastbreak.Get(cmd.Context(), client, ep)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "RANK\tTEAM\tW\tL\tPCT\tGB\tSTREAK")
		for _, conference := range []string{"East", "West"} {
			fmt.Fprintf(w, "%s\t\t\t\t\t\t\n", conference)
			for _, row := range standings.Rows {
				if row.Conference != conference {
					continue
				}
				fmt.Fprintf(w, "%d\t%s %s\t%d\t%d\t%.3f\t%.1f\t%s\n",
					row.PlayoffRank, row.TeamCity, row.TeamName,
					row.Wins, row.Losses, row.WinPct, row.GamesBack, row.Streak)
			}
		}
		return w.Flush()
	},
}

var gamelogCmd = &cobra.Command{
	Use:   "gamelog",
	Short: "Show the league-wide game log for a season",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if season == "" {
			season = fastbreak.CurrentSeason()
		}
		ep := &endpoints.LeagueGameLog{Season: season, Direction: "DESC"}
		if err := ep.Validate(); err != nil {
			return err
		}

		client, cleanup, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		log, err := fastbreak.Get(cmd.Context(), client, ep)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tMATCHUP\tW/L\tPTS\tFG\tREB\tAST\tTOV")
		for _, entry := range log.Entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d/%d\t%d\t%d\t%d\n",
				entry.GameDate, entry.Matchup, entry.WinLoss,
				entry.PTS, entry.FGM, entry.FGA, entry.REB, entry.AST, entry.TOV)
		}
		return w.Flush()
	},
}

var playerCmd = &cobra.Command{
	Use:   "player <id>",
	Short: "Show biographical information for a player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("player ID must be numeric, got %q", args[0])
		}
		ep := &endpoints.CommonPlayerInfo{PlayerID: id}
		if err := ep.Validate(); err != nil {
			return err
		}

		client, cleanup, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		info, err := fastbreak.Get(cmd.Context(), client, ep)
		if err != nil {
			return err
		}

		fmt.Printf("%s  #%s  %s\n", info.DisplayName, info.Jersey, info.Position)
		fmt.Printf("%s %s (%s)\n", info.TeamCity, info.TeamName, info.TeamAbbrev)
		fmt.Printf("Height %s  Weight %s lb  Experience %d seasons\n", info.Height, info.Weight, info.SeasonExp)
		fmt.Printf("From %s, born %s\n", info.School, info.Birthdate)
		if info.DraftYear != "" {
			fmt.Printf("Draft: %s round %s pick %s\n", info.DraftYear, info.DraftRound, info.DraftNumber)
		}
		return nil
	},
}

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List the NBA franchise table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ABBR\tTEAM\tCONFERENCE\tDIVISION\tID")
		for _, conference := range []string{"East", "West"} {
			for _, team := range fastbreak.TeamsByConference(conference) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
					team.Abbreviation, team.FullName, team.Conference, team.Division, team.ID)
			}
		}
		return w.Flush()
	},
}

func teamLabel(id int) string {
	if team, ok := fastbreak.TeamByID(id); ok {
		return team.Abbreviation
	}
	return strconv.Itoa(id)
}
