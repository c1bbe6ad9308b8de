package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"psynara/internal/bootstrap"
	"psynara/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globalFlags struct {
	dataDir    string
	configFile string
	userID     string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "psynara",
		Short:         "Terminal mental-wellness companion",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.dataDir, "data", "", "data directory (default ~/.local/share/psynara)")
	root.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file (default <data>/config.yaml)")
	root.PersistentFlags().StringVar(&flags.userID, "user", "", "local profile id")

	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newSeedCmd(flags))
	root.AddCommand(newProfileCmd(flags))
	root.AddCommand(newStatsCmd(flags))
	root.AddCommand(newQuestionsCmd(flags))
	root.AddCommand(newAssessCmd(flags))
	root.AddCommand(newRecommendCmd(flags))
	root.AddCommand(newExerciseCmd(flags))
	root.AddCommand(newProgressCmd(flags))
	return root
}

// withApp builds the app for one command and closes it afterwards.
func withApp(flags *globalFlags, fn func(*bootstrap.App) error) error {
	cfg, err := config.Load(config.Options{DataDir: flags.dataDir, ConfigFile: flags.configFile, UserID: flags.userID})
	if err != nil {
		return err
	}
	app, err := bootstrap.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(app)
}

func newTUICmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the psynara terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(flags, bootstrap.RunTUI)
		},
	}
}

func newSeedCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the bundled questions, exercises and recommendations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				res, err := app.Seed(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "seeded questions=%d games=%d recommendations=%d\n", res.Questions, res.Games, res.Recommendations)
				return nil
			})
		},
	}
}

func newProfileCmd(flags *globalFlags) *cobra.Command {
	profile := &cobra.Command{Use: "profile", Short: "Local profile commands"}

	profile.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the local profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				p, err := app.ProfileCLI.Show(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id: %s\nname: %s\nmood: %s %s\nsince: %s\n", p.ID, p.Display, p.MoodEmoji, p.MoodLabel, p.CreatedAt.Format("2006-01-02"))
				return nil
			})
		},
	})

	profile.AddCommand(&cobra.Command{
		Use:   "rename <full name>",
		Short: "Change the profile name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				p, err := app.ProfileCLI.Rename(context.Background(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "name: %s\n", p.FullName)
				return nil
			})
		},
	})

	profile.AddCommand(&cobra.Command{
		Use:   "mood [mood]",
		Short: "Set today's mood, or list moods when none is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				ctx := context.Background()
				if len(args) == 0 {
					moods, err := app.ProfileCLI.Moods(ctx)
					if err != nil {
						return err
					}
					for _, m := range moods {
						_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s %s\n", m.ID, m.Emoji, m.Label)
					}
					return nil
				}
				p, err := app.ProfileCLI.SetMood(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "mood: %s %s\n", p.MoodEmoji, p.MoodLabel)
				return nil
			})
		},
	})
	return profile
}

func newStatsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show activity stats and the tip of the day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				home, err := app.ProfileCLI.Home(context.Background())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(out, "hello %s (%s %s)\n", home.Profile.Display, home.Profile.MoodEmoji, home.Profile.MoodLabel)
				_, _ = fmt.Fprintf(out, "completed exercises: %d\nanswered questions: %d\ndays active: %d\n",
					home.Stats.CompletedGames, home.Stats.AnsweredQuestions, home.Stats.DaysActive)
				_, _ = fmt.Fprintf(out, "tip: %s\n", home.Tip)
				return nil
			})
		},
	}
}

func newQuestionsCmd(flags *globalFlags) *cobra.Command {
	questions := &cobra.Command{Use: "questions", Short: "Assessment question bank"}
	questions.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List assessment questions in order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				items, err := app.AssessmentCLI.ListQuestions(context.Background())
				if err != nil {
					return err
				}
				if len(items) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no questions; run `psynara seed`")
					return nil
				}
				for _, q := range items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t[%d-%d]\t%s\n", q.Order, q.Category, q.Min, q.Max, q.Prompt)
					if len(q.Labels) > 0 {
						_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\t%s\n", strings.Join(q.Labels, " / "))
					}
				}
				return nil
			})
		},
	})
	return questions
}

func newAssessCmd(flags *globalFlags) *cobra.Command {
	var answers []string
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Submit a full self-assessment and print category scores",
		Example: "  psynara assess --answer 1=4 --answer 2=3 ...\n" +
			"  keys are question order numbers (see `psynara questions list`) or ids",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				result, err := app.AssessmentCLI.Submit(context.Background(), answers)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, s := range result.Scores {
					_, _ = fmt.Fprintf(out, "%s\t%d/%d\t%.0f%%\t%s\n", s.Category, s.Sum, s.Max, s.Percent, s.Band)
				}
				_, _ = fmt.Fprintf(out, "overall\t%.0f%%\n", result.Overall)
				return nil
			})
		},
	}
	cmd.Flags().StringArrayVar(&answers, "answer", nil, "answer as <question>=<value>, repeatable")
	return cmd
}

func newRecommendCmd(flags *globalFlags) *cobra.Command {
	recommend := &cobra.Command{Use: "recommend", Short: "Wellbeing recommendations"}

	var category string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recommendations, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				items, err := app.RecommendationCLI.List(context.Background(), category)
				if err != nil {
					return err
				}
				if len(items) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no recommendations")
					return nil
				}
				for _, r := range items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s %s\t%s\t%s\n", r.ID, r.Glyph, r.Title, r.CategoryLabel, r.Description)
				}
				return nil
			})
		},
	}
	listCmd.Flags().StringVar(&category, "category", "all", "all|ansiedad|estres|autoestima|bienestar|mindfulness")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a recommendation as markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				r, err := app.RecommendationCLI.Show(context.Background(), args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s [%s]\n\n%s\n", r.Glyph, r.Title, r.CategoryLabel, r.Content)
				return nil
			})
		},
	}

	recommend.AddCommand(listCmd, showCmd)
	return recommend
}

func newExerciseCmd(flags *globalFlags) *cobra.Command {
	exercise := &cobra.Command{Use: "exercise", Short: "Guided exercise catalog"}

	exercise.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List exercises with completion state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				games, err := app.CatalogCLI.ListGames(context.Background())
				if err != nil {
					return err
				}
				for _, g := range games {
					mark := " "
					if g.Completed {
						mark = "✓"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\t%s\t%s\t%s\n", mark, g.ID, g.Name, g.Category, g.DifficultyLabel, g.Kind)
				}
				return nil
			})
		},
	})

	exercise.AddCommand(&cobra.Command{
		Use:   "show <id|name>",
		Short: "Show an exercise and its instructions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				g, err := app.CatalogCLI.FindGame(context.Background(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id: %s\nname: %s\ncategory: %s\ndifficulty: %s\nkind: %s\ncompleted: %t\n\n%s\n\n%s\n",
					g.ID, g.Name, g.Category, g.DifficultyLabel, g.Kind, g.Completed, g.Description, g.Instructions)
				return nil
			})
		},
	})

	exercise.AddCommand(&cobra.Command{
		Use:   "complete <id|name>",
		Short: "Mark a non-interactive exercise as completed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				ctx := context.Background()
				g, err := app.CatalogCLI.FindGame(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}
				out, err := app.SessionCLI.CompleteManually(ctx, g.ID)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "completed %s score=%d at=%s\n", out.GameName, out.Score, out.CompletedAt.Format(time.RFC3339))
				return nil
			})
		},
	})
	return exercise
}

func newProgressCmd(flags *globalFlags) *cobra.Command {
	progress := &cobra.Command{Use: "progress", Short: "Exercise history"}
	progress.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List completed exercises, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				items, err := app.CatalogCLI.ListProgress(context.Background())
				if err != nil {
					return err
				}
				if len(items) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no completed exercises")
					return nil
				}
				for _, p := range items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tscore=%d\n", p.CompletedAt.Format(time.RFC3339), p.GameName, p.Score)
				}
				return nil
			})
		},
	})
	return progress
}
