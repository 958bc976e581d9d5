// canvas-cli is an example host for the client: it invokes the fetch
// operations and prints the rendered markdown, through glamour when stdout
// is a styled terminal.
package main

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	client "github.com/lmstools/canvas-client"
	"github.com/lmstools/canvas-client/render"
)

var (
	baseURL  string
	token    string
	useProxy bool
	proxyURL string
	debug    bool
	plain    bool
)

const requestTimeout = 15 * time.Second

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "canvas-cli",
		Short: "Fetch and display courses, assignments, events, todos and grades",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				_ = os.Setenv("CANVAS_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	env, err := client.ConfigFromEnv()
	if err != nil {
		log.Warn().Err(err).Msg("could not read CANVAS_* environment")
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&baseURL, "base-url", env.BaseURL, "Base URL of the Canvas instance")
	pf.StringVar(&token, "token", env.Token, "Access token")
	pf.BoolVar(&useProxy, "use-proxy", env.UseProxy, "Route requests through the proxy endpoint")
	pf.StringVar(&proxyURL, "proxy-url", env.ProxyURL, "Proxy endpoint the target URL is appended to")
	pf.BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")
	pf.BoolVar(&plain, "plain", false, "Print raw markdown without terminal styling")

	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newCoursesCmd())
	rootCmd.AddCommand(newAssignmentsCmd())
	rootCmd.AddCommand(newModulesCmd())
	rootCmd.AddCommand(newEventsCmd())
	rootCmd.AddCommand(newTodosCmd())
	rootCmd.AddCommand(newGradesCmd())
	rootCmd.AddCommand(newCheckCmd())

	return rootCmd
}

func newClient() (*client.Client, error) {
	return client.New(client.Config{
		BaseURL:  baseURL,
		Token:    token,
		UseProxy: useProxy,
		ProxyURL: proxyURL,
	})
}

// display writes md to the command's output, styled unless --plain.
func display(cmd *cobra.Command, md string) {
	if !plain {
		if styled, err := glamour.Render(md, "auto"); err == nil {
			cmd.Print(styled)
			return
		}
	}
	cmd.Print(md)
}

// runFetch wires the shared fetch-render-display flow of the listing
// subcommands.
func runFetch(cmd *cobra.Command, fetch func(context.Context, *client.Client) (any, error), format func(any) string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	payload, err := fetch(ctx, c)
	if err != nil {
		return err
	}
	display(cmd, format(payload))
	return nil
}

func newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the authenticated user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetUserProfile(ctx)
			}, render.Profile)
		},
	}
}

func newCoursesCmd() *cobra.Command {
	var enrollmentType, enrollmentState string
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetCourses(ctx, enrollmentType, enrollmentState)
			}, render.Courses)
		},
	}
	cmd.Flags().StringVar(&enrollmentType, "enrollment-type", "", "Filter by enrollment type (e.g. student)")
	cmd.Flags().StringVar(&enrollmentState, "enrollment-state", "", "Filter by enrollment state (e.g. active)")
	return cmd
}

func newAssignmentsCmd() *cobra.Command {
	var courseID string
	cmd := &cobra.Command{
		Use:   "assignments",
		Short: "List assignments of a course",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetCourseAssignments(ctx, courseID)
			}, render.Assignments)
		},
	}
	cmd.Flags().StringVar(&courseID, "course", "", "Course ID")
	_ = cmd.MarkFlagRequired("course")
	return cmd
}

func newModulesCmd() *cobra.Command {
	var courseID string
	cmd := &cobra.Command{
		Use:   "modules",
		Short: "List modules of a course",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetCourseModules(ctx, courseID)
			}, render.Modules)
		},
	}
	cmd.Flags().StringVar(&courseID, "course", "", "Course ID")
	_ = cmd.MarkFlagRequired("course")
	return cmd
}

func newEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List upcoming events",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetUpcomingEvents(ctx)
			}, render.Events)
		},
	}
}

func newTodosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "todos",
		Short: "List todo items",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetTodoItems(ctx)
			}, render.Todos)
		},
	}
}

func newGradesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grades",
		Short: "Show current grades for active courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetCourseGrades(ctx)
			}, render.Grades)
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify connectivity and credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			if c.TestConnection(ctx) {
				cmd.Println("connection ok")
			} else {
				cmd.Println("connection failed")
			}
			return nil
		},
	}
}
