// Command boardctl inspects square boards and runs the slide-and-merge line
// mechanic from the command line.
//
// It supports three subcommands:
//  1. "merge" – compacts one line of values, e.g. `boardctl merge 2 2 . 2`
//  2. "slide" – slides a board given as repeated --row flags towards --direction
//  3. "neighbours" – lists the neighbours of --cell on an empty --width board
//
// Flags fall back to the BOARD_WIDTH, BOARD_DIRECTION and BOARDCTL_DEBUG
// environment variables, which may also be provided through a .env file.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/mcp-training/squareboard/game/board"
	"github.com/wricardo/mcp-training/squareboard/game/layout"
	"github.com/wricardo/mcp-training/squareboard/game/slide"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "boardctl"
)

var log = logrus.New()

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("Error loading .env file: %v", err)
		}
	} else {
		log.Debug("Loaded environment variables from .env file")
	}

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// newApp builds the command tree. Output goes to the root command's Writer.
func newApp() *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "inspect square boards and slide-and-merge lines",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				Sources: cli.EnvVars("BOARDCTL_DEBUG"),
			},
		},
		Commands: []*cli.Command{
			mergeCommand(),
			slideCommand(),
			neighboursCommand(),
		},
	}
}

func mergeCommand() *cli.Command {
	return &cli.Command{
		Name:      "merge",
		Usage:     "compact one line of values, merging equal neighbours",
		ArgsUsage: "VALUE... (use . for an empty cell)",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			configureLogging(cmd)

			if cmd.Args().Len() == 0 {
				return fmt.Errorf("merge needs at least one value")
			}
			values, err := layout.ParseLine(strings.Join(cmd.Args().Slice(), " "))
			if err != nil {
				return err
			}

			merged := slide.MoveAndMergeEqual(values, double)
			log.WithFields(logrus.Fields{
				"in":  len(values),
				"out": len(merged),
			}).Debug("merged line")

			out := make([]*int, len(merged))
			for k := range merged {
				out[k] = &merged[k]
			}
			_, err = fmt.Fprintln(cmd.Root().Writer, layout.FormatLine(out))
			return err
		},
	}
}

func slideCommand() *cli.Command {
	return &cli.Command{
		Name:  "slide",
		Usage: "slide every line of a board towards a direction",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "row",
				Aliases:  []string{"r"},
				Usage:    "board row, top to bottom, e.g. --row \"2 . 2 4\"",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "direction",
				Aliases: []string{"d"},
				Usage:   "up, down, left or right",
				Value:   "left",
				Sources: cli.EnvVars("BOARD_DIRECTION"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			configureLogging(cmd)

			direction, err := board.ParseDirection(cmd.String("direction"))
			if err != nil {
				return err
			}
			vb, err := layout.Parse(cmd.StringSlice("row"))
			if err != nil {
				return fmt.Errorf("failed to parse board: %w", err)
			}

			changed, err := slide.Move(vb, direction, double)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"width":     vb.Width(),
				"direction": direction,
				"changed":   changed,
			}).Debug("slid board")
			if !changed {
				log.Infof("Nothing moves %s", direction)
			}

			_, err = fmt.Fprint(cmd.Root().Writer, layout.Format(vb))
			return err
		},
	}
}

func neighboursCommand() *cli.Command {
	return &cli.Command{
		Name:  "neighbours",
		Usage: "list the neighbours of a cell",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "width",
				Aliases: []string{"w"},
				Usage:   "board width",
				Value:   layout.DefaultWidth,
				Sources: cli.EnvVars("BOARD_WIDTH"),
			},
			&cli.StringFlag{
				Name:     "cell",
				Aliases:  []string{"c"},
				Usage:    "1-based coordinates as i,j",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			configureLogging(cmd)

			width := int(cmd.Int("width"))
			if err := layout.ValidateWidth(width); err != nil {
				return err
			}
			b, err := board.NewSquareBoard(width)
			if err != nil {
				return err
			}

			i, j, err := parseCell(cmd.String("cell"))
			if err != nil {
				return err
			}
			cell, ok := b.LookupCell(i, j)
			if !ok {
				return fmt.Errorf("cell (%d, %d) is outside a board of width %d", i, j, width)
			}
			log.WithFields(logrus.Fields{"width": width, "cell": cell}).Debug("looking up neighbours")

			w := cmd.Root().Writer
			for _, d := range board.Directions() {
				n, ok := b.Neighbour(cell, d)
				if !ok {
					fmt.Fprintf(w, "%s: -\n", d)
					continue
				}
				fmt.Fprintf(w, "%s: %s\n", d, n)
			}
			return nil
		},
	}
}

// configureLogging applies the root --debug flag.
func configureLogging(cmd *cli.Command) {
	if cmd.Root().Bool("debug") {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
}

// parseCell reads "i,j" into coordinates.
func parseCell(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("cell must look like i,j, got %q", s)
	}
	i, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row in cell %q: %w", s, err)
	}
	j, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column in cell %q: %w", s, err)
	}
	return i, j, nil
}

// double merges two equal tiles.
func double(v int) int {
	return 2 * v
}
