package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/render"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

const playHelp = "Enter a cell number (0-8), r to start over or q to quit."

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal, two players taking turns at one keyboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return play(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// play runs one terminal session until q or end of input.
func play(in io.Reader, out io.Writer) error {
	engine := tictactoe.NewEngine()
	scanner := bufio.NewScanner(in)

	if _, err := fmt.Fprintf(out, "%s\n\n%s> ", playHelp, render.Screen(engine.State())); err != nil {
		return fmt.Errorf("failed to write screen: %w", err)
	}

	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())

		var notice string

		switch input {
		case "q":
			return nil
		case "r":
			engine.Reset()
		case "":
		default:
			cell, err := strconv.Atoi(input)
			if err != nil {
				notice = playHelp
				break
			}

			if _, err = engine.TryMove(cell); err != nil {
				notice = ignoredNotice(err)
			}
		}

		screen := render.Screen(engine.State())
		if notice != "" {
			screen = notice + "\n" + screen
		}

		if _, err := fmt.Fprintf(out, "\n%s> ", screen); err != nil {
			return fmt.Errorf("failed to write screen: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

func ignoredNotice(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That cell is taken."
	case errors.Is(err, apperror.ErrGameFinished):
		return "The game is over. Enter r to play again."
	default:
		return playHelp
	}
}
