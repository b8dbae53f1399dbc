// Command play is a small terminal client for the game server. It creates a
// session over the REST API (or attaches to an existing one) and plays
// interactively with w/a/s/d keys.
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/mcp-training/game2048/game/engine"
	"github.com/wricardo/mcp-training/game2048/game/service"
)

func main() {
	cmd := &cli.Command{
		Name:  "play",
		Usage: "play 2048 against a running game server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "server",
				Value: "http://localhost:8080",
				Usage: "base URL of the game server",
			},
			&cli.StringFlag{
				Name:  "config",
				Value: "classic",
				Usage: "configuration to start a new session with",
			},
			&cli.StringFlag{
				Name:  "session",
				Usage: "attach to an existing session instead of creating one",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client := newClient(cmd.String("server"))

			sessionID := cmd.String("session")
			if sessionID == "" {
				session, err := client.createSession(ctx, cmd.String("config"))
				if err != nil {
					return fmt.Errorf("failed to create session: %w", err)
				}
				sessionID = session.ID
				fmt.Printf("Created session %s (config: %s)\n", session.ID, session.ConfigName)
			}

			return playLoop(ctx, client, sessionID, os.Stdin, os.Stdout)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playLoop runs the interactive read-render-move cycle until the game ends,
// input runs out, or the player quits.
func playLoop(ctx context.Context, client *client, sessionID string, r io.Reader, w io.Writer) error {
	state, err := client.getState(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to fetch game state: %w", err)
	}

	fmt.Fprintln(w, "=== 2048 ===")
	fmt.Fprintln(w, "Controls: w=up, a=left, s=down, d=right, q=quit")
	fmt.Fprintln(w)

	reader := bufio.NewReader(r)
	for {
		fmt.Fprint(w, renderBoard(state.Grid))
		fmt.Fprintf(w, "Score: %d | Highscore: %d\n", state.Score, state.Highscore)

		if state.GameOver {
			fmt.Fprintln(w, "Game Over!")
			return nil
		}

		fmt.Fprint(w, "Move: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				fmt.Fprintln(w)
				return nil
			}
			return err
		}

		input = strings.TrimSpace(strings.ToLower(input))
		if input == "q" {
			fmt.Fprintln(w, "Quit.")
			return nil
		}

		direction, ok := parseKey(input)
		if !ok {
			fmt.Fprintln(w, "Invalid input. Use w/a/s/d or q to quit.")
			continue
		}

		result, err := client.move(ctx, sessionID, direction)
		if err != nil {
			return fmt.Errorf("move failed: %w", err)
		}

		if !result.Success {
			fmt.Fprintln(w, "Cannot move in that direction.")
		} else if result.ScoreDelta > 0 {
			fmt.Fprintf(w, "+%d points\n", result.ScoreDelta)
		}
		if result.WinReached && !state.WinReached {
			fmt.Fprintln(w, "Win tile reached! Keep going or press q to quit.")
		}

		state = result.GameState
		fmt.Fprintln(w)
	}
}

// parseKey maps a wasd key to a move direction.
func parseKey(input string) (string, bool) {
	switch input {
	case "w":
		return "up", true
	case "s":
		return "down", true
	case "a":
		return "left", true
	case "d":
		return "right", true
	default:
		return "", false
	}
}

// renderBoard formats the grid with right-aligned tile values and "." for
// empty cells.
func renderBoard(grid *engine.Grid) string {
	if grid == nil {
		return ""
	}

	cellWidth := 1
	grid.ForEach(func(x, y int, tile *engine.Tile) {
		if tile != nil {
			if l := len(fmt.Sprintf("%d", tile.Value)); l > cellWidth {
				cellWidth = l
			}
		}
	})

	var sb strings.Builder
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			cell := "."
			if tile, err := grid.Get(x, y); err == nil && tile != nil {
				cell = fmt.Sprintf("%d", tile.Value)
			}
			if x > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%*s", cellWidth, cell))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// client is a minimal REST client for the game server.
type client struct {
	baseURL    string
	httpClient *http.Client
}

func newClient(baseURL string) *client {
	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *client) createSession(ctx context.Context, configName string) (*service.SessionInfo, error) {
	body, err := json.Marshal(map[string]string{"config_id": configName})
	if err != nil {
		return nil, err
	}

	var session service.SessionInfo
	if err := c.do(ctx, http.MethodPost, "/api/sessions", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *client) getState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	var state engine.GameState
	if err := c.do(ctx, http.MethodGet, "/api/sessions/"+sessionID+"/state", nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *client) move(ctx context.Context, sessionID, direction string) (*service.MoveResult, error) {
	body, err := json.Marshal(map[string]string{"direction": direction})
	if err != nil {
		return nil, err
	}

	var result service.MoveResult
	if err := c.do(ctx, http.MethodPost, "/api/sessions/"+sessionID+"/move", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *client) do(ctx context.Context, method, path string, body []byte, out interface{}) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
