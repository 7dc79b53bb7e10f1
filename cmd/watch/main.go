// Command watch polls a running server's REST API and prints a summary of
// every active session: players, status, and the current board. Useful for
// keeping an eye on live games from a terminal.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/wisp-games/tictactoe/game/engine"
	"github.com/wisp-games/tictactoe/game/service"
)

var (
	baseURL  = flag.String("url", "http://localhost:8080", "Base URL of the game server")
	interval = flag.Duration("interval", 5*time.Second, "Poll interval (0 prints once and exits)")
)

type sessionList struct {
	Count    int                   `json:"count"`
	Sessions []service.SessionInfo `json:"sessions"`
}

func main() {
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	for {
		if err := printSessions(client); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}

		if *interval <= 0 {
			return
		}
		time.Sleep(*interval)
	}
}

func printSessions(client *http.Client) error {
	resp, err := client.Get(*baseURL + "/api/sessions?sort=created&order=asc")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}

	var list sessionList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return err
	}

	fmt.Printf("=== %s | %d session(s) ===\n", time.Now().Format("15:04:05"), list.Count)
	for _, sess := range list.Sessions {
		fmt.Print(renderSession(&sess))
	}
	return nil
}

func renderSession(sess *service.SessionInfo) string {
	var b strings.Builder

	names := make([]string, 0, len(sess.Players))
	for _, p := range sess.Players {
		name := fmt.Sprintf("%s=%s", p.Symbol, p.DisplayName)
		if p.Disconnected {
			name += "(gone)"
		}
		names = append(names, name)
	}

	fmt.Fprintf(&b, "\n[%s] %s  %s\n", sess.ID, sess.Status, strings.Join(names, " vs "))
	b.WriteString(renderBoard(sess.Board))

	switch {
	case sess.Winner == engine.WinnerTie:
		b.WriteString("tie game\n")
	case sess.Winner != engine.WinnerNone:
		fmt.Fprintf(&b, "winner: %s\n", sess.Winner)
	case sess.Status == engine.StatusInProgress:
		fmt.Fprintf(&b, "turn: %s\n", sess.CurrentPlayer)
	}

	return b.String()
}

func renderBoard(board engine.Board) string {
	var b strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sym := board[row*3+col]
			if sym == engine.Empty {
				b.WriteString(".")
			} else {
				b.WriteString(string(sym))
			}
			if col < 2 {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
