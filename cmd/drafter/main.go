package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/hammadafzall/drafter-agent/internal/document"
	"github.com/hammadafzall/drafter-agent/internal/engine"
	"github.com/hammadafzall/drafter-agent/internal/provider"
	"github.com/hammadafzall/drafter-agent/memory"
	"github.com/hammadafzall/drafter-agent/tools"
)

// stdinInput feeds lines from a reader goroutine into the engine, so the
// blocking read can race a context cancellation from Ctrl-C.
type stdinInput struct {
	lines <-chan string
}

func (s *stdinInput) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", engine.ErrInputClosed
	case line, ok := <-s.lines:
		if !ok {
			return "", engine.ErrInputClosed
		}
		return line, nil
	}
}

func main() {
	// Basic env check before any session logic (SDK also reads the key).
	if os.Getenv("ANTHROPIC_API_KEY") == "" {
		ancli.PrintErr("missing ANTHROPIC_API_KEY; export it before running\n")
		os.Exit(1)
	}

	cfg, err := provider.ConfigFromEnv()
	if err != nil {
		ancli.PrintErr(fmt.Sprintf("configuration: %v\n", err))
		os.Exit(1)
	}

	// Graceful shutdown on Ctrl-C (SIGINT) / SIGTERM.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		cancel()
	}()

	// stdin reader goroutine -> lines into channel.
	lines := make(chan string)
	scanner := bufio.NewScanner(os.Stdin)
	go func() {
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	store := document.NewStore()
	defs := tools.Registry(store)
	client := provider.New(provider.NewAnthropicClient(), cfg, defs)
	e := engine.New(client, store, defs, &stdinInput{lines: lines}, os.Stdout)

	reason, err := e.Run(ctx)
	if err != nil {
		ancli.PrintErr(fmt.Sprintf("session failed: %v\n", err))
		os.Exit(1)
	}

	if path := os.Getenv("DRAFTER_TRANSCRIPT_PATH"); path != "" {
		if err := memory.SaveTranscript(path, memory.Transcript(e.History())); err != nil {
			ancli.PrintWarn(fmt.Sprintf("failed to save transcript: %v\n", err))
		}
	}

	if reason == engine.ReasonSaved {
		ancli.PrintOK("drafting session completed; document saved\n")
	}
	if err := scanner.Err(); err != nil {
		ancli.PrintWarn(fmt.Sprintf("stdin read error: %v\n", err))
	}
}
