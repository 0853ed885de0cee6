package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"saathi/internal/agent"
	"saathi/internal/logging"
	"saathi/internal/server/app"
	"saathi/internal/session"
	"saathi/internal/task"
)

var (
	promptColor = color.New(color.FgCyan, color.Bold).SprintFunc()
	replyColor  = color.New(color.FgGreen).SprintFunc()
	dimColor    = color.New(color.FgHiBlack).SprintFunc()
)

func isTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newChatCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat with the agent locally using in-memory stores",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(opts); err != nil {
				return err
			}
			defer logging.Close()
			return runChat(cmd)
		},
	}
}

func runChat(cmd *cobra.Command) error {
	const localUserID int64 = 1

	taskService := task.NewService(task.NewMemoryRepository(), logging.NewComponentLogger("TaskService"))
	engine := agent.NewEngine(
		task.NewAgentStore(taskService, logging.NewComponentLogger("AgentStore")),
		agent.WithLogger(logging.NewComponentLogger("Engine")),
	)
	chat := app.NewChatService(
		engine, session.NewMemoryStore(), 20,
		nil, nil,
		logging.NewComponentLogger("ChatService"),
	)

	out := cmd.OutOrStdout()
	if isTTY() {
		fmt.Fprintln(out, promptColor("saathi"), dimColor("type a message, or 'exit' to quit"))
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		if isTTY() {
			fmt.Fprint(out, promptColor("you> "))
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			return nil
		}

		resp, err := chat.ProcessMessage(cmd.Context(), localUserID, line)
		if err != nil {
			return fmt.Errorf("process message: %w", err)
		}
		fmt.Fprintln(out, replyColor(resp.Reply))
	}
}
