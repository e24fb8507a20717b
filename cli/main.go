// Command agentctl is a small client for a running agent server.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/xiaot623/gogo/agent/internal/domain"
)

var (
	addr    string
	timeout time.Duration
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "agentctl",
		Short:        "Talk to an agent server",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&addr, "addr", "http://localhost:8080", "agent base URL")
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "HTTP request timeout (0 = none)")

	cmd.AddCommand(healthCmd())
	cmd.AddCommand(factsCmd())
	cmd.AddCommand(taskCmd())
	cmd.AddCommand(chatCmd())
	return cmd
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show agent health and configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := NewClient(addr, timeout).Health(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(status)
		},
	}
}

func factsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "facts",
		Short: "Show the agent facts descriptor",
		RunE: func(cmd *cobra.Command, args []string) error {
			facts, err := NewClient(addr, timeout).Facts(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(facts)
		},
	}
}

func taskCmd() *cobra.Command {
	var (
		prompt   string
		taskID   string
		priority int
	)
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Submit one task and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := NewClient(addr, timeout).SubmitTask(cmd.Context(), &domain.TaskRequest{
				TaskID:   taskID,
				Prompt:   prompt,
				Context:  map[string]any{},
				Priority: priority,
			})
			if err != nil {
				return err
			}
			return printJSON(resp)
		},
	}
	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "prompt to send")
	cmd.Flags().StringVar(&taskID, "task-id", domain.DefaultTaskID, "task id")
	cmd.Flags().IntVar(&priority, "priority", domain.DefaultPriority, "task priority")
	_ = cmd.MarkFlagRequired("prompt")
	return cmd
}

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Interactive session over the agent websocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd.Context())
		},
	}
}

func runChat(ctx context.Context) error {
	fmt.Printf("Connecting to %s...\n", wsURL(addr))

	client, err := DialChat(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	fmt.Println("Connected.")
	fmt.Println("\nType a message and press Enter to send.")
	fmt.Println("Commands: /quit to exit")

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		client.Close()
	}()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return nil
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "/quit" {
			fmt.Println("Bye!")
			return nil
		}

		if _, err := client.SendTask(&domain.TaskRequest{
			TaskID:   domain.DefaultTaskID,
			Prompt:   input,
			Priority: domain.DefaultPriority,
		}); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		reply, err := client.ReadReply()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if reply.Err != nil {
			fmt.Printf("[error] %v\n", reply.Err)
			continue
		}
		fmt.Println(reply.Result)
	}
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
