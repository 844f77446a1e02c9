package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat MESSAGE...",
	Short: "Ask the career assistant a question",
	Long:  "Send a single message to the Gemini-backed career assistant and print its reply. Without GEMINI_API_KEY the reply explains how to configure one.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	message := strings.TrimSpace(strings.Join(args, " "))
	if message == "" {
		return fmt.Errorf("message is required")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	service, err := newChatService(ctx, appConfig)
	if err != nil {
		return err
	}
	defer func() { _ = service.Close() }()

	fmt.Println(service.Reply(ctx, message))
	return nil
}
