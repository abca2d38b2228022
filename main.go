package main

import (
	"context"
	"log"

	"message_board/internal/cli"
)

func main() {
	// 所有子命令共用同一個根 context
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("board: %v", err)
	}
}
