package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/parallel-yonder/yonder/cmd"
	"github.com/parallel-yonder/yonder/common/log"
)

func main() {
	if err := cmd.Run(); err != nil {
		log.Fatalf("%v", err)
	}
}
