package main

import (
	"log"

	"github.com/Eden-Eldith/framescan/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
