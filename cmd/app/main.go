package main

import (
	"github.com/ruizj3/fake-grocery-delivery-service/cmd"

	"github.com/labstack/gommon/log"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}
