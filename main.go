package main

import (
	"blinkgate.io/infrastructure"
	"blinkgate.io/infrastructure/env"
)

func init() {
	env.LoadEnv()
}

func main() {
	infrastructure.StartServer()
}
