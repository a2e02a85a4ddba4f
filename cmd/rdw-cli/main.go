package main

import (
	"context"

	"github.com/mertowave/nld-vehicle-data-portal/cmd/rdw-cli/commands"
	"github.com/mertowave/nld-vehicle-data-portal/lib/telemetry"
)

func main() {
	telemetry.SetupFromEnv(context.Background(), "rdw-cli")
	telemetry.InitSlog(false)
	commands.ExecuteContext(context.Background())
}
