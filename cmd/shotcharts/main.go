package main

import (
	"context"

	"shotcharts-backend/cmd/shotcharts/commands"
	"shotcharts-backend/lib/telemetry"
)

func main() {
	telemetry.SetupFromEnv(context.Background(), "shotcharts-cli")
	telemetry.InitSlog(false)
	commands.ExecuteContext(context.Background())
}
