package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/mertowave/nld-vehicle-data-portal/lib/configutil"
	"github.com/mertowave/nld-vehicle-data-portal/lib/rdw"
	"github.com/mertowave/nld-vehicle-data-portal/lib/serviceutil"
	"github.com/mertowave/nld-vehicle-data-portal/lib/telemetry"
	"github.com/mertowave/nld-vehicle-data-portal/services/portal"
)

type Config struct {
	Port           int    `json:"port"`
	PageSize       int    `json:"page_size"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	AppToken       string `json:"app_token"`
}

func main() {
	ctx := context.Background()

	tel, err := telemetry.SetupFromEnv(ctx, "portald")
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	defer tel.Shutdown(context.Background())
	telemetry.InitSlog(false)

	config, err := configutil.ReadConfig[Config]("portal.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("read config", err)
	}
	if config.Port == 0 {
		config.Port = 8080
	}
	if config.TimeoutSeconds <= 0 {
		config.TimeoutSeconds = 30
	}

	client := rdw.NewClient(rdw.ClientOptions{
		AppToken: rdw.ResolveAppToken(config.AppToken),
		Timeout:  time.Duration(config.TimeoutSeconds) * time.Second,
	})

	mux := http.NewServeMux()
	portal.NewService(client, config.PageSize).Register(mux)

	serviceutil.StartHttpServer(config.Port, mux)
}
