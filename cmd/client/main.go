package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-project-hub/internal/adapter"
	"github.com/MKhiriev/go-project-hub/internal/client"
)

func main() {
	cfg, err := client.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	hub := adapter.NewHTTPHubAdapter(cfg.ServerAddress)
	hub.SetToken(cfg.Token)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = client.NewApp(hub, os.Stdout).Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
