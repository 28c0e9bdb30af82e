package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"ShapeBoard/internal/config"
	boardnet "ShapeBoard/internal/net"
	"ShapeBoard/internal/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "shapeboard",
		Usage: "place, drag and export rectangles, circles and lines",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a YAML config file"},
		},
		Action: runDesktop,
		Commands: []*cli.Command{
			{
				Name:   "desktop",
				Usage:  "open the desktop window",
				Action: runDesktop,
			},
			{
				Name:  "serve",
				Usage: "serve the browser board",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Usage: "listen address (overrides config)"},
					&cli.BoolFlag{Name: "advertise", Usage: "announce the board over mDNS"},
				},
				Action: runServe,
			},
			{
				Name:  "discover",
				Usage: "list boards advertised on the local network",
				Flags: []cli.Flag{
					&cli.DurationFlag{Name: "timeout", Value: 2 * time.Second},
				},
				Action: runDiscover,
			},
		},
	}
}

func loadConfig(cmd *cli.Command) (config.Config, error) {
	return config.Load(cmd.String("config"))
}

func runDesktop(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log.Println("[UI] starting desktop board")
	ui.RunApp(cfg)
	return nil
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if addr := cmd.String("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	if cmd.Bool("advertise") {
		port, err := boardnet.ListenPort(cfg.Server.Addr)
		if err != nil {
			return err
		}
		mdnsServer, err := boardnet.Advertise(cfg.Server.ServiceType, port)
		if err != nil {
			return err
		}
		defer mdnsServer.Shutdown()
		log.Printf("[MDNS] advertising %s on port %d", cfg.Server.ServiceType, port)
	}

	log.Printf("[WS] open %s in a browser", boardnet.ShareURL(cfg.Server.Addr))
	return boardnet.NewServer(cfg).ListenAndServe(ctx)
}

func runDiscover(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	boards, err := boardnet.Browse(ctx, cfg.Server.ServiceType, cmd.Duration("timeout"))
	if err != nil {
		return err
	}
	if len(boards) == 0 {
		fmt.Fprintln(cmd.Root().Writer, "no boards found")
		return nil
	}
	for _, b := range boards {
		fmt.Fprintf(cmd.Root().Writer, "%s\thttp://%s\n", b.Instance, b.Addr)
	}
	return nil
}
