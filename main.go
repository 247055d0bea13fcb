package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/nstehr/striker/agent"
	"github.com/nstehr/striker/ipc"
	"github.com/nstehr/striker/rules"
	"github.com/spf13/cobra"
)

const banner = `
 ___ _____ ___ ___ _  _____ ___
/ __|_   _| _ \_ _| |/ / __| _ \
\__ \ | | |   /| || ' <| _||   /
|___/ |_| |_|_\___|_|\_\___|_|_\

Per-cycle soccer behavior controller`

var (
	socketPath string
	tuningPath string
	watch      bool
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "striker",
	Short: "Behavior controller for simulated humanoid soccer robots",
	Long: `striker listens on a unix socket for a simulator bridge. Each connection
is one robot: the bridge sends a percept every server cycle and striker answers
with at most one motion command for the keyframe executor.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&socketPath, "socket", "/tmp/striker.sock", "unix socket to listen on")
	rootCmd.Flags().StringVar(&tuningPath, "tuning", "", "YAML tuning file (defaults are used when empty)")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "reload the tuning file when it changes")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(logLevel),
	}))
	slog.SetDefault(logger)

	fmt.Println(banner)

	tuning := rules.DefaultTuning()
	if tuningPath != "" {
		t, err := rules.LoadTuning(tuningPath)
		if err != nil {
			return err
		}
		tuning = t
	}
	engine, err := rules.NewEngine(tuning)
	if err != nil {
		return fmt.Errorf("build rule engine: %w", err)
	}
	slog.Info("starting striker",
		"tuning", tuning.Name,
		"toleranceDeg", tuning.ToleranceAngleDeg,
		"toleratedDistance", tuning.ToleratedDistance,
		"uprightAccelZ", tuning.UprightAccelZ,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if watch {
		if tuningPath == "" {
			return fmt.Errorf("--watch requires --tuning")
		}
		tuner, err := agent.NewTuner(engine, tuningPath)
		if err != nil {
			return err
		}
		go tuner.Start(ctx)
	}

	// Unix sockets leave behind a file on unclean shutdown; remove it so we can rebind.
	if err := os.RemoveAll(socketPath); err != nil {
		return fmt.Errorf("clean up socket %s: %w", socketPath, err)
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", socketPath, err)
	}
	defer listener.Close()
	defer os.Remove(socketPath)

	slog.Info("listening on domain socket", "path", socketPath)

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				select {
				case <-ctx.Done():
					return
				default:
					slog.Error("failed to accept connection", "error", err)
					continue
				}
			}
			slog.Info("new connection accepted")
			go handleConn(conn, engine)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
	return nil
}

func handleConn(conn net.Conn, engine *rules.Engine) {
	c := ipc.NewConnection(conn, nil)
	s, err := agent.New(c, engine)
	if err != nil {
		slog.Error("failed to start session", "error", err)
		conn.Close()
		return
	}
	c.RegisterHandler(ipc.TypeHello, s.HandleHello)
	c.RegisterHandler(ipc.TypePercept, s.HandlePercept)
	c.ReadLoop()
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
