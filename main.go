package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "airline/internal/config"
	router "airline/internal/http"
	"airline/internal/http/handlers"
	"airline/internal/repositories"
	"airline/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		log.Printf("error: %v", err)
		os.Exit(1)
	}
}

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:  "airline",
		Usage: "Airline reservation API with graph, hash table, queue, stack and heap views",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db-driver",
				Usage: "store backend (mysql or memory), overrides DB_DRIVER",
			},
		},
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			serveCmd(),
			seedCmd(),
			resetCmd(),
		},
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "listen address, overrides APP_ADDR",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			env := loadEnv(cmd)
			if a := cmd.String("addr"); a != "" {
				env.AppAddr = a
			}
			if env.GinMode != "" {
				gin.SetMode(env.GinMode)
			}

			store, closeStore, err := openStore(ctx, env)
			if err != nil {
				return err
			}
			defer closeStore()

			hd := handlers.New(store.Store, env.FetchLimit)
			hd.Ping = store.Ping
			r := router.NewRouter(env, hd)

			srv := &http.Server{
				Addr:              env.AppAddr,
				Handler:           r,
				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       20 * time.Second,
				WriteTimeout:      20 * time.Second,
				IdleTimeout:       60 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Printf("server listening on %s (store=%s)", env.AppAddr, env.DBDriver)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("listen: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			log.Println("shutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			log.Println("server stopped")
			return nil
		},
	}
}

func seedCmd() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Wipe the store and load the sample dataset",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			env := loadEnv(cmd)
			store, closeStore, err := openStore(ctx, env)
			if err != nil {
				return err
			}
			defer closeStore()
			return services.SystemService{Store: store.Store, FetchLimit: env.FetchLimit, RequestID: "cli"}.Initialize(ctx)
		},
	}
}

func resetCmd() *cli.Command {
	return &cli.Command{
		Name:  "reset",
		Usage: "Wipe all collections",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			env := loadEnv(cmd)
			store, closeStore, err := openStore(ctx, env)
			if err != nil {
				return err
			}
			defer closeStore()
			return services.SystemService{Store: store.Store, FetchLimit: env.FetchLimit, RequestID: "cli"}.Reset(ctx)
		},
	}
}

func loadEnv(cmd *cli.Command) intconfig.Env {
	env := intconfig.LoadEnv()
	if d := cmd.String("db-driver"); d != "" {
		env.DBDriver = d
	}
	return env
}

type openedStore struct {
	repositories.Store
	Ping func(ctx context.Context) error
}

// openStore picks the backend named by env.DBDriver. The returned func
// releases it.
func openStore(ctx context.Context, env intconfig.Env) (openedStore, func(), error) {
	switch env.DBDriver {
	case intconfig.DriverMemory:
		log.Println("using in-memory store; data is lost on exit")
		return openedStore{Store: repositories.NewMemoryStore()}, func() {}, nil
	case intconfig.DriverMySQL:
		db, err := intconfig.ConnectDB(ctx, env)
		if err != nil {
			return openedStore{}, nil, err
		}
		if err := repositories.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return openedStore{}, nil, err
		}
		closeFn := func() {
			if err := db.Close(); err != nil {
				log.Printf("warning: close db: %v", err)
			}
		}
		return openedStore{Store: repositories.NewMySQLStore(db), Ping: db.PingContext}, closeFn, nil
	default:
		return openedStore{}, nil, fmt.Errorf("unknown DB_DRIVER %q (want %s or %s)", env.DBDriver, intconfig.DriverMySQL, intconfig.DriverMemory)
	}
}
