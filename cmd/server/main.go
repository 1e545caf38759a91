package main // Entry point package

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/twillingtastes/restaurant-ordering/internal/account"
	"github.com/twillingtastes/restaurant-ordering/internal/bridge"
	"github.com/twillingtastes/restaurant-ordering/internal/cart"
	"github.com/twillingtastes/restaurant-ordering/internal/config"
	"github.com/twillingtastes/restaurant-ordering/internal/database"
	"github.com/twillingtastes/restaurant-ordering/internal/handler"
	"github.com/twillingtastes/restaurant-ordering/internal/queue"
	"github.com/twillingtastes/restaurant-ordering/internal/repository"
	"github.com/twillingtastes/restaurant-ordering/internal/router"
	queue_publisher "github.com/twillingtastes/restaurant-ordering/internal/service"
	"github.com/twillingtastes/restaurant-ordering/internal/session"
	"github.com/twillingtastes/restaurant-ordering/internal/store"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	ctx := context.Background()

	st, notifier, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("open store (%s): %v", cfg.StoreDriver, err)
	}

	accounts := account.NewDirectory(st)
	sessions, err := session.NewManager(ctx, accounts)
	if err != nil {
		log.Fatalf("load session: %v", err)
	}
	orders := repository.NewOrderRepo(st)
	bookings := repository.NewBookingRepo(st)
	engine, err := cart.NewEngine(ctx, st, orders)
	if err != nil {
		log.Fatalf("load cart: %v", err)
	}

	// Reconcile cart/session state when another context writes the shared
	// store. Only the redis driver delivers such events; the memory driver
	// emits them in tests and the file/mysql drivers have no other writers.
	if notifier != nil {
		bridge.New(engine, sessions).Bind(notifier)
	}

	var pub *queue_publisher.Publisher
	if cfg.Events {
		pub = queue_publisher.New(cfg.AMQPURL)
		go func() {
			if err := queue.StartOrderConsumer(cfg.AMQPURL); err != nil {
				log.Printf("order consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(accounts, sessions))
	router.RegisterOrdering(e, handler.NewCartHandler(engine, sessions, pub))
	router.RegisterReservations(e, handler.NewReservationHandler(bookings, pub))
	router.RegisterDashboard(e, handler.NewDashboardHandler(sessions, orders, bookings), sessions)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s store=%s)", addr, cfg.Env, cfg.StoreDriver)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// openStore builds the storage backend named by the config. The second
// return value is non-nil only for backends that deliver external change
// events.
func openStore(ctx context.Context, cfg config.Config) (store.Store, store.Notifier, error) {
	switch cfg.StoreDriver {
	case "memory":
		m := store.NewMemory()
		return m, m, nil
	case "file":
		f, err := store.OpenFile(cfg.StoreFile)
		return f, nil, err
	case "redis":
		rdb, err := config.NewRedisClient()
		if err != nil {
			return nil, nil, err
		}
		r, err := store.OpenRedis(ctx, rdb)
		if err != nil {
			return nil, nil, err
		}
		return r, r, nil
	case "mysql":
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			return nil, nil, err
		}
		s, err := store.NewMySQL(ctx, db)
		return s, nil, err
	default:
		return nil, nil, fmt.Errorf("unknown store driver: %q", cfg.StoreDriver)
	}
}
