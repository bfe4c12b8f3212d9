package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"agency/src/api"
	"agency/src/config"
	"agency/src/scheduler"
)

func main() {
	cfg, err := config.LoadConfig("./settings")
	if err != nil {
		log.Println(err, "Error while loading config")
		return
	}
	errC, err := run(cfg)
	if err != nil {
		log.Println(err, "Couldn't run")
		return
	}

	if err := <-errC; err != nil {
		log.Println(err, "Error while running")
	}
}

func run(cfg *config.Config) (<-chan error, error) {
	errC := make(chan error, 1)

	server, err := api.NewServer(cfg)
	if err != nil {
		return nil, err
	}
	httpServer := api.NewHTTPServer(server, cfg)

	if cfg.Scheduler.PaymentReminderCron != "" {
		_, err = scheduler.NewScheduledTask(cfg.Scheduler.PaymentReminderCron, func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			if _, err := server.Payments.RunOverdueSweep(ctx); err != nil {
				log.Println(err, "Overdue payment sweep failed")
			}
		})
		if err != nil {
			return nil, err
		}
	}

	go func() {
		log.Println("Starting server on port", cfg.Service.Port)

		// "ListenAndServe always returns a non-nil error. After Shutdown or Close, the returned error is
		// ErrServerClosed."
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalln("An error raised while setting up server", err)
			errC <- err
		}
	}()
	return errC, nil
}
