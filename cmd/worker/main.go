package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	billingUC "centime/internal/application/billing/usecases"
	"centime/internal/infrastructure/config"
	"centime/internal/infrastructure/database"
	"centime/internal/infrastructure/repository"
	"centime/internal/infrastructure/scheduler"
	"centime/internal/shared/db"
	"centime/internal/shared/logger"
)

func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
	}); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger()
	log.Infow("starting billing worker", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	subscriptionRepo := repository.NewSubscriptionRepository(database.Get(), log.Named("repo.subscription"))
	billRepo := repository.NewBillRepository(database.Get(), log.Named("repo.bill"))
	txManager := db.NewTransactionManager(database.Get())

	ensureBillsDue := billingUC.NewEnsureBillsDueUseCase(
		subscriptionRepo,
		billRepo,
		txManager,
		log.Named("uc.ensure_bills_due"),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	billingScheduler := scheduler.NewBillingScheduler(
		ensureBillsDue,
		cfg.Billing.SchedulerIntervalHours,
		log.Named("scheduler"),
	)
	billingScheduler.Start(ctx)

	log.Infow("billing worker started", "interval_hours", cfg.Billing.SchedulerIntervalHours)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	log.Infow("received signal, shutting down", "signal", sig)
	billingScheduler.Stop()
	log.Infow("billing worker stopped")
}
