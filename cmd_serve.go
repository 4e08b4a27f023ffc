package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"raisedesk/config"
	"raisedesk/cron"
	"raisedesk/database"
	"raisedesk/database/seed"
	"raisedesk/handlers"
	"raisedesk/middleware"
	"raisedesk/routes"
	"raisedesk/services/board"
	clientService "raisedesk/services/client"
	investorService "raisedesk/services/investor"
	"raisedesk/services/matching"
	"raisedesk/services/meeting"
	"raisedesk/services/onboarding"
	"raisedesk/services/tasks"
	"raisedesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Starts the JSON API. With REDIS_ADDR set, match results are cached and
meeting and task reminders are queued and processed in-process.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, logger)
	if err != nil {
		return err
	}
	cache, err := openMatchCache()
	if err != nil {
		return err
	}
	if config.AppConfig.SeedOnStart && config.AppConfig.StoreDriver == config.StoreMemory {
		ds, err := seed.Load(time.Now())
		if err != nil {
			return err
		}
		if err := seed.Apply(ctx, store, ds, cache, logger); err != nil {
			return err
		}
	}

	pingers := map[string]utils.Pinger{}
	if config.AppConfig.StoreDriver == config.StoreMongo {
		pingers["mongo"] = utils.PingFunc(database.Ping)
	}

	// Redis-backed pieces: reminder queue and its worker.
	var (
		reminders tasks.ReminderScheduler = tasks.NoopScheduler{}
		worker    *cron.Worker
	)
	if rdb := utils.GetCacheClient(); rdb != nil {
		pingers["redis"] = utils.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })

		queue := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		})
		defer queue.Close()
		reminders = tasks.NewAsynqScheduler(queue, logger)

		worker = cron.NewReminderWorker(&cron.ReminderHandler{
			Meetings: store.Meetings,
			Tasks:    store.Tasks,
			Notifier: cron.LogNotifier{Logger: logger},
			LeadTime: config.AppConfig.ReminderLeadTime,
			Logger:   logger,
		})
		worker.Start(logger)
		defer worker.Shutdown()
	} else {
		logger.Info("REDIS_ADDR not set; match cache and reminders disabled")
	}

	// services.
	matchingService := matching.NewDefaultMatchingService(store.Investors, store.Clients, cache, logger)
	investors, err := investorService.NewDefaultInvestorService(store.Investors, matchingService)
	if err != nil {
		return err
	}
	clients, err := clientService.NewDefaultClientService(store.Clients, matchingService)
	if err != nil {
		return err
	}
	boardService := board.NewDefaultBoardService(store.Tasks, reminders, config.AppConfig.ReminderLeadTime, logger)
	meetingService := meeting.NewDefaultMeetingService(store.Meetings, store.Investors, reminders, config.AppConfig.ReminderLeadTime, logger)
	onboardingService, err := onboarding.NewDefaultOnboardingService(store.Submissions, investors, clients, logger)
	if err != nil {
		return err
	}

	monitor := utils.NewHealthMonitor(pingers)
	monitor.Start(ctx, 30*time.Second)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiter(config.AppConfig.MaxRequestsPerMin)))

	routes.RegisterRoutes(router, &handlers.HandlerBundle{
		Investors:  handlers.NewInvestorHandler(investors),
		Clients:    handlers.NewClientHandler(clients),
		Board:      handlers.NewBoardHandler(boardService),
		Meetings:   handlers.NewMeetingHandler(meetingService),
		Onboarding: handlers.NewOnboardingHandler(onboardingService),
		Health:     handlers.NewHealthHandler(monitor),
	}, config.AppConfig.AllowedOrigins)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + config.AppConfig.AppPort,
		Handler: router,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Info("server is shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if database.MongoClient != nil {
		_ = database.MongoClient.Disconnect(shutdownCtx)
	}
	logger.Info("server stopped gracefully")
	return nil
}
