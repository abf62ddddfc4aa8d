package main

import (
	"context"
	"fmt"

	"github.com/jibli-app/jibli-backend/internal/adapter/auth"
	"github.com/jibli-app/jibli-backend/internal/adapter/client/push"
	"github.com/jibli-app/jibli-backend/internal/adapter/config"
	"github.com/jibli-app/jibli-backend/internal/adapter/handler/http"
	"github.com/jibli-app/jibli-backend/internal/adapter/logger"
	"github.com/jibli-app/jibli-backend/internal/adapter/storage"
	"github.com/jibli-app/jibli-backend/internal/adapter/storage/repository"
	"github.com/jibli-app/jibli-backend/internal/core/broadcast"
	"github.com/jibli-app/jibli-backend/internal/core/notify"
	"github.com/jibli-app/jibli-backend/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repo creating error", zap.Error(err))
		return
	}
	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	pushClient, err := push.NewClient(conf.Push, log.Named("Push"))
	if err != nil {
		log.Error("push client creating error", zap.Error(err))
		return
	}

	resolver := notify.NewResolver(repo)
	dispatcher := notify.NewDispatcher(resolver, pushClient, log.Named("Dispatcher"))

	sender := broadcast.NewSender(repo, resolver, pushClient, log.Named("Broadcast"))
	sender.Run(ctx, conf.Broadcast.Workers)

	svc, err := service.NewService(repo, tokenService, dispatcher, sender, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	userHandler, err := http.NewUserHandler(svc, log.Named("User handler"))
	if err != nil {
		log.Error("user handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	productHandler, err := http.NewProductHandler(svc, log.Named("Product handler"))
	if err != nil {
		log.Error("product handler creating error", zap.Error(err))
		return
	}
	broadcastHandler, err := http.NewBroadcastHandler(svc, log.Named("Broadcast handler"))
	if err != nil {
		log.Error("broadcast handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService,
		userHandler, orderHandler, productHandler, broadcastHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
