package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielldt/unisonLegends.50/internal/auth"
	"github.com/danielldt/unisonLegends.50/internal/engine"
	"github.com/danielldt/unisonLegends.50/internal/infrastructure/journal"
	"github.com/danielldt/unisonLegends.50/internal/infrastructure/storage"
	"github.com/danielldt/unisonLegends.50/internal/network"
	"github.com/danielldt/unisonLegends.50/internal/server"
	"github.com/danielldt/unisonLegends.50/internal/version"
	"github.com/danielldt/unisonLegends.50/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func init() {
	logger.Init()
}

func main() {
	// Дев-режим: выпустить токен входа и выйти
	var mintToken string
	var mintName string
	flag.StringVar(&mintToken, "mint-token", "", "Print a login token for the given player id and exit")
	flag.StringVar(&mintName, "username", "", "Username claim for -mint-token")
	flag.Parse()

	cfg, err := engine.LoadConfig()
	if err != nil {
		logger.Log.Fatal("Config error: ", err)
	}

	if mintToken != "" {
		token, err := auth.Sign(cfg.JWTSecret, mintToken, mintName, 24*time.Hour)
		if err != nil {
			logger.Log.Fatal("Failed to sign token: ", err)
		}
		fmt.Println(token)
		return
	}

	logger.Log.Info("Starting Unison Legends session server...")
	logger.Log.Info(version.String())

	// 1. Инфраструктура
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Log.Fatal("Storage error: ", err)
	}

	journalSvc, err := journal.NewService(cfg.JournalDir)
	if err != nil {
		logger.Log.Fatal("Journal error: ", err)
	}

	// 2. Инициализация ядра
	hub := network.NewBroadcaster()
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)
	gameService := engine.NewService(cfg, store, verifier, hub, journalSvc)

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, cfg.Port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error: ", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Порядок важен: сначала перестаем принимать соединения, потом
	// останавливаем циклы групп (финальный сброс состояний), потом БД.
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Warn("HTTP server shutdown failed")
	}
	gameService.Shutdown(ctx)
	if err := store.Close(); err != nil {
		logger.Log.WithError(err).Warn("Storage close failed")
	}

	logger.Log.Info("Done.")
}
