// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Careersphere Authors

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kashishbhadauriya/Careersphere/internal/adapter"
	"github.com/kashishbhadauriya/Careersphere/internal/config"
	"github.com/kashishbhadauriya/Careersphere/internal/handler"
	"github.com/kashishbhadauriya/Careersphere/internal/logger"
	"github.com/kashishbhadauriya/Careersphere/internal/server"
	"github.com/kashishbhadauriya/Careersphere/internal/service"
	"github.com/kashishbhadauriya/Careersphere/internal/store"
	"github.com/kashishbhadauriya/Careersphere/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := printBuildInfo()

	log := logger.NewLogger("careersphere")
	log.Info().Any("build", info).Msg("starting careersphere")

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	analysis, err := adapter.NewGeminiAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating analysis adapter")
	}

	services := service.NewServices(storages, analysis, *cfg, log)

	handlers, err := handler.NewHandlers(services, storages, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() models.BuildInfo {
	info := models.NewBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)

	return info
}
