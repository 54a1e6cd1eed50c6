package main

import (
	"github.com/ottshare/ott-share-hub/auth"
	"github.com/ottshare/ott-share-hub/config"
	"github.com/ottshare/ott-share-hub/routes"
	"github.com/ottshare/ott-share-hub/store"
	"github.com/ottshare/ott-share-hub/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	st := store.New(cfg.ActivityLogMax)
	tokens := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	r := routes.SetupRouter(cfg, st, tokens)

	utils.Sugar.Infof("starting OTT Share Hub API on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
