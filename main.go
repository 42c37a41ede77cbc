package main

import (
	"fmt"

	"fdict/dictation-api/api"
	"fdict/dictation-api/config"
	"fdict/dictation-api/internal/reconcile"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	err := config.Setup()
	if err != nil {
		panic(err)
	}

	a, err := api.NewRouter()
	if err != nil {
		panic(err)
	}

	if viper.GetBool("reconcile.enabled") {
		c := cron.New()

		_, err := reconcile.New(a.DB, a.R2).Schedule(c, viper.GetString("reconcile.schedule"))
		if err != nil {
			panic(err)
		}

		c.Start()
		zap.L().Info("Reconciliation job scheduled", zap.String("spec", viper.GetString("reconcile.schedule")))
	}

	zap.L().Info("Server starting", zap.Int("port", viper.GetInt("host.port")))

	err = a.Router.Run(fmt.Sprintf(":%d", viper.GetInt("host.port")))
	if err != nil {
		panic(err)
	}
}
