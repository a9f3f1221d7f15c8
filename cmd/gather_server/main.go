package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gather_server/internal/config"
	"gather_server/internal/dao/postgres"
	myredis "gather_server/internal/dao/redis"
	"gather_server/internal/handler"
	"gather_server/internal/https_server"
	"gather_server/internal/infrastructure/logger"
	"gather_server/internal/infrastructure/mailer"
	"gather_server/internal/service"
	"gather_server/internal/service/chat"
	"gather_server/pkg/util/jwt"

	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	conf := config.GetConfig()

	// 2. Logging
	if err := logger.Init(&conf.LogConfig, "dev"); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("logger ready")

	// 3. Database, migrations, role seeding
	repos := postgres.Init()
	zap.L().Info("postgres ready")

	// 4. Redis and the async cache worker
	myredis.Init()
	zap.L().Info("redis ready")

	// 5. JWT signing
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)

	// 6. Validation message translator
	if err := handler.InitTrans(); err != nil {
		zap.L().Fatal("init validator translator failed", zap.Error(err))
	}

	// 7. Mail dispatch (mock dispatcher when no SMTP host configured)
	mail := mailer.New(conf.MailConfig, conf.MainConfig.AppName)

	// 8. Service layer
	service.InitServices(repos, mail)
	zap.L().Info("services ready")

	// 9. Chat broker, channel or kafka per config
	chatServer := chat.NewChatServer(chat.ChatServerConfig{
		Mode:          conf.KafkaConfig.MessageMode,
		Repos:         repos,
		KafkaHostPort: conf.KafkaConfig.HostPort,
		KafkaTopic:    conf.KafkaConfig.ChatTopic,
		Partition:     conf.KafkaConfig.Partition,
		WriteTimeout:  conf.KafkaConfig.Timeout,
	})
	handler.Broker = chatServer.Broker
	go chatServer.Start()
	zap.L().Info("chat broker ready", zap.String("mode", conf.KafkaConfig.MessageMode))

	// 10. HTTP server
	engine := https_server.Init()
	go func() {
		addr := fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port)
		zap.L().Info("listening", zap.String("addr", addr))
		if err := engine.Run(addr); err != nil {
			zap.L().Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	chatServer.Close()
	zap.L().Info("server shut down")
}
