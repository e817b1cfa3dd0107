package main

import (
	"context"
	"log"

	"IEDC_Club/internal/config"
	"IEDC_Club/internal/model"
	"IEDC_Club/internal/pkg"
	"IEDC_Club/internal/repository/mysql"
	"IEDC_Club/internal/repository/redis"
	"IEDC_Club/internal/router"
	"IEDC_Club/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	pkg.InitJWT(cfg.AccessSecret, cfg.RefreshSecret)

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		panic(err)
	}

	// 连接redis
	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		panic(err)
	}
	defer redis.Close()

	// 自动建表（开发阶段 OK）
	mysql.DB.AutoMigrate(
		&model.Member{},
		&model.ExecomApplication{},
		&model.ModerationOutbox{},
		&model.User{},
		&model.SubCommunity{},
		&model.TeamMember{},
	)

	// 初始 IIC 管理员
	if err := service.NewAdminService(mysql.DB).Bootstrap(
		cfg.BootstrapAdminUsername, cfg.BootstrapAdminPassword, cfg.BootstrapAdminEmail,
	); err != nil {
		log.Printf("bootstrap admin: %v", err)
	}

	// 审核事件异步投递
	producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.KafkaTopic,
	})
	if err != nil {
		panic(err)
	}
	defer producer.Close()
	go service.NewOutboxRelay(mysql.DB, producer).Run(context.Background())

	// Gin
	r := router.InitRouter(cfg, mysql.DB)
	if err := r.Run(cfg.Addr); err != nil {
		return
	}
}
