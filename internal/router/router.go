package router

import (
	"IEDC_Club/internal/config"
	"IEDC_Club/internal/handler"
	"IEDC_Club/internal/middleware"
	"IEDC_Club/internal/model"
	"IEDC_Club/internal/pkg"
	"IEDC_Club/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func InitRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	smtpCfg := pkg.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}
	mailer := service.NewSMTPMailer(smtpCfg)

	member := handler.NewMemberHandler(service.NewMemberService(db, mailer))
	execom := handler.NewExecomHandler(service.NewExecomService(db, mailer, cfg.EligibleSemesters, cfg.ExecomCallOpen))
	admin := handler.NewAdminHandler(service.NewAdminService(db))
	community := handler.NewSubCommunityHandler(service.NewSubCommunityService(db))

	// 报名相关公开接口
	regGroup := r.Group("/registrations")
	{
		regGroup.POST("", member.Register)
		regGroup.GET("/public-lookup", member.PublicLookup)
		regGroup.GET("/execom-call-check", execom.Check)
		regGroup.POST("/execom-call", execom.Submit)
	}

	// 报名相关管理接口
	regAdmin := r.Group("/registrations")
	regAdmin.Use(middleware.AuthMiddleware(), middleware.RequireRole(model.RoleAdmin))
	{
		regAdmin.GET("/execom-call-responses", execom.Responses)
		regAdmin.GET("/execom-call-export", execom.Export)
		regAdmin.PUT("/execom-call/:membershipId/approve", execom.Approve)
		regAdmin.PUT("/execom-call/:membershipId/reject", execom.Reject)
		regAdmin.DELETE("/execom-call/:membershipId", execom.Delete)

		regAdmin.GET("/members", member.List)
		regAdmin.PUT("/members/:membershipId/approve", member.Approve)
		regAdmin.PUT("/members/:membershipId/reject", member.Reject)
		regAdmin.DELETE("/members/:membershipId", member.Delete)
	}

	// 子社区/团队名单公开接口
	r.GET("/communities", community.List)
	r.GET("/team", community.Team)

	// 子社区/团队名单管理接口
	infoAdmin := r.Group("")
	infoAdmin.Use(middleware.AuthMiddleware(), middleware.RequireRole(model.RoleAdmin))
	{
		infoAdmin.POST("/communities", community.Create)
		infoAdmin.DELETE("/communities/:name", community.Delete)
		infoAdmin.POST("/team", community.AddTeamMember)
		infoAdmin.DELETE("/team/:id", community.RemoveTeamMember)
	}

	// 后台账号相关接口
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", admin.Login)
	}
	adminAuth := r.Group("/api/admin")
	adminAuth.Use(middleware.AuthMiddleware())
	{
		adminAuth.POST("/logout", admin.Logout)
	}
	adminIIC := r.Group("/api/admin")
	adminIIC.Use(middleware.AuthMiddleware(), middleware.RequireRole(model.RoleIICAdmin))
	{
		adminIIC.POST("/accounts", admin.CreateAccount)
	}

	// token相关接口
	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", admin.TokenRefresh)
	}

	return r
}
