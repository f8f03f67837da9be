package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"soberup/internal/api/controllers"
	"soberup/internal/domain"
	"soberup/pkg/config"
	mem "soberup/pkg/memcache"
	"soberup/pkg/metrics"
	"soberup/pkg/middleware"
	"soberup/pkg/utils"
)

type RouterParams struct {
	fx.In

	Config     *config.Config
	DB         *gorm.DB
	Registry   *prometheus.Registry
	Collectors *metrics.Collectors
	JWTManager *utils.JWTManager
	Revoked    mem.RevokedTokenStore

	AccountController         *controllers.AccountController
	PatientController         *controllers.PatientController
	MoodController            *controllers.MoodController
	SupportLocationController *controllers.SupportLocationController
}

type Routes struct {
	Auth    gin.HandlerFunc
	Ping    func(ctx context.Context) error
	Metrics http.Handler

	Account         *controllers.AccountController
	Patient         *controllers.PatientController
	Mood            *controllers.MoodController
	SupportLocation *controllers.SupportLocationController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	if p.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(p.Config.HTTP.AllowedOrigins))
	r.Use(middleware.MetricsMiddleware(p.Collectors))

	RegisterRoutes(r, Routes{
		Auth:            middleware.JWTAuthMiddleware(p.JWTManager, p.Revoked),
		Ping:            pingDatabase(p.DB),
		Metrics:         promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}),
		Account:         p.AccountController,
		Patient:         p.PatientController,
		Mood:            p.MoodController,
		SupportLocation: p.SupportLocationController,
	})

	return r
}

func pingDatabase(db *gorm.DB) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

func RegisterRoutes(r *gin.Engine, routes Routes) {
	r.GET("/health", healthHandler(routes.Ping))
	if routes.Metrics != nil {
		r.GET("/metrics", gin.WrapH(routes.Metrics))
	}

	accounts := r.Group("/accounts")
	accounts.POST("/login", routes.Account.Login)
	accounts.GET("/username-exists", routes.Account.UsernameExists)
	accounts.POST("/logout", routes.Auth, routes.Account.Logout)

	patientOnly := middleware.RoleMiddleware(string(domain.RolePatient))

	patients := r.Group("/patients/me", routes.Auth, patientOnly)
	patients.GET("", routes.Patient.GetProfile)
	patients.GET("/dashboard", routes.Patient.GetDashboard)
	patients.PUT("/sos-contact", routes.Patient.UpdateSOSContact)
	patients.PUT("/sober-since", routes.Patient.SetSoberSince)
	patients.POST("/relapse", routes.Patient.MarkRelapse)
	patients.GET("/triggers", routes.Patient.ListTriggers)
	patients.POST("/triggers", routes.Patient.AddTrigger)
	patients.DELETE("/triggers", routes.Patient.DeleteTrigger)

	moods := r.Group("/moods", routes.Auth, patientOnly)
	moods.POST("", routes.Mood.SaveMood)
	moods.GET("", routes.Mood.ListMoods)
	moods.GET("/today", routes.Mood.GetToday)
	moods.GET("/month", routes.Mood.GetMonth)

	r.GET("/support-locations", routes.Auth, routes.SupportLocation.ListSupportLocations)
}

func healthHandler(ping func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				utils.RespondError(c, http.StatusServiceUnavailable, "Database unavailable")
				return
			}
		}
		utils.RespondSuccess(c, gin.H{"status": "ok"}, "Healthy")
	}
}
