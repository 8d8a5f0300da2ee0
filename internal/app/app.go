package app

import (
	"deepscan/internal/app/deps"
	"deepscan/internal/app/services"
	adminactivity "deepscan/internal/http/handlers/analysis/admin_activity"
	analyze "deepscan/internal/http/handlers/analysis/analyze"
	summarize "deepscan/internal/http/handlers/analysis/summarize"
	useractivity "deepscan/internal/http/handlers/analysis/user_activity"
	dashboard "deepscan/internal/http/handlers/auth/dashboard"
	login "deepscan/internal/http/handlers/auth/log_in"
	register "deepscan/internal/http/handlers/auth/register"
	resetpassword "deepscan/internal/http/handlers/auth/reset_password"
	sendpasswordresettoken "deepscan/internal/http/handlers/auth/send_password_reset_token"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	apiRouter := chi.NewRouter()
	apiRouter.Method(http.MethodPost, "/analyze", analyze.New(s.AnalyzeMedia))
	apiRouter.Method(http.MethodPost, "/summarize", summarize.New(s.SummarizeReport))
	apiRouter.Method(http.MethodGet, "/admin/activity", adminactivity.New(s.GetAdminActivity))
	apiRouter.Method(http.MethodGet, "/user-activity/{userID}", useractivity.New(s.GetUserActivity))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Method(http.MethodPost, "/register", register.New(s.Register))
	router.Method(http.MethodPost, "/login", login.New(s.LogIn))
	router.Method(
		http.MethodPost,
		"/forgot-password",
		sendpasswordresettoken.New(s.SendPasswordResetToken, isTestMode),
	)
	router.Method(http.MethodPost, "/reset-password", resetpassword.New(s.ResetPassword))
	router.Method(http.MethodGet, "/dashboard", dashboard.New(s.GetDashboard))
	router.Mount("/api", apiRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
