package services

import (
	"deepscan/internal/app/deps"
	drl "deepscan/internal/core/domain/rate_limiter"
	"deepscan/internal/core/services"
	analyzemedia "deepscan/internal/core/services/analyze_media"
	getadminactivity "deepscan/internal/core/services/get_admin_activity"
	getdashboard "deepscan/internal/core/services/get_dashboard"
	getuseractivity "deepscan/internal/core/services/get_user_activity"
	login "deepscan/internal/core/services/log_in"
	ratelimiting "deepscan/internal/core/services/rate_limiting"
	register "deepscan/internal/core/services/register"
	resetpassword "deepscan/internal/core/services/reset_password"
	sendpasswordresettoken "deepscan/internal/core/services/send_password_reset_token"
	summarizereport "deepscan/internal/core/services/summarize_report"
)

type Services struct {
	Register               services.Service[register.Input, register.Result]
	LogIn                  services.Service[login.Input, login.Result]
	SendPasswordResetToken services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	ResetPassword          services.Service[resetpassword.Input, resetpassword.Result]
	GetDashboard           services.Service[getdashboard.Input, getdashboard.Result]

	AnalyzeMedia     services.Service[analyzemedia.Input, analyzemedia.Result]
	SummarizeReport  services.Service[summarizereport.Input, summarizereport.Result]
	GetAdminActivity services.Service[getadminactivity.Input, getadminactivity.Result]
	GetUserActivity  services.Service[getuseractivity.Input, getuseractivity.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.Register = register.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.Now,
	)
	s.LogIn = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: uint16(deps.Config.LogInRateLimitPerHour)},
		login.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordHasher,
		),
	)
	s.SendPasswordResetToken = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: uint16(deps.Config.PasswordResetRateLimitPerHour)},
		sendpasswordresettoken.NewWithTokenSending(
			deps.Logger,
			deps.PasswordResetTokenSender,
			sendpasswordresettoken.New(
				deps.Logger,
				deps.UserRepository,
				deps.PasswordResetTokenGenerator,
				deps.Config.PasswordResetValidDuration,
				deps.Now,
			),
		),
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
		deps.Now,
	)
	s.GetDashboard = getdashboard.New(
		deps.Logger,
		deps.UserRepository,
	)

	s.AnalyzeMedia = analyzemedia.New(
		deps.Logger,
		deps.ReportGenerator,
		deps.AnalysisLogRepository,
		deps.Now,
	)
	s.SummarizeReport = summarizereport.New()
	s.GetAdminActivity = getadminactivity.New()
	s.GetUserActivity = getuseractivity.New(
		deps.Logger,
		deps.AnalysisLogRepository,
		deps.Now,
	)

	return s
}
