package controllers_fx

import (
	"go.uber.org/fx"
	"soberup/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewPatientController),
	fx.Provide(controllers.NewMoodController),
	fx.Provide(controllers.NewSupportLocationController))
