package cli

import (
	"github.com/felixgeelhaar/resto/internal/guide/application/commands"
	"github.com/felixgeelhaar/resto/internal/guide/application/queries"
)

// App holds the CLI application dependencies.
type App struct {
	// Command Handlers
	CreateCityHandler              *commands.CreateCityHandler
	CreateRestaurantHandler        *commands.CreateRestaurantHandler
	UpdateRestaurantDetailsHandler *commands.UpdateRestaurantDetailsHandler
	UpdateRestaurantAddressHandler *commands.UpdateRestaurantAddressHandler
	DeleteRestaurantHandler        *commands.DeleteRestaurantHandler
	AddBasicEvaluationHandler      *commands.AddBasicEvaluationHandler
	AddCompleteEvaluationHandler   *commands.AddCompleteEvaluationHandler

	// Query Handlers
	ListRestaurantsHandler *queries.ListRestaurantsHandler
	GetRestaurantHandler   *queries.GetRestaurantHandler
	ListCitiesHandler      *queries.ListCitiesHandler
	ListTypesHandler       *queries.ListTypesHandler
	ListCriteriaHandler    *queries.ListCriteriaHandler
}

var app *App

// SetApp sets the global CLI application.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application.
func GetApp() *App {
	return app
}
