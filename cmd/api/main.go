package main

import (
	"context"
	"os"

	"agenda_rastreadores/cmd/api/app"

	_ "github.com/joho/godotenv/autoload"
	_ "go.uber.org/automaxprocs"
)

// @title           Agenda de Rastreadores API
// @version         1.0
// @description     Scheduling of tracker installations, maintenance and removals, with an audit trail per job.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := app.NewAPICommand(context.Background()).Execute(); err != nil {
		os.Exit(1)
	}
}
