package main

import (
	_ "boarding_house/docs"
	"boarding_house/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Boarding House Billing API
// @version         1.0
// @description     Rooms, tenants, meter readings and monthly invoices of a boarding house, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
