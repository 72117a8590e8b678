package main

import (
	_ "premiumpay/docs"
	"premiumpay/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Premium Billing API
// @version         1.0
// @description     Payment capture, retry and premium upgrade service backed by PayPal and DynamoDB.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
