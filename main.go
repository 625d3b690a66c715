package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/buenrollo/spots-admin/cmd/app"
)

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token issued by the console's identity provider
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
