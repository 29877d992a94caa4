package main

import (
	_ "paygate/docs"
	"paygate/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Payment Gateway API
// @version         1.0
// @description     Card payment authorization gateway backed by an acquiring bank.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
