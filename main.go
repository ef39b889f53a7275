/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/hoaworks/reserve-api/cmd"

// @title           Reserve Study API
// @version         1.0.0
// @description     HOA reserve study API with document annotation, component registry, and funding reports
// @termsOfService  http://swagger.io/terms/
// @contact.name    API Support
// @contact.url     https://github.com/hoaworks/reserve-api
// @contact.email   support@example.com
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Supabase JWT, sent as "Bearer <token>"
func main() {
	cmd.Execute()
}
