package main

import "github.com/showquotes/transcript-api/cmd"

// @title           Transcript API
// @version         1.0.0
// @description     A scripted-dialogue transcript ingestion and query API with per-session datasets
// @contact.name    API Support
// @contact.url     https://github.com/showquotes/transcript-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8081
// @BasePath        /
// @schemes         http
func main() {
	cmd.Execute()
}
