package main

import "github.com/ASL-Live-Subtitles/model-serving-microservice/cmd"

// @title           Model Serving Microservice
// @version         1.0.0
// @description     CRUD API for gesture-recognition models, landmark frames, and batch predictions
// @contact.name    API Support
// @contact.url     https://github.com/ASL-Live-Subtitles/model-serving-microservice
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8001
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
