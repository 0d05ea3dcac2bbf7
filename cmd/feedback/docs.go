package main

// @title Feedback Service API
// @version 1.0
// @description Favorites and reviews of products with full observability (logging, tracing, metrics)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /

// Callers are identified by the X-User-Id header, set by the API gateway
// after it authenticates the request.
