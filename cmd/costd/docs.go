package main

// General API documentation for swaggo. Regenerate with `swag init -g cmd/costd/docs.go -o docs`.
//
// @title           costd API
// @version         1.0
// @description     HTTP API predicting yearly medical insurance charges from patient attributes.
//
// @contact.name   costd maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
