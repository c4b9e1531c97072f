package main

// General API documentation for swaggo. Regenerate the docs package with
// `swag init -g cmd/llmboard/docs.go -o docs` and build with -tags swagger.
//
// @title           llmboard API
// @version         1.0
// @description     Leaderboard of large language models: rankings, model detail, red-teaming results and crawler artifacts.
//
// @contact.name   llmboard maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http https
