/*
Copyright © 2025 tieubaoca
*/
package main

import (
	"github.com/joho/godotenv"
	"github.com/tieubaoca/pdfchat/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()
}
