package main

import "github.com/camoo/payment-api/internal/cli"

func main() {
	cli.Execute()
}
