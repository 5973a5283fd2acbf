package main

import (
	"github.com/allinwom/storefront/config"
	"github.com/allinwom/storefront/internal/api"
)

func main() {
	cfg := config.MustLoad()
	api.StartServer(cfg)
}
