package apiserver

import (
	"github.com/kinetra/kinetra/internal/apiserver/config"
)

func Run(cfg *config.Config) error {
	server, err := createAPIServer(cfg)
	if err != nil {
		return err
	}

	return server.PrepareRun(cfg).Run()
}
