package main

import (
	"log"

	"github.com/ory/graceful"
	flag "github.com/spf13/pflag"

	"github.com/davidmsteixeira-ops/aurem-private-workspace/cmd/dashboard/controller"
	"github.com/davidmsteixeira-ops/aurem-private-workspace/service/singleton"
)

type dashboardCliParam struct {
	Version    bool
	ConfigFile string
	DBFile     string
}

var dashboardCli dashboardCliParam

func init() {
	flag.BoolVarP(&dashboardCli.Version, "version", "v", false, "show version then exit")
	flag.StringVarP(&dashboardCli.ConfigFile, "config", "c", "data/config.yaml", "config file path")
	flag.StringVar(&dashboardCli.DBFile, "db", "data/sqlite.db", "sqlite database path")
	flag.Parse()

	if dashboardCli.Version {
		log.Println(singleton.Version)
		return
	}

	singleton.Init()
	singleton.InitConfigFromPath(dashboardCli.ConfigFile)
	singleton.InitDBFromPath(dashboardCli.DBFile)
	singleton.InitGeoIP()
	singleton.LoadSingleton()
}

func main() {
	if dashboardCli.Version {
		return
	}

	srv := controller.ServeWeb()
	log.Println("AUREM>>", singleton.Conf.Site.Brand, singleton.Version, "listening on", srv.Addr)
	if err := graceful.Graceful(srv.ListenAndServe, srv.Shutdown); err != nil {
		log.Printf("AUREM>> server shutdown: %v", err)
	}
}
