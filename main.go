package main

import (
	"context"
	"flag"
	"os"
	"runtime/pprof"
	"runtime/trace"

	"github.com/fernandosanchezjr/bitpatterns/config"
	"github.com/fernandosanchezjr/bitpatterns/governor"
	"github.com/fernandosanchezjr/bitpatterns/logging"
	"github.com/fernandosanchezjr/bitpatterns/utils"
	log "github.com/sirupsen/logrus"
)

var cpuProfile bool
var tracing bool
var dump bool
var watch bool

func init() {
	flag.BoolVar(&cpuProfile, "cpu-profile", cpuProfile, "enable cpu profiling")
	flag.BoolVar(&tracing, "trace", tracing, "enable tracing")
	flag.BoolVar(&dump, "dump", dump, "print every generated word to stdout")
	flag.BoolVar(&watch, "watch", watch, "regenerate when the plan file changes")
}

func main() {
	flag.Parse()
	if err := logging.SetupLogger(); err != nil {
		log.Fatal(err)
	}
	defer logging.Close()
	if cpuProfile {
		f, err := os.Create("bitpatterns.prof")
		if err != nil {
			panic(err)
		}
		if err = pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer pprof.StopCPUProfile()
	}
	if tracing {
		f, err := os.Create("bitpatterns.trace")
		if err != nil {
			panic(err)
		}
		if err := trace.Start(f); err != nil {
			panic(err)
		}
		defer trace.Stop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	gov := governor.NewGovernor(config.PlanPath(), os.Stdout, dump)
	if _, err := gov.Run(ctx); err != nil {
		if !watch {
			log.WithError(err).Fatal("Plan failed")
		}
		log.WithError(err).Error("Plan failed")
	} else if !watch {
		return
	}
	if err := gov.Start(ctx); err != nil {
		log.WithError(err).Error("Could not watch plan")
		return
	}
	utils.Wait()
	gov.Stop()
}
