package governor

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fernandosanchezjr/bitpatterns/config"
	"github.com/fernandosanchezjr/bitpatterns/patterns"
	"github.com/fernandosanchezjr/bitpatterns/utils"
	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

const WatchSettle = 500 * time.Millisecond

// Governor generates every pattern of a plan and reports the results.
type Governor struct {
	PlanPath string
	Out      io.Writer
	Dump     bool
	watcher  *fsnotify.Watcher
	mtx      sync.Mutex
}

func NewGovernor(planPath string, out io.Writer, dump bool) *Governor {
	return &Governor{PlanPath: planPath, Out: out, Dump: dump}
}

func (g *Governor) Run(ctx context.Context) ([]patterns.Result, error) {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	cfg, err := config.LoadConfig(g.PlanPath)
	if err != nil {
		return nil, err
	}
	return g.RunConfig(ctx, cfg)
}

func (g *Governor) RunConfig(ctx context.Context, cfg *config.Config) ([]patterns.Result, error) {
	requested, err := cfg.Patterns()
	if err != nil {
		return nil, err
	}
	if len(requested) == 0 {
		log.Warnln("No patterns configured!")
		return nil, nil
	}
	results, err := patterns.GenerateAll(ctx, requested)
	if err != nil {
		return nil, err
	}
	for _, result := range results {
		g.report(result)
		if g.Dump && g.Out != nil {
			if err = Dump(g.Out, result); err != nil {
				return results, err
			}
		}
	}
	return results, nil
}

func (g *Governor) report(result patterns.Result) {
	var width = result.Pattern.Width
	log.WithFields(log.Fields{
		"name":      result.Pattern.Name,
		"kind":      result.Pattern.Kind,
		"width":     width,
		"words":     utils.WordCount(len(result.Words)),
		"bytes":     utils.ByteSize(len(result.Words) * width.Bytes()),
		"signature": fmt.Sprintf("%04x", patterns.Signature(result.Words, width)),
	}).Infoln("Pattern")
}

// Dump writes one line per word: pattern name, index and hex value.
func Dump(out io.Writer, result patterns.Result) error {
	var digits = result.Pattern.Width.Bytes() * 2
	for i, word := range result.Words {
		if _, err := fmt.Fprintf(out, "%s\t%d\t%0*x\n", result.Pattern.Name, i, digits, word); err != nil {
			return err
		}
	}
	return nil
}

// Start runs the plan again every time the plan file changes.
func (g *Governor) Start(ctx context.Context) error {
	watcher, err := utils.NewFileWatcher(g.PlanPath, WatchSettle, func() {
		if _, err := g.Run(ctx); err != nil {
			log.WithError(err).Error("Plan changed")
		}
	})
	if err != nil {
		if watcher != nil {
			_ = watcher.Close()
		}
		return err
	}
	g.watcher = watcher
	return nil
}

func (g *Governor) Stop() {
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
}
