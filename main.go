package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/crossmesh/rootmanager/accumulator"
	"github.com/crossmesh/rootmanager/config"
	"github.com/crossmesh/rootmanager/core/entity"
	"github.com/crossmesh/rootmanager/core/events"
	"github.com/crossmesh/rootmanager/core/gateway"
	"github.com/crossmesh/rootmanager/core/gateway/chains"
	"github.com/crossmesh/rootmanager/core/registry"
	"github.com/crossmesh/rootmanager/core/rootmanager"
	"github.com/crossmesh/rootmanager/io/connector"
	"github.com/crossmesh/rootmanager/io/db"
	"github.com/crossmesh/rootmanager/io/gateway/grpc/server"
	"github.com/crossmesh/rootmanager/io/store"
	"github.com/crossmesh/rootmanager/io/trace"
	"github.com/openzipkin/zipkin-go"
	log "github.com/sirupsen/logrus"
	"github.com/vadiminshakov/gowal"
)

func main() {
	conf := config.Get()

	wal, err := gowal.NewWAL(gowal.Config{
		Dir:              conf.WALPath,
		Prefix:           "inbound",
		SegmentThreshold: 1024 * 1024,
		MaxSegments:      64,
		IsInSyncDiskMode: true,
	})
	if err != nil {
		log.Fatalf("failed to open wal: %v", err)
	}

	stateStore, recovery, err := store.New(wal, filepath.Join(conf.DBPath, "state"))
	if err != nil {
		log.Fatalf("failed to open state store: %v", err)
	}

	acc := accumulator.New()
	for _, root := range recovery.DrainedRoots {
		acc.Enqueue(root)
	}

	bus := events.NewBus()
	auth := registry.NewStaticAuth(entity.Address(conf.Owner), addresses(conf.Watchers))
	reg := registry.New(auth, bus)
	dialer := connector.NewDialer()

	manager, err := rootmanager.New(rootmanager.Config{
		InitialMode:      rootmanager.Mode(conf.Mode),
		DisputeTime:      conf.DisputeTime,
		SnapshotDuration: conf.SnapshotDuration,
	}, reg, auth, acc, stateStore, dialer, bus, &rootmanager.Recovered{
		PendingRoots:   recovery.PendingRoots,
		NextQueueIndex: recovery.NextIndex,
		Watermark:      recovery.Watermark,
		LastPropagated: recovery.LastPropagated,
		Mode:           rootmanager.Mode(recovery.Mode),
	})
	if err != nil {
		log.Fatalf("failed to build root manager: %v", err)
	}

	repo, err := db.New(filepath.Join(conf.DBPath, "gateway"))
	if err != nil {
		log.Fatalf("failed to open gateway db: %v", err)
	}

	gate := gateway.New(gateway.Config{
		Relayer:           entity.Address(conf.Relayer),
		Keepers:           addresses(conf.Keepers),
		PropagateCooldown: conf.PropagateCooldown,
		ProposeCooldown:   conf.ProposeCooldown,
	}, manager, auth, db.NewFeeLedger(repo), db.NewProcessedSet(repo), chains.Verifiers{}, bus)

	var tracer *zipkin.Tracer
	if conf.WithTrace {
		tracer, err = trace.Tracer("rootmanager", conf.Nodeaddr)
		if err != nil {
			log.Fatalf("failed to create tracer: %v", err)
		}
	}

	srv, err := server.New(conf, tracer, manager, gate, reg)
	if err != nil {
		log.Fatalf("failed to build server: %v", err)
	}
	srv.Run(server.WhiteListChecker)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	srv.Stop()
	if err := dialer.Close(); err != nil {
		log.Warnf("failed to close connector dialer: %v", err)
	}
	if err := repo.Close(); err != nil {
		log.Warnf("failed to close gateway db: %v", err)
	}
	if err := stateStore.Close(); err != nil {
		log.Warnf("failed to close state store: %v", err)
	}
	if err := wal.Close(); err != nil {
		log.Warnf("failed to close wal: %v", err)
	}
}

func addresses(raw []string) []entity.Address {
	out := make([]entity.Address, 0, len(raw))
	for _, r := range raw {
		out = append(out, entity.Address(r))
	}
	return out
}
