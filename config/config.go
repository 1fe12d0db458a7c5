package config

import (
	"flag"
	"strings"
	"time"
)

type Config struct {
	Nodeaddr          string
	Whitelist         []string
	DBPath            string
	WALPath           string
	Mode              string
	DisputeTime       time.Duration
	SnapshotDuration  time.Duration
	PropagateCooldown time.Duration
	ProposeCooldown   time.Duration
	Owner             string
	Watchers          []string
	Relayer           string
	Keepers           []string
	WithTrace         bool
}

// Get creates configuration from command-line arguments.
func Get() *Config {
	nodeaddr := flag.String("nodeaddr", "localhost:3050", "node address")
	whitelist := flag.String("whitelist", "127.0.0.1", "allowed hosts")
	dbpath := flag.String("dbpath", "./badger", "database path on filesystem")
	walpath := flag.String("walpath", "./wal", "inbound root journal path")
	mode := flag.String("mode", "slow", "initial aggregation mode (slow or optimistic)")
	disputeTime := flag.Duration("disputetime", 30*time.Minute, "optimistic proposal dispute window")
	snapshotDuration := flag.Duration("snapshotduration", 30*time.Minute, "snapshot window binding proposals to time")
	propagateCooldown := flag.Duration("propagatecooldown", 5*time.Minute, "minimum delay between propagations")
	proposeCooldown := flag.Duration("proposecooldown", 5*time.Minute, "minimum delay between proposals")
	owner := flag.String("owner", "", "owner address")
	watchers := flag.String("watchers", "", "comma-separated watcher addresses")
	relayer := flag.String("relayer", "", "privileged relayer address")
	keepers := flag.String("keepers", "", "comma-separated keeper addresses on the credit rail")
	withTrace := flag.Bool("withtrace", false, "report zipkin spans")
	flag.Parse()

	return &Config{
		Nodeaddr:          *nodeaddr,
		Whitelist:         splitNonEmpty(*whitelist),
		DBPath:            *dbpath,
		WALPath:           *walpath,
		Mode:              *mode,
		DisputeTime:       *disputeTime,
		SnapshotDuration:  *snapshotDuration,
		PropagateCooldown: *propagateCooldown,
		ProposeCooldown:   *proposeCooldown,
		Owner:             *owner,
		Watchers:          splitNonEmpty(*watchers),
		Relayer:           *relayer,
		Keepers:           splitNonEmpty(*keepers),
		WithTrace:         *withTrace,
	}
}

func splitNonEmpty(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
