package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof" // Import pprof for profiling endpoints
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cuemby/burrow/pkg/command"
	"github.com/cuemby/burrow/pkg/config"
	"github.com/cuemby/burrow/pkg/director"
	"github.com/cuemby/burrow/pkg/engine"
	"github.com/cuemby/burrow/pkg/log"
	"github.com/cuemby/burrow/pkg/metrics"
	"github.com/cuemby/burrow/pkg/placement"
	"github.com/cuemby/burrow/pkg/types"
	"github.com/spf13/cobra"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "burrow",
	Short: "Burrow - Raft-replicated key-value storage node",
	Long: `Burrow is a distributed key-value store that replicates contiguous
key ranges (regions) across nodes with Raft and coordinates their
placement through a cluster-wide director.`,
	Version: Version,
}

func init() {
	// Set version template
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"Burrow version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	// Global flags
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Output logs in JSON format")

	// Initialize logging before command execution
	cobra.OnInitialize(initLogging)

	rootCmd.AddCommand(storeCmd)
}

func initLogging() {
	logLevel, _ := rootCmd.PersistentFlags().GetString("log-level")
	logJSON, _ := rootCmd.PersistentFlags().GetBool("log-json")

	log.Init(log.Config{
		Level:      log.Level(logLevel),
		JSONOutput: logJSON,
	})
}

// Store commands
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the local store",
}

var storeStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a standalone store with an embedded director",
	Long: `Start a single-node store: opens the storage engine, embeds an
in-process placement director, and runs the placement worker against it.
A clustered deployment replaces the embedded director with a remote one.`,
	RunE: runStoreStart,
}

func init() {
	storeStartCmd.Flags().String("config", "", "Path to YAML config file")
	storeStartCmd.Flags().String("data-dir", "", "Override the configured data directory")
	storeCmd.AddCommand(storeStartCmd)
}

func runStoreStart(cmd *cobra.Command, args []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	dataDir, _ := cmd.Flags().GetString("data-dir")

	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	eng, err := engine.OpenBolt(cfg.DataDir)
	if err != nil {
		return err
	}
	defer eng.Close()

	dir := director.NewLocal()
	storeID := dir.AllocID()

	outbound := command.NewChannel(4096)
	worker := placement.NewWorker("placement", 256)
	worker.Start(placement.NewRunner(storeID, dir, outbound, eng))

	log.Logger.Info().
		Uint64("store_id", storeID).
		Str("cluster_id", dir.ClusterID()).
		Str("data_dir", cfg.DataDir).
		Msg("Store started")

	// In a full node the Raft layer consumes the outbound channel;
	// standalone mode acknowledges commands directly.
	go drainOutbound(outbound)

	stopCh := make(chan struct{})
	go storeHeartbeatLoop(worker, eng, cfg, storeID, stopCh)

	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr)
	}

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("Shutting down")
	close(stopCh)
	worker.Stop()
	outbound.Close()
	return nil
}

func drainOutbound(outbound *command.Channel) {
	for msg := range outbound.Receive() {
		switch data := msg.Data.(type) {
		case *command.MsgRaftCmd:
			log.Logger.Debug().
				Uint64("region_id", msg.RegionID).
				Str("cmd_type", string(data.Request.Admin.CmdType)).
				Msg("Acknowledging admin command")
			data.Callback.Done(&command.RaftCmdResponse{Header: data.Request.Header})
		case *command.RaftMessage:
			log.Logger.Debug().
				Uint64("region_id", msg.RegionID).
				Bool("tombstone", data.IsTombstone).
				Msg("Dropping raft message without a raft layer")
		}
	}
}

func storeHeartbeatLoop(worker *placement.Worker, eng engine.Engine, cfg *config.Config, storeID uint64, stopCh <-chan struct{}) {
	ticker := time.NewTicker(cfg.StoreHeartbeatInterval.Std())
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			err := worker.Schedule(placement.Task{
				Type: placement.TaskTypeStoreHeartbeat,
				Data: &placement.StoreHeartbeatTask{
					Stats: &types.StoreStats{StoreID: storeID},
					StoreInfo: placement.StoreInfo{
						Engine:   eng,
						Capacity: cfg.Capacity,
					},
				},
			})
			if err != nil {
				log.Logger.Warn().Err(err).Msg("Skipped store heartbeat tick")
			}
		case <-stopCh:
			return
		}
	}
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})

	log.Logger.Info().Str("addr", addr).Msg("Serving metrics")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Logger.Error().Err(err).Msg("Metrics server failed")
	}
}
