package main

import (
	"log"
	"os"
	"strings"

	httpadapter "github.com/p-rivero/EDA-ThePurge2020/internal/adapter/http"
	metricsinmem "github.com/p-rivero/EDA-ThePurge2020/internal/adapter/metrics/inmemory"
	"github.com/p-rivero/EDA-ThePurge2020/internal/config"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	cfg, err := config.Load(strings.TrimSpace(os.Getenv("PURGE_CONFIG")))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	addr := resolveAddr(cfg.Addr)

	kpiRecorder := metricsinmem.NewRecorder()
	h := &httpadapter.Handler{
		Metrics: kpiRecorder,
		Tuning:  cfg.Tuning,
		KPI:     kpiRecorder,
	}

	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("agentd listening on %s", addr)
	s.Spin()
}

func resolveAddr(fallback string) string {
	if addr := strings.TrimSpace(os.Getenv("PURGE_ADDR")); addr != "" {
		return addr
	}
	if fallback != "" {
		return fallback
	}
	return ":8080"
}
