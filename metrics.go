// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/hex"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/diminutivecoin/dimd/blockchain"
	"github.com/diminutivecoin/dimd/btcutil/er"
	"github.com/diminutivecoin/dimd/chaincfg"
)

const prometheusEndpoint = "/metrics"

// nodeMetrics are the gauges exported under --prometheus.  They live in their
// own registry so tests can build as many as they like.
type nodeMetrics struct {
	registry *prometheus.Registry

	networkInfo         *prometheus.GaugeVec
	checkpoints         prometheus.Gauge
	latestCheckpoint    prometheus.Gauge
	totalBlocksEstimate prometheus.Gauge
	seedAddresses       *prometheus.GaugeVec
}

func newNodeMetrics() *nodeMetrics {
	m := &nodeMetrics{
		registry: prometheus.NewRegistry(),
		networkInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "dimd",
			Name:      "network_info",
			Help:      "Selected network, always 1",
		}, []string{"network", "magic", "port"}),
		checkpoints: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "dimd",
			Name:      "checkpoints",
			Help:      "Number of hard checkpoints of the selected network",
		}),
		latestCheckpoint: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "dimd",
			Name:      "checkpoint_latest_height",
			Help:      "Height of the highest hard checkpoint",
		}),
		totalBlocksEstimate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "dimd",
			Name:      "total_blocks_estimate",
			Help:      "Lower bound on the chain height implied by the checkpoints",
		}),
		seedAddresses: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "dimd",
			Name:      "seed_addresses",
			Help:      "Bootstrap peer addresses gathered, by source",
		}, []string{"source"}),
	}
	m.registry.MustRegister(m.networkInfo, m.checkpoints, m.latestCheckpoint,
		m.totalBlocksEstimate, m.seedAddresses)
	return m
}

// setNetwork records the static facts about the selected network.
func (m *nodeMetrics) setNetwork(p *chaincfg.Params) {
	start := p.Net.MessageStart()
	m.networkInfo.WithLabelValues(p.Name, hex.EncodeToString(start[:]), p.DefaultPort).Set(1)
	m.checkpoints.Set(float64(len(p.Checkpoints())))
	if cp := p.LatestCheckpoint(); cp != nil {
		m.latestCheckpoint.Set(float64(cp.Height))
	}
	m.totalBlocksEstimate.Set(float64(blockchain.TotalBlocksEstimate(p)))
}

func (m *nodeMetrics) addSeeds(source string, n int) {
	m.seedAddresses.WithLabelValues(source).Add(float64(n))
}

func (m *nodeMetrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// metricsServer serves nodeMetrics over http until stopped.
type metricsServer struct {
	listener net.Listener
	server   *http.Server
}

func startMetricsServer(listen string, m *nodeMetrics) (*metricsServer, er.R) {
	l, errr := net.Listen("tcp", listen)
	if errr != nil {
		return nil, er.E(errr)
	}
	mux := http.NewServeMux()
	mux.Handle(prometheusEndpoint, m.handler())
	s := &metricsServer{
		listener: l,
		server:   &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second},
	}
	go func() {
		if errr := s.server.Serve(l); errr != nil && errr != http.ErrServerClosed {
			dimdLog.Errorf("Prometheus server stopped: %v", errr)
		}
	}()
	dimdLog.Infof("Prometheus metrics on http://%s%s", l.Addr(), prometheusEndpoint)
	return s, nil
}

func (s *metricsServer) Addr() string {
	return s.listener.Addr().String()
}

func (s *metricsServer) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if errr := s.server.Shutdown(ctx); errr != nil {
		dimdLog.Warnf("Prometheus server shutdown: %v", errr)
	}
}
