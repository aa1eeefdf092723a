// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/diminutivecoin/dimd/chaincfg"
)

func TestNodeMetricsNetwork(t *testing.T) {
	tests := []struct {
		params      *chaincfg.Params
		magic       string
		checkpoints float64
		latest      float64
	}{
		{chaincfg.MainNetParams, "a1e2b221", 23, 50000},
		{chaincfg.TestNetParams, "1eca39a1", 1, 0},
		{chaincfg.RegressionNetParams, "aab21512", 0, 0},
	}

	for _, test := range tests {
		m := newNodeMetrics()
		m.setNetwork(test.params)

		p := test.params
		require.Equal(t, 1.0, testutil.ToFloat64(
			m.networkInfo.WithLabelValues(p.Name, test.magic, p.DefaultPort)), p.Name)
		require.Equal(t, test.checkpoints, testutil.ToFloat64(m.checkpoints), p.Name)
		require.Equal(t, test.latest, testutil.ToFloat64(m.latestCheckpoint), p.Name)
		require.Equal(t, test.latest, testutil.ToFloat64(m.totalBlocksEstimate), p.Name)
	}
}

func TestMetricsServer(t *testing.T) {
	m := newNodeMetrics()
	m.setNetwork(chaincfg.MainNetParams)
	m.addSeeds("dns", 3)

	srv, err := startMetricsServer("127.0.0.1:0", m)
	require.Nil(t, err)
	defer srv.Stop()

	resp, errr := http.Get("http://" + srv.Addr() + prometheusEndpoint)
	require.NoError(t, errr)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, errr := io.ReadAll(resp.Body)
	require.NoError(t, errr)
	require.Contains(t, string(body),
		`dimd_network_info{magic="a1e2b221",network="mainnet",port="15500"} 1`)
	require.Contains(t, string(body), "dimd_checkpoints 23")
	require.Contains(t, string(body), `dimd_seed_addresses{source="dns"} 3`)

	resp2, errr := http.Get("http://" + srv.Addr() + "/other")
	require.NoError(t, errr)
	resp2.Body.Close()
	require.Equal(t, http.StatusNotFound, resp2.StatusCode)
}

func TestMetricsServerBadAddress(t *testing.T) {
	_, err := startMetricsServer("not-an-address", newNodeMetrics())
	require.NotNil(t, err)
}
