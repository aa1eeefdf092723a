// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package connmgr

import (
	"encoding/binary"
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/require"
)

// startDNSServer serves a single zone answering A and AAAA questions for
// seed.example.
func startDNSServer(t *testing.T) string {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := dns.HandlerFunc(func(w dns.ResponseWriter, r *dns.Msg) {
		m := new(dns.Msg)
		m.SetReply(r)
		q := r.Question[0]
		if q.Name != "seed.example." {
			m.Rcode = dns.RcodeNameError
			w.WriteMsg(m)
			return
		}
		var rrs []string
		switch q.Qtype {
		case dns.TypeA:
			rrs = []string{"seed.example. 60 IN A 10.1.2.3", "seed.example. 60 IN A 10.1.2.4"}
		case dns.TypeAAAA:
			rrs = []string{"seed.example. 60 IN AAAA 2001:db8::1"}
		}
		for _, s := range rrs {
			rr, err := dns.NewRR(s)
			if err == nil {
				m.Answer = append(m.Answer, rr)
			}
		}
		w.WriteMsg(m)
	})

	server := &dns.Server{PacketConn: pc, Handler: handler}
	go server.ActivateAndServe()
	t.Cleanup(func() { server.Shutdown() })
	return pc.LocalAddr().String()
}

func TestDNSLookup(t *testing.T) {
	lookup := DNSLookup(startDNSServer(t), 2*time.Second)

	ips, err := lookup("seed.example")
	require.Nil(t, err)
	got := make([]string, 0, len(ips))
	for _, ip := range ips {
		got = append(got, ip.String())
	}
	require.Equal(t, []string{"10.1.2.3", "10.1.2.4", "2001:db8::1"}, got)

	_, err = lookup("missing.example")
	require.True(t, ErrDNSLookupFailed.Is(err), "got %v", err)
}

func TestSystemDNSServer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resolv.conf")
	require.NoError(t, os.WriteFile(path,
		[]byte("# test\nnameserver 192.0.2.53\nnameserver 192.0.2.54\n"), 0600))

	server, err := SystemDNSServer(path)
	require.Nil(t, err)
	require.Equal(t, "192.0.2.53:53", server)

	_, err = SystemDNSServer(filepath.Join(dir, "missing"))
	require.NotNil(t, err)
}

// fakeTorProxy answers one resolve request with status and, on success, the
// address 10.9.8.7.
func fakeTorProxy(t *testing.T, status byte) string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })

	go func() {
		conn, err := l.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		greeting := make([]byte, 3)
		if _, err := io.ReadFull(conn, greeting); err != nil {
			return
		}
		conn.Write([]byte{5, 0})

		head := make([]byte, 5)
		if _, err := io.ReadFull(conn, head); err != nil {
			return
		}
		rest := make([]byte, int(head[4])+2)
		if _, err := io.ReadFull(conn, rest); err != nil {
			return
		}
		if status != torSucceeded {
			conn.Write([]byte{5, status, 0, 1})
			return
		}
		addr := make([]byte, 4)
		binary.BigEndian.PutUint32(addr, 0x0a090807)
		conn.Write(append([]byte{5, 0, 0, 1}, addr...))
	}()
	return l.Addr().String()
}

func TestTorLookup(t *testing.T) {
	ips, err := TorLookup(fakeTorProxy(t, torSucceeded), 2*time.Second)("seed1.dimi.net")
	require.Nil(t, err)
	require.Len(t, ips, 1)
	require.Equal(t, "10.9.8.7", ips[0].String())

	_, err = TorLookupIP("seed1.dimi.net", fakeTorProxy(t, torHostUnreachable), 2*time.Second)
	require.True(t, torStatusErrors[torHostUnreachable].Is(err), "got %v", err)

	_, err = TorLookupIP("seed1.dimi.net", fakeTorProxy(t, 0x42), 2*time.Second)
	require.True(t, ErrTorInvalidProxyResponse.Is(err), "got %v", err)
}
