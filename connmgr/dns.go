// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package connmgr

import (
	"net"
	"time"

	"github.com/miekg/dns"

	"github.com/diminutivecoin/dimd/btcutil/er"
)

// DefaultResolvConf is where SystemDNSServer looks for name servers.
const DefaultResolvConf = "/etc/resolv.conf"

// SystemDNSServer returns the first name server listed in the resolver
// configuration at path, as host:port.
func SystemDNSServer(path string) (string, er.R) {
	conf, errr := dns.ClientConfigFromFile(path)
	if errr != nil {
		return "", er.E(errr)
	}
	if len(conf.Servers) == 0 {
		return "", ErrDNSLookupFailed.New("no name server in "+path, nil)
	}
	return net.JoinHostPort(conf.Servers[0], conf.Port), nil
}

// DNSLookup returns a LookupFunc which asks server, given as host:port, for
// the A and AAAA records of a host.
func DNSLookup(server string, timeout time.Duration) LookupFunc {
	client := &dns.Client{
		Net:          "udp",
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	return func(host string) ([]net.IP, er.R) {
		var ips []net.IP
		for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
			found, err := exchange(client, server, host, qtype)
			if err != nil {
				return nil, err
			}
			ips = append(ips, found...)
		}
		return ips, nil
	}
}

func exchange(client *dns.Client, server, host string, qtype uint16) ([]net.IP, er.R) {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(host), qtype)
	m.RecursionDesired = true

	r, _, errr := client.Exchange(m, server)
	if errr != nil {
		return nil, ErrDNSLookupFailed.New(host, er.E(errr))
	}
	if r.Rcode != dns.RcodeSuccess {
		return nil, ErrDNSLookupFailed.New(host+": "+dns.RcodeToString[r.Rcode], nil)
	}

	var ips []net.IP
	for _, rr := range r.Answer {
		switch a := rr.(type) {
		case *dns.A:
			ips = append(ips, a.A)
		case *dns.AAAA:
			ips = append(ips, a.AAAA)
		}
	}
	return ips, nil
}
