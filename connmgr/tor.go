// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package connmgr

import (
	"io"
	"net"
	"time"

	"github.com/diminutivecoin/dimd/btcutil/er"
)

const (
	torSucceeded         = 0x00
	torGeneralError      = 0x01
	torNotAllowed        = 0x02
	torNetUnreachable    = 0x03
	torHostUnreachable   = 0x04
	torConnectionRefused = 0x05
	torTTLExpired        = 0x06
	torCmdNotSupported   = 0x07
	torAddrNotSupported  = 0x08
)

// torStatusErrors carry the SOCKS reply status as their Number.
var torStatusErrors = map[byte]*er.ErrorCode{
	torGeneralError:      Err.CodeWithNumber("tor general error", torGeneralError),
	torNotAllowed:        Err.CodeWithNumber("tor not allowed", torNotAllowed),
	torNetUnreachable:    Err.CodeWithNumber("tor network is unreachable", torNetUnreachable),
	torHostUnreachable:   Err.CodeWithNumber("tor host is unreachable", torHostUnreachable),
	torConnectionRefused: Err.CodeWithNumber("tor connection refused", torConnectionRefused),
	torTTLExpired:        Err.CodeWithNumber("tor TTL expired", torTTLExpired),
	torCmdNotSupported:   Err.CodeWithNumber("tor command not supported", torCmdNotSupported),
	torAddrNotSupported:  Err.CodeWithNumber("tor address type not supported", torAddrNotSupported),
}

// TorLookup returns a LookupFunc which resolves seeds through the Tor proxy
// at proxy, so seeding does not leak DNS queries.
func TorLookup(proxy string, timeout time.Duration) LookupFunc {
	return func(host string) ([]net.IP, er.R) {
		return TorLookupIP(host, proxy, timeout)
	}
}

// TorLookupIP uses Tor to resolve DNS via the SOCKS extension they provide for
// resolution over the Tor network. Tor itself doesn't support ipv6 so this
// doesn't either.
func TorLookupIP(host, proxy string, timeout time.Duration) ([]net.IP, er.R) {
	if len(host) > 255 {
		return nil, ErrTorInvalidProxyResponse.New("host name too long", nil)
	}
	conn, errr := net.DialTimeout("tcp", proxy, timeout)
	if errr != nil {
		return nil, er.E(errr)
	}
	defer conn.Close()
	if timeout > 0 {
		if errr := conn.SetDeadline(time.Now().Add(timeout)); errr != nil {
			return nil, er.E(errr)
		}
	}

	// Greeting: version 5, one method, no authentication.
	if _, errr := conn.Write([]byte{5, 1, 0}); errr != nil {
		return nil, er.E(errr)
	}
	buf := make([]byte, 2)
	if _, errr := io.ReadFull(conn, buf); errr != nil {
		return nil, er.E(errr)
	}
	if buf[0] != 5 {
		return nil, ErrTorInvalidProxyResponse.Default()
	}
	if buf[1] != 0 {
		return nil, ErrTorUnrecognizedAuthMethod.Default()
	}

	req := make([]byte, 7+len(host))
	req[0] = 5    // protocol version
	req[1] = 0xf0 // Tor Resolve
	req[2] = 0    // reserved
	req[3] = 3    // domain name
	req[4] = byte(len(host))
	copy(req[5:], host)
	// The last two bytes are port 0.
	if _, errr := conn.Write(req); errr != nil {
		return nil, er.E(errr)
	}

	reply := make([]byte, 4)
	if _, errr := io.ReadFull(conn, reply); errr != nil {
		return nil, er.E(errr)
	}
	if reply[0] != 5 {
		return nil, ErrTorInvalidProxyResponse.Default()
	}
	if reply[1] != torSucceeded {
		if erc, ok := torStatusErrors[reply[1]]; ok {
			return nil, erc.Default()
		}
		return nil, ErrTorInvalidProxyResponse.Default()
	}
	if reply[3] != 1 {
		return nil, torStatusErrors[torGeneralError].Default()
	}

	addr := make([]byte, 4)
	if _, errr := io.ReadFull(conn, addr); errr != nil {
		return nil, ErrTorInvalidAddressResponse.New("", er.E(errr))
	}
	return []net.IP{net.IPv4(addr[0], addr[1], addr[2], addr[3])}, nil
}
