package wire

import (
	"encoding/binary"
	"io"
	"net"
)

// ServiceFlag advertises the services a node supports.
type ServiceFlag uint64

const (
	// SFNodeNetwork means the node serves the full block chain.
	SFNodeNetwork ServiceFlag = 1 << iota
)

// NetAddress is a peer endpoint as carried in version and addr
// payloads: services, a 16-byte IPv6-mapped address, and the port in
// big-endian (the one big-endian field of the protocol).
type NetAddress struct {
	Services ServiceFlag
	IP       net.IP
	Port     uint16
}

// NewNetAddress builds a NetAddress from a TCP endpoint.
func NewNetAddress(addr *net.TCPAddr, services ServiceFlag) NetAddress {
	return NetAddress{Services: services, IP: addr.IP, Port: uint16(addr.Port)}
}

func writeNetAddress(w io.Writer, na NetAddress) error {
	if err := writeUint64(w, uint64(na.Services)); err != nil {
		return err
	}
	var ip [16]byte
	if na.IP != nil {
		copy(ip[:], na.IP.To16())
	}
	if _, err := w.Write(ip[:]); err != nil {
		return err
	}
	var port [2]byte
	binary.BigEndian.PutUint16(port[:], na.Port)
	_, err := w.Write(port[:])
	return err
}

func readNetAddress(r io.Reader) (NetAddress, error) {
	services, err := readUint64(r)
	if err != nil {
		return NetAddress{}, err
	}
	var ip [16]byte
	if err := readFull(r, ip[:]); err != nil {
		return NetAddress{}, err
	}
	var port [2]byte
	if err := readFull(r, port[:]); err != nil {
		return NetAddress{}, err
	}
	return NetAddress{
		Services: ServiceFlag(services),
		IP:       net.IP(ip[:]),
		Port:     binary.BigEndian.Uint16(port[:]),
	}, nil
}
