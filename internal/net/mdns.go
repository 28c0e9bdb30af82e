package net

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/hashicorp/mdns"
)

// Advertised is a board server found on the local network.
type Advertised struct {
	Instance string
	Addr     string
	Info     string
}

// Advertise announces a board server on the local network until the returned
// server is shut down.
func Advertise(serviceType string, port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("mdns: hostname: %w", err)
	}

	service, err := mdns.NewMDNSService(host, serviceType, "", "", port, []net.IP{firstIPv4()}, []string{"ShapeBoard"})
	if err != nil {
		return nil, fmt.Errorf("mdns: service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("mdns: server: %w", err)
	}
	return server, nil
}

// Browse collects advertised boards for up to timeout.
func Browse(ctx context.Context, serviceType string, timeout time.Duration) ([]Advertised, error) {
	entries := make(chan *mdns.ServiceEntry, 8)
	found := make([]Advertised, 0)
	seen := make(map[string]bool)

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			addr := fmt.Sprintf("%s:%d", e.AddrV4.String(), e.Port)
			if seen[addr] {
				continue
			}
			seen[addr] = true
			found = append(found, Advertised{Instance: e.Name, Addr: addr, Info: e.Info})
		}
	}()

	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		timeout = time.Until(deadline)
	}
	params := mdns.DefaultParams(serviceType)
	params.Entries = entries
	params.Timeout = timeout
	params.DisableIPv6 = true
	err := mdns.Query(params)
	close(entries)
	<-collected
	if err != nil {
		return nil, fmt.Errorf("mdns: query %s: %w", serviceType, err)
	}
	return found, nil
}

func firstIPv4() net.IP {
	ifaces, _ := net.Interfaces()
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, _ := iface.Addrs()
		for _, a := range addrs {
			if ipnet, ok := a.(*net.IPNet); ok && ipnet.IP.To4() != nil {
				return ipnet.IP.To4()
			}
		}
	}
	return net.IPv4(127, 0, 0, 1)
}
