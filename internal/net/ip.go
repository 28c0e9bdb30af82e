package net

import (
	"fmt"
	"log"
	"net"
	"strconv"
)

// ShareURL turns a listen address such as ":8888" into a URL other machines
// on the LAN can open.
func ShareURL(listenAddr string) string {
	host, port, err := net.SplitHostPort(listenAddr)
	if err != nil {
		return "http://" + listenAddr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = OutgoingIP()
	}
	return fmt.Sprintf("http://%s", net.JoinHostPort(host, port))
}

// ListenPort extracts the numeric port of a listen address.
func ListenPort(listenAddr string) (int, error) {
	_, port, err := net.SplitHostPort(listenAddr)
	if err != nil {
		return 0, fmt.Errorf("listen address %q: %w", listenAddr, err)
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return 0, fmt.Errorf("listen port %q: %w", port, err)
	}
	return n, nil
}

// OutgoingIP finds the local address other machines would reach us on.
func OutgoingIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return localIPFallback()
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}

// localIPFallback is used on networks without internet access.
func localIPFallback() string {
	addrs, err := net.InterfaceAddrs()
	if err == nil {
		for _, address := range addrs {
			if ipnet, ok := address.(*net.IPNet); ok && !ipnet.IP.IsLoopback() && ipnet.IP.To4() != nil {
				return ipnet.IP.String()
			}
		}
	}
	log.Println("[NET] no suitable local IP found, share URL uses loopback")
	return "127.0.0.1"
}
