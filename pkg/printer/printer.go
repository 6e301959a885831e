// Package printer drives ESC/POS thermal printers over USB device
// files or raw TCP.
package printer

import (
	"fmt"
	"net"
	"os"
	"time"
)

// Printer sends raw ESC/POS data to a thermal printer.
type Printer interface {
	Print(data []byte) error
	IsConnected() bool
}

// FromConfig builds a printer from configuration. Type "usb" writes to
// a device file, "network" dials TCP, anything else is the no-op
// printer.
func FromConfig(printerType, usbPath, address string) (Printer, error) {
	switch printerType {
	case "usb":
		if usbPath == "" {
			return nil, fmt.Errorf("printer: usb printer requires a device path")
		}
		return &usbPrinter{path: usbPath}, nil
	case "network":
		if address == "" {
			return nil, fmt.Errorf("printer: network printer requires an address")
		}
		return &networkPrinter{address: address, timeout: 5 * time.Second}, nil
	default:
		return NullPrinter{}, nil
	}
}

type usbPrinter struct {
	path string
}

func (p *usbPrinter) Print(data []byte) error {
	f, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printer: open %s: %w", p.path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("printer: write %s: %w", p.path, err)
	}
	return nil
}

func (p *usbPrinter) IsConnected() bool {
	_, err := os.Stat(p.path)
	return err == nil
}

type networkPrinter struct {
	address string
	timeout time.Duration
}

func (p *networkPrinter) Print(data []byte) error {
	conn, err := net.DialTimeout("tcp", p.address, p.timeout)
	if err != nil {
		return fmt.Errorf("printer: connect %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: write %s: %w", p.address, err)
	}
	return nil
}

func (p *networkPrinter) IsConnected() bool {
	conn, err := net.DialTimeout("tcp", p.address, p.timeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// NullPrinter swallows print jobs; used when no printer is configured.
type NullPrinter struct{}

func (NullPrinter) Print([]byte) error { return nil }
func (NullPrinter) IsConnected() bool  { return false }
