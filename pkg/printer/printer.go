package printer

import (
	"fmt"
	"net"
	"os"
	"time"
)

// Printer delivers a rendered ESC/POS byte stream to a receipt device.
// Implementations open the device per print job so a powered-off printer
// fails the job instead of the program start.
type Printer interface {
	Print(data []byte) error
	Close() error
}

// FromConfig selects a Printer for the configured device type: "usb" writes
// to a character device file, "network" dials a raw TCP port, and "none" (or
// empty) discards every job.
func FromConfig(deviceType, devicePath, address string) (Printer, error) {
	switch deviceType {
	case "usb":
		if devicePath == "" {
			return nil, fmt.Errorf("printer: usb device path not set")
		}
		return &usbPrinter{path: devicePath}, nil
	case "network":
		if address == "" {
			return nil, fmt.Errorf("printer: network address not set")
		}
		return &networkPrinter{address: address}, nil
	case "none", "":
		return discardPrinter{}, nil
	default:
		return nil, fmt.Errorf("printer: unknown device type %q (want usb, network, or none)", deviceType)
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

func (p *usbPrinter) Close() error { return nil }

type networkPrinter struct {
	address string
}

func (p *networkPrinter) Print(data []byte) error {
	conn, err := net.DialTimeout("tcp", p.address, 5*time.Second)
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

func (p *networkPrinter) Close() error { return nil }

// discardPrinter accepts every job and prints nothing.
type discardPrinter struct{}

func (discardPrinter) Print([]byte) error { return nil }
func (discardPrinter) Close() error       { return nil }
