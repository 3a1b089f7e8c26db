package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ScoobyXD/miraeswarm/core"
	"github.com/ScoobyXD/miraeswarm/host/monitor"
	"github.com/ScoobyXD/miraeswarm/host/serial"
	"github.com/ScoobyXD/miraeswarm/host/telemetry"
)

var (
	device     = flag.String("device", "/dev/ttyUSB0", "Serial device path")
	baud       = flag.Int("baud", 115200, "Baud rate of the controller console")
	period     = flag.Uint64("period", 2*uint64(core.DefaultHalfPeriodMicros), "Nominal heartbeat period in microseconds")
	raw        = flag.Bool("raw", false, "Echo every console line verbatim")
	archiveDir = flag.String("archive", "", "Archive beats as JSON lines under this directory")
	server     = flag.String("server", "", "Fleet server websocket URL (ws://host:port)")
	deviceID   = flag.String("id", "", "Device id reported to the fleet server and archive")
)

func main() {
	flag.Parse()

	fmt.Println("miraeswarm host - heartbeat console monitor")

	id := *deviceID
	if id == "" {
		id = fmt.Sprintf("device-%05d", time.Now().Unix()%100000)
	}

	var store *telemetry.Store
	if *archiveDir != "" {
		store = telemetry.NewStore(*archiveDir)
		defer store.Close()
		fmt.Printf("Archiving beats for %s under %s\n", id, *archiveDir)
	}

	var uplink *telemetry.Client
	if *server != "" {
		var err error
		uplink, err = telemetry.Dial(*server, telemetry.Register{
			DeviceID:   id,
			DeviceType: "iot",
			Name:       id,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer uplink.Close()
		fmt.Printf("Streaming telemetry for %s to %s\n", id, *server)
	}

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	fmt.Printf("Listening on %s at %d baud (nominal period %dus)\n", *device, *baud, *period)

	tracker := monitor.NewTracker(*period)
	scanner := bufio.NewScanner(port)

	for scanner.Scan() {
		line := scanner.Text()
		if *raw {
			fmt.Println(line)
		}

		beat, ok := monitor.ParseBeat(line)
		if !ok {
			// Banner and boot noise are worth seeing once
			if !*raw && line != "" {
				fmt.Println(line)
			}
			continue
		}

		p, measured := tracker.Observe(beat)

		if store != nil || uplink != nil {
			rec := telemetry.Record{
				Timestamp: time.Now().Unix(),
				DeviceID:  id,
				Seq:       beat.Seq,
				T:         beat.T,
			}
			if measured {
				rec.PeriodMicros = p
			}
			if store != nil {
				if err := store.Append(rec); err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					os.Exit(1)
				}
			}
			if uplink != nil {
				u := telemetry.Update{Seq: rec.Seq, T: rec.T, PeriodMicros: rec.PeriodMicros}
				if err := uplink.Send(u); err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					os.Exit(1)
				}
			}
		}

		if !measured {
			fmt.Printf("beat seq=%d t=%dus\n", beat.Seq, beat.T)
			continue
		}

		drift := int64(p) - int64(tracker.Nominal())
		fmt.Printf("beat seq=%d t=%dus period=%dus drift=%+dus\n", beat.Seq, beat.T, p, drift)
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading console: %v\n", err)
		os.Exit(1)
	}

	if tracker.Count() > 0 {
		fmt.Printf("observed %d periods: min=%dus max=%dus mean=%.0fus missed=%d\n",
			tracker.Count(), tracker.Min(), tracker.Max(), tracker.Mean(), tracker.Missed())
	}
}
