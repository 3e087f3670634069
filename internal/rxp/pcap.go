//go:build pcap
// +build pcap

package rxp

import (
	"context"
	"fmt"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"

	"github.com/banshee-data/rxp.report/internal/monitoring"
)

// ReadPCAPFile dispatches the rxpmarker frames captured as UDP payloads in a
// pcap file into sink. Payloads are assumed to start on frame boundaries;
// the stream signature is not present in captured traffic. Only available
// when building with the 'pcap' build tag.
func ReadPCAPFile(ctx context.Context, pcapFile string, udpPort int, sink RecordSink) error {
	handle, err := pcap.OpenOffline(pcapFile)
	if err != nil {
		return fmt.Errorf("failed to open PCAP file %s: %w", pcapFile, err)
	}
	defer handle.Close()

	filterStr := fmt.Sprintf("udp port %d", udpPort)
	if err := handle.SetBPFFilter(filterStr); err != nil {
		return fmt.Errorf("failed to set BPF filter '%s': %w", filterStr, err)
	}

	packetSource := gopacket.NewPacketSource(handle, handle.LinkType())
	packetCount := 0
	var buf Buffer

	for {
		select {
		case <-ctx.Done():
			monitoring.Logf("PCAP reader stopping: context cancelled after %d packets", packetCount)
			return ctx.Err()
		case packet := <-packetSource.Packets():
			if packet == nil {
				monitoring.Logf("PCAP file complete: %d packets dispatched", packetCount)
				return nil
			}

			udpLayer := packet.Layer(layers.LayerTypeUDP)
			if udpLayer == nil {
				continue
			}
			udp, ok := udpLayer.(*layers.UDP)
			if !ok || len(udp.Payload) == 0 {
				continue
			}

			packetCount++
			data := buf.grow(len(udp.Payload))
			copy(data, udp.Payload)
			if err := sink.Dispatch(&buf); err != nil {
				monitoring.Logf("error dispatching PCAP packet %d: %v", packetCount, err)
				continue
			}
		}
	}
}
