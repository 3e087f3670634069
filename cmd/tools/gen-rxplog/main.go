// Command gen-rxplog generates synthetic rxpmarker streams for testing the
// readers, the importer and replay tooling.
package main

import (
	"flag"
	"log"
	"math"
	"os"

	"github.com/banshee-data/rxp.report/internal/rxp"
)

func main() {
	output := flag.String("o", "sample.rxpm", "output path")
	cycles := flag.Int("n", 100, "number of point packets")
	pointsPer := flag.Int("points", 40, "point records per packet")
	inclEvery := flag.Int("incl-every", 10, "emit an inclination packet every N point packets")
	flag.Parse()

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("creating %s: %v", *output, err)
	}
	defer f.Close()

	w, err := rxp.NewWriter(f)
	if err != nil {
		log.Fatalf("writing stream header: %v", err)
	}

	// 100Hz point packets on a slowly wobbling platform.
	const packetIntervalUS = 10_000
	timestamp := uint32(0)
	points := make([]rxp.Point, *pointsPer)

	for i := 0; i < *cycles; i++ {
		timestamp += packetIntervalUS
		t := float64(timestamp) * 1e-6

		if timestamp%1_000_000 < packetIntervalUS {
			if err := w.WritePPS(timestamp, timestamp/1_000_000); err != nil {
				log.Fatalf("writing pps: %v", err)
			}
		}
		if *inclEvery > 0 && i%*inclEvery == 0 {
			roll := int32(8500 * math.Sin(t/3))
			pitch := int32(4200 * math.Cos(t/5))
			if err := w.WriteInclination(timestamp, roll, pitch); err != nil {
				log.Fatalf("writing inclination: %v", err)
			}
		}

		for j := range points {
			az := 2 * math.Pi * float64(j) / float64(len(points))
			r := 12 + 3*math.Sin(t+az)
			points[j] = rxp.Point{
				X:            float32(r * math.Cos(az)),
				Y:            float32(r * math.Sin(az)),
				Z:            float32(1.5 + 0.2*math.Sin(t)),
				Amplitude:    float32(18 + 4*math.Sin(az*3)),
				Reflectance:  float32(-2 + math.Cos(az)),
				Echo:         rxp.EchoSingle,
				FreshPPS:     true,
				PPSTimeframe: j%4 != 0,
				Facet:        uint8(j % 4),
			}
		}
		if err := w.WritePoints(timestamp, points); err != nil {
			log.Fatalf("writing points: %v", err)
		}

		if (i+1)%100 == 0 {
			log.Printf("%d/%d packets", i+1, *cycles)
		}
	}
	log.Printf("created %s: %d point packets", *output, *cycles)
}
