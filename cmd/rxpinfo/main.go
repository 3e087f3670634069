// Command rxpinfo inspects rxpmarker laser-scanner streams: counts records,
// prints inclination CSV, archives records into sqlite, renders attitude
// reports and replays captured UDP traffic.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/banshee-data/rxp.report/internal/report"
	"github.com/banshee-data/rxp.report/internal/rxp"
	"github.com/banshee-data/rxp.report/internal/rxpdb"
	"github.com/banshee-data/rxp.report/internal/version"
)

var (
	syncToPPS = flag.Bool("sync-to-pps", false, "drop points without a PPS timing reference")
	dbFile    = flag.String("db", "rxp_data.db", "sqlite archive used by the import command")
	outDir    = flag.String("out", ".", "output directory for report artifacts")
	udpPort   = flag.Int("port", 2368, "UDP port carrying stream frames in a capture (replay command)")
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: rxpinfo [flags] <command> [args]

Commands:
  info <stream>            print record counts for a stream
  inclinations <stream>    print inclination samples as CSV
  import <stream>          archive all records into the sqlite database
  report <stream>          write attitude statistics, plot and HTML chart
  demux <stream> <output>  copy housekeeping packets to a second stream file
  replay <capture>         count records captured as UDP traffic in a pcap file
                           (needs a build with -tags=pcap)
  version                  print build and format version

A stream address is a file path, a file:// URI or tcp://host:port.

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(2)
	}

	cmd := args[0]
	if cmd == "version" {
		fmt.Printf("rxpinfo %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		fmt.Printf("stream format: %s\n", version.FormatVersion)
		return
	}

	if len(args) < 2 {
		usage()
		os.Exit(2)
	}
	addr := args[1]

	var err error
	switch cmd {
	case "info":
		err = runInfo(addr)
	case "inclinations":
		err = runInclinations(addr)
	case "import":
		err = runImport(addr)
	case "report":
		err = runReport(addr)
	case "demux":
		if len(args) < 3 {
			usage()
			os.Exit(2)
		}
		err = runDemux(addr, args[2])
	case "replay":
		err = runReplay(addr)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("rxpinfo %s: %v", cmd, err)
	}
}

func runInfo(addr string) error {
	points, err := rxp.ExtractPoints(addr, *syncToPPS)
	if err != nil {
		return err
	}
	inclinations, err := rxp.ExtractInclinations(addr, *syncToPPS)
	if err != nil {
		return err
	}
	fmt.Printf("number of points: %d\n", len(points))
	fmt.Printf("number of inclinations: %d\n", len(inclinations))
	return nil
}

func runInclinations(addr string) error {
	samples, err := rxp.ExtractInclinations(addr, *syncToPPS)
	if err != nil {
		return err
	}
	fmt.Println("Time,Roll,Pitch")
	for _, s := range samples {
		fmt.Printf("%.6f,%.3f,%.3f\n", s.Time, s.Roll, s.Pitch)
	}
	return nil
}

func runImport(addr string) error {
	db, err := rxpdb.NewDB(*dbFile)
	if err != nil {
		return fmt.Errorf("opening database %s: %w", *dbFile, err)
	}
	defer db.Close()

	points, err := rxp.ExtractPoints(addr, *syncToPPS)
	if err != nil {
		return err
	}
	samples, err := rxp.ExtractInclinations(addr, *syncToPPS)
	if err != nil {
		return err
	}

	importID, err := db.RecordImport(addr, *syncToPPS)
	if err != nil {
		return err
	}
	if err := db.InsertPoints(importID, points); err != nil {
		return err
	}
	if err := db.InsertInclinations(importID, samples); err != nil {
		return err
	}

	summary, err := db.Summary(importID)
	if err != nil {
		return err
	}
	log.Printf("import %s: %d points, %d inclinations from %s",
		summary.ImportID, summary.Points, summary.Inclinations, summary.Source)
	return nil
}

func runReport(addr string) error {
	samples, err := rxp.ExtractInclinations(addr, *syncToPPS)
	if err != nil {
		return err
	}
	stats := report.Attitude(samples)
	fmt.Printf("samples:      %d\n", stats.Samples)
	fmt.Printf("duration:     %.3f s (%.2f samples/s)\n", stats.Duration, stats.SampleRate)
	fmt.Printf("roll:         mean %.3f° ± %.3f° [%.3f°, %.3f°]\n",
		stats.RollMean, stats.RollStdDev, stats.RollMin, stats.RollMax)
	fmt.Printf("pitch:        mean %.3f° ± %.3f° [%.3f°, %.3f°]\n",
		stats.PitchMean, stats.PitchStdDev, stats.PitchMin, stats.PitchMax)

	plotPath := filepath.Join(*outDir, "attitude.png")
	if err := report.PlotAttitude(samples, plotPath); err != nil {
		return err
	}
	chartPath := filepath.Join(*outDir, "attitude.html")
	if err := report.WriteAttitudeChart(samples, chartPath); err != nil {
		return err
	}
	log.Printf("wrote %s and %s", plotPath, chartPath)
	return nil
}

func runReplay(pcapFile string) error {
	ctx := context.Background()

	points := rxp.NewPointSink(*syncToPPS)
	if err := rxp.ReadPCAPFile(ctx, pcapFile, *udpPort, points); err != nil {
		return err
	}
	inclinations := rxp.NewInclinationSink(*syncToPPS)
	if err := rxp.ReadPCAPFile(ctx, pcapFile, *udpPort, inclinations); err != nil {
		return err
	}

	fmt.Printf("number of points: %d\n", len(points.TakeRecords()))
	fmt.Printf("number of inclinations: %d\n", len(inclinations.TakeRecords()))
	return nil
}

func runDemux(addr, outPath string) error {
	stream, err := rxp.OpenInclinationStream(addr, *syncToPPS)
	if err != nil {
		return err
	}
	defer stream.Close()

	if err := stream.AddDemultiplexer(outPath, rxp.PacketHkIncl, rxp.PacketPps); err != nil {
		return err
	}
	total := 0
	for !stream.EndOfInput() {
		if err := stream.Read(); err != nil {
			return err
		}
		total += len(stream.Records())
	}
	if err := stream.Close(); err != nil {
		return err
	}
	log.Printf("copied housekeeping packets (%d inclination samples) to %s", total, outPath)
	return nil
}
