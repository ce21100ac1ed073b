package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/mentora-labs/campus-map/pkg/campus"
	"github.com/mentora-labs/campus-map/pkg/catalog"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

var (
	campusFile  = flag.String("campus", "", "campus boundary GeoJSON, embedded default when empty")
	catalogFile = flag.String("requests", "requests.json", "help request export to bundle")
	outFile     = flag.String("o", "campus-map.bundle", "output bundle path")
)

func main() {
	flag.Parse()

	bar := progressbar.NewOptions(3,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][1/3]Loading campus boundary..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	cam := campus.Default()
	if *campusFile != "" {
		loaded, err := campus.LoadFile(*campusFile)
		if err != nil {
			log.Fatal(err)
		}
		cam = loaded
	}
	bar.Add(1)

	bar.Describe("[cyan][2/3]Loading help requests...")
	center := cam.Center()
	cat, err := catalog.LoadFile(nil, *catalogFile, catalog.Options{Center: &center})
	if err != nil {
		log.Fatal(err)
	}
	bar.Add(1)

	bar.Describe("[cyan][3/3]Writing bundle...")
	bundle := &catalog.Bundle{
		CampusName: cam.Name(),
		Ring:       cam.Ring(),
		Requests:   cat.All(),
		BuiltAt:    time.Now().UTC(),
	}
	if err := catalog.WriteBundleFile(*outFile, bundle); err != nil {
		log.Fatal(err)
	}
	bar.Add(1)

	fmt.Printf("\nwrote %s: campus %q, %d requests\n", *outFile, cam.Name(), cat.Len())
}
