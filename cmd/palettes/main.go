package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	get "github.com/hashicorp/go-getter"
)

// Fetches community block palette data for eyeballing new catalog colors.
func main() {
	var (
		base = flag.String("base", "https://github.com/PrismarineJS/minecraft-data.git", "base url")
		ver  = flag.String("version", "1.8", "data version to fetch")
		out  = flag.String("o", "./palettes", "output dir path")
	)
	flag.Parse()

	if *out == "" {
		panic("output dir path required")
	}

	if *ver == "" {
		panic("version required")
	}

	path := fmt.Sprintf("%s/%s", *out, *ver)

	if err := os.RemoveAll(path); err != nil {
		panic(err)
	}

	log.Default().Printf("start downloading palette data %s", path)

	url := fmt.Sprintf("git::%s//data/pc/%s", *base, *ver)

	if err := get.Get(path, url); err != nil {
		panic(err)
	}

	log.Default().Printf("done downloading palette data %s", path)
}
