// The catalogscrape binary refreshes card data from the community wiki and
// prints what it parsed, for manual diffing against the builtin catalog.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/WangCCe/slay-the-spire-ai/catalog"
)

func main() {
	url := flag.String("url", "https://slay-the-spire.fandom.com/wiki/Ironclad_Cards", "wiki card list page")
	flag.Parse()

	scraper := catalog.NewScraper()
	specs, err := scraper.FetchCards(*url)
	if err != nil {
		log.Fatalf("fetch cards: %v", err)
	}
	log.Printf("parsed %d cards from %s", len(specs), *url)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(specs); err != nil {
		log.Fatalf("encode: %v", err)
	}
}
