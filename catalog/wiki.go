package catalog

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/WangCCe/slay-the-spire-ai/game"
)

// Scraper pulls card tables from the community wiki so the builtin catalog
// can be refreshed offline without hand-transcribing numbers.
type Scraper struct {
	client *http.Client
}

func NewScraper() *Scraper {
	return &Scraper{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchCards downloads a wiki card list page and parses every card row.
func (s *Scraper) FetchCards(url string) ([]game.CardSpec, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "SpireCatalog/1.0 (card-table-sync)")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return ParseCards(resp.Body)
}

var (
	damageRe   = regexp.MustCompile(`[Dd]eal (\d+)(?:\s*\(\d+\))? damage`)
	hitsRe     = regexp.MustCompile(`(\d+) times`)
	blockRe    = regexp.MustCompile(`[Gg]ain (\d+)(?:\s*\(\d+\))? Block`)
	drawRe     = regexp.MustCompile(`[Dd]raw (\d+) cards?`)
	energyRe   = regexp.MustCompile(`[Gg]ain (\d+) Energy`)
	strengthRe = regexp.MustCompile(`[Gg]ain (\d+) Strength`)
)

// ParseCards extracts card effects from a wiki card table. Rows are expected
// as name / cost / type / description cells; rows that do not parse (X costs,
// unrecognized mechanics) are skipped rather than guessed at.
func ParseCards(r io.Reader) ([]game.CardSpec, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var specs []game.CardSpec
	doc.Find("table.wikitable tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 4 {
			return
		}
		name := strings.TrimSpace(cells.Eq(0).Text())
		costText := strings.TrimSpace(cells.Eq(1).Text())
		kindText := strings.TrimSpace(cells.Eq(2).Text())
		desc := strings.TrimSpace(cells.Eq(3).Text())
		if name == "" {
			return
		}

		cost, err := strconv.Atoi(costText)
		if err != nil {
			return
		}

		spec := game.CardSpec{ID: name, Cost: int32(cost)}
		switch {
		case strings.EqualFold(kindText, "attack"):
			spec.Kind = game.CardAttack
		case strings.EqualFold(kindText, "power"):
			spec.Kind = game.CardPower
		default:
			spec.Kind = game.CardSkill
		}

		if m := damageRe.FindStringSubmatch(desc); m != nil {
			spec.Damage = atoi32(m[1])
			spec.NeedsTarget = true
		}
		if m := hitsRe.FindStringSubmatch(desc); m != nil {
			spec.Hits = atoi32(m[1])
		}
		if m := blockRe.FindStringSubmatch(desc); m != nil {
			spec.Block = atoi32(m[1])
		}
		if m := drawRe.FindStringSubmatch(desc); m != nil {
			spec.Draw = atoi32(m[1])
		}
		if m := energyRe.FindStringSubmatch(desc); m != nil {
			spec.Energy = atoi32(m[1])
		}
		if m := strengthRe.FindStringSubmatch(desc); m != nil {
			spec.StrengthGain = atoi32(m[1])
		}
		if strings.Contains(desc, "ALL enemies") {
			spec.AOE = true
			spec.NeedsTarget = false
		}
		if strings.Contains(desc, "Vulnerable") {
			spec.Applies |= game.DebuffVulnerable
		}
		if strings.Contains(desc, "Weak") {
			spec.Applies |= game.DebuffWeak
		}
		if strings.Contains(desc, "Frail") {
			spec.Applies |= game.DebuffFrail
		}
		if strings.Contains(desc, "Exhaust") {
			spec.Exhaust = true
		}
		if spec.Applies != 0 && !spec.AOE && spec.Damage == 0 {
			spec.NeedsTarget = true
		}

		specs = append(specs, spec)
	})

	return specs, nil
}

// Register merges scraped specs into the builtin card table, overriding
// entries with the same id.
func Register(specs []game.CardSpec) {
	for _, spec := range specs {
		cards[spec.ID] = spec
	}
}

func atoi32(s string) int32 {
	n, _ := strconv.Atoi(s)
	return int32(n)
}
