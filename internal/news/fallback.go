package news

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"newshub/pkg/models"
)

// fallbackPublisher is the source name stamped on every generated article.
const fallbackPublisher = "NewsHub"

type fallbackSeed struct {
	title       string
	description string
	slug        string
}

// fallbackCatalog maps a category tag to its hand-authored placeholder
// articles. Lookup with an unknown tag falls back to "general".
var fallbackCatalog = map[string][]fallbackSeed{
	"general": {
		{"Global leaders meet to discuss economic cooperation", "Delegates from over forty countries gathered this week to negotiate new frameworks for trade and development.", "global-leaders-economic-cooperation"},
		{"Record monsoon rainfall reshapes water policy debate", "Reservoir levels across several states reached decade highs, prompting calls to rethink storage and distribution.", "monsoon-rainfall-water-policy"},
		{"Census data shows accelerating shift toward cities", "Urban districts absorbed most of the past decade's population growth, new figures indicate.", "census-urban-shift"},
		{"Railway modernization program enters second phase", "Upgraded signalling and new rolling stock are planned for the country's busiest corridors.", "railway-modernization-phase-two"},
		{"Heat wave advisory issued for northern plains", "Authorities urged residents to limit outdoor activity as temperatures climbed well above seasonal norms.", "heat-wave-advisory-north"},
		{"Parliament session opens with packed legislative agenda", "Lawmakers return to debate bills on education funding, data protection and agricultural reform.", "parliament-session-agenda"},
	},
	"business": {
		{"Markets rally as inflation cools for third straight month", "Benchmark indices closed at record highs after consumer price growth slowed more than analysts expected.", "markets-rally-inflation-cools"},
		{"Startup funding rebounds in fintech and logistics", "Venture investment rose sharply last quarter, led by payments platforms and supply-chain software.", "startup-funding-rebound"},
		{"Central bank holds rates, signals patience on cuts", "Policymakers left the benchmark rate unchanged and pointed to uneven progress on core inflation.", "central-bank-holds-rates"},
		{"Manufacturing output posts strongest quarter in years", "Factory activity expanded across autos, electronics and textiles, supported by export orders.", "manufacturing-output-strong-quarter"},
		{"Small exporters look to new trade corridors", "Simplified customs procedures are opening markets that were previously out of reach for small firms.", "small-exporters-trade-corridors"},
	},
	"technology": {
		{"Chipmakers announce new fabrication plants amid demand surge", "Two major semiconductors firms confirmed multibillion dollar investments in domestic manufacturing.", "chipmakers-new-fabs"},
		{"Open-source AI models narrow the gap with commercial rivals", "Community-built language models matched proprietary systems on several public benchmarks this month.", "open-source-ai-gap"},
		{"Quantum networking pilot links research campuses", "Scientists demonstrated entanglement distribution over a metropolitan fibre network.", "quantum-networking-pilot"},
		{"Smartphone makers bet on repairable designs", "New flagship launches emphasize replaceable batteries and modular parts as regulations tighten.", "smartphones-repairable-designs"},
		{"Satellite broadband reaches remote districts", "Low-orbit constellations are bringing usable internet to villages beyond the fibre map.", "satellite-broadband-remote"},
	},
	"health": {
		{"New vaccination drive targets preventable childhood illness", "Health workers began door-to-door campaigns in districts with lagging immunization coverage.", "vaccination-drive-childhood"},
		{"Study links daily walking to sharply lower heart risk", "Researchers tracking thousands of adults found even modest activity cut cardiovascular events.", "walking-heart-risk-study"},
		{"Telemedicine consultations double in rural areas", "Remote clinics report surging demand as specialist video visits become routine.", "telemedicine-rural-growth"},
		{"Hospitals adopt AI triage for emergency departments", "Early deployments cut waiting times by flagging critical cases at registration.", "hospital-ai-triage"},
		{"Nutrition survey prompts school meal overhaul", "New guidelines add millets and fortified staples to midday meal programs.", "nutrition-school-meals"},
	},
	"entertainment": {
		{"Film festival lineup celebrates regional cinema", "This year's program features debut directors working in eight languages.", "film-festival-regional-cinema"},
		{"Streaming wars heat up with local-language originals", "Platforms are commissioning record numbers of series aimed at audiences outside metro markets.", "streaming-local-originals"},
		{"Veteran composer returns with first album in a decade", "The long-awaited record blends classical instrumentation with electronic production.", "composer-returns-album"},
		{"Theatre revival draws young audiences back to the stage", "Affordable ticketing and contemporary scripts are filling auditoriums again.", "theatre-revival-young-audiences"},
		{"Documentary on street food wins international award", "The film follows three vendors through a year of reinvention after the pandemic.", "street-food-documentary-award"},
	},
	"sports": {
		{"Home side clinches series with dominant final-day bowling", "Spinners shared eight wickets as the visitors collapsed chasing a modest target.", "home-side-clinches-series"},
		{"League announces expansion teams and new venues", "Two new franchises will join next season, bringing top-flight matches to underserved regions.", "league-expansion-teams"},
		{"Teen sprinter breaks national record at junior championships", "The 100m mark that stood for sixteen years fell by a clear margin.", "teen-sprinter-national-record"},
		{"Hockey squad begins Olympic qualifying campaign", "Coaches named a young side mixing emerging talent with tournament veterans.", "hockey-olympic-qualifying"},
		{"Badminton doubles pair rises to career-best ranking", "Back-to-back semifinal runs lifted the pair into the world's top ten.", "badminton-doubles-ranking"},
	},
}

// CategoryFallback returns the hand-authored placeholder set for a
// category, truncated to size. Unknown categories serve the general set.
func CategoryFallback(category string, size int) []models.Article {
	seeds, ok := fallbackCatalog[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		seeds = fallbackCatalog["general"]
	}
	if size <= 0 {
		size = DefaultHeadlinesSize
	}
	if size > len(seeds) {
		size = len(seeds)
	}

	now := time.Now().UTC()
	out := make([]models.Article, 0, size)
	for i, seed := range seeds[:size] {
		out = append(out, seedArticle(seed, now, i))
	}
	return out
}

// SearchFallback synthesizes placeholder results that interpolate the
// literal query string, so the client still renders something recognizably
// related to what the user asked for.
func SearchFallback(q string) []models.Article {
	now := time.Now().UTC()
	slug := strings.Join(strings.Fields(q), "-")

	return []models.Article{
		{
			Title:       fmt.Sprintf("Latest developments on %s", q),
			Description: fmt.Sprintf("A roundup of recent coverage and analysis related to %s from newsrooms around the world.", q),
			URL:         "https://newshub.example/articles/" + strings.ToLower(slug),
			URLToImage:  "https://placehold.co/600x400?text=" + url.QueryEscape(q),
			PublishedAt: now.Format(time.RFC3339),
			Source:      models.ArticleSource{Name: fallbackPublisher},
		},
		{
			Title:       fmt.Sprintf("%s: what you need to know", q),
			Description: fmt.Sprintf("Background, context and the key questions surrounding %s.", q),
			URL:         "https://newshub.example/articles/" + strings.ToLower(slug) + "-explained",
			URLToImage:  "https://placehold.co/600x400?text=" + url.QueryEscape(q),
			PublishedAt: now.Add(-12 * time.Minute).Format(time.RFC3339),
			Source:      models.ArticleSource{Name: fallbackPublisher},
		},
	}
}

// TopicFallback synthesizes articles for one trending topic by prefixing
// general placeholder stories with the topic name. Used when that topic's
// upstream search fails; other topics are unaffected.
func TopicFallback(topic string, size int) []models.Article {
	base := CategoryFallback("general", size)
	out := make([]models.Article, 0, len(base))
	slug := strings.ToLower(strings.Join(strings.Fields(topic), "-"))

	for i, a := range base {
		a.Title = fmt.Sprintf("%s: %s", topic, a.Title)
		a.Description = fmt.Sprintf("%s coverage — %s", topic, a.Description)
		a.URL = fmt.Sprintf("https://newshub.example/topics/%s/%d", slug, i+1)
		out = append(out, a)
	}
	return out
}

func seedArticle(seed fallbackSeed, now time.Time, i int) models.Article {
	return models.Article{
		Title:       seed.title,
		Description: seed.description,
		URL:         "https://newshub.example/articles/" + seed.slug,
		URLToImage:  "https://placehold.co/600x400?text=" + url.QueryEscape(seed.title),
		PublishedAt: now.Add(-time.Duration(i) * 7 * time.Minute).Format(time.RFC3339),
		Source:      models.ArticleSource{Name: fallbackPublisher},
	}
}
