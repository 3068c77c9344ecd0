package extract

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Link is one distinct outbound hyperlink target discovered in a document,
// with the accumulated emphasis score of all its occurrences.
type Link struct {
	Target string
	Score  float64
}

const (
	linkBaseScore  = 1
	linkBonusScore = 1
)

// emphasisTags are the ancestor elements that add a structural bonus to a
// link occurrence. Matching is case-insensitive against the source markup;
// the parser lower-cases element names so a lower-case set suffices.
var emphasisTags = map[string]bool{
	"h1": true,
	"h2": true,
	"h3": true,
	"h4": true,
	"em": true,
	"b":  true,
}

// Links parses HTML and returns the document's distinct outbound targets in
// first-seen order. Each anchor occurrence starts at a base score of 1 and
// gains +1 per emphasis ancestor (uncapped, additive); occurrences pointing
// at the same target sum into a single entry.
//
// The href value is taken verbatim: no URL normalization and no resolution
// against a base path. Targets are matched against corpus file names later,
// so canonicalizing here would silently change which documents receive mass.
// Malformed markup is tolerated; a document with no anchors yields nil.
func Links(input []byte) ([]Link, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(input))
	if err != nil {
		return nil, err
	}

	var links []Link
	index := map[string]int{}

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		score := occurrenceScore(a.Nodes[0])
		if i, ok := index[href]; ok {
			links[i].Score += score
			return
		}
		index[href] = len(links)
		links = append(links, Link{Target: href, Score: score})
	})

	return links, nil
}

// occurrenceScore walks the ancestor chain of a single anchor node and
// accumulates the emphasis bonuses on top of the base score.
func occurrenceScore(n *html.Node) float64 {
	score := float64(linkBaseScore)
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type != html.ElementNode {
			continue
		}
		if emphasisTags[strings.ToLower(p.Data)] {
			score += linkBonusScore
		}
	}
	return score
}
