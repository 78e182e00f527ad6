package purchase

import (
	"errors"
	"sort"
)

var ErrUnknownPack = errors.New("unknown token pack")

type PackType string

const (
	PackStarter   PackType = "starter"
	PackFamily    PackType = "family"
	PackClassroom PackType = "classroom"
)

type Pack struct {
	Type        PackType
	Name        string
	Description string
	Tokens      int32
	AmountCents int32
	Currency    string
	PriceID     string
}

// Catalog maps pack types to their definition; price IDs come from configuration.
type Catalog struct {
	packs map[PackType]Pack
}

func NewCatalog(priceIDs map[string]string) *Catalog {
	packs := map[PackType]Pack{
		PackStarter: {
			Type:        PackStarter,
			Name:        "Starter Pack",
			Description: "50 coloring page images",
			Tokens:      50,
			AmountCents: 499,
		},
		PackFamily: {
			Type:        PackFamily,
			Name:        "Family Pack",
			Description: "110 coloring page images",
			Tokens:      110,
			AmountCents: 999,
		},
		PackClassroom: {
			Type:        PackClassroom,
			Name:        "Classroom Pack",
			Description: "240 coloring page images",
			Tokens:      240,
			AmountCents: 1999,
		},
	}
	for t, p := range packs {
		p.Currency = "usd"
		p.PriceID = priceIDs[string(t)]
		packs[t] = p
	}
	return &Catalog{packs: packs}
}

func (c *Catalog) Lookup(packType string) (Pack, error) {
	p, ok := c.packs[PackType(packType)]
	if !ok {
		return Pack{}, ErrUnknownPack
	}
	return p, nil
}

func (c *Catalog) All() []Pack {
	out := make([]Pack, 0, len(c.packs))
	for _, p := range c.packs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AmountCents < out[j].AmountCents })
	return out
}
