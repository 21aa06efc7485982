package web

import "github.com/MrSnakeDoc/hookhub/internal/domain"

// Card is the display model of a single catalog entry.
type Card struct {
	ID            string
	Name          string
	CategoryLabel string
	StyleClass    string
	Description   string
	HookTypes     []string
	Author        string
	HasStars      bool
	Stars         int
	RepoURL       string
}

func NewCard(h domain.Hook) Card {
	c := Card{
		ID:            h.ID,
		Name:          h.Name,
		CategoryLabel: h.Category.String(),
		StyleClass:    h.Category.Style(),
		Description:   h.Description,
		HookTypes:     make([]string, len(h.HookTypes)),
		Author:        h.Author,
		RepoURL:       h.RepoURL,
	}
	for i, t := range h.HookTypes {
		c.HookTypes[i] = t.String()
	}
	// absent and zero stars render differently
	if h.GitHubStars != nil {
		c.HasStars = true
		c.Stars = *h.GitHubStars
	}
	return c
}

// NewGrid returns one card per hook, in order.
func NewGrid(hooks []domain.Hook) []Card {
	cards := make([]Card, 0, len(hooks))
	for _, h := range hooks {
		cards = append(cards, NewCard(h))
	}
	return cards
}
