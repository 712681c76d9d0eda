package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Trungkien03/poker-hand-logic/domain/poker"
)

// parseCard accepts a mnemonic ("AS", "10h") or a numeric code ("1014").
func parseCard(s string) (poker.Card, error) {
	if code, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return poker.FromCode(code)
	}
	return poker.ParseCard(s)
}

// parseCardArgs parses cards given as separate arguments, comma separated, or both.
func parseCardArgs(args []string) ([]poker.Card, error) {
	var cards []poker.Card
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			if strings.TrimSpace(field) == "" {
				continue
			}
			c, err := parseCard(field)
			if err != nil {
				return nil, fmt.Errorf("card %d: %w", len(cards)+1, err)
			}
			cards = append(cards, c)
		}
	}
	return cards, nil
}

// parsePlayerArg parses "ID=CARD,CARD,...".
func parsePlayerArg(arg string) (poker.PlayerEntry, error) {
	id, list, ok := strings.Cut(arg, "=")
	if !ok || strings.TrimSpace(id) == "" {
		return poker.PlayerEntry{}, fmt.Errorf("%w: player %q, expected ID=CARD,CARD,...", poker.ErrInvalidInputShape, arg)
	}
	cards, err := parseCardArgs([]string{list})
	if err != nil {
		return poker.PlayerEntry{}, fmt.Errorf("player %q: %w", id, err)
	}
	return poker.PlayerEntry{ID: strings.TrimSpace(id), Cards: cards}, nil
}

// decodePlayers decodes a JSON array of players.
func decodePlayers(data []byte) ([]poker.PlayerEntry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array of players", poker.ErrInvalidInputShape)
	}
	var players []poker.PlayerEntry
	if err := json.Unmarshal(trimmed, &players); err != nil {
		return nil, fmt.Errorf("%w: %v", poker.ErrInvalidInputShape, err)
	}
	for i, p := range players {
		if p.Cards == nil {
			return nil, fmt.Errorf("%w: player %d has no cards array", poker.ErrInvalidInputShape, i)
		}
	}
	return players, nil
}
