package ui

import (
	"github.com/backmassage/camswap/internal/config"
	"github.com/backmassage/camswap/internal/replace"
	"github.com/backmassage/camswap/internal/shot"
)

var (
	_ replace.Prompter = First{}
	_ replace.Prompter = Skip{}
	_ replace.Prompter = (*Picker)(nil)
)

// First always takes the first candidate in resolution order.
type First struct{ Notifier }

func (First) Disambiguate(paths []string, _ shot.Identity) (string, bool) {
	if len(paths) == 0 {
		return "", false
	}
	return paths[0], true
}

// Skip cancels every disambiguation.
type Skip struct{ Notifier }

func (Skip) Disambiguate([]string, shot.Identity) (string, bool) { return "", false }

// ForMode returns the prompter for a pick mode. The interactive picker reads
// and renders through p's streams.
func ForMode(mode config.PickMode, p *Picker) replace.Prompter {
	switch mode {
	case config.PickFirst:
		return First{p.Notifier}
	case config.PickSkip:
		return Skip{p.Notifier}
	default:
		return p
	}
}
