package game

import (
	"github.com/vovakirdan/wurdle/internal/config"
	"github.com/vovakirdan/wurdle/internal/source"
	"github.com/vovakirdan/wurdle/internal/storage"
	"github.com/vovakirdan/wurdle/internal/words"
	"github.com/vovakirdan/wurdle/internal/wordle"
)

// Deps are the collaborators built once from configuration and shared by
// every session of a process.
type Deps struct {
	Config config.Config
	Lists  words.Lists
	Dict   wordle.Dictionary // nil in open mode
}

// LoadDeps reads the word lists the configuration points at. A configured
// word bank wins over list files; files win over the embedded lists.
func LoadDeps(cfg config.Config) (Deps, error) {
	length := cfg.Game.WordLength
	fromFiles := func() (words.Lists, error) {
		return words.LoadLists(config.ExpandHome(cfg.Words.Answers), config.ExpandHome(cfg.Words.Allowed), length)
	}

	var lists words.Lists
	var err error
	if cfg.Words.DB != "" {
		lists, err = storage.LoadLists(cfg.Words.DB, length, fromFiles)
	} else {
		lists, err = fromFiles()
	}
	if err != nil {
		return Deps{}, err
	}

	d := Deps{Config: cfg, Lists: lists}
	if !cfg.Words.OpenMode {
		d.Dict = lists.Dictionary()
	}
	return d, nil
}

// NewSource creates the configured word source. A non-empty kind overrides
// the configured one; seed only affects the random source.
func (d Deps) NewSource(kind, fixed string, seed int64) (source.Source, error) {
	if kind == "" {
		kind = d.Config.Source.Kind
	}
	if fixed == "" {
		fixed = d.Config.Source.Fixed
	}
	return source.Create(kind, source.Params{
		Answers: d.Lists.Answers,
		Fixed:   fixed,
		Seed:    seed,
		Salt:    d.Config.Source.DailySalt,
	})
}

// NewGame starts a session with its own source.
func (d Deps) NewGame(kind, fixed string, seed int64) (*Game, error) {
	src, err := d.NewSource(kind, fixed, seed)
	if err != nil {
		return nil, err
	}
	return New(Options{
		Wordle: d.Config.Wordle(),
		Dict:   d.Dict,
		Source: src,
	})
}
