// Package seed loads the bundled questionnaire, exercise catalog and
// recommendations into the record store.
package seed

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"psynara/internal/platform/id"
	"psynara/internal/platform/markdown"
	"psynara/internal/platform/storage"
	"psynara/internal/platform/tx"
)

//go:embed data/catalog.yaml data/recommendations/*.md
var files embed.FS

// epoch anchors created_at so catalog ordering is stable across machines.
var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type Question struct {
	Key      string   `yaml:"key"`
	Category string   `yaml:"category"`
	Question string   `yaml:"question"`
	Labels   []string `yaml:"labels"`
}

type Game struct {
	Key          string `yaml:"key"`
	Name         string `yaml:"name"`
	Kind         string `yaml:"kind"`
	Category     string `yaml:"category"`
	Difficulty   string `yaml:"difficulty"`
	Description  string `yaml:"description"`
	Instructions string `yaml:"instructions"`
}

type Recommendation struct {
	Key         string `yaml:"key"`
	Category    string `yaml:"category"`
	Title       string `yaml:"title"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`
	Content     string `yaml:"-"`
}

type Data struct {
	Questions       []Question `yaml:"questions"`
	Games           []Game     `yaml:"games"`
	Recommendations []Recommendation `yaml:"-"`
}

type Result struct {
	Questions       int
	Games           int
	Recommendations int
}

// Load parses the embedded seed files.
func Load() (Data, error) {
	raw, err := files.ReadFile("data/catalog.yaml")
	if err != nil {
		return Data{}, fmt.Errorf("read catalog seed: %w", err)
	}
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("unmarshal catalog seed: %w", err)
	}

	names, err := fs.Glob(files, "data/recommendations/*.md")
	if err != nil {
		return Data{}, fmt.Errorf("list recommendation seeds: %w", err)
	}
	sort.Strings(names)
	for _, name := range names {
		content, err := files.ReadFile(name)
		if err != nil {
			return Data{}, fmt.Errorf("read %s: %w", name, err)
		}
		var rec Recommendation
		body, err := markdown.SplitFrontmatter(string(content), &rec)
		if err != nil {
			return Data{}, fmt.Errorf("parse %s: %w", path.Base(name), err)
		}
		rec.Content = body
		data.Recommendations = append(data.Recommendations, rec)
	}
	return data, nil
}

// Apply upserts the seed rows inside one transaction. Re-running it is safe.
func Apply(ctx context.Context, db *sql.DB) (Result, error) {
	data, err := Load()
	if err != nil {
		return Result{}, err
	}
	err = tx.SQLManager{DB: db}.Within(ctx, func(ctx context.Context) error {
		exec := tx.From(ctx, db)
		for i, q := range data.Questions {
			options, err := json.Marshal(map[string]any{"min": 1, "max": len(q.Labels), "labels": q.Labels})
			if err != nil {
				return fmt.Errorf("marshal options for %s: %w", q.Key, err)
			}
			_, err = exec.ExecContext(ctx, `
INSERT INTO psychology_questions (id, category, question, type, options, order_num, created_at)
VALUES (?, ?, ?, 'scale', ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  category=excluded.category,
  question=excluded.question,
  options=excluded.options,
  order_num=excluded.order_num;`,
				id.Stable("question", q.Key), q.Category, q.Question, string(options), i+1,
				storage.FormatTime(epoch.Add(time.Duration(i)*time.Minute)),
			)
			if err != nil {
				return fmt.Errorf("seed question %s: %w", q.Key, err)
			}
		}
		for i, g := range data.Games {
			_, err := exec.ExecContext(ctx, `
INSERT INTO psychology_games (id, name, description, category, instructions, difficulty, kind, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  name=excluded.name,
  description=excluded.description,
  category=excluded.category,
  instructions=excluded.instructions,
  difficulty=excluded.difficulty,
  kind=excluded.kind;`,
				id.Stable("game", g.Key), g.Name, g.Description, g.Category, g.Instructions, g.Difficulty, g.Kind,
				storage.FormatTime(epoch.Add(time.Duration(i)*time.Minute)),
			)
			if err != nil {
				return fmt.Errorf("seed game %s: %w", g.Key, err)
			}
		}
		for i, r := range data.Recommendations {
			_, err := exec.ExecContext(ctx, `
INSERT INTO recommendations (id, category, title, description, content, icon, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  category=excluded.category,
  title=excluded.title,
  description=excluded.description,
  content=excluded.content,
  icon=excluded.icon;`,
				id.Stable("recommendation", r.Key), r.Category, r.Title, r.Description, r.Content, r.Icon,
				storage.FormatTime(epoch.Add(-time.Duration(i)*time.Minute)),
			)
			if err != nil {
				return fmt.Errorf("seed recommendation %s: %w", r.Key, err)
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Questions: len(data.Questions), Games: len(data.Games), Recommendations: len(data.Recommendations)}, nil
}
